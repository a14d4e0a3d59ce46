package models

import "time"

type Banner struct {
	ID        string    `json:"id"`
	ImageURL  string    `json:"imageUrl"`
	Title     string    `json:"title"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}
