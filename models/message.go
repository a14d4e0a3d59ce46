package models

import "time"

// Message is a write-once record from the public contact form. Staff can
// mark one as read; nothing else ever updates it.
type Message struct {
	ID    string    `json:"id"`
	Name  string    `json:"name"`
	Phone string    `json:"phone"`
	Text  string    `json:"text"`
	Date  time.Time `json:"date"`
	Read  bool      `json:"read"`
}
