package models

import "time"

const (
	RoleUser  = "USER"
	RoleAdmin = "ADMIN"

	StatusActive = "ACTIVE"
	StatusBanned = "BANNED"
)

type User struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Email    string    `json:"email"`
	Password string    `json:"-"`
	Avatar   string    `json:"avatar,omitempty"`
	Role     string    `json:"role"`
	Status   string    `json:"status"`
	Theme    string    `json:"theme"`
	Language string    `json:"language"`
	JoinedAt time.Time `json:"joinedAt"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

func (u *User) IsBanned() bool {
	return u.Status == StatusBanned
}
