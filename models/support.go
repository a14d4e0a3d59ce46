package models

import "time"

const (
	SessionOpen   = "OPEN"
	SessionClosed = "CLOSED"
)

// SupportSession is one live-support conversation between a user and the
// staff. Clients poll for new messages; the unread counters let each side
// show a badge without reading the whole thread.
type SupportSession struct {
	ID            string    `json:"id"`
	UserID        string    `json:"userId"`
	UserName      string    `json:"userName"`
	AdminID       string    `json:"adminId,omitempty"`
	Status        string    `json:"status"`
	LastMessageAt time.Time `json:"lastMessageAt"`
	UnreadByUser  int       `json:"unreadByUser"`
	UnreadByAdmin int       `json:"unreadByAdmin"`
}

type ChatMessage struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"sessionId"`
	SenderID   string    `json:"senderId"`
	SenderName string    `json:"senderName"`
	Text       string    `json:"text"`
	IsAdmin    bool      `json:"isAdmin"`
	Timestamp  time.Time `json:"timestamp"`
}
