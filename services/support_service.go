package services

import (
	"errors"
	"time"

	"github.com/adhamyosry771-star/filex-design/models"
	"github.com/adhamyosry771-star/filex-design/repositories"
)

var ErrSessionClosed = errors.New("support session is closed")

type SupportStore interface {
	FindOpenSessionByUser(userID string) (*models.SupportSession, error)
	FindSessionByID(id string) (*models.SupportSession, error)
	CreateSession(s *models.SupportSession) error
	ListSessions() ([]models.SupportSession, error)
	CloseSession(id, adminID string) error
	CreateMessage(m *models.ChatMessage) error
	ListMessages(sessionID string) ([]models.ChatMessage, error)
	TouchSession(sessionID string, at time.Time, fromAdmin bool) error
	ResetUnread(sessionID string, forAdmin bool) error
}

type SupportService struct {
	store SupportStore
}

func NewSupportService() *SupportService {
	return &SupportService{
		store: repositories.NewSupportRepository(),
	}
}

// OpenSession returns the user's OPEN session, creating one if none exists.
// A user has at most one open session at a time.
func (s *SupportService) OpenSession(user *models.User) (*models.SupportSession, error) {
	session, err := s.store.FindOpenSessionByUser(user.ID)
	if err != nil {
		return nil, err
	}
	if session != nil {
		return session, nil
	}

	session = &models.SupportSession{
		UserID:   user.ID,
		UserName: user.Name,
		Status:   models.SessionOpen,
	}

	if err := s.store.CreateSession(session); err != nil {
		return nil, err
	}

	return session, nil
}

// Messages returns the thread and clears the unread counter for the side
// doing the reading.
func (s *SupportService) Messages(sessionID string, asAdmin bool) ([]models.ChatMessage, error) {
	messages, err := s.store.ListMessages(sessionID)
	if err != nil {
		return nil, err
	}

	if err := s.store.ResetUnread(sessionID, asAdmin); err != nil {
		return nil, err
	}

	return messages, nil
}

func (s *SupportService) SendMessage(sessionID string, sender *models.User, text string) (*models.ChatMessage, error) {
	session, err := s.store.FindSessionByID(sessionID)
	if err != nil {
		return nil, err
	}

	if session.Status == models.SessionClosed {
		return nil, ErrSessionClosed
	}

	isAdmin := sender.IsAdmin()
	if !isAdmin && session.UserID != sender.ID {
		return nil, errors.New("session belongs to another user")
	}

	msg := &models.ChatMessage{
		SessionID:  sessionID,
		SenderID:   sender.ID,
		SenderName: sender.Name,
		Text:       text,
		IsAdmin:    isAdmin,
		Timestamp:  time.Now(),
	}

	if err := s.store.CreateMessage(msg); err != nil {
		return nil, err
	}

	if err := s.store.TouchSession(sessionID, msg.Timestamp, isAdmin); err != nil {
		return nil, err
	}

	return msg, nil
}

func (s *SupportService) Sessions() ([]models.SupportSession, error) {
	return s.store.ListSessions()
}

func (s *SupportService) CloseSession(sessionID, adminID string) error {
	return s.store.CloseSession(sessionID, adminID)
}

// SessionForUser loads a session and verifies the caller may read it.
func (s *SupportService) SessionForUser(sessionID string, user *models.User) (*models.SupportSession, error) {
	session, err := s.store.FindSessionByID(sessionID)
	if err != nil {
		return nil, err
	}

	if !user.IsAdmin() && session.UserID != user.ID {
		return nil, errors.New("session belongs to another user")
	}

	return session, nil
}
