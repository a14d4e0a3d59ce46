package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/adhamyosry771-star/filex-design/models"
)

type SupportRepository struct{}

func NewSupportRepository() *SupportRepository {
	return &SupportRepository{}
}

func (r *SupportRepository) FindOpenSessionByUser(userID string) (*models.SupportSession, error) {
	query := `
		SELECT id, user_id, user_name, COALESCE(admin_id, ''), status, last_message_at, unread_by_user, unread_by_admin
		FROM support_sessions WHERE user_id=$1 AND status=$2
	`

	s := &models.SupportSession{}
	err := models.DB.QueryRow(context.Background(), query, userID, models.SessionOpen).Scan(
		&s.ID, &s.UserID, &s.UserName, &s.AdminID, &s.Status,
		&s.LastMessageAt, &s.UnreadByUser, &s.UnreadByAdmin,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return s, nil
}

func (r *SupportRepository) FindSessionByID(id string) (*models.SupportSession, error) {
	query := `
		SELECT id, user_id, user_name, COALESCE(admin_id, ''), status, last_message_at, unread_by_user, unread_by_admin
		FROM support_sessions WHERE id=$1
	`

	s := &models.SupportSession{}
	err := models.DB.QueryRow(context.Background(), query, id).Scan(
		&s.ID, &s.UserID, &s.UserName, &s.AdminID, &s.Status,
		&s.LastMessageAt, &s.UnreadByUser, &s.UnreadByAdmin,
	)

	if err != nil {
		return nil, err
	}

	return s, nil
}

func (r *SupportRepository) CreateSession(s *models.SupportSession) error {
	query := `
		INSERT INTO support_sessions (id, user_id, user_name, admin_id, status, last_message_at, unread_by_user, unread_by_admin)
		VALUES ($1, $2, $3, NULLIF($4, ''), $5, $6, $7, $8)
	`
	s.ID = uuid.NewString()
	s.LastMessageAt = time.Now()

	_, err := models.DB.Exec(
		context.Background(),
		query,
		s.ID, s.UserID, s.UserName, s.AdminID, s.Status,
		s.LastMessageAt, s.UnreadByUser, s.UnreadByAdmin,
	)

	return err
}

func (r *SupportRepository) ListSessions() ([]models.SupportSession, error) {
	query := `
		SELECT id, user_id, user_name, COALESCE(admin_id, ''), status, last_message_at, unread_by_user, unread_by_admin
		FROM support_sessions ORDER BY last_message_at DESC
	`

	rows, err := models.DB.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	sessions := []models.SupportSession{}
	for rows.Next() {
		var s models.SupportSession
		if err := rows.Scan(
			&s.ID, &s.UserID, &s.UserName, &s.AdminID, &s.Status,
			&s.LastMessageAt, &s.UnreadByUser, &s.UnreadByAdmin,
		); err != nil {
			return nil, err
		}
		sessions = append(sessions, s)
	}

	return sessions, rows.Err()
}

func (r *SupportRepository) CloseSession(id, adminID string) error {
	_, err := models.DB.Exec(context.Background(),
		"UPDATE support_sessions SET status=$1, admin_id=$2 WHERE id=$3",
		models.SessionClosed, adminID, id)
	return err
}

func (r *SupportRepository) CreateMessage(m *models.ChatMessage) error {
	query := `
		INSERT INTO support_messages (id, session_id, sender_id, sender_name, text, is_admin, timestamp)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	m.ID = uuid.NewString()

	_, err := models.DB.Exec(
		context.Background(),
		query,
		m.ID, m.SessionID, m.SenderID, m.SenderName, m.Text, m.IsAdmin, m.Timestamp,
	)

	return err
}

func (r *SupportRepository) ListMessages(sessionID string) ([]models.ChatMessage, error) {
	query := `
		SELECT id, session_id, sender_id, sender_name, text, is_admin, timestamp
		FROM support_messages WHERE session_id=$1 ORDER BY timestamp ASC
	`

	rows, err := models.DB.Query(context.Background(), query, sessionID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.ChatMessage{}
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.SessionID, &m.SenderID, &m.SenderName, &m.Text, &m.IsAdmin, &m.Timestamp); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

// TouchSession bumps last_message_at and increments the unread counter on
// the side that did not send the message.
func (r *SupportRepository) TouchSession(sessionID string, at time.Time, fromAdmin bool) error {
	query := "UPDATE support_sessions SET last_message_at=$1, unread_by_admin=unread_by_admin+1 WHERE id=$2"
	if fromAdmin {
		query = "UPDATE support_sessions SET last_message_at=$1, unread_by_user=unread_by_user+1 WHERE id=$2"
	}

	_, err := models.DB.Exec(context.Background(), query, at, sessionID)
	return err
}

func (r *SupportRepository) ResetUnread(sessionID string, forAdmin bool) error {
	query := "UPDATE support_sessions SET unread_by_user=0 WHERE id=$1"
	if forAdmin {
		query = "UPDATE support_sessions SET unread_by_admin=0 WHERE id=$1"
	}

	_, err := models.DB.Exec(context.Background(), query, sessionID)
	return err
}
