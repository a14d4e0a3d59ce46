package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/adhamyosry771-star/filex-design/models"
)

type NotificationRepository struct{}

func NewNotificationRepository() *NotificationRepository {
	return &NotificationRepository{}
}

func (r *NotificationRepository) Create(n *models.Notification) error {
	query := `
		INSERT INTO notifications (id, user_id, title, message, type, is_read, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
	`
	n.ID = uuid.NewString()
	n.CreatedAt = time.Now()

	_, err := models.DB.Exec(
		context.Background(),
		query,
		n.ID, n.UserID, n.Title, n.Message, n.Type, n.IsRead, n.CreatedAt,
	)

	return err
}

func (r *NotificationRepository) ListByUser(userID string) ([]models.Notification, error) {
	query := `SELECT id, user_id, title, message, type, is_read, created_at
		FROM notifications WHERE user_id=$1 ORDER BY created_at DESC`

	rows, err := models.DB.Query(context.Background(), query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	notifications := []models.Notification{}
	for rows.Next() {
		var n models.Notification
		if err := rows.Scan(&n.ID, &n.UserID, &n.Title, &n.Message, &n.Type, &n.IsRead, &n.CreatedAt); err != nil {
			return nil, err
		}
		notifications = append(notifications, n)
	}

	return notifications, rows.Err()
}

func (r *NotificationRepository) MarkRead(id, userID string) error {
	_, err := models.DB.Exec(context.Background(),
		"UPDATE notifications SET is_read=true WHERE id=$1 AND user_id=$2", id, userID)
	return err
}

func (r *NotificationRepository) CreateAnnouncement(a *models.Announcement) error {
	query := `
		INSERT INTO announcements (id, title, message, created_by, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	a.ID = uuid.NewString()
	a.CreatedAt = time.Now()

	_, err := models.DB.Exec(
		context.Background(),
		query,
		a.ID, a.Title, a.Message, a.CreatedBy, a.CreatedAt,
	)

	return err
}

func (r *NotificationRepository) ListAnnouncements() ([]models.Announcement, error) {
	query := `SELECT id, title, message, created_by, created_at
		FROM announcements ORDER BY created_at DESC`

	rows, err := models.DB.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	announcements := []models.Announcement{}
	for rows.Next() {
		var a models.Announcement
		if err := rows.Scan(&a.ID, &a.Title, &a.Message, &a.CreatedBy, &a.CreatedAt); err != nil {
			return nil, err
		}
		announcements = append(announcements, a)
	}

	return announcements, rows.Err()
}
