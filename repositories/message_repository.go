package repositories

import (
	"context"

	"github.com/google/uuid"

	"github.com/adhamyosry771-star/filex-design/models"
)

type MessageRepository struct{}

func NewMessageRepository() *MessageRepository {
	return &MessageRepository{}
}

func (r *MessageRepository) Create(msg *models.Message) error {
	query := `
		INSERT INTO messages (id, name, phone, text, date, read)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	msg.ID = uuid.NewString()

	_, err := models.DB.Exec(
		context.Background(),
		query,
		msg.ID,
		msg.Name,
		msg.Phone,
		msg.Text,
		msg.Date,
		msg.Read,
	)

	return err
}

func (r *MessageRepository) List() ([]models.Message, error) {
	query := `SELECT id, name, phone, text, date, read FROM messages ORDER BY date DESC`

	rows, err := models.DB.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	messages := []models.Message{}
	for rows.Next() {
		var m models.Message
		if err := rows.Scan(&m.ID, &m.Name, &m.Phone, &m.Text, &m.Date, &m.Read); err != nil {
			return nil, err
		}
		messages = append(messages, m)
	}

	return messages, rows.Err()
}

func (r *MessageRepository) MarkRead(id string) error {
	_, err := models.DB.Exec(context.Background(),
		"UPDATE messages SET read=true WHERE id=$1", id)
	return err
}
