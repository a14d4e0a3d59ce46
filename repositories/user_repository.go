package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/adhamyosry771-star/filex-design/models"
)

type UserRepository struct{}

func NewUserRepository() *UserRepository {
	return &UserRepository{}
}

func (r *UserRepository) Create(user *models.User) error {
	query := `
		INSERT INTO users (id, name, email, password, avatar, role, status, theme, language, joined_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	user.ID = uuid.NewString()
	user.JoinedAt = time.Now()

	_, err := models.DB.Exec(
		context.Background(),
		query,
		user.ID,
		user.Name,
		user.Email,
		user.Password,
		user.Avatar,
		user.Role,
		user.Status,
		user.Theme,
		user.Language,
		user.JoinedAt,
	)

	return err
}

// FindByEmail returns (nil, nil) when no account uses the address, so
// callers can tell "not registered" apart from a failed lookup.
func (r *UserRepository) FindByEmail(email string) (*models.User, error) {
	query := `SELECT id, name, email, password, avatar, role, status, theme, language, joined_at
		FROM users WHERE email = $1`

	user := &models.User{}
	err := models.DB.QueryRow(context.Background(), query, email).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.Avatar,
		&user.Role,
		&user.Status,
		&user.Theme,
		&user.Language,
		&user.JoinedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) FindByID(id string) (*models.User, error) {
	query := `SELECT id, name, email, password, avatar, role, status, theme, language, joined_at
		FROM users WHERE id = $1`

	user := &models.User{}
	err := models.DB.QueryRow(context.Background(), query, id).Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Password,
		&user.Avatar,
		&user.Role,
		&user.Status,
		&user.Theme,
		&user.Language,
		&user.JoinedAt,
	)

	if err != nil {
		return nil, err
	}

	return user, nil
}

func (r *UserRepository) UpdateProfile(user *models.User) error {
	_, err := models.DB.Exec(context.Background(),
		"UPDATE users SET name=$1, avatar=$2 WHERE id=$3",
		user.Name, user.Avatar, user.ID)
	return err
}

func (r *UserRepository) UpdatePreferences(userID, theme, language string) error {
	_, err := models.DB.Exec(context.Background(),
		"UPDATE users SET theme=$1, language=$2 WHERE id=$3",
		theme, language, userID)
	return err
}

func (r *UserRepository) UpdateStatus(userID, status string) error {
	_, err := models.DB.Exec(context.Background(),
		"UPDATE users SET status=$1 WHERE id=$2", status, userID)
	return err
}

func (r *UserRepository) List() ([]models.User, error) {
	query := `SELECT id, name, email, avatar, role, status, theme, language, joined_at
		FROM users ORDER BY joined_at DESC`

	rows, err := models.DB.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.Avatar, &u.Role,
			&u.Status, &u.Theme, &u.Language, &u.JoinedAt,
		); err != nil {
			return nil, err
		}
		users = append(users, u)
	}

	return users, rows.Err()
}

func (r *UserRepository) Delete(id string) error {
	_, err := models.DB.Exec(context.Background(), "DELETE FROM users WHERE id=$1", id)
	return err
}
