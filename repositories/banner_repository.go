package repositories

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/adhamyosry771-star/filex-design/models"
)

type BannerRepository struct{}

func NewBannerRepository() *BannerRepository {
	return &BannerRepository{}
}

func (r *BannerRepository) Create(banner *models.Banner) error {
	query := `
		INSERT INTO banners (id, image_url, title, is_active, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	banner.ID = uuid.NewString()
	banner.CreatedAt = time.Now()

	_, err := models.DB.Exec(
		context.Background(),
		query,
		banner.ID,
		banner.ImageURL,
		banner.Title,
		banner.IsActive,
		banner.CreatedAt,
	)

	return err
}

func (r *BannerRepository) List(activeOnly bool) ([]models.Banner, error) {
	query := `SELECT id, image_url, title, is_active, created_at FROM banners`
	if activeOnly {
		query += ` WHERE is_active=true`
	}
	query += ` ORDER BY created_at DESC`

	rows, err := models.DB.Query(context.Background(), query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	banners := []models.Banner{}
	for rows.Next() {
		var b models.Banner
		if err := rows.Scan(&b.ID, &b.ImageURL, &b.Title, &b.IsActive, &b.CreatedAt); err != nil {
			return nil, err
		}
		banners = append(banners, b)
	}

	return banners, rows.Err()
}

func (r *BannerRepository) FindByID(id string) (*models.Banner, error) {
	query := `SELECT id, image_url, title, is_active, created_at FROM banners WHERE id=$1`

	b := &models.Banner{}
	err := models.DB.QueryRow(context.Background(), query, id).Scan(
		&b.ID, &b.ImageURL, &b.Title, &b.IsActive, &b.CreatedAt,
	)

	if err != nil {
		return nil, err
	}

	return b, nil
}

func (r *BannerRepository) SetActive(id string, active bool) error {
	_, err := models.DB.Exec(context.Background(),
		"UPDATE banners SET is_active=$1 WHERE id=$2", active, id)
	return err
}

func (r *BannerRepository) Delete(id string) error {
	_, err := models.DB.Exec(context.Background(), "DELETE FROM banners WHERE id=$1", id)
	return err
}
