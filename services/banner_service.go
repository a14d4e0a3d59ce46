package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/adhamyosry771-star/filex-design/models"
	"github.com/adhamyosry771-star/filex-design/repositories"
)

const (
	activeBannersCacheKey = "banners:active"
	activeBannersCacheTTL = 10 * time.Second
)

type BannerStore interface {
	Create(banner *models.Banner) error
	List(activeOnly bool) ([]models.Banner, error)
	FindByID(id string) (*models.Banner, error)
	SetActive(id string, active bool) error
	Delete(id string) error
}

type BannerService struct {
	banners BannerStore
}

func NewBannerService() *BannerService {
	return &BannerService{
		banners: repositories.NewBannerRepository(),
	}
}

func (s *BannerService) AddBanner(req models.AddBannerRequest) (*models.Banner, error) {
	banner := &models.Banner{
		ImageURL: req.ImageURL,
		Title:    req.Title,
		IsActive: true,
	}

	if err := s.banners.Create(banner); err != nil {
		return nil, err
	}

	s.invalidateCache()
	return banner, nil
}

// Banners returns the banner list. The active-only variant feeds the
// landing-page carousel, which polls every few seconds, so it goes through
// the short-TTL Redis cache when one is available.
func (s *BannerService) Banners(activeOnly bool) ([]models.Banner, error) {
	if activeOnly && models.RedisClient != nil {
		cached, err := models.RedisClient.Get(context.Background(), activeBannersCacheKey).Result()
		if err == nil {
			var banners []models.Banner
			if json.Unmarshal([]byte(cached), &banners) == nil {
				return banners, nil
			}
		}
	}

	banners, err := s.banners.List(activeOnly)
	if err != nil {
		return nil, err
	}

	if activeOnly && models.RedisClient != nil {
		if data, err := json.Marshal(banners); err == nil {
			models.RedisClient.Set(context.Background(), activeBannersCacheKey, data, activeBannersCacheTTL)
		}
	}

	return banners, nil
}

// ToggleStatus inverts is_active exactly once and returns the new value.
func (s *BannerService) ToggleStatus(id string) (bool, error) {
	banner, err := s.banners.FindByID(id)
	if err != nil {
		return false, err
	}

	newState := !banner.IsActive
	if err := s.banners.SetActive(id, newState); err != nil {
		return false, err
	}

	s.invalidateCache()
	return newState, nil
}

func (s *BannerService) DeleteBanner(id string) error {
	banner, err := s.banners.FindByID(id)
	if err != nil {
		return err
	}

	if err := s.banners.Delete(id); err != nil {
		return err
	}

	s.invalidateCache()
	removeStoredImage(banner.ImageURL)
	return nil
}

func (s *BannerService) invalidateCache() {
	if models.RedisClient != nil {
		models.RedisClient.Del(context.Background(), activeBannersCacheKey)
	}
}
