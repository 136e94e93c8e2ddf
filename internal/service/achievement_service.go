package service

import (
	"fmt"
	"time"

	"skillpath-backend/internal/model"
	"skillpath-backend/internal/repository"
)

// AchievementService stores badges as append-only facts. Insertion is
// idempotent by badge id: an existing id is left untouched, so a badge is
// never overwritten or duplicated.
type AchievementService interface {
	AddBadge(badge *model.Badge) error
	GetBadges(userID string) ([]model.Badge, error)
}

type achievementService struct {
	badgeRepo repository.BadgeRepository
}

func NewAchievementService(badgeRepo repository.BadgeRepository) AchievementService {
	return &achievementService{badgeRepo: badgeRepo}
}

func (s *achievementService) AddBadge(badge *model.Badge) error {
	if badge.ID == "" {
		return fmt.Errorf("badge id is required")
	}

	existing, err := s.badgeRepo.GetBadgeByID(badge.ID)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	if badge.IssuedAt.IsZero() {
		badge.IssuedAt = time.Now()
	}
	return s.badgeRepo.CreateBadge(badge)
}

func (s *achievementService) GetBadges(userID string) ([]model.Badge, error) {
	return s.badgeRepo.GetBadges(userID)
}
