package repository

import (
	"errors"

	"gorm.io/gorm"

	"skillpath-backend/internal/db"
	"skillpath-backend/internal/model"
)

type BadgeRepository interface {
	CreateBadge(badge *model.Badge) error
	GetBadgeByID(badgeID string) (*model.Badge, error)
	GetBadges(userID string) ([]model.Badge, error)
}

type badgeRepository struct{}

func NewBadgeRepository() BadgeRepository {
	return &badgeRepository{}
}

func (r *badgeRepository) CreateBadge(badge *model.Badge) error {
	return db.GetDB().Create(badge).Error
}

func (r *badgeRepository) GetBadgeByID(badgeID string) (*model.Badge, error) {
	var badge model.Badge
	err := db.GetDB().Where("id = ?", badgeID).First(&badge).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &badge, nil
}

func (r *badgeRepository) GetBadges(userID string) ([]model.Badge, error) {
	var badges []model.Badge
	err := db.GetDB().Where("user_id = ?", userID).Order("issued_at desc").Find(&badges).Error
	return badges, err
}
