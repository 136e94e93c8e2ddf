package repository

import (
	"errors"

	"gorm.io/gorm"

	"skillpath-backend/internal/db"
	"skillpath-backend/internal/model"
)

type RoadmapRepository interface {
	CreateRoadmap(roadmap *model.LearningRoadmap) error
	GetRoadmaps(userID string) ([]model.LearningRoadmap, error)
	GetRoadmapByID(userID, roadmapID string) (*model.LearningRoadmap, error)
	SaveRoadmap(roadmap *model.LearningRoadmap) error
	DeleteRoadmap(userID, roadmapID string) error
}

type roadmapRepository struct{}

func NewRoadmapRepository() RoadmapRepository {
	return &roadmapRepository{}
}

func (r *roadmapRepository) CreateRoadmap(roadmap *model.LearningRoadmap) error {
	return db.GetDB().Create(roadmap).Error
}

func (r *roadmapRepository) GetRoadmaps(userID string) ([]model.LearningRoadmap, error) {
	var roadmaps []model.LearningRoadmap
	err := db.GetDB().
		Preload("Courses", func(tx *gorm.DB) *gorm.DB { return tx.Order("position asc") }).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&roadmaps).Error
	return roadmaps, err
}

func (r *roadmapRepository) GetRoadmapByID(userID, roadmapID string) (*model.LearningRoadmap, error) {
	var roadmap model.LearningRoadmap
	err := db.GetDB().
		Preload("Courses", func(tx *gorm.DB) *gorm.DB { return tx.Order("position asc") }).
		Where("user_id = ? AND id = ?", userID, roadmapID).
		First(&roadmap).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &roadmap, nil
}

func (r *roadmapRepository) SaveRoadmap(roadmap *model.LearningRoadmap) error {
	return db.GetDB().Session(&gorm.Session{FullSaveAssociations: true}).Save(roadmap).Error
}

func (r *roadmapRepository) DeleteRoadmap(userID, roadmapID string) error {
	tx := db.GetDB().Where("user_id = ? AND id = ?", userID, roadmapID).Delete(&model.LearningRoadmap{})
	if tx.Error != nil {
		return tx.Error
	}
	// Courses hang off the roadmap id; remove them with their owner.
	return db.GetDB().Where("roadmap_id = ?", roadmapID).Delete(&model.RoadmapCourse{}).Error
}
