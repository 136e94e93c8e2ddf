package repository

import (
	"errors"

	"gorm.io/gorm"

	"skillpath-backend/internal/db"
	"skillpath-backend/internal/model"
)

type AssessmentRepository interface {
	CreateAssessment(assessment *model.Assessment) error
	// GetOpenByCourse returns the at-most-one incomplete assessment for the
	// course, or nil when none exists.
	GetOpenByCourse(userID, courseID string) (*model.Assessment, error)
	GetAssessments(userID string) ([]model.Assessment, error)
	SaveAssessment(assessment *model.Assessment) error
}

type assessmentRepository struct{}

func NewAssessmentRepository() AssessmentRepository {
	return &assessmentRepository{}
}

func (r *assessmentRepository) CreateAssessment(assessment *model.Assessment) error {
	return db.GetDB().Create(assessment).Error
}

func (r *assessmentRepository) GetOpenByCourse(userID, courseID string) (*model.Assessment, error) {
	var assessment model.Assessment
	err := db.GetDB().
		Preload("Questions", func(tx *gorm.DB) *gorm.DB { return tx.Order("position asc") }).
		Where("user_id = ? AND course_id = ? AND completed = ?", userID, courseID, false).
		First(&assessment).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &assessment, nil
}

func (r *assessmentRepository) GetAssessments(userID string) ([]model.Assessment, error) {
	var assessments []model.Assessment
	err := db.GetDB().
		Preload("Questions", func(tx *gorm.DB) *gorm.DB { return tx.Order("position asc") }).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&assessments).Error
	return assessments, err
}

func (r *assessmentRepository) SaveAssessment(assessment *model.Assessment) error {
	return db.GetDB().Session(&gorm.Session{FullSaveAssociations: true}).Save(assessment).Error
}
