package repository

import (
	"errors"

	"gorm.io/gorm"

	"skillpath-backend/internal/db"
	"skillpath-backend/internal/model"
)

type CourseRepository interface {
	CreateCourse(course *model.UserCourse) error
	GetCourses(userID string) ([]model.UserCourse, error)
	GetCourseByID(userID, courseID string) (*model.UserCourse, error)
	SaveCourse(course *model.UserCourse) error
	CountCourses(userID string) (int64, error)
}

type courseRepository struct{}

func NewCourseRepository() CourseRepository {
	return &courseRepository{}
}

func (r *courseRepository) CreateCourse(course *model.UserCourse) error {
	return db.GetDB().Create(course).Error
}

// GetCourses returns the user's courses newest-first, with modules and
// lessons in navigation order.
func (r *courseRepository) GetCourses(userID string) ([]model.UserCourse, error) {
	var courses []model.UserCourse
	err := db.GetDB().
		Preload("Modules", func(tx *gorm.DB) *gorm.DB { return tx.Order("position asc") }).
		Preload("Modules.Lessons", func(tx *gorm.DB) *gorm.DB { return tx.Order("position asc") }).
		Where("user_id = ?", userID).
		Order("created_at desc").
		Find(&courses).Error
	return courses, err
}

func (r *courseRepository) GetCourseByID(userID, courseID string) (*model.UserCourse, error) {
	var course model.UserCourse
	err := db.GetDB().
		Preload("Modules", func(tx *gorm.DB) *gorm.DB { return tx.Order("position asc") }).
		Preload("Modules.Lessons", func(tx *gorm.DB) *gorm.DB { return tx.Order("position asc") }).
		Where("user_id = ? AND id = ?", userID, courseID).
		First(&course).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &course, nil
}

func (r *courseRepository) SaveCourse(course *model.UserCourse) error {
	return db.GetDB().Session(&gorm.Session{FullSaveAssociations: true}).Save(course).Error
}

func (r *courseRepository) CountCourses(userID string) (int64, error) {
	var count int64
	err := db.GetDB().Model(&model.UserCourse{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
