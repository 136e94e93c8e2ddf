package service

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"skillpath-backend/internal/model"
	"skillpath-backend/internal/repository"
	"skillpath-backend/utilities"
)

// RoadmapInput is the job-match payload a roadmap is created from.
type RoadmapInput struct {
	JobID     string               `json:"job_id"`
	JobTitle  string               `json:"job_title"`
	Company   string               `json:"company"`
	TotalDays int                  `json:"total_days"`
	Skills    []string             `json:"skills"`
	Courses   []RoadmapCourseInput `json:"courses"`
}

type RoadmapCourseInput struct {
	Title        string `json:"title"`
	Skill        string `json:"skill"`
	DurationDays int    `json:"duration_days"`
}

// RoadmapService is the legacy coarse-grained tracker: completion is per
// course rather than per lesson, with the same monotonic certificate rule.
// Roadmaps, unlike courses, support hard delete.
type RoadmapService interface {
	CreateRoadmap(userID string, input RoadmapInput) (*model.LearningRoadmap, error)
	GetRoadmaps(userID string) ([]model.LearningRoadmap, error)
	UpdateCourseCompletion(userID, roadmapID, courseID string, completed bool) (*model.LearningRoadmap, error)
	DeleteRoadmap(userID, roadmapID string) error
}

type roadmapService struct {
	roadmapRepo  repository.RoadmapRepository
	achievements AchievementService
}

func NewRoadmapService(roadmapRepo repository.RoadmapRepository, achievements AchievementService) RoadmapService {
	return &roadmapService{roadmapRepo: roadmapRepo, achievements: achievements}
}

func (s *roadmapService) CreateRoadmap(userID string, input RoadmapInput) (*model.LearningRoadmap, error) {
	if strings.TrimSpace(input.JobTitle) == "" {
		return nil, fmt.Errorf("job title is required")
	}
	if len(input.Courses) == 0 {
		return nil, fmt.Errorf("a roadmap needs at least one course")
	}

	roadmap := &model.LearningRoadmap{
		ID:        uuid.New().String(),
		UserID:    userID,
		JobID:     input.JobID,
		JobTitle:  input.JobTitle,
		Company:   input.Company,
		TotalDays: input.TotalDays,
		Skills:    input.Skills,
		CreatedAt: time.Now(),
	}
	for i, c := range input.Courses {
		roadmap.Courses = append(roadmap.Courses, model.RoadmapCourse{
			ID:           uuid.New().String(),
			RoadmapID:    roadmap.ID,
			Title:        c.Title,
			Skill:        c.Skill,
			DurationDays: c.DurationDays,
			Position:     i,
		})
	}

	if err := s.roadmapRepo.CreateRoadmap(roadmap); err != nil {
		return nil, err
	}
	return roadmap, nil
}

func (s *roadmapService) GetRoadmaps(userID string) ([]model.LearningRoadmap, error) {
	return s.roadmapRepo.GetRoadmaps(userID)
}

// UpdateCourseCompletion toggles one roadmap course and recomputes progress
// as the percentage of completed courses. Unknown ids are a silent no-op.
func (s *roadmapService) UpdateCourseCompletion(userID, roadmapID, courseID string, completed bool) (*model.LearningRoadmap, error) {
	roadmap, err := s.roadmapRepo.GetRoadmapByID(userID, roadmapID)
	if err != nil {
		return nil, err
	}
	if roadmap == nil {
		return nil, nil
	}

	found := false
	done := 0
	for i := range roadmap.Courses {
		if roadmap.Courses[i].ID == courseID {
			roadmap.Courses[i].Completed = completed
			found = true
		}
		if roadmap.Courses[i].Completed {
			done++
		}
	}
	if !found {
		return roadmap, nil
	}

	if len(roadmap.Courses) > 0 {
		roadmap.Progress = int(math.Round(100 * float64(done) / float64(len(roadmap.Courses))))
	}

	if roadmap.Progress == 100 && !roadmap.CertificateIssued {
		roadmap.CertificateIssued = true
		badge := &model.Badge{
			ID:          "badge-roadmap-" + roadmap.ID,
			UserID:      userID,
			Kind:        model.BadgeKindCourseCompletion,
			Title:       fmt.Sprintf("%s Roadmap Completion", roadmap.JobTitle),
			Description: fmt.Sprintf("Completed every course on the %s roadmap", roadmap.JobTitle),
			CourseID:    roadmap.ID,
			IssuedAt:    time.Now(),
		}
		if err := s.achievements.AddBadge(badge); err != nil {
			utilities.Error("failed to store roadmap badge for %s: %v", roadmap.ID, err)
		}
		utilities.GlobalEventBus.Publish(utilities.EventRoadmapCompleted, CourseCompletedEvent{
			UserID:      userID,
			CourseID:    roadmap.ID,
			CourseTitle: fmt.Sprintf("%s Roadmap", roadmap.JobTitle),
		})
	}

	if err := s.roadmapRepo.SaveRoadmap(roadmap); err != nil {
		return nil, err
	}
	return roadmap, nil
}

func (s *roadmapService) DeleteRoadmap(userID, roadmapID string) error {
	return s.roadmapRepo.DeleteRoadmap(userID, roadmapID)
}
