package service

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/google/uuid"

	"skillpath-backend/internal/ai"
	"skillpath-backend/internal/model"
	"skillpath-backend/internal/repository"
)

const (
	assessmentQuestionCount = 5
	assessmentPassThreshold = 70
)

// SubmitResult is what a graded submission returns to the caller.
type SubmitResult struct {
	Passed bool         `json:"passed"`
	Score  int          `json:"score"`
	Badge  *model.Badge `json:"badge,omitempty"`
}

// AssessmentService runs the per-course quiz lifecycle: create-or-resume an
// open assessment, grade a submission against the stored correct answers,
// and award the expert badge on a pass.
type AssessmentService interface {
	CreateOrResume(userID, courseID string) (*model.Assessment, error)
	Submit(userID, courseID string, answers map[int]string) (*SubmitResult, error)
}

type assessmentService struct {
	assessmentRepo repository.AssessmentRepository
	courseRepo     repository.CourseRepository
	aiClient       ai.Client
	achievements   AchievementService
}

func NewAssessmentService(
	assessmentRepo repository.AssessmentRepository,
	courseRepo repository.CourseRepository,
	aiClient ai.Client,
	achievements AchievementService,
) AssessmentService {
	return &assessmentService{
		assessmentRepo: assessmentRepo,
		courseRepo:     courseRepo,
		aiClient:       aiClient,
		achievements:   achievements,
	}
}

// CreateOrResume returns the course's open assessment unchanged when one
// exists; otherwise it generates a fresh question set from the AI backend
// and persists it as the new open assessment.
func (s *assessmentService) CreateOrResume(userID, courseID string) (*model.Assessment, error) {
	open, err := s.assessmentRepo.GetOpenByCourse(userID, courseID)
	if err != nil {
		return nil, err
	}
	if open != nil {
		return open, nil
	}

	course, err := s.courseRepo.GetCourseByID(userID, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, errors.New("course not found")
	}

	topic := course.Title
	if len(course.Skills) > 0 {
		topic = fmt.Sprintf("%s (%s)", course.Title, strings.Join(course.Skills, ", "))
	}
	level := course.Level
	if level == "" {
		level = "Beginner"
	}

	questions, err := s.aiClient.GenerateAssessment(topic, level, assessmentQuestionCount)
	if err != nil {
		return nil, fmt.Errorf("failed to generate assessment: %w", err)
	}

	assessment := &model.Assessment{
		ID:        uuid.New().String(),
		UserID:    userID,
		CourseID:  courseID,
		Completed: false,
		Questions: questions,
		CreatedAt: time.Now(),
	}
	for i := range assessment.Questions {
		assessment.Questions[i].AssessmentID = assessment.ID
	}

	if err := s.assessmentRepo.CreateAssessment(assessment); err != nil {
		return nil, err
	}
	return assessment, nil
}

// Submit grades the open assessment. Answers are keyed by question index;
// a missing answer simply counts as incorrect. Once graded, the assessment
// is permanently completed and a retry needs a new one.
func (s *assessmentService) Submit(userID, courseID string, answers map[int]string) (*SubmitResult, error) {
	assessment, err := s.assessmentRepo.GetOpenByCourse(userID, courseID)
	if err != nil {
		return nil, err
	}
	if assessment == nil {
		return nil, errors.New("assessment not found")
	}
	if len(assessment.Questions) == 0 {
		return nil, errors.New("assessment has no questions")
	}

	correct := 0
	for i := range assessment.Questions {
		answer := answers[i]
		assessment.Questions[i].UserAnswer = answer
		if answer == assessment.Questions[i].CorrectAnswer {
			correct++
		}
	}

	score := int(math.Round(100 * float64(correct) / float64(len(assessment.Questions))))
	passed := score >= assessmentPassThreshold

	now := time.Now()
	assessment.Completed = true
	assessment.Score = score
	assessment.Passed = passed
	assessment.Timestamp = &now

	if err := s.assessmentRepo.SaveAssessment(assessment); err != nil {
		return nil, err
	}

	result := &SubmitResult{Passed: passed, Score: score}
	if passed {
		result.Badge = s.awardExpertBadge(userID, courseID, score)
	}
	return result, nil
}

func (s *assessmentService) awardExpertBadge(userID, courseID string, score int) *model.Badge {
	courseTitle := "Course"
	if course, err := s.courseRepo.GetCourseByID(userID, courseID); err == nil && course != nil {
		courseTitle = course.Title
	}

	badge := &model.Badge{
		ID:          "badge-assessment-" + courseID,
		UserID:      userID,
		Kind:        model.BadgeKindCourseAssessment,
		Title:       fmt.Sprintf("%s Expert", courseTitle),
		Description: fmt.Sprintf("Passed the %s assessment with a score of %d%%", courseTitle, score),
		CourseID:    courseID,
		IssuedAt:    time.Now(),
	}
	if err := s.achievements.AddBadge(badge); err != nil {
		return nil
	}
	return badge
}
