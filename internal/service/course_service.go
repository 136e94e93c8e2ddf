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

// RoadmapCourseOptions carry the optional metadata for a roadmap-generated
// course.
type RoadmapCourseOptions struct {
	Level       string
	Category    string
	Description string
	Thumbnail   string
}

type CourseService interface {
	// GetCourses lists the user's courses newest-first, seeding the sample
	// course on a first run so the list is never empty.
	GetCourses(userID string) ([]model.UserCourse, error)
	GetCourseByID(userID, courseID string) (*model.UserCourse, error)
	EnrollFromTrending(userID string, trending model.TrendingCourse) (*model.UserCourse, error)
	CreateCourseFromRoadmap(userID, skillLabel string, youtubeTitles []string, opts RoadmapCourseOptions) (*model.UserCourse, error)
}

type courseService struct {
	courseRepo repository.CourseRepository
	lessons    LessonService
}

func NewCourseService(courseRepo repository.CourseRepository, lessons LessonService) CourseService {
	return &courseService{courseRepo: courseRepo, lessons: lessons}
}

func (s *courseService) GetCourses(userID string) ([]model.UserCourse, error) {
	count, err := s.courseRepo.CountCourses(userID)
	if err != nil {
		return nil, err
	}
	if count == 0 {
		if err := s.courseRepo.CreateCourse(sampleCourse(userID)); err != nil {
			utilities.Warn("failed to seed sample course for %s: %v", userID, err)
		}
	}
	return s.courseRepo.GetCourses(userID)
}

func (s *courseService) GetCourseByID(userID, courseID string) (*model.UserCourse, error) {
	return s.courseRepo.GetCourseByID(userID, courseID)
}

// EnrollFromTrending assembles a course in a fixed pedagogical order:
// Introduction, Core Fundamentals, an Advanced Concepts module for
// non-beginner levels, and Practical Applications.
func (s *courseService) EnrollFromTrending(userID string, trending model.TrendingCourse) (*model.UserCourse, error) {
	if strings.TrimSpace(trending.Title) == "" {
		return nil, fmt.Errorf("course title is required")
	}

	title := trending.Title
	category := trending.Category

	var modules []model.Module

	modules = append(modules, s.buildModule("Introduction",
		fmt.Sprintf("Get oriented with %s", title),
		[]LessonTopic{
			{Title: fmt.Sprintf("Introduction to %s", title), Category: category},
			{Title: fmt.Sprintf("%s basics for beginners", title), Category: category},
		}))

	modules = append(modules, s.buildModule("Core Fundamentals",
		fmt.Sprintf("The core skills behind %s", title),
		coreFundamentalTopics(trending)))

	if isAdvancedLevel(trending.Level) {
		modules = append(modules, s.buildModule("Advanced Concepts",
			fmt.Sprintf("Go deeper into %s", title),
			[]LessonTopic{
				{Title: fmt.Sprintf("Advanced %s techniques", title), Category: category},
				{Title: fmt.Sprintf("%s best practices", title), Category: category},
			}))
	}

	modules = append(modules, s.buildModule("Practical Applications",
		fmt.Sprintf("Apply %s to real work", title),
		[]LessonTopic{
			{Title: fmt.Sprintf("%s project tutorial", title), Category: category},
			{Title: fmt.Sprintf("Build a real project with %s", title), Category: category},
		}))

	course := newCourse(userID, model.SourceTrending, modules)
	course.Title = trending.Title
	course.Subtitle = trending.Subtitle
	course.Description = trending.Description
	course.Thumbnail = trending.Thumbnail
	course.Level = trending.Level
	course.Category = trending.Category
	course.Skills = trending.Skills

	if err := s.courseRepo.CreateCourse(course); err != nil {
		return nil, err
	}
	return course, nil
}

// CreateCourseFromRoadmap shapes a course from AI-suggested video titles.
// Four or more titles split into Introduction / Core Concepts / Advanced
// Topics; fewer collapse into a single module so small roadmaps don't
// produce degenerate empty modules.
func (s *courseService) CreateCourseFromRoadmap(userID, skillLabel string, youtubeTitles []string, opts RoadmapCourseOptions) (*model.UserCourse, error) {
	if strings.TrimSpace(skillLabel) == "" {
		return nil, fmt.Errorf("skill label is required")
	}
	if len(youtubeTitles) == 0 {
		return nil, fmt.Errorf("at least one video title is required")
	}

	topics := make([]LessonTopic, len(youtubeTitles))
	for i, t := range youtubeTitles {
		topics[i] = LessonTopic{Title: t, Category: opts.Category}
	}

	var modules []model.Module
	if len(topics) >= 4 {
		modules = append(modules, s.buildModule("Introduction",
			fmt.Sprintf("First steps with %s", skillLabel), topics[:2]))
		modules = append(modules, s.buildModule("Core Concepts",
			fmt.Sprintf("The essentials of %s", skillLabel), topics[2:4]))
		if remaining := topics[4:]; len(remaining) > 0 {
			if len(remaining) > 4 {
				remaining = remaining[:4]
			}
			modules = append(modules, s.buildModule("Advanced Topics",
				fmt.Sprintf("Beyond the basics of %s", skillLabel), remaining))
		}
	} else {
		modules = append(modules, s.buildModule(
			fmt.Sprintf("Learn %s", skillLabel),
			fmt.Sprintf("A focused set of lessons on %s", skillLabel),
			topics))
	}

	course := newCourse(userID, model.SourceRoadmap, modules)
	course.Title = skillLabel
	course.Subtitle = "Curated from your learning roadmap"
	course.Description = opts.Description
	if course.Description == "" {
		course.Description = fmt.Sprintf("A roadmap-generated course covering %s.", skillLabel)
	}
	course.Thumbnail = opts.Thumbnail
	course.Level = opts.Level
	course.Category = opts.Category
	course.Skills = []string{skillLabel}

	if err := s.courseRepo.CreateCourse(course); err != nil {
		return nil, err
	}
	return course, nil
}

func (s *courseService) buildModule(title, description string, topics []LessonTopic) model.Module {
	lessons := s.lessons.BuildLessons(topics, len(topics))
	return model.Module{
		ID:          uuid.New().String(),
		Title:       title,
		Description: description,
		Lessons:     lessons,
		IsRequired:  true,
	}
}

func coreFundamentalTopics(trending model.TrendingCourse) []LessonTopic {
	topics := make([]LessonTopic, 0, 2)
	for _, skill := range trending.Skills {
		if len(topics) == 2 {
			break
		}
		topics = append(topics, LessonTopic{
			Title:    fmt.Sprintf("%s fundamentals", skill),
			Category: trending.Category,
		})
	}
	for len(topics) < 2 {
		topics = append(topics, LessonTopic{
			Title:    fmt.Sprintf("%s core concepts", trending.Title),
			Category: trending.Category,
		})
	}
	return topics
}

func isAdvancedLevel(level string) bool {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "intermediate", "advanced":
		return true
	}
	return false
}

// newCourse stamps ids, positions and the initial enrollment state, and
// computes estimated hours at 30 minutes per lesson with a 2 hour floor.
func newCourse(userID, source string, modules []model.Module) *model.UserCourse {
	courseID := uuid.New().String()
	totalLessons := 0
	for i := range modules {
		modules[i].CourseID = courseID
		modules[i].Position = i
		for j := range modules[i].Lessons {
			modules[i].Lessons[j].ModuleID = modules[i].ID
			modules[i].Lessons[j].Position = j
		}
		totalLessons += len(modules[i].Lessons)
	}

	return &model.UserCourse{
		ID:                courseID,
		UserID:            userID,
		Source:            source,
		Modules:           modules,
		EstimatedHours:    estimatedHours(totalLessons),
		CreatedAt:         time.Now(),
		Status:            model.StatusEnrolled,
		Progress:          0,
		CertificateIssued: false,
	}
}

func estimatedHours(totalLessons int) int {
	hours := int(math.Ceil(float64(totalLessons) * 0.5))
	if hours < 2 {
		return 2
	}
	return hours
}

// sampleCourse is the hardcoded first-run course: pre-resolved video ids so
// the UI has content before any network resolution happens.
func sampleCourse(userID string) *model.UserCourse {
	mk := func(title, videoID, channel string, minutes int, position int) model.Lesson {
		return model.Lesson{
			ID:              uuid.New().String(),
			Title:           title,
			VideoID:         videoID,
			DurationMinutes: minutes,
			Thumbnail:       fmt.Sprintf("https://i.ytimg.com/vi/%s/hqdefault.jpg", videoID),
			ChannelTitle:    channel,
			Position:        position,
		}
	}

	modules := []model.Module{
		{
			ID:          uuid.New().String(),
			Title:       "JavaScript Basics",
			Description: "Syntax, variables and control flow",
			IsRequired:  true,
			Lessons: []model.Lesson{
				mk("JavaScript Crash Course For Beginners", "hdI2bqOjy3c", "Traversy Media", 100, 0),
				mk("Learn JavaScript - Full Course for Beginners", "PkZNo7MFNFg", "freeCodeCamp.org", 202, 1),
			},
		},
		{
			ID:          uuid.New().String(),
			Title:       "Functions and Objects",
			Description: "The building blocks of every JavaScript program",
			IsRequired:  true,
			Lessons: []model.Lesson{
				mk("JavaScript Programming - Full Course", "jS4aFq5-91M", "freeCodeCamp.org", 421, 0),
				mk("JavaScript Tutorial for Beginners", "W6NZfCO5SIk", "Programming with Mosh", 48, 1),
			},
		},
		{
			ID:          uuid.New().String(),
			Title:       "Asynchronous JavaScript",
			Description: "Callbacks, promises and async/await",
			IsRequired:  true,
			Lessons: []model.Lesson{
				mk("Async JS Crash Course - Callbacks, Promises, Async Await", "PoRJizFvM7s", "Traversy Media", 37, 0),
				mk("JavaScript DOM Crash Course", "0ik6X4DJKCc", "Traversy Media", 39, 1),
			},
		},
	}

	course := newCourse(userID, model.SourceCustom, modules)
	course.Title = "Modern JavaScript Foundations"
	course.Subtitle = "Your starter course"
	course.Description = "A curated JavaScript course to get you started right away."
	course.Level = "Beginner"
	course.Category = "Web Development"
	course.Skills = []string{"JavaScript", "Web Development"}
	return course
}
