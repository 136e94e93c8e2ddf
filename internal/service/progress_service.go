package service

import (
	"fmt"
	"math"
	"time"

	"skillpath-backend/internal/model"
	"skillpath-backend/internal/repository"
	"skillpath-backend/utilities"
)

// CourseCompletedEvent is published on the event bus when a course's
// certificate is first issued.
type CourseCompletedEvent struct {
	UserID      string
	CourseID    string
	CourseTitle string
}

// ProgressService is the state machine over a user's course. Lesson
// completion rolls up into module and course progress; status follows
// progress; reaching 100% flips the monotonic certificate flag and emits
// exactly one badge.
type ProgressService interface {
	UpdateLessonCompletion(userID, courseID, moduleID, lessonID string, completed bool) (*model.UserCourse, error)
	UpdateLessonNotes(userID, courseID, moduleID, lessonID, notes string) (*model.UserCourse, error)
	MarkCourseCompleted(userID, courseID string) (*model.UserCourse, error)
}

type progressService struct {
	courseRepo   repository.CourseRepository
	achievements AchievementService
}

func NewProgressService(courseRepo repository.CourseRepository, achievements AchievementService) ProgressService {
	return &progressService{courseRepo: courseRepo, achievements: achievements}
}

// UpdateLessonCompletion sets the lesson's completed flag and recomputes
// the course aggregates. Unknown course, module or lesson ids are a silent
// no-op: progress updates are best-effort, never fatal to the caller.
func (s *progressService) UpdateLessonCompletion(userID, courseID, moduleID, lessonID string, completed bool) (*model.UserCourse, error) {
	course, err := s.courseRepo.GetCourseByID(userID, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, nil
	}

	lesson := findLesson(course, moduleID, lessonID)
	if lesson == nil {
		return course, nil
	}
	lesson.Completed = completed

	s.recompute(course)

	if err := s.courseRepo.SaveCourse(course); err != nil {
		return nil, err
	}
	return course, nil
}

// UpdateLessonNotes is a pure data update: no progress or side-effect
// recomputation.
func (s *progressService) UpdateLessonNotes(userID, courseID, moduleID, lessonID, notes string) (*model.UserCourse, error) {
	course, err := s.courseRepo.GetCourseByID(userID, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, nil
	}

	lesson := findLesson(course, moduleID, lessonID)
	if lesson == nil {
		return course, nil
	}
	lesson.Notes = notes

	if err := s.courseRepo.SaveCourse(course); err != nil {
		return nil, err
	}
	return course, nil
}

// MarkCourseCompleted is an explicit override for flows that finalize a
// course outside the lesson-by-lesson UI. It does not touch lesson flags,
// so the stored progress can run ahead of actual lesson state; that
// desynchronization is intentional (instructor-override semantics).
func (s *progressService) MarkCourseCompleted(userID, courseID string) (*model.UserCourse, error) {
	course, err := s.courseRepo.GetCourseByID(userID, courseID)
	if err != nil {
		return nil, err
	}
	if course == nil {
		return nil, nil
	}

	course.Progress = 100
	course.Status = model.StatusCompleted
	s.issueCertificate(course)

	if err := s.courseRepo.SaveCourse(course); err != nil {
		return nil, err
	}
	return course, nil
}

// recompute reestablishes the aggregates over all lessons in all modules:
// progress == round(100 * completed / total), status as a pure function of
// progress, module completion stamps, and certificate issuance at 100%.
func (s *progressService) recompute(course *model.UserCourse) {
	total, done := 0, 0
	now := time.Now()
	for i := range course.Modules {
		m := &course.Modules[i]
		moduleDone := 0
		for j := range m.Lessons {
			total++
			if m.Lessons[j].Completed {
				done++
				moduleDone++
			}
		}
		if len(m.Lessons) > 0 && moduleDone == len(m.Lessons) {
			if m.CompletedAt == nil {
				m.CompletedAt = &now
			}
		} else {
			m.CompletedAt = nil
		}
	}

	if total == 0 {
		course.Progress = 0
	} else {
		course.Progress = int(math.Round(100 * float64(done) / float64(total)))
	}

	switch {
	case done == 0:
		course.Status = model.StatusEnrolled
	case course.Progress < 100:
		course.Status = model.StatusInProgress
	default:
		course.Status = model.StatusCompleted
	}

	if course.Progress == 100 {
		s.issueCertificate(course)
	}
}

// issueCertificate flips the monotonic certificate flag and emits the
// completion badge exactly once. Repeated calls at 100% are no-ops because
// the flag is checked first.
func (s *progressService) issueCertificate(course *model.UserCourse) {
	if course.CertificateIssued {
		return
	}
	course.CertificateIssued = true

	badge := &model.Badge{
		ID:          "badge-course-" + course.ID,
		UserID:      course.UserID,
		Kind:        model.BadgeKindCourseCompletion,
		Title:       fmt.Sprintf("%s Completion", course.Title),
		Description: fmt.Sprintf("Completed all lessons of %s", course.Title),
		CourseID:    course.ID,
		IssuedAt:    time.Now(),
	}
	if err := s.achievements.AddBadge(badge); err != nil {
		utilities.Error("failed to store completion badge for course %s: %v", course.ID, err)
	}

	utilities.GlobalEventBus.Publish(utilities.EventCourseCompleted, CourseCompletedEvent{
		UserID:      course.UserID,
		CourseID:    course.ID,
		CourseTitle: course.Title,
	})
}

func findLesson(course *model.UserCourse, moduleID, lessonID string) *model.Lesson {
	for i := range course.Modules {
		if course.Modules[i].ID != moduleID {
			continue
		}
		for j := range course.Modules[i].Lessons {
			if course.Modules[i].Lessons[j].ID == lessonID {
				return &course.Modules[i].Lessons[j]
			}
		}
	}
	return nil
}
