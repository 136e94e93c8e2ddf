package service

import (
	"errors"

	"skillpath-backend/internal/model"
	"skillpath-backend/internal/video"
)

// In-memory stand-ins for the gorm-backed repositories and the external
// collaborators, shared by the service tests.

type fakeCourseRepo struct {
	courses []*model.UserCourse
}

func (r *fakeCourseRepo) CreateCourse(course *model.UserCourse) error {
	r.courses = append([]*model.UserCourse{course}, r.courses...)
	return nil
}

func (r *fakeCourseRepo) GetCourses(userID string) ([]model.UserCourse, error) {
	var out []model.UserCourse
	for _, c := range r.courses {
		if c.UserID == userID {
			out = append(out, *c)
		}
	}
	return out, nil
}

func (r *fakeCourseRepo) GetCourseByID(userID, courseID string) (*model.UserCourse, error) {
	for _, c := range r.courses {
		if c.UserID == userID && c.ID == courseID {
			return c, nil
		}
	}
	return nil, nil
}

func (r *fakeCourseRepo) SaveCourse(course *model.UserCourse) error {
	for i, c := range r.courses {
		if c.ID == course.ID {
			r.courses[i] = course
			return nil
		}
	}
	return errors.New("course not found")
}

func (r *fakeCourseRepo) CountCourses(userID string) (int64, error) {
	var count int64
	for _, c := range r.courses {
		if c.UserID == userID {
			count++
		}
	}
	return count, nil
}

type fakeBadgeRepo struct {
	badges []model.Badge
}

func (r *fakeBadgeRepo) CreateBadge(badge *model.Badge) error {
	r.badges = append([]model.Badge{*badge}, r.badges...)
	return nil
}

func (r *fakeBadgeRepo) GetBadgeByID(badgeID string) (*model.Badge, error) {
	for i := range r.badges {
		if r.badges[i].ID == badgeID {
			return &r.badges[i], nil
		}
	}
	return nil, nil
}

func (r *fakeBadgeRepo) GetBadges(userID string) ([]model.Badge, error) {
	var out []model.Badge
	for _, b := range r.badges {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

type fakeRoadmapRepo struct {
	roadmaps []*model.LearningRoadmap
}

func (r *fakeRoadmapRepo) CreateRoadmap(roadmap *model.LearningRoadmap) error {
	r.roadmaps = append([]*model.LearningRoadmap{roadmap}, r.roadmaps...)
	return nil
}

func (r *fakeRoadmapRepo) GetRoadmaps(userID string) ([]model.LearningRoadmap, error) {
	var out []model.LearningRoadmap
	for _, rm := range r.roadmaps {
		if rm.UserID == userID {
			out = append(out, *rm)
		}
	}
	return out, nil
}

func (r *fakeRoadmapRepo) GetRoadmapByID(userID, roadmapID string) (*model.LearningRoadmap, error) {
	for _, rm := range r.roadmaps {
		if rm.UserID == userID && rm.ID == roadmapID {
			return rm, nil
		}
	}
	return nil, nil
}

func (r *fakeRoadmapRepo) SaveRoadmap(roadmap *model.LearningRoadmap) error {
	for i, rm := range r.roadmaps {
		if rm.ID == roadmap.ID {
			r.roadmaps[i] = roadmap
			return nil
		}
	}
	return errors.New("roadmap not found")
}

func (r *fakeRoadmapRepo) DeleteRoadmap(userID, roadmapID string) error {
	for i, rm := range r.roadmaps {
		if rm.UserID == userID && rm.ID == roadmapID {
			r.roadmaps = append(r.roadmaps[:i], r.roadmaps[i+1:]...)
			return nil
		}
	}
	return nil
}

type fakeAssessmentRepo struct {
	assessments []*model.Assessment
}

func (r *fakeAssessmentRepo) CreateAssessment(assessment *model.Assessment) error {
	r.assessments = append(r.assessments, assessment)
	return nil
}

func (r *fakeAssessmentRepo) GetOpenByCourse(userID, courseID string) (*model.Assessment, error) {
	for _, a := range r.assessments {
		if a.UserID == userID && a.CourseID == courseID && !a.Completed {
			return a, nil
		}
	}
	return nil, nil
}

func (r *fakeAssessmentRepo) GetAssessments(userID string) ([]model.Assessment, error) {
	var out []model.Assessment
	for _, a := range r.assessments {
		if a.UserID == userID {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *fakeAssessmentRepo) SaveAssessment(assessment *model.Assessment) error {
	for i, a := range r.assessments {
		if a.ID == assessment.ID {
			r.assessments[i] = assessment
			return nil
		}
	}
	return errors.New("assessment not found")
}

// stubResolver satisfies video.Searcher with scripted results.
type stubResolver struct {
	records []video.VideoRecord
	err     error
	queries []string
}

func (s *stubResolver) Resolve(title string, opts video.ResolveOptions) ([]video.VideoRecord, error) {
	s.queries = append(s.queries, title)
	if s.err != nil {
		return nil, s.err
	}
	return s.records, nil
}

// stubAIClient satisfies ai.Client with a canned question set.
type stubAIClient struct {
	questions []model.AssessmentQuestion
	err       error
	calls     int
}

func (s *stubAIClient) GenerateAssessment(topic, level string, questionCount int) ([]model.AssessmentQuestion, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	return s.questions, nil
}
