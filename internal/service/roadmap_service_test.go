package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillpath-backend/internal/model"
)

func newRoadmapFixture(t *testing.T) (RoadmapService, *fakeRoadmapRepo, *fakeBadgeRepo) {
	t.Helper()
	roadmapRepo := &fakeRoadmapRepo{}
	badgeRepo := &fakeBadgeRepo{}
	return NewRoadmapService(roadmapRepo, NewAchievementService(badgeRepo)), roadmapRepo, badgeRepo
}

func createTestRoadmap(t *testing.T, svc RoadmapService) *model.LearningRoadmap {
	t.Helper()
	roadmap, err := svc.CreateRoadmap("u1", RoadmapInput{
		JobID:     "job-1",
		JobTitle:  "Backend Engineer",
		Company:   "Acme",
		TotalDays: 30,
		Skills:    []string{"Go", "SQL"},
		Courses: []RoadmapCourseInput{
			{Title: "Go Basics", Skill: "Go", DurationDays: 15},
			{Title: "SQL Basics", Skill: "SQL", DurationDays: 15},
		},
	})
	require.NoError(t, err)
	return roadmap
}

func TestCreateRoadmapOrdersCourses(t *testing.T) {
	svc, _, _ := newRoadmapFixture(t)

	roadmap := createTestRoadmap(t, svc)

	require.Len(t, roadmap.Courses, 2)
	assert.Equal(t, 0, roadmap.Courses[0].Position)
	assert.Equal(t, 1, roadmap.Courses[1].Position)
	assert.Equal(t, 0, roadmap.Progress)
	assert.False(t, roadmap.CertificateIssued)
}

func TestCreateRoadmapValidation(t *testing.T) {
	svc, _, _ := newRoadmapFixture(t)

	_, err := svc.CreateRoadmap("u1", RoadmapInput{JobTitle: ""})
	assert.Error(t, err)

	_, err = svc.CreateRoadmap("u1", RoadmapInput{JobTitle: "X"})
	assert.Error(t, err, "roadmap without courses is rejected")
}

func TestUpdateCourseCompletionProgress(t *testing.T) {
	svc, _, badgeRepo := newRoadmapFixture(t)
	roadmap := createTestRoadmap(t, svc)

	updated, err := svc.UpdateCourseCompletion("u1", roadmap.ID, roadmap.Courses[0].ID, true)
	require.NoError(t, err)
	assert.Equal(t, 50, updated.Progress)
	assert.False(t, updated.CertificateIssued)
	assert.Empty(t, badgeRepo.badges)

	updated, err = svc.UpdateCourseCompletion("u1", roadmap.ID, roadmap.Courses[1].ID, true)
	require.NoError(t, err)
	assert.Equal(t, 100, updated.Progress)
	assert.True(t, updated.CertificateIssued)
	require.Len(t, badgeRepo.badges, 1)
	assert.Equal(t, "badge-roadmap-"+roadmap.ID, badgeRepo.badges[0].ID)
}

func TestRoadmapCertificateMonotonic(t *testing.T) {
	svc, _, badgeRepo := newRoadmapFixture(t)
	roadmap := createTestRoadmap(t, svc)

	for _, c := range roadmap.Courses {
		_, err := svc.UpdateCourseCompletion("u1", roadmap.ID, c.ID, true)
		require.NoError(t, err)
	}

	updated, err := svc.UpdateCourseCompletion("u1", roadmap.ID, roadmap.Courses[0].ID, false)
	require.NoError(t, err)
	assert.Equal(t, 50, updated.Progress)
	assert.True(t, updated.CertificateIssued, "certificate never resets")
	assert.Len(t, badgeRepo.badges, 1)
}

func TestUpdateCourseCompletionUnknownIDsNoOp(t *testing.T) {
	svc, _, _ := newRoadmapFixture(t)
	roadmap := createTestRoadmap(t, svc)

	missing, err := svc.UpdateCourseCompletion("u1", "ghost", "x", true)
	require.NoError(t, err)
	assert.Nil(t, missing)

	updated, err := svc.UpdateCourseCompletion("u1", roadmap.ID, "ghost-course", true)
	require.NoError(t, err)
	assert.Equal(t, 0, updated.Progress)
}

func TestDeleteRoadmap(t *testing.T) {
	svc, repo, _ := newRoadmapFixture(t)
	roadmap := createTestRoadmap(t, svc)

	require.NoError(t, svc.DeleteRoadmap("u1", roadmap.ID))
	assert.Empty(t, repo.roadmaps)
}
