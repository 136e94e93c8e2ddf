package service

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillpath-backend/internal/model"
)

func cannedQuestions(n int) []model.AssessmentQuestion {
	questions := make([]model.AssessmentQuestion, n)
	for i := range questions {
		questions[i] = model.AssessmentQuestion{
			ID:            fmt.Sprintf("q%d", i),
			Question:      fmt.Sprintf("Question %d", i),
			Options:       []string{"A", "B", "C", "D"},
			CorrectAnswer: "A",
			Position:      i,
		}
	}
	return questions
}

func newAssessmentFixture(t *testing.T) (AssessmentService, *fakeAssessmentRepo, *fakeBadgeRepo, *stubAIClient) {
	t.Helper()
	assessmentRepo := &fakeAssessmentRepo{}
	courseRepo := &fakeCourseRepo{}
	badgeRepo := &fakeBadgeRepo{}
	aiClient := &stubAIClient{questions: cannedQuestions(5)}

	require.NoError(t, courseRepo.CreateCourse(&model.UserCourse{
		ID:     "c1",
		UserID: "u1",
		Title:  "Go Fundamentals",
		Skills: []string{"Go"},
	}))

	svc := NewAssessmentService(assessmentRepo, courseRepo, aiClient, NewAchievementService(badgeRepo))
	return svc, assessmentRepo, badgeRepo, aiClient
}

func TestCreateOrResumeGeneratesFreshAssessment(t *testing.T) {
	svc, repo, _, aiClient := newAssessmentFixture(t)

	assessment, err := svc.CreateOrResume("u1", "c1")
	require.NoError(t, err)

	assert.Equal(t, 1, aiClient.calls)
	assert.False(t, assessment.Completed)
	require.Len(t, assessment.Questions, 5)
	for _, q := range assessment.Questions {
		assert.Equal(t, assessment.ID, q.AssessmentID)
	}
	assert.Len(t, repo.assessments, 1)
}

func TestCreateOrResumeReturnsOpenAssessmentUnchanged(t *testing.T) {
	svc, _, _, aiClient := newAssessmentFixture(t)

	first, err := svc.CreateOrResume("u1", "c1")
	require.NoError(t, err)

	second, err := svc.CreateOrResume("u1", "c1")
	require.NoError(t, err)

	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, 1, aiClient.calls, "resuming must not regenerate questions")
}

func TestCreateOrResumeUnknownCourse(t *testing.T) {
	svc, _, _, _ := newAssessmentFixture(t)

	_, err := svc.CreateOrResume("u1", "ghost")
	assert.EqualError(t, err, "course not found")
}

func TestSubmitScoringFourOfFivePasses(t *testing.T) {
	svc, _, badgeRepo, _ := newAssessmentFixture(t)
	_, err := svc.CreateOrResume("u1", "c1")
	require.NoError(t, err)

	result, err := svc.Submit("u1", "c1", map[int]string{
		0: "A", 1: "A", 2: "A", 3: "A", 4: "B",
	})
	require.NoError(t, err)

	assert.Equal(t, 80, result.Score)
	assert.True(t, result.Passed)
	require.NotNil(t, result.Badge)
	assert.Equal(t, "Go Fundamentals Expert", result.Badge.Title)
	assert.Equal(t, model.BadgeKindCourseAssessment, result.Badge.Kind)
	assert.Len(t, badgeRepo.badges, 1)
}

func TestSubmitScoringThreeOfFiveFails(t *testing.T) {
	svc, repo, badgeRepo, _ := newAssessmentFixture(t)
	_, err := svc.CreateOrResume("u1", "c1")
	require.NoError(t, err)

	result, err := svc.Submit("u1", "c1", map[int]string{
		0: "A", 1: "A", 2: "A", 3: "B", 4: "C",
	})
	require.NoError(t, err)

	assert.Equal(t, 60, result.Score)
	assert.False(t, result.Passed)
	assert.Nil(t, result.Badge)
	assert.Empty(t, badgeRepo.badges)

	// The assessment is permanently closed regardless of outcome.
	assert.True(t, repo.assessments[0].Completed)
	assert.NotNil(t, repo.assessments[0].Timestamp)
}

func TestSubmitUnansweredQuestionsCountAsIncorrect(t *testing.T) {
	svc, _, _, _ := newAssessmentFixture(t)
	_, err := svc.CreateOrResume("u1", "c1")
	require.NoError(t, err)

	result, err := svc.Submit("u1", "c1", map[int]string{0: "A"})
	require.NoError(t, err)

	assert.Equal(t, 20, result.Score)
	assert.False(t, result.Passed)
}

func TestSubmitWithoutOpenAssessment(t *testing.T) {
	svc, _, _, _ := newAssessmentFixture(t)

	_, err := svc.Submit("u1", "c1", map[int]string{0: "A"})
	assert.EqualError(t, err, "assessment not found")
}

func TestSubmitTwiceRequiresNewAssessment(t *testing.T) {
	svc, _, _, aiClient := newAssessmentFixture(t)
	_, err := svc.CreateOrResume("u1", "c1")
	require.NoError(t, err)

	_, err = svc.Submit("u1", "c1", map[int]string{0: "A"})
	require.NoError(t, err)

	_, err = svc.Submit("u1", "c1", map[int]string{0: "A"})
	assert.EqualError(t, err, "assessment not found")

	// A retry starts from a fresh question set.
	_, err = svc.CreateOrResume("u1", "c1")
	require.NoError(t, err)
	assert.Equal(t, 2, aiClient.calls)
}
