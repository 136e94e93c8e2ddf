package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillpath-backend/internal/model"
)

func TestAddBadgeDeduplicatesByID(t *testing.T) {
	repo := &fakeBadgeRepo{}
	svc := NewAchievementService(repo)

	first := &model.Badge{
		ID:       "badge-1",
		UserID:   "u1",
		Kind:     model.BadgeKindCourseCompletion,
		Title:    "Original Title",
		CourseID: "c1",
	}
	require.NoError(t, svc.AddBadge(first))

	// Same id, different payload: the original must survive untouched.
	require.NoError(t, svc.AddBadge(&model.Badge{
		ID:     "badge-1",
		UserID: "u1",
		Title:  "Impostor Title",
	}))

	badges, err := svc.GetBadges("u1")
	require.NoError(t, err)
	require.Len(t, badges, 1)
	assert.Equal(t, "Original Title", badges[0].Title)
}

func TestAddBadgeStampsIssuedAt(t *testing.T) {
	svc := NewAchievementService(&fakeBadgeRepo{})

	badge := &model.Badge{ID: "badge-2", UserID: "u1", Title: "T"}
	require.NoError(t, svc.AddBadge(badge))
	assert.WithinDuration(t, time.Now(), badge.IssuedAt, time.Second)
}

func TestAddBadgeRequiresID(t *testing.T) {
	svc := NewAchievementService(&fakeBadgeRepo{})

	err := svc.AddBadge(&model.Badge{UserID: "u1", Title: "No ID"})
	assert.Error(t, err)
}
