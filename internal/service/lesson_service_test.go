package service

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skillpath-backend/internal/video"
)

func topics(titles ...string) []LessonTopic {
	out := make([]LessonTopic, len(titles))
	for i, t := range titles {
		out[i] = LessonTopic{Title: t}
	}
	return out
}

func TestBuildLessonsSlotPreservation(t *testing.T) {
	// Total resolution failure must still yield one lesson per topic.
	builder := NewLessonService(&stubResolver{err: errors.New("all providers down")})

	lessons := builder.BuildLessons(topics("a1", "a2", "a3", "a4", "a5"), 5)

	require.Len(t, lessons, 5)
	for i, lesson := range lessons {
		assert.Equal(t, "", lesson.VideoID)
		assert.NotEmpty(t, lesson.Description)
		assert.Equal(t, i, lesson.Position)
	}
}

func TestBuildLessonsPicksFirstUsableCandidate(t *testing.T) {
	resolver := &stubResolver{records: []video.VideoRecord{
		{ID: "", Title: "dead"},
		{ID: "good-id", Title: "alive", ChannelTitle: "Channel", DurationSeconds: 600, ViewCount: 42},
	}}
	builder := NewLessonService(resolver)

	lessons := builder.BuildLessons(topics("go generics"), 1)

	require.Len(t, lessons, 1)
	assert.Equal(t, "good-id", lessons[0].VideoID)
	assert.Equal(t, "go generics", lessons[0].Title)
	assert.Equal(t, "Channel", lessons[0].ChannelTitle)
	assert.Equal(t, 10, lessons[0].DurationMinutes)
	assert.False(t, lessons[0].Completed)
}

func TestBuildLessonsRespectsMaxCount(t *testing.T) {
	builder := NewLessonService(&stubResolver{records: []video.VideoRecord{{ID: "x"}}})

	lessons := builder.BuildLessons(topics("t1", "t2", "t3", "t4", "t5"), 3)

	assert.Len(t, lessons, 3)
}

func TestBuildLessonsPlaceholderOnEmptyResults(t *testing.T) {
	builder := NewLessonService(&stubResolver{records: nil})

	lessons := builder.BuildLessons(topics("obscure topic"), 1)

	require.Len(t, lessons, 1)
	assert.Equal(t, "", lessons[0].VideoID)
	assert.Equal(t, "obscure topic", lessons[0].Title)
}
