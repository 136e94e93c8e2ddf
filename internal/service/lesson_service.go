package service

import (
	"github.com/google/uuid"

	"skillpath-backend/internal/model"
	"skillpath-backend/internal/video"
	"skillpath-backend/utilities"
)

// LessonTopic is one requested lesson slot.
type LessonTopic struct {
	Title    string
	Category string
}

// LessonService turns topic titles into lessons. It keeps a 1:1
// correspondence between requested topics and produced lessons: a topic
// whose video cannot be resolved yields a placeholder, never a dropped
// slot, and the builder itself never fails.
type LessonService interface {
	BuildLessons(topics []LessonTopic, maxCount int) []model.Lesson
}

type lessonService struct {
	resolver video.Searcher
}

func NewLessonService(resolver video.Searcher) LessonService {
	return &lessonService{resolver: resolver}
}

// candidates per topic, so a dead first hit still has backups
const lessonCandidateLimit = 3

func (s *lessonService) BuildLessons(topics []LessonTopic, maxCount int) []model.Lesson {
	count := len(topics)
	if count > maxCount {
		count = maxCount
	}

	lessons := make([]model.Lesson, 0, count)
	for i := 0; i < count; i++ {
		topic := topics[i]

		records, err := s.resolver.Resolve(topic.Title, video.ResolveOptions{
			Limit:    lessonCandidateLimit,
			Category: topic.Category,
		})
		if err != nil {
			utilities.Warn("lesson resolution failed for %q: %v", topic.Title, err)
		}

		var picked *video.VideoRecord
		for j := range records {
			if records[j].ID != "" {
				picked = &records[j]
				break
			}
		}

		if picked == nil {
			lessons = append(lessons, placeholderLesson(topic.Title, i))
			continue
		}

		lessons = append(lessons, model.Lesson{
			ID:              uuid.New().String(),
			Title:           topic.Title,
			VideoID:         picked.ID,
			DurationMinutes: (picked.DurationSeconds + 59) / 60,
			ViewCount:       picked.ViewCount,
			Thumbnail:       picked.Thumbnail,
			ChannelTitle:    picked.ChannelTitle,
			Position:        i,
		})
	}
	return lessons
}

func placeholderLesson(title string, position int) model.Lesson {
	return model.Lesson{
		ID:          uuid.New().String(),
		Title:       title,
		VideoID:     "",
		Description: "Video currently unavailable. Use the lesson title to search manually.",
		Position:    position,
	}
}
