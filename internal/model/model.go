package model

import (
	"time"

	"gorm.io/datatypes"
)

// Course sources.
const (
	SourceTrending = "trending"
	SourceRoadmap  = "roadmap"
	SourceCustom   = "custom"
)

// Course statuses. Status is a pure function of progress: no lessons done
// means enrolled, partial progress means in-progress, 100 means completed.
const (
	StatusEnrolled   = "enrolled"
	StatusInProgress = "in-progress"
	StatusCompleted  = "completed"
)

// Badge kinds (discriminant for the two badge flavors).
const (
	BadgeKindCourseCompletion = "course-completion"
	BadgeKindCourseAssessment = "course-assessment"
)

type User struct {
	ID        string    `json:"id" gorm:"primaryKey;type:text"`
	Username  string    `json:"username"`
	Email     string    `json:"email" gorm:"uniqueIndex"`
	Password  string    `json:"password,omitempty"` // Exclude from JSON responses
	FirstName string    `json:"first_name"`
	LastName  string    `json:"last_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Lesson is a single video-backed learning unit. An empty VideoID marks an
// unresolved placeholder: the UI shows a search link instead of a player.
type Lesson struct {
	ID              string `json:"id" gorm:"primaryKey;type:text"`
	ModuleID        string `json:"module_id" gorm:"index"`
	Title           string `json:"title" gorm:"not null"`
	VideoID         string `json:"video_id"`
	DurationMinutes int    `json:"duration_minutes,omitempty"`
	ViewCount       int64  `json:"view_count,omitempty"`
	Thumbnail       string `json:"thumbnail,omitempty"`
	ChannelTitle    string `json:"channel_title,omitempty"`
	Completed       bool   `json:"completed"`
	Notes           string `json:"notes,omitempty"`
	Description     string `json:"description,omitempty"`
	Position        int    `json:"position"`
}

// Module is an ordered group of lessons. Position drives Prev/Next
// navigation; lessons are never empty for assembled modules.
type Module struct {
	ID          string     `json:"id" gorm:"primaryKey;type:text"`
	CourseID    string     `json:"course_id" gorm:"index"`
	Title       string     `json:"title" gorm:"not null"`
	Description string     `json:"description,omitempty"`
	Lessons     []Lesson   `json:"lessons" gorm:"foreignKey:ModuleID"`
	IsRequired  bool       `json:"is_required,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	Position    int        `json:"position"`
}

// UserCourse is a user's enrollment instance. Progress always equals
// round(100 * completed lessons / total lessons) over every module and is
// recomputed after each lesson mutation. CertificateIssued is monotonic.
type UserCourse struct {
	ID                string                      `json:"id" gorm:"primaryKey;type:text"`
	UserID            string                      `json:"user_id" gorm:"index"`
	Source            string                      `json:"source"`
	Title             string                      `json:"title" gorm:"not null"`
	Subtitle          string                      `json:"subtitle,omitempty"`
	Description       string                      `json:"description"`
	Thumbnail         string                      `json:"thumbnail,omitempty"`
	Level             string                      `json:"level,omitempty"`
	Category          string                      `json:"category,omitempty"`
	Skills            datatypes.JSONSlice[string] `json:"skills"`
	EstimatedHours    int                         `json:"estimated_hours"`
	Modules           []Module                    `json:"modules" gorm:"foreignKey:CourseID"`
	CreatedAt         time.Time                   `json:"created_at"`
	UpdatedAt         time.Time                   `json:"updated_at"`
	Status            string                      `json:"status"`
	Progress          int                         `json:"progress"`
	CertificateIssued bool                        `json:"certificate_issued"`
}

// Badge is an append-only achievement fact, de-duplicated by ID on insert.
type Badge struct {
	ID          string    `json:"id" gorm:"primaryKey;type:text"`
	UserID      string    `json:"user_id" gorm:"index"`
	Kind        string    `json:"kind"`
	Title       string    `json:"title" gorm:"not null"`
	Description string    `json:"description,omitempty"`
	CourseID    string    `json:"course_id"`
	IssuedAt    time.Time `json:"issued_at"`
}

// LearningRoadmap is the legacy coarse tracker: completion is counted per
// course, not per lesson. Roadmaps, unlike courses, support hard delete.
type LearningRoadmap struct {
	ID                string                      `json:"id" gorm:"primaryKey;type:text"`
	UserID            string                      `json:"user_id" gorm:"index"`
	JobID             string                      `json:"job_id"`
	JobTitle          string                      `json:"job_title"`
	Company           string                      `json:"company"`
	TotalDays         int                         `json:"total_days"`
	Skills            datatypes.JSONSlice[string] `json:"skills"`
	Courses           []RoadmapCourse             `json:"courses" gorm:"foreignKey:RoadmapID"`
	Progress          int                         `json:"progress"`
	CertificateIssued bool                        `json:"certificate_issued"`
	CreatedAt         time.Time                   `json:"created_at"`
}

type RoadmapCourse struct {
	ID           string `json:"id" gorm:"primaryKey;type:text"`
	RoadmapID    string `json:"roadmap_id" gorm:"index"`
	Title        string `json:"title"`
	Skill        string `json:"skill"`
	DurationDays int    `json:"duration_days"`
	Completed    bool   `json:"completed"`
	Position     int    `json:"position"`
}

// Assessment is a per-course quiz. At most one incomplete assessment exists
// per course; once submitted, Completed is permanently true and a retry
// requires a fresh assessment.
type Assessment struct {
	ID        string               `json:"id" gorm:"primaryKey;type:text"`
	UserID    string               `json:"user_id" gorm:"index"`
	CourseID  string               `json:"course_id" gorm:"index"`
	Completed bool                 `json:"completed"`
	Score     int                  `json:"score"`
	Passed    bool                 `json:"passed"`
	Timestamp *time.Time           `json:"timestamp,omitempty"`
	Questions []AssessmentQuestion `json:"questions" gorm:"foreignKey:AssessmentID"`
	CreatedAt time.Time            `json:"created_at"`
}

type AssessmentQuestion struct {
	ID            string                      `json:"id" gorm:"primaryKey;type:text"`
	AssessmentID  string                      `json:"assessment_id" gorm:"index"`
	Question      string                      `json:"question" gorm:"not null"`
	Options       datatypes.JSONSlice[string] `json:"options"`
	CorrectAnswer string                      `json:"correct_answer"`
	UserAnswer    string                      `json:"user_answer,omitempty"`
	Position      int                         `json:"position"`
}

// TrendingCourse is the catalog entry a user enrolls from. It is an input
// shape, not a persisted aggregate.
type TrendingCourse struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Subtitle    string   `json:"subtitle,omitempty"`
	Description string   `json:"description"`
	Thumbnail   string   `json:"thumbnail,omitempty"`
	Level       string   `json:"level,omitempty"`
	Category    string   `json:"category,omitempty"`
	Skills      []string `json:"skills"`
}
