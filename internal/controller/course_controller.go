package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillpath-backend/internal/model"
	"skillpath-backend/internal/service"
	"skillpath-backend/utilities"
)

type CourseController struct {
	courseService   service.CourseService
	progressService service.ProgressService
}

func NewCourseController(courseService service.CourseService, progressService service.ProgressService) *CourseController {
	return &CourseController{courseService: courseService, progressService: progressService}
}

func (ctrl *CourseController) GetCourses(c *gin.Context) {
	courses, err := ctrl.courseService.GetCourses(utilities.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"courses": courses})
}

func (ctrl *CourseController) GetCourse(c *gin.Context) {
	course, err := ctrl.courseService.GetCourseByID(utilities.CurrentUserID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	if course == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "course not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": course})
}

func (ctrl *CourseController) Enroll(c *gin.Context) {
	var trending model.TrendingCourse
	if err := c.ShouldBindJSON(&trending); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	course, err := ctrl.courseService.EnrollFromTrending(utilities.CurrentUserID(c), trending)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"course": course})
}

func (ctrl *CourseController) CreateFromRoadmap(c *gin.Context) {
	var body struct {
		Skill         string   `json:"skill"`
		YoutubeTitles []string `json:"youtube_titles"`
		Level         string   `json:"level"`
		Category      string   `json:"category"`
		Description   string   `json:"description"`
		Thumbnail     string   `json:"thumbnail"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	course, err := ctrl.courseService.CreateCourseFromRoadmap(
		utilities.CurrentUserID(c), body.Skill, body.YoutubeTitles,
		service.RoadmapCourseOptions{
			Level:       body.Level,
			Category:    body.Category,
			Description: body.Description,
			Thumbnail:   body.Thumbnail,
		})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"course": course})
}

func (ctrl *CourseController) UpdateLessonCompletion(c *gin.Context) {
	var body struct {
		Completed bool `json:"completed"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	course, err := ctrl.progressService.UpdateLessonCompletion(
		utilities.CurrentUserID(c), c.Param("id"), c.Param("moduleId"), c.Param("lessonId"), body.Completed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": course})
}

func (ctrl *CourseController) UpdateLessonNotes(c *gin.Context) {
	var body struct {
		Notes string `json:"notes"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	course, err := ctrl.progressService.UpdateLessonNotes(
		utilities.CurrentUserID(c), c.Param("id"), c.Param("moduleId"), c.Param("lessonId"), body.Notes)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": course})
}

func (ctrl *CourseController) MarkCompleted(c *gin.Context) {
	course, err := ctrl.progressService.MarkCourseCompleted(utilities.CurrentUserID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"course": course})
}
