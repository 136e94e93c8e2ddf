package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillpath-backend/internal/service"
	"skillpath-backend/utilities"
)

type RoadmapController struct {
	roadmapService service.RoadmapService
}

func NewRoadmapController(roadmapService service.RoadmapService) *RoadmapController {
	return &RoadmapController{roadmapService: roadmapService}
}

func (ctrl *RoadmapController) GetRoadmaps(c *gin.Context) {
	roadmaps, err := ctrl.roadmapService.GetRoadmaps(utilities.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"roadmaps": roadmaps})
}

func (ctrl *RoadmapController) CreateRoadmap(c *gin.Context) {
	var input service.RoadmapInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	roadmap, err := ctrl.roadmapService.CreateRoadmap(utilities.CurrentUserID(c), input)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"roadmap": roadmap})
}

func (ctrl *RoadmapController) UpdateCourseCompletion(c *gin.Context) {
	var body struct {
		Completed bool `json:"completed"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	roadmap, err := ctrl.roadmapService.UpdateCourseCompletion(
		utilities.CurrentUserID(c), c.Param("id"), c.Param("courseId"), body.Completed)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"roadmap": roadmap})
}

func (ctrl *RoadmapController) DeleteRoadmap(c *gin.Context) {
	if err := ctrl.roadmapService.DeleteRoadmap(utilities.CurrentUserID(c), c.Param("id")); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Roadmap deleted"})
}
