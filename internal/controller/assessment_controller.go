package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillpath-backend/internal/service"
	"skillpath-backend/utilities"
)

type AssessmentController struct {
	assessmentService service.AssessmentService
}

func NewAssessmentController(assessmentService service.AssessmentService) *AssessmentController {
	return &AssessmentController{assessmentService: assessmentService}
}

// StartAssessment resumes the course's open assessment or creates a fresh
// one from the AI backend.
func (ctrl *AssessmentController) StartAssessment(c *gin.Context) {
	assessment, err := ctrl.assessmentService.CreateOrResume(utilities.CurrentUserID(c), c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"assessment": assessment})
}

func (ctrl *AssessmentController) SubmitAssessment(c *gin.Context) {
	var body struct {
		Answers map[int]string `json:"answers"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	result, err := ctrl.assessmentService.Submit(utilities.CurrentUserID(c), c.Param("id"), body.Answers)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}
