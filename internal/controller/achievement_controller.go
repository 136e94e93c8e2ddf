package controller

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"skillpath-backend/internal/service"
	"skillpath-backend/utilities"
)

type AchievementController struct {
	achievementService service.AchievementService
}

func NewAchievementController(achievementService service.AchievementService) *AchievementController {
	return &AchievementController{achievementService: achievementService}
}

func (ctrl *AchievementController) GetBadges(c *gin.Context) {
	badges, err := ctrl.achievementService.GetBadges(utilities.CurrentUserID(c))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"badges": badges})
}
