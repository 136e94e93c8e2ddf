package controller

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"skillpath-backend/internal/video"
)

type VideoController struct {
	resolver video.Searcher
}

func NewVideoController(resolver video.Searcher) *VideoController {
	return &VideoController{resolver: resolver}
}

// Search proxies the provider cascade. Transient provider failures are
// absorbed by the resolver, so this responds 200 with data for any valid
// query.
func (ctrl *VideoController) Search(c *gin.Context) {
	title := c.Query("title")

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "limit must be a number"})
			return
		}
		limit = parsed
	}

	records, err := ctrl.resolver.Resolve(title, video.ResolveOptions{
		Limit:    limit,
		Category: c.Query("category"),
	})
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": records})
}
