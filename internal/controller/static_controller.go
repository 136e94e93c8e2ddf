package controller

import (
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
)

type StaticController struct {
	workDir string
}

func NewStaticController(workDir string) *StaticController {
	return &StaticController{workDir: workDir}
}

// DownloadCertificate serves a generated certificate PDF as an attachment.
func (ctrl *StaticController) DownloadCertificate(c *gin.Context) {
	filename := filepath.Base(c.Param("filename"))
	path := filepath.Join(ctrl.workDir, "certificates", filename)

	if _, err := os.Stat(path); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "certificate not found"})
		return
	}
	c.FileAttachment(path, filename)
}
