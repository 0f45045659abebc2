package controllers

import (
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"menucraft-backend/utils"
)

const maxUploadSize = 5 << 20 // 5MB

type UploadController struct {
	UploadsDir string
}

func NewUploadController(uploadsDir string) *UploadController {
	return &UploadController{UploadsDir: uploadsDir}
}

// POST /api/upload — accepts one image file, stores it under a random
// name and returns its served URL.
func (ctl *UploadController) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "No file uploaded")
		return
	}

	if file.Size > maxUploadSize {
		utils.RespondWithError(c, http.StatusBadRequest, "File too large (max 5MB)")
		return
	}

	contentType := file.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		utils.RespondWithError(c, http.StatusBadRequest, "Only images allowed")
		return
	}

	ext := filepath.Ext(file.Filename)
	if ext == "" {
		ext = ".jpg"
	}
	name := uuid.NewString() + ext

	if err := c.SaveUploadedFile(file, filepath.Join(ctl.UploadsDir, name)); err != nil {
		utils.RespondInternalError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": "/uploads/" + name})
}
