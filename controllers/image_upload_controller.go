package controllers

import (
	"fmt"
	"net/http"

	"backend/middlewares"
	"backend/utils"

	"github.com/gin-gonic/gin"
)

type UploadImageRequest struct {
	ImageBase64 string `json:"image_base64" binding:"required"`
}

// UploadImage stores a base64-encoded image in S3 and returns its public
// URL, for use as a meal plan image reference.
func UploadImage(c *gin.Context) {
	var req UploadImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input"})
		return
	}

	userID, _ := middlewares.CurrentUserID(c)
	url, err := utils.UploadBase64ImageToS3(req.ImageBase64, fmt.Sprintf("user-%d", userID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "upload failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"url": url})
}
