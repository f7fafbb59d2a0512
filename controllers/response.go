package controllers

import (
	"errors"
	"log"
	"net/http"

	"backend/apperror"

	"github.com/gin-gonic/gin"
)

// respondError maps the error taxonomy onto HTTP statuses. Anything outside
// the taxonomy is a 500 with a generic body; the detail goes to the log only.
func respondError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		body := gin.H{"error": appErr.Message}
		if len(appErr.Fields) > 0 {
			body["fields"] = appErr.Fields
		}
		switch {
		case errors.Is(err, apperror.ErrValidation):
			c.JSON(http.StatusBadRequest, body)
		case errors.Is(err, apperror.ErrUnauthorized):
			c.JSON(http.StatusUnauthorized, body)
		case errors.Is(err, apperror.ErrForbidden):
			c.JSON(http.StatusForbidden, body)
		case errors.Is(err, apperror.ErrNotFound):
			c.JSON(http.StatusNotFound, body)
		case errors.Is(err, apperror.ErrConflict):
			c.JSON(http.StatusConflict, body)
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
		}
		return
	}

	log.Printf("unexpected error on %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal server error"})
}
