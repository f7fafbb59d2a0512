package controllers

import (
	"net/http"
	"strconv"
	"time"

	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type GlucoseController struct {
	glucose *services.GlucoseService
}

func NewGlucoseController(glucose *services.GlucoseService) *GlucoseController {
	return &GlucoseController{glucose: glucose}
}

func parseIDParam(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

func (gc *GlucoseController) Create(c *gin.Context) {
	var input services.GlucoseInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := middlewares.CurrentUserID(c)
	reading, err := gc.glucose.Create(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, reading)
}

func (gc *GlucoseController) List(c *gin.Context) {
	userID, _ := middlewares.CurrentUserID(c)
	readings, err := gc.glucose.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, readings)
}

// ListRange returns readings between ?start and ?end (RFC 3339, or a bare
// 2006-01-02 date).
func (gc *GlucoseController) ListRange(c *gin.Context) {
	start, ok := parseTimeQuery(c, "start", false)
	if !ok {
		return
	}
	end, ok := parseTimeQuery(c, "end", true)
	if !ok {
		return
	}

	userID, _ := middlewares.CurrentUserID(c)
	readings, err := gc.glucose.ListRange(userID, start, end)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, readings)
}

func parseTimeQuery(c *gin.Context, name string, endOfDay bool) (time.Time, bool) {
	raw := c.Query(name)
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": name + " is required"})
		return time.Time{}, false
	}
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, true
	}
	t, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid " + name + " time"})
		return time.Time{}, false
	}
	if endOfDay {
		t = t.Add(24*time.Hour - time.Nanosecond)
	}
	return t, true
}

func (gc *GlucoseController) Stats(c *gin.Context) {
	userID, _ := middlewares.CurrentUserID(c)
	stats, err := gc.glucose.Stats(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (gc *GlucoseController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.GlucoseUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := middlewares.CurrentUserID(c)
	reading, err := gc.glucose.Update(userID, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, reading)
}

func (gc *GlucoseController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	userID, _ := middlewares.CurrentUserID(c)
	if err := gc.glucose.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "glucose reading deleted"})
}
