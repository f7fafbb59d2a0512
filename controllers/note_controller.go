package controllers

import (
	"net/http"

	"backend/middlewares"
	"backend/services"

	"github.com/gin-gonic/gin"
)

type NoteController struct {
	notes *services.NoteService
}

func NewNoteController(notes *services.NoteService) *NoteController {
	return &NoteController{notes: notes}
}

func (nc *NoteController) Create(c *gin.Context) {
	var input services.NoteInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := middlewares.CurrentUserID(c)
	note, err := nc.notes.Create(userID, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, note)
}

func (nc *NoteController) List(c *gin.Context) {
	userID, _ := middlewares.CurrentUserID(c)
	notes, err := nc.notes.List(userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, notes)
}

func (nc *NoteController) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	var input services.NoteUpdateInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	userID, _ := middlewares.CurrentUserID(c)
	note, err := nc.notes.Update(userID, id, input)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, note)
}

func (nc *NoteController) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		return
	}

	userID, _ := middlewares.CurrentUserID(c)
	if err := nc.notes.Delete(userID, id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "note deleted"})
}
