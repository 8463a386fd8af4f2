package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"studyhub/backend/models"
	"studyhub/backend/repository"
	"studyhub/backend/utils"
)

type NotesController struct {
	Repo *repository.Repository
}

func NewNotesController(repo *repository.Repository) *NotesController {
	return &NotesController{Repo: repo}
}

type CreateNoteRequest struct {
	Title        string     `json:"title" validate:"required,max=255"`
	Content      string     `json:"content" validate:"required"`
	ReminderDate *time.Time `json:"reminderDate"`
}

// GetNotes godoc
// @Summary List notes
// @Description Returns the caller's notes, newest first
// @Tags notes
// @Produce json
// @Success 200 {array} models.Note
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /notes [get]
func (nc *NotesController) GetNotes(c *fiber.Ctx) error {
	scope, err := scopeFor(c, nc.Repo)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	notes, err := scope.Notes(c.UserContext())
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch notes")
	}
	return c.JSON(notes)
}

// CreateNote godoc
// @Summary Create note
// @Description Creates a note. A reminderDate schedules an email reminder.
// @Tags notes
// @Accept json
// @Produce json
// @Param input body CreateNoteRequest true "Note data"
// @Success 201 {object} models.Note
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /notes [post]
func (nc *NotesController) CreateNote(c *fiber.Ctx) error {
	scope, err := scopeFor(c, nc.Repo)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input CreateNoteRequest
	if ok, err := bind(c, &input); !ok {
		return err
	}

	note := models.Note{Title: input.Title, Content: input.Content}
	if input.ReminderDate != nil {
		at := input.ReminderDate.UTC()
		note.ReminderDate = &at
	}
	if err := scope.CreateNote(c.UserContext(), &note); err != nil {
		return utils.InternalServerError(c, "Could not create note")
	}
	return utils.Created(c, note)
}

// DeleteNote godoc
// @Summary Delete note
// @Tags notes
// @Param id path string true "Note ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /notes/{id} [delete]
func (nc *NotesController) DeleteNote(c *fiber.Ctx) error {
	scope, err := scopeFor(c, nc.Repo)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	if err := scope.DeleteNote(c.UserContext(), c.Params("id")); err != nil {
		return storeError(c, err, "Note not found", "Could not delete note")
	}
	return utils.NoContent(c)
}
