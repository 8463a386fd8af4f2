package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"studyhub/backend/metrics"
	"studyhub/backend/models"
	"studyhub/backend/repository"
	"studyhub/backend/utils"
)

type StudySessionsController struct {
	Repo *repository.Repository
}

func NewStudySessionsController(repo *repository.Repository) *StudySessionsController {
	return &StudySessionsController{Repo: repo}
}

type CreateStudySessionRequest struct {
	Duration    int        `json:"duration" validate:"required,gt=0" example:"25"`
	Type        string     `json:"type" validate:"omitempty,max=32" example:"focus"`
	CompletedAt *time.Time `json:"completedAt"`
}

// GetStudySessions godoc
// @Summary List study sessions
// @Description Returns the caller's finished sessions, most recent first
// @Tags study-sessions
// @Produce json
// @Success 200 {array} models.StudySession
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /study-sessions [get]
func (sc *StudySessionsController) GetStudySessions(c *fiber.Ctx) error {
	scope, err := scopeFor(c, sc.Repo)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	sessions, err := scope.StudySessions(c.UserContext())
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch study sessions")
	}
	return c.JSON(sessions)
}

// CreateStudySession godoc
// @Summary Record a finished study session
// @Tags study-sessions
// @Accept json
// @Produce json
// @Param input body CreateStudySessionRequest true "Session data, duration in minutes"
// @Success 201 {object} models.StudySession
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /study-sessions [post]
func (sc *StudySessionsController) CreateStudySession(c *fiber.Ctx) error {
	scope, err := scopeFor(c, sc.Repo)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input CreateStudySessionRequest
	if ok, err := bind(c, &input); !ok {
		return err
	}

	session := models.StudySession{Duration: input.Duration, Type: input.Type}
	if input.CompletedAt != nil {
		session.CompletedAt = input.CompletedAt.UTC()
	}
	if err := scope.CreateStudySession(c.UserContext(), &session); err != nil {
		return utils.InternalServerError(c, "Could not save study session")
	}

	metrics.RecordStudySession(session.Type, session.Duration)
	return utils.Created(c, session)
}
