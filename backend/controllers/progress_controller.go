package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"

	"studyhub/backend/metrics"
	"studyhub/backend/progress"
	"studyhub/backend/repository"
	"studyhub/backend/utils"
)

type ProgressController struct {
	Repo       *repository.Repository
	Aggregator *progress.Aggregator
	Logger     *log.Logger
}

func NewProgressController(repo *repository.Repository, aggregator *progress.Aggregator, logger *log.Logger) *ProgressController {
	return &ProgressController{Repo: repo, Aggregator: aggregator, Logger: logger}
}

// GetProgress godoc
// @Summary Get progress summary
// @Description Computes points, completed tasks, study hours and the current streak for the caller
// @Tags progress
// @Produce json
// @Success 200 {object} models.ProgressSummary
// @Failure 401 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /progress [get]
func (pc *ProgressController) GetProgress(c *fiber.Ctx) error {
	scope, err := scopeFor(c, pc.Repo)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	ctx := c.UserContext()
	tasks, err := scope.Tasks(ctx)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch tasks")
	}
	sessions, err := scope.StudySessions(ctx)
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch study sessions")
	}

	summary, err := pc.Aggregator.Compute(tasks, sessions)
	metrics.RecordProgressComputation(err)
	if err != nil {
		var invalid *progress.InvalidDataError
		if errors.As(err, &invalid) {
			pc.Logger.Printf("progress for user %s: %v", scope.UserID(), err)
			return utils.Error(c, fiber.StatusUnprocessableEntity, err)
		}
		return utils.InternalServerError(c, "Could not compute progress")
	}

	return c.JSON(summary)
}
