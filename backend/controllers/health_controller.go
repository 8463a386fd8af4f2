package controllers

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"

	"studyhub/backend/repository"
)

type HealthController struct {
	Repo *repository.Repository
}

func NewHealthController(repo *repository.Repository) *HealthController {
	return &HealthController{Repo: repo}
}

// Health godoc
// @Summary Health check
// @Description Reports whether the database answers a ping
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /healthz [get]
func (hc *HealthController) Health(c *fiber.Ctx) error {
	ctx, cancel := context.WithTimeout(c.UserContext(), 2*time.Second)
	defer cancel()

	if err := hc.Repo.Ping(ctx); err != nil {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "unavailable"})
	}
	return c.JSON(fiber.Map{"status": "ok"})
}
