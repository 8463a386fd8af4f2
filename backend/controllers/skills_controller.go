package controllers

import (
	"github.com/gofiber/fiber/v2"

	"studyhub/backend/models"
	"studyhub/backend/repository"
	"studyhub/backend/utils"
)

type SkillsController struct {
	Repo *repository.Repository
}

func NewSkillsController(repo *repository.Repository) *SkillsController {
	return &SkillsController{Repo: repo}
}

type CreateSkillRequest struct {
	Name     string            `json:"name" validate:"required,max=100"`
	Level    models.SkillLevel `json:"level" validate:"omitempty,oneof=beginner intermediate advanced expert"`
	Progress *int              `json:"progress" validate:"omitempty,min=0,max=100"`
}

type UpdateSkillRequest struct {
	Name     *string            `json:"name" validate:"omitempty,max=100"`
	Level    *models.SkillLevel `json:"level" validate:"omitempty,oneof=beginner intermediate advanced expert"`
	Progress *int               `json:"progress" validate:"omitempty,min=0,max=100"`
}

// GetSkills godoc
// @Summary List skills
// @Tags skills
// @Produce json
// @Success 200 {array} models.Skill
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /skills [get]
func (sc *SkillsController) GetSkills(c *fiber.Ctx) error {
	scope, err := scopeFor(c, sc.Repo)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	skills, err := scope.Skills(c.UserContext())
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch skills")
	}
	return c.JSON(skills)
}

// CreateSkill godoc
// @Summary Create skill
// @Description Progress defaults to the level's value when omitted
// @Tags skills
// @Accept json
// @Produce json
// @Param input body CreateSkillRequest true "Skill data"
// @Success 201 {object} models.Skill
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /skills [post]
func (sc *SkillsController) CreateSkill(c *fiber.Ctx) error {
	scope, err := scopeFor(c, sc.Repo)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input CreateSkillRequest
	if ok, err := bind(c, &input); !ok {
		return err
	}

	skill := models.Skill{Name: input.Name, Level: input.Level}
	if skill.Level == "" {
		skill.Level = models.SkillBeginner
	}
	skill.Progress = skill.Level.DefaultProgress()
	if input.Progress != nil {
		skill.Progress = *input.Progress
	}

	if err := scope.CreateSkill(c.UserContext(), &skill); err != nil {
		return utils.InternalServerError(c, "Could not create skill")
	}
	return utils.Created(c, skill)
}

// UpdateSkill godoc
// @Summary Update skill
// @Description Partially updates a skill. Changing the level without a progress resets progress to the level's default.
// @Tags skills
// @Accept json
// @Produce json
// @Param id path string true "Skill ID"
// @Param input body UpdateSkillRequest true "Fields to change"
// @Success 200 {object} models.Skill
// @Failure 404 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /skills/{id} [patch]
func (sc *SkillsController) UpdateSkill(c *fiber.Ctx) error {
	scope, err := scopeFor(c, sc.Repo)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input UpdateSkillRequest
	if ok, err := bind(c, &input); !ok {
		return err
	}

	ctx := c.UserContext()
	skill, err := scope.Skill(ctx, c.Params("id"))
	if err != nil {
		return storeError(c, err, "Skill not found", "Could not fetch skill")
	}

	if input.Name != nil {
		skill.Name = *input.Name
	}
	if input.Level != nil {
		skill.Level = *input.Level
		if input.Progress == nil {
			skill.Progress = skill.Level.DefaultProgress()
		}
	}
	if input.Progress != nil {
		skill.Progress = *input.Progress
	}

	if err := scope.SaveSkill(ctx, skill); err != nil {
		return storeError(c, err, "Skill not found", "Could not update skill")
	}
	return c.JSON(skill)
}

// DeleteSkill godoc
// @Summary Delete skill
// @Tags skills
// @Param id path string true "Skill ID"
// @Success 204
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /skills/{id} [delete]
func (sc *SkillsController) DeleteSkill(c *fiber.Ctx) error {
	scope, err := scopeFor(c, sc.Repo)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	if err := scope.DeleteSkill(c.UserContext(), c.Params("id")); err != nil {
		return storeError(c, err, "Skill not found", "Could not delete skill")
	}
	return utils.NoContent(c)
}
