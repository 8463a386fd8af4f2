package controllers

import (
	"fmt"
	"log"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gabriel-vasile/mimetype"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"studyhub/backend/config"
	"studyhub/backend/models"
	"studyhub/backend/repository"
	"studyhub/backend/utils"
)

const uploadsPrefix = "/uploads/"

// allowedUploads maps accepted certificate extensions to the content type the
// file body must sniff as.
var allowedUploads = map[string]string{
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
	".png":  "image/png",
	".pdf":  "application/pdf",
}

type AchievementsController struct {
	Repo   *repository.Repository
	Cfg    *config.Config
	Logger *log.Logger
}

func NewAchievementsController(repo *repository.Repository, cfg *config.Config, logger *log.Logger) *AchievementsController {
	return &AchievementsController{Repo: repo, Cfg: cfg, Logger: logger}
}

// CreateAchievementForm mirrors the multipart fields of an achievement upload.
type CreateAchievementForm struct {
	Name            string `json:"name" validate:"required,max=255"`
	Description     string `json:"description" validate:"max=2000"`
	CertificateLink string `json:"certificateLink" validate:"omitempty,url"`
	AchievedAt      string `json:"achievedAt"`
}

// GetAchievements godoc
// @Summary List achievements
// @Description Returns the caller's achievements, most recent first
// @Tags achievements
// @Produce json
// @Success 200 {array} models.Achievement
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /achievements [get]
func (ac *AchievementsController) GetAchievements(c *fiber.Ctx) error {
	scope, err := scopeFor(c, ac.Repo)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	achievements, err := scope.Achievements(c.UserContext())
	if err != nil {
		return utils.InternalServerError(c, "Could not fetch achievements")
	}
	return c.JSON(achievements)
}

// CreateAchievement godoc
// @Summary Create achievement
// @Description Creates an achievement with an optional certificate file
// @Tags achievements
// @Accept multipart/form-data
// @Produce json
// @Param name formData string true "Achievement name"
// @Param description formData string false "Description"
// @Param certificateLink formData string false "External certificate URL"
// @Param achievedAt formData string false "RFC3339 timestamp"
// @Param file formData file false "Certificate file"
// @Success 201 {object} models.Achievement
// @Failure 413 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /achievements [post]
func (ac *AchievementsController) CreateAchievement(c *fiber.Ctx) error {
	scope, err := scopeFor(c, ac.Repo)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	form := CreateAchievementForm{
		Name:            strings.TrimSpace(c.FormValue("name")),
		Description:     c.FormValue("description"),
		CertificateLink: strings.TrimSpace(c.FormValue("certificateLink")),
		AchievedAt:      strings.TrimSpace(c.FormValue("achievedAt")),
	}
	if errs := utils.ValidateStruct(form); errs != nil {
		return utils.ValidationError(c, errs)
	}

	achievement := models.Achievement{
		Name:            form.Name,
		Description:     form.Description,
		CertificateLink: form.CertificateLink,
	}
	if form.AchievedAt != "" {
		at, err := time.Parse(time.RFC3339, form.AchievedAt)
		if err != nil {
			return utils.ValidationError(c, map[string]string{"achievedAt": "must be an RFC3339 timestamp"})
		}
		achievement.AchievedAt = at.UTC()
	}

	// A missing file part is not an error; the certificate is optional.
	storedPath := ""
	if file, err := c.FormFile("file"); err == nil {
		maxBytes := int64(ac.Cfg.MaxUploadMB) << 20
		if file.Size > maxBytes {
			return utils.Error(c, fiber.StatusRequestEntityTooLarge,
				fmt.Errorf("file exceeds %d MB", ac.Cfg.MaxUploadMB))
		}
		ext := strings.ToLower(filepath.Ext(file.Filename))
		if ok, err := allowedUpload(file, ext); err != nil {
			return utils.InternalServerError(c, "Could not read file")
		} else if !ok {
			return utils.ValidationError(c, map[string]string{"file": "Only JPG, PNG, and PDF files are allowed"})
		}
		if err := os.MkdirAll(ac.Cfg.UploadDir, 0o755); err != nil {
			return utils.InternalServerError(c, "Could not prepare upload directory")
		}
		name := uuid.NewString() + ext
		storedPath = filepath.Join(ac.Cfg.UploadDir, name)
		if err := c.SaveFile(file, storedPath); err != nil {
			ac.Logger.Printf("save upload: %v", err)
			return utils.InternalServerError(c, "Could not save file")
		}
		achievement.FileURL = uploadsPrefix + name
	}

	if err := scope.CreateAchievement(c.UserContext(), &achievement); err != nil {
		if storedPath != "" {
			_ = os.Remove(storedPath)
		}
		return utils.InternalServerError(c, "Could not create achievement")
	}
	return utils.Created(c, achievement)
}

// DeleteAchievement godoc
// @Summary Delete achievement
// @Description Deletes an achievement and its stored certificate file
// @Tags achievements
// @Param id path string true "Achievement ID"
// @Success 204
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /achievements/{id} [delete]
func (ac *AchievementsController) DeleteAchievement(c *fiber.Ctx) error {
	scope, err := scopeFor(c, ac.Repo)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	ctx := c.UserContext()
	achievement, err := scope.Achievement(ctx, c.Params("id"))
	if err != nil {
		return storeError(c, err, "Achievement not found", "Could not fetch achievement")
	}
	if err := scope.DeleteAchievement(ctx, achievement.ID); err != nil {
		return storeError(c, err, "Achievement not found", "Could not delete achievement")
	}

	if name := strings.TrimPrefix(achievement.FileURL, uploadsPrefix); name != "" && name != achievement.FileURL {
		if err := os.Remove(filepath.Join(ac.Cfg.UploadDir, filepath.Base(name))); err != nil && !os.IsNotExist(err) {
			ac.Logger.Printf("remove upload %s: %v", name, err)
		}
	}
	return utils.NoContent(c)
}

func allowedUpload(file *multipart.FileHeader, ext string) (bool, error) {
	want, ok := allowedUploads[ext]
	if !ok {
		return false, nil
	}

	f, err := file.Open()
	if err != nil {
		return false, err
	}
	defer f.Close()

	mtype, err := mimetype.DetectReader(f)
	if err != nil {
		return false, err
	}
	return mtype.Is(want), nil
}
