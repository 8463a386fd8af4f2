package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"studyhub/backend/repository"
	"studyhub/backend/utils"
)

type UserController struct {
	Repo *repository.Repository
}

func NewUserController(repo *repository.Repository) *UserController {
	return &UserController{Repo: repo}
}

type UpdateUserRequest struct {
	Email           *string `json:"email" validate:"omitempty,email"`
	FirstName       *string `json:"firstName" validate:"omitempty,max=100"`
	LastName        *string `json:"lastName" validate:"omitempty,max=100"`
	ProfileImageURL *string `json:"profileImageUrl" validate:"omitempty,url"`
	OldPassword     string  `json:"oldPassword"`
	NewPassword     string  `json:"newPassword" validate:"omitempty,min=8"`
}

// GetProfile godoc
// @Summary Get user profile
// @Description Returns authenticated user's profile data
// @Tags users
// @Produce json
// @Success 200 {object} models.User
// @Failure 401 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /auth/user [get]
func (uc *UserController) GetProfile(c *fiber.Ctx) error {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	user, err := uc.Repo.FindUser(c.UserContext(), userID)
	if err != nil {
		return storeError(c, err, "User not found", "Could not query database")
	}

	return c.JSON(user)
}

// UpdateProfile godoc
// @Summary Update user profile
// @Description Updates authenticated user's profile data
// @Tags users
// @Accept json
// @Produce json
// @Param input body UpdateUserRequest true "Profile update data"
// @Success 200 {object} models.User
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /auth/user [put]
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	var input UpdateUserRequest
	if ok, err := bind(c, &input); !ok {
		return err
	}

	ctx := c.UserContext()
	user, err := uc.Repo.FindUser(ctx, userID)
	if err != nil {
		return storeError(c, err, "User not found", "Could not query database")
	}

	// Проверяем, не занят ли email
	if input.Email != nil && *input.Email != user.Email {
		existing, err := uc.Repo.FindUserByEmail(ctx, *input.Email)
		switch {
		case err == nil && existing.ID != user.ID:
			return utils.Conflict(c, "Email already taken")
		case err != nil && !errors.Is(err, repository.ErrNotFound):
			return utils.InternalServerError(c, "Could not query database")
		}
		user.Email = *input.Email
	}

	if input.NewPassword != "" {
		if input.OldPassword == "" {
			return utils.BadRequest(c, "Old password is required to set new password")
		}
		if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.OldPassword)); err != nil {
			return utils.Unauthorized(c, "Invalid old password")
		}
		hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
		if err != nil {
			return utils.InternalServerError(c, "Could not hash password")
		}
		user.PasswordHash = string(hashedPassword)
	}

	if input.FirstName != nil {
		user.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		user.LastName = *input.LastName
	}
	if input.ProfileImageURL != nil {
		user.ProfileImageURL = *input.ProfileImageURL
	}

	if err := uc.Repo.SaveUser(ctx, user); err != nil {
		return utils.InternalServerError(c, "Could not update user")
	}

	return c.JSON(user)
}
