package controllers

import (
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
	"golang.org/x/crypto/bcrypt"

	"studyhub/backend/config"
	"studyhub/backend/models"
	"studyhub/backend/repository"
	"studyhub/backend/session"
	"studyhub/backend/utils"
)

type AuthController struct {
	Repo     *repository.Repository
	Cfg      *config.Config
	Denylist session.Denylist
	Logger   *log.Logger
}

func NewAuthController(repo *repository.Repository, cfg *config.Config, denylist session.Denylist, logger *log.Logger) *AuthController {
	return &AuthController{Repo: repo, Cfg: cfg, Denylist: denylist, Logger: logger}
}

type RegisterRequest struct {
	Email     string `json:"email" validate:"required,email" example:"ada@example.com"`
	Password  string `json:"password" validate:"required,min=8" example:"password123"`
	FirstName string `json:"firstName" validate:"max=100" example:"Ada"`
	LastName  string `json:"lastName" validate:"max=100" example:"Lovelace"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type authResponse struct {
	Token string      `json:"token"`
	User  models.User `json:"user"`
}

// Register godoc
// @Summary Register a new user
// @Description Creates a new user account and returns a token
// @Tags auth
// @Accept json
// @Produce json
// @Param user body RegisterRequest true "User registration data"
// @Success 201 {object} authResponse
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Failure 422 {object} utils.ErrorResponse
// @Router /auth/register [post]
func (ac *AuthController) Register(c *fiber.Ctx) error {
	var input RegisterRequest
	if ok, err := bind(c, &input); !ok {
		return err
	}

	ctx := c.UserContext()
	if _, err := ac.Repo.FindUserByEmail(ctx, input.Email); err == nil {
		return utils.Conflict(c, "Email already registered")
	} else if !errors.Is(err, repository.ErrNotFound) {
		return utils.InternalServerError(c, "Could not query database")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return utils.InternalServerError(c, "Could not hash password")
	}

	user := models.User{
		Email:        input.Email,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		PasswordHash: string(hashedPassword),
	}
	if err := ac.Repo.CreateUser(ctx, &user); err != nil {
		ac.Logger.Printf("register: %v", err)
		return utils.InternalServerError(c, "Could not create user")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return utils.Created(c, authResponse{Token: token, User: user})
}

// Login godoc
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param request body LoginRequest true "Login credentials"
// @Success 200 {object} authResponse
// @Failure 401 {object} utils.ErrorResponse
// @Router /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var input LoginRequest
	if ok, err := bind(c, &input); !ok {
		return err
	}

	user, err := ac.Repo.FindUserByEmail(c.UserContext(), input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return utils.Unauthorized(c, "Invalid credentials")
		}
		return utils.InternalServerError(c, "Could not query database")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)); err != nil {
		return utils.Unauthorized(c, "Invalid credentials")
	}

	token, err := utils.GenerateJWTToken(user.ID, ac.Cfg)
	if err != nil {
		return utils.InternalServerError(c, "Could not generate token")
	}

	return c.JSON(authResponse{Token: token, User: *user})
}

// Logout godoc
// @Summary User logout
// @Description Revokes the token used for this request
// @Tags auth
// @Success 204
// @Failure 401 {object} utils.ErrorResponse
// @Security ApiKeyAuth
// @Router /auth/logout [post]
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	claims, err := utils.CurrentClaims(c)
	if err != nil {
		return utils.Unauthorized(c, "Unauthorized")
	}

	if claims.TokenID != "" {
		if err := ac.Denylist.Revoke(c.UserContext(), claims.TokenID, claims.ExpiresAt); err != nil {
			ac.Logger.Printf("logout: %v", err)
			return utils.InternalServerError(c, "Could not end session")
		}
	}

	return utils.NoContent(c)
}
