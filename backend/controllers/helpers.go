package controllers

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"studyhub/backend/repository"
	"studyhub/backend/utils"
)

func scopeFor(c *fiber.Ctx, repo *repository.Repository) (*repository.UserScope, error) {
	userID, err := utils.CurrentUserID(c)
	if err != nil {
		return nil, err
	}
	return repo.ForUser(userID), nil
}

// bind parses the JSON body into input and validates it. It writes the error
// response itself and reports whether the handler should continue.
func bind(c *fiber.Ctx, input interface{}) (bool, error) {
	if err := c.BodyParser(input); err != nil {
		return false, utils.BadRequest(c, "Cannot parse JSON")
	}
	if errs := utils.ValidateStruct(input); errs != nil {
		return false, utils.ValidationError(c, errs)
	}
	return true, nil
}

func storeError(c *fiber.Ctx, err error, notFound, failed string) error {
	if errors.Is(err, repository.ErrNotFound) {
		return utils.NotFound(c, notFound)
	}
	return utils.InternalServerError(c, failed)
}
