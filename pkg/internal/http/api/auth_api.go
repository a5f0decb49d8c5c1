package api

import (
	"github.com/glimmersocial/glimmer/pkg/internal/http/exts"
	"github.com/glimmersocial/glimmer/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func signInAnonymous(c *fiber.Ctx) error {
	var data struct {
		DeviceID string `json:"device_id" validate:"required,uuid"`
		Username string `json:"username" validate:"omitempty,min=1,max=32,alphanum"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.SignInAnonymous(data.DeviceID, data.Username)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	token, err := services.IssueToken(account.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"token":   token,
		"account": account,
	})
}
