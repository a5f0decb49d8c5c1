package api

import (
	"github.com/glimmersocial/glimmer/pkg/internal/http/exts"
	"github.com/glimmersocial/glimmer/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func getMyAccount(c *fiber.Ctx) error {
	user, _ := currentUser(c)
	return c.JSON(user)
}

func updateMyAccount(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var data struct {
		Bio       string  `json:"bio" validate:"max=512"`
		HeaderURL *string `json:"header_url" validate:"omitempty,url"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	account, err := services.EditAccount(user, data.Bio, data.HeaderURL)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(account)
}

func listAccounts(c *fiber.Ctx) error {
	accounts, err := services.ListAccounts()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(accounts)
}

func getAccount(c *fiber.Ctx) error {
	account, err := services.GetAccountWithName(c.Params("name"))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(account)
}
