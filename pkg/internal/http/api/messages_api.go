package api

import (
	"github.com/glimmersocial/glimmer/pkg/internal/http/exts"
	"github.com/glimmersocial/glimmer/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func listMessages(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	with := c.Query("with")
	if len(with) == 0 {
		return fiber.NewError(fiber.StatusBadRequest, "with is required")
	}

	peer, err := services.GetAccountWithName(with)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	items, err := services.ListMessages(user.ID, peer.ID)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(items)
}

func createMessage(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var data struct {
		To          string   `json:"to" validate:"required"`
		Content     string   `json:"content"`
		Attachments []string `json:"attachments" validate:"omitempty,dive,url"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	peer, err := services.GetAccountWithName(data.To)
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	item, err := services.NewMessage(user, peer, data.Content, data.Attachments)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}
