package api

import (
	"strings"

	"github.com/glimmersocial/glimmer/pkg/internal/models"
	"github.com/glimmersocial/glimmer/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func tokenFromRequest(c *fiber.Ctx) string {
	header := c.Get(fiber.HeaderAuthorization)
	if strings.HasPrefix(header, "Bearer ") {
		return header[len("Bearer "):]
	}
	// Websocket dials cannot always carry headers, so the token may ride in
	// the query string instead.
	return c.Query("tk")
}

func authRequired(c *fiber.Ctx) error {
	token := tokenFromRequest(c)
	if len(token) == 0 {
		return fiber.NewError(fiber.StatusUnauthorized, "authorization is required")
	}

	accountID, err := services.ValidateToken(token)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	user, err := services.GetAccountWithID(accountID)
	if err != nil {
		return fiber.NewError(fiber.StatusUnauthorized, err.Error())
	}

	c.Locals("user", user)

	return c.Next()
}

func authOptional(c *fiber.Ctx) error {
	token := tokenFromRequest(c)
	if len(token) == 0 {
		return c.Next()
	}

	if accountID, err := services.ValidateToken(token); err == nil {
		if user, err := services.GetAccountWithID(accountID); err == nil {
			c.Locals("user", user)
		}
	}

	return c.Next()
}

func currentUser(c *fiber.Ctx) (models.Account, bool) {
	user, ok := c.Locals("user").(models.Account)
	return user, ok
}
