package api

import (
	"github.com/glimmersocial/glimmer/pkg/internal/database"
	"github.com/glimmersocial/glimmer/pkg/internal/http/exts"
	"github.com/glimmersocial/glimmer/pkg/internal/models"
	"github.com/glimmersocial/glimmer/pkg/internal/services"
	"github.com/gofiber/fiber/v2"
)

func listPosts(c *fiber.Ctx) error {
	take := c.QueryInt("take", 0)
	offset := c.QueryInt("offset", 0)

	tx := database.C.Model(&models.Post{})

	if probe := c.Query("probe"); len(probe) > 0 {
		tx = services.FilterPostWithFuzzySearch(tx, probe)
	}
	if author := c.Query("author"); len(author) > 0 {
		tx = services.FilterPostWithAuthor(tx, author)
	}

	count, err := services.CountPost(tx)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	items, err := services.ListPost(tx, take, offset)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(fiber.Map{
		"count": count,
		"data":  items,
	})
}

func getPost(c *fiber.Ctx) error {
	id, _ := c.ParamsInt("postId", 0)

	item, err := services.GetPost(database.C, uint(id))
	if err != nil {
		return fiber.NewError(fiber.StatusNotFound, err.Error())
	}

	return c.JSON(item)
}

func createPost(c *fiber.Ctx) error {
	user, _ := currentUser(c)

	var data struct {
		Content  string  `json:"content" validate:"required"`
		ImageURL *string `json:"image_url" validate:"omitempty,url"`
	}

	if err := exts.BindAndValidate(c, &data); err != nil {
		return err
	}

	item, err := services.NewPost(user, data.Content, data.ImageURL)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}
