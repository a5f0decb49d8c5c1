package api

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/spf13/viper"
)

// uploadImage implements the image host contract: a multipart form carrying
// the file plus an upload preset, answered with the hosted URL.
func uploadImage(c *fiber.Ctx) error {
	if preset := c.FormValue("upload_preset"); preset != viper.GetString("uploads.preset") {
		return fiber.NewError(fiber.StatusUnauthorized, "unknown upload preset")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := fmt.Sprintf("%s%s", uuid.New().String(), ext)

	if err := c.SaveFile(file, filepath.Join(viper.GetString("uploads.path"), name)); err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, err.Error())
	}

	return c.JSON(fiber.Map{
		"secure_url": fmt.Sprintf("%s/files/%s", viper.GetString("domain"), name),
	})
}
