package exts

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v2"
)

func TestBindAndValidate(t *testing.T) {
	app := fiber.New()
	app.Post("/probe", func(c *fiber.Ctx) error {
		var data struct {
			Content string `json:"content" validate:"required"`
		}
		if err := BindAndValidate(c, &data); err != nil {
			return err
		}
		return c.SendStatus(fiber.StatusOK)
	})

	cases := []struct {
		body   string
		status int
	}{
		{`{"content":"hello"}`, fiber.StatusOK},
		{`{"content":""}`, fiber.StatusBadRequest},
		{`{not json`, fiber.StatusBadRequest},
	}

	for _, tc := range cases {
		req := httptest.NewRequest(fiber.MethodPost, "/probe", strings.NewReader(tc.body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)
		if err != nil {
			t.Fatal(err)
		}
		if resp.StatusCode != tc.status {
			t.Fatalf("body %q: expected %d, got %d", tc.body, tc.status, resp.StatusCode)
		}
	}
}
