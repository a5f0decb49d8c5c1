package api

import (
	"github.com/gofiber/contrib/websocket"
	"github.com/gofiber/fiber/v2"
)

func MapAPIs(app *fiber.App) {
	// The image host surface lives outside the API prefix so it matches the
	// external upload endpoint contract.
	app.Post("/image/upload", uploadImage)

	api := app.Group("/api").Name("API")
	{
		auth := api.Group("/auth").Name("Auth API")
		{
			auth.Post("/anonymous", signInAnonymous)
		}

		accounts := api.Group("/users").Name("Accounts API")
		{
			accounts.Get("/me", authRequired, getMyAccount)
			accounts.Put("/me", authRequired, updateMyAccount)
			accounts.Get("/", listAccounts)
			accounts.Get("/:name", getAccount)
		}

		posts := api.Group("/posts").Name("Posts API")
		{
			posts.Get("/", authOptional, listPosts)
			posts.Get("/:postId", authOptional, getPost)
			posts.Post("/", authRequired, createPost)
		}

		messages := api.Group("/messages").Name("Messages API")
		{
			messages.Get("/", authRequired, listMessages)
			messages.Post("/", authRequired, createMessage)
		}
	}

	app.Use("/ws", func(c *fiber.Ctx) error {
		if websocket.IsWebSocketUpgrade(c) {
			return c.Next()
		}
		return fiber.ErrUpgradeRequired
	})
	app.Get("/ws", authRequired, websocket.New(serveRealtime))
}
