package api

import (
	"github.com/glimmersocial/glimmer/pkg/internal/models"
	"github.com/glimmersocial/glimmer/pkg/internal/ws"
	"github.com/gofiber/contrib/websocket"
)

func serveRealtime(c *websocket.Conn) {
	user, ok := c.Locals("user").(models.Account)
	if !ok {
		_ = c.Close()
		return
	}

	ws.ServeClient(ws.H, c, user.ID)
}
