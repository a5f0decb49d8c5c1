package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/glimmersocial/glimmer/pkg/internal/models"
)

// ListMessages fetches the full history of the conversation with the named
// peer, ascending by time.
func (v *Client) ListMessages(ctx context.Context, with string) ([]models.Message, error) {
	var messages []models.Message
	err := v.request(ctx, http.MethodGet, "/api/messages/?with="+url.QueryEscape(with), nil, &messages)
	return messages, err
}

// SendMessage writes a direct message. The caller does not get the created
// row back on purpose: display relies on the realtime echo.
func (v *Client) SendMessage(ctx context.Context, to, content string, attachments []string) error {
	return v.request(ctx, http.MethodPost, "/api/messages/", map[string]any{
		"to":          to,
		"content":     content,
		"attachments": attachments,
	}, nil)
}
