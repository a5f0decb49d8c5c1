package ws

import "github.com/glimmersocial/glimmer/pkg/internal/models"

type EventType string

const (
	EventMessageInsert EventType = "messages.insert"
)

// Event is one frame on the realtime channel. Only row-insert events for the
// messages table are delivered; everything else the client re-fetches.
type Event struct {
	Type    EventType       `json:"type"`
	Message *models.Message `json:"message,omitempty"`
}
