package services

import (
	"fmt"
	"strings"

	"github.com/glimmersocial/glimmer/pkg/internal/database"
	"github.com/glimmersocial/glimmer/pkg/internal/models"
	"github.com/glimmersocial/glimmer/pkg/internal/ws"
	"github.com/rs/zerolog/log"
)

// ListMessages returns the full history of a conversation pair, ascending by
// time so the overlay can render it top to bottom.
func ListMessages(a, b uint) ([]models.Message, error) {
	var items []models.Message
	if err := database.C.
		Where("(sender_id = ? AND receiver_id = ?) OR (sender_id = ? AND receiver_id = ?)", a, b, b, a).
		Order("created_at ASC").
		Preload("Sender").
		Preload("Receiver").
		Find(&items).Error; err != nil {
		return items, err
	}

	return items, nil
}

// NewMessage persists a direct message and pushes the row-insert event to both
// ends of the conversation. The sender's own client renders the message only
// when the echo arrives.
func NewMessage(sender models.Account, receiver models.Account, content string, attachments []string) (models.Message, error) {
	if len(strings.TrimSpace(content)) == 0 && len(attachments) == 0 {
		return models.Message{}, fmt.Errorf("message cannot be empty")
	}

	item := models.Message{
		Content:     content,
		Attachments: attachments,
		SenderID:    sender.ID,
		Sender:      sender,
		ReceiverID:  receiver.ID,
		Receiver:    receiver,
	}

	if err := database.C.Save(&item).Error; err != nil {
		return item, err
	}

	if err := ws.H.PushMessageInsert(item); err != nil {
		log.Warn().Err(err).Uint("message", item.ID).Msg("An error occurred when pushing message insert event...")
	}

	return item, nil
}
