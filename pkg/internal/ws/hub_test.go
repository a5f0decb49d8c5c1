package ws

import (
	"testing"

	"github.com/glimmersocial/glimmer/pkg/internal/models"
)

func TestPushWithoutSubscribersIsHarmless(t *testing.T) {
	hub := NewHub()

	err := hub.PushMessageInsert(models.Message{
		BaseModel:  models.BaseModel{ID: 1},
		Content:    "hi",
		SenderID:   1,
		ReceiverID: 2,
	})
	if err != nil {
		t.Fatal(err)
	}
}
