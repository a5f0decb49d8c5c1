package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/glimmersocial/glimmer/pkg/internal/gateway"
	"github.com/glimmersocial/glimmer/pkg/internal/models"
)

// dmState is the direct-message overlay: one conversation pair, its full
// history ascending by time, and the live subscription that feeds it. It is
// created when the overlay opens and torn down when it closes.
type dmState struct {
	target   models.Account
	messages []models.Message
	input    textinput.Model
	sub      *gateway.Subscription

	// follow keeps the viewport pinned to the newest message.
	follow bool
	scroll int
}

func newDMState(target models.Account) *dmState {
	input := textinput.New()
	input.Placeholder = "message @" + target.Name
	input.CharLimit = 500
	input.Focus()

	return &dmState{
		target: target,
		input:  input,
		follow: true,
	}
}

// append inserts an arriving message keeping ascending creation order. Events
// normally arrive in order, so this is an append in all but clock-skewed
// cases.
func (d *dmState) append(message models.Message) {
	idx := len(d.messages)
	for idx > 0 && d.messages[idx-1].CreatedAt.After(message.CreatedAt) {
		idx--
	}

	d.messages = append(d.messages, models.Message{})
	copy(d.messages[idx+1:], d.messages[idx:])
	d.messages[idx] = message

	if d.follow {
		d.scroll = len(d.messages)
	}
}

// teardown releases the subscription. The overlay is the only owner of a
// long-lived resource in the client, so this is the only cleanup path.
func (d *dmState) teardown() {
	if d.sub != nil {
		d.sub.Close()
		d.sub = nil
	}
}
