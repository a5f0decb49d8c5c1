package tui

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/glimmersocial/glimmer/pkg/internal/gateway"
	"github.com/glimmersocial/glimmer/pkg/internal/models"
	"github.com/glimmersocial/glimmer/pkg/internal/ws"
)

func openConversation(t *testing.T) Model {
	t.Helper()
	m := signedIn(t, "alice", 1)

	next, _ := m.Update(accountsMsg{accounts: []models.Account{
		{BaseModel: models.BaseModel{ID: 1}, Name: "alice"},
		{BaseModel: models.BaseModel{ID: 2}, Name: "bob"},
	}})
	m = next.(Model)

	m, cmd := keyPress(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'3'}})
	_ = cmd
	m, cmd = keyPress(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if m.dm == nil {
		t.Fatal("expected the DM overlay to open")
	}
	if m.dm.target.Name != "bob" {
		t.Fatalf("expected conversation with bob, got %s", m.dm.target.Name)
	}
	if cmd == nil {
		t.Fatal("expected history fetch and subscribe commands")
	}

	m.dm.sub = &gateway.Subscription{Events: make(chan ws.Event, 1)}
	return m
}

func pairMessage(id, sender, receiver uint, content string, at time.Time) models.Message {
	return models.Message{
		BaseModel:  models.BaseModel{ID: id, CreatedAt: at},
		Content:    content,
		SenderID:   sender,
		Sender:     models.Account{BaseModel: models.BaseModel{ID: sender}},
		ReceiverID: receiver,
	}
}

func TestHistoryIsAscending(t *testing.T) {
	m := openConversation(t)

	base := time.Now()
	next, _ := m.Update(dmHistoryMsg{messages: []models.Message{
		pairMessage(2, 2, 1, "second", base.Add(time.Minute)),
		pairMessage(1, 1, 2, "first", base),
	}})
	m = next.(Model)

	if len(m.dm.messages) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(m.dm.messages))
	}
	if m.dm.messages[0].Content != "first" || m.dm.messages[1].Content != "second" {
		t.Fatalf("history not ascending: %+v", m.dm.messages)
	}
}

func TestEventAppendsOnlyPairMessages(t *testing.T) {
	m := openConversation(t)
	base := time.Now()

	fromBob := pairMessage(10, 2, 1, "hi", base)
	betweenOthers := pairMessage(11, 3, 4, "psst", base.Add(time.Second))
	fromAlice := pairMessage(12, 1, 2, "hey", base.Add(2*time.Second))

	for _, record := range []models.Message{fromBob, betweenOthers, fromAlice} {
		record := record
		next, _ := m.Update(dmEventMsg{event: ws.Event{Type: ws.EventMessageInsert, Message: &record}, ok: true})
		m = next.(Model)
	}

	if len(m.dm.messages) != 2 {
		t.Fatalf("expected only pair messages, got %d", len(m.dm.messages))
	}
	if m.dm.messages[0].Content != "hi" || m.dm.messages[1].Content != "hey" {
		t.Fatalf("unexpected conversation: %+v", m.dm.messages)
	}
	if m.dm.messages[0].SenderID != 2 {
		t.Fatal("expected the first message attributed to bob")
	}
}

func TestOutOfOrderEventKeepsAscendingOrder(t *testing.T) {
	m := openConversation(t)
	base := time.Now()

	later := pairMessage(21, 2, 1, "later", base.Add(time.Minute))
	earlier := pairMessage(20, 1, 2, "earlier", base)

	for _, record := range []models.Message{later, earlier} {
		record := record
		next, _ := m.Update(dmEventMsg{event: ws.Event{Message: &record}, ok: true})
		m = next.(Model)
	}

	if m.dm.messages[0].Content != "earlier" {
		t.Fatalf("expected timestamp order, got %+v", m.dm.messages)
	}
}

func TestSendClearsInputWithoutLocalAppend(t *testing.T) {
	m := openConversation(t)
	m.dm.input.SetValue("hi")

	m, cmd := keyPress(t, m, tea.KeyMsg{Type: tea.KeyEnter})
	if cmd == nil {
		t.Fatal("expected a send command")
	}
	if m.dm.input.Value() != "" {
		t.Fatal("input clears optimistically before the write completes")
	}
	if len(m.dm.messages) != 0 {
		t.Fatal("the sent message renders only via the subscription echo")
	}
}

func TestEmptySendIsIgnored(t *testing.T) {
	m := openConversation(t)
	m.dm.input.SetValue("   ")

	if _, cmd := keyPress(t, m, tea.KeyMsg{Type: tea.KeyEnter}); cmd != nil {
		t.Fatal("whitespace-only message must not be sent")
	}
}

func TestCloseTearsDownSubscription(t *testing.T) {
	m := openConversation(t)
	sub := m.dm.sub

	m, _ = keyPress(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.dm != nil {
		t.Fatal("expected the overlay to close")
	}

	// The subscription was released; closing again stays a no-op.
	sub.Close()
}

func TestLateSubscribeAfterCloseIsReleased(t *testing.T) {
	m := openConversation(t)
	m, _ = keyPress(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	sub := &gateway.Subscription{Events: make(chan ws.Event)}
	next, cmd := m.Update(dmSubscribedMsg{sub: sub})
	m = next.(Model)

	if cmd != nil {
		t.Fatal("no event wait should be armed for a closed overlay")
	}
}

func TestFollowPinsScrollToBottom(t *testing.T) {
	m := openConversation(t)
	base := time.Now()

	for i := 0; i < 3; i++ {
		record := pairMessage(uint(30+i), 2, 1, "m", base.Add(time.Duration(i)*time.Second))
		next, _ := m.Update(dmEventMsg{event: ws.Event{Message: &record}, ok: true})
		m = next.(Model)
	}

	if !m.dm.follow {
		t.Fatal("expected follow mode by default")
	}
	if m.dm.scroll != len(m.dm.messages) {
		t.Fatalf("expected scroll pinned to bottom, got %d", m.dm.scroll)
	}
}
