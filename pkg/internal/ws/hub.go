package ws

import (
	"sync"

	"github.com/glimmersocial/glimmer/pkg/internal/models"
	jsoniter "github.com/json-iterator/go"
	"github.com/rs/zerolog/log"
)

// Hub tracks connected realtime clients keyed by account so that message
// insert events can be fanned out to both ends of a conversation.
type Hub struct {
	clients  map[*Client]bool
	presence map[uint]map[*Client]bool

	Register   chan *Client
	Unregister chan *Client

	mu sync.RWMutex
}

var H = NewHub()

func NewHub() *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		presence:   make(map[uint]map[*Client]bool),
		Register:   make(chan *Client),
		Unregister: make(chan *Client),
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.Register:
			h.registerClient(client)
		case client := <-h.Unregister:
			h.unregisterClient(client)
		}
	}
}

func (h *Hub) registerClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.clients[client] = true
	if h.presence[client.accountID] == nil {
		h.presence[client.accountID] = make(map[*Client]bool)
	}
	h.presence[client.accountID][client] = true

	log.Debug().Uint("account", client.accountID).Msg("Realtime client connected.")
}

func (h *Hub) unregisterClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client]; !ok {
		return
	}

	delete(h.clients, client)
	if peers, ok := h.presence[client.accountID]; ok {
		delete(peers, client)
		if len(peers) == 0 {
			delete(h.presence, client.accountID)
		}
	}
	close(client.send)

	log.Debug().Uint("account", client.accountID).Msg("Realtime client disconnected.")
}

// PushMessageInsert delivers a row-insert event to every connection owned by
// the sender or the receiver. Offline parties just miss the event; the next
// history fetch catches them up.
func (h *Hub) PushMessageInsert(item models.Message) error {
	event := Event{
		Type:    EventMessageInsert,
		Message: &item,
	}

	raw, err := jsoniter.ConfigCompatibleWithStandardLibrary.Marshal(event)
	if err != nil {
		return err
	}

	targets := []uint{item.SenderID}
	if item.ReceiverID != item.SenderID {
		targets = append(targets, item.ReceiverID)
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, id := range targets {
		for client := range h.presence[id] {
			select {
			case client.send <- raw:
			default:
				log.Warn().Uint("account", id).Msg("Realtime client send buffer is full, dropping event...")
			}
		}
	}

	return nil
}
