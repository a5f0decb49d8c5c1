package gateway

import (
	"context"
	"net/url"
	"strings"
	"sync"

	"github.com/glimmersocial/glimmer/pkg/internal/ws"
	"github.com/gorilla/websocket"
)

// Subscription is a live change feed of message inserts involving the signed
// in account. It is the only long-lived resource the client holds; Close must
// be called when the consuming view goes away.
type Subscription struct {
	Events chan ws.Event

	conn      *websocket.Conn
	closed    chan struct{}
	closeOnce sync.Once
}

// Subscribe dials the realtime channel. Events arrive on the Events channel
// until the subscription is closed or the connection drops.
func (v *Client) Subscribe(ctx context.Context) (*Subscription, error) {
	target, err := url.Parse(v.endpoint)
	if err != nil {
		return nil, err
	}
	switch target.Scheme {
	case "https":
		target.Scheme = "wss"
	default:
		target.Scheme = "ws"
	}
	target.Path = strings.TrimSuffix(target.Path, "/") + "/ws"
	target.RawQuery = url.Values{"tk": []string{v.token}}.Encode()

	conn, _, err := websocket.DefaultDialer.DialContext(ctx, target.String(), nil)
	if err != nil {
		return nil, err
	}

	sub := &Subscription{
		Events: make(chan ws.Event, 16),
		conn:   conn,
		closed: make(chan struct{}),
	}

	go sub.readLoop()

	return sub, nil
}

func (s *Subscription) readLoop() {
	defer close(s.Events)

	for {
		var event ws.Event
		if err := s.conn.ReadJSON(&event); err != nil {
			return
		}

		select {
		case s.Events <- event:
		case <-s.closed:
			return
		}
	}
}

// Close tears the subscription down. Idempotent; the Events channel is closed
// shortly after.
func (s *Subscription) Close() {
	s.closeOnce.Do(func() {
		if s.closed != nil {
			close(s.closed)
		}
		if s.conn != nil {
			_ = s.conn.Close()
		}
	})
}
