package websocket

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/gorilla/websocket"
)

const (
	// time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// clients only send control frames.
	maxMessageSize = 512

	sendBufferSize = 64
)

type client struct {
	hub       *Hub
	conn      *websocket.Conn
	send      chan []byte
	sessionID string
	playerID  string

	// stored state read before registering, nil when no game was stored.
	initial *state
	// moves of the last state sent, -1 before the first one.
	moves int
}

type state struct {
	moves   int
	payload []byte
}

func parseState(payload []byte) (*state, error) {
	var header struct {
		Moves int `json:"moves"`
	}

	if err := json.Unmarshal(payload, &header); err != nil {
		return nil, err
	}

	return &state{moves: header.Moves, payload: payload}, nil
}

// Hub - keeps the connected clients and sends every state update to all of them.
type Hub struct {
	logger *slog.Logger

	clients map[*client]struct{}
	// newest state seen on broadcast.
	latest *state

	broadcast  chan []byte
	register   chan *client
	unregister chan *client

	// closed when Run returns.
	done chan struct{}
}

func NewHub(logger *slog.Logger) *Hub {
	return &Hub{
		logger:     logger.With("component", "websocket_hub"),
		clients:    make(map[*client]struct{}),
		broadcast:  make(chan []byte),
		register:   make(chan *client),
		unregister: make(chan *client),
		done:       make(chan struct{}),
	}
}

// Run - the event loop, every client is closed when ctx is done.
func (that *Hub) Run(ctx context.Context) {
	defer close(that.done)

	for {
		select {
		case <-ctx.Done():
			for c := range that.clients {
				that.remove(c)
			}
			return

		case c := <-that.register:
			that.clients[c] = struct{}{}
			that.logger.Info("client connected", "sessionID", c.sessionID, "playerID", c.playerID, "clients", len(that.clients))

			// a state broadcast while the client was reading the store is newer than the stored one
			current := c.initial
			if that.latest != nil && (current == nil || that.latest.moves > current.moves) {
				current = that.latest
			}

			if current != nil {
				that.sendState(c, current)
			}

		case c := <-that.unregister:
			that.remove(c)

		case payload := <-that.broadcast:
			update, err := parseState(payload)
			if err != nil {
				that.logger.Error("failed to parse state", "error", err)
				continue
			}

			if that.latest == nil || update.moves >= that.latest.moves {
				that.latest = update
			}

			for c := range that.clients {
				that.sendState(c, update)
			}
		}
	}
}

// sendState - queues update unless the client already has this state or a newer one.
func (that *Hub) sendState(c *client, update *state) {
	if update.moves <= c.moves {
		return
	}

	message, err := json.Marshal(Message{Event: eventState, State: update.payload})
	if err != nil {
		that.logger.Error("failed to marshal state", "error", err)
		return
	}

	select {
	case c.send <- message:
		c.moves = update.moves
	default:
		// slow client
		that.remove(c)
	}
}

// Forward - broadcasts every state from payloads until the channel is closed or ctx is done.
func (that *Hub) Forward(ctx context.Context, payloads <-chan []byte) {
	for {
		select {
		case <-ctx.Done():
			return
		case payload, ok := <-payloads:
			if !ok {
				return
			}

			if !json.Valid(payload) {
				that.logger.Warn("dropping invalid state payload")
				continue
			}

			select {
			case that.broadcast <- payload:
			case <-ctx.Done():
				return
			}
		}
	}
}

func (that *Hub) remove(c *client) {
	if _, ok := that.clients[c]; !ok {
		return
	}

	delete(that.clients, c)
	close(c.send)

	that.logger.Info("client disconnected", "sessionID", c.sessionID, "clients", len(that.clients))
}

// readPump - drains the connection so control frames are processed, unregisters on error.
func (that *client) readPump() {
	defer func() {
		select {
		case that.hub.unregister <- that:
		case <-that.hub.done:
		}
		_ = that.conn.Close()
	}()

	that.conn.SetReadLimit(maxMessageSize)
	_ = that.conn.SetReadDeadline(time.Now().Add(pongWait))
	that.conn.SetPongHandler(func(string) error {
		return that.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := that.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				that.hub.logger.Warn("websocket read failed", "sessionID", that.sessionID, "error", err)
			}

			return
		}
	}
}

func (that *client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		_ = that.conn.Close()
	}()

	for {
		select {
		case message, ok := <-that.send:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = that.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := that.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			_ = that.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := that.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
