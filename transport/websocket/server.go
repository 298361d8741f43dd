package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"

	"github.com/rocketscienceinc/tilous-backend/internal/entity"
	"github.com/rocketscienceinc/tilous-backend/internal/pkg"
	"github.com/rocketscienceinc/tilous-backend/internal/repository"
)

const shutdownTimeout = 5 * time.Second

type gameStore interface {
	Get(ctx context.Context) (*entity.Snapshot, error)
}

type Server struct {
	logger   *slog.Logger
	hub      *Hub
	store    gameStore
	upgrader websocket.Upgrader
}

func New(logger *slog.Logger, hub *Hub, store gameStore) *Server {
	return &Server{
		logger: logger.With("component", "websocket"),
		hub:    hub,
		store:  store,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// game clients are served from anywhere
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

func (that *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /game", that.ServeWS)

	return mux
}

// Start - starts WebSocket server, it stops when ctx is canceled.
func (that *Server) Start(ctx context.Context, port string) error {
	srv := &http.Server{
		Addr:        ":" + port,
		Handler:     that.Handler(),
		ReadTimeout: 10 * time.Second,
		IdleTimeout: 30 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		_ = srv.Shutdown(shutdownCtx)
	}()

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// ServeWS - upgrades /game?id=<player> and subscribes the connection to state updates.
func (that *Server) ServeWS(w http.ResponseWriter, r *http.Request) {
	playerID := r.URL.Query().Get("id")
	log := that.logger.With("method", "ServeWS", "playerID", playerID)

	if playerID == "" {
		http.Error(w, "id is required", http.StatusBadRequest)
		return
	}

	conn, err := that.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error("failed to upgrade connection", "error", err)
		return
	}

	c := &client{
		hub:       that.hub,
		conn:      conn,
		send:      make(chan []byte, sendBufferSize),
		sessionID: pkg.GenerateSessionID(),
		playerID:  playerID,
		moves:     -1,
	}

	if err = that.greet(r.Context(), c); err != nil {
		log.Error("failed to greet client", "error", err)
		_ = conn.Close()
		return
	}

	select {
	case that.hub.register <- c:
	case <-that.hub.done:
		_ = conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

// greet - queues the connection info and reads the latest stored state, if a game is running.
// The hub sends the state on register, or a newer one it has seen meanwhile.
func (that *Server) greet(ctx context.Context, c *client) error {
	hello, err := json.Marshal(Message{Event: eventConnected, SessionID: c.sessionID, PlayerID: c.playerID})
	if err != nil {
		return fmt.Errorf("failed to marshal greeting: %w", err)
	}

	c.send <- hello

	snapshot, err := that.store.Get(ctx)
	if errors.Is(err, repository.ErrGameNotFound) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("failed to get game: %w", err)
	}

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("failed to marshal state: %w", err)
	}

	c.initial = &state{moves: snapshot.Moves, payload: payload}

	return nil
}
