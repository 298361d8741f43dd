package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const shutdownTimeout = 5 * time.Second

func NewRouter(ping PingHandler, game GameHandler) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /ping", ping.PingHandler)

	mux.HandleFunc("POST /login", game.Login)
	mux.HandleFunc("POST /logout", game.Logout)
	mux.HandleFunc("POST /placeCell", game.PlaceCell)
	mux.HandleFunc("POST /endPlayersTurn", game.EndTurn)
	mux.HandleFunc("GET /playerID", game.PlayerID)
	mux.HandleFunc("GET /getWinner", game.Winner)
	mux.HandleFunc("GET /state", game.State)
	mux.HandleFunc("GET /history", game.History)

	return mux
}

// Start - serves HTTP until ctx is canceled.
func Start(ctx context.Context, port string, handler http.Handler) error {
	srv := &http.Server{
		Addr:         ":" + port,
		Handler:      handler,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  30 * time.Second,
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
