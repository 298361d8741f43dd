package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tilous-backend/internal/config"
	"github.com/rocketscienceinc/tilous-backend/internal/repository"
	"github.com/rocketscienceinc/tilous-backend/internal/repository/storage"
	"github.com/rocketscienceinc/tilous-backend/internal/usecase"
	"github.com/rocketscienceinc/tilous-backend/transport/rest"
	"github.com/rocketscienceinc/tilous-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application until SIGINT or SIGTERM.
func RunApp(ctx context.Context, logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	sqliteStorage, err := storage.NewSQLiteStorage(conf.SQLiteStoragePath)
	if err != nil {
		return fmt.Errorf("could not open sqlite storage: %w", err)
	}

	defer func() {
		if err = sqliteStorage.Close(); err != nil {
			log.Error("could not close sqlite storage", "error", err)
		}
	}()

	if err = sqliteStorage.Init(ctx); err != nil {
		return fmt.Errorf("could not init sqlite storage: %w", err)
	}

	playerRepo := repository.NewPlayerRepository(redisStorage)
	gameRepo := repository.NewGameRepository(redisStorage)
	resultRepo := repository.NewResultRepository(sqliteStorage.Connection)
	broadcaster := repository.NewBroadcaster(redisStorage, conf.Redis.Channel)

	settings := usecase.Settings{
		ServerPassword: conf.ServerPassword,
		BoardSize:      conf.Game.BoardSize,
	}
	gameManager := usecase.NewGameManager(logger, settings, playerRepo, gameRepo, resultRepo, broadcaster)

	if err = gameManager.Reset(ctx); err != nil {
		return fmt.Errorf("could not reset game: %w", err)
	}

	payloads, err := broadcaster.Subscribe(ctx)
	if err != nil {
		return fmt.Errorf("could not subscribe to game updates: %w", err)
	}

	hub := websocket.NewHub(logger)
	go hub.Run(ctx)
	go hub.Forward(ctx, payloads)

	router := rest.NewRouter(rest.NewPingHandler(), rest.NewGameHandler(logger, gameManager))

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.Start(ctx, conf.HTTPPort, router); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		wsServer := websocket.New(logger, hub, gameRepo)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
