package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rocketscienceinc/tilous-backend/internal/apperror"
	"github.com/rocketscienceinc/tilous-backend/internal/entity"
	"github.com/rocketscienceinc/tilous-backend/internal/pkg"
	"github.com/rocketscienceinc/tilous-backend/internal/repository"
	"github.com/rocketscienceinc/tilous-backend/internal/tilous"
)

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
	DeleteByID(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Player, error)
	Clear(ctx context.Context) error
}

type gameRepo interface {
	Save(ctx context.Context, snapshot *entity.Snapshot) error
	Delete(ctx context.Context) error
}

type resultRepo interface {
	Save(ctx context.Context, result *entity.GameResult) error
	List(ctx context.Context, limit int) ([]*entity.GameResult, error)
}

type broadcaster interface {
	Publish(ctx context.Context, snapshot *entity.Snapshot) error
}

type Settings struct {
	ServerPassword string
	BoardSize      int
}

// GameManager - the lobby and the single running game. All methods are serialized by one lock,
// the engine itself is never touched outside of it.
type GameManager struct {
	logger   *slog.Logger
	settings Settings

	playerRepo  playerRepo
	gameRepo    gameRepo
	resultRepo  resultRepo
	broadcaster broadcaster

	mu          sync.Mutex
	engine      *tilous.Engine
	seats       map[entity.PlayerID]string
	result      *entity.GameResult
	resultSaved bool

	shuffle func(n int, swap func(i, j int))
	now     func() time.Time
}

func NewGameManager(
	logger *slog.Logger,
	settings Settings,
	playerRepo playerRepo,
	gameRepo gameRepo,
	resultRepo resultRepo,
	broadcaster broadcaster,
) *GameManager {
	return &GameManager{
		logger:   logger.With("component", "game_manager"),
		settings: settings,

		playerRepo:  playerRepo,
		gameRepo:    gameRepo,
		resultRepo:  resultRepo,
		broadcaster: broadcaster,

		shuffle: rand.Shuffle,
		now:     time.Now,
	}
}

// Reset - forgets every player and the stored game. Used at startup, games never outlive the process.
func (that *GameManager) Reset(ctx context.Context) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if err := that.playerRepo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear players: %w", err)
	}

	if err := that.gameRepo.Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete game: %w", err)
	}

	that.engine = nil
	that.seats = nil
	that.result = nil
	that.resultSaved = false

	return nil
}

// Login - registers a player in the lobby. The game starts when the last seat is taken.
func (that *GameManager) Login(ctx context.Context, serverPassword, id string) (*entity.Player, error) {
	log := that.logger.With("method", "Login", "playerID", id)

	that.mu.Lock()
	defer that.mu.Unlock()

	if serverPassword != that.settings.ServerPassword {
		log.Warn("wrong server password")
		return nil, apperror.ErrInvalidServerPassword
	}

	if id == "" {
		return nil, fmt.Errorf("%w: empty player id", apperror.ErrInvalidCredentials)
	}

	if that.engine != nil {
		return nil, apperror.ErrGameAlreadyStarted
	}

	players, err := that.playerRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list players: %w", err)
	}

	for _, player := range players {
		if player.ID == id {
			return nil, fmt.Errorf("%w: %s", apperror.ErrPlayerAlreadyExists, id)
		}
	}

	if len(players) >= entity.PlayersCount {
		return nil, apperror.ErrLobbyFull
	}

	player := &entity.Player{
		ID:       id,
		Password: pkg.GeneratePassword(),
	}

	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}

	players = append(players, player)
	log.Info("player logged in", "players", len(players))

	if len(players) == entity.PlayersCount {
		if err = that.startGame(ctx, players); err != nil {
			that.leaveLobby(ctx, player, players)
			return nil, fmt.Errorf("failed to start game: %w", err)
		}
	}

	return player, nil
}

// leaveLobby - undoes a login whose game could not start: the waiting players lose their seats
// and the new player is removed, so the lobby can fill up again.
func (that *GameManager) leaveLobby(ctx context.Context, player *entity.Player, players []*entity.Player) {
	log := that.logger.With("method", "leaveLobby", "playerID", player.ID)

	for _, waiting := range players {
		if waiting.ID == player.ID {
			continue
		}

		waiting.Seat = nil
		if err := that.playerRepo.CreateOrUpdate(ctx, waiting); err != nil {
			log.Error("failed to unseat player", "waitingID", waiting.ID, "error", err)
		}
	}

	player.Seat = nil
	if err := that.playerRepo.DeleteByID(ctx, player.ID); err != nil {
		log.Error("failed to delete player", "error", err)
	}
}

// Logout - leaves the lobby, only possible before the game starts.
func (that *GameManager) Logout(ctx context.Context, id, password string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, err := that.authenticate(ctx, id, password); err != nil {
		return err
	}

	if that.engine != nil {
		return apperror.ErrGameAlreadyStarted
	}

	if err := that.playerRepo.DeleteByID(ctx, id); err != nil {
		return fmt.Errorf("failed to delete player: %w", err)
	}

	that.logger.Info("player logged out", "playerID", id)

	return nil
}

func (that *GameManager) PlaceCell(ctx context.Context, id, password string, row, col int) (*entity.Snapshot, error) {
	log := that.logger.With("method", "PlaceCell", "playerID", id, "row", row, "col", col)

	that.mu.Lock()
	defer that.mu.Unlock()

	seat, err := that.seatOf(ctx, id, password)
	if err != nil {
		return nil, err
	}

	if err = that.engine.ValidatePlacement(row, col, seat); err != nil {
		log.Info("placement rejected", "reason", err)
		return nil, fmt.Errorf("failed to place cell: %w", err)
	}

	that.engine.Place(row, col, seat)

	if collapsed := that.engine.Collapsed(); len(collapsed) > 0 {
		log.Info("territory collapsed", "cells", len(collapsed))
	}

	return that.publishState(ctx), nil
}

func (that *GameManager) EndTurn(ctx context.Context, id, password string) (*entity.Snapshot, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	seat, err := that.seatOf(ctx, id, password)
	if err != nil {
		return nil, err
	}

	if err = that.engine.CheckTurn(seat); err != nil {
		return nil, fmt.Errorf("failed to end turn: %w", err)
	}

	that.engine.EndTurn(seat)
	that.logger.Info("turn ended", "player", seat, "next", that.engine.CurrentPlayer())

	return that.publishState(ctx), nil
}

// PlayerID - the seat assigned to the player when the game started.
func (that *GameManager) PlayerID(ctx context.Context, id, password string) (entity.PlayerID, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.seatOf(ctx, id, password)
}

// Winner - nil until the game has a winner.
func (that *GameManager) Winner(ctx context.Context) (*entity.PlayerID, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.engine == nil {
		return nil, nil
	}

	winner, ok := that.engine.Winner()
	if !ok {
		return nil, nil
	}

	that.archiveResult(ctx, winner)

	return &winner, nil
}

func (that *GameManager) State(ctx context.Context) (*entity.Snapshot, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.engine == nil {
		return nil, apperror.ErrGameIsNotStarted
	}

	snapshot := that.engine.Snapshot()
	if snapshot.Winner != nil {
		that.archiveResult(ctx, *snapshot.Winner)
	}

	return snapshot, nil
}

// History - results of finished games, the latest first.
func (that *GameManager) History(ctx context.Context, limit int) ([]*entity.GameResult, error) {
	results, err := that.resultRepo.List(ctx, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list results: %w", err)
	}

	return results, nil
}

func (that *GameManager) startGame(ctx context.Context, players []*entity.Player) error {
	engine, err := tilous.New(that.settings.BoardSize)
	if err != nil {
		return fmt.Errorf("failed to create engine: %w", err)
	}

	seatOrder := entity.PlayerIDs
	that.shuffle(len(seatOrder), func(i, j int) {
		seatOrder[i], seatOrder[j] = seatOrder[j], seatOrder[i]
	})

	seats := make(map[entity.PlayerID]string, entity.PlayersCount)
	for i, player := range players {
		seat := seatOrder[i]
		player.Seat = &seat
		seats[seat] = player.ID
	}

	for _, player := range players {
		if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
			return fmt.Errorf("failed to seat player %s: %w", player.ID, err)
		}
	}

	that.engine = engine
	that.seats = seats
	that.result = nil
	that.resultSaved = false

	that.logger.Info("game started", "seats", seats, "boardSize", that.settings.BoardSize)
	that.publishState(ctx)

	return nil
}

// publishState - stores and broadcasts the current state. Failures are only logged,
// the action itself already happened.
func (that *GameManager) publishState(ctx context.Context) *entity.Snapshot {
	log := that.logger.With("method", "publishState")
	snapshot := that.engine.Snapshot()

	if err := that.gameRepo.Save(ctx, snapshot); err != nil {
		log.Error("failed to save game", "error", err)
	}

	if err := that.broadcaster.Publish(ctx, snapshot); err != nil {
		log.Error("failed to publish game", "error", err)
	}

	if snapshot.Winner != nil {
		that.archiveResult(ctx, *snapshot.Winner)
	}

	return snapshot
}

// archiveResult - writes the finished game to the results archive once. A failed write is
// retried with the same result by the next call, Winner and State keep calling it after the game is over.
func (that *GameManager) archiveResult(ctx context.Context, winner entity.PlayerID) {
	if that.resultSaved {
		return
	}

	log := that.logger.With("method", "archiveResult")

	if that.result == nil {
		that.result = &entity.GameResult{
			ID:         pkg.GenerateGameID(),
			Winner:     winner,
			BoardSize:  that.engine.Size(),
			Players:    that.seats,
			FinishedAt: that.now().UTC(),
		}
	}

	if err := that.resultRepo.Save(ctx, that.result); err != nil {
		log.Error("failed to save result, retrying on the next request", "error", err)
		return
	}

	that.resultSaved = true
	log.Info("game finished", "winner", winner, "winnerID", that.seats[winner])
}

func (that *GameManager) authenticate(ctx context.Context, id, password string) (*entity.Player, error) {
	player, err := that.playerRepo.GetByID(ctx, id)
	if errors.Is(err, repository.ErrPlayerNotFound) {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidCredentials, id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to get player: %w", err)
	}

	if player.Password != password {
		return nil, fmt.Errorf("%w: %s", apperror.ErrInvalidCredentials, id)
	}

	return player, nil
}

// seatOf - authenticates the player and returns its seat in the running game.
func (that *GameManager) seatOf(ctx context.Context, id, password string) (entity.PlayerID, error) {
	player, err := that.authenticate(ctx, id, password)
	if err != nil {
		return 0, err
	}

	if that.engine == nil || !player.IsSeated() {
		return 0, apperror.ErrGameIsNotStarted
	}

	return *player.Seat, nil
}
