package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/rocketscienceinc/tilous-backend/internal/entity"
)

const (
	defaultHistoryLimit = 20
	maxHistoryLimit     = 100
)

type GameHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	PlaceCell(w http.ResponseWriter, r *http.Request)
	EndTurn(w http.ResponseWriter, r *http.Request)
	PlayerID(w http.ResponseWriter, r *http.Request)
	Winner(w http.ResponseWriter, r *http.Request)
	State(w http.ResponseWriter, r *http.Request)
	History(w http.ResponseWriter, r *http.Request)
}

type gameManager interface {
	Login(ctx context.Context, serverPassword, id string) (*entity.Player, error)
	Logout(ctx context.Context, id, password string) error
	PlaceCell(ctx context.Context, id, password string, row, col int) (*entity.Snapshot, error)
	EndTurn(ctx context.Context, id, password string) (*entity.Snapshot, error)
	PlayerID(ctx context.Context, id, password string) (entity.PlayerID, error)
	Winner(ctx context.Context) (*entity.PlayerID, error)
	State(ctx context.Context) (*entity.Snapshot, error)
	History(ctx context.Context, limit int) ([]*entity.GameResult, error)
}

type playerIDResponse struct {
	PlayerID entity.PlayerID `json:"player_id"`
}

type winnerResponse struct {
	Winner *entity.PlayerID `json:"winner"`
}

type gameHandler struct {
	logger  *slog.Logger
	manager gameManager
}

func NewGameHandler(logger *slog.Logger, manager gameManager) GameHandler {
	return &gameHandler{
		logger:  logger.With("component", "rest"),
		manager: manager,
	}
}

func (that *gameHandler) Login(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	player, err := that.manager.Login(r.Context(), query.Get("server_pwd"), query.Get("id"))
	if err != nil {
		that.fail(w, "Login", err)
		return
	}

	writeJSON(w, http.StatusOK, player)
}

func (that *gameHandler) Logout(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	if err := that.manager.Logout(r.Context(), query.Get("id"), query.Get("pwd")); err != nil {
		that.fail(w, "Logout", err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (that *gameHandler) PlaceCell(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	row, err := intParam(query.Get("row"), "row")
	if err != nil {
		that.fail(w, "PlaceCell", err)
		return
	}

	col, err := intParam(query.Get("col"), "col")
	if err != nil {
		that.fail(w, "PlaceCell", err)
		return
	}

	snapshot, err := that.manager.PlaceCell(r.Context(), query.Get("id"), query.Get("pwd"), row, col)
	if err != nil {
		that.fail(w, "PlaceCell", err)
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

func (that *gameHandler) EndTurn(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	snapshot, err := that.manager.EndTurn(r.Context(), query.Get("id"), query.Get("pwd"))
	if err != nil {
		that.fail(w, "EndTurn", err)
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

func (that *gameHandler) PlayerID(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	seat, err := that.manager.PlayerID(r.Context(), query.Get("id"), query.Get("pwd"))
	if err != nil {
		that.fail(w, "PlayerID", err)
		return
	}

	writeJSON(w, http.StatusOK, playerIDResponse{PlayerID: seat})
}

func (that *gameHandler) Winner(w http.ResponseWriter, r *http.Request) {
	winner, err := that.manager.Winner(r.Context())
	if err != nil {
		that.fail(w, "Winner", err)
		return
	}

	writeJSON(w, http.StatusOK, winnerResponse{Winner: winner})
}

func (that *gameHandler) State(w http.ResponseWriter, r *http.Request) {
	snapshot, err := that.manager.State(r.Context())
	if err != nil {
		that.fail(w, "State", err)
		return
	}

	writeJSON(w, http.StatusOK, snapshot)
}

func (that *gameHandler) History(w http.ResponseWriter, r *http.Request) {
	limit := defaultHistoryLimit

	if raw := r.URL.Query().Get("limit"); raw != "" {
		parsed, err := intParam(raw, "limit")
		if err != nil || parsed <= 0 {
			that.fail(w, "History", fmt.Errorf("%w: limit must be positive", errBadRequest))
			return
		}

		limit = min(parsed, maxHistoryLimit)
	}

	results, err := that.manager.History(r.Context(), limit)
	if err != nil {
		that.fail(w, "History", err)
		return
	}

	if results == nil {
		results = []*entity.GameResult{}
	}

	writeJSON(w, http.StatusOK, results)
}

func (that *gameHandler) fail(w http.ResponseWriter, method string, err error) {
	log := that.logger.With("method", method)

	if statusFor(err) == http.StatusInternalServerError {
		log.Error("request failed", "error", err)
	} else {
		log.Debug("request rejected", "error", err)
	}

	writeError(w, err)
}

func intParam(raw, name string) (int, error) {
	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer", errBadRequest, name)
	}

	return value, nil
}
