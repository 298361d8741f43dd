package tilous

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tilous-backend/internal/apperror"
	"github.com/rocketscienceinc/tilous-backend/internal/board"
	"github.com/rocketscienceinc/tilous-backend/internal/entity"
)

const (
	// MinBoardSize - smallest board with four distinct corners.
	MinBoardSize = 2

	initialResources = 1
	claimCost        = 1

	// neighbors of the same owner a cell gets for free before its defense grows.
	freeDefenseNeighbors = 2
)

var ErrInvalidBoardSize = errors.New("invalid board size")

// Engine - the rules of a single game. It is not safe for concurrent use,
// callers serialize Place and EndTurn themselves.
type Engine struct {
	board     *board.Board
	resources [entity.PlayersCount]int
	states    [entity.PlayersCount]entity.PlayerState
	current   entity.PlayerID
	gameOver  bool
	moves     int

	collapsed []board.Coord
}

// New - creates a game on an empty size x size board with every seat owning its corner.
func New(size int) (*Engine, error) {
	if size < MinBoardSize {
		return nil, fmt.Errorf("%w: %d, at least %d is required", ErrInvalidBoardSize, size, MinBoardSize)
	}

	that := &Engine{
		board:   board.New(size),
		current: entity.Player1,
	}

	corners := that.board.Corners()
	for _, player := range entity.PlayerIDs {
		corner := corners[player.Index()]
		that.board.Set(corner.Row, corner.Col, entity.OwnedBy(player))
		that.resources[player.Index()] = initialResources
		that.states[player.Index()] = entity.StatePlaying
	}

	return that, nil
}

// CheckTurn - reports why player may not act right now, nil when it may.
func (that *Engine) CheckTurn(player entity.PlayerID) error {
	player.Index()

	if that.gameOver {
		return apperror.ErrGameFinished
	}

	if player != that.current {
		return fmt.Errorf("%w: current player is %s", apperror.ErrNotYourTurn, that.current)
	}

	return nil
}

// ValidatePlacement - returns the first placement rule the move breaks.
func (that *Engine) ValidatePlacement(row, col int, player entity.PlayerID) error {
	if err := that.CheckTurn(player); err != nil {
		return err
	}

	if !that.board.IsValid(row, col) {
		return fmt.Errorf("%w: (%d, %d)", apperror.ErrCellOutOfBoard, row, col)
	}

	owner := that.board.Get(row, col)
	if owner.Is(player) {
		return apperror.ErrCellOwned
	}

	if that.FriendlyCardinalCount(row, col, player) == 0 {
		return apperror.ErrNotAdjacent
	}

	resources := that.resources[player.Index()]
	if resources == 0 {
		return apperror.ErrNoResources
	}

	if owner.IsEmpty() {
		return nil
	}

	if defense := that.DefenseCost(row, col); defense > resources {
		return fmt.Errorf("%w: defense %d, resources %d", apperror.ErrDefenseTooHigh, defense, resources)
	}

	return nil
}

func (that *Engine) IsValidPlacement(row, col int, player entity.PlayerID) bool {
	return that.ValidatePlacement(row, col, player) == nil
}

// Place - claims an empty cell or captures an enemy one. Returns false without
// touching the state when the placement is not valid.
func (that *Engine) Place(row, col int, player entity.PlayerID) bool {
	if err := that.ValidatePlacement(row, col, player); err != nil {
		return false
	}

	that.collapsed = nil

	captured := !that.board.Get(row, col).IsEmpty()
	cost := claimCost
	if captured {
		cost = that.DefenseCost(row, col)
	}

	that.board.Set(row, col, entity.OwnedBy(player))
	that.spend(player, cost)

	if captured {
		that.collapsed = pruneUnanchored(that.board)
	}

	that.updateStandings()
	that.moves++

	return true
}

// EndTurn - passes the turn to the next active player and pays the income of
// the player who ended it. Rejected once the game is over, like Place.
func (that *Engine) EndTurn(player entity.PlayerID) bool {
	if err := that.CheckTurn(player); err != nil {
		return false
	}

	that.current = that.NextPlayer()
	that.resources[player.Index()] += that.ProductiveCellCount(player) + 1
	that.moves++

	return true
}

// Collapsed - cells cleared by the stability prune of the last successful Place.
func (that *Engine) Collapsed() []board.Coord {
	result := make([]board.Coord, len(that.collapsed))
	copy(result, that.collapsed)

	return result
}

func (that *Engine) spend(player entity.PlayerID, cost int) {
	idx := player.Index()
	if that.resources[idx] < cost {
		panic(fmt.Sprintf("tilous: %s spends %d with %d resources", player, cost, that.resources[idx]))
	}

	that.resources[idx] -= cost
}

// updateStandings - eliminates players without cells and declares the winner
// once a single player is left in the game.
func (that *Engine) updateStandings() {
	for _, player := range entity.PlayerIDs {
		idx := player.Index()
		if that.states[idx] == entity.StatePlaying && that.FriendlyCellCount(player) == 0 {
			that.states[idx] = entity.StateLost
		}
	}

	that.Winner()
}

// Winner - the winner of the game if it is decided. Deciding it marks the
// player Won and finishes the game, later calls return the same player.
func (that *Engine) Winner() (entity.PlayerID, bool) {
	if winner, ok := that.wonPlayer(); ok {
		return winner, true
	}

	playing := that.ActivePlayers()
	if len(playing) != 1 {
		return 0, false
	}

	winner := playing[0]
	that.states[winner.Index()] = entity.StateWon
	that.gameOver = true

	return winner, true
}

func (that *Engine) wonPlayer() (entity.PlayerID, bool) {
	for _, player := range entity.PlayerIDs {
		if that.states[player.Index()] == entity.StateWon {
			return player, true
		}
	}

	return 0, false
}

func (that *Engine) Size() int {
	return that.board.Size()
}

func (that *Engine) Cell(row, col int) entity.Owner {
	return that.board.Get(row, col)
}

// Board - a copy of the board.
func (that *Engine) Board() *board.Board {
	return that.board.Clone()
}

func (that *Engine) CurrentPlayer() entity.PlayerID {
	return that.current
}

// Moves - accepted placements and ended turns so far.
func (that *Engine) Moves() int {
	return that.moves
}

func (that *Engine) IsGameOver() bool {
	return that.gameOver
}

func (that *Engine) Resources(player entity.PlayerID) int {
	return that.resources[player.Index()]
}

func (that *Engine) State(player entity.PlayerID) entity.PlayerState {
	return that.states[player.Index()]
}
