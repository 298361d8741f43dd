package tilous

import (
	"fmt"

	"github.com/rocketscienceinc/tilous-backend/internal/board"
	"github.com/rocketscienceinc/tilous-backend/internal/entity"
)

// Snapshot - a copy of the full game state. Changing it does not affect the engine.
func (that *Engine) Snapshot() *entity.Snapshot {
	snapshot := &entity.Snapshot{
		Size:          that.board.Size(),
		Cells:         that.board.Cells(),
		Resources:     make(map[entity.PlayerID]int, entity.PlayersCount),
		States:        make(map[entity.PlayerID]entity.PlayerState, entity.PlayersCount),
		CurrentPlayer: that.current,
		GameOver:      that.gameOver,
		Moves:         that.moves,
	}

	for _, player := range entity.PlayerIDs {
		snapshot.Resources[player] = that.resources[player.Index()]
		snapshot.States[player] = that.states[player.Index()]
	}

	if winner, ok := that.wonPlayer(); ok {
		snapshot.Winner = &winner
	}

	return snapshot
}

// Restore - rebuilds an engine from a snapshot.
func Restore(snapshot *entity.Snapshot) (*Engine, error) {
	if err := snapshot.Validate(); err != nil {
		return nil, fmt.Errorf("failed to restore game: %w", err)
	}

	b, err := board.FromCells(snapshot.Cells)
	if err != nil {
		return nil, fmt.Errorf("failed to restore board: %w", err)
	}

	that := &Engine{
		board:    b,
		current:  snapshot.CurrentPlayer,
		gameOver: snapshot.GameOver,
		moves:    snapshot.Moves,
	}

	for _, player := range entity.PlayerIDs {
		that.resources[player.Index()] = snapshot.Resources[player]
		that.states[player.Index()] = snapshot.States[player]
	}

	if !that.gameOver && that.states[that.current.Index()] != entity.StatePlaying {
		return nil, fmt.Errorf("%w: current player %s is %s", entity.ErrInvalidSnapshot, that.current, that.State(that.current))
	}

	return that, nil
}
