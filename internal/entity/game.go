package entity

import (
	"errors"
	"fmt"
)

type PlayerState string

const (
	StatePlaying PlayerState = "PLAYING"
	StateLost    PlayerState = "LOST"
	StateWon     PlayerState = "WON"
)

var (
	ErrUnknownPlayerState = errors.New("unknown player state")
	ErrInvalidSnapshot    = errors.New("invalid snapshot")
)

func (that PlayerState) IsValid() bool {
	switch that {
	case StatePlaying, StateLost, StateWon:
		return true
	default:
		return false
	}
}

// IsTerminal - Lost and Won never change for the rest of the game.
func (that PlayerState) IsTerminal() bool {
	return that == StateLost || that == StateWon
}

// Snapshot - a detached copy of the whole game state, safe to serialize and broadcast.
type Snapshot struct {
	Size          int                      `json:"size"`
	Cells         [][]Owner                `json:"cells"`
	Resources     map[PlayerID]int         `json:"resources"`
	States        map[PlayerID]PlayerState `json:"states"`
	CurrentPlayer PlayerID                 `json:"current_player"`
	GameOver      bool                     `json:"game_over"`
	Winner        *PlayerID                `json:"winner,omitempty"`
	// Moves - grows with every accepted action, a newer state has more moves.
	Moves int `json:"moves"`
}

// Validate - checks that the snapshot describes a complete four-player game.
func (that *Snapshot) Validate() error {
	if that.Size < 2 {
		return fmt.Errorf("%w: board size %d", ErrInvalidSnapshot, that.Size)
	}

	if len(that.Cells) != that.Size {
		return fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidSnapshot, that.Size, len(that.Cells))
	}

	for i, row := range that.Cells {
		if len(row) != that.Size {
			return fmt.Errorf("%w: row %d has %d cells", ErrInvalidSnapshot, i, len(row))
		}
	}

	if that.Moves < 0 {
		return fmt.Errorf("%w: moves %d", ErrInvalidSnapshot, that.Moves)
	}

	if !that.CurrentPlayer.IsValid() {
		return fmt.Errorf("%w: current player %d", ErrInvalidSnapshot, int(that.CurrentPlayer))
	}

	for _, player := range PlayerIDs {
		resources, ok := that.Resources[player]
		if !ok || resources < 0 {
			return fmt.Errorf("%w: resources of %s", ErrInvalidSnapshot, player)
		}

		state, ok := that.States[player]
		if !ok {
			return fmt.Errorf("%w: state of %s is missing", ErrInvalidSnapshot, player)
		}

		if !state.IsValid() {
			return fmt.Errorf("%w: %w: %q", ErrInvalidSnapshot, ErrUnknownPlayerState, state)
		}
	}

	return nil
}
