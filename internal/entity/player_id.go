package entity

import (
	"errors"
	"fmt"
)

// PlayerID - one of the four seats of a game.
type PlayerID int

const (
	Player1 PlayerID = iota
	Player2
	Player3
	Player4
)

// PlayersCount - number of seats, the engine does not support other counts.
const PlayersCount = 4

var ErrUnknownPlayerID = errors.New("unknown player id")

// PlayerIDs - all seats in turn order.
var PlayerIDs = [PlayersCount]PlayerID{Player1, Player2, Player3, Player4}

var playerNames = [PlayersCount]string{"PLAYER_1", "PLAYER_2", "PLAYER_3", "PLAYER_4"}

func (that PlayerID) IsValid() bool {
	return that >= Player1 && that <= Player4
}

// Index - position of the seat in per-player arrays. Panics on unknown ids.
func (that PlayerID) Index() int {
	if !that.IsValid() {
		panic(fmt.Errorf("%w: %d", ErrUnknownPlayerID, int(that)))
	}

	return int(that)
}

func (that PlayerID) String() string {
	if !that.IsValid() {
		return fmt.Sprintf("PlayerID(%d)", int(that))
	}

	return playerNames[that]
}

// ParsePlayerID - parses the text form ("PLAYER_1".."PLAYER_4").
func ParsePlayerID(text string) (PlayerID, error) {
	for i, name := range playerNames {
		if name == text {
			return PlayerID(i), nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownPlayerID, text)
}

func (that PlayerID) MarshalText() ([]byte, error) {
	if !that.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownPlayerID, int(that))
	}

	return []byte(playerNames[that]), nil
}

func (that *PlayerID) UnmarshalText(text []byte) error {
	id, err := ParsePlayerID(string(text))
	if err != nil {
		return err
	}

	*that = id

	return nil
}
