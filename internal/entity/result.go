package entity

import "time"

// GameResult - archived outcome of a finished game.
type GameResult struct {
	ID         string              `json:"id"`
	Winner     PlayerID            `json:"winner"`
	BoardSize  int                 `json:"board_size"`
	Players    map[PlayerID]string `json:"players"`
	FinishedAt time.Time           `json:"finished_at"`
}
