package apperror

import "errors"

// placement and turn rules.
var (
	ErrGameFinished   = errors.New("game is already finished")
	ErrNotYourTurn    = errors.New("it's not your turn")
	ErrCellOutOfBoard = errors.New("cell is out of the board")
	ErrCellOwned      = errors.New("cell is already yours")
	ErrNotAdjacent    = errors.New("cell is not adjacent to your territory")
	ErrNoResources    = errors.New("no resources left")
	ErrDefenseTooHigh = errors.New("cell defense is higher than your resources")
)

// lobby and sessions.
var (
	ErrGameIsNotStarted      = errors.New("game is not started")
	ErrGameAlreadyStarted    = errors.New("game is already started")
	ErrLobbyFull             = errors.New("all seats are taken")
	ErrPlayerAlreadyExists   = errors.New("player already exists")
	ErrInvalidCredentials    = errors.New("no such player or credentials are wrong")
	ErrInvalidServerPassword = errors.New("server password is wrong")
)
