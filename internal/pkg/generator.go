package pkg

import (
	"strings"

	"github.com/google/uuid"
)

// GeneratePassword - random password handed to a player at login.
func GeneratePassword() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")
}

// GenerateSessionID - id of a websocket connection.
func GenerateSessionID() string {
	return uuid.NewString()
}

// GenerateGameID - id of an archived game.
func GenerateGameID() string {
	return uuid.NewString()
}
