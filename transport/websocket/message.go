package websocket

import "encoding/json"

const (
	eventConnected = "connected"
	eventState     = "state"
)

// Message - everything sent to clients.
type Message struct {
	Event     string          `json:"event"`
	SessionID string          `json:"session_id,omitempty"`
	PlayerID  string          `json:"id,omitempty"`
	State     json.RawMessage `json:"state,omitempty"`
}
