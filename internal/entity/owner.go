package entity

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// Owner - cell ownership: either NoOwner or a concrete player.
// The zero value is NoOwner.
type Owner struct {
	player PlayerID
	owned  bool
}

var NoOwner = Owner{}

func OwnedBy(player PlayerID) Owner {
	if !player.IsValid() {
		panic(fmt.Errorf("%w: %d", ErrUnknownPlayerID, int(player)))
	}

	return Owner{player: player, owned: true}
}

func (that Owner) IsEmpty() bool {
	return !that.owned
}

// Player - the owning player, ok is false for an empty cell.
func (that Owner) Player() (PlayerID, bool) {
	return that.player, that.owned
}

func (that Owner) Is(player PlayerID) bool {
	return that.owned && that.player == player
}

func (that Owner) String() string {
	if !that.owned {
		return "."
	}

	return that.player.String()
}

func (that Owner) MarshalJSON() ([]byte, error) {
	if !that.owned {
		return []byte("null"), nil
	}

	return json.Marshal(that.player)
}

func (that *Owner) UnmarshalJSON(data []byte) error {
	if bytes.Equal(bytes.TrimSpace(data), []byte("null")) {
		*that = NoOwner
		return nil
	}

	var player PlayerID
	if err := json.Unmarshal(data, &player); err != nil {
		return fmt.Errorf("failed to unmarshal owner: %w", err)
	}

	*that = OwnedBy(player)

	return nil
}
