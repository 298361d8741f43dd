package entity

// Player - a registered participant. Seat is assigned when the game starts.
type Player struct {
	ID       string    `json:"id"`
	Password string    `json:"pwd,omitempty"`
	Seat     *PlayerID `json:"player_id,omitempty"`
}

func (that *Player) IsSeated() bool {
	return that.Seat != nil
}
