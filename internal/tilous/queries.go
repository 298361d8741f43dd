package tilous

import (
	"github.com/rocketscienceinc/tilous-backend/internal/board"
	"github.com/rocketscienceinc/tilous-backend/internal/entity"
)

func (that *Engine) FriendlyCardinalCount(row, col int, player entity.PlayerID) int {
	return that.board.CountMatching(that.board.CardinalNeighbors(row, col), board.SameOwner(entity.OwnedBy(player)))
}

// FriendlyAllCount - neighbors out of eight matching owner, NoOwner counts empty cells.
func (that *Engine) FriendlyAllCount(row, col int, owner entity.Owner) int {
	return friendlyAllCount(that.board, row, col, owner)
}

// EnemyBorderCount - neighbors out of eight owned by someone other than player.
func (that *Engine) EnemyBorderCount(row, col int, player entity.PlayerID) int {
	return that.board.CountMatching(that.board.AllNeighbors(row, col), board.Hostile(player))
}

// IsProductive - an owned cell with exactly one cardinal neighbor of its owner.
func (that *Engine) IsProductive(row, col int) bool {
	player, ok := that.board.Get(row, col).Player()
	if !ok {
		return false
	}

	return that.FriendlyCardinalCount(row, col, player) == 1
}

// IsProductiveFor - IsProductive restricted to cells owned by player.
func (that *Engine) IsProductiveFor(row, col int, player entity.PlayerID) bool {
	return that.board.Get(row, col).Is(player) && that.FriendlyCardinalCount(row, col, player) == 1
}

func (that *Engine) IsSuperStable(row, col int) bool {
	return isSuperStable(that.board, row, col)
}

// DefenseCost - price to take the cell: 1 for an empty cell, otherwise one
// more for every same owner neighbor past the second.
func (that *Engine) DefenseCost(row, col int) int {
	owner := that.board.Get(row, col)
	if owner.IsEmpty() {
		return claimCost
	}

	return 1 + max(0, friendlyAllCount(that.board, row, col, owner)-freeDefenseNeighbors)
}

func (that *Engine) ProductiveCellCount(player entity.PlayerID) int {
	return that.countCells(func(row, col int) bool {
		return that.IsProductiveFor(row, col, player)
	})
}

func (that *Engine) FreeCellCount() int {
	return that.countCells(func(row, col int) bool {
		return that.board.Get(row, col).IsEmpty()
	})
}

func (that *Engine) FriendlyCellCount(player entity.PlayerID) int {
	return that.countCells(func(row, col int) bool {
		return that.board.Get(row, col).Is(player)
	})
}

func (that *Engine) countCells(match func(row, col int) bool) int {
	count := 0
	for row := range that.board.Size() {
		for col := range that.board.Size() {
			if match(row, col) {
				count++
			}
		}
	}

	return count
}

// ActivePlayers - players still in the Playing state, in seat order.
func (that *Engine) ActivePlayers() []entity.PlayerID {
	active := make([]entity.PlayerID, 0, entity.PlayersCount)
	for _, player := range entity.PlayerIDs {
		if that.states[player.Index()] == entity.StatePlaying {
			active = append(active, player)
		}
	}

	return active
}

// NextPlayer - the active player after the current one. When the current
// player is no longer active the first active player is returned.
func (that *Engine) NextPlayer() entity.PlayerID {
	active := that.ActivePlayers()
	if len(active) == 0 {
		return that.current
	}

	idx := -1
	for i, player := range active {
		if player == that.current {
			idx = i
			break
		}
	}

	return active[(idx+1)%len(active)]
}

// LastStanding - the only player still owning cells, if there is exactly one.
func (that *Engine) LastStanding() (entity.PlayerID, bool) {
	var (
		standing entity.PlayerID
		count    int
	)

	for _, player := range entity.PlayerIDs {
		if that.FriendlyCellCount(player) > 0 {
			standing = player
			count++
		}
	}

	return standing, count == 1
}

func friendlyAllCount(b *board.Board, row, col int, owner entity.Owner) int {
	return b.CountMatching(b.AllNeighbors(row, col), board.SameOwner(owner))
}

// isSuperStable - an owned corner, or an owned cell with all eight neighbors of its owner.
func isSuperStable(b *board.Board, row, col int) bool {
	owner := b.Get(row, col)
	if owner.IsEmpty() {
		return false
	}

	return b.IsCorner(row, col) || friendlyAllCount(b, row, col, owner) == 8
}
