package tilous

import (
	"github.com/rocketscienceinc/tilous-backend/internal/board"
	"github.com/rocketscienceinc/tilous-backend/internal/entity"
)

// anchoredCells - marks every cell reachable from a super-stable cell through
// cardinal steps over cells of the same owner. b is only read.
func anchoredCells(b *board.Board) *board.Board {
	markers := board.New(b.Size())
	queue := make([]board.Coord, 0, b.Size()*b.Size())

	for row := range b.Size() {
		for col := range b.Size() {
			owner := b.Get(row, col)
			if markers.Get(row, col) == owner || !isSuperStable(b, row, col) {
				continue
			}

			markers.Set(row, col, owner)
			queue = append(queue[:0], board.Coord{Row: row, Col: col})

			for len(queue) > 0 {
				current := queue[0]
				queue = queue[1:]

				for _, next := range b.CardinalNeighbors(current.Row, current.Col) {
					if b.Get(next.Row, next.Col) != owner || markers.Get(next.Row, next.Col) == owner {
						continue
					}

					markers.Set(next.Row, next.Col, owner)
					queue = append(queue, next)
				}
			}
		}
	}

	return markers
}

// pruneUnanchored - clears every owned cell that is not anchored and returns the cleared cells.
func pruneUnanchored(b *board.Board) []board.Coord {
	markers := anchoredCells(b)

	var cleared []board.Coord
	for row := range b.Size() {
		for col := range b.Size() {
			if !markers.Get(row, col).IsEmpty() {
				continue
			}

			if !b.Get(row, col).IsEmpty() {
				cleared = append(cleared, board.Coord{Row: row, Col: col})
			}

			b.Set(row, col, entity.NoOwner)
		}
	}

	return cleared
}
