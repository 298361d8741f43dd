package board

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tilous-backend/internal/entity"
)

// Coord - a (row, col) pair on the board.
type Coord struct {
	Row int
	Col int
}

var ErrInvalidLayout = errors.New("invalid board layout")

var (
	cardinalOffsets = [4]Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allOffsets      = [8]Coord{{-1, 0}, {1, 0}, {0, -1}, {0, 1}, {-1, -1}, {1, 1}, {-1, 1}, {1, -1}}
)

// Board - a fixed size square grid of cell owners. It knows geometry only, no game rules.
type Board struct {
	size  int
	cells []entity.Owner
}

// New - creates an empty board. Panics on a non-positive size.
func New(size int) *Board {
	if size <= 0 {
		panic(fmt.Sprintf("board: invalid size %d", size))
	}

	return &Board{
		size:  size,
		cells: make([]entity.Owner, size*size),
	}
}

// FromCells - builds a board from rows of owners, every row must be len(rows) long.
func FromCells(rows [][]entity.Owner) (*Board, error) {
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrInvalidLayout)
	}

	that := New(len(rows))
	for row, cells := range rows {
		if len(cells) != that.size {
			return nil, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrInvalidLayout, row, len(cells), that.size)
		}

		copy(that.cells[row*that.size:(row+1)*that.size], cells)
	}

	return that, nil
}

func (that *Board) Size() int {
	return that.size
}

func (that *Board) IsValid(row, col int) bool {
	return row >= 0 && row < that.size && col >= 0 && col < that.size
}

// Get - owner of the cell, out of range coordinates are empty.
func (that *Board) Get(row, col int) entity.Owner {
	if !that.IsValid(row, col) {
		return entity.NoOwner
	}

	return that.cells[row*that.size+col]
}

// Set - overwrites the cell, out of range coordinates are ignored.
func (that *Board) Set(row, col int, owner entity.Owner) {
	if !that.IsValid(row, col) {
		return
	}

	that.cells[row*that.size+col] = owner
}

func (that *Board) CardinalNeighbors(row, col int) []Coord {
	return that.neighbors(row, col, cardinalOffsets[:])
}

// AllNeighbors - cardinal and diagonal neighbors.
func (that *Board) AllNeighbors(row, col int) []Coord {
	return that.neighbors(row, col, allOffsets[:])
}

func (that *Board) neighbors(row, col int, offsets []Coord) []Coord {
	result := make([]Coord, 0, len(offsets))
	for _, offset := range offsets {
		r, c := row+offset.Row, col+offset.Col
		if that.IsValid(r, c) {
			result = append(result, Coord{Row: r, Col: c})
		}
	}

	return result
}

// CountMatching - number of coords whose owner satisfies match.
func (that *Board) CountMatching(coords []Coord, match func(entity.Owner) bool) int {
	count := 0
	for _, coord := range coords {
		if match(that.Get(coord.Row, coord.Col)) {
			count++
		}
	}

	return count
}

func (that *Board) IsCorner(row, col int) bool {
	last := that.size - 1
	return (row == 0 || row == last) && (col == 0 || col == last)
}

// Corners - top-left, top-right, bottom-right, bottom-left.
func (that *Board) Corners() [4]Coord {
	last := that.size - 1
	return [4]Coord{{0, 0}, {0, last}, {last, last}, {last, 0}}
}

func (that *Board) Clone() *Board {
	cells := make([]entity.Owner, len(that.cells))
	copy(cells, that.cells)

	return &Board{size: that.size, cells: cells}
}

// Cells - a deep copy of the grid as rows.
func (that *Board) Cells() [][]entity.Owner {
	rows := make([][]entity.Owner, that.size)
	for row := range rows {
		rows[row] = make([]entity.Owner, that.size)
		copy(rows[row], that.cells[row*that.size:(row+1)*that.size])
	}

	return rows
}

// String - one line per row, "." for empty cells and the seat number otherwise.
func (that *Board) String() string {
	var sb strings.Builder
	for row := range that.size {
		for col := range that.size {
			player, ok := that.Get(row, col).Player()
			if !ok {
				sb.WriteByte('.')
				continue
			}
			sb.WriteByte(byte('1' + player.Index()))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

// SameOwner - predicate matching cells owned by exactly owner (NoOwner matches empty cells).
func SameOwner(owner entity.Owner) func(entity.Owner) bool {
	return func(cell entity.Owner) bool {
		return cell == owner
	}
}

// Hostile - predicate matching cells owned by someone other than player.
func Hostile(player entity.PlayerID) func(entity.Owner) bool {
	return func(cell entity.Owner) bool {
		return !cell.IsEmpty() && !cell.Is(player)
	}
}

func Empty(cell entity.Owner) bool {
	return cell.IsEmpty()
}

// Parse - reverse of String: rows of '.' and '1'..'4', blank lines and spaces are ignored.
func Parse(layout string) (*Board, error) {
	var rows [][]entity.Owner
	for _, line := range strings.Split(layout, "\n") {
		line = strings.ReplaceAll(strings.TrimSpace(line), " ", "")
		if line == "" {
			continue
		}

		row := make([]entity.Owner, 0, len(line))
		for _, ch := range line {
			switch {
			case ch == '.':
				row = append(row, entity.NoOwner)
			case ch >= '1' && ch <= '4':
				row = append(row, entity.OwnedBy(entity.PlayerID(ch-'1')))
			default:
				return nil, fmt.Errorf("%w: unexpected symbol %q", ErrInvalidLayout, ch)
			}
		}
		rows = append(rows, row)
	}

	return FromCells(rows)
}
