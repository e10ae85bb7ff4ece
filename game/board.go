package game

import (
	"fmt"
	"strings"
)

// PlayerID identifies the owner of a cell. NoPlayer marks an empty cell.
type PlayerID int

const NoPlayer PlayerID = 0

// Position is an absolute board coordinate.
type Position struct {
	Row int
	Col int
}

func (p Position) Add(off Offset) Position {
	return Position{Row: p.Row + off.Row, Col: p.Col + off.Col}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

var (
	edgeDirections   = [4]Offset{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	cornerDirections = [4]Offset{{-1, -1}, {1, 1}, {1, -1}, {-1, 1}}
)

// Board is a square grid of cell owners. Owned cells never change owner.
type Board struct {
	size  int
	cells []PlayerID // row-major
}

func NewBoard(size int) *Board {
	if size <= 0 {
		panic("board size must be positive")
	}
	return &Board{
		size:  size,
		cells: make([]PlayerID, size*size),
	}
}

func (b *Board) Size() int {
	return b.size
}

func (b *Board) InBounds(pos Position) bool {
	return pos.Row >= 0 && pos.Row < b.size && pos.Col >= 0 && pos.Col < b.size
}

func (b *Board) index(pos Position) int {
	if !b.InBounds(pos) {
		panic(fmt.Sprintf("position %v outside %dx%d board", pos, b.size, b.size))
	}
	return pos.Row*b.size + pos.Col
}

// CellOwner returns the owner of an in-bounds cell, and false if it is empty.
func (b *Board) CellOwner(pos Position) (PlayerID, bool) {
	owner := b.cells[b.index(pos)]
	return owner, owner != NoPlayer
}

func (b *Board) IsEmpty(pos Position) bool {
	return b.cells[b.index(pos)] == NoPlayer
}

// owner is CellOwner without the bounds panic, out-of-bounds cells are empty.
func (b *Board) owner(pos Position) PlayerID {
	if !b.InBounds(pos) {
		return NoPlayer
	}
	return b.cells[pos.Row*b.size+pos.Col]
}

// Occupy marks every cell as owned by the player. All cells must be in bounds and empty;
// anything else means the caller skipped validation and the board is left untouched.
func (b *Board) Occupy(cells []Position, player PlayerID) {
	if player == NoPlayer {
		panic(fmt.Errorf("%w: occupy without a player", ErrInternalInconsistency))
	}
	for _, pos := range cells {
		if !b.InBounds(pos) {
			panic(fmt.Errorf("%w: occupy %v out of bounds", ErrInternalInconsistency, pos))
		}
		if owner := b.cells[b.index(pos)]; owner != NoPlayer {
			panic(fmt.Errorf("%w: occupy %v already owned by player %d", ErrInternalInconsistency, pos, owner))
		}
	}
	for _, pos := range cells {
		b.cells[b.index(pos)] = player
	}
}

// EdgeAdjacent reports whether an orthogonal neighbour of pos is owned by the player.
func (b *Board) EdgeAdjacent(pos Position, player PlayerID) bool {
	for _, d := range edgeDirections {
		if b.owner(pos.Add(d)) == player {
			return true
		}
	}
	return false
}

// CornerAdjacent reports whether a diagonal neighbour of pos is owned by the player.
func (b *Board) CornerAdjacent(pos Position, player PlayerID) bool {
	for _, d := range cornerDirections {
		if b.owner(pos.Add(d)) == player {
			return true
		}
	}
	return false
}

// Corners returns the starting corners in clockwise order from the top left.
func (b *Board) Corners() [4]Position {
	last := b.size - 1
	return [4]Position{
		{Row: 0, Col: 0},
		{Row: 0, Col: last},
		{Row: last, Col: last},
		{Row: last, Col: 0},
	}
}

// Count returns the number of cells owned by the player.
func (b *Board) Count(player PlayerID) int {
	n := 0
	for _, owner := range b.cells {
		if owner == player {
			n++
		}
	}
	return n
}

// Cells returns a copy of the grid indexed by row then column.
func (b *Board) Cells() [][]PlayerID {
	grid := make([][]PlayerID, b.size)
	for r := range grid {
		grid[r] = make([]PlayerID, b.size)
		copy(grid[r], b.cells[r*b.size:(r+1)*b.size])
	}
	return grid
}

func (b *Board) Copy() *Board {
	cells := make([]PlayerID, len(b.cells))
	copy(cells, b.cells)
	return &Board{size: b.size, cells: cells}
}

// String prints one row per line, '.' for empty cells and the owner id otherwise.
func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.size; r++ {
		for c := 0; c < b.size; c++ {
			owner := b.cells[r*b.size+c]
			if owner == NoPlayer {
				sb.WriteByte('.')
			} else {
				fmt.Fprintf(&sb, "%d", owner)
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
