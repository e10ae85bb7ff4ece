package game

import "fmt"

// Color is the display color of a player, assigned by seat.
type Color int

const (
	Blue Color = iota
	Yellow
	Red
	Green
)

func (c Color) String() string {
	switch c {
	case Blue:
		return "blue"
	case Yellow:
		return "yellow"
	case Red:
		return "red"
	case Green:
		return "green"
	default:
		return "unknown"
	}
}

// Player tracks one seat's piece inventory, starting corner and elimination.
type Player struct {
	ID     PlayerID
	Color  Color
	Corner Position

	available  [NumPieces]bool
	placed     []PieceID
	cells      int
	eliminated bool
}

// NewPlayer creates a player with every piece available. Player n (from 1) gets the
// n-th color and the n-th corner of the board in clockwise order.
func NewPlayer(id PlayerID, board *Board) *Player {
	seat := int(id) - 1
	corners := board.Corners()
	if seat < 0 || seat >= len(corners) {
		panic(fmt.Sprintf("player id %d has no seat", id))
	}
	p := &Player{
		ID:     id,
		Color:  Color(seat),
		Corner: corners[seat],
	}
	for i := range p.available {
		p.available[i] = true
	}
	return p
}

func (p *Player) Available(id PieceID) bool {
	return id.Valid() && p.available[id]
}

// Remaining returns the unused pieces in ascending id order.
func (p *Player) Remaining() []PieceID {
	var ids []PieceID
	for i, ok := range p.available {
		if ok {
			ids = append(ids, PieceID(i))
		}
	}
	return ids
}

// Placed returns the pieces in the order they were placed.
func (p *Player) Placed() []PieceID {
	out := make([]PieceID, len(p.placed))
	copy(out, p.placed)
	return out
}

func (p *Player) HasPlaced() bool {
	return len(p.placed) > 0
}

// LastPlaced returns the most recently placed piece.
func (p *Player) LastPlaced() (PieceID, bool) {
	if len(p.placed) == 0 {
		return 0, false
	}
	return p.placed[len(p.placed)-1], true
}

// PlacedCells is the total cell count of the placed pieces.
func (p *Player) PlacedCells() int {
	return p.cells
}

// AllPlaced reports whether the whole set is on the board.
func (p *Player) AllPlaced() bool {
	return len(p.placed) == int(NumPieces)
}

func (p *Player) Eliminated() bool {
	return p.eliminated
}

// MarkPlaced moves a piece from available to placed.
func (p *Player) MarkPlaced(id PieceID) {
	if !p.Available(id) {
		panic(fmt.Errorf("%w: player %d placed unavailable piece %v", ErrInternalInconsistency, p.ID, id))
	}
	p.available[id] = false
	p.placed = append(p.placed, id)
	p.cells += id.Size()
}

// Eliminate takes the player out of the rotation for the rest of the game.
func (p *Player) Eliminate() {
	p.eliminated = true
}

func (p *Player) Copy() *Player {
	cp := *p
	cp.placed = p.Placed()
	return &cp
}
