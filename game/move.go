package game

import "fmt"

// Move places one orientation of a piece with its (0,0) offset at Anchor.
type Move struct {
	Piece       PieceID
	Orientation int
	Anchor      Position
}

// Shape returns the orientation the move refers to, or false if it does not exist.
func (m Move) Shape() (Orientation, bool) {
	orientations := Orientations(m.Piece)
	if m.Orientation < 0 || m.Orientation >= len(orientations) {
		return nil, false
	}
	return orientations[m.Orientation], true
}

// Cells returns the absolute positions covered by the move.
func (m Move) Cells() []Position {
	shape, ok := m.Shape()
	if !ok {
		return nil
	}
	cells := make([]Position, len(shape))
	for i, off := range shape {
		cells[i] = m.Anchor.Add(off)
	}
	return cells
}

func (m Move) String() string {
	return fmt.Sprintf("%v#%d at %v", m.Piece, m.Orientation, m.Anchor)
}
