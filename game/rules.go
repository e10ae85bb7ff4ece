package game

// Validate decides whether the player may make the move on the board. It returns nil for a
// legal move, or the first rule the move breaks. An orientation index the piece does not have
// is a shape that cannot be laid on the board and is rejected as ErrOutOfBounds. It never
// mutates its arguments.
func Validate(board *Board, player *Player, move Move) error {
	if !player.Available(move.Piece) {
		return ErrPieceUnavailable
	}
	cells := move.Cells()
	if cells == nil {
		return ErrOutOfBounds
	}

	for _, pos := range cells {
		if !board.InBounds(pos) {
			return ErrOutOfBounds
		}
	}
	for _, pos := range cells {
		if !board.IsEmpty(pos) {
			return ErrCellOccupied
		}
	}

	if !player.HasPlaced() {
		covered := 0
		for _, pos := range cells {
			if pos == player.Corner {
				covered++
			}
		}
		if covered != 1 {
			return ErrMissingStartCorner
		}
		return nil
	}

	for _, pos := range cells {
		if board.EdgeAdjacent(pos, player.ID) {
			return ErrEdgeAdjacentSameColor
		}
	}
	for _, pos := range cells {
		if board.CornerAdjacent(pos, player.ID) {
			return nil
		}
	}
	return ErrNoCornerContact
}

// ScanOrder lists the player's remaining pieces largest first, lower ids first on ties.
func ScanOrder(player *Player) []PieceID {
	remaining := player.Remaining()
	ordered := make([]PieceID, 0, len(remaining))
	for size := 5; size >= 1; size-- {
		for _, id := range remaining {
			if id.Size() == size {
				ordered = append(ordered, id)
			}
		}
	}
	return ordered
}

// EachCandidate calls fn for every placement of a remaining piece whose bounding box fits on
// the board, in scan order: piece, orientation, anchor row, anchor column. Returning false stops.
func EachCandidate(board *Board, player *Player, fn func(Move) bool) {
	for _, id := range ScanOrder(player) {
		for idx, o := range Orientations(id) {
			for row := 0; row+o.Height() <= board.Size(); row++ {
				for col := 0; col+o.Width() <= board.Size(); col++ {
					m := Move{Piece: id, Orientation: idx, Anchor: Position{Row: row, Col: col}}
					if !fn(m) {
						return
					}
				}
			}
		}
	}
}

// LegalMoves returns every legal move for the player, in scan order.
func LegalMoves(board *Board, player *Player) []Move {
	var moves []Move
	EachCandidate(board, player, func(m Move) bool {
		if Validate(board, player, m) == nil {
			moves = append(moves, m)
		}
		return true
	})
	return moves
}

// HasLegalMove reports whether the player can place any remaining piece.
func HasLegalMove(board *Board, player *Player) bool {
	found := false
	EachCandidate(board, player, func(m Move) bool {
		found = Validate(board, player, m) == nil
		return !found
	})
	return found
}
