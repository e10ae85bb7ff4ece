package game

import "errors"

// Rejections, in the order the validator checks them.
var (
	ErrPieceUnavailable      = errors.New("piece is not available")
	ErrOutOfBounds           = errors.New("piece does not fit on the board")
	ErrCellOccupied          = errors.New("cell is already occupied")
	ErrMissingStartCorner    = errors.New("first piece must cover the starting corner")
	ErrEdgeAdjacentSameColor = errors.New("piece touches a side of the same color")
	ErrNoCornerContact       = errors.New("piece does not touch a corner of the same color")
)

var (
	// ErrNoLegalMove means the player cannot place any remaining piece.
	ErrNoLegalMove = errors.New("no legal move available")

	// ErrInternalInconsistency marks engine bugs: the board can no longer be trusted.
	ErrInternalInconsistency = errors.New("internal inconsistency")
)

// RejectReason categorises why a move was rejected.
type RejectReason int

const (
	NotRejected RejectReason = iota
	RejectPieceUnavailable
	RejectOutOfBounds
	RejectCellOccupied
	RejectMissingStartCorner
	RejectEdgeAdjacentSameColor
	RejectNoCornerContact
	RejectUnknown
)

var rejections = []struct {
	err    error
	reason RejectReason
}{
	{ErrPieceUnavailable, RejectPieceUnavailable},
	{ErrOutOfBounds, RejectOutOfBounds},
	{ErrCellOccupied, RejectCellOccupied},
	{ErrMissingStartCorner, RejectMissingStartCorner},
	{ErrEdgeAdjacentSameColor, RejectEdgeAdjacentSameColor},
	{ErrNoCornerContact, RejectNoCornerContact},
}

// Reason maps a validation error to its category.
func Reason(err error) RejectReason {
	if err == nil {
		return NotRejected
	}
	for _, r := range rejections {
		if errors.Is(err, r.err) {
			return r.reason
		}
	}
	return RejectUnknown
}

func (r RejectReason) String() string {
	switch r {
	case NotRejected:
		return "legal"
	case RejectPieceUnavailable:
		return "piece unavailable"
	case RejectOutOfBounds:
		return "out of bounds"
	case RejectCellOccupied:
		return "cell occupied"
	case RejectMissingStartCorner:
		return "missing start corner"
	case RejectEdgeAdjacentSameColor:
		return "edge adjacent to same color"
	case RejectNoCornerContact:
		return "no corner contact"
	default:
		return "unknown"
	}
}
