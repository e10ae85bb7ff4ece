package player

import (
	"errors"
	"fmt"
	"strings"

	"blokus/experiments/metrics"
	"blokus/game"
	"blokus/searcher"
)

// Kind selects who decides a seat's moves.
type Kind int

const (
	HumanKind Kind = iota
	ComputerKind
)

func (k Kind) String() string {
	switch k {
	case HumanKind:
		return "human"
	case ComputerKind:
		return "computer"
	default:
		return "unknown"
	}
}

// ParseKind accepts "human" or "computer" (also "h", "c", "ai", "bot"), case insensitive.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "human", "h":
		return HumanKind, nil
	case "computer", "c", "ai", "bot":
		return ComputerKind, nil
	default:
		return 0, fmt.Errorf("unknown controller %q", s)
	}
}

// ErrAwaitingInput means the seat is waiting for a move from the terminal.
var ErrAwaitingInput = errors.New("waiting for human input")

// Controller proposes a move for a player, or signals game.ErrNoLegalMove.
type Controller interface {
	Kind() Kind
	ProposeMove(board *game.Board, p *game.Player) (game.Move, metrics.SearchMetric, error)
}

// NewController builds the controller for a kind. Options only apply to computer players.
func NewController(kind Kind, options ...searcher.Option) (Controller, error) {
	switch kind {
	case HumanKind:
		return Human{}, nil
	case ComputerKind:
		return NewGreedy(options...), nil
	default:
		return nil, fmt.Errorf("unknown controller kind %d", kind)
	}
}

// Human moves arrive through the engine's Submit, never from ProposeMove.
type Human struct{}

func (Human) Kind() Kind {
	return HumanKind
}

func (Human) ProposeMove(*game.Board, *game.Player) (game.Move, metrics.SearchMetric, error) {
	return game.Move{}, metrics.SearchMetric{}, ErrAwaitingInput
}

// Greedy plays the largest placeable piece.
type Greedy struct {
	search *searcher.Greedy
}

func NewGreedy(options ...searcher.Option) *Greedy {
	return &Greedy{search: searcher.NewGreedy(options...)}
}

func (g *Greedy) Kind() Kind {
	return ComputerKind
}

func (g *Greedy) ProposeMove(board *game.Board, p *game.Player) (game.Move, metrics.SearchMetric, error) {
	return g.search.FindMove(board, p)
}
