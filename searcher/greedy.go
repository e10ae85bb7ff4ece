package searcher

import (
	"blokus/experiments/metrics"
	"blokus/game"

	"github.com/rs/zerolog/log"
)

type Option func(g *Greedy)

func WithMetrics() Option {
	return func(g *Greedy) {
		g.metrics = metrics.NewCollector()
	}
}

// Greedy picks the largest piece that can be placed, taking the first legal placement in
// scan order: lower piece id, orientation order, anchor row, anchor column.
type Greedy struct {
	metrics metrics.Collector
}

func NewGreedy(options ...Option) *Greedy {
	g := &Greedy{ // Default values
		metrics: metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(g)
	}
	return g
}

// FindMove returns the chosen move, or game.ErrNoLegalMove. It does not modify the board
// or the player, so the same inputs always produce the same move.
func (g *Greedy) FindMove(board *game.Board, player *game.Player) (game.Move, metrics.SearchMetric, error) {
	g.metrics.Start()

	var (
		chosen game.Move
		found  bool
	)
	game.EachCandidate(board, player, func(m game.Move) bool {
		g.metrics.AddCandidate()
		if game.Validate(board, player, m) == nil {
			chosen, found = m, true
			return false
		}
		return true
	})

	metric := g.metrics.Complete()
	if !found {
		log.Debug().Msgf("player %d has no legal move after %d candidates", player.ID, metric.Candidates)
		return game.Move{}, metric, game.ErrNoLegalMove
	}
	return chosen, metric, nil
}
