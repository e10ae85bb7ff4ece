package engine

import (
	"context"
	"errors"
	"fmt"

	"blokus/experiments/metrics"
	"blokus/game"
	"blokus/player"
	"blokus/searcher"

	"github.com/rs/zerolog/log"
)

// Engine owns the game state and runs the turn state machine. It is not safe for
// concurrent use; the presentation layer reads it through View.
type Engine struct {
	state       *game.GameState
	controllers []player.Controller
	rules       game.Rules
	phase       Phase
	moves       []metrics.MoveMetric
	scores      []PlayerScore
}

// New builds the controllers named in the config and starts a game.
func New(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	var options []searcher.Option
	if cfg.Metrics {
		options = append(options, searcher.WithMetrics())
	}
	controllers := make([]player.Controller, len(cfg.Controllers))
	for i, kind := range cfg.Controllers {
		c, err := player.NewController(kind, options...)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
		}
		controllers[i] = c
	}
	return LocalEngine(controllers, cfg.Rules)
}

// LocalEngine starts a game with one seat per controller.
func LocalEngine(controllers []player.Controller, rules game.Rules) (*Engine, error) {
	state, err := game.NewGameState(len(controllers))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}
	if rules == nil {
		rules = game.NewStandardRules()
	}

	eng := &Engine{
		state:       state,
		controllers: controllers,
		rules:       rules,
		phase:       AwaitingMove,
	}

	log.Info().Msgf("starting game with %d players", len(controllers))
	eng.settle()
	return eng, nil
}

func (e *Engine) Phase() Phase {
	return e.phase
}

// Active returns the player whose move is awaited.
func (e *Engine) Active() game.PlayerID {
	return e.state.CurrentPlayer().ID
}

// ActiveKind returns who controls the active player.
func (e *Engine) ActiveKind() player.Kind {
	return e.controllers[e.state.Current].Kind()
}

// Validate checks a move for the active player without applying it.
func (e *Engine) Validate(move game.Move) error {
	if e.phase == GameOver {
		return ErrGameOver
	}
	return game.Validate(e.state.Board, e.state.CurrentPlayer(), move)
}

// Step lets the active controller decide. Human seats return player.ErrAwaitingInput; their
// moves come through Submit. A computer proposing an illegal move is an engine bug and is
// reported as game.ErrInternalInconsistency.
func (e *Engine) Step() error {
	e.settle()
	if e.phase == GameOver {
		return ErrGameOver
	}

	p := e.state.CurrentPlayer()
	ctrl := e.controllers[e.state.Current]
	move, metric, err := ctrl.ProposeMove(e.state.Board, p)
	if errors.Is(err, game.ErrNoLegalMove) {
		e.eliminate(p, "no legal move")
		return nil
	}
	if err != nil {
		return err
	}

	if err := game.Validate(e.state.Board, p, move); err != nil {
		return fmt.Errorf("%w: %s player %d proposed %v: %w", game.ErrInternalInconsistency, ctrl.Kind(), p.ID, move, err)
	}
	e.apply(move, metric)
	return nil
}

// Submit plays a human move for the active player. Illegal moves are returned as the
// validator's rejection and leave the game untouched.
func (e *Engine) Submit(move game.Move) error {
	e.settle()
	if e.phase == GameOver {
		return ErrGameOver
	}
	if e.ActiveKind() != player.HumanKind {
		return ErrNotHumanTurn
	}

	if err := game.Validate(e.state.Board, e.state.CurrentPlayer(), move); err != nil {
		log.Debug().Msgf("player %d move %v rejected: %v", e.Active(), move, err)
		return err
	}
	e.apply(move, metrics.SearchMetric{})
	return nil
}

// Resign takes the active human player out of the game for good.
func (e *Engine) Resign() error {
	e.settle()
	if e.phase == GameOver {
		return ErrGameOver
	}
	if e.ActiveKind() != player.HumanKind {
		return ErrNotHumanTurn
	}
	e.eliminate(e.state.CurrentPlayer(), "passed")
	return nil
}

// Run steps the game until it is over. It stops early with player.ErrAwaitingInput when a
// human seat is active, or with the context's error.
func (e *Engine) Run(ctx context.Context) (Result, error) {
	for e.phase != GameOver {
		if err := ctx.Err(); err != nil {
			return Result{}, err
		}
		if err := e.Step(); err != nil && !errors.Is(err, ErrGameOver) {
			return Result{}, err
		}
	}
	return e.Result(), nil
}

// Result returns the scores. Before the game is over they are the running totals.
func (e *Engine) Result() Result {
	if e.phase == GameOver {
		scores := make([]PlayerScore, len(e.scores))
		copy(scores, e.scores)
		return Result{Scores: scores}
	}
	return Result{Scores: e.tally()}
}

// MoveMetrics returns a record of every placement so far.
func (e *Engine) MoveMetrics() []metrics.MoveMetric {
	out := make([]metrics.MoveMetric, len(e.moves))
	copy(out, e.moves)
	return out
}

func (e *Engine) apply(move game.Move, metric metrics.SearchMetric) {
	p := e.state.CurrentPlayer()
	e.phase = TurnApplied
	e.state.Apply(move)
	e.state.Turn++

	e.moves = append(e.moves, metrics.MoveMetric{
		Turn:         e.state.Turn,
		Player:       int(p.ID),
		Piece:        move.Piece.String(),
		Orientation:  move.Orientation,
		Row:          move.Anchor.Row,
		Col:          move.Anchor.Col,
		Cells:        move.Piece.Size(),
		SearchMetric: metric,
	})
	log.Info().Msgf("turn %d: player %d placed %v (%d cells placed)", e.state.Turn, p.ID, move, p.PlacedCells())

	e.advance()
}

func (e *Engine) eliminate(p *game.Player, reason string) {
	e.phase = TurnApplied
	p.Eliminate()
	e.state.Turn++
	log.Info().Msgf("turn %d: player %d is out (%s)", e.state.Turn, p.ID, reason)
	e.advance()
}

// advance hands the turn to the next player still in the game.
func (e *Engine) advance() {
	next, ok := e.state.NextPlayer()
	if !ok {
		e.finish()
		return
	}
	e.state.Current = next
	e.phase = AwaitingMove
	e.settle()
}

// settle eliminates active players that cannot move until someone can, or the game ends.
func (e *Engine) settle() {
	if e.phase != AwaitingMove {
		return
	}
	p := e.state.CurrentPlayer()
	switch {
	case p.Eliminated():
		e.advance()
	case !game.HasLegalMove(e.state.Board, p):
		e.eliminate(p, "no legal move")
	}
}

func (e *Engine) finish() {
	e.phase = GameOver
	e.scores = e.tally()
	for _, s := range e.scores {
		log.Info().Msgf("player %d final score %d (%d cells, bonus %d)", s.Player, s.Score, s.Cells, s.Bonus)
	}
}

func (e *Engine) tally() []PlayerScore {
	scores := make([]PlayerScore, len(e.state.Players))
	for i, p := range e.state.Players {
		scores[i] = PlayerScore{
			Player: p.ID,
			Color:  p.Color,
			Cells:  p.PlacedCells(),
			Bonus:  e.rules.Bonus(p),
			Score:  e.rules.Score(p),
			Placed: len(p.Placed()),
		}
	}
	return scores
}
