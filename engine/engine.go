package engine

import (
	"errors"
	"fmt"

	"blokus/game"
	"blokus/meta"
	"blokus/player"
)

// Phase is the turn state machine position.
type Phase int

const (
	AwaitingMove Phase = iota
	TurnApplied
	GameOver
)

func (p Phase) String() string {
	switch p {
	case AwaitingMove:
		return "awaiting move"
	case TurnApplied:
		return "turn applied"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

var (
	ErrGameOver      = errors.New("game is over - no moves allowed")
	ErrNotHumanTurn  = errors.New("active player is not controlled by a human")
	ErrInvalidConfig = errors.New("invalid game configuration")
)

// Config is the validated game setup handed over by the entry point.
type Config struct {
	PlayerCount int
	Controllers []player.Kind // one per player, in seat order
	Rules       game.Rules    // nil means standard scoring
	Metrics     bool          // collect search metrics for computer players
}

func (c Config) Validate() error {
	if c.PlayerCount < 1 || c.PlayerCount > meta.MAX_PLAYERS {
		return fmt.Errorf("%w: player count %d not in 1..%d", ErrInvalidConfig, c.PlayerCount, meta.MAX_PLAYERS)
	}
	if len(c.Controllers) != c.PlayerCount {
		return fmt.Errorf("%w: %d controllers for %d players", ErrInvalidConfig, len(c.Controllers), c.PlayerCount)
	}
	for i, kind := range c.Controllers {
		if kind != player.HumanKind && kind != player.ComputerKind {
			return fmt.Errorf("%w: player %d has unknown controller %d", ErrInvalidConfig, i+1, kind)
		}
	}
	return nil
}

// PlayerScore is one line of the final scoreboard.
type PlayerScore struct {
	Player game.PlayerID
	Color  game.Color
	Cells  int
	Bonus  int
	Score  int
	Placed int
}

// Result holds the scores in seat order.
type Result struct {
	Scores []PlayerScore
}

// Winners returns every player sharing the highest score.
func (r Result) Winners() []game.PlayerID {
	best := -1
	var winners []game.PlayerID
	for _, s := range r.Scores {
		switch {
		case s.Score > best:
			best = s.Score
			winners = []game.PlayerID{s.Player}
		case s.Score == best:
			winners = append(winners, s.Player)
		}
	}
	return winners
}
