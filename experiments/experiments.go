package experiments

import (
	"context"
	"fmt"
	"time"

	"blokus/engine"
	"blokus/experiments/metrics"
	"blokus/game"
	"blokus/player"

	"github.com/rs/zerolog/log"
)

const NumGames = 5 // Per player count

// Recording collects the records of finished games until they are written.
type Recording struct {
	Games  []metrics.GameRecord
	Scores []metrics.ScoreRecord
	Moves  []metrics.MoveRecord
}

// Add records a game that ran from start to end. Unfinished games are recorded with their
// running scores.
func (r *Recording) Add(e *engine.Engine, start, end time.Time) int {
	id := len(r.Games) + 1
	view := e.View()
	moves := e.MoveMetrics()

	r.Games = append(r.Games, metrics.GameRecord{
		ID: id,
		GameMetric: metrics.GameMetric{
			Players:    len(view.Players),
			StartTime:  start,
			EndTime:    end,
			Duration:   end.Sub(start),
			TotalMoves: len(moves),
			TotalTurns: view.Turn,
		},
	})
	for i, s := range e.Result().Scores {
		r.Scores = append(r.Scores, metrics.ScoreRecord{
			Game:         id,
			Player:       int(s.Player),
			Color:        s.Color.String(),
			Controller:   view.Players[i].Controller.String(),
			Score:        s.Score,
			Cells:        s.Cells,
			Bonus:        s.Bonus,
			PiecesPlaced: s.Placed,
		})
	}
	for _, mm := range moves {
		r.Moves = append(r.Moves, metrics.MoveRecord{
			Game:       id,
			MoveMetric: mm,
		})
	}
	return id
}

// Write stores the records in a new timestamped folder under dir and returns its path.
func (r *Recording) Write(dir string) (string, error) {
	writer, err := metrics.NewWriter(dir)
	if err != nil {
		return "", fmt.Errorf("failed to create record writer: %w", err)
	}

	err = writer.WriteGameRecords(r.Games)
	if err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	log.Info().Msg("stored game records")

	err = writer.WriteScoreRecords(r.Scores)
	if err != nil {
		return "", fmt.Errorf("failed to write score records: %w", err)
	}
	log.Info().Msg("stored score records")

	err = writer.WriteMoveRecords(r.Moves)
	if err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msg("stored move records")

	return writer.Dir(), nil
}

// Computers returns a configuration with a computer in every seat.
func Computers(players int, rules game.Rules) engine.Config {
	kinds := make([]player.Kind, players)
	for i := range kinds {
		kinds[i] = player.ComputerKind
	}
	return engine.Config{
		PlayerCount: players,
		Controllers: kinds,
		Rules:       rules,
		Metrics:     true,
	}
}

// PlayGame runs a game without a terminal. Every seat must be a computer.
func PlayGame(ctx context.Context, cfg engine.Config) (*engine.Engine, time.Time, time.Time, error) {
	e, err := engine.New(cfg)
	if err != nil {
		return nil, time.Time{}, time.Time{}, err
	}
	start := time.Now()
	_, err = e.Run(ctx)
	return e, start, time.Now(), err
}

// RunPlayerCountExperiment plays computer-only games for every player count and stores the
// records under dir.
func RunPlayerCountExperiment(ctx context.Context, dir string, games int, rules game.Rules) (string, error) {
	setups := []engine.Config{}
	for n := 1; n <= 4; n++ {
		setups = append(setups, Computers(n, rules))
	}
	return runExperiment(ctx, "player_count", dir, setups, games)
}

func runExperiment(ctx context.Context, name, dir string, setups []engine.Config, games int) (string, error) {
	recording := &Recording{}

	log.Info().Msgf("starting %s experiment...", name)

	for si, setup := range setups {
		log.Info().Msgf("starting setup %d of %d with %d players...", si+1, len(setups), setup.PlayerCount)

		for i := 0; i < games; i++ {
			e, start, end, err := PlayGame(ctx, setup)
			if err != nil {
				return "", fmt.Errorf("setup %d game %d: %w", si+1, i+1, err)
			}
			id := recording.Add(e, start, end)

			log.Info().Msgf("completed setup %d of %d game %d (record %d) with winners %v", si+1, len(setups), i+1, id, e.Result().Winners())
		}
		log.Info().Msgf("completed setup %d of %d", si+1, len(setups))
	}

	log.Info().Msgf("completed %s experiment", name)

	return recording.Write(dir)
}
