package experiments

import (
	"context"
	"fmt"
	"sync"
	"time"

	"blokus/game"

	"github.com/rs/zerolog/log"
)

type Throughput struct {
	Goroutines int
	Games      int
	Moves      int
	Duration   time.Duration
}

func (t Throughput) MovesPerSecond() float64 {
	if t.Duration <= 0 {
		return 0
	}
	return float64(t.Moves) / t.Duration.Seconds()
}

// RunThroughputExperiment plays computer-only games on the given number of goroutines,
// one engine per game, and measures how many moves are made per second.
func RunThroughputExperiment(ctx context.Context, goroutines, games, players int, rules game.Rules) (Throughput, error) {
	if goroutines < 1 || games < 1 {
		return Throughput{}, fmt.Errorf("need at least one goroutine and one game, got %d and %d", goroutines, games)
	}
	cfg := Computers(players, rules)
	if err := cfg.Validate(); err != nil {
		return Throughput{}, err
	}

	log.Info().Msgf("starting throughput experiment with %d goroutines, %d games of %d players...", goroutines, games, players)

	jobs := make(chan int)
	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		moves    int
		firstErr error
	)
	start := time.Now()
	for g := 0; g < goroutines; g++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range jobs {
				e, _, _, err := PlayGame(ctx, cfg)
				mu.Lock()
				if err != nil && firstErr == nil {
					firstErr = fmt.Errorf("game %d: %w", i+1, err)
				}
				if err == nil {
					moves += len(e.MoveMetrics())
				}
				mu.Unlock()
			}
		}()
	}

	for i := 0; i < games; i++ {
		if ctx.Err() != nil {
			break
		}
		jobs <- i
	}
	close(jobs)
	wg.Wait()

	if firstErr != nil {
		return Throughput{}, firstErr
	}
	if err := ctx.Err(); err != nil {
		return Throughput{}, err
	}

	result := Throughput{
		Goroutines: goroutines,
		Games:      games,
		Moves:      moves,
		Duration:   time.Since(start),
	}
	log.Info().Msgf("completed throughput experiment: %d moves in %v (%.1f moves/s)", result.Moves, result.Duration, result.MovesPerSecond())
	return result, nil
}
