package experiments

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"blokus/game"

	"github.com/stretchr/testify/require"
)

func TestPlayGame(t *testing.T) {
	e, start, end, err := PlayGame(context.Background(), Computers(2, nil))
	require.NoError(t, err)
	require.True(t, e.View().GameOver)
	require.False(t, end.Before(start))

	_, _, _, err = PlayGame(context.Background(), Computers(0, nil))
	require.Error(t, err)
}

func TestRecording(t *testing.T) {
	r := &Recording{}
	e, start, end, err := PlayGame(context.Background(), Computers(3, game.NewStandardRules()))
	require.NoError(t, err)

	require.Equal(t, 1, r.Add(e, start, end))
	require.Len(t, r.Games, 1)
	require.Equal(t, 3, r.Games[0].Players)
	require.Equal(t, len(e.MoveMetrics()), r.Games[0].TotalMoves)
	require.Len(t, r.Scores, 3)
	require.Equal(t, "computer", r.Scores[0].Controller)
	require.Equal(t, "red", r.Scores[2].Color)
	require.Len(t, r.Moves, r.Games[0].TotalMoves)

	require.Equal(t, 2, r.Add(e, start, end))
	require.Equal(t, 2, r.Moves[len(r.Moves)-1].Game)

	dir, err := r.Write(t.TempDir())
	require.NoError(t, err)
	for _, name := range []string{"games.csv", "scores.csv", "moves.csv"} {
		require.FileExists(t, filepath.Join(dir, name))
	}
}

func TestRunPlayerCountExperiment(t *testing.T) {
	dir, err := RunPlayerCountExperiment(context.Background(), t.TempDir(), 1, nil)
	require.NoError(t, err)

	data, err := os.ReadFile(filepath.Join(dir, "games.csv"))
	require.NoError(t, err)
	require.Contains(t, string(data), "\n4,4,", "The last game should have four players")
}

func TestRunThroughputExperiment(t *testing.T) {
	t.Run("parallel games", func(t *testing.T) {
		result, err := RunThroughputExperiment(context.Background(), 4, 6, 2, nil)
		require.NoError(t, err)
		require.Equal(t, 6, result.Games)
		require.Positive(t, result.Moves)
		require.Positive(t, result.MovesPerSecond())
	})

	t.Run("every game plays the same", func(t *testing.T) {
		single, err := RunThroughputExperiment(context.Background(), 1, 1, 4, nil)
		require.NoError(t, err)
		many, err := RunThroughputExperiment(context.Background(), 3, 3, 4, nil)
		require.NoError(t, err)
		require.Equal(t, 3*single.Moves, many.Moves)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := RunThroughputExperiment(context.Background(), 0, 1, 2, nil)
		require.Error(t, err)
		_, err = RunThroughputExperiment(context.Background(), 1, 1, 5, nil)
		require.Error(t, err)
	})

	t.Run("cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		_, err := RunThroughputExperiment(ctx, 2, 4, 2, nil)
		require.ErrorIs(t, err, context.Canceled)
	})

	require.Zero(t, Throughput{Moves: 3}.MovesPerSecond())
	require.InDelta(t, 2.0, Throughput{Moves: 4, Duration: 2 * time.Second}.MovesPerSecond(), 1e-9)
}
