package metrics

import (
	"bytes"
	"encoding/csv"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestWriter(t *testing.T) {
	dir := t.TempDir()
	w, err := NewWriter(dir)
	require.NoError(t, err)
	require.DirExists(t, w.Dir())
	require.Equal(t, dir, filepath.Dir(w.Dir()), "Records should go into a subfolder of the given directory")

	t.Run("games", func(t *testing.T) {
		start := time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC)
		err := w.WriteGameRecords([]GameRecord{{
			ID: 1,
			GameMetric: GameMetric{
				Players:    2,
				StartTime:  start,
				EndTime:    start.Add(time.Second),
				Duration:   time.Second,
				TotalMoves: 30,
				TotalTurns: 32,
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "games.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, "id", rows[0][0])
		require.Equal(t, []string{"1", "2", "2024-01-02T03:04:05Z", "2024-01-02T03:04:06Z", "1s", "30", "32"}, rows[1])
	})

	t.Run("scores", func(t *testing.T) {
		err := w.WriteScoreRecords([]ScoreRecord{
			{Game: 1, Player: 1, Color: "blue", Controller: "computer", Score: 109, Cells: 89, Bonus: 20, PiecesPlaced: 21},
			{Game: 1, Player: 2, Color: "yellow", Controller: "human", Score: 40, Cells: 40, PiecesPlaced: 9},
		})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "scores.csv"))
		require.Len(t, rows, 3)
		require.Equal(t, []string{"1", "1", "blue", "computer", "109", "89", "20", "21"}, rows[1])
		require.Equal(t, "human", rows[2][3])
	})

	t.Run("moves", func(t *testing.T) {
		err := w.WriteMoveRecords([]MoveRecord{{
			Game: 1,
			MoveMetric: MoveMetric{
				Turn: 1, Player: 1, Piece: "I5", Orientation: 0, Row: 0, Col: 0, Cells: 5,
				SearchMetric: SearchMetric{Candidates: 1, Duration: time.Millisecond},
			},
		}})
		require.NoError(t, err)

		rows := readCSV(t, filepath.Join(w.Dir(), "moves.csv"))
		require.Len(t, rows, 2)
		require.Equal(t, []string{"1", "1", "1", "I5", "0", "0", "0", "5", "1", "1ms"}, rows[1])
	})

	t.Run("empty records still get a header", func(t *testing.T) {
		other, err := NewWriter(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, other.WriteMoveRecords(nil))

		rows := readCSV(t, filepath.Join(other.Dir(), "moves.csv"))
		require.Len(t, rows, 1)
	})
}

type failingCloser struct {
	bytes.Buffer
}

func (*failingCloser) Close() error {
	return errors.New("disk full")
}

func TestWriterErrors(t *testing.T) {
	t.Run("folders never collide", func(t *testing.T) {
		dir := t.TempDir()
		seen := map[string]bool{}
		for i := 0; i < 5; i++ {
			w, err := NewWriter(dir)
			require.NoError(t, err)
			require.False(t, seen[w.Dir()], "Each writer should get its own folder")
			seen[w.Dir()] = true
		}
		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 5)
	})

	t.Run("close error is reported", func(t *testing.T) {
		w, err := NewWriter(t.TempDir())
		require.NoError(t, err)
		out := &failingCloser{}
		w.create = func(string) (io.WriteCloser, error) { return out, nil }

		err = w.WriteMoveRecords(nil)
		require.ErrorContains(t, err, "failed to close moves.csv")
		require.Contains(t, out.String(), "game,turn", "The header should still have been written")
	})

	t.Run("create error is reported", func(t *testing.T) {
		w, err := NewWriter(t.TempDir())
		require.NoError(t, err)
		require.NoError(t, os.Remove(w.Dir()))
		require.Error(t, w.WriteGameRecords(nil))
	})
}

func TestCollector(t *testing.T) {
	c := NewCollector()
	c.Start()
	c.AddCandidate()
	c.AddCandidate()
	require.Equal(t, 2, c.Complete().Candidates)

	c.Start()
	require.Zero(t, c.Complete().Candidates, "Start should reset the counters")

	d := NewDummyCollector()
	d.Start()
	d.AddCandidate()
	require.Equal(t, SearchMetric{}, d.Complete())
}
