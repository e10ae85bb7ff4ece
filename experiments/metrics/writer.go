package metrics

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

type GameRecord struct {
	ID int
	GameMetric
}

type ScoreRecord struct {
	Game         int // GameRecord.ID
	Player       int
	Color        string
	Controller   string
	Score        int
	Cells        int
	Bonus        int
	PiecesPlaced int
}

type MoveRecord struct {
	Game int // GameRecord.ID
	MoveMetric
}

type Writer struct {
	baseDir string
	create  func(path string) (io.WriteCloser, error)
}

const folderLayout = "2006-01-02T15-04-05.000000000Z"

// NewWriter creates a new subfolder of dir named by the current timestamp. Folders never
// collide: a numeric suffix is added when the name is already taken.
func NewWriter(dir string) (*Writer, error) {
	err := os.MkdirAll(dir, 0755)
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	name := time.Now().UTC().Format(folderLayout)
	baseDir := filepath.Join(dir, name)
	for i := 1; ; i++ {
		err = os.Mkdir(baseDir, 0755)
		if !errors.Is(err, fs.ErrExist) {
			break
		}
		baseDir = filepath.Join(dir, fmt.Sprintf("%s-%d", name, i))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
		create: func(path string) (io.WriteCloser, error) {
			return os.Create(path)
		},
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) write(name string, header []string, rows [][]string) (err error) {
	path := filepath.Join(w.baseDir, name)
	f, err := w.create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("failed to close %s: %w", name, cerr)
		}
	}()

	writer := csv.NewWriter(f)
	err = writer.Write(header)
	if err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	err = writer.WriteAll(rows)
	if err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "players", "start_time", "end_time", "duration", "total_moves", "total_turns"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Players),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
			record.Duration.String(),
			strconv.Itoa(record.TotalMoves),
			strconv.Itoa(record.TotalTurns),
		})
	}
	return w.write("games.csv", header, rows)
}

func (w *Writer) WriteScoreRecords(records []ScoreRecord) error {
	header := []string{"game", "player", "color", "controller", "score", "cells", "bonus", "pieces_placed"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Player),
			record.Color,
			record.Controller,
			strconv.Itoa(record.Score),
			strconv.Itoa(record.Cells),
			strconv.Itoa(record.Bonus),
			strconv.Itoa(record.PiecesPlaced),
		})
	}
	return w.write("scores.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "turn", "player", "piece", "orientation", "row", "col", "cells", "candidates", "duration"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Turn),
			strconv.Itoa(record.Player),
			record.Piece,
			strconv.Itoa(record.Orientation),
			strconv.Itoa(record.Row),
			strconv.Itoa(record.Col),
			strconv.Itoa(record.Cells),
			strconv.Itoa(record.Candidates),
			record.Duration.String(),
		})
	}
	return w.write("moves.csv", header, rows)
}
