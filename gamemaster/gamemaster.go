package gamemaster

import (
	"errors"
	"fmt"

	"blokus/engine"
	"blokus/game"
	"blokus/utils"

	"github.com/rs/zerolog/log"
)

// CommandType enumerates what the terminal can ask for.
type CommandType int

const (
	SelectPiece CommandType = iota
	Rotate
	Flip
	MoveCursor
	Place
	PassRequest
)

func (c CommandType) String() string {
	switch c {
	case SelectPiece:
		return "select_piece"
	case Rotate:
		return "rotate"
	case Flip:
		return "flip"
	case MoveCursor:
		return "move_cursor"
	case Place:
		return "place"
	case PassRequest:
		return "pass_request"
	default:
		return "unknown"
	}
}

type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Command is one input from the presentation layer. Piece is used by SelectPiece and
// Direction by MoveCursor.
type Command struct {
	Type      CommandType
	Piece     game.PieceID
	Direction Direction
}

func SelectPieceCommand(id game.PieceID) Command {
	return Command{Type: SelectPiece, Piece: id}
}

func MoveCursorCommand(d Direction) Command {
	return Command{Type: MoveCursor, Direction: d}
}

var ErrNoPieceSelected = errors.New("no piece selected")

// GameMaster turns commands into engine calls. It keeps the human's intent between
// commands: the selected piece, how it is turned and where the cursor is.
type GameMaster struct {
	Engine *engine.Engine

	piece    game.PieceID
	selected bool
	rotation int
	flipped  bool
	cursor   game.Position
}

// NewGameMaster initializes a new GameMaster.
func NewGameMaster(e *engine.Engine) *GameMaster {
	return &GameMaster{
		Engine: e,
	}
}

// Handle applies a command. Errors are rejections; the game is unchanged when one is returned.
func (gm *GameMaster) Handle(cmd Command) error {
	switch cmd.Type {
	case SelectPiece:
		if !gm.Engine.ActivePlayer().Available(cmd.Piece) {
			return game.ErrPieceUnavailable
		}
		gm.piece = cmd.Piece
		gm.selected = true
		gm.fit()
	case Rotate:
		gm.rotation = (gm.rotation + 1) % 4
		gm.fit()
	case Flip:
		gm.flipped = !gm.flipped
		gm.fit()
	case MoveCursor:
		gm.move(cmd.Direction)
	case Place:
		move, ok := gm.Staged()
		if !ok {
			return ErrNoPieceSelected
		}
		if err := gm.Engine.Submit(move); err != nil {
			return err
		}
		gm.reset()
	case PassRequest:
		if err := gm.Engine.Resign(); err != nil {
			return err
		}
		gm.reset()
	default:
		return fmt.Errorf("unknown command %d", cmd.Type)
	}
	log.Debug().Msgf("handled %s, cursor %v", cmd.Type, gm.cursor)
	return nil
}

// Selection returns the selected piece, if any.
func (gm *GameMaster) Selection() (game.PieceID, bool) {
	return gm.piece, gm.selected
}

func (gm *GameMaster) Cursor() game.Position {
	return gm.cursor
}

// Orientation returns the selected piece turned as requested.
func (gm *GameMaster) Orientation() (game.Orientation, bool) {
	if !gm.selected {
		return nil, false
	}
	base := game.Orientations(gm.piece)[0]
	return game.Transform(base, gm.rotation, gm.flipped), true
}

// Staged returns the move that Place would submit.
func (gm *GameMaster) Staged() (game.Move, bool) {
	shape, ok := gm.Orientation()
	if !ok {
		return game.Move{}, false
	}
	return game.Move{
		Piece:       gm.piece,
		Orientation: game.OrientationIndex(gm.piece, shape),
		Anchor:      gm.cursor,
	}, true
}

// Preview returns the cells the staged move would cover and its validation result.
func (gm *GameMaster) Preview() ([]game.Position, error) {
	move, ok := gm.Staged()
	if !ok {
		return nil, ErrNoPieceSelected
	}
	return move.Cells(), gm.Engine.Validate(move)
}

// limits returns the largest anchor row and column that keep the selection on the board.
func (gm *GameMaster) limits() (int, int) {
	size := gm.Engine.Size()
	shape, ok := gm.Orientation()
	if !ok {
		return size - 1, size - 1
	}
	return size - shape.Height(), size - shape.Width()
}

// reset clears the selection once the turn has passed to the next player.
func (gm *GameMaster) reset() {
	gm.selected = false
	gm.rotation = 0
	gm.flipped = false
}

func (gm *GameMaster) fit() {
	maxRow, maxCol := gm.limits()
	gm.cursor.Row = utils.Clamp(gm.cursor.Row, 0, maxRow)
	gm.cursor.Col = utils.Clamp(gm.cursor.Col, 0, maxCol)
}

func (gm *GameMaster) move(d Direction) {
	switch d {
	case Up:
		gm.cursor.Row--
	case Down:
		gm.cursor.Row++
	case Left:
		gm.cursor.Col--
	case Right:
		gm.cursor.Col++
	}
	gm.fit()
}
