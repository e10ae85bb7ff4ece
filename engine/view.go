package engine

import (
	"blokus/game"
	"blokus/player"
)

// PlayerView is a read-only copy of one player's state.
type PlayerView struct {
	ID         game.PlayerID
	Color      game.Color
	Corner     game.Position
	Controller player.Kind
	Remaining  []game.PieceID
	Placed     []game.PieceID
	Cells      int
	Bonus      int
	Score      int
	Eliminated bool
}

// View is a snapshot of the game for rendering. It shares nothing with the engine.
type View struct {
	Size     int
	Cells    [][]game.PlayerID // [row][col]
	Players  []PlayerView
	Active   game.PlayerID
	Turn     int
	Phase    Phase
	GameOver bool
}

// Player returns the view of a player by id.
func (v View) Player(id game.PlayerID) (PlayerView, bool) {
	for _, p := range v.Players {
		if p.ID == id {
			return p, true
		}
	}
	return PlayerView{}, false
}

func (e *Engine) View() View {
	players := make([]PlayerView, len(e.state.Players))
	for i, p := range e.state.Players {
		players[i] = PlayerView{
			ID:         p.ID,
			Color:      p.Color,
			Corner:     p.Corner,
			Controller: e.controllers[i].Kind(),
			Remaining:  p.Remaining(),
			Placed:     p.Placed(),
			Cells:      p.PlacedCells(),
			Bonus:      e.rules.Bonus(p),
			Score:      e.rules.Score(p),
			Eliminated: p.Eliminated(),
		}
	}
	return View{
		Size:     e.state.Board.Size(),
		Cells:    e.state.Board.Cells(),
		Players:  players,
		Active:   e.Active(),
		Turn:     e.state.Turn,
		Phase:    e.phase,
		GameOver: e.phase == GameOver,
	}
}

// Board returns a copy of the board, for previews that need the validator.
func (e *Engine) Board() *game.Board {
	return e.state.Board.Copy()
}

// ActivePlayer returns a copy of the active player.
func (e *Engine) ActivePlayer() *game.Player {
	return e.state.CurrentPlayer().Copy()
}

// Size returns the board width.
func (e *Engine) Size() int {
	return e.state.Board.Size()
}
