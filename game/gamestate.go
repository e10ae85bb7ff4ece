package game

import (
	"fmt"

	"blokus/meta"
)

// GameState holds the board and the seats around it. Players[i] has ID i+1.
type GameState struct {
	Board   *Board
	Players []*Player
	Current int // index into Players
	Turn    int // number of turns taken, placements and passes
}

// NewGameState creates an empty standard board with numPlayers fresh players.
func NewGameState(numPlayers int) (*GameState, error) {
	if numPlayers < 1 || numPlayers > meta.MAX_PLAYERS {
		return nil, fmt.Errorf("player count %d not in 1..%d", numPlayers, meta.MAX_PLAYERS)
	}
	board := NewBoard(meta.BOARD_SIZE)
	gs := &GameState{
		Board:   board,
		Players: make([]*Player, numPlayers),
	}
	for i := range gs.Players {
		gs.Players[i] = NewPlayer(PlayerID(i+1), board)
	}
	return gs, nil
}

// CurrentPlayer returns the player whose turn it is.
func (gs *GameState) CurrentPlayer() *Player {
	return gs.Players[gs.Current]
}

// Player looks a player up by id.
func (gs *GameState) Player(id PlayerID) *Player {
	idx := int(id) - 1
	if idx < 0 || idx >= len(gs.Players) {
		return nil
	}
	return gs.Players[idx]
}

// Apply places a move for the current player. The move must already be validated.
func (gs *GameState) Apply(move Move) {
	p := gs.CurrentPlayer()
	gs.Board.Occupy(move.Cells(), p.ID)
	p.MarkPlaced(move.Piece)
}

// NextPlayer returns the index of the next player still in the game after the current one,
// wrapping around, and false when every player is eliminated.
func (gs *GameState) NextPlayer() (int, bool) {
	n := len(gs.Players)
	for step := 1; step <= n; step++ {
		idx := (gs.Current + step) % n
		if !gs.Players[idx].Eliminated() {
			return idx, true
		}
	}
	return gs.Current, false
}

// AllEliminated reports whether nobody can move any more.
func (gs *GameState) AllEliminated() bool {
	for _, p := range gs.Players {
		if !p.Eliminated() {
			return false
		}
	}
	return true
}

func (gs GameState) Copy() *GameState {
	players := make([]*Player, len(gs.Players))
	for i, p := range gs.Players {
		players[i] = p.Copy()
	}
	return &GameState{
		Board:   gs.Board.Copy(),
		Players: players,
		Current: gs.Current,
		Turn:    gs.Turn,
	}
}
