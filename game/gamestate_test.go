package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewGameState(t *testing.T) {
	t.Run("player counts", func(t *testing.T) {
		for _, n := range []int{0, 5, -1} {
			_, err := NewGameState(n)
			require.Error(t, err, "%d players should be rejected", n)
		}
		for n := 1; n <= 4; n++ {
			gs, err := NewGameState(n)
			require.NoError(t, err)
			require.Len(t, gs.Players, n)
			require.Zero(t, gs.Current)
			require.Zero(t, gs.Turn)
		}
	})

	t.Run("seats", func(t *testing.T) {
		gs, err := NewGameState(4)
		require.NoError(t, err)

		wantCorners := []Position{{0, 0}, {0, 19}, {19, 19}, {19, 0}}
		wantColors := []Color{Blue, Yellow, Red, Green}
		for i, p := range gs.Players {
			require.Equal(t, PlayerID(i+1), p.ID)
			require.Equal(t, wantCorners[i], p.Corner)
			require.Equal(t, wantColors[i], p.Color)
			require.Len(t, p.Remaining(), 21)
			require.Same(t, p, gs.Player(p.ID))
		}
		require.Nil(t, gs.Player(0))
		require.Nil(t, gs.Player(5))
	})
}

func TestGameStateTurns(t *testing.T) {
	t.Run("apply", func(t *testing.T) {
		gs, _ := NewGameState(2)
		gs.Apply(Move{Piece: I5, Anchor: Position{0, 0}})

		require.Equal(t, 5, gs.Board.Count(1))
		require.False(t, gs.Players[0].Available(I5))
		require.Equal(t, 5, gs.Players[0].PlacedCells())
	})

	t.Run("next player skips eliminated players", func(t *testing.T) {
		gs, _ := NewGameState(4)

		next, ok := gs.NextPlayer()
		require.True(t, ok)
		require.Equal(t, 1, next)

		gs.Players[1].Eliminate()
		gs.Players[2].Eliminate()
		next, ok = gs.NextPlayer()
		require.True(t, ok)
		require.Equal(t, 3, next)

		gs.Current = 3
		next, ok = gs.NextPlayer()
		require.True(t, ok)
		require.Equal(t, 0, next, "Turn order should wrap around")
	})

	t.Run("current player may be the only one left", func(t *testing.T) {
		gs, _ := NewGameState(3)
		gs.Players[1].Eliminate()
		gs.Players[2].Eliminate()

		next, ok := gs.NextPlayer()
		require.True(t, ok)
		require.Equal(t, 0, next)
		require.False(t, gs.AllEliminated())

		gs.Players[0].Eliminate()
		_, ok = gs.NextPlayer()
		require.False(t, ok)
		require.True(t, gs.AllEliminated())
	})

	t.Run("copies are independent", func(t *testing.T) {
		gs, _ := NewGameState(2)
		cp := gs.Copy()
		cp.Apply(Move{Piece: Monomino, Anchor: Position{0, 0}})
		cp.Players[1].Eliminate()

		require.True(t, gs.Board.IsEmpty(Position{0, 0}))
		require.True(t, gs.Players[0].Available(Monomino))
		require.False(t, gs.Players[1].Eliminated())
	})
}

func TestPlayer(t *testing.T) {
	board := NewBoard(20)

	t.Run("inventory", func(t *testing.T) {
		p := NewPlayer(2, board)
		require.Equal(t, Yellow, p.Color)
		require.False(t, p.HasPlaced())
		_, ok := p.LastPlaced()
		require.False(t, ok)

		p.MarkPlaced(V3)
		p.MarkPlaced(Domino)

		require.True(t, p.HasPlaced())
		require.Equal(t, []PieceID{V3, Domino}, p.Placed())
		last, ok := p.LastPlaced()
		require.True(t, ok)
		require.Equal(t, Domino, last)
		require.Equal(t, 5, p.PlacedCells())
		require.Len(t, p.Remaining(), 19)
		require.NotContains(t, p.Remaining(), V3)
		require.False(t, p.AllPlaced())
	})

	t.Run("placing twice is a bug", func(t *testing.T) {
		p := NewPlayer(1, board)
		p.MarkPlaced(O4)
		require.Panics(t, func() { p.MarkPlaced(O4) })
		require.Equal(t, 4, p.PlacedCells())
	})

	t.Run("seat without a corner", func(t *testing.T) {
		require.Panics(t, func() { NewPlayer(5, board) })
		require.Panics(t, func() { NewPlayer(NoPlayer, board) })
	})

	t.Run("copies are independent", func(t *testing.T) {
		p := NewPlayer(1, board)
		p.MarkPlaced(I3)
		cp := p.Copy()
		cp.MarkPlaced(I4)
		cp.Eliminate()

		require.Equal(t, []PieceID{I3}, p.Placed())
		require.True(t, p.Available(I4))
		require.False(t, p.Eliminated())
	})

	t.Run("color names", func(t *testing.T) {
		require.Equal(t, "blue", Blue.String())
		require.Equal(t, "green", Green.String())
	})
}

func TestMove(t *testing.T) {
	m := Move{Piece: L4, Orientation: 0, Anchor: Position{3, 4}}
	require.Equal(t, []Position{{3, 4}, {4, 4}, {4, 5}, {4, 6}}, m.Cells())
	require.Equal(t, "L4#0 at (3,4)", m.String())

	_, ok := Move{Piece: O4, Orientation: 1}.Shape()
	require.False(t, ok)
	require.Nil(t, Move{Piece: O4, Orientation: 1}.Cells())
}
