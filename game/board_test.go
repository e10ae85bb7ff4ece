package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBoard(t *testing.T) {
	t.Run("new board is empty", func(t *testing.T) {
		b := NewBoard(20)
		require.Equal(t, 20, b.Size())
		for r := 0; r < 20; r++ {
			for c := 0; c < 20; c++ {
				require.True(t, b.IsEmpty(Position{r, c}))
			}
		}
	})

	t.Run("corners are clockwise from the top left", func(t *testing.T) {
		b := NewBoard(20)
		require.Equal(t, [4]Position{{0, 0}, {0, 19}, {19, 19}, {19, 0}}, b.Corners())
	})

	t.Run("occupy", func(t *testing.T) {
		b := NewBoard(5)
		b.Occupy([]Position{{1, 1}, {1, 2}}, 2)

		owner, ok := b.CellOwner(Position{1, 2})
		require.True(t, ok)
		require.Equal(t, PlayerID(2), owner)
		_, ok = b.CellOwner(Position{2, 2})
		require.False(t, ok, "Untouched cells should stay empty")
		require.Equal(t, 2, b.Count(2))
	})

	t.Run("occupy an owned cell leaves the board untouched", func(t *testing.T) {
		b := NewBoard(5)
		b.Occupy([]Position{{0, 0}}, 1)

		require.Panics(t, func() {
			b.Occupy([]Position{{0, 1}, {0, 0}}, 2)
		})
		require.True(t, b.IsEmpty(Position{0, 1}), "No cell should be written when one is invalid")
		owner, _ := b.CellOwner(Position{0, 0})
		require.Equal(t, PlayerID(1), owner, "Owned cells should never change owner")
	})

	t.Run("occupy out of bounds", func(t *testing.T) {
		b := NewBoard(5)
		require.Panics(t, func() {
			b.Occupy([]Position{{4, 4}, {4, 5}}, 1)
		})
		require.True(t, b.IsEmpty(Position{4, 4}))
	})

	t.Run("out of bounds lookup", func(t *testing.T) {
		b := NewBoard(5)
		require.False(t, b.InBounds(Position{-1, 0}))
		require.False(t, b.InBounds(Position{0, 5}))
		require.True(t, b.InBounds(Position{4, 4}))
		require.Panics(t, func() { b.CellOwner(Position{5, 0}) })
	})

	t.Run("adjacency", func(t *testing.T) {
		b := NewBoard(5)
		b.Occupy([]Position{{2, 2}}, 1)

		require.True(t, b.EdgeAdjacent(Position{1, 2}, 1))
		require.True(t, b.EdgeAdjacent(Position{2, 3}, 1))
		require.False(t, b.EdgeAdjacent(Position{1, 1}, 1))
		require.False(t, b.EdgeAdjacent(Position{1, 2}, 2), "Adjacency is per player")

		require.True(t, b.CornerAdjacent(Position{1, 1}, 1))
		require.True(t, b.CornerAdjacent(Position{3, 3}, 1))
		require.False(t, b.CornerAdjacent(Position{1, 2}, 1))
		require.False(t, b.CornerAdjacent(Position{0, 0}, 1), "Cells off the board should not count")
	})

	t.Run("copies are independent", func(t *testing.T) {
		b := NewBoard(3)
		cp := b.Copy()
		cp.Occupy([]Position{{0, 0}}, 1)
		require.True(t, b.IsEmpty(Position{0, 0}))

		grid := cp.Cells()
		grid[1][1] = 4
		require.True(t, cp.IsEmpty(Position{1, 1}), "Cells should return a copy")
		require.Equal(t, PlayerID(1), grid[0][0])
	})

	t.Run("string", func(t *testing.T) {
		b := NewBoard(3)
		b.Occupy([]Position{{0, 0}, {1, 1}}, 1)
		b.Occupy([]Position{{2, 2}}, 3)
		require.Equal(t, "1..\n.1.\n..3\n", b.String())
	})
}
