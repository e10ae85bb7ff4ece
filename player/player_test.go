package player

import (
	"testing"

	"blokus/game"

	"github.com/stretchr/testify/require"
)

func TestParseKind(t *testing.T) {
	for _, s := range []string{"human", "H", " Human "} {
		kind, err := ParseKind(s)
		require.NoError(t, err)
		require.Equal(t, HumanKind, kind, "%q should be a human", s)
	}
	for _, s := range []string{"computer", "c", "AI", "bot"} {
		kind, err := ParseKind(s)
		require.NoError(t, err)
		require.Equal(t, ComputerKind, kind, "%q should be a computer", s)
	}
	_, err := ParseKind("robot")
	require.Error(t, err)
}

func TestControllers(t *testing.T) {
	gs, err := game.NewGameState(2)
	require.NoError(t, err)

	t.Run("human waits for input", func(t *testing.T) {
		c, err := NewController(HumanKind)
		require.NoError(t, err)
		require.Equal(t, HumanKind, c.Kind())

		_, _, err = c.ProposeMove(gs.Board, gs.Players[0])
		require.ErrorIs(t, err, ErrAwaitingInput)
	})

	t.Run("computer proposes a legal move", func(t *testing.T) {
		c, err := NewController(ComputerKind)
		require.NoError(t, err)
		require.Equal(t, ComputerKind, c.Kind())

		move, _, err := c.ProposeMove(gs.Board, gs.Players[1])
		require.NoError(t, err)
		require.NoError(t, game.Validate(gs.Board, gs.Players[1], move))
	})

	t.Run("unknown kind", func(t *testing.T) {
		_, err := NewController(Kind(7))
		require.Error(t, err)
		require.Equal(t, "unknown", Kind(7).String())
	})
}
