package tui

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"blokus/engine"
	"blokus/game"
	"blokus/gamemaster"
	"blokus/player"
	"blokus/utils"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

const DefaultDelay = 300 * time.Millisecond

type TickMsg time.Time

func tickCmd(delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

type model struct {
	gm     *gamemaster.GameMaster
	delay  time.Duration // between computer moves
	status string
	err    error // fatal, ends the program
}

func newModel(gm *gamemaster.GameMaster, delay time.Duration) model {
	if delay <= 0 {
		delay = DefaultDelay
	}
	return model{
		gm:     gm,
		delay:  delay,
		status: "select a piece with tab or 1-5",
	}
}

// Run shows the game until it is over and the user quits, or ctx is cancelled.
func Run(ctx context.Context, gm *gamemaster.GameMaster, delay time.Duration) error {
	p := tea.NewProgram(newModel(gm, delay), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		return err
	}
	if m, ok := final.(model); ok && m.err != nil {
		return m.err
	}
	return nil
}

func (m model) Init() tea.Cmd {
	return tickCmd(m.delay)
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if key == "q" || key == "ctrl+c" {
			return m, tea.Quit
		}
		return m.handleKey(key)
	case TickMsg:
		return m.step()
	}
	return m, nil
}

// step lets a computer seat move, one move per tick so the board can be followed.
func (m model) step() (tea.Model, tea.Cmd) {
	e := m.gm.Engine
	if e.Phase() == engine.GameOver {
		m.status = "game over, press q to quit"
		return m, nil
	}
	if e.ActiveKind() != player.ComputerKind {
		return m, tickCmd(m.delay)
	}

	active := e.Active()
	err := e.Step()
	switch {
	case err == nil, errors.Is(err, engine.ErrGameOver):
		m.status = fmt.Sprintf("player %d moved", active)
	default:
		m.err = err
		return m, tea.Quit
	}
	return m, tickCmd(m.delay)
}

func (m model) handleKey(key string) (tea.Model, tea.Cmd) {
	e := m.gm.Engine
	if e.Phase() == engine.GameOver {
		return m, nil
	}
	if e.ActiveKind() != player.HumanKind {
		m.status = fmt.Sprintf("waiting for player %d", e.Active())
		return m, nil
	}

	cmd, ok := m.command(key)
	if !ok {
		return m, nil
	}
	err := m.gm.Handle(cmd)
	switch {
	case err == nil:
		m.status = cmd.Type.String()
	case errors.Is(err, game.ErrInternalInconsistency):
		m.err = err
		return m, tea.Quit
	default:
		m.status = rejection(err)
		log.Debug().Msgf("%s rejected: %v", cmd.Type, err)
	}
	return m, nil
}

func rejection(err error) string {
	if reason := game.Reason(err); reason != game.RejectUnknown {
		return "rejected: " + reason.String()
	}
	return "rejected: " + err.Error()
}

// command maps a key to a game master command.
func (m model) command(key string) (gamemaster.Command, bool) {
	switch key {
	case "up", "k":
		return gamemaster.MoveCursorCommand(gamemaster.Up), true
	case "down", "j":
		return gamemaster.MoveCursorCommand(gamemaster.Down), true
	case "left", "h":
		return gamemaster.MoveCursorCommand(gamemaster.Left), true
	case "right", "l":
		return gamemaster.MoveCursorCommand(gamemaster.Right), true
	case "r":
		return gamemaster.Command{Type: gamemaster.Rotate}, true
	case "f":
		return gamemaster.Command{Type: gamemaster.Flip}, true
	case "enter", " ", "space":
		return gamemaster.Command{Type: gamemaster.Place}, true
	case "p":
		return gamemaster.Command{Type: gamemaster.PassRequest}, true
	case "tab", "]":
		return m.cycle(1)
	case "shift+tab", "[":
		return m.cycle(-1)
	case "1", "2", "3", "4", "5":
		size, _ := strconv.Atoi(key)
		return m.bySize(size)
	}
	return gamemaster.Command{}, false
}

// cycle selects the next (or previous) remaining piece after the current selection.
func (m model) cycle(step int) (gamemaster.Command, bool) {
	remaining := m.gm.Engine.ActivePlayer().Remaining()
	if len(remaining) == 0 {
		return gamemaster.Command{}, false
	}
	idx := -1
	if id, ok := m.gm.Selection(); ok {
		idx = utils.FindIndex(remaining, id)
	}
	switch {
	case idx == -1 && step < 0:
		idx = len(remaining) - 1
	case idx == -1:
		idx = 0
	default:
		idx = (idx + step + len(remaining)) % len(remaining)
	}
	return gamemaster.SelectPieceCommand(remaining[idx]), true
}

// bySize selects a remaining piece with the given cell count, moving on to the next one
// of that size when pressed again.
func (m model) bySize(size int) (gamemaster.Command, bool) {
	var sized []game.PieceID
	for _, id := range m.gm.Engine.ActivePlayer().Remaining() {
		if id.Size() == size {
			sized = append(sized, id)
		}
	}
	if len(sized) == 0 {
		return gamemaster.Command{}, false
	}
	next := 0
	if id, ok := m.gm.Selection(); ok {
		next = (utils.FindIndex(sized, id) + 1) % len(sized)
	}
	return gamemaster.SelectPieceCommand(sized[next]), true
}
