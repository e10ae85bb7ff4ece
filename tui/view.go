package tui

import (
	"fmt"
	"strings"

	"blokus/engine"
	"blokus/game"
	"blokus/player"

	"github.com/charmbracelet/lipgloss"
)

var (
	colors = map[game.Color]lipgloss.Color{
		game.Blue:   lipgloss.Color("33"),
		game.Yellow: lipgloss.Color("220"),
		game.Red:    lipgloss.Color("196"),
		game.Green:  lipgloss.Color("40"),
	}

	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	illegalStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	titleStyle   = lipgloss.NewStyle().Bold(true)
	helpStyle    = lipgloss.NewStyle().Faint(true)
	selectStyle  = lipgloss.NewStyle().Reverse(true)
	panelStyle   = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			Padding(0, 1)
)

const (
	filledCell  = "██"
	emptyCell   = "· "
	ghostCell   = "▓▓"
	illegalCell = "░░"
	cursorCell  = "[]"
)

func playerStyle(c game.Color) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(colors[c])
}

func (m model) View() string {
	view := m.gm.Engine.View()

	board := panelStyle.Render(m.renderBoard(view))
	side := lipgloss.JoinVertical(lipgloss.Left,
		panelStyle.Render(renderScores(view)),
		panelStyle.Render(m.renderPieces(view)),
	)

	var sb strings.Builder
	sb.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, board, side))
	sb.WriteString("\n")
	sb.WriteString(m.status)
	sb.WriteString("\n")
	sb.WriteString(helpStyle.Render("arrows/hjkl move  tab/[/]/1-5 select  r rotate  f flip  enter place  p pass  q quit"))
	sb.WriteString("\n")
	return sb.String()
}

func (m model) renderBoard(view engine.View) string {
	ghost := map[game.Position]bool{}
	legal := false
	showGhost := !view.GameOver && m.gm.Engine.ActiveKind() == player.HumanKind
	if showGhost {
		cells, err := m.gm.Preview()
		for _, pos := range cells {
			ghost[pos] = true
		}
		legal = err == nil
	}
	active, _ := view.Player(view.Active)
	cursor := m.gm.Cursor()
	_, selected := m.gm.Selection()

	var sb strings.Builder
	for r := 0; r < view.Size; r++ {
		for c := 0; c < view.Size; c++ {
			pos := game.Position{Row: r, Col: c}
			owner := view.Cells[r][c]
			switch {
			case ghost[pos] && legal:
				sb.WriteString(playerStyle(active.Color).Render(ghostCell))
			case ghost[pos]:
				sb.WriteString(illegalStyle.Render(illegalCell))
			case showGhost && !selected && pos == cursor:
				sb.WriteString(playerStyle(active.Color).Render(cursorCell))
			case owner != game.NoPlayer:
				p, _ := view.Player(owner)
				sb.WriteString(playerStyle(p.Color).Render(filledCell))
			default:
				sb.WriteString(emptyStyle.Render(emptyCell))
			}
		}
		if r < view.Size-1 {
			sb.WriteString("\n")
		}
	}
	return sb.String()
}

func renderScores(view engine.View) string {
	lines := []string{titleStyle.Render(fmt.Sprintf("Turn %d", view.Turn))}
	for _, p := range view.Players {
		marker := "  "
		if p.ID == view.Active && !view.GameOver {
			marker = "> "
		}
		state := ""
		if p.Eliminated {
			state = " out"
		}
		line := fmt.Sprintf("%sP%d %-6s %-8s %3d (%d left)%s", marker, p.ID, p.Color, p.Controller, p.Score, len(p.Remaining), state)
		lines = append(lines, playerStyle(p.Color).Render(line))
	}
	if view.GameOver {
		result := engine.Result{}
		for _, p := range view.Players {
			result.Scores = append(result.Scores, engine.PlayerScore{Player: p.ID, Score: p.Score})
		}
		lines = append(lines, "", titleStyle.Render(fmt.Sprintf("Game over, won by %s", winners(result.Winners()))))
	}
	return strings.Join(lines, "\n")
}

func winners(ids []game.PlayerID) string {
	names := make([]string, len(ids))
	for i, id := range ids {
		names[i] = fmt.Sprintf("P%d", id)
	}
	return strings.Join(names, ", ")
}

func (m model) renderPieces(view engine.View) string {
	active, _ := view.Player(view.Active)
	selected, ok := m.gm.Selection()

	lines := []string{titleStyle.Render(fmt.Sprintf("P%d pieces", active.ID))}
	row := []string{}
	for _, id := range active.Remaining {
		name := id.String()
		if ok && id == selected {
			name = selectStyle.Render(name)
		}
		row = append(row, name)
		if len(row) == 6 {
			lines = append(lines, strings.Join(row, " "))
			row = row[:0]
		}
	}
	if len(row) > 0 {
		lines = append(lines, strings.Join(row, " "))
	}
	if shape, ok := m.gm.Orientation(); ok {
		lines = append(lines, "", playerStyle(active.Color).Render(shape.String()))
	}
	return strings.Join(lines, "\n")
}
