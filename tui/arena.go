// ABOUTME: Renders a match snapshot onto a grid of terminal cells and maps cell rows back to arena coordinates.
// ABOUTME: Draws paddles, ball, dashed net, the score line, and the winner screen when the match is over.
package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/2389-research/pong/engine"
	"github.com/2389-research/pong/geom"
)

// cellKind is what occupies a single arena cell.
type cellKind int

const (
	cellEmpty cellKind = iota
	cellNet
	cellPlayer
	cellComputer
	cellBall
)

// glyphs maps cell kinds to the characters drawn for them.
var glyphs = map[cellKind]string{
	cellEmpty:    " ",
	cellNet:      "│",
	cellPlayer:   "█",
	cellComputer: "█",
	cellBall:     "●",
}

// ArenaModel draws the arena interior at a given cell size.
type ArenaModel struct {
	cols, rows int
	snap       engine.Snapshot
}

// NewArenaModel creates an ArenaModel with no size and an empty snapshot.
func NewArenaModel() ArenaModel {
	return ArenaModel{}
}

// SetSize sets the interior dimensions in cells (border excluded).
func (m *ArenaModel) SetSize(cols, rows int) {
	m.cols = max(cols, 0)
	m.rows = max(rows, 0)
}

// SetSnapshot replaces the state being drawn.
func (m *ArenaModel) SetSnapshot(s engine.Snapshot) {
	m.snap = s
}

// cellSize returns how many arena units one cell spans on each axis.
func (m ArenaModel) cellSize() (sx, sy float64) {
	if m.cols == 0 || m.rows == 0 {
		return 0, 0
	}
	return m.snap.ArenaWidth / float64(m.cols), m.snap.ArenaHeight / float64(m.rows)
}

// RowToArenaY maps an interior row to the arena y at the row's middle.
// Rows outside the interior map past the arena edges; the engine clamps.
func (m ArenaModel) RowToArenaY(row int) (float64, bool) {
	_, sy := m.cellSize()
	if sy == 0 {
		return 0, false
	}
	return (float64(row) + 0.5) * sy, true
}

// ArenaYToRow maps an arena y to the interior row containing it.
func (m ArenaModel) ArenaYToRow(y float64) int {
	_, sy := m.cellSize()
	if sy == 0 {
		return 0
	}
	return int(math.Floor(y / sy))
}

// grid rasterizes the snapshot into cell kinds.
func (m ArenaModel) grid() [][]cellKind {
	g := make([][]cellKind, m.rows)
	for r := range g {
		g[r] = make([]cellKind, m.cols)
	}
	sx, sy := m.cellSize()
	if sx == 0 {
		return g
	}

	net := m.cols / 2
	for r := 0; r < m.rows; r += 2 {
		g[r][net] = cellNet
	}

	m.fillRect(g, m.snap.Player, cellPlayer, sx, sy)
	m.fillRect(g, m.snap.Computer, cellComputer, sx, sy)

	bc := int(math.Floor(m.snap.Ball.Center.X() / sx))
	br := int(math.Floor(m.snap.Ball.Center.Y() / sy))
	if bc >= 0 && bc < m.cols && br >= 0 && br < m.rows {
		g[br][bc] = cellBall
	}
	return g
}

// fillRect marks every cell the rectangle touches, clipped to the grid.
func (m ArenaModel) fillRect(g [][]cellKind, r geom.Rect, kind cellKind, sx, sy float64) {
	c0 := max(int(math.Floor(r.X/sx)), 0)
	c1 := min(int(math.Ceil(r.Right()/sx)), m.cols)
	r0 := max(int(math.Floor(r.Y/sy)), 0)
	r1 := min(int(math.Ceil(r.Bottom()/sy)), m.rows)
	for row := r0; row < r1; row++ {
		for col := c0; col < c1; col++ {
			g[row][col] = kind
		}
	}
}

// styleFor returns the style for a cell kind.
func styleFor(k cellKind) lipgloss.Style {
	switch k {
	case cellNet:
		return NetStyle
	case cellPlayer:
		return PaddleStyle
	case cellComputer:
		return ComputerStyle
	case cellBall:
		return BallStyle
	default:
		return lipgloss.NewStyle()
	}
}

// View renders the arena interior inside a border. Runs of identical cells
// are styled together to keep frames cheap at the tick rate.
func (m ArenaModel) View() string {
	var body string
	if m.snap.State == engine.StateOver {
		body = m.winnerView()
	} else {
		lines := make([]string, 0, m.rows)
		for _, row := range m.grid() {
			lines = append(lines, renderRow(row))
		}
		body = strings.Join(lines, "\n")
	}
	return BorderStyle.Width(m.cols).Height(m.rows).Render(body)
}

// renderRow styles one grid row.
func renderRow(row []cellKind) string {
	var b strings.Builder
	for i := 0; i < len(row); {
		j := i
		for j < len(row) && row[j] == row[i] {
			j++
		}
		run := strings.Repeat(glyphs[row[i]], j-i)
		if row[i] == cellEmpty {
			b.WriteString(run)
		} else {
			b.WriteString(styleFor(row[i]).Render(run))
		}
		i = j
	}
	return b.String()
}

// winnerView centers the winner announcement in the arena.
func (m ArenaModel) winnerView() string {
	msg := WinnerStyle.Render("Winner: " + m.snap.Winner)
	return lipgloss.Place(m.cols, m.rows, lipgloss.Center, lipgloss.Center, msg)
}

// ScoreLine renders both scores centered over each half of the arena.
func ScoreLine(s engine.Snapshot, width int) string {
	half := max(width/2, 1)
	left := lipgloss.PlaceHorizontal(half, lipgloss.Center,
		ScoreStyle.Render(fmt.Sprintf("%s %d", s.PlayerName, s.PlayerScore)))
	right := lipgloss.PlaceHorizontal(width-half, lipgloss.Center,
		ScoreStyle.Render(fmt.Sprintf("%d %s", s.ComputerScore, s.ComputerName)))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}
