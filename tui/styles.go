// ABOUTME: Defines lipgloss styles for the arena, actors, scores, match states, and event log formatting.
// ABOUTME: Provides StyleForState to map engine lifecycle states to their display styles.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/2389-research/pong/engine"
)

var (
	// Panel borders
	BorderStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))

	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("170"))

	// Arena contents
	PaddleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("255")).Bold(true)
	ComputerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true)
	BallStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("220")).Bold(true)
	NetStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	ScoreStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("252")).Bold(true)
	WinnerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)

	// Lifecycle colors
	ReadyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	PlayingStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	OverStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)

	// Log event colors
	LogTimestampStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	LogEventStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("75"))
	LogScoreStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	LogSuccessStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	LogResetStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))

	// Status bar
	StatusBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("236")).
			Foreground(lipgloss.Color("252")).
			Padding(0, 1)
)

// StyleForState returns the lipgloss style used to render a lifecycle state.
func StyleForState(s engine.State) lipgloss.Style {
	switch s {
	case engine.StateReady:
		return ReadyStyle
	case engine.StatePlaying:
		return PlayingStyle
	case engine.StateOver:
		return OverStyle
	default:
		return ReadyStyle
	}
}
