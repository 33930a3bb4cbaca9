package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme maps the game palette onto terminal colors.
type Theme struct {
	Name        string
	BorderColor lipgloss.Color
	TextColor   lipgloss.Color
	AccentColor lipgloss.Color
	PieceColors map[string]lipgloss.Color
}

var defaultTheme = Theme{
	Name:        "Classic",
	BorderColor: lipgloss.Color("15"),
	TextColor:   lipgloss.Color("250"),
	AccentColor: lipgloss.Color("226"),
	PieceColors: map[string]lipgloss.Color{
		"cyan":   "51",
		"yellow": "226",
		"purple": "93",
		"green":  "46",
		"red":    "196",
		"orange": "208",
		"blue":   "21",
	},
}

// Each board cell is drawn two characters wide so cells look square.
const cellChars = 2

func viewGame(m Model) string {
	theme := defaultTheme
	minWidth, minHeight := minGameSize(m.cfg)
	if m.width > 0 && m.height > 0 && (m.width < minWidth || m.height < minHeight) {
		message := fmt.Sprintf("Terminal too small. Need at least %dx%d. Current %dx%d.", minWidth, minHeight, m.width, m.height)
		return center(m.width, m.height, message)
	}
	m.game.Draw(m.canvas)
	board := renderCanvas(m.canvas, m.cfg.Colors, theme)
	info := renderInfo(m.canvas, theme)
	content := lipgloss.JoinHorizontal(lipgloss.Top, board, info)
	return center(m.width, m.height, content)
}

// renderCanvas draws the rasterized frame as a bordered block grid. When the
// session has ended, the middle row is replaced by a centered GAME OVER
// banner.
func renderCanvas(c *Canvas, colors []string, theme Theme) string {
	border := lipgloss.NewStyle().Foreground(theme.BorderColor)
	cellText := strings.Repeat(" ", cellChars)
	width := len(c.cells[0])
	lineWidth := width * cellChars
	var b strings.Builder
	b.WriteString(border.Render("+" + strings.Repeat("-", lineWidth) + "+"))
	b.WriteString("\n")
	for y, row := range c.cells {
		b.WriteString(border.Render("|"))
		if c.gameOver && y == len(c.cells)/2 {
			b.WriteString(renderGameOverRow(lineWidth))
		} else {
			for _, val := range row {
				if val < 0 {
					b.WriteString(cellText)
					continue
				}
				color := theme.PieceColors[colors[val%len(colors)]]
				b.WriteString(lipgloss.NewStyle().Background(color).Render(cellText))
			}
		}
		b.WriteString(border.Render("|"))
		b.WriteString("\n")
	}
	b.WriteString(border.Render("+" + strings.Repeat("-", lineWidth) + "+"))
	return b.String()
}

func renderGameOverRow(lineWidth int) string {
	label := "GAME OVER"
	if len(label) > lineWidth {
		label = label[:lineWidth]
	}
	left := (lineWidth - len(label)) / 2
	right := lineWidth - left - len(label)
	style := lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	return strings.Repeat(" ", left) + style.Render(label) + strings.Repeat(" ", right)
}

func renderInfo(c *Canvas, theme Theme) string {
	var b strings.Builder
	pad := lipgloss.NewStyle().PaddingLeft(2)
	b.WriteString(pad.Render(titleStyle(theme).Render("TETRIGO")))
	b.WriteString("\n\n")
	b.WriteString(pad.Render(fmt.Sprintf("Score: %d", c.score)))
	b.WriteString("\n\n")
	keys := []string{
		"Left/H, Right/L: move",
		"Up/X: rotate",
		"Down/J: fast drop",
		"Q: quit",
	}
	for _, line := range keys {
		b.WriteString(pad.Render(helpStyle(theme).Render(line)))
		b.WriteString("\n")
	}
	if c.gameOver {
		b.WriteString("\n")
		b.WriteString(pad.Render(titleStyle(theme).Render("GAME OVER")))
	}
	return b.String()
}

func minGameSize(cfg Config) (int, int) {
	width := cfg.BoardWidth*cellChars + 4
	height := cfg.BoardHeight + 4
	return width, height
}

func titleStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.AccentColor).Bold(true)
}

func helpStyle(theme Theme) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(theme.TextColor)
}

func center(width, height int, content string) string {
	if width == 0 || height == 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}
