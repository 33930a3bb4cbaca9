package main

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg drives one gravity step. Each firing schedules the next only while
// the game is running, so the cadence is delay-after-completion rather than
// fixed-rate and may drift under load.
type tickMsg struct{}

type Model struct {
	cfg    Config
	width  int
	height int
	game   Game
	canvas *Canvas
}

func NewModel(cfg Config) Model {
	return Model{
		cfg:    cfg,
		game:   NewGame(cfg),
		canvas: NewCanvas(cfg),
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(tea.SetWindowTitle("Tetrigo"), tickCmd(m.cfg.TickInterval))
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.game.Tick()
		if m.game.Running {
			return m, tickCmd(m.cfg.TickInterval)
		}
		return m, nil
	case tea.KeyMsg:
		switch msg.String() {
		case "left", "h":
			m.game.Move(-1)
		case "right", "l":
			m.game.Move(1)
		case "down", "j":
			m.game.FastDrop()
		case "up", "x":
			m.game.Rotate()
		case "q", "esc", "ctrl+c":
			return m, tea.Quit
		}
		return m, nil
	}
	return m, nil
}

func (m Model) View() string {
	return viewGame(m)
}

func tickCmd(interval time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg { return tickMsg{} })
}
