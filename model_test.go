package main

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTickReschedulesWhileRunning(t *testing.T) {
	m := NewModel(oOnlyConfig())
	updated, cmd := m.Update(tickMsg{})
	require.NotNil(t, cmd)

	m = updated.(Model)
	m.game.Running = false
	_, cmd = m.Update(tickMsg{})
	require.Nil(t, cmd)
}

func TestArrowKeysMoveThePiece(t *testing.T) {
	m := NewModel(oOnlyConfig())
	require.Equal(t, 4, m.game.Piece.X)

	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyLeft})
	m = updated.(Model)
	assert.Equal(t, 3, m.game.Piece.X)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRight})
	m = updated.(Model)
	assert.Equal(t, 4, m.game.Piece.X)

	updated, _ = m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("h")})
	m = updated.(Model)
	assert.Equal(t, 3, m.game.Piece.X)
}

func TestDownKeySetsFastDropForTheCurrentTick(t *testing.T) {
	cfg := oOnlyConfig()
	m := NewModel(cfg)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = updated.(Model)
	require.Equal(t, cfg.FastFallSpeed, m.game.dropSpeed)

	updated, _ = m.Update(tickMsg{})
	m = updated.(Model)
	require.Equal(t, cfg.FallSpeed, m.game.dropSpeed)
	require.Equal(t, 1, m.game.Piece.Y)
}

func TestUpKeyRotates(t *testing.T) {
	cfg := testConfig()
	cfg.Shapes = [][][]int{{{1, 1, 1, 1}}} // I only
	m := NewModel(cfg)
	updated, _ := m.Update(tea.KeyMsg{Type: tea.KeyUp})
	m = updated.(Model)
	assert.Equal(t, [][]int{{1}, {1}, {1}, {1}}, m.game.Piece.Shape)
}

func TestUnboundKeysDoNothing(t *testing.T) {
	m := NewModel(oOnlyConfig())
	before := m.game.Piece
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("z")})
	m = updated.(Model)
	assert.Nil(t, cmd)
	assert.Equal(t, before, m.game.Piece)
}

func TestQuitKeys(t *testing.T) {
	m := NewModel(oOnlyConfig())
	_, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("q")})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.QuitMsg{}, cmd())
}

func TestViewShowsScoreAndHelp(t *testing.T) {
	m := NewModel(oOnlyConfig())
	m.width = 80
	m.height = 40
	out := m.View()
	assert.Contains(t, out, "Score: 0")
	assert.Contains(t, out, "rotate")
}

func TestViewShowsGameOver(t *testing.T) {
	m := NewModel(oOnlyConfig())
	m.width = 80
	m.height = 40
	m.game.Running = false
	out := m.View()
	assert.True(t, strings.Contains(out, "GAME OVER"))
}

func TestViewGuardsSmallTerminals(t *testing.T) {
	m := NewModel(oOnlyConfig())
	m.width = 10
	m.height = 5
	assert.Contains(t, m.View(), "Terminal too small")
}
