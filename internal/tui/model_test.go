package tui

import (
	"bytes"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/moviecard/internal/logger"
	"github.com/alexisbeaulieu97/moviecard/internal/moviecard"
	"github.com/alexisbeaulieu97/moviecard/internal/ui/components"
)

func newTestModel(t *testing.T) Model {
	t.Helper()

	card, err := moviecard.New(moviecard.Sample())
	require.NoError(t, err)

	return NewModel(card, components.LightTheme(), nil)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	updated, cmd := m.Update(msg)
	return updated.(Model), cmd
}

func TestInitReturnsNoCommand(t *testing.T) {
	m := newTestModel(t)
	require.Nil(t, m.Init())
}

func TestQuitKeys(t *testing.T) {
	cases := map[string]tea.KeyMsg{
		"q":      {Type: tea.KeyRunes, Runes: []rune{'q'}},
		"esc":    {Type: tea.KeyEsc},
		"ctrl+c": {Type: tea.KeyCtrlC},
	}

	for name, msg := range cases {
		t.Run(name, func(t *testing.T) {
			m, cmd := update(t, newTestModel(t), msg)
			require.NotNil(t, cmd)
			assert.IsType(t, tea.QuitMsg{}, cmd())
			assert.True(t, m.Quitting())
			assert.Empty(t, m.View())
		})
	}
}

func TestHelpToggle(t *testing.T) {
	m := newTestModel(t)
	require.False(t, m.HelpExpanded())

	toggle := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'?'}}
	m, cmd := update(t, m, toggle)
	require.Nil(t, cmd)
	require.True(t, m.HelpExpanded())
	assert.Contains(t, m.View(), "scroll down")

	m, _ = update(t, m, toggle)
	require.False(t, m.HelpExpanded())
	assert.NotContains(t, m.View(), "scroll down")
}

func TestWindowResizeRendersCardToFit(t *testing.T) {
	m, cmd := update(t, newTestModel(t), tea.WindowSizeMsg{Width: 50, Height: 30})
	require.Nil(t, cmd)

	w, h := m.Size()
	require.Equal(t, 50, w)
	require.Equal(t, 30, h)

	view := m.View()
	assert.Equal(t, 30, lipgloss.Height(view))
	assert.LessOrEqual(t, lipgloss.Width(view), 50)
	assert.Contains(t, view, "Deadpool")
	assert.Contains(t, view, "quit")
}

func TestViewBeforeResizeUsesDefaultSize(t *testing.T) {
	view := newTestModel(t).View()
	assert.True(t, strings.Contains(view, "Deadpool"))
	assert.GreaterOrEqual(t, lipgloss.Height(view), moviecard.DefaultHeight)
}

func TestOtherKeysAreIgnored(t *testing.T) {
	m, _ := update(t, newTestModel(t), tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.False(t, m.Quitting())
	assert.False(t, m.HelpExpanded())
}

func TestResizeIsLogged(t *testing.T) {
	buf := &bytes.Buffer{}
	log, err := logger.New(logger.Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	card, err := moviecard.New(moviecard.Sample())
	require.NoError(t, err)

	m := NewModel(card, components.DarkTheme(), log)
	_, _ = update(t, m, tea.WindowSizeMsg{Width: 40, Height: 20})

	assert.Contains(t, buf.String(), "window resized")
	assert.Contains(t, buf.String(), `"component":"tui"`)
}

func TestShortWindowScrollsToHiddenFields(t *testing.T) {
	m, _ := update(t, newTestModel(t), tea.WindowSizeMsg{Width: 60, Height: 14})

	before := m.View()
	assert.Equal(t, 14, lipgloss.Height(before))
	assert.NotContains(t, before, "Review")

	for i := 0; i < 10; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyDown})
	}

	after := m.View()
	assert.NotEqual(t, before, after)
	assert.Equal(t, 14, lipgloss.Height(after))
	assert.Contains(t, after, "Review")
	assert.Contains(t, after, "1.7k")

	for i := 0; i < 10; i++ {
		m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	}
	assert.Equal(t, before, m.View())
}
