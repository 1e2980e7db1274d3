package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/moviecard/internal/moviecard"
	"github.com/alexisbeaulieu97/moviecard/internal/ui/components"
)

var footerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

// View renders the card above the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if !m.ready {
		return lipgloss.JoinVertical(lipgloss.Left,
			m.renderCard(moviecard.DefaultWidth, moviecard.DefaultHeight),
			m.footer(),
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, m.viewport.View(), m.footer())
}

func (m Model) footer() string {
	return footerStyle.Render(m.help.View(m.keys))
}

// renderCard draws the card into the given box. The card never shrinks below its minimum
// size, so a short window leaves it taller than the viewport and scrollable.
func (m Model) renderCard(width, height int) string {
	if m.card == nil {
		return ""
	}

	ctx := components.DefaultContext().
		WithTheme(m.theme).
		WithParentSize(width, height)
	return m.card.ViewWithContext(ctx)
}

func newViewport(keys keyMap, width, height int) viewport.Model {
	vp := viewport.New(width, height)
	vp.KeyMap.Up = keys.Up
	vp.KeyMap.Down = keys.Down
	return vp
}
