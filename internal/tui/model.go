// Package tui hosts a movie card inside a bubbletea program.
package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/moviecard/internal/logger"
	"github.com/alexisbeaulieu97/moviecard/internal/moviecard"
	"github.com/alexisbeaulieu97/moviecard/internal/ui/components"
)

// Model is the bubbletea state of the card viewer. The card itself is static;
// the model only tracks the window size, the help toggle and the scroll offset.
type Model struct {
	card     *moviecard.MovieCard
	theme    components.Theme
	log      *logger.Logger
	keys     keyMap
	help     help.Model
	viewport viewport.Model

	width    int
	height   int
	ready    bool
	quitting bool
}

// NewModel constructs a viewer for card painted with theme.
func NewModel(card *moviecard.MovieCard, theme components.Theme, log *logger.Logger) Model {
	return Model{
		card:  card,
		theme: theme,
		log:   log.Component("tui"),
		keys:  defaultKeyMap(),
		help:  help.New(),
	}
}

// Init starts the program. The first render waits for the window size.
func (m Model) Init() tea.Cmd {
	return nil
}

// Quitting reports whether a quit key was pressed.
func (m Model) Quitting() bool {
	return m.quitting
}

// HelpExpanded reports whether the full key help is shown.
func (m Model) HelpExpanded() bool {
	return m.help.ShowAll
}

// Size returns the last window size received.
func (m Model) Size() (int, int) {
	return m.width, m.height
}
