package components

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/moviecard/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Direction specifies the layout direction for a Stack.
type Direction int

const (
	DirectionVertical Direction = iota
	DirectionHorizontal
)

// Stack arranges children in a single direction with an optional gap.
type Stack struct {
	BaseComponent
	children   []ui.Renderable
	direction  Direction
	gap        int
	crossAlign CrossAxisAlignment
}

// NewStack creates a new stack with default vertical layout.
func NewStack(children ...ui.Renderable) *Stack {
	return &Stack{
		BaseComponent: NewBaseComponent(),
		children:      children,
		direction:     DirectionVertical,
		crossAlign:    CrossStart,
	}
}

// VStack creates a vertical stack.
func VStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionVertical)
}

// HStack creates a horizontal stack.
func HStack(children ...ui.Renderable) *Stack {
	return NewStack(children...).WithDirection(DirectionHorizontal)
}

// View renders the stack and its children.
func (s *Stack) View() string {
	return s.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the stack with layout context.
func (s *Stack) ViewWithContext(ctx RenderContext) string {
	childCtx := ctx.WithConstraints(s.deriveChildConstraints(ctx.Constraints))

	views := make([]string, 0, len(s.children))
	for _, child := range s.children {
		if child == nil {
			continue
		}
		if view := render(child, childCtx); view != "" {
			views = append(views, view)
		}
	}

	style := s.ComputeStyle(ctx.Theme)
	if len(views) == 0 {
		return style.Render("")
	}

	var content string
	if s.direction == DirectionHorizontal {
		content = s.joinHorizontal(views)
	} else {
		content = s.joinVertical(views)
	}

	if ctx.Constraints.HasWidth() {
		style = style.MaxWidth(ctx.Constraints.MaxWidth)
	}
	if ctx.Constraints.HasHeight() {
		style = style.MaxHeight(ctx.Constraints.MaxHeight)
	}

	return style.Render(content)
}

// deriveChildConstraints removes the gaps of a horizontal stack from the width each child may use.
// Every child may still take the whole remainder; the row as a whole is clipped afterwards.
func (s *Stack) deriveChildConstraints(parent Constraints) Constraints {
	child := parent

	if s.direction == DirectionHorizontal && parent.HasWidth() && len(s.children) > 1 {
		child.MaxWidth = max(parent.MaxWidth-s.gap*(len(s.children)-1), 1)
	}

	return child
}

func (s *Stack) joinVertical(views []string) string {
	pos := s.crossAlign.toLipglossPosition()
	if s.gap == 0 {
		return lipgloss.JoinVertical(pos, views...)
	}

	// A string of n newlines spans n+1 rows.
	spacer := strings.Repeat("\n", s.gap-1)
	joined := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			joined = append(joined, spacer)
		}
		joined = append(joined, view)
	}

	return lipgloss.JoinVertical(pos, joined...)
}

func (s *Stack) joinHorizontal(views []string) string {
	pos := s.crossAlign.toLipglossPosition()
	if s.gap == 0 {
		return lipgloss.JoinHorizontal(pos, views...)
	}

	spacer := strings.Repeat(" ", s.gap)
	joined := make([]string, 0, len(views)*2-1)
	for i, view := range views {
		if i > 0 {
			joined = append(joined, spacer)
		}
		joined = append(joined, view)
	}

	return lipgloss.JoinHorizontal(pos, joined...)
}

// Describe reports the node identity for outlines.
func (s *Stack) Describe() ui.Description {
	kind := "vstack"
	if s.direction == DirectionHorizontal {
		kind = "hstack"
	}

	var attrs []string
	if s.gap > 0 {
		attrs = append(attrs, fmt.Sprintf("gap=%d", s.gap))
	}
	if s.crossAlign != CrossStart {
		attrs = append(attrs, "align="+s.crossAlign.String())
	}

	return ui.Description{Kind: kind, Role: s.Role(), Attrs: attrs}
}

// WithDirection sets the layout direction.
func (s *Stack) WithDirection(dir Direction) *Stack {
	s.direction = dir
	return s
}

// WithGap sets the spacing between children, in rows or columns.
func (s *Stack) WithGap(gap int) *Stack {
	if gap < 0 {
		gap = 0
	}
	s.gap = gap
	return s
}

// WithCrossAlign sets the cross axis alignment.
func (s *Stack) WithCrossAlign(align CrossAxisAlignment) *Stack {
	s.crossAlign = align
	return s
}

// WithRole tags the stack with a semantic role.
func (s *Stack) WithRole(role string) *Stack {
	s.SetRole(role)
	return s
}

// Children returns the child renderables.
func (s *Stack) Children() []ui.Renderable {
	return s.children
}
