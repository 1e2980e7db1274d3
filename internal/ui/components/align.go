package components

import (
	"github.com/alexisbeaulieu97/moviecard/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// Align places its child inside the full available width.
type Align struct {
	BaseComponent
	child     ui.Renderable
	alignment Alignment
}

// NewAlign wraps child with the given horizontal alignment.
func NewAlign(child ui.Renderable, alignment Alignment) *Align {
	return &Align{
		BaseComponent: NewBaseComponent(),
		child:         child,
		alignment:     alignment,
	}
}

// View renders the child without a width to fill.
func (a *Align) View() string {
	return a.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the child and pads it to the constrained or parent width.
func (a *Align) ViewWithContext(ctx RenderContext) string {
	if a.child == nil {
		return ""
	}
	view := render(a.child, ctx)

	width := ctx.ParentWidth
	if ctx.Constraints.HasWidth() {
		width = ctx.Constraints.MaxWidth
	}
	if width <= 0 {
		return a.ComputeStyle(ctx.Theme).Render(view)
	}

	placed := lipgloss.PlaceHorizontal(width, a.alignment.ToLipglossPosition(), view)
	return a.ComputeStyle(ctx.Theme).Render(placed)
}

// Describe reports the node identity for outlines.
func (a *Align) Describe() ui.Description {
	return ui.Description{Kind: "align", Role: a.Role(), Attrs: []string{a.alignment.String()}}
}

// WithRole tags the node with a semantic role.
func (a *Align) WithRole(role string) *Align {
	a.SetRole(role)
	return a
}

// Children returns the wrapped child.
func (a *Align) Children() []ui.Renderable {
	if a.child == nil {
		return nil
	}
	return []ui.Renderable{a.child}
}
