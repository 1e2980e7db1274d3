package components

import (
	"fmt"

	"github.com/alexisbeaulieu97/moviecard/internal/ui"
)

// Container pads a single stack layout.
type Container struct {
	BaseComponent
	layout  *Stack
	padding Spacing
}

// NewContainer creates a container laying its children out vertically.
func NewContainer(children ...ui.Renderable) *Container {
	return &Container{
		BaseComponent: NewBaseComponent(),
		layout:        VStack(children...),
	}
}

// View renders the container and its children.
func (c *Container) View() string {
	return c.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the container with layout context. The padding is taken out of
// the constraints before the layout is drawn.
func (c *Container) ViewWithContext(ctx RenderContext) string {
	inner := ctx.Constraints
	if inner.HasWidth() {
		inner.MaxWidth = max(inner.MaxWidth-c.padding.Horizontal(), 1)
	}
	if inner.HasHeight() {
		inner.MaxHeight = max(inner.MaxHeight-c.padding.Vertical(), 1)
	}

	var content string
	if len(c.layout.Children()) > 0 {
		content = c.layout.ViewWithContext(ctx.WithConstraints(inner))
	}

	return c.padding.applyPadding(c.ComputeStyle(ctx.Theme)).Render(content)
}

// Describe reports the node identity for outlines.
func (c *Container) Describe() ui.Description {
	var attrs []string
	if !c.padding.IsZero() {
		p := c.padding
		attrs = append(attrs, fmt.Sprintf("padding=%d,%d,%d,%d", p.Top, p.Right, p.Bottom, p.Left))
	}
	return ui.Description{Kind: "container", Role: c.Role(), Attrs: attrs}
}

// WithPadding sets the padding.
func (c *Container) WithPadding(padding Spacing) *Container {
	c.padding = padding
	return c
}

// WithDirection sets the layout direction.
func (c *Container) WithDirection(dir Direction) *Container {
	c.layout.WithDirection(dir)
	return c
}

// WithGap sets the gap between children.
func (c *Container) WithGap(gap int) *Container {
	c.layout.WithGap(gap)
	return c
}

// WithCrossAlign sets the cross-axis alignment.
func (c *Container) WithCrossAlign(align CrossAxisAlignment) *Container {
	c.layout.WithCrossAlign(align)
	return c
}

// WithRole tags the container with a semantic role.
func (c *Container) WithRole(role string) *Container {
	c.SetRole(role)
	return c
}

// Children exposes the internal layout as the single child node.
func (c *Container) Children() []ui.Renderable {
	return []ui.Renderable{c.layout}
}
