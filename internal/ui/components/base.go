package components

import (
	"github.com/alexisbeaulieu97/moviecard/internal/ui"
	"github.com/charmbracelet/lipgloss"
)

// BaseComponent carries the style, style strategy and tree role shared by all components.
// Embed it in component structs.
type BaseComponent struct {
	style    lipgloss.Style
	strategy StyleStrategy
	role     string
}

// StyleStrategy decides how theme data is applied to a component style.
type StyleStrategy interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc transforms a lipgloss.Style using data from a Theme.
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

// CompositeStrategy applies multiple StyleFunc in sequence.
type CompositeStrategy struct {
	funcs []StyleFunc
}

// Apply applies all style functions in order.
func (c CompositeStrategy) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	for _, fn := range c.funcs {
		base = fn(base, theme)
	}
	return base
}

// NewCompositeStrategy creates a strategy from multiple style functions.
func NewCompositeStrategy(funcs ...StyleFunc) StyleStrategy {
	return CompositeStrategy{funcs: funcs}
}

// NewBaseComponent creates a base component with an empty style.
func NewBaseComponent() BaseComponent {
	return BaseComponent{
		style:    lipgloss.NewStyle(),
		strategy: CompositeStrategy{},
	}
}

// ComputeStyle returns the style for this component resolved against theme.
func (b *BaseComponent) ComputeStyle(theme Theme) lipgloss.Style {
	if b.strategy == nil {
		return b.style
	}
	return b.strategy.Apply(b.style, theme)
}

// AddAppliers appends style appliers after the current strategy.
func (b *BaseComponent) AddAppliers(appliers ...StyleFunc) {
	if existing, ok := b.strategy.(CompositeStrategy); ok {
		funcs := make([]StyleFunc, len(existing.funcs), len(existing.funcs)+len(appliers))
		copy(funcs, existing.funcs)
		b.strategy = CompositeStrategy{funcs: append(funcs, appliers...)}
		return
	}

	current := b.strategy
	b.strategy = NewCompositeStrategy(func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if current != nil {
			base = current.Apply(base, theme)
		}
		for _, applier := range appliers {
			base = applier(base, theme)
		}
		return base
	})
}

// Role returns the semantic role used to find this node in the view tree.
func (b *BaseComponent) Role() string {
	return b.role
}

// SetRole tags the component with a semantic role.
func (b *BaseComponent) SetRole(role string) {
	b.role = role
}

// Spacing is padding or margin around a component, clockwise from the top.
type Spacing struct {
	Top    int
	Right  int
	Bottom int
	Left   int
}

// SymmetricSpacing creates spacing with different vertical and horizontal values.
func SymmetricSpacing(vertical, horizontal int) Spacing {
	return Spacing{Top: vertical, Right: horizontal, Bottom: vertical, Left: horizontal}
}

// CustomSpacing creates spacing with explicit values (top, right, bottom, left).
func CustomSpacing(top, right, bottom, left int) Spacing {
	return Spacing{Top: top, Right: right, Bottom: bottom, Left: left}
}

// IsZero reports whether all sides are zero.
func (s Spacing) IsZero() bool {
	return s == Spacing{}
}

// Horizontal returns left + right.
func (s Spacing) Horizontal() int {
	return s.Left + s.Right
}

// Vertical returns top + bottom.
func (s Spacing) Vertical() int {
	return s.Top + s.Bottom
}

// applyPadding sets the spacing on style as padding.
func (s Spacing) applyPadding(style lipgloss.Style) lipgloss.Style {
	if s.IsZero() {
		return style
	}
	return style.Padding(s.Top, s.Right, s.Bottom, s.Left)
}

// Constraints bounds the size a component may occupy. A non-positive maximum means unlimited.
type Constraints struct {
	MinWidth  int
	MaxWidth  int
	MinHeight int
	MaxHeight int
}

// Unconstrained returns constraints with no limits.
func Unconstrained() Constraints {
	return Constraints{MaxWidth: -1, MaxHeight: -1}
}

// Bounded returns constraints capping both dimensions.
func Bounded(width, height int) Constraints {
	return Constraints{MaxWidth: width, MaxHeight: height}
}

// Constrain clamps a size into the constraints.
func (c Constraints) Constrain(width, height int) (int, int) {
	w, h := width, height

	if c.MinWidth > 0 && w < c.MinWidth {
		w = c.MinWidth
	}
	if c.MaxWidth > 0 && w > c.MaxWidth {
		w = c.MaxWidth
	}
	if c.MinHeight > 0 && h < c.MinHeight {
		h = c.MinHeight
	}
	if c.MaxHeight > 0 && h > c.MaxHeight {
		h = c.MaxHeight
	}

	return w, h
}

// HasWidth reports whether a width limit is set.
func (c Constraints) HasWidth() bool {
	return c.MaxWidth > 0
}

// HasHeight reports whether a height limit is set.
func (c Constraints) HasHeight() bool {
	return c.MaxHeight > 0
}

// RenderContext carries the theme and the space a component is rendered into.
// Components never read global state, so the same tree and context always render the same text.
type RenderContext struct {
	Theme        Theme
	Constraints  Constraints
	ParentWidth  int
	ParentHeight int
}

// DefaultContext returns a render context with the default theme and no constraints.
func DefaultContext() RenderContext {
	return RenderContext{
		Theme:       DefaultTheme(),
		Constraints: Unconstrained(),
	}
}

// WithTheme returns a copy of the context using theme.
func (r RenderContext) WithTheme(theme Theme) RenderContext {
	r.Theme = theme
	return r
}

// WithConstraints returns a copy of the context using c.
func (r RenderContext) WithConstraints(c Constraints) RenderContext {
	r.Constraints = c
	return r
}

// WithParentSize returns a copy of the context with the parent box size set.
func (r RenderContext) WithParentSize(width, height int) RenderContext {
	r.ParentWidth = width
	r.ParentHeight = height
	return r
}

// ContextualRenderable is a component that can receive layout context.
type ContextualRenderable interface {
	ui.Renderable
	ViewWithContext(ctx RenderContext) string
}

// render draws child with ctx when it supports context, falling back to View.
func render(child ui.Renderable, ctx RenderContext) string {
	if contextual, ok := child.(ContextualRenderable); ok {
		return contextual.ViewWithContext(ctx)
	}
	return child.View()
}

// Alignment positions content inside a wider box.
type Alignment int

const (
	AlignStart Alignment = iota
	AlignCenter
	AlignEnd
)

// ToLipglossPosition converts Alignment to lipgloss.Position.
func (a Alignment) ToLipglossPosition() lipgloss.Position {
	switch a {
	case AlignCenter:
		return lipgloss.Center
	case AlignEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

func (a Alignment) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignEnd:
		return "end"
	default:
		return "start"
	}
}

// CrossAxisAlignment aligns children of a Stack along the cross axis.
type CrossAxisAlignment int

const (
	CrossStart CrossAxisAlignment = iota
	CrossCenter
	CrossEnd
)

// toLipglossPosition maps to lipgloss positions; Left/Top and Right/Bottom share values.
func (c CrossAxisAlignment) toLipglossPosition() lipgloss.Position {
	switch c {
	case CrossCenter:
		return lipgloss.Center
	case CrossEnd:
		return lipgloss.Right
	default:
		return lipgloss.Left
	}
}

func (c CrossAxisAlignment) String() string {
	switch c {
	case CrossCenter:
		return "center"
	case CrossEnd:
		return "end"
	default:
		return "start"
	}
}
