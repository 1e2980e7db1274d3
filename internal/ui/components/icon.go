package components

import (
	"github.com/alexisbeaulieu97/moviecard/internal/ui"
)

// Icon is a single glyph tinted by its variant.
type Icon struct {
	BaseComponent
	resource string
	glyph    string
	variant  IconVariant
}

// NewIcon creates a filled icon for the named resource.
func NewIcon(resource, glyph string) *Icon {
	return &Icon{
		BaseComponent: NewBaseComponent(),
		resource:      resource,
		glyph:         glyph,
		variant:       IconVariantFilled,
	}
}

// View renders the icon with the default theme.
func (i *Icon) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the icon tinted for its variant.
func (i *Icon) ViewWithContext(ctx RenderContext) string {
	style := i.ComputeStyle(ctx.Theme)
	if strategy := ctx.Theme.Variants.Get(i.variant); strategy != nil {
		style = strategy.Apply(style, ctx.Theme)
	}
	return style.Render(i.glyph)
}

// Describe reports the node identity for outlines.
func (i *Icon) Describe() ui.Description {
	state := "filled"
	if i.variant == IconVariantUnfilled {
		state = "unfilled"
	}
	return ui.Description{Kind: "icon", Role: i.Role(), Text: i.resource, Attrs: []string{state}}
}

// Filled reports whether the icon uses the filled tint.
func (i *Icon) Filled() bool {
	return i.variant == IconVariantFilled
}

// WithVariant sets the icon tint variant.
func (i *Icon) WithVariant(variant IconVariant) *Icon {
	i.variant = variant
	return i
}

// WithRole tags the icon with a semantic role.
func (i *Icon) WithRole(role string) *Icon {
	i.SetRole(role)
	return i
}
