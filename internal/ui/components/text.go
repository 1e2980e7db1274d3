package components

import (
	"github.com/alexisbeaulieu97/moviecard/internal/ui"
)

// Text is a primitive component for rendering styled text content.
type Text struct {
	BaseComponent
	content string
}

// NewText creates a new text component with the given content.
func NewText(content string) *Text {
	return &Text{
		BaseComponent: NewBaseComponent(),
		content:       content,
	}
}

// View renders the text with its styling.
func (t *Text) View() string {
	return t.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the text with the given theme context.
func (t *Text) ViewWithContext(ctx RenderContext) string {
	return t.ComputeStyle(ctx.Theme).Render(t.content)
}

// Describe reports the node identity for outlines.
func (t *Text) Describe() ui.Description {
	return ui.Description{Kind: "text", Role: t.Role(), Text: t.content}
}

// Content returns the text content.
func (t *Text) Content() string {
	return t.content
}

// WithAppliers applies theme-based style modifiers.
func (t *Text) WithAppliers(appliers ...StyleFunc) *Text {
	t.AddAppliers(appliers...)
	return t
}

// WithRole tags the text with a semantic role.
func (t *Text) WithRole(role string) *Text {
	t.SetRole(role)
	return t
}

// TitleText creates title text using theme typography.
func TitleText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantTitle))
}

// LabelText creates light label text.
func LabelText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantLabel))
}

// StrongLabelText creates bold label text.
func StrongLabelText(content string) *Text {
	return NewText(content).WithAppliers(Typography(TypographyVariantLabelStrong))
}
