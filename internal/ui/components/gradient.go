package components

import (
	"strings"

	"github.com/alexisbeaulieu97/moviecard/internal/ui"
	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"
)

// Gradient paints a vertical colour gradient behind its child, filling the parent box.
// The stops come from the theme.
type Gradient struct {
	BaseComponent
	child ui.Renderable
}

// NewGradient wraps child with the theme's background gradient.
func NewGradient(child ui.Renderable) *Gradient {
	return &Gradient{
		BaseComponent: NewBaseComponent(),
		child:         child,
	}
}

// View renders the gradient with the default theme and the child's natural size.
func (g *Gradient) View() string {
	return g.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the child and paints every row of the parent box.
func (g *Gradient) ViewWithContext(ctx RenderContext) string {
	var content string
	if g.child != nil {
		content = render(g.child, ctx)
	}
	lines := strings.Split(content, "\n")

	width := ctx.ParentWidth
	if width <= 0 {
		width = lipgloss.Width(content)
	}
	height := ctx.ParentHeight
	if height <= 0 {
		height = len(lines)
	}

	rows := ShadeRows(ctx.Theme, ctx.Theme.Background, height)

	clip := lipgloss.NewStyle().MaxWidth(width)
	base := g.ComputeStyle(ctx.Theme)
	painted := make([]string, height)
	for y := 0; y < height; y++ {
		line := ""
		if y < len(lines) {
			line = clip.Render(lines[y])
		}
		if pad := width - lipgloss.Width(line); pad > 0 {
			line += strings.Repeat(" ", pad)
		}
		style := base
		if rows[y] != "" {
			style = style.Background(lipgloss.Color(rows[y]))
		}
		painted[y] = style.Render(line)
	}

	return strings.Join(painted, "\n")
}

// ShadeRows returns the hex background colour of each of n rows, sampled at row centres.
// Rows above the first stop take its colour and rows below the last stop take the last colour.
func ShadeRows(theme Theme, stops []GradientStop, n int) []string {
	rows := make([]string, n)
	if len(stops) == 0 || n <= 0 {
		return rows
	}

	colours := make([]colorful.Color, len(stops))
	for i, stop := range stops {
		c, err := colorful.Hex(theme.Resolve(stop.Colour))
		if err != nil {
			return rows
		}
		colours[i] = c
	}

	for y := range rows {
		t := (float64(y) + 0.5) / float64(n)
		rows[y] = colourAt(stops, colours, t).Hex()
	}
	return rows
}

func colourAt(stops []GradientStop, colours []colorful.Color, t float64) colorful.Color {
	if t <= stops[0].Offset {
		return colours[0]
	}
	for i := 1; i < len(stops); i++ {
		if t <= stops[i].Offset {
			span := stops[i].Offset - stops[i-1].Offset
			if span <= 0 {
				return colours[i]
			}
			return colours[i-1].BlendRgb(colours[i], (t-stops[i-1].Offset)/span).Clamped()
		}
	}
	return colours[len(colours)-1]
}

// Describe reports the node identity for outlines.
func (g *Gradient) Describe() ui.Description {
	return ui.Description{Kind: "gradient"}
}

// Children returns the painted child.
func (g *Gradient) Children() []ui.Renderable {
	if g.child == nil {
		return nil
	}
	return []ui.Renderable{g.child}
}
