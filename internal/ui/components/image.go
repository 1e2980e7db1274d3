package components

import (
	"fmt"
	"math"
	"strings"

	"github.com/alexisbeaulieu97/moviecard/internal/ui"
)

// Image draws text art into a fixed cell box, scaling it to fill the box and
// trimming the overflow equally from both sides.
type Image struct {
	BaseComponent
	resource   string
	rows       [][]rune
	width      int
	height     int
	fillWidth  float64
	fillHeight float64
	border     BorderVariant
}

// NewImage creates an image for the named resource from its text art.
func NewImage(resource, art string) *Image {
	return &Image{
		BaseComponent: NewBaseComponent(),
		resource:      resource,
		rows:          splitArt(art),
		border:        BorderVariantNone,
	}
}

func splitArt(art string) [][]rune {
	art = strings.TrimRight(strings.ReplaceAll(art, "\r\n", "\n"), "\n")
	if art == "" {
		return nil
	}
	lines := strings.Split(art, "\n")
	rows := make([][]rune, len(lines))
	for i, line := range lines {
		rows[i] = []rune(strings.ReplaceAll(line, "\t", "    "))
	}
	return rows
}

// View renders the image at its fixed size.
func (i *Image) View() string {
	return i.ViewWithContext(DefaultContext())
}

// ViewWithContext renders the image. Fill fractions resolve against the parent size.
func (i *Image) ViewWithContext(ctx RenderContext) string {
	w, h := i.Size(ctx)

	innerW, innerH := w, h
	style := i.ComputeStyle(ctx.Theme)
	if i.border != BorderVariantNone {
		style = style.Border(borderFor(ctx.Theme, i.border))
		innerW -= 2
		innerH -= 2
	}
	if innerW <= 0 || innerH <= 0 {
		return ""
	}

	return style.Render(cropToFill(i.rows, innerW, innerH))
}

// Size returns the outer size in cells, border included, for the given context.
func (i *Image) Size(ctx RenderContext) (int, int) {
	w, h := i.width, i.height

	if i.fillWidth > 0 {
		w = fraction(i.fillWidth, ctx.ParentWidth, ctx.Constraints.MaxWidth)
	}
	if i.fillHeight > 0 {
		h = fraction(i.fillHeight, ctx.ParentHeight, ctx.Constraints.MaxHeight)
	}

	return ctx.Constraints.Constrain(w, h)
}

func fraction(f float64, parent, limit int) int {
	base := parent
	if base <= 0 {
		base = limit
	}
	if base <= 0 {
		return 0
	}
	return int(math.Round(f * float64(base)))
}

// cropToFill samples rows so that they cover a w×h box, centring the overflow.
func cropToFill(rows [][]rune, w, h int) string {
	artW := 0
	for _, row := range rows {
		artW = max(artW, len(row))
	}
	artH := len(rows)

	lines := make([]string, h)
	if artW == 0 || artH == 0 {
		blank := strings.Repeat(" ", w)
		for y := range lines {
			lines[y] = blank
		}
		return strings.Join(lines, "\n")
	}

	scale := math.Max(float64(w)/float64(artW), float64(h)/float64(artH))
	offX := (float64(artW)*scale - float64(w)) / 2
	offY := (float64(artH)*scale - float64(h)) / 2

	var b strings.Builder
	for y := 0; y < h; y++ {
		sy := clampIndex(int((float64(y)+offY+0.5)/scale), artH)
		row := rows[sy]

		b.Reset()
		for x := 0; x < w; x++ {
			sx := clampIndex(int((float64(x)+offX+0.5)/scale), artW)
			if sx < len(row) {
				b.WriteRune(row[sx])
			} else {
				b.WriteByte(' ')
			}
		}
		lines[y] = b.String()
	}

	return strings.Join(lines, "\n")
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// Describe reports the node identity for outlines.
func (i *Image) Describe() ui.Description {
	var attrs []string
	if i.fillWidth > 0 || i.fillHeight > 0 {
		attrs = append(attrs, fmt.Sprintf("fill=%.2fx%.2f", i.fillWidth, i.fillHeight))
	} else {
		attrs = append(attrs, fmt.Sprintf("size=%dx%d", i.width, i.height))
	}
	attrs = append(attrs, "crop")
	if i.border == BorderVariantRounded {
		attrs = append(attrs, "rounded")
	}
	return ui.Description{Kind: "image", Role: i.Role(), Text: i.resource, Attrs: attrs}
}

// WithSize sets a fixed outer size in cells.
func (i *Image) WithSize(width, height int) *Image {
	i.width, i.height = width, height
	i.fillWidth, i.fillHeight = 0, 0
	return i
}

// WithFill sizes the image as fractions of the parent box.
func (i *Image) WithFill(width, height float64) *Image {
	i.fillWidth, i.fillHeight = width, height
	return i
}

// WithBorder frames the image; BorderVariantRounded gives rounded corners.
func (i *Image) WithBorder(border BorderVariant) *Image {
	i.border = border
	return i
}

// WithRole tags the image with a semantic role.
func (i *Image) WithRole(role string) *Image {
	i.SetRole(role)
	return i
}
