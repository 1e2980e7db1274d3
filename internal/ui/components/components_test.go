package components

import (
	"strings"
	"testing"

	"github.com/alexisbeaulieu97/moviecard/internal/ui"
	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCropToFillTrimsOverflowEvenly(t *testing.T) {
	t.Parallel()

	got := cropToFill(splitArt("abcdef"), 4, 1)
	require.Equal(t, "bcde", got)
}

func TestCropToFillScalesSmallArtUp(t *testing.T) {
	t.Parallel()

	got := cropToFill(splitArt("ab"), 4, 2)
	require.Equal(t, "aabb\naabb", got)
}

func TestCropToFillBlankArt(t *testing.T) {
	t.Parallel()

	got := cropToFill(nil, 3, 2)
	require.Equal(t, "   \n   ", got)
}

func TestImageRoundedBorder(t *testing.T) {
	t.Parallel()

	view := NewImage("poster", "ab").WithSize(6, 3).WithBorder(BorderVariantRounded).View()
	lines := strings.Split(view, "\n")

	require.Len(t, lines, 3)
	assert.True(t, strings.HasPrefix(lines[0], "╭"))
	assert.Equal(t, "│aabb│", lines[1])
	assert.Equal(t, 6, lipgloss.Width(view))
}

func TestImageFillResolvesAgainstParent(t *testing.T) {
	t.Parallel()

	img := NewImage("poster", "x").WithFill(1, 0.5)
	ctx := DefaultContext().WithParentSize(10, 8)

	w, h := img.Size(ctx)
	assert.Equal(t, 10, w)
	assert.Equal(t, 4, h)

	ctx = ctx.WithConstraints(Bounded(10, 3))
	_, h = img.Size(ctx)
	assert.Equal(t, 3, h)
}

func TestImageTooSmallForBorderRendersNothing(t *testing.T) {
	t.Parallel()

	img := NewImage("poster", "x").WithSize(2, 2).WithBorder(BorderVariantRounded)
	require.Empty(t, img.View())
}

func TestStackGaps(t *testing.T) {
	t.Parallel()

	h := HStack(NewText("a"), NewText("b")).WithGap(2).View()
	assert.Equal(t, "a  b", h)

	v := VStack(NewText("a"), NewText("b")).WithGap(1).View()
	lines := strings.Split(v, "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "a", lines[0])
	assert.Equal(t, "", strings.TrimSpace(lines[1]))
	assert.Equal(t, "b", lines[2])
}

func TestStackSkipsNilChildren(t *testing.T) {
	t.Parallel()

	view := HStack(nil, NewText("a"), nil).View()
	assert.Equal(t, "a", view)
}

func TestHorizontalStackReservesGaps(t *testing.T) {
	t.Parallel()

	s := HStack(NewText("a"), NewText("b"), NewText("c")).WithGap(2)
	assert.Equal(t, 8, s.deriveChildConstraints(Bounded(12, 0)).MaxWidth)
	assert.False(t, s.deriveChildConstraints(Unconstrained()).HasWidth())

	// A long first child is not squeezed to an equal share of the row.
	row := HStack(NewText("Deadpool"), NewText("x")).WithGap(1)
	assert.Equal(t, "Deadpool x", row.ViewWithContext(DefaultContext().WithConstraints(Bounded(12, 0))))
}

func TestAlignPlacesChildInWidth(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext().WithConstraints(Bounded(6, 0))

	assert.Equal(t, "  ab  ", NewAlign(NewText("ab"), AlignCenter).ViewWithContext(ctx))
	assert.Equal(t, "ab    ", NewAlign(NewText("ab"), AlignStart).ViewWithContext(ctx))
	assert.Equal(t, "    ab", NewAlign(NewText("ab"), AlignEnd).ViewWithContext(ctx))
}

func TestContainerPadding(t *testing.T) {
	t.Parallel()

	view := NewContainer(NewText("x")).WithPadding(CustomSpacing(1, 0, 0, 2)).View()
	lines := strings.Split(view, "\n")

	require.Len(t, lines, 2)
	assert.Equal(t, "  x", lines[1])
}

func TestContainerPaddingShrinksConstraints(t *testing.T) {
	t.Parallel()

	c := NewContainer(NewText("a"), NewText("b"), NewText("c")).WithPadding(SymmetricSpacing(1, 0))
	view := c.ViewWithContext(DefaultContext().WithConstraints(Bounded(0, 4)))
	lines := strings.Split(view, "\n")

	require.Len(t, lines, 4)
	assert.Equal(t, []string{"", "a", "b", ""}, []string{
		strings.TrimSpace(lines[0]), lines[1], lines[2], strings.TrimSpace(lines[3]),
	})
	assert.Equal(t, 5, lipgloss.Height(c.View()))
}

func TestIconVariants(t *testing.T) {
	t.Parallel()

	filled := NewIcon("star", "★")
	unfilled := NewIcon("star", "★").WithVariant(IconVariantUnfilled)

	assert.True(t, filled.Filled())
	assert.False(t, unfilled.Filled())
	assert.Equal(t, "★", filled.View())
	assert.Equal(t, []string{"unfilled"}, unfilled.Describe().Attrs)
}

func TestShadeRowsFollowStops(t *testing.T) {
	t.Parallel()

	theme := LightTheme()
	rows := ShadeRows(theme, theme.Background, 10)

	require.Len(t, rows, 10)
	for y := 0; y < 8; y++ {
		assert.Equal(t, "#fffbfe", rows[y], "row %d", y)
	}
	assert.NotEqual(t, "#fffbfe", rows[8])
	assert.NotEqual(t, "#bebebe", rows[8])
	assert.Equal(t, "#bebebe", rows[9])
}

func TestShadeRowsWithoutStops(t *testing.T) {
	t.Parallel()

	rows := ShadeRows(DefaultTheme(), nil, 3)
	assert.Equal(t, []string{"", "", ""}, rows)
}

func TestGradientFillsParentBox(t *testing.T) {
	t.Parallel()

	ctx := DefaultContext().WithParentSize(5, 4)
	view := NewGradient(NewText("abcdefgh")).ViewWithContext(ctx)
	lines := strings.Split(view, "\n")

	require.Len(t, lines, 4)
	for _, line := range lines {
		assert.Equal(t, 5, lipgloss.Width(line))
	}
	assert.Equal(t, "abcde", lines[0])
}

func TestThemeByName(t *testing.T) {
	t.Parallel()

	for name, dark := range map[string]bool{"": false, "default": false, "Light": false, "dark": true} {
		theme, err := ThemeByName(name)
		require.NoError(t, err, name)
		assert.Equal(t, dark, theme.Dark, name)
		assert.NotNil(t, theme.Variants)
	}

	_, err := ThemeByName("sepia")
	require.Error(t, err)
}

func TestDarkThemePinsColours(t *testing.T) {
	t.Parallel()

	theme := DarkTheme()
	assert.Equal(t, "#1c1b1f", theme.Resolve(theme.Palette.Surface.Base))
	assert.Equal(t, theme.Palette.Surface.Base.Dark, theme.Palette.Surface.Base.Light)
}

func TestOutlineOfComposedTree(t *testing.T) {
	t.Parallel()

	tree := VStack(
		TitleText("Deadpool").WithRole("title"),
		HStack(NewIcon("star", "★"), NewIcon("star", "★").WithVariant(IconVariantUnfilled)).WithGap(1),
	).WithCrossAlign(CrossCenter)

	want := strings.Join([]string{
		"vstack align=center",
		"  text[title] \"Deadpool\"",
		"  hstack gap=1",
		"    icon \"star\" filled",
		"    icon \"star\" unfilled",
		"",
	}, "\n")

	assert.Equal(t, want, ui.Outline(tree))
}

func TestRenderIsDeterministic(t *testing.T) {
	t.Parallel()

	tree := NewGradient(VStack(
		NewImage("poster", "/\\\n\\/").WithSize(8, 4).WithBorder(BorderVariantRounded),
		NewAlign(StrongLabelText("8.0"), AlignCenter),
	))
	ctx := DefaultContext().WithParentSize(20, 10)

	first := tree.ViewWithContext(ctx)
	for i := 0; i < 3; i++ {
		require.Equal(t, first, tree.ViewWithContext(ctx))
	}
}
