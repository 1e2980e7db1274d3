package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBody TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantLabel
	TypographyVariantLabelStrong
)

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantRounded
)

type IconVariant int

const (
	IconVariantFilled IconVariant = iota
	IconVariantUnfilled
)

// ColourSet is a semantic colour with the content colour drawn on top of it.
type ColourSet struct {
	Base   lipgloss.AdaptiveColor
	OnBase lipgloss.AdaptiveColor
}

// Palette describes semantic colour slots used by components.
type Palette struct {
	Surface   ColourSet
	Secondary ColourSet
	Accent    ColourSet
	Neutral   ColourSet
	Fade      ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
}

// TypographyScale contains the text presets used by the card.
type TypographyScale struct {
	Body        lipgloss.Style
	Title       lipgloss.Style
	Label       lipgloss.Style
	LabelStrong lipgloss.Style
}

// GradientStop pins a colour at a relative vertical offset in [0,1].
type GradientStop struct {
	Offset float64
	Colour lipgloss.AdaptiveColor
}

// VariantRegistry maps component variants to their styling strategies.
type VariantRegistry struct {
	strategies map[any]StyleStrategy
}

// NewVariantRegistry creates an empty variant registry.
func NewVariantRegistry() *VariantRegistry {
	return &VariantRegistry{strategies: make(map[any]StyleStrategy)}
}

// Register adds a variant-to-strategy mapping.
func (vr *VariantRegistry) Register(variant any, strategy StyleStrategy) {
	vr.strategies[variant] = strategy
}

// Get retrieves the strategy for a variant, or nil if none is registered.
func (vr *VariantRegistry) Get(variant any) StyleStrategy {
	if vr == nil {
		return nil
	}
	return vr.strategies[variant]
}

// Theme is an immutable styling theme. Derive variants by copying, never by mutation.
type Theme struct {
	Name       string
	Dark       bool
	Palette    Palette
	Borders    BorderSet
	Typography TypographyScale
	Background []GradientStop
	Variants   *VariantRegistry
}

// Resolve picks the side of an adaptive colour this theme paints with.
func (t Theme) Resolve(c lipgloss.AdaptiveColor) string {
	if t.Dark {
		return c.Dark
	}
	return c.Light
}

// DefaultTheme returns the adaptive card theme. Text colours follow the terminal background;
// the gradient is painted with the light side.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Surface: ColourSet{
			Base:   ac("#fffbfe", "#1c1b1f"),
			OnBase: ac("#1c1b1f", "#e6e1e5"),
		},
		Secondary: ColourSet{
			Base:   ac("#625b71", "#ccc2dc"),
			OnBase: ac("#ffffff", "#332d41"),
		},
		Accent: ColourSet{
			Base:   ac("#e0a800", "#f5c518"),
			OnBase: ac("#1c1b1f", "#1c1b1f"),
		},
		Neutral: ColourSet{
			Base:   ac("#444444", "#444444"),
			OnBase: ac("#f4f4f4", "#f4f4f4"),
		},
		Fade: ColourSet{
			Base:   ac("#bebebe", "#bebebe"),
			OnBase: ac("#1c1b1f", "#1c1b1f"),
		},
	}

	return newTheme("default", false, palette)
}

// LightTheme pins every colour to its light variant.
func LightTheme() Theme {
	return newTheme("light", false, pinPalette(DefaultTheme().Palette, false))
}

// DarkTheme pins every colour to its dark variant.
func DarkTheme() Theme {
	return newTheme("dark", true, pinPalette(DefaultTheme().Palette, true))
}

// ThemeByName returns one of the built-in themes. An empty name selects the default theme.
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return DefaultTheme(), nil
	case "light":
		return LightTheme(), nil
	case "dark":
		return DarkTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q (want default, light or dark)", name)
	}
}

func newTheme(name string, dark bool, palette Palette) Theme {
	variants := NewVariantRegistry()
	registerIconVariants(variants)

	return Theme{
		Name:    name,
		Dark:    dark,
		Palette: palette,
		Borders: BorderSet{
			None:    lipgloss.Border{},
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
		},
		Typography: defaultTypography(palette),
		Background: []GradientStop{
			{Offset: 0.8, Colour: palette.Surface.Base},
			{Offset: 0.9, Colour: palette.Fade.Base},
		},
		Variants: variants,
	}
}

func pinPalette(p Palette, dark bool) Palette {
	pin := func(c lipgloss.AdaptiveColor) lipgloss.AdaptiveColor {
		if dark {
			return lipgloss.AdaptiveColor{Light: c.Dark, Dark: c.Dark}
		}
		return lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Light}
	}
	set := func(cs ColourSet) ColourSet {
		return ColourSet{Base: pin(cs.Base), OnBase: pin(cs.OnBase)}
	}

	return Palette{
		Surface:   set(p.Surface),
		Secondary: set(p.Secondary),
		Accent:    set(p.Accent),
		Neutral:   set(p.Neutral),
		Fade:      set(p.Fade),
	}
}

func registerIconVariants(registry *VariantRegistry) {
	registry.Register(IconVariantFilled, NewCompositeStrategy(Foreground(PaletteAccent)))
	registry.Register(IconVariantUnfilled, NewCompositeStrategy(Foreground(PaletteNeutral)))
}

func defaultTypography(p Palette) TypographyScale {
	body := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Body:        body,
		Title:       body.Bold(true).Foreground(p.Secondary.Base),
		Label:       body.Faint(true).Foreground(p.Secondary.Base),
		LabelStrong: body.Bold(true).Foreground(p.Secondary.Base),
	}
}

// borderFor returns the border for the given variant.
func borderFor(theme Theme, variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return theme.Borders.Normal
	case BorderVariantRounded:
		return theme.Borders.Rounded
	default:
		return theme.Borders.None
	}
}

// typographyStyle picks a preset from the theme typography scale.
func typographyStyle(theme Theme, variant TypographyVariant) lipgloss.Style {
	typo := theme.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantLabel:
		return typo.Label
	case TypographyVariantLabelStrong:
		return typo.LabelStrong
	default:
		return typo.Body
	}
}

// PaletteSlot selects a semantic colour set from a Palette.
type PaletteSlot func(Palette) ColourSet

var (
	PaletteAccent  PaletteSlot = func(p Palette) ColourSet { return p.Accent }
	PaletteNeutral PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

// Foreground applies a semantic foreground colour without changing the background.
//
//	star := NewText("★").WithAppliers(Foreground(PaletteAccent))
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Foreground(slot(theme.Palette).Base)
	}
}

// Typography applies a typography preset.
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(typographyStyle(theme, variant))
	}
}
