package moviecard

import (
	"github.com/alexisbeaulieu97/moviecard/internal/ui"
	"github.com/alexisbeaulieu97/moviecard/internal/ui/components"
)

// Info field labels, in display order.
const (
	LabelLength = "Length"
	LabelLang   = "Lang"
	LabelRating = "Rating"
	LabelReview = "Review"
)

const (
	infoGap      = 4
	infoPaddingY = 1
	infoPaddingX = 2
)

// InfoField is one label/value pair of the bottom metadata row.
type InfoField struct {
	Label string
	Value string
}

// InfoFields returns the four metadata pairs of data in display order.
func InfoFields(data MovieCardData) []InfoField {
	return []InfoField{
		{Label: LabelLength, Value: data.Length},
		{Label: LabelLang, Value: data.Language},
		{Label: LabelRating, Value: FormatRating(data.Rating)},
		{Label: LabelReview, Value: data.ReviewCount},
	}
}

// NewMovieInfoElement renders one label above its value.
func NewMovieInfoElement(label, value string) *components.Stack {
	return components.VStack(
		components.LabelText(label).WithRole(RoleInfoLabel),
		components.StrongLabelText(value).WithRole(RoleInfoValue),
	).
		WithGap(1).
		WithCrossAlign(components.CrossCenter).
		WithRole(RoleInfoElement)
}

// NewMovieInfo lays the four info elements out in a padded row.
func NewMovieInfo(data MovieCardData) *components.Container {
	fields := InfoFields(data)

	elements := make([]ui.Renderable, 0, len(fields))
	for _, field := range fields {
		elements = append(elements, NewMovieInfoElement(field.Label, field.Value))
	}

	return components.NewContainer(elements...).
		WithDirection(components.DirectionHorizontal).
		WithGap(infoGap).
		WithPadding(components.SymmetricSpacing(infoPaddingY, infoPaddingX))
}
