package moviecard

import (
	"github.com/alexisbeaulieu97/moviecard/internal/assets"
	"github.com/alexisbeaulieu97/moviecard/internal/logger"
	"github.com/alexisbeaulieu97/moviecard/internal/ui"
	"github.com/alexisbeaulieu97/moviecard/internal/ui/components"
)

const (
	tinyImageWidth  = 12
	tinyImageHeight = 8
	titleRowGap     = 2
	titleRowIndent  = 3
)

// NewStarRating renders MaxStars icons, the first stars of them filled.
func NewStarRating(stars int, star assets.Asset) *components.Stack {
	icons := make([]ui.Renderable, 0, MaxStars)
	for i := 1; i <= MaxStars; i++ {
		icon := components.NewIcon(star.ID, star.Glyph()).WithRole(RoleStar)
		if i > stars {
			icon.WithVariant(components.IconVariantUnfilled)
		}
		icons = append(icons, icon)
	}

	return components.HStack(icons...).WithGap(1).WithRole(RoleStarRow)
}

// NewTinyImage renders the small poster thumbnail.
func NewTinyImage(poster assets.Asset) *components.Image {
	return components.NewImage(poster.ID, poster.Art).
		WithSize(tinyImageWidth, tinyImageHeight).
		WithBorder(components.BorderVariantRounded).
		WithRole(RoleTinyImage)
}

// NewMovieTitle stacks the title above the star row.
func NewMovieTitle(title string, stars int, star assets.Asset) *components.Stack {
	return components.VStack(
		components.TitleText(title).WithRole(RoleTitle),
		NewStarRating(stars, star),
	).WithGap(1).WithRole(RoleMovieTitle)
}

// NewTitleRow places the thumbnail beside the title and stars, bottom aligned.
func NewTitleRow(data MovieCardData, poster, star assets.Asset, log *logger.Logger) *components.Container {
	stars := StarsFilled(data.Rating)
	log.Component(RoleTitleRow).WithFields(map[string]any{"stars": stars}).Debug("computed star rating")

	return components.NewContainer(
		NewTinyImage(poster),
		NewMovieTitle(data.Title, stars, star),
	).
		WithDirection(components.DirectionHorizontal).
		WithGap(titleRowGap).
		WithCrossAlign(components.CrossEnd).
		WithPadding(components.CustomSpacing(1, 0, 0, titleRowIndent))
}
