package moviecard

import (
	"github.com/alexisbeaulieu97/moviecard/internal/assets"
	"github.com/alexisbeaulieu97/moviecard/internal/ui/components"
)

// coverFill is the share of the card height taken by the cover image.
const coverFill = 0.7

// NewCoverImage renders the full-width poster with rounded corners.
func NewCoverImage(poster assets.Asset) *components.Image {
	return components.NewImage(poster.ID, poster.Art).
		WithFill(1, coverFill).
		WithBorder(components.BorderVariantRounded).
		WithRole(RoleCoverImage)
}
