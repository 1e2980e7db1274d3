// Package moviecard builds the movie information card view tree from a MovieCardData record.
package moviecard

import "github.com/alexisbeaulieu97/moviecard/internal/assets"

// MovieCardData is the immutable record rendered by a card.
// Rating is expected on a 0-10 scale but is not validated.
type MovieCardData struct {
	PosterImage string  `yaml:"poster" json:"poster" validate:"required,resource_id"`
	Title       string  `yaml:"title" json:"title" validate:"required"`
	Length      string  `yaml:"length" json:"length"`
	Language    string  `yaml:"language" json:"language"`
	Rating      float64 `yaml:"rating" json:"rating"`
	ReviewCount string  `yaml:"review_count" json:"review_count"`
}

// Sample returns the built-in example record.
func Sample() MovieCardData {
	return MovieCardData{
		PosterImage: assets.DeadpoolPoster,
		Title:       "Deadpool",
		Length:      "1:48",
		Language:    "Eng",
		Rating:      8.0,
		ReviewCount: "1.7k",
	}
}
