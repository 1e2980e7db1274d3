package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/moviecard/internal/moviecard"
	"github.com/alexisbeaulieu97/moviecard/internal/ui"
	"github.com/alexisbeaulieu97/moviecard/internal/ui/components"
)

type renderOptions struct {
	width      int
	height     int
	outline    bool
	jsonOutput bool
}

func newRenderCmd(flags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the movie card once",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, flags, opts)
		},
	}

	addRenderFlags(cmd, opts)
	return cmd
}

func addRenderFlags(cmd *cobra.Command, opts *renderOptions) {
	cmd.Flags().IntVar(&opts.width, "width", 0, "Card width in cells (defaults to the terminal width)")
	cmd.Flags().IntVar(&opts.height, "height", moviecard.DefaultHeight, "Card height in rows")
	cmd.Flags().BoolVar(&opts.outline, "outline", false, "Print the view tree outline instead of the card")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print the movie record as JSON")
	cmd.MarkFlagsMutuallyExclusive("outline", "json")
}

func runRender(cmd *cobra.Command, flags *rootFlags, opts *renderOptions) error {
	if opts.width < 0 || opts.height < 0 {
		return newCommandError("render", "validating size", errors.New("width and height must not be negative"), "Pass a positive --width and --height, or omit them.")
	}

	card, theme, err := flags.loadCard("render")
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	switch {
	case opts.jsonOutput:
		return renderJSON(out, card.Data())
	case opts.outline:
		_, err := fmt.Fprint(out, ui.Outline(card))
		return err
	}

	width := opts.width
	if width == 0 {
		width = terminalWidth(out, moviecard.DefaultWidth)
	}
	height := opts.height
	if height == 0 {
		height = moviecard.DefaultHeight
	}

	flags.log.WithFields(map[string]any{"width": width, "height": height}).Debug("rendering card")

	ctx := components.DefaultContext().WithTheme(theme).WithParentSize(width, height)
	_, err = fmt.Fprintln(out, card.ViewWithContext(ctx))
	return err
}

type movieJSONPayload struct {
	Poster      string      `json:"poster"`
	Title       string      `json:"title"`
	Length      string      `json:"length"`
	Language    string      `json:"language"`
	Rating      ratingValue `json:"rating"`
	ReviewCount string      `json:"review_count"`
	Stars       int         `json:"stars"`
}

// ratingValue encodes finite ratings as JSON numbers and NaN or infinities as their display text.
type ratingValue float64

func (r ratingValue) MarshalJSON() ([]byte, error) {
	f := float64(r)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return json.Marshal(moviecard.FormatRating(f))
	}
	return json.Marshal(f)
}

func renderJSON(out io.Writer, data moviecard.MovieCardData) error {
	payload := movieJSONPayload{
		Poster:      data.PosterImage,
		Title:       data.Title,
		Length:      data.Length,
		Language:    data.Language,
		Rating:      ratingValue(data.Rating),
		ReviewCount: data.ReviewCount,
		Stars:       moviecard.StarsFilled(data.Rating),
	}

	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	return encoder.Encode(payload)
}
