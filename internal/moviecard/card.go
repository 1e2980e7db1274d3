package moviecard

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/moviecard/internal/assets"
	"github.com/alexisbeaulieu97/moviecard/internal/logger"
	"github.com/alexisbeaulieu97/moviecard/internal/ui"
	"github.com/alexisbeaulieu97/moviecard/internal/ui/components"
)

// Roles tag the nodes of a card so they can be found with ui.Collect.
const (
	RoleCoverImage  = "cover_image"
	RoleDetails     = "details"
	RoleTitleRow    = "title_row"
	RoleTinyImage   = "tiny_image"
	RoleMovieTitle  = "movie_title"
	RoleTitle       = "title"
	RoleStarRow     = "star_row"
	RoleStar        = "star"
	RoleMovieInfo   = "movie_info"
	RoleInfoElement = "info_element"
	RoleInfoLabel   = "info_label"
	RoleInfoValue   = "info_value"
)

// Size used when the render context carries no size.
const (
	DefaultWidth  = 60
	DefaultHeight = 40
)

// minCoverRows keeps at least one row of poster inside the rounded frame.
const minCoverRows = 3

// MovieCard is the composed card: cover image, title row and info row over a gradient.
type MovieCard struct {
	data MovieCardData
	body *cardBody
	root *components.Gradient
}

// Option configures a MovieCard.
type Option func(*options)

type options struct {
	log *logger.Logger
}

// WithLogger routes the card's debug trace to log.
func WithLogger(log *logger.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}

// New builds the card view tree for data. It fails only when the poster resource is unknown.
func New(data MovieCardData, opts ...Option) (*MovieCard, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	poster, err := assets.Lookup(data.PosterImage)
	if err != nil {
		return nil, err
	}
	star, err := assets.Lookup(assets.StarRate)
	if err != nil {
		return nil, err
	}

	body := &cardBody{
		cover: NewCoverImage(poster),
		details: components.VStack(
			components.NewAlign(NewTitleRow(data, poster, star, o.log), components.AlignStart).WithRole(RoleTitleRow),
			components.NewAlign(NewMovieInfo(data), components.AlignCenter).WithRole(RoleMovieInfo),
		).WithRole(RoleDetails),
	}

	return &MovieCard{
		data: data,
		body: body,
		root: components.NewGradient(body),
	}, nil
}

// Data returns the record the card was built from.
func (c *MovieCard) Data() MovieCardData {
	return c.data
}

// View renders the card at the default size with the default theme.
func (c *MovieCard) View() string {
	return c.ViewWithContext(components.DefaultContext())
}

// ViewWithContext renders the card filling the parent box, or the constraints when no parent size is set.
// A box smaller than MinSize is grown to it, so every field stays visible.
func (c *MovieCard) ViewWithContext(ctx components.RenderContext) string {
	w, h := c.Size(ctx)
	inner := ctx.WithParentSize(w, h).WithConstraints(components.Bounded(w, h))
	return c.root.ViewWithContext(inner)
}

// Size returns the card size in cells for ctx, never smaller than MinSize.
func (c *MovieCard) Size(ctx components.RenderContext) (int, int) {
	w := firstPositive(ctx.ParentWidth, ctx.Constraints.MaxWidth, DefaultWidth)
	h := firstPositive(ctx.ParentHeight, ctx.Constraints.MaxHeight, DefaultHeight)
	minW, minH := c.MinSize(ctx)
	return max(w, minW), max(h, minH)
}

// MinSize returns the smallest box showing the whole title row and info row above
// minCoverRows of poster.
func (c *MovieCard) MinSize(ctx components.RenderContext) (int, int) {
	return c.body.minSize(ctx)
}

func firstPositive(values ...int) int {
	for _, v := range values {
		if v > 0 {
			return v
		}
	}
	return 0
}

// Describe reports the node identity for outlines.
func (c *MovieCard) Describe() ui.Description {
	return ui.Description{Kind: "movie_card", Text: c.data.Title}
}

// Children returns the gradient background holding the card body.
func (c *MovieCard) Children() []ui.Renderable {
	return []ui.Renderable{c.root}
}

// cardBody stacks the cover above the details. The cover gets what the details leave,
// capped at coverFill of the card height.
type cardBody struct {
	cover   *components.Image
	details *components.Stack
}

func (b *cardBody) View() string {
	return b.ViewWithContext(components.DefaultContext())
}

func (b *cardBody) ViewWithContext(ctx components.RenderContext) string {
	w := firstPositive(ctx.ParentWidth, DefaultWidth)
	h := firstPositive(ctx.ParentHeight, DefaultHeight)

	details := b.details.ViewWithContext(ctx.WithConstraints(components.Bounded(w, 0)))

	available := max(h-lipgloss.Height(details), minCoverRows)
	cover := b.cover.ViewWithContext(ctx.WithConstraints(components.Bounded(w, available)))
	if cover == "" {
		return details
	}

	return lipgloss.JoinVertical(lipgloss.Left, cover, details)
}

// minSize measures the details at their natural width, with no box to align in.
func (b *cardBody) minSize(ctx components.RenderContext) (int, int) {
	natural := b.details.ViewWithContext(ctx.WithParentSize(0, 0).WithConstraints(components.Unconstrained()))
	return lipgloss.Width(natural), lipgloss.Height(natural) + minCoverRows
}

func (b *cardBody) Describe() ui.Description {
	return ui.Description{Kind: "card_body"}
}

func (b *cardBody) Children() []ui.Renderable {
	return []ui.Renderable{b.cover, b.details}
}
