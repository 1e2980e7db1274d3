package ui

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type leaf struct {
	role string
	text string
}

func (l leaf) View() string { return l.text }

func (l leaf) Describe() Description {
	return Description{Kind: "leaf", Role: l.role, Text: l.text}
}

type box struct {
	children []Renderable
}

func (b box) View() string { return "" }

func (b box) Children() []Renderable { return b.children }

func TestWalkVisitsParentsBeforeChildren(t *testing.T) {
	t.Parallel()

	tree := box{children: []Renderable{leaf{text: "a"}, box{children: []Renderable{leaf{text: "b"}}}, nil}}

	var depths []int
	Walk(tree, func(node Renderable, depth int) bool {
		depths = append(depths, depth)
		return true
	})

	assert.Equal(t, []int{0, 1, 1, 2}, depths)
}

func TestWalkCanPruneSubtrees(t *testing.T) {
	t.Parallel()

	tree := box{children: []Renderable{box{children: []Renderable{leaf{text: "hidden"}}}}}

	visited := 0
	Walk(tree, func(node Renderable, depth int) bool {
		visited++
		return depth == 0
	})

	assert.Equal(t, 2, visited)
}

func TestCollectByRole(t *testing.T) {
	t.Parallel()

	tree := box{children: []Renderable{
		leaf{role: "star", text: "1"},
		leaf{role: "title", text: "x"},
		box{children: []Renderable{leaf{role: "star", text: "2"}}},
	}}

	stars := Collect(tree, WithRole("star"))
	require.Len(t, stars, 2)
	assert.Equal(t, "1", stars[0].View())
	assert.Equal(t, "2", stars[1].View())
}

func TestOutline(t *testing.T) {
	t.Parallel()

	tree := box{children: []Renderable{leaf{role: "title", text: "Deadpool"}, leaf{text: "1:48"}}}

	assert.Equal(t, "node\n  leaf[title] \"Deadpool\"\n  leaf \"1:48\"\n", Outline(tree))
}

func TestDescriptionString(t *testing.T) {
	t.Parallel()

	d := Description{Kind: "image", Role: "cover", Text: "deadpool2016", Attrs: []string{"crop", "rounded"}}
	assert.Equal(t, "image[cover] \"deadpool2016\" crop rounded", d.String())
}
