// Package ui defines the node contract shared by every component in the view tree.
package ui

import (
	"strings"
)

// Renderable is anything that can draw itself into terminal text.
type Renderable interface {
	View() string
}

// Parent is a Renderable that owns child nodes.
type Parent interface {
	Renderable
	Children() []Renderable
}

// Description is the inspectable identity of a node.
type Description struct {
	Kind  string
	Role  string
	Text  string
	Attrs []string
}

// Describer is implemented by nodes that can report their identity for outlines.
type Describer interface {
	Describe() Description
}

// VisitFunc is called for every node reached by Walk. Returning false skips the node's children.
type VisitFunc func(node Renderable, depth int) bool

// Walk visits root and its descendants depth-first, parents before children.
func Walk(root Renderable, visit VisitFunc) {
	walk(root, 0, visit)
}

func walk(node Renderable, depth int, visit VisitFunc) {
	if node == nil {
		return
	}
	if !visit(node, depth) {
		return
	}
	parent, ok := node.(Parent)
	if !ok {
		return
	}
	for _, child := range parent.Children() {
		walk(child, depth+1, visit)
	}
}

// Collect returns every node under root (root included) matching keep, in Walk order.
func Collect(root Renderable, keep func(Renderable) bool) []Renderable {
	var out []Renderable
	Walk(root, func(node Renderable, _ int) bool {
		if keep(node) {
			out = append(out, node)
		}
		return true
	})
	return out
}

// WithRole matches nodes whose Description carries the given role.
func WithRole(role string) func(Renderable) bool {
	return func(node Renderable) bool {
		d, ok := node.(Describer)
		return ok && d.Describe().Role == role
	}
}

// Outline renders a deterministic, indented description of the tree rooted at root.
// Nodes that do not implement Describer are listed by a placeholder kind.
func Outline(root Renderable) string {
	var b strings.Builder
	Walk(root, func(node Renderable, depth int) bool {
		b.WriteString(strings.Repeat("  ", depth))
		b.WriteString(describe(node).String())
		b.WriteByte('\n')
		return true
	})
	return b.String()
}

func describe(node Renderable) Description {
	if d, ok := node.(Describer); ok {
		return d.Describe()
	}
	return Description{Kind: "node"}
}

// String formats the description as a single outline line: kind[role] "text" attrs...
func (d Description) String() string {
	var b strings.Builder
	b.WriteString(d.Kind)
	if d.Role != "" {
		b.WriteString("[" + d.Role + "]")
	}
	if d.Text != "" {
		b.WriteString(" \"" + d.Text + "\"")
	}
	for _, attr := range d.Attrs {
		b.WriteString(" " + attr)
	}
	return b.String()
}
