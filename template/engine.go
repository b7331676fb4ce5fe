package template

import (
	"strings"

	"github.com/randalmurphal/stache/syntax"
	"github.com/randalmurphal/stache/value"
)

// Engine renders parsed templates. It holds no state; a single Engine may
// be shared freely across goroutines.
type Engine struct{}

// NewEngine creates a new template engine.
func NewEngine() *Engine {
	return &Engine{}
}

// Render walks the node tree against root and returns the expanded text.
// It never fails: unresolvable lookups and type mismatches render as
// empty output.
func (e *Engine) Render(nodes []syntax.Node, root value.Value) string {
	var b strings.Builder
	e.renderNodes(&b, nodes, contextStack{{val: root}})
	return b.String()
}

// RenderTemplate parses and renders in one call. The only possible errors
// are the parse errors of package syntax.
func (e *Engine) RenderTemplate(template string, ctx value.Value) (string, error) {
	nodes, err := syntax.Parse(template)
	if err != nil {
		return "", err
	}
	return e.Render(nodes, ctx), nil
}

func (e *Engine) renderNodes(b *strings.Builder, nodes []syntax.Node, s contextStack) {
	for _, n := range nodes {
		switch n := n.(type) {
		case syntax.Literal:
			b.WriteString(n.Text)

		case syntax.Interpolation:
			b.WriteString(s.lookup(n.Path).Text())

		case syntax.Section:
			e.renderSection(b, n, s)

		case syntax.InvertedSection:
			// No frame is pushed: the body sees the enclosing scope.
			if !s.lookup(n.Name).Truthy() {
				e.renderNodes(b, n.Body, s)
			}

		case syntax.EachSection:
			v := s.lookup(n.Path)
			if v.Kind() == value.KindList || v.Kind() == value.KindMap {
				e.renderIteration(b, n.Body, s, v)
			}

		case syntax.Comment:
			// No output.
		}
	}
}

func (e *Engine) renderSection(b *strings.Builder, n syntax.Section, s contextStack) {
	v := s.lookup(n.Name)
	switch v.Kind() {
	case value.KindList, value.KindMap:
		e.renderIteration(b, n.Body, s, v)
	default:
		// Truthy scalars render once with the value itself as the new
		// innermost frame. Scalar frames never match name lookups, so
		// {{#name}}Hello {{name}}{{/name}} still sees the outer name.
		if v.Truthy() {
			e.renderNodes(b, n.Body, s.push(frame{val: v}))
		}
	}
}

// renderIteration renders body once per list element or map entry, each
// pass on its own frame carrying the element and its loop metadata.
// Empty collections render nothing.
func (e *Engine) renderIteration(b *strings.Builder, body []syntax.Node, s contextStack, v value.Value) {
	switch v.Kind() {
	case value.KindList:
		items := v.Items()
		for i, item := range items {
			f := frame{val: item, loop: &loopInfo{
				index: i,
				first: i == 0,
				last:  i == len(items)-1,
			}}
			e.renderNodes(b, body, s.push(f))
		}

	case value.KindMap:
		entries := v.Entries()
		for i, entry := range entries {
			f := frame{val: entry.Value, loop: &loopInfo{
				index:  i,
				first:  i == 0,
				last:   i == len(entries)-1,
				key:    entry.Key,
				hasKey: true,
			}}
			e.renderNodes(b, body, s.push(f))
		}
	}
}

// defaultEngine backs the package-level convenience functions.
var defaultEngine = NewEngine()

// Render renders a parsed node tree using the default engine.
func Render(nodes []syntax.Node, root value.Value) string {
	return defaultEngine.Render(nodes, root)
}

// RenderTemplate parses and renders using the default engine.
func RenderTemplate(template string, ctx value.Value) (string, error) {
	return defaultEngine.RenderTemplate(template, ctx)
}
