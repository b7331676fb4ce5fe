package syntax

import (
	"strings"
)

const (
	markerOpen  = "{{"
	markerClose = "}}"
)

// openSection is one frame of the parser's section stack: a section whose
// open marker has been seen but whose close marker has not.
type openSection struct {
	name     string // lookup name, or the iterated path for each sections
	closeTag string // the name a {{/...}} marker must carry to close this frame
	inverted bool
	each     bool
	offset   int // byte offset of the opening marker
	body     []Node
}

// Parse compiles a template string into a node tree.
//
// Parse accepts any input: text outside markers becomes Literal nodes
// (runs are coalesced, a dangling "{{" is literal), comments are dropped,
// and every other {{expr}} is an Interpolation. The only failures are
// section-balance errors: a close marker that does not match the innermost
// open section (ErrUnmatchedSectionClose) or end of input with sections
// still open (ErrUnclosedSection, naming the outermost one).
func Parse(template string) ([]Node, error) {
	var top []Node
	var stack []openSection

	// current returns the node sequence under construction: the innermost
	// open section's body, or the top-level sequence.
	current := func() *[]Node {
		if len(stack) == 0 {
			return &top
		}
		return &stack[len(stack)-1].body
	}

	appendNode := func(n Node) {
		seq := current()
		*seq = append(*seq, n)
	}

	appendLiteral := func(text string) {
		if text == "" {
			return
		}
		seq := current()
		if n := len(*seq); n > 0 {
			if lit, ok := (*seq)[n-1].(Literal); ok {
				(*seq)[n-1] = Literal{Text: lit.Text + text}
				return
			}
		}
		*seq = append(*seq, Literal{Text: text})
	}

	pos := 0
	for pos < len(template) {
		rel := strings.Index(template[pos:], markerOpen)
		if rel == -1 {
			appendLiteral(template[pos:])
			break
		}
		appendLiteral(template[pos : pos+rel])

		markerAt := pos + rel
		contentStart := markerAt + len(markerOpen)
		end := strings.Index(template[contentStart:], markerClose)
		if end == -1 {
			// No closing delimiter anywhere: the "{{" and everything
			// after it is literal text.
			appendLiteral(template[markerAt:])
			break
		}
		content := template[contentStart : contentStart+end]
		pos = contentStart + end + len(markerClose)

		expr := strings.TrimSpace(content)
		switch {
		case strings.HasPrefix(expr, "!"):
			appendNode(Comment{})

		case strings.HasPrefix(expr, "#"):
			name := strings.TrimSpace(expr[1:])
			frame := openSection{name: name, closeTag: name, offset: markerAt}
			if path, ok := cutEachKeyword(name); ok {
				frame.name = path
				frame.closeTag = "each"
				frame.each = true
			}
			stack = append(stack, frame)

		case strings.HasPrefix(expr, "^"):
			name := strings.TrimSpace(expr[1:])
			stack = append(stack, openSection{
				name:     name,
				closeTag: name,
				inverted: true,
				offset:   markerAt,
			})

		case strings.HasPrefix(expr, "/"):
			name := strings.TrimSpace(expr[1:])
			if len(stack) == 0 || stack[len(stack)-1].closeTag != name {
				return nil, &ParseError{Name: name, Offset: markerAt, err: ErrUnmatchedSectionClose}
			}
			frame := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			appendNode(frame.close())

		default:
			appendNode(Interpolation{Path: expr})
		}
	}

	if len(stack) > 0 {
		outer := stack[0]
		return nil, &ParseError{Name: outer.name, Offset: outer.offset, err: ErrUnclosedSection}
	}
	return top, nil
}

// close converts a popped frame into its completed node.
func (f openSection) close() Node {
	switch {
	case f.each:
		return EachSection{Path: f.name, Body: f.body}
	case f.inverted:
		return InvertedSection{Name: f.name, Body: f.body}
	default:
		return Section{Name: f.name, Body: f.body}
	}
}

// cutEachKeyword splits "each <path>" into its path. The keyword must be
// followed by whitespace and a non-empty path; a bare "each" or a name
// like "eachness" is an ordinary section name.
func cutEachKeyword(name string) (string, bool) {
	rest, ok := strings.CutPrefix(name, "each")
	if !ok || rest == "" {
		return "", false
	}
	path := strings.TrimLeft(rest, " \t\r\n")
	if path == rest || path == "" {
		return "", false
	}
	return path, true
}
