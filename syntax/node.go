package syntax

// Node is one element of a parsed template. A template parses to an
// ordered []Node; sections own their body nodes, so the tree has no
// sharing and no cycles.
type Node interface {
	// node restricts implementations to this package.
	node()
}

// Literal is raw template text, emitted verbatim.
type Literal struct {
	Text string
}

// Interpolation substitutes the value found at a dot-separated lookup
// path. The single token "." names the current scope's value itself.
type Interpolation struct {
	Path string
}

// Section renders its body when Name resolves truthy: once for scalars,
// once per element for lists, once per entry for maps.
type Section struct {
	Name string
	Body []Node
}

// InvertedSection renders its body exactly when Name resolves to a falsy,
// absent, or empty value.
type InvertedSection struct {
	Name string
	Body []Node
}

// EachSection iterates the list or map at Path, rendering its body once
// per element or entry. Unlike Section it never treats the value as a
// scalar condition; anything that is not a list or map renders nothing.
type EachSection struct {
	Path string
	Body []Node
}

// Comment is a {{! ... }} marker. Its content is discarded at parse time.
type Comment struct{}

func (Literal) node()         {}
func (Interpolation) node()   {}
func (Section) node()         {}
func (InvertedSection) node() {}
func (EachSection) node()     {}
func (Comment) node()         {}
