package syntax

import (
	"errors"
	"fmt"
)

// Sentinel errors for template parsing.
var (
	// ErrUnmatchedSectionClose is returned when a {{/name}} marker does not
	// match the innermost open section.
	ErrUnmatchedSectionClose = errors.New("unmatched section close")

	// ErrUnclosedSection is returned when input ends with a section still open.
	ErrUnclosedSection = errors.New("unclosed section")
)

// ParseError describes a section-balance failure. It unwraps to one of the
// package sentinels.
type ParseError struct {
	// Name is the section name involved: the close marker's name for an
	// unmatched close, the outermost open section's name for unclosed input.
	Name string

	// Offset is the byte offset of the offending marker in the template.
	Offset int

	err error
}

func (e *ParseError) Error() string {
	switch {
	case errors.Is(e.err, ErrUnmatchedSectionClose):
		return fmt.Sprintf("%v: {{/%s}} at offset %d", e.err, e.Name, e.Offset)
	case errors.Is(e.err, ErrUnclosedSection):
		return fmt.Sprintf("%v: %q opened at offset %d", e.err, e.Name, e.Offset)
	}
	return e.err.Error()
}

func (e *ParseError) Unwrap() error {
	return e.err
}
