// Package syntax parses template strings into node trees.
//
// A template is a mix of literal text and {{...}} markers:
//
//	{{path}}                 interpolation (dot-separated lookup path, or ".")
//	{{#name}}...{{/name}}    section: body renders when name is truthy,
//	                         once per element when name is a list
//	{{^name}}...{{/name}}    inverted section: body renders when name is
//	                         falsy, absent, or empty
//	{{#each path}}...{{/each}} iterate a list or map regardless of its
//	                         scalar truthiness
//	{{! comment }}           discarded; may span multiple lines
//
// Whitespace inside marker delimiters is insignificant; whitespace in the
// surrounding text is preserved exactly. Parse is total for structurally
// odd input (a dangling "{{" is literal text); only unbalanced sections
// fail, with ErrUnmatchedSectionClose or ErrUnclosedSection.
//
// The resulting tree is immutable and safe to render concurrently.
package syntax
