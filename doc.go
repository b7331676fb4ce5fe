// Package stache is a small Mustache-family templating engine for prompts,
// documents, and configuration.
//
// stache compiles a template string containing {{...}} markers into an
// immutable node tree and renders it against a hierarchical data context.
// It is deliberately not a full Mustache implementation: no partials, no
// custom delimiters, no lambdas, no HTML escaping. What it does cover, it
// covers precisely: variable interpolation with dot-path lookup, truthy and
// inverted sections, comments, an explicit each helper, and loop-position
// metadata (@index, @first, @last, @key).
//
// Each subpackage can be used independently:
//
//   - syntax: template parser producing the node tree
//   - template: renderer walking a node tree against a context stack
//   - value: the tagged-union context type (insertion-ordered maps)
//   - promptfile: .prompt files with YAML/TOML frontmatter, schema
//     shorthand, overrides, and live re-parse on change
//
// # Quick Start
//
// Render a template in one call:
//
//	import (
//	    "github.com/randalmurphal/stache/template"
//	    "github.com/randalmurphal/stache/value"
//	)
//
//	ctx := value.NewMap().Set("name", value.String("World"))
//	out, _ := template.RenderTemplate("Hello {{name}}!", ctx)
//	// out: "Hello World!"
//
// Parse once, render many times:
//
//	nodes, err := syntax.Parse("{{#items}}{{@index}}:{{.}} {{/items}}")
//	out := template.Render(nodes, ctx)
//
// The node tree is immutable after parsing; concurrent renders of the same
// tree against different contexts need no synchronization.
//
// # Design Philosophy
//
//   - Parsing can fail, rendering cannot: missing lookups and type
//     mismatches degrade to empty output, never to an error
//   - Explicit tagged values instead of reflection on arbitrary Go types
//   - Each package usable independently
//   - Stable, semver-friendly API
package stache
