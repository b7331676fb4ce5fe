// Package template renders parsed node trees against a data context.
//
// Rendering walks the tree depth-first with an explicit context stack:
// entering a section pushes one frame (per iteration for lists and maps),
// exiting pops it. Lookup starts at the innermost frame; only the first
// path segment falls back to outer frames, later segments resolve strictly
// within the value the first segment found.
//
// Render is total. Missing lookups, wrong-typed section values, and other
// mismatches render as empty output rather than failing; only parsing
// (via RenderTemplate) can return an error.
//
//	ctx := value.NewMap().Set("items", value.List(
//	    value.String("a"), value.String("b"), value.String("c")))
//	out, _ := template.RenderTemplate("{{#items}}{{@index}}:{{.}} {{/items}}", ctx)
//	// out: "0:a 1:b 2:c "
//
// During iteration the pseudo-variables @index, @first, @last, and (for
// maps) @key resolve inside the body. They live on a per-iteration overlay,
// not on the data itself, and are gone once the iteration's render returns.
package template
