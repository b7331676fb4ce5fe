// Package value provides the tagged-union context type for template rendering.
//
// A Value is one of: absent, boolean, number, string, list, or map. Maps
// preserve insertion order, which defines their iteration order inside
// {{#each}} bodies. The renderer dispatches exhaustively on the tag; there
// is no reflection on caller types.
//
// Values are built with the typed constructors:
//
//	ctx := value.NewMap().
//	    Set("name", value.String("Alice")).
//	    Set("tags", value.List(value.String("a"), value.String("b")))
//
// or converted from existing Go data:
//
//	ctx := value.FromAny(map[string]any{"name": "Alice"})
//	ctx, err := value.FromJSON([]byte(`{"name": "Alice"}`))
//
// FromJSON preserves the key order of the JSON document; FromAny visits Go
// maps in sorted-key order since their native order is undefined.
package value
