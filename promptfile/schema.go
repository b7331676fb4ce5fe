package promptfile

import (
	"sort"
	"strings"

	"github.com/invopop/jsonschema"
	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// schemaShorthand extracts the "type, description" map under
// meta[section].schema. Non-string values fall back to "string".
func (f *File) schemaShorthand(section string) map[string]string {
	sec, ok := f.Meta[section].(map[string]any)
	if !ok {
		return nil
	}
	raw, ok := sec["schema"].(map[string]any)
	if !ok {
		return nil
	}
	out := make(map[string]string, len(raw))
	for k, v := range raw {
		if s, ok := v.(string); ok {
			out[k] = s
		} else {
			out[k] = "string"
		}
	}
	return out
}

// InputKeys returns the input schema's field names (sorted, "?" suffix
// removed), or nil when the file declares no input schema.
func (f *File) InputKeys() []string {
	shorthand := f.schemaShorthand("input")
	if len(shorthand) == 0 {
		return nil
	}
	keys := make([]string, 0, len(shorthand))
	for k := range shorthand {
		keys = append(keys, strings.TrimSuffix(k, "?"))
	}
	sort.Strings(keys)
	return keys
}

// OutputSchema compiles the output schema shorthand into a JSON Schema.
// Each shorthand entry is "type" or "type, description"; a trailing "?"
// on the key makes the field optional. Unknown types map to string.
// Returns nil when the file declares no output schema.
func (f *File) OutputSchema() *jsonschema.Schema {
	shorthand := f.schemaShorthand("output")
	if len(shorthand) == 0 {
		return nil
	}

	keys := make([]string, 0, len(shorthand))
	for k := range shorthand {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	properties := orderedmap.New[string, *jsonschema.Schema]()
	var required []string

	for _, key := range keys {
		name := strings.TrimSuffix(key, "?")
		optional := strings.HasSuffix(key, "?")

		typeStr, description, _ := strings.Cut(shorthand[key], ",")
		prop := &jsonschema.Schema{
			Type:        jsonType(strings.TrimSpace(typeStr)),
			Description: strings.TrimSpace(description),
		}
		properties.Set(name, prop)

		if !optional {
			required = append(required, name)
		}
	}

	return &jsonschema.Schema{
		Type:       "object",
		Properties: properties,
		Required:   required,
	}
}

// jsonType maps shorthand type names to JSON Schema types.
func jsonType(s string) string {
	switch s {
	case "number", "boolean":
		return s
	}
	return "string"
}
