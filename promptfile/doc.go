// Package promptfile parses .prompt files: a template body with optional
// structured frontmatter.
//
// Frontmatter is YAML between "---" fences or TOML between "+++" fences:
//
//	---
//	model: anthropic/claude-sonnet
//	output:
//	  schema:
//	    sentiment: string, positive or negative
//	    score?: number, confidence 0..1
//	---
//	Classify: {{input}}
//
// A file without frontmatter is all template. Metadata stays a plain map
// so callers can override any key from the environment (STACHE_MODEL=...)
// or from explicit key=value pairs; override values are coerced to bool,
// number, or string.
//
// Schema shorthand values are "type, description" with a trailing "?" on
// the key marking the field optional. OutputSchema compiles the shorthand
// into a JSON Schema.
//
// Watch re-parses a file whenever it changes on disk, for long-running
// processes that want current prompts without restarting.
package promptfile
