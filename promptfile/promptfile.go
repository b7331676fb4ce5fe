package promptfile

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Frontmatter fence markers. The opening fence must be the first line of
// the file; the body starts after the matching closing fence.
const (
	yamlFence = "---"
	tomlFence = "+++"
)

// File is a parsed .prompt file.
type File struct {
	// Meta is the decoded frontmatter. It is nil when the file has none
	// and stays a plain map so overrides can target arbitrary keys.
	Meta map[string]any

	// Template is the template body after the frontmatter, surrounding
	// whitespace trimmed.
	Template string

	// Path is the file the prompt was loaded from, empty for Parse.
	Path string
}

// Load reads and parses a .prompt file.
func Load(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read prompt file: %w", err)
	}
	f, err := Parse(data)
	if err != nil {
		return nil, err
	}
	f.Path = path
	return f, nil
}

// Parse parses .prompt file content. Content without an opening fence on
// the first line, or with an unclosed fence, is treated as all template.
func Parse(data []byte) (*File, error) {
	content := string(data)

	fence := openingFence(content)
	if fence == "" {
		return &File{Template: strings.TrimSpace(content)}, nil
	}

	front, body, ok := splitFrontmatter(content, fence)
	if !ok {
		return &File{Template: strings.TrimSpace(content)}, nil
	}

	meta := make(map[string]any)
	switch fence {
	case yamlFence:
		if err := yaml.Unmarshal([]byte(front), &meta); err != nil {
			return nil, fmt.Errorf("parse yaml frontmatter: %w", err)
		}
	case tomlFence:
		if err := toml.Unmarshal([]byte(front), &meta); err != nil {
			return nil, fmt.Errorf("parse toml frontmatter: %w", err)
		}
	}

	return &File{Meta: meta, Template: strings.TrimSpace(body)}, nil
}

// openingFence returns the fence the content opens with, or "".
func openingFence(content string) string {
	for _, fence := range []string{yamlFence, tomlFence} {
		if content == fence ||
			strings.HasPrefix(content, fence+"\n") ||
			strings.HasPrefix(content, fence+"\r\n") {
			return fence
		}
	}
	return ""
}

// splitFrontmatter separates the frontmatter block from the body. The
// closing fence must be alone on its line.
func splitFrontmatter(content, fence string) (front, body string, ok bool) {
	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var frontLines, bodyLines []string
	inFront := true
	closed := false

	lineNum := 0
	for scanner.Scan() {
		line := scanner.Text()
		lineNum++
		if lineNum == 1 {
			// The opening fence itself.
			continue
		}
		switch {
		case inFront && strings.TrimRight(line, "\r") == fence:
			inFront = false
			closed = true
		case inFront:
			frontLines = append(frontLines, line)
		default:
			bodyLines = append(bodyLines, line)
		}
	}
	if scanner.Err() != nil || !closed {
		return "", "", false
	}
	return strings.Join(frontLines, "\n"), strings.Join(bodyLines, "\n"), true
}

// Model returns the model meta field, or "".
func (f *File) Model() string {
	s, _ := f.Meta["model"].(string)
	return s
}

// SplitModel splits a "provider/model" reference. A reference without a
// slash has no provider; anything after the first slash belongs to the
// model name (openrouter-style references nest further slashes).
func SplitModel(ref string) (provider, model string) {
	before, after, found := strings.Cut(ref, "/")
	if !found {
		return "", before
	}
	return before, after
}

// EnvPrefix marks environment variables that override frontmatter keys:
// STACHE_MODEL=... overrides the "model" key.
const EnvPrefix = "STACHE_"

// ApplyEnvOverrides merges prefixed variables from environ (as returned by
// os.Environ) into Meta. Keys are lowercased; values are coerced.
func (f *File) ApplyEnvOverrides(environ []string) {
	for _, kv := range environ {
		key, val, found := strings.Cut(kv, "=")
		if !found || !strings.HasPrefix(key, EnvPrefix) {
			continue
		}
		f.Set(strings.ToLower(strings.TrimPrefix(key, EnvPrefix)), val)
	}
}

// Set overrides one frontmatter key with a coerced value.
func (f *File) Set(key, raw string) {
	if f.Meta == nil {
		f.Meta = make(map[string]any)
	}
	f.Meta[key] = Coerce(raw)
}

// Coerce interprets an override string: "true"/"false" (any case) become
// booleans, integer and decimal literals become numbers, everything else
// stays a string.
func Coerce(s string) any {
	trimmed := strings.TrimSpace(s)
	switch strings.ToLower(trimmed) {
	case "true":
		return true
	case "false":
		return false
	}
	if i, err := strconv.Atoi(trimmed); err == nil {
		return i
	}
	if strings.ContainsAny(trimmed, ".eE") {
		if v, err := strconv.ParseFloat(trimmed, 64); err == nil {
			return v
		}
	}
	return trimmed
}
