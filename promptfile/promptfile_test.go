package promptfile

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_YAMLFrontmatter(t *testing.T) {
	content := `---
model: anthropic/claude-sonnet
temperature: 0.2
output:
  schema:
    sentiment: string, positive or negative
    score?: number, confidence 0..1
---

Classify the sentiment of: {{input}}
`
	f, err := Parse([]byte(content))
	require.NoError(t, err)

	assert.Equal(t, "anthropic/claude-sonnet", f.Model())
	assert.Equal(t, 0.2, f.Meta["temperature"])
	assert.Equal(t, "Classify the sentiment of: {{input}}", f.Template)
}

func TestParse_TOMLFrontmatter(t *testing.T) {
	content := `+++
model = "openai/gpt-4"
max_tokens = 1024
+++
Summarize: {{text}}`

	f, err := Parse([]byte(content))
	require.NoError(t, err)

	assert.Equal(t, "openai/gpt-4", f.Model())
	assert.Equal(t, int64(1024), f.Meta["max_tokens"])
	assert.Equal(t, "Summarize: {{text}}", f.Template)
}

func TestParse_NoFrontmatter(t *testing.T) {
	f, err := Parse([]byte("  Hello {{name}}!\n"))
	require.NoError(t, err)

	assert.Nil(t, f.Meta)
	assert.Equal(t, "Hello {{name}}!", f.Template)
	assert.Equal(t, "", f.Model())
}

func TestParse_UnclosedFenceIsAllTemplate(t *testing.T) {
	content := "---\nmodel: x\nno closing fence {{here}}"
	f, err := Parse([]byte(content))
	require.NoError(t, err)

	assert.Nil(t, f.Meta)
	assert.Equal(t, content, f.Template)
}

func TestParse_DashesInBodyAreNotFences(t *testing.T) {
	content := "---\nmodel: m\n---\nbefore\n---\nafter"
	f, err := Parse([]byte(content))
	require.NoError(t, err)

	assert.Equal(t, "m", f.Model())
	assert.Equal(t, "before\n---\nafter", f.Template)
}

func TestParse_BadYAML(t *testing.T) {
	_, err := Parse([]byte("---\n: : :\n\t bad\n---\nbody"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "test.prompt")
	require.NoError(t, os.WriteFile(path, []byte("---\nmodel: m\n---\nbody"), 0644))

	f, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, f.Path)
	assert.Equal(t, "body", f.Template)

	_, err = Load(filepath.Join(dir, "missing.prompt"))
	assert.Error(t, err)
}

func TestSplitModel(t *testing.T) {
	tests := []struct {
		ref      string
		provider string
		model    string
	}{
		{"anthropic/claude-3", "anthropic", "claude-3"},
		{"gpt-4", "", "gpt-4"},
		{"openrouter/anthropic/claude-3", "openrouter", "anthropic/claude-3"},
		{"", "", ""},
	}
	for _, tc := range tests {
		provider, model := SplitModel(tc.ref)
		assert.Equal(t, tc.provider, provider, tc.ref)
		assert.Equal(t, tc.model, model, tc.ref)
	}
}

func TestCoerce(t *testing.T) {
	tests := []struct {
		in   string
		want any
	}{
		{"true", true},
		{"False", false},
		{"42", 42},
		{"-3", -3},
		{"3.14", 3.14},
		{"1e3", 1000.0},
		{"hello", "hello"},
		{" padded ", "padded"},
		{"1.2.3", "1.2.3"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, Coerce(tc.in), tc.in)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	f := &File{Meta: map[string]any{"model": "old"}}
	f.ApplyEnvOverrides([]string{
		"STACHE_MODEL=anthropic/claude-3",
		"STACHE_MAX_TOKENS=2048",
		"UNRELATED=x",
		"STACHE_VERBOSE=true",
	})

	assert.Equal(t, "anthropic/claude-3", f.Meta["model"])
	assert.Equal(t, 2048, f.Meta["max_tokens"])
	assert.Equal(t, true, f.Meta["verbose"])
	assert.NotContains(t, f.Meta, "unrelated")
}

func TestSet_NilMeta(t *testing.T) {
	f := &File{}
	f.Set("model", "m")
	assert.Equal(t, "m", f.Meta["model"])
}

func TestInputKeys(t *testing.T) {
	f := &File{Meta: map[string]any{
		"input": map[string]any{
			"schema": map[string]any{
				"text":  "string, the input text",
				"lang?": "string",
			},
		},
	}}
	assert.Equal(t, []string{"lang", "text"}, f.InputKeys())

	assert.Nil(t, (&File{}).InputKeys())
	assert.Nil(t, (&File{Meta: map[string]any{"input": "x"}}).InputKeys())
}

func TestOutputSchema(t *testing.T) {
	f := &File{Meta: map[string]any{
		"output": map[string]any{
			"schema": map[string]any{
				"sentiment": "string, positive or negative",
				"score?":    "number, confidence 0..1",
				"flagged":   "boolean",
			},
		},
	}}

	schema := f.OutputSchema()
	require.NotNil(t, schema)
	assert.Equal(t, "object", schema.Type)
	assert.Equal(t, []string{"flagged", "sentiment"}, schema.Required)

	sentiment, ok := schema.Properties.Get("sentiment")
	require.True(t, ok)
	assert.Equal(t, "string", sentiment.Type)
	assert.Equal(t, "positive or negative", sentiment.Description)

	score, ok := schema.Properties.Get("score")
	require.True(t, ok)
	assert.Equal(t, "number", score.Type)

	flagged, ok := schema.Properties.Get("flagged")
	require.True(t, ok)
	assert.Equal(t, "boolean", flagged.Type)
	assert.Empty(t, flagged.Description)

	assert.Nil(t, (&File{}).OutputSchema())
}
