// Command stache renders .prompt files to stdout.
//
// Usage:
//
//	stache [-v] [-watch] [-set key=value ...] <file.prompt>
//
// The template context comes from stdin: a JSON object binds its fields as
// variables (document key order preserved for iteration), any other input
// is bound as a raw string to the input schema's first key, or to "input".
// The raw stdin text is always available as {{STDIN}}.
//
// Frontmatter keys can be overridden with STACHE_* environment variables
// or repeated -set flags. With -watch the file is re-rendered every time
// it changes on disk.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/randalmurphal/stache/promptfile"
	"github.com/randalmurphal/stache/template"
	"github.com/randalmurphal/stache/value"
)

// keyValues collects repeated -set key=value flags.
type keyValues map[string]string

func (kv keyValues) String() string {
	return ""
}

func (kv keyValues) Set(arg string) error {
	key, val, found := strings.Cut(arg, "=")
	if !found || key == "" {
		return fmt.Errorf("expected key=value, got %q", arg)
	}
	kv[key] = val
	return nil
}

func main() {
	verbose := flag.Bool("v", false, "log progress to stderr")
	watch := flag.Bool("watch", false, "re-render whenever the prompt file changes")
	overrides := keyValues{}
	flag.Var(overrides, "set", "override a frontmatter key (repeatable, key=value)")
	flag.Parse()

	if flag.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "Usage: stache [-v] [-watch] [-set key=value ...] <file.prompt>")
		os.Exit(2)
	}
	path := flag.Arg(0)

	logf := func(format string, args ...any) {
		if *verbose {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}
	}

	file, err := promptfile.Load(path)
	if err != nil {
		fatal(err)
	}
	applyOverrides(file, overrides, logf)

	ctx := buildContext(file, readStdin(), logf)

	if provider, model := promptfile.SplitModel(file.Model()); model != "" {
		logf("model: %s (provider %q)", model, provider)
	}

	if err := renderTo(os.Stdout, file, ctx); err != nil {
		fatal(err)
	}

	if *watch {
		watchLoop(path, overrides, ctx, logf)
	}
}

// applyOverrides merges STACHE_* environment variables, then explicit
// -set flags, into the file's metadata.
func applyOverrides(file *promptfile.File, overrides keyValues, logf func(string, ...any)) {
	file.ApplyEnvOverrides(os.Environ())
	for key, val := range overrides {
		logf("override %s=%s", key, val)
		file.Set(key, val)
	}
}

// buildContext assembles the template context from raw stdin input.
func buildContext(file *promptfile.File, raw string, logf func(string, ...any)) value.Value {
	ctx := value.NewMap()
	if raw == "" {
		return ctx
	}

	if parsed, err := value.FromJSON([]byte(raw)); err == nil && parsed.Kind() == value.KindMap {
		logf("parsed stdin as JSON object")
		for _, entry := range parsed.Entries() {
			ctx.Set(entry.Key, entry.Value)
		}
	} else {
		key := "input"
		if keys := file.InputKeys(); len(keys) > 0 {
			key = keys[0]
		}
		logf("bound raw stdin to %q", key)
		ctx.Set(key, value.String(raw))
	}

	ctx.Set("STDIN", value.String(raw))
	return ctx
}

func renderTo(w io.Writer, file *promptfile.File, ctx value.Value) error {
	out, err := template.RenderTemplate(file.Template, ctx)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, out)
	return err
}

// watchLoop re-renders on every change to the prompt file until
// interrupted.
func watchLoop(path string, overrides keyValues, ctx value.Value, logf func(string, ...any)) {
	sigCtx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	watcher, err := promptfile.Watch(sigCtx, path)
	if err != nil {
		fatal(err)
	}
	defer watcher.Close()
	logf("watching %s", path)

	for {
		select {
		case file, ok := <-watcher.Files():
			if !ok {
				return
			}
			applyOverrides(file, overrides, logf)
			if err := renderTo(os.Stdout, file, ctx); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
		case err, ok := <-watcher.Errors():
			if !ok {
				return
			}
			fmt.Fprintln(os.Stderr, err)
		case <-sigCtx.Done():
			return
		}
	}
}

// readStdin returns piped stdin content, or "" when stdin is a terminal.
func readStdin() string {
	stat, err := os.Stdin.Stat()
	if err != nil || stat.Mode()&os.ModeCharDevice != 0 {
		return ""
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(data))
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, err)
	os.Exit(1)
}
