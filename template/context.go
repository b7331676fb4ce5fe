package template

import (
	"strings"

	"github.com/randalmurphal/stache/value"
)

// frame is one scope of the context stack. loop is non-nil only for frames
// pushed by list or map iteration; it carries that iteration's
// pseudo-variables and is discarded with the frame.
type frame struct {
	val  value.Value
	loop *loopInfo
}

// loopInfo is the per-iteration overlay backing @index, @first, @last,
// and @key.
type loopInfo struct {
	index  int
	first  bool
	last   bool
	key    string
	hasKey bool
}

// contextStack is the scope chain, innermost frame last. It always holds
// at least the root frame.
type contextStack []frame

// push returns the stack extended with f. The three-index expression caps
// capacity so sibling iterations never write into a shared backing array;
// the receiver is never mutated.
func (s contextStack) push(f frame) contextStack {
	return append(s[:len(s):len(s)], f)
}

// lookup resolves a dot-separated path against the stack. The first
// segment falls back through outer frames when absent in the innermost
// one; subsequent segments resolve strictly within the value found so
// far. Any miss yields the absent value.
func (s contextStack) lookup(path string) value.Value {
	if path == "." {
		return s[len(s)-1].val
	}
	if strings.HasPrefix(path, "@") {
		return s.lookupLoop(path)
	}

	segments := strings.Split(path, ".")
	current, ok := s.resolveFirst(segments[0])
	if !ok {
		return value.Absent()
	}
	for _, segment := range segments[1:] {
		next, ok := current.Get(segment)
		if !ok {
			return value.Absent()
		}
		current = next
	}
	return current
}

// resolveFirst finds the first path segment, scanning frames innermost to
// outermost. Only map frames can match; scalar frames fall through.
func (s contextStack) resolveFirst(segment string) (value.Value, bool) {
	for i := len(s) - 1; i >= 0; i-- {
		if v, ok := s[i].val.Get(segment); ok {
			return v, true
		}
	}
	return value.Value{}, false
}

// lookupLoop resolves a pseudo-variable against the innermost frame that
// carries iteration metadata. @key is absent during list iteration.
func (s contextStack) lookupLoop(name string) value.Value {
	for i := len(s) - 1; i >= 0; i-- {
		loop := s[i].loop
		if loop == nil {
			continue
		}
		switch name {
		case "@index":
			return value.Int(loop.index)
		case "@first":
			return value.Bool(loop.first)
		case "@last":
			return value.Bool(loop.last)
		case "@key":
			if loop.hasKey {
				return value.String(loop.key)
			}
		}
		return value.Absent()
	}
	return value.Absent()
}
