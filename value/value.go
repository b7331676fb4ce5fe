package value

import (
	"strconv"

	orderedmap "github.com/wk8/go-ordered-map/v2"
)

// Kind identifies which variant a Value holds.
type Kind int

const (
	// KindAbsent is the zero Value: a missing or null datum.
	KindAbsent Kind = iota
	KindBool
	KindNumber
	KindString
	KindList
	KindMap
)

// String returns the kind name for diagnostics.
func (k Kind) String() string {
	switch k {
	case KindAbsent:
		return "absent"
	case KindBool:
		return "bool"
	case KindNumber:
		return "number"
	case KindString:
		return "string"
	case KindList:
		return "list"
	case KindMap:
		return "map"
	}
	return "unknown"
}

// Value is a tagged union over the types a template context can hold.
// The zero Value is absent. Values are cheap to copy; list and map
// variants share their backing storage.
type Value struct {
	kind Kind
	b    bool
	num  float64
	str  string
	list []Value
	obj  *orderedmap.OrderedMap[string, Value]
}

// Absent returns the absent Value.
func Absent() Value {
	return Value{}
}

// Bool returns a boolean Value.
func Bool(b bool) Value {
	return Value{kind: KindBool, b: b}
}

// Number returns a numeric Value.
func Number(n float64) Value {
	return Value{kind: KindNumber, num: n}
}

// Int returns a numeric Value from an int.
func Int(i int) Value {
	return Number(float64(i))
}

// String returns a string Value.
func String(s string) Value {
	return Value{kind: KindString, str: s}
}

// List returns a list Value holding the given items in order.
func List(items ...Value) Value {
	return Value{kind: KindList, list: items}
}

// NewMap returns an empty map Value. Keys set on it iterate in
// insertion order.
func NewMap() Value {
	return Value{kind: KindMap, obj: orderedmap.New[string, Value]()}
}

// Set binds key on a map Value and returns the map for chaining. A new key
// is appended to the iteration order; an existing key keeps its position.
// Set on a non-map Value is a no-op.
func (v Value) Set(key string, item Value) Value {
	if v.kind == KindMap {
		v.obj.Set(key, item)
	}
	return v
}

// Kind reports which variant v holds.
func (v Value) Kind() Kind {
	return v.kind
}

// IsAbsent reports whether v is the absent variant.
func (v Value) IsAbsent() bool {
	return v.kind == KindAbsent
}

// Truthy reports whether v counts as true when used as a section condition:
// false for absent, false, zero, the empty string, and empty lists or maps.
func (v Value) Truthy() bool {
	switch v.kind {
	case KindBool:
		return v.b
	case KindNumber:
		return v.num != 0
	case KindString:
		return v.str != ""
	case KindList:
		return len(v.list) > 0
	case KindMap:
		return v.obj.Len() > 0
	}
	return false
}

// Text returns the interpolated form of v: strings verbatim, numbers in
// canonical decimal form, everything else (absent, booleans, lists, maps)
// as the empty string.
func (v Value) Text() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	}
	return ""
}

// BoolVal returns the boolean payload, or false for any other variant.
func (v Value) BoolVal() bool {
	return v.kind == KindBool && v.b
}

// NumberVal returns the numeric payload, or 0 for any other variant.
func (v Value) NumberVal() float64 {
	if v.kind == KindNumber {
		return v.num
	}
	return 0
}

// StringVal returns the string payload, or "" for any other variant.
func (v Value) StringVal() string {
	if v.kind == KindString {
		return v.str
	}
	return ""
}

// Get looks up key in a map Value. The second return is false when v is
// not a map or the key is not present.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != KindMap {
		return Value{}, false
	}
	item, ok := v.obj.Get(key)
	return item, ok
}

// Len returns the number of items in a list or entries in a map, and 0
// for every other variant.
func (v Value) Len() int {
	switch v.kind {
	case KindList:
		return len(v.list)
	case KindMap:
		return v.obj.Len()
	}
	return 0
}

// Items returns the backing slice of a list Value, or nil. Callers must
// not modify the returned slice.
func (v Value) Items() []Value {
	if v.kind != KindList {
		return nil
	}
	return v.list
}

// Entry is one key/value pair of a map Value.
type Entry struct {
	Key   string
	Value Value
}

// Entries returns a map Value's pairs in iteration order, or nil for any
// other variant.
func (v Value) Entries() []Entry {
	if v.kind != KindMap {
		return nil
	}
	entries := make([]Entry, 0, v.obj.Len())
	for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
		entries = append(entries, Entry{Key: pair.Key, Value: pair.Value})
	}
	return entries
}

// Keys returns a map Value's keys in iteration order, or nil for any
// other variant.
func (v Value) Keys() []string {
	if v.kind != KindMap {
		return nil
	}
	keys := make([]string, 0, v.obj.Len())
	for pair := v.obj.Oldest(); pair != nil; pair = pair.Next() {
		keys = append(keys, pair.Key)
	}
	return keys
}
