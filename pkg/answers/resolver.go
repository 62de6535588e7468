// Package answers models the raw nested answer record produced by the intake
// wizard and provides dotted-path resolution against it. The record has no
// fixed schema; any subtree may be absent, and the pipeline treats records as
// read-only input.
package answers

import "strings"

// Record is the free-form answer mapping. Keys are addressable by dotted path
// (e.g. "personalInfo.contact.email").
type Record map[string]any

// Missing is the sentinel reported when a path cannot be resolved. It is
// distinct from every valid field value so falsy-but-present answers such as
// 0, false, or "" are never mistaken for unanswered fields.
var Missing = missing{}

type missing struct{}

func (missing) String() string { return "<missing>" }

// IsMissing reports whether v is the Missing sentinel.
func IsMissing(v any) bool {
	_, ok := v.(missing)
	return ok
}

// Resolve walks record key by key along path. An absent intermediate or leaf
// yields Missing rather than an error. A nil leaf is reported as Missing as
// well; the transformer's clean pass never emits nils, so a nil can only mean
// the wizard skipped the question.
func Resolve(record Record, path string) any {
	if record == nil || path == "" {
		return Missing
	}

	var current any = map[string]any(record)
	for _, key := range strings.Split(path, ".") {
		node, ok := asMap(current)
		if !ok {
			return Missing
		}
		value, ok := node[key]
		if !ok {
			return Missing
		}
		current = value
	}

	if current == nil {
		return Missing
	}
	return current
}

// ResolveAll resolves every path independently, preserving position. Entries
// that cannot be resolved hold Missing so callers that need all fields can
// tell which ones were absent.
func ResolveAll(record Record, paths []string) []any {
	out := make([]any, len(paths))
	for i, path := range paths {
		out[i] = Resolve(record, path)
	}
	return out
}

// ResolvePresent resolves every path and drops Missing entries. Used where the
// caller expects a filtered collection, such as address concatenation.
func ResolvePresent(record Record, paths []string) []any {
	out := make([]any, 0, len(paths))
	for _, path := range paths {
		value := Resolve(record, path)
		if IsMissing(value) {
			continue
		}
		out = append(out, value)
	}
	return out
}

// String resolves path and returns the value when it is a string, or "" when
// it is absent or of another type.
func String(record Record, path string) string {
	if s, ok := Resolve(record, path).(string); ok {
		return s
	}
	return ""
}

// Bool resolves path as a boolean, defaulting to false when absent.
func Bool(record Record, path string) bool {
	if b, ok := Resolve(record, path).(bool); ok {
		return b
	}
	return false
}

// Float resolves path as a number, accepting the numeric types JSON decoding
// and YAML decoding produce. The second return reports presence.
func Float(record Record, path string) (float64, bool) {
	switch n := Resolve(record, path).(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	default:
		return 0, false
	}
}

// List resolves path as a slice of values, returning nil when absent.
func List(record Record, path string) []any {
	switch v := Resolve(record, path).(type) {
	case []any:
		return v
	case []string:
		out := make([]any, len(v))
		for i, s := range v {
			out[i] = s
		}
		return out
	default:
		return nil
	}
}

// Strings resolves path as a slice of strings, dropping non-string entries.
func Strings(record Record, path string) []string {
	items := List(record, path)
	if len(items) == 0 {
		return nil
	}
	out := make([]string, 0, len(items))
	for _, item := range items {
		if s, ok := item.(string); ok {
			out = append(out, s)
		}
	}
	return out
}

func asMap(v any) (map[string]any, bool) {
	switch node := v.(type) {
	case map[string]any:
		return node, true
	case Record:
		return node, true
	default:
		return nil, false
	}
}
