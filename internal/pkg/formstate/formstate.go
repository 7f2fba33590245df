// Package formstate models the in-memory field values of an encounter
// section and the baseline snapshot used to gate destructive navigation.
// Values are the plain JSON taxonomy: string, bool, float64, ordered string
// sequence, and nested record.
package formstate

import (
	"strconv"
	"strings"
)

// Fields maps a field name to its current value.
type Fields map[string]interface{}

// Baseline is an immutable deep copy of every section's fields, captured
// when a workflow opens or a new patient replaces the working patient. It is
// replaced wholesale, never mutated.
type Baseline map[string]Fields

// Snapshot deep-copies the given per-section field state into a Baseline.
func Snapshot(sections map[string]Fields) Baseline {
	baseline := make(Baseline, len(sections))
	for sectionKey, fields := range sections {
		baseline[sectionKey] = CloneFields(fields)
	}
	return baseline
}

// CloneFields deep-copies a field map.
func CloneFields(fields Fields) Fields {
	cloned := make(Fields, len(fields))
	for name, value := range fields {
		cloned[name] = cloneValue(value)
	}
	return cloned
}

func cloneValue(value interface{}) interface{} {
	switch v := value.(type) {
	case []string:
		out := make([]string, len(v))
		copy(out, v)
		return out
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = cloneValue(item)
		}
		return out
	case map[string]interface{}:
		out := make(map[string]interface{}, len(v))
		for k, item := range v {
			out[k] = cloneValue(item)
		}
		return out
	case Fields:
		return map[string]interface{}(CloneFields(v))
	default:
		return v
	}
}

// IsDirty reports whether current differs from the baseline under the
// type-aware rules below. It short-circuits on the first mismatch; callers
// only need a boolean gate for "prompt before discard", not a diff.
func IsDirty(current map[string]Fields, baseline Baseline) bool {
	for sectionKey, fields := range current {
		base := baseline[sectionKey]
		for name, value := range fields {
			if !ValueEqual(value, base[name]) {
				return true
			}
		}
		// A field present only in the baseline counts as a change too.
		for name, value := range base {
			if _, ok := fields[name]; !ok && !isEmptyValue(value) {
				return true
			}
		}
	}
	for sectionKey, base := range baseline {
		if _, ok := current[sectionKey]; ok {
			continue
		}
		for _, value := range base {
			if !isEmptyValue(value) {
				return true
			}
		}
	}
	return false
}

// ValueEqual compares two field values by declared type:
//   - strings compare trimmed; an all-whitespace value equals an absent one
//   - booleans and numbers compare exactly
//   - ordered sequences compare after pruning falsy entries, length first
//   - nested records recurse per leaf with the same rules
func ValueEqual(a, b interface{}) bool {
	if isEmptyValue(a) && isEmptyValue(b) {
		return true
	}

	switch av := a.(type) {
	case string:
		bv, ok := b.(string)
		return ok && strings.TrimSpace(av) == strings.TrimSpace(bv)
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	case float64:
		bv, ok := toFloat(b)
		return ok && av == bv
	case int:
		bv, ok := toFloat(b)
		return ok && float64(av) == bv
	case int64:
		bv, ok := toFloat(b)
		return ok && float64(av) == bv
	case []string:
		return sequenceEqual(toSequence(av), toSequenceValue(b))
	case []interface{}:
		return sequenceEqual(toSequence(av), toSequenceValue(b))
	case map[string]interface{}:
		bv, ok := toRecord(b)
		if !ok {
			return false
		}
		return recordEqual(av, bv)
	case Fields:
		bv, ok := toRecord(b)
		if !ok {
			return false
		}
		return recordEqual(av, bv)
	case nil:
		return isEmptyValue(b)
	}
	return a == b
}

func recordEqual(a, b map[string]interface{}) bool {
	for name, value := range a {
		if !ValueEqual(value, b[name]) {
			return false
		}
	}
	for name, value := range b {
		if _, ok := a[name]; !ok && !isEmptyValue(value) {
			return false
		}
	}
	return true
}

func sequenceEqual(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// toSequence prunes falsy and empty entries while preserving order.
func toSequence(value interface{}) []string {
	var entries []string
	switch v := value.(type) {
	case []string:
		for _, item := range v {
			if trimmed := strings.TrimSpace(item); trimmed != "" {
				entries = append(entries, trimmed)
			}
		}
	case []interface{}:
		for _, item := range v {
			switch iv := item.(type) {
			case nil:
			case bool:
				if iv {
					entries = append(entries, "true")
				}
			case string:
				if trimmed := strings.TrimSpace(iv); trimmed != "" {
					entries = append(entries, trimmed)
				}
			default:
				if s := strings.TrimSpace(stringify(iv)); s != "" {
					entries = append(entries, s)
				}
			}
		}
	}
	return entries
}

func toSequenceValue(value interface{}) []string {
	switch value.(type) {
	case []string, []interface{}:
		return toSequence(value)
	case nil:
		return nil
	}
	return []string{"\x00"} // type mismatch, never equal
}

func toRecord(value interface{}) (map[string]interface{}, bool) {
	switch v := value.(type) {
	case map[string]interface{}:
		return v, true
	case Fields:
		return map[string]interface{}(v), true
	case nil:
		return map[string]interface{}{}, true
	}
	return nil, false
}

func toFloat(value interface{}) (float64, bool) {
	switch v := value.(type) {
	case float64:
		return v, true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	}
	return 0, false
}

func isEmptyValue(value interface{}) bool {
	switch v := value.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(v) == ""
	case []string:
		return len(toSequence(v)) == 0
	case []interface{}:
		return len(toSequence(v)) == 0
	case map[string]interface{}:
		for _, item := range v {
			if !isEmptyValue(item) {
				return false
			}
		}
		return true
	case Fields:
		return isEmptyValue(map[string]interface{}(v))
	}
	return false
}

func stringify(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return ""
}
