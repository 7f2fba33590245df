// Package canonical normalizes the inconsistent value encodings the clinic
// registry has accumulated over the years into the exact token set the
// intake forms and validation expect. Every function is pure and never
// returns an error: unrecognized input degrades to the caller-supplied
// fallback or to a neutral empty value for the shape.
package canonical

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// ShapeKind declares how a stored field value must be normalized.
type ShapeKind int

const (
	ShapeString ShapeKind = iota
	ShapeBool
	ShapeNumber
	ShapeDate
	ShapeList
	ShapeCategory
	ShapeRecord
)

// FieldShape is the table entry driving Normalize. Options is only consulted
// for ShapeCategory; Nested only for ShapeRecord.
type FieldShape struct {
	Kind    ShapeKind
	Options []string
	Nested  map[string]FieldShape
}

const dateLayout = "2006-01-02"

// booleanVocabulary is the fixed answer vocabulary of the intake forms.
// Anything outside it is left as the fallback, never coerced to a guess.
var booleanVocabulary = map[string]bool{
	"yes":       true,
	"true":      true,
	"y":         true,
	"1":         true,
	"a little":  true,
	"sometimes": true,
	"no":        false,
	"false":     false,
	"n":         false,
	"0":         false,
	"undecided": false,
}

// Normalize maps an arbitrary backend-supplied value into the canonical
// representation for the declared shape. fallback is returned whenever the
// raw value cannot be understood.
func Normalize(raw interface{}, shape FieldShape, fallback interface{}) interface{} {
	switch shape.Kind {
	case ShapeBool:
		return NormalizeBool(raw, fallback)
	case ShapeNumber:
		return NormalizeNumber(raw, fallback)
	case ShapeDate:
		return NormalizeDate(raw, fallback)
	case ShapeList:
		return NormalizeList(raw)
	case ShapeCategory:
		return NormalizeCategory(raw, shape.Options, fallback)
	case ShapeRecord:
		return NormalizeRecord(raw, shape.Nested, fallback)
	default:
		return NormalizeString(raw, fallback)
	}
}

// NormalizeString trims surrounding whitespace; non-strings fall back.
func NormalizeString(raw interface{}, fallback interface{}) interface{} {
	s, ok := raw.(string)
	if !ok {
		return fallback
	}
	return strings.TrimSpace(s)
}

// NormalizeBool matches boolean-like text case-insensitively against the
// fixed form vocabulary. Genuine booleans pass through.
func NormalizeBool(raw interface{}, fallback interface{}) interface{} {
	switch v := raw.(type) {
	case bool:
		return v
	case string:
		if mapped, ok := booleanVocabulary[strings.ToLower(strings.TrimSpace(v))]; ok {
			return mapped
		}
	case float64:
		if v == 0 || v == 1 {
			return v == 1
		}
	}
	return fallback
}

// NormalizeNumber accepts JSON numbers and numeric strings.
func NormalizeNumber(raw interface{}, fallback interface{}) interface{} {
	switch v := raw.(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	case string:
		if n, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return n
		}
	}
	return fallback
}

// NormalizeDate reduces any stored date encoding to a YYYY-MM-DD calendar
// date. The date is always read from the encoding's own calendar fields, so
// a midnight timestamp never shifts a day when the clinic machine sits in a
// different timezone than the registry.
func NormalizeDate(raw interface{}, fallback interface{}) interface{} {
	switch v := raw.(type) {
	case string:
		s := strings.TrimSpace(v)
		if s == "" {
			return fallback
		}
		if t, err := time.Parse(dateLayout, s); err == nil {
			return t.Format(dateLayout)
		}
		// Timestamps keep the offset they were written with; formatting the
		// parsed value reads its own calendar fields, not a UTC conversion.
		for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05", "2006-01-02 15:04:05"} {
			if t, err := time.Parse(layout, s); err == nil {
				return t.Format(dateLayout)
			}
		}
		if epoch, err := strconv.ParseInt(s, 10, 64); err == nil {
			return epochToDate(epoch)
		}
	case float64:
		return epochToDate(int64(v))
	case int64:
		return epochToDate(v)
	case time.Time:
		return v.Format(dateLayout)
	}
	return fallback
}

func epochToDate(epoch int64) string {
	// Millisecond epochs show up in exports from the older registry.
	if epoch > 1e12 {
		epoch = epoch / 1000
	}
	return time.Unix(epoch, 0).Format(dateLayout)
}

// NormalizeList turns any of the registry's list encodings — a structured
// sequence, a brace-delimited text like "{Medication,Trauma}", or a plain
// comma-separated string — into an ordered slice of trimmed, quote-stripped
// strings. Empty or absent input yields an empty slice.
func NormalizeList(raw interface{}) []string {
	switch v := raw.(type) {
	case nil:
		return []string{}
	case []string:
		return cleanEntries(v)
	case []interface{}:
		entries := make([]string, 0, len(v))
		for _, item := range v {
			entries = append(entries, fmt.Sprintf("%v", item))
		}
		return cleanEntries(entries)
	case string:
		s := strings.TrimSpace(v)
		s = strings.TrimPrefix(s, "{")
		s = strings.TrimSuffix(s, "}")
		if s == "" {
			return []string{}
		}
		return cleanEntries(strings.Split(s, ","))
	}
	return []string{}
}

func cleanEntries(entries []string) []string {
	cleaned := make([]string, 0, len(entries))
	for _, entry := range entries {
		entry = strings.TrimSpace(entry)
		entry = strings.Trim(entry, `"'`)
		entry = strings.TrimSpace(entry)
		if entry == "" {
			continue
		}
		cleaned = append(cleaned, entry)
	}
	return cleaned
}

// NormalizeCategory matches free text case-insensitively against the known
// option set and re-emits the option's canonical casing. Unmatched text is
// title-cased and passed through unchanged, never dropped.
func NormalizeCategory(raw interface{}, options []string, fallback interface{}) interface{} {
	s, ok := raw.(string)
	if !ok {
		return fallback
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return fallback
	}
	for _, option := range options {
		if strings.EqualFold(s, option) {
			return option
		}
	}
	return TitleCase(s)
}

// NormalizeRecord recurses into a nested record using the per-leaf shapes.
// Leaves missing from the raw record keep their fallback value.
func NormalizeRecord(raw interface{}, nested map[string]FieldShape, fallback interface{}) interface{} {
	rawMap, ok := raw.(map[string]interface{})
	if !ok {
		return fallback
	}
	fallbackMap, _ := fallback.(map[string]interface{})

	result := make(map[string]interface{}, len(nested))
	for key, shape := range nested {
		var leafFallback interface{}
		if fallbackMap != nil {
			leafFallback = fallbackMap[key]
		}
		rawLeaf, present := rawMap[key]
		if !present {
			if leafFallback != nil {
				result[key] = leafFallback
			}
			continue
		}
		result[key] = Normalize(rawLeaf, shape, leafFallback)
	}
	return result
}

// TitleCase uppercases the first letter of each space-separated word and
// lowercases the rest, without pulling in a locale package.
func TitleCase(s string) string {
	words := strings.Fields(strings.ToLower(s))
	for i, word := range words {
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}
