// Package frontmatter reads and edits YAML frontmatter blocks in markdown
// documents.
//
// Reading is deliberately lenient: vault documents carry arbitrary
// user-authored YAML, and this package only needs top-level scalars
// (strings, integers, booleans). Lines it cannot interpret, such as
// nested structures or lists, are skipped, never an error. They survive
// edits untouched because writing is line surgery, not re-serialization:
// [SetFields] replaces or inserts individual "key: value" lines and leaves
// every other byte of the document exactly as it was.
package frontmatter

import (
	"strconv"
	"strings"
)

// Delimiter is the fence line opening and closing a frontmatter block.
const Delimiter = "---"

// ValueKind distinguishes the scalar shapes a frontmatter value can take.
type ValueKind uint8

// ValueKind values enumerate the scalar subset we interpret.
const (
	KindString ValueKind = iota
	KindInt
	KindBool
)

// Value is one interpreted frontmatter scalar.
type Value struct {
	Kind ValueKind // Kind describes which field below is populated.
	Str  string    // Str holds the value when Kind == KindString.
	Int  int64     // Int holds the value when Kind == KindInt.
	Bool bool      // Bool holds the value when Kind == KindBool.
}

// Frontmatter maps top-level keys to interpreted scalar values.
// A nil Frontmatter behaves as empty: all lookups miss.
type Frontmatter map[string]Value

// GetString returns the string value for key.
// Returns ("", false) if key is missing or not a string scalar.
func (fm Frontmatter) GetString(key string) (string, bool) {
	v, ok := fm[key]
	if !ok || v.Kind != KindString {
		return "", false
	}

	return v.Str, true
}

// GetBool returns the bool value for key.
// Returns (false, false) if key is missing or not a bool scalar.
func (fm Frontmatter) GetBool(key string) (bool, bool) {
	v, ok := fm[key]
	if !ok || v.Kind != KindBool {
		return false, false
	}

	return v.Bool, true
}

// GetInt returns the int64 value for key.
// Returns (0, false) if key is missing or not an int scalar.
func (fm Frontmatter) GetInt(key string) (int64, bool) {
	v, ok := fm[key]
	if !ok || v.Kind != KindInt {
		return 0, false
	}

	return v.Int, true
}

// Truthy reports whether key holds a value a marker check should accept:
// boolean true, a non-zero integer, or a non-empty string other than
// "false" and "null". Missing keys are falsy.
func (fm Frontmatter) Truthy(key string) bool {
	v, ok := fm[key]
	if !ok {
		return false
	}

	switch v.Kind {
	case KindBool:
		return v.Bool
	case KindInt:
		return v.Int != 0
	case KindString:
		return v.Str != "" && v.Str != "false" && v.Str != "null"
	}

	return false
}

// Parse extracts the frontmatter block from a document.
// The bool result reports whether the document has a frontmatter block at
// all; documents without one return (nil, false). Inside the block, lines
// that are not top-level "key: value" scalars are skipped.
func Parse(content []byte) (Frontmatter, bool) {
	lines := strings.Split(string(content), "\n")
	if len(lines) == 0 || strings.TrimRight(lines[0], "\r") != Delimiter {
		return nil, false
	}

	fm := make(Frontmatter)
	closed := false

	for _, raw := range lines[1:] {
		line := strings.TrimRight(raw, "\r")
		if line == Delimiter {
			closed = true

			break
		}

		// Indented lines belong to nested structures we do not interpret.
		if line == "" || line[0] == ' ' || line[0] == '\t' || line[0] == '#' {
			continue
		}

		key, rest, ok := strings.Cut(line, ":")
		if !ok {
			continue
		}

		key = strings.TrimSpace(key)
		if key == "" || strings.ContainsAny(key, " \t") {
			continue
		}

		value := strings.TrimSpace(rest)
		if value == "" {
			// Block list or object header; the nested lines are skipped above.
			continue
		}

		fm[key] = parseScalar(value)
	}

	if !closed {
		return nil, false
	}

	return fm, true
}

func parseScalar(value string) Value {
	switch value {
	case "true":
		return Value{Kind: KindBool, Bool: true}
	case "false":
		return Value{Kind: KindBool, Bool: false}
	}

	if n, err := strconv.ParseInt(value, 10, 64); err == nil {
		return Value{Kind: KindInt, Int: n}
	}

	return Value{Kind: KindString, Str: unquote(value)}
}

func unquote(value string) string {
	if len(value) >= 2 && value[0] == '"' && value[len(value)-1] == '"' {
		if parsed, err := strconv.Unquote(value); err == nil {
			return parsed
		}
	}

	if len(value) >= 2 && value[0] == '\'' && value[len(value)-1] == '\'' {
		return value[1 : len(value)-1]
	}

	return value
}
