package frontmatter

import "strings"

// Field is one key/value pair to write into a frontmatter block.
// The value is written verbatim after "key: ", so callers render booleans
// and numbers themselves ("true", "3").
type Field struct {
	Key   string
	Value string
}

// BoolString renders a boolean the way frontmatter stores it.
func BoolString(b bool) string {
	if b {
		return "true"
	}

	return "false"
}

// SetFields returns content with each field updated in place inside the
// frontmatter block. Existing "key: ..." lines are replaced; missing keys
// are inserted before the closing delimiter in the order given. A document
// without a frontmatter block gets one prepended. Every line not owned by
// one of the fields is preserved byte for byte.
func SetFields(content []byte, fields []Field) []byte {
	if len(fields) == 0 {
		return content
	}

	text := string(content)

	firstLine, _, _ := strings.Cut(text, "\n")
	if strings.TrimRight(firstLine, "\r") != Delimiter {
		return []byte(renderBlock(fields) + text)
	}

	lines := strings.Split(text, "\n")
	closing := closingDelimiterIndex(lines)

	if closing == -1 {
		// Unterminated block; treat the document as having none.
		return []byte(renderBlock(fields) + text)
	}

	remaining := make([]Field, 0, len(fields))

	for _, field := range fields {
		if !replaceFieldLine(lines[1:closing], field) {
			remaining = append(remaining, field)
		}
	}

	if len(remaining) > 0 {
		inserted := make([]string, 0, len(lines)+len(remaining))
		inserted = append(inserted, lines[:closing]...)

		for _, field := range remaining {
			inserted = append(inserted, field.Key+": "+field.Value)
		}

		inserted = append(inserted, lines[closing:]...)
		lines = inserted
	}

	return []byte(strings.Join(lines, "\n"))
}

// closingDelimiterIndex finds the line index of the closing delimiter,
// or -1 if the block never closes. Index 0 is the opening delimiter.
func closingDelimiterIndex(lines []string) int {
	for idx := 1; idx < len(lines); idx++ {
		if strings.TrimRight(lines[idx], "\r") == Delimiter {
			return idx
		}
	}

	return -1
}

// replaceFieldLine rewrites the first "key: ..." line in block, reporting
// whether a line was found.
func replaceFieldLine(block []string, field Field) bool {
	for idx, line := range block {
		if strings.HasPrefix(line, field.Key+":") {
			block[idx] = field.Key + ": " + field.Value

			return true
		}
	}

	return false
}

func renderBlock(fields []Field) string {
	var builder strings.Builder

	builder.WriteString(Delimiter)
	builder.WriteString("\n")

	for _, field := range fields {
		builder.WriteString(field.Key)
		builder.WriteString(": ")
		builder.WriteString(field.Value)
		builder.WriteString("\n")
	}

	builder.WriteString(Delimiter)
	builder.WriteString("\n")

	return builder.String()
}
