// Package board parses kanban board documents and maintains the index of
// known boards in a vault.
package board

import (
	"bufio"
	"strings"
)

// headingPrefix opens a new column.
const headingPrefix = "## "

// Card is one (column, link target) association extracted from a board.
type Card struct {
	Column string
	Target string
}

// Parse extracts the ordered (column, card) pairs from raw board text.
//
// A line starting "## " opens a new column; lines before the first heading
// are ignored. While a column is open, the first [[target]] token on a
// line yields one card. Alias ("|...") and heading ("#...") suffixes are
// stripped from targets. Lines that match neither pattern are skipped;
// parsing never fails, it only extracts zero or more cards.
func Parse(text string) []Card {
	var cards []Card

	column := ""
	scanner := bufio.NewScanner(strings.NewReader(text))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()

		if strings.HasPrefix(line, headingPrefix) {
			column = strings.TrimSpace(line[len(headingPrefix):])

			continue
		}

		if column == "" {
			continue
		}

		target, ok := firstLinkTarget(line)
		if !ok {
			continue
		}

		cards = append(cards, Card{Column: column, Target: target})
	}

	return cards
}

// firstLinkTarget extracts the first [[...]] token on a line.
func firstLinkTarget(line string) (string, bool) {
	start := strings.Index(line, "[[")
	if start == -1 {
		return "", false
	}

	rest := line[start+2:]

	end := strings.Index(rest, "]]")
	if end == -1 {
		return "", false
	}

	target := rest[:end]

	// [[note|alias]] and [[note#section]] both reference "note".
	if idx := strings.IndexByte(target, '|'); idx != -1 {
		target = target[:idx]
	}

	if idx := strings.IndexByte(target, '#'); idx != -1 {
		target = target[:idx]
	}

	target = strings.TrimSpace(target)
	if target == "" {
		return "", false
	}

	return target, true
}
