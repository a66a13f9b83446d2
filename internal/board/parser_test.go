package board_test

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/saikrn112/kanban-sync/internal/board"
)

// Contract: every card associates with the nearest preceding "## " heading,
// and lines before the first heading never yield cards.
func Test_Parse_AssociatesCardsWithNearestHeading(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"---",
		"kanban-plugin: board",
		"---",
		"",
		"- [ ] [[Orphan]] before any heading",
		"",
		"## todo",
		"",
		"- [ ] [[Task A]]",
		"- [ ] [[Task B|nice alias]]",
		"",
		"## in-progress",
		"",
		"- [ ] [[Task C#Details]]",
	}, "\n")

	got := board.Parse(text)

	want := []board.Card{
		{Column: "todo", Target: "Task A"},
		{Column: "todo", Target: "Task B"},
		{Column: "in-progress", Target: "Task C"},
	}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cards mismatch (-want +got):\n%s", diff)
	}
}

// Contract: only the first [[...]] token on a line yields a card, and
// malformed or link-free lines are skipped without error.
func Test_Parse_SkipsMalformedLines(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		text string
		want []board.Card
	}{
		{
			name: "first link wins",
			text: "## todo\n- [ ] [[First]] depends on [[Second]]\n",
			want: []board.Card{{Column: "todo", Target: "First"}},
		},
		{
			name: "unclosed link",
			text: "## todo\n- [ ] [[Broken\n",
			want: nil,
		},
		{
			name: "empty link",
			text: "## todo\n- [ ] [[]]\n- [ ] [[  ]]\n",
			want: nil,
		},
		{
			name: "plain text lines",
			text: "## todo\nsome prose\n- [ ] unchecked without link\n",
			want: nil,
		},
		{
			name: "alias only",
			text: "## todo\n- [ ] [[|alias with no target]]\n",
			want: nil,
		},
		{
			name: "no headings at all",
			text: "- [ ] [[Task A]]\n- [ ] [[Task B]]\n",
			want: nil,
		},
		{
			name: "empty document",
			text: "",
			want: nil,
		},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := board.Parse(tc.text)

			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("cards mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

// Contract: deeper or shallower headings do not open columns; only
// exactly "## " does.
func Test_Parse_IgnoresNonColumnHeadings(t *testing.T) {
	t.Parallel()

	text := strings.Join([]string{
		"# Board Title",
		"- [ ] [[Under H1]]",
		"## todo",
		"### subsection",
		"- [ ] [[Task A]]",
	}, "\n")

	got := board.Parse(text)

	// The H1 never opens a column; the H3 line is not a heading at the
	// column level, so Task A still belongs to "todo".
	want := []board.Card{{Column: "todo", Target: "Task A"}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cards mismatch (-want +got):\n%s", diff)
	}
}

// Contract: column names keep their decorations; headings are trimmed of
// surrounding whitespace only.
func Test_Parse_PreservesColumnDecorations(t *testing.T) {
	t.Parallel()

	text := "## 🔴 Do First (I & U)  \n- [ ] [[Task A]]\n"

	got := board.Parse(text)

	want := []board.Card{{Column: "🔴 Do First (I & U)", Target: "Task A"}}

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("cards mismatch (-want +got):\n%s", diff)
	}
}
