package cli_test

import (
	"strings"
	"testing"

	"github.com/saikrn112/kanban-sync/internal/cli"
)

const boardDoc = "---\n" +
	"kanban-plugin: board\n" +
	"---\n" +
	"\n" +
	"## in-progress\n" +
	"- [ ] [[Task A]]\n"

// Contract: "sync <board>" reconciles the board's cards and reports the
// synced board; the item's frontmatter carries the new status afterwards.
func Test_Sync_UpdatesItemMetadata(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteDoc("board.md", boardDoc)
	c.WriteDoc("Task A.md", "---\nstatus: open\n---\n\n# Task A\n")

	out := c.MustRun("sync", "board.md")

	cli.AssertContains(t, out, "Synced board.md")
	cli.AssertContains(t, out, "Task A → in-progress")

	got := c.ReadDoc("Task A.md")
	cli.AssertContains(t, got, "status: in-progress\n")
	cli.AssertContains(t, got, "# Task A\n")
}

func Test_Sync_Fails_When_DocumentIsNotABoard(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteDoc("note.md", "# just a note\n")

	stderr := c.MustFail("sync", "note.md")

	cli.AssertContains(t, stderr, "not a board")
}

func Test_Sync_Fails_When_BoardArgumentMissing(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("sync")

	cli.AssertContains(t, stderr, "board id is required")
}

// Contract: "sync --all" rebuilds the index and syncs every board.
func Test_SyncAll_SyncsEveryBoard(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteDoc("one.md", boardDoc)
	c.WriteDoc("two.md", "---\nkanban-plugin: board\n---\n## blocked\n- [ ] [[Task B]]\n")
	c.WriteDoc("Task A.md", "---\nstatus: open\n---\n")
	c.WriteDoc("Task B.md", "---\nstatus: open\n---\n")

	out := c.MustRun("sync", "--all")

	cli.AssertContains(t, out, "Synced 2 board(s)")
	cli.AssertContains(t, c.ReadDoc("Task A.md"), "status: in-progress\n")
	cli.AssertContains(t, c.ReadDoc("Task B.md"), "status: blocked\n")
}

// Contract: --dry-run reports pending changes and writes nothing.
func Test_Sync_DryRun_WritesNothing(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteDoc("board.md", boardDoc)
	c.WriteDoc("Task A.md", "---\nstatus: open\n---\n")

	out := c.MustRun("sync", "board.md", "--dry-run")

	cli.AssertContains(t, out, "would set Task A: in-progress")
	cli.AssertContains(t, c.ReadDoc("Task A.md"), "status: open\n")
}

// Syncing an archival column moves the item into the archive folder.
func Test_Sync_ArchivesDoneItems(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteDoc("board.md", "---\nkanban-plugin: board\n---\n## done\n- [ ] [[Task A]]\n")
	c.WriteDoc("projects/tasks/Task A.md", "---\nstatus: open\n---\n")

	c.MustRun("sync", "board.md")

	if c.Exists("projects/tasks/Task A.md") {
		t.Error("item should have left the active area")
	}

	if !c.Exists("projects/tasks/archive/Task A.md") {
		t.Fatal("item should be in the archive folder")
	}

	cli.AssertContains(t, c.ReadDoc("projects/tasks/archive/Task A.md"), "status: done\n")
}

// Contract: "boards" lists every known board, sorted, or says so when
// there are none.
func Test_Boards_ListsKnownBoards(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteDoc("b.md", boardDoc)
	c.WriteDoc("a.md", boardDoc)
	c.WriteDoc("note.md", "# not a board\n")

	out := c.MustRun("boards")

	if out != "a.md\nb.md" {
		t.Errorf("boards output = %q, want sorted board list", out)
	}
}

func Test_Boards_ReportsEmptyVault(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	out := c.MustRun("boards")

	cli.AssertContains(t, out, "no boards found")
}

// Contract: vault-local config is honored; print-config shows the
// effective values and which files were loaded.
func Test_PrintConfig_ShowsEffectiveConfig(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteDoc(".kanban-sync.json", `{
		// custom status key
		"status_property": "state",
	}`)

	out := c.MustRun("print-config")

	cli.AssertContains(t, out, `"status_property": "state"`)
	cli.AssertContains(t, out, "// vault:")
}

// Config trouble is never fatal: an invalid vault config warns on stderr
// and the command proceeds on defaults.
func Test_Run_ProceedsOnDefaults_When_ConfigInvalid(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteDoc(".kanban-sync.json", "{broken")
	c.WriteDoc("board.md", boardDoc)
	c.WriteDoc("Task A.md", "---\nstatus: open\n---\n")

	stdout, stderr, code := c.Run("sync", "board.md")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr: %s", code, stderr)
	}

	cli.AssertContains(t, stderr, "ignoring config")
	cli.AssertContains(t, stdout, "Synced board.md")
}

// A custom status property from config flows through the whole pipeline.
func Test_Sync_UsesConfiguredStatusProperty(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteDoc(".kanban-sync.json", `{"status_property": "state"}`)
	c.WriteDoc("board.md", boardDoc)
	c.WriteDoc("Task A.md", "---\nstate: open\nstatus: untouched\n---\n")

	c.MustRun("sync", "board.md")

	got := c.ReadDoc("Task A.md")
	cli.AssertContains(t, got, "state: in-progress\n")
	cli.AssertContains(t, got, "status: untouched\n")
}

func Test_Run_PrintsUsage_When_NoCommand(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	out := c.MustRun()

	cli.AssertContains(t, out, "Usage: kanban-sync")
	cli.AssertContains(t, out, "sync [board]")
	cli.AssertContains(t, out, "watch")
	cli.AssertContains(t, out, "boards")
	cli.AssertContains(t, out, "print-config")
}

func Test_Run_Fails_On_UnknownCommand(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	stderr := c.MustFail("frobnicate")

	cli.AssertContains(t, stderr, "unknown command")
}

func Test_Run_PrintsCommandHelp(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)

	out := c.MustRun("sync", "--help")

	cli.AssertContains(t, out, "Usage: kanban-sync sync [board]")
	cli.AssertContains(t, out, "--all")
	cli.AssertContains(t, out, "--dry-run")
}

// Notifications can be turned off; the summary line still prints.
func Test_Sync_StaysQuiet_When_NotificationsDisabled(t *testing.T) {
	t.Parallel()

	c := cli.NewCLI(t)
	c.WriteDoc(".kanban-sync.json", `{"show_notifications": false}`)
	c.WriteDoc("board.md", boardDoc)
	c.WriteDoc("Task A.md", "---\nstatus: open\n---\n")

	out := c.MustRun("sync", "board.md")

	cli.AssertNotContains(t, out, "Task A → in-progress")
	cli.AssertContains(t, out, "Synced board.md")

	if !strings.Contains(c.ReadDoc("Task A.md"), "status: in-progress\n") {
		t.Error("status should still update")
	}
}
