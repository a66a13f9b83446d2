package cli

import (
	"context"
	"fmt"

	flag "github.com/spf13/pflag"
)

func (a *app) syncCommand() *Command {
	flags := flag.NewFlagSet("sync", flag.ContinueOnError)
	all := flags.Bool("all", false, "sync every board in the vault")
	dryRun := flags.Bool("dry-run", false, "report pending changes without writing")

	return &Command{
		Flags: flags,
		Usage: "sync [board] [flags]",
		Short: "Sync item metadata from one board (or all boards)",
		Long: "Parse a board document and write each card's target status (and\n" +
			"quadrant flags) into the linked item's frontmatter, then archive or\n" +
			"restore the item file as its status demands.",
		Exec: func(_ context.Context, o *IO, args []string) error {
			a.engine.DryRun = *dryRun

			if *all {
				err := a.engine.SyncAll()
				if err != nil {
					return err
				}

				o.Println("Synced", len(a.engine.Index().Boards()), "board(s)")

				return nil
			}

			if len(args) == 0 {
				return errBoardIDRequired
			}

			id := args[0]

			err := a.engine.Index().Rebuild(a.vault)
			if err != nil {
				return fmt.Errorf("rebuilding board index: %w", err)
			}

			if !a.engine.Index().IsBoard(id) {
				return fmt.Errorf("%w: %s", errNotABoard, id)
			}

			syncErr := a.engine.SyncBoard(id)
			if syncErr != nil {
				return syncErr
			}

			o.Println("Synced", id)

			return nil
		},
	}
}
