package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/saikrn112/kanban-sync/internal/watch"
)

func (a *app) watchCommand() *Command {
	flags := flag.NewFlagSet("watch", flag.ContinueOnError)
	initial := flags.Bool("initial-sync", true, "sync every board once before watching")

	return &Command{
		Flags: flags,
		Usage: "watch [flags]",
		Short: "Watch the vault and sync boards as they change",
		Long: "Subscribe to document-change events and react until interrupted:\n" +
			"created/renamed documents rebuild the board index, modified boards\n" +
			"sync, deleted documents leave the index.",
		Exec: func(ctx context.Context, o *IO, _ []string) error {
			if *initial {
				err := a.engine.SyncAll()
				if err != nil {
					return err
				}
			} else {
				err := a.engine.Index().Rebuild(a.vault)
				if err != nil {
					return err
				}
			}

			w, err := watch.New(a.vault.Root(), a.log)
			if err != nil {
				return err
			}

			defer func() { _ = w.Close() }()

			go func() {
				runErr := w.Run(ctx)
				if runErr != nil {
					a.log.WithError(runErr).Warn("watcher stopped")
				}
			}()

			o.Println("Watching", a.vault.Root())

			for ev := range w.Events() {
				a.engine.HandleEvent(ev)
			}

			return nil
		},
	}
}
