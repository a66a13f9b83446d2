package cli

import (
	"context"

	flag "github.com/spf13/pflag"
)

func (a *app) boardsCommand() *Command {
	return &Command{
		Flags: flag.NewFlagSet("boards", flag.ContinueOnError),
		Usage: "boards",
		Short: "List board documents found in the vault",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			err := a.engine.Index().Rebuild(a.vault)
			if err != nil {
				return err
			}

			boards := a.engine.Index().Boards()
			if len(boards) == 0 {
				o.Println("no boards found")

				return nil
			}

			for _, id := range boards {
				o.Println(id)
			}

			return nil
		},
	}
}
