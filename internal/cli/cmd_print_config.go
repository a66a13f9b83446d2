package cli

import (
	"context"

	flag "github.com/spf13/pflag"

	"github.com/saikrn112/kanban-sync/internal/config"
)

func (a *app) printConfigCommand(sources config.Sources) *Command {
	return &Command{
		Flags: flag.NewFlagSet("print-config", flag.ContinueOnError),
		Usage: "print-config",
		Short: "Print the effective configuration as JSON",
		Exec: func(_ context.Context, o *IO, _ []string) error {
			formatted, err := config.Format(a.cfg)
			if err != nil {
				return err
			}

			o.Println(formatted)

			if sources.Global != "" {
				o.Println("// global:", sources.Global)
			}

			if sources.Vault != "" {
				o.Println("// vault:", sources.Vault)
			}

			return nil
		},
	}
}
