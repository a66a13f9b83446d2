// Package cli implements the kanban-sync command-line interface.
package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	flag "github.com/spf13/pflag"

	"github.com/saikrn112/kanban-sync/internal/board"
	"github.com/saikrn112/kanban-sync/internal/config"
	"github.com/saikrn112/kanban-sync/internal/fs"
	"github.com/saikrn112/kanban-sync/internal/notify"
	"github.com/saikrn112/kanban-sync/internal/sync"
	"github.com/saikrn112/kanban-sync/internal/vault"
)

var (
	errBoardIDRequired = errors.New("board id is required (or use --all)")
	errNotABoard       = errors.New("not a board")
	errUnknownCommand  = errors.New("unknown command")
)

// app carries the wired collaborators every command works against.
type app struct {
	cfg    config.Config
	vault  *vault.Vault
	engine *sync.Engine
	log    *logrus.Logger
}

// Run is the main entry point. Returns exit code.
func Run(ctx context.Context, out, errOut io.Writer, args []string, env map[string]string) int {
	o := NewIO(out, errOut)

	global := flag.NewFlagSet("kanban-sync", flag.ContinueOnError)
	global.SetInterspersed(false)
	global.SetOutput(io.Discard)

	vaultDir := global.String("vault", ".", "vault root directory")
	configPath := global.String("config", "", "config file (default: <vault>/"+config.FileName+")")
	debug := global.Bool("debug", false, "enable debug logging")

	if len(args) > 0 {
		args = args[1:]
	}

	err := global.Parse(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage(o)

			return 0
		}

		o.ErrPrintln("error:", err)

		return 1
	}

	remaining := global.Args()
	if len(remaining) == 0 {
		printUsage(o)

		return 0
	}

	root := *vaultDir
	if !filepath.IsAbs(root) {
		cwd, cwdErr := os.Getwd()
		if cwdErr != nil {
			o.ErrPrintln("error: cannot get working directory:", cwdErr)

			return 1
		}

		root = filepath.Join(cwd, root)
	}

	cfg, sources, warnings := config.Load(root, *configPath, env)

	log := logrus.New()
	log.SetOutput(errOut)
	log.SetLevel(logrus.InfoLevel)

	if cfg.Debug || *debug {
		log.SetLevel(logrus.DebugLevel)
	}

	for _, warning := range warnings {
		log.Warn(warning)
	}

	v := vault.New(root, fs.NewReal(), log)
	idx := board.NewIndex(cfg.BoardMarker, log)

	var notifier notify.Notifier = notify.NewWriter(out)
	if !cfg.ShowNotifications {
		notifier = notify.Discard
	}

	a := &app{
		cfg:    cfg,
		vault:  v,
		engine: sync.New(v, idx, cfg, notifier, log),
		log:    log,
	}

	commands := []*Command{
		a.syncCommand(),
		a.watchCommand(),
		a.boardsCommand(),
		a.printConfigCommand(sources),
	}

	name := remaining[0]
	if name == "-h" || name == "--help" {
		printUsageWith(o, commands)

		return 0
	}

	for _, cmd := range commands {
		if cmd.Name() == name {
			return cmd.Run(ctx, o, remaining[1:])
		}
	}

	o.ErrPrintln("error:", errUnknownCommand, name)
	printUsageWith(NewIO(errOut, errOut), commands)

	return 1
}

func printUsage(o *IO) {
	// Build throwaway commands just for help lines; no vault access happens.
	a := &app{}
	printUsageWith(o, []*Command{
		a.syncCommand(),
		a.watchCommand(),
		a.boardsCommand(),
		a.printConfigCommand(config.Sources{}),
	})
}

func printUsageWith(o *IO, commands []*Command) {
	o.Println("Usage: kanban-sync [--vault <dir>] [--config <file>] [--debug] <command>")
	o.Println()
	o.Println("Keep kanban board columns and item status metadata in sync.")
	o.Println()
	o.Println("Commands:")

	for _, cmd := range commands {
		o.Println(cmd.HelpLine())
	}

	o.Println()
	o.Println("Run 'kanban-sync <command> --help' for command details.")
}
