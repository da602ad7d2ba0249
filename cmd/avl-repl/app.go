package main

import (
	"io"
	"os"
	"runtime/debug"

	"github.com/g-m-twostay/go-avl/cmd/avl-repl/config"
	"github.com/urfave/cli/v2"
	"golang.org/x/term"
)

func newApp(in io.Reader, out, errOut io.Writer) *cli.App {
	if buildInfo, ok := debug.ReadBuildInfo(); ok {
		if bv := buildInfo.Main.Version; bv != "" && bv != "(devel)" {
			version = bv
		}
	}

	return &cli.App{
		Name:      "avl-repl",
		Usage:     "build AVL trees of integers interactively and watch them rebalance",
		Version:   version,
		Reader:    in,
		Writer:    out,
		ErrWriter: errOut,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				EnvVars: []string{"AVL_CONFIG"},
				Usage:   "path to a json, toml or yaml config file",
			},
			&cli.StringFlag{
				Name:    "log-level",
				EnvVars: []string{"AVL_LOG_LEVEL"},
				Usage:   "trace, debug, info, warn or error",
			},
			&cli.IntSliceFlag{
				Name:    "preload",
				Aliases: []string{"p"},
				Usage:   "values inserted into the default tree before reading input",
			},
			&cli.BoolFlag{
				Name:        "no-confirm",
				DefaultText: "false",
				Usage:       "clear without asking",
			},
		},
		Action: func(ctx *cli.Context) error {
			overrides := map[string]any{}
			if ctx.IsSet("log-level") {
				overrides["log_level"] = ctx.String("log-level")
			}
			if ctx.IsSet("preload") {
				overrides["preload"] = ctx.IntSlice("preload")
			}
			if ctx.Bool("no-confirm") {
				overrides["confirm_clear"] = false
			}
			cfg, err := config.Load(ctx.String("config"), overrides)
			if err != nil {
				return err
			}
			log := cfg.Logger(errOut)
			log.Debug().Str("version", version).Interface("config", cfg).Msg("starting")

			r := NewREPL(cfg, log, in, out, isTerminal(in))
			if len(cfg.Preload) > 0 {
				r.insert(cfg.Preload...)
			}
			return r.Run()
		},
	}
}

func isTerminal(in io.Reader) bool {
	f, ok := in.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
