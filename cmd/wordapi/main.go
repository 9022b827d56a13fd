// Command wordapi serves word lookups over HTTP from line-delimited
// word lists loaded at startup.
//
// Commands:
//
//	serve    load the dictionaries and serve HTTP (default)
//	check    load the dictionaries and print per-language stats
//	version  print build information
//
// Configuration comes from --config / CONFIG_PATH (fallback ./config.yaml)
// and environment variables. Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kong"

	"github.com/heartmarshall/wordlookup/internal/app"
	"github.com/heartmarshall/wordlookup/internal/config"
)

// Globals are flags shared by every command.
type Globals struct {
	Config string `name:"config" short:"c" env:"CONFIG_PATH" help:"Path to the YAML config file" type:"path"`
}

// CLI defines the command-line interface for wordapi.
type CLI struct {
	Globals

	Serve   ServeCmd   `cmd:"" default:"1" help:"Load the dictionaries and serve HTTP"`
	Check   CheckCmd   `cmd:"" help:"Load the dictionaries, print stats and exit"`
	Version VersionCmd `cmd:"" help:"Print version information"`
}

// ServeCmd runs the HTTP service until SIGINT or SIGTERM.
type ServeCmd struct{}

func (c *ServeCmd) Run(g *Globals) error {
	cfg, logger, err := setup(g)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx, cfg, logger); err != nil {
		logger.Error("application error", slog.String("error", err.Error()))
		return err
	}
	return nil
}

// CheckCmd validates the configured word lists without serving.
type CheckCmd struct{}

func (c *CheckCmd) Run(g *Globals) error {
	cfg, logger, err := setup(g)
	if err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return app.Check(ctx, cfg, logger, os.Stdout)
}

// VersionCmd prints build information.
type VersionCmd struct{}

func (c *VersionCmd) Run() error {
	fmt.Printf("wordapi %s\n", app.BuildVersion())
	return nil
}

func setup(g *Globals) (*config.Config, *slog.Logger, error) {
	cfg, err := config.LoadFile(g.Config)
	if err != nil {
		return nil, nil, err
	}
	return cfg, app.NewLogger(cfg.Log), nil
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("wordapi"),
		kong.Description("Word existence and prefix lookup service"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{Compact: true}),
	)
	err := ctx.Run(&cli.Globals)
	ctx.FatalIfErrorf(err)
}
