package main

import (
	"context"
	"errors"
	"os"

	"github.com/nycmg/nycmg-cli/internal/shared"
	"github.com/urfave/cli/v3"
)

func main() {
	logger := shared.NewLogger(nil)

	config := shared.DefaultConfig()
	if _, err := os.Stat("config.toml"); err == nil {
		if loadedConfig, err := shared.LoadConfig("config.toml"); err == nil {
			config = loadedConfig
		} else {
			logger.Warnf("ignoring unreadable config.toml: %v", err)
		}
	}

	opts := RunnerOpts{Config: config, Logger: logger}

	if config.Database.Path != "" {
		if db, err := shared.NewDatabase(config.Database.Path); err == nil {
			shared.ConfigureDatabase(db, config.Database.MaxOpenConns, config.Database.MaxIdleConns)
			defer db.Close()
			opts.DB = db
		} else {
			logger.Warnf("local cache unavailable: %v", err)
		}
	}

	runner := NewRunner(opts)
	app := buildApp(runner)

	if err := app.Run(context.Background(), os.Args); err != nil {
		if errors.Is(err, shared.ErrNotAuthenticated) {
			logger.Error("not authenticated; run 'nycmg auth login'")
			os.Exit(1)
		}
		logger.Fatalf("application error: %v", err)
	}
}

func buildApp(r *Runner) *cli.Command {
	return &cli.Command{
		Name:     "nycmg",
		Usage:    "Browse and interact with the NYCMG music platform",
		Version:  "0.3.0",
		Commands: r.register(),
	}
}
