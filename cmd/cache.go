package main

import (
	"context"
	"fmt"

	"github.com/nycmg/nycmg-cli/internal/shared"
	"github.com/urfave/cli/v3"
)

// requireDB fails fast for commands that need the local cache database.
func (r *Runner) requireDB() error {
	if r.db == nil {
		return fmt.Errorf("%w: no database configured; set database.path in config.toml", shared.ErrMissingConfig)
	}
	return nil
}

// CacheInit runs pending migrations against the cache database.
func (r *Runner) CacheInit(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireDB(); err != nil {
		return err
	}

	r.logger.Info("running migrations")

	if err := shared.RunMigrations(r.db); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return r.writePlain("✓ Cache database ready\n")
}

// CacheClear purges cached notifications.
func (r *Runner) CacheClear(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireDB(); err != nil {
		return err
	}

	if err := r.notifCache.Purge(); err != nil {
		return err
	}

	return r.writePlain("✓ Notification cache cleared\n")
}

// CacheNotifications lists cached notifications without hitting the API.
func (r *Runner) CacheNotifications(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireDB(); err != nil {
		return err
	}

	notifications, err := r.notifCache.List(cmd.Int("limit"))
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(notifications, cmd.Bool("pretty"))
	}

	for _, n := range notifications {
		marker := " "
		if !n.IsRead {
			marker = "*"
		}
		r.writePlain("%s %s  [%s] %s\n", marker, n.ID, n.Type, n.Title)
	}
	return r.writePlain("%d cached notifications\n", len(notifications))
}

// SetupConfig writes a starter config.toml.
func (r *Runner) SetupConfig(ctx context.Context, cmd *cli.Command) error {
	path := cmd.String("path")

	if err := shared.CreateConfigFile(path); err != nil {
		return err
	}

	r.logger.Infof("wrote starter config to %s", path)
	return r.writePlain("✓ Config written to %s\n", path)
}
