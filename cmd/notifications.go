package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/nycmg/nycmg-cli/internal/models"
	"github.com/nycmg/nycmg-cli/internal/shared"
	"github.com/urfave/cli/v3"
)

// NotificationsList fetches a page of notifications, or reads the local
// cache with --offline.
func (r *Runner) NotificationsList(ctx context.Context, cmd *cli.Command) error {
	if cmd.Bool("offline") {
		return r.CacheNotifications(ctx, cmd)
	}

	if err := r.requireAuth(); err != nil {
		return err
	}

	err := r.notifications.Fetch(ctx, cmd.Int("limit"), cmd.Int("offset"), cmd.Bool("include-read"))
	if err != nil {
		return err
	}

	state := r.notifications.State()
	if cmd.Bool("json") {
		return r.writeJSON(state.Items, cmd.Bool("pretty"))
	}

	for _, n := range state.Items {
		marker := " "
		if !n.IsRead {
			marker = "*"
		}
		r.writePlain("%s %s  [%s] %s\n", marker, n.ID, n.Type, n.Title)
	}
	return r.writePlain("%d unread on this page\n", state.UnreadCount)
}

// NotificationsRead marks one notification read.
func (r *Runner) NotificationsRead(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(); err != nil {
		return err
	}

	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: notification ID", shared.ErrMissingArgument)
	}

	if err := r.notifications.MarkRead(ctx, id); err != nil {
		return err
	}

	return r.writePlain("✓ Marked %s read\n", id)
}

// NotificationsReadAll marks every notification read.
func (r *Runner) NotificationsReadAll(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(); err != nil {
		return err
	}

	if err := r.notifications.MarkAllRead(ctx); err != nil {
		return err
	}

	return r.writePlain("✓ All notifications marked read\n")
}

// NotificationsDelete removes a notification.
func (r *Runner) NotificationsDelete(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(); err != nil {
		return err
	}

	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: notification ID", shared.ErrMissingArgument)
	}

	if err := r.notifications.Delete(ctx, id); err != nil {
		return err
	}

	return r.writePlain("✓ Deleted %s\n", id)
}

// NotificationsWatch connects the WebSocket channel and prints pushed
// notifications until interrupted.
func (r *Runner) NotificationsWatch(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(); err != nil {
		return err
	}

	state := r.session.State()
	userID := ""
	if state.User != nil {
		userID = state.User.ID
	}

	r.channel.OnNotification(func(n models.Notification) {
		r.notifications.Add(n)
		r.writePlain("* [%s] %s: %s\n", n.Type, n.Title, n.Message)
	})

	if err := r.channel.Connect(ctx, state.Token, userID); err != nil {
		return err
	}
	defer r.channel.Disconnect()

	r.writePlain("Watching for notifications (ctrl-c to stop)...\n")

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case <-ctx.Done():
	case <-stop:
	}
	return nil
}
