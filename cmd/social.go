package main

import (
	"context"
	"fmt"

	"github.com/nycmg/nycmg-cli/internal/shared"
	"github.com/urfave/cli/v3"
)

// Follow follows a user.
func (r *Runner) Follow(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(); err != nil {
		return err
	}

	userID := cmd.StringArg("user-id")
	if userID == "" {
		return fmt.Errorf("%w: user ID", shared.ErrMissingArgument)
	}
	if state := r.session.State(); state.User != nil && state.User.ID == userID {
		return fmt.Errorf("%w: cannot follow yourself", shared.ErrInvalidArgument)
	}

	if err := r.follows.Follow(ctx, userID); err != nil {
		return err
	}

	return r.writePlain("✓ Following %s (now following %d)\n", userID, r.follows.FollowingCount())
}

// Unfollow removes a follow.
func (r *Runner) Unfollow(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(); err != nil {
		return err
	}

	userID := cmd.StringArg("user-id")
	if userID == "" {
		return fmt.Errorf("%w: user ID", shared.ErrMissingArgument)
	}

	if err := r.follows.Unfollow(ctx, userID); err != nil {
		return err
	}

	return r.writePlain("✓ Unfollowed %s\n", userID)
}

// Followers lists a user's followers.
func (r *Runner) Followers(ctx context.Context, cmd *cli.Command) error {
	userID := cmd.StringArg("user-id")
	if userID == "" {
		return fmt.Errorf("%w: user ID", shared.ErrMissingArgument)
	}

	users, err := r.follows.Followers(ctx, userID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(users, cmd.Bool("pretty"))
	}

	for _, u := range users {
		r.writePlain("%s  %s\n", u.ID, u.Username)
	}
	return r.writePlain("%d followers\n", len(users))
}

// Following lists who a user follows.
func (r *Runner) Following(ctx context.Context, cmd *cli.Command) error {
	userID := cmd.StringArg("user-id")
	if userID == "" {
		return fmt.Errorf("%w: user ID", shared.ErrMissingArgument)
	}

	users, err := r.follows.Following(ctx, userID)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(users, cmd.Bool("pretty"))
	}

	for _, u := range users {
		r.writePlain("%s  %s\n", u.ID, u.Username)
	}
	return r.writePlain("following %d\n", len(users))
}

// Like likes a track, artist, or album.
func (r *Runner) Like(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(); err != nil {
		return err
	}

	ref, err := entityRef(cmd)
	if err != nil {
		return err
	}

	if err := r.likes.Like(ctx, ref); err != nil {
		return err
	}

	return r.writePlain("✓ Liked %s\n", ref)
}

// Unlike removes a like.
func (r *Runner) Unlike(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(); err != nil {
		return err
	}

	ref, err := entityRef(cmd)
	if err != nil {
		return err
	}

	if err := r.likes.Unlike(ctx, ref); err != nil {
		return err
	}

	return r.writePlain("✓ Unliked %s\n", ref)
}

// LikesCount prints the like count for an entity.
func (r *Runner) LikesCount(ctx context.Context, cmd *cli.Command) error {
	ref, err := entityRef(cmd)
	if err != nil {
		return err
	}

	count, err := r.likes.RefreshCount(ctx, ref)
	if err != nil {
		return err
	}

	return r.writePlain("%s: %d likes\n", ref, count)
}

// Share shares a track, artist, or album. The share count is server-owned;
// it is re-read afterwards to show the effect.
func (r *Runner) Share(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(); err != nil {
		return err
	}

	ref, err := entityRef(cmd)
	if err != nil {
		return err
	}

	if err := r.shares.Share(ctx, ref); err != nil {
		return err
	}

	count, err := r.shares.RefreshCount(ctx, ref)
	if err != nil {
		r.logger.Warnf("shared, but count refresh failed: %v", err)
		return r.writePlain("✓ Shared %s\n", ref)
	}

	return r.writePlain("✓ Shared %s (%d shares)\n", ref, count)
}

// SharesCount prints the share count for an entity.
func (r *Runner) SharesCount(ctx context.Context, cmd *cli.Command) error {
	ref, err := entityRef(cmd)
	if err != nil {
		return err
	}

	count, err := r.shares.RefreshCount(ctx, ref)
	if err != nil {
		return err
	}

	return r.writePlain("%s: %d shares\n", ref, count)
}

// CommentsList prints the comments on an entity in server order.
func (r *Runner) CommentsList(ctx context.Context, cmd *cli.Command) error {
	ref, err := entityRef(cmd)
	if err != nil {
		return err
	}

	comments, err := r.comments.Fetch(ctx, ref)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(comments, cmd.Bool("pretty"))
	}

	for _, c := range comments {
		r.writePlain("%s  %s: %s\n", c.ID, c.Username, c.Content)
	}
	return r.writePlain("%d comments\n", len(comments))
}

// CommentAdd posts a comment on an entity.
func (r *Runner) CommentAdd(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(); err != nil {
		return err
	}

	ref, err := entityRef(cmd)
	if err != nil {
		return err
	}

	content := cmd.StringArg("content")
	if content == "" {
		return fmt.Errorf("%w: comment content", shared.ErrMissingArgument)
	}

	comment, err := r.comments.Create(ctx, ref, content)
	if err != nil {
		return err
	}

	return r.writePlain("✓ Comment %s added\n", comment.ID)
}

// CommentEdit edits one of the user's comments.
func (r *Runner) CommentEdit(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(); err != nil {
		return err
	}

	ref, err := entityRef(cmd)
	if err != nil {
		return err
	}

	content := cmd.StringArg("content")
	if content == "" {
		return fmt.Errorf("%w: comment content", shared.ErrMissingArgument)
	}

	comment, err := r.comments.Update(ctx, ref, cmd.String("comment-id"), content)
	if err != nil {
		return err
	}

	return r.writePlain("✓ Comment %s updated\n", comment.ID)
}

// CommentDelete removes one of the user's comments.
func (r *Runner) CommentDelete(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(); err != nil {
		return err
	}

	ref, err := entityRef(cmd)
	if err != nil {
		return err
	}

	if err := r.comments.Delete(ctx, ref, cmd.String("comment-id")); err != nil {
		return err
	}

	return r.writePlain("✓ Comment deleted\n")
}
