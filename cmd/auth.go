package main

import (
	"context"

	"github.com/nycmg/nycmg-cli/internal/api"
	"github.com/nycmg/nycmg-cli/internal/shared"
	"github.com/urfave/cli/v3"
)

// AuthLogin authenticates with email and password and persists the token.
func (r *Runner) AuthLogin(ctx context.Context, cmd *cli.Command) error {
	creds := api.Credentials{
		Email:    cmd.String("email"),
		Password: cmd.String("password"),
	}

	r.logger.Infof("logging in as %s", creds.Email)

	if err := r.session.Login(ctx, creds); err != nil {
		return err
	}

	state := r.session.State()
	r.writePlain("✓ Logged in\n")
	if state.User != nil {
		r.writePlain("User: %s (%s)\n", state.User.Username, state.User.Email)
	}
	return nil
}

// AuthRegister creates an account and logs the session in.
func (r *Runner) AuthRegister(ctx context.Context, cmd *cli.Command) error {
	reg := api.Registration{
		Email:     cmd.String("email"),
		Username:  cmd.String("username"),
		Password:  cmd.String("password"),
		IsArtist:  cmd.Bool("artist"),
		BoroughID: cmd.String("borough"),
	}

	r.logger.Infof("registering account %s", reg.Email)

	if err := r.session.Register(ctx, reg); err != nil {
		return err
	}

	r.writePlain("✓ Account created\n")
	return nil
}

// AuthWhoami fetches and prints the authenticated user's profile. A
// rejected fetch means the token is stale; the session is logged out.
func (r *Runner) AuthWhoami(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(); err != nil {
		return err
	}

	user, err := r.session.FetchProfile(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(user, cmd.Bool("pretty"))
	}

	r.writePlain("Username: %s\n", user.Username)
	r.writePlain("Email: %s\n", user.Email)
	if user.Bio != "" {
		r.writePlain("Bio: %s\n", user.Bio)
	}
	if user.IsArtist {
		r.writePlain("Artist account\n")
	}
	return nil
}

// AuthRefresh exchanges the current token for a fresh one.
func (r *Runner) AuthRefresh(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(); err != nil {
		return err
	}

	if err := r.session.Refresh(ctx); err != nil {
		return err
	}

	r.writePlain("✓ Token refreshed\n")
	return nil
}

// AuthLogout destroys the session.
func (r *Runner) AuthLogout(ctx context.Context, cmd *cli.Command) error {
	r.session.Logout()
	r.channel.Disconnect()
	r.writePlain("✓ Logged out\n")
	return nil
}

// ProfileUpdate modifies the authenticated user's profile.
func (r *Runner) ProfileUpdate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(); err != nil {
		return err
	}

	update := api.ProfileUpdate{
		Username:  cmd.String("username"),
		Bio:       cmd.String("bio"),
		BoroughID: cmd.String("borough"),
	}
	if update == (api.ProfileUpdate{}) {
		return shared.ErrMissingArgument
	}

	user, err := r.session.UpdateProfile(ctx, update)
	if err != nil {
		return err
	}

	r.writePlain("✓ Profile updated: %s\n", user.Username)
	return nil
}
