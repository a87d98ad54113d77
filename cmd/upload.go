package main

import (
	"context"

	"github.com/nycmg/nycmg-cli/internal/api"
	"github.com/urfave/cli/v3"
)

// UploadTrack uploads a track with its audio file and metadata.
func (r *Runner) UploadTrack(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(); err != nil {
		return err
	}

	upload := api.TrackUpload{
		Title:      cmd.String("title"),
		BoroughID:  cmd.String("borough"),
		GenreIDs:   cmd.StringSlice("genre"),
		IsExplicit: cmd.Bool("explicit"),
		AudioPath:  cmd.String("audio"),
		CoverPath:  cmd.String("cover"),
	}

	r.logger.Infof("uploading track %q from %s", upload.Title, upload.AudioPath)

	track, err := r.client.UploadTrack(ctx, upload)
	if err != nil {
		return err
	}

	r.writePlain("✓ Track uploaded: %s (%s)\n", track.Title, track.ID)
	return nil
}

// AlbumCreate creates an album or EP from previously uploaded tracks.
func (r *Runner) AlbumCreate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(); err != nil {
		return err
	}

	upload := api.AlbumUpload{
		Title:     cmd.String("title"),
		Kind:      cmd.String("kind"),
		TrackIDs:  cmd.StringSlice("track"),
		CoverPath: cmd.String("cover"),
	}

	album, err := r.client.CreateAlbum(ctx, upload)
	if err != nil {
		return err
	}

	r.writePlain("✓ %s created: %s (%s)\n", album.Kind, album.Title, album.ID)
	return nil
}

// ArtistProfileUpdate updates an artist profile, optionally replacing the
// profile image.
func (r *Runner) ArtistProfileUpdate(ctx context.Context, cmd *cli.Command) error {
	if err := r.requireAuth(); err != nil {
		return err
	}

	update := api.ArtistProfileUpdate{
		Name:      cmd.String("name"),
		Bio:       cmd.String("bio"),
		BoroughID: cmd.String("borough"),
		ImagePath: cmd.String("image"),
	}

	artist, err := r.client.UpdateArtistProfile(ctx, cmd.String("id"), update)
	if err != nil {
		return err
	}

	r.writePlain("✓ Artist profile updated: %s\n", artist.Name)
	return nil
}
