package main

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/nycmg/nycmg-cli/internal/api"
	"github.com/nycmg/nycmg-cli/internal/formatter"
	"github.com/nycmg/nycmg-cli/internal/models"
	"github.com/nycmg/nycmg-cli/internal/shared"
	"github.com/urfave/cli/v3"
)

// BoroughsList prints the five discovery regions.
func (r *Runner) BoroughsList(ctx context.Context, cmd *cli.Command) error {
	boroughs, err := r.client.Boroughs(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(boroughs, cmd.Bool("pretty"))
	}

	for _, b := range boroughs {
		r.writePlain("%s  %s\n", b.ID, b.Name)
	}
	return nil
}

// GenresList prints all genre tags.
func (r *Runner) GenresList(ctx context.Context, cmd *cli.Command) error {
	genres, err := r.client.Genres(ctx)
	if err != nil {
		return err
	}

	if cmd.Bool("json") {
		return r.writeJSON(genres, cmd.Bool("pretty"))
	}

	for _, g := range genres {
		r.writePlain("%s  %s\n", g.ID, g.Name)
	}
	return nil
}

// ArtistsList fetches a page of artists into the collection container and
// prints it.
func (r *Runner) ArtistsList(ctx context.Context, cmd *cli.Command) error {
	filter := api.ListFilter{
		Search:    cmd.String("search"),
		BoroughID: cmd.String("borough"),
		Limit:     cmd.Int("limit"),
		Offset:    cmd.Int("offset"),
	}

	if err := r.artists.Fetch(ctx, filter); err != nil {
		return err
	}

	state := r.artists.State()
	if cmd.Bool("json") {
		return r.writeJSON(state.Items, cmd.Bool("pretty"))
	}

	for _, a := range state.Items {
		r.writePlain("%s  %s (%d tracks)\n", a.ID, a.Name, a.TrackCount)
	}
	r.printPageFooter(state.Page, len(state.Items))
	return nil
}

// ArtistGet fetches one artist into the detail container and prints it.
func (r *Runner) ArtistGet(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: artist ID", shared.ErrMissingArgument)
	}

	if err := r.artistDetail.Fetch(ctx, id); err != nil {
		return err
	}

	artist := r.artistDetail.State().Selected
	if cmd.Bool("json") {
		return r.writeJSON(artist, cmd.Bool("pretty"))
	}

	r.writePlain("Name: %s\n", artist.Name)
	if artist.Bio != "" {
		r.writePlain("Bio: %s\n", artist.Bio)
	}
	r.writePlain("Tracks: %d\n", artist.TrackCount)
	return nil
}

// TracksList fetches a page of tracks into the collection container and
// prints it.
func (r *Runner) TracksList(ctx context.Context, cmd *cli.Command) error {
	filter := trackFilterFromFlags(cmd)

	if err := r.tracks.Fetch(ctx, filter); err != nil {
		return err
	}

	state := r.tracks.State()
	if cmd.Bool("json") {
		return r.writeJSON(state.Items, cmd.Bool("pretty"))
	}

	for _, track := range state.Items {
		explicit := ""
		if track.IsExplicit {
			explicit = " [E]"
		}
		r.writePlain("%s  %s - %s%s [%s]\n",
			track.ID, track.ArtistName, track.Title, explicit, shared.FormatDuration(track.Duration))
	}
	r.printPageFooter(state.Page, len(state.Items))
	return nil
}

// TrackGet fetches one track into the detail container and prints it.
func (r *Runner) TrackGet(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: track ID", shared.ErrMissingArgument)
	}

	if err := r.trackDetail.Fetch(ctx, id); err != nil {
		return err
	}

	track := r.trackDetail.State().Selected
	if cmd.Bool("json") {
		return r.writeJSON(track, cmd.Bool("pretty"))
	}

	r.writePlain("Title: %s\n", track.Title)
	r.writePlain("Artist: %s\n", track.ArtistName)
	r.writePlain("Duration: %s\n", shared.FormatDuration(track.Duration))
	if track.AudioFile != "" {
		r.writePlain("Stream: %s\n", r.client.StreamURL(track.AudioFile))
	}
	return nil
}

// TracksExport exports the fetched track listing to CSV, Markdown, or text.
func (r *Runner) TracksExport(ctx context.Context, cmd *cli.Command) error {
	filter := api.TrackFilter{
		Search: cmd.String("search"),
		Limit:  cmd.Int("limit"),
		Offset: cmd.Int("offset"),
	}

	if err := r.tracks.Fetch(ctx, filter); err != nil {
		return err
	}

	state := r.tracks.State()
	listing := &formatter.TrackListing{
		Title:  cmd.String("title"),
		Tracks: state.Items,
		Page:   state.Page,
	}

	var data []byte
	var err error
	switch format := strings.ToLower(cmd.String("format")); format {
	case "csv":
		data, err = formatter.ExportToCSV(listing)
	case "markdown", "md":
		data, err = formatter.ExportToMarkdown(listing)
	case "text", "txt":
		data, err = formatter.ExportToText(listing)
	default:
		return fmt.Errorf("%w: unknown format %q", shared.ErrInvalidFlag, format)
	}
	if err != nil {
		return err
	}

	if path := cmd.String("output"); path != "" {
		if err := os.WriteFile(path, data, 0644); err != nil {
			return fmt.Errorf("failed to write export: %w", err)
		}
		r.logger.Infof("exported %d tracks to %s", len(state.Items), path)
		return r.writePlain("✓ Exported to %s\n", path)
	}

	return r.writePlain("%s", string(data))
}

// AlbumsList fetches a page of albums into the collection container and
// prints it.
func (r *Runner) AlbumsList(ctx context.Context, cmd *cli.Command) error {
	filter := api.ListFilter{
		Search:    cmd.String("search"),
		BoroughID: cmd.String("borough"),
		Limit:     cmd.Int("limit"),
		Offset:    cmd.Int("offset"),
	}

	if err := r.albums.Fetch(ctx, filter); err != nil {
		return err
	}

	state := r.albums.State()
	if cmd.Bool("json") {
		return r.writeJSON(state.Items, cmd.Bool("pretty"))
	}

	for _, album := range state.Items {
		r.writePlain("%s  %s - %s (%d tracks)\n", album.ID, album.ArtistName, album.Title, album.TrackCount)
	}
	r.printPageFooter(state.Page, len(state.Items))
	return nil
}

// AlbumGet fetches one album, including its track listing.
func (r *Runner) AlbumGet(ctx context.Context, cmd *cli.Command) error {
	id := cmd.StringArg("id")
	if id == "" {
		return fmt.Errorf("%w: album ID", shared.ErrMissingArgument)
	}

	if err := r.albumDetail.Fetch(ctx, id); err != nil {
		return err
	}

	album := r.albumDetail.State().Selected
	if cmd.Bool("json") {
		return r.writeJSON(album, cmd.Bool("pretty"))
	}

	r.writePlain("Title: %s\n", album.Title)
	r.writePlain("Artist: %s\n", album.ArtistName)
	for i, track := range album.Tracks {
		r.writePlain("%d. %s [%s]\n", i+1, track.Title, shared.FormatDuration(track.Duration))
	}
	return nil
}

func trackFilterFromFlags(cmd *cli.Command) api.TrackFilter {
	return api.TrackFilter{
		Search:     cmd.String("search"),
		BoroughIDs: cmd.StringSlice("borough"),
		GenreIDs:   cmd.StringSlice("genre"),
		ArtistID:   cmd.String("artist"),
		SortBy:     cmd.String("sort"),
		SortOrder:  cmd.String("order"),
		Limit:      cmd.Int("limit"),
		Offset:     cmd.Int("offset"),
	}
}

// printPageFooter renders the "Showing 81-95 of 95" line under listings.
func (r *Runner) printPageFooter(page models.Page, count int) {
	if page.TotalCount <= 0 || count == 0 {
		return
	}
	r.writePlain("Showing %s of %d\n",
		formatter.PageRange(page.CurrentPage, page.Limit, page.TotalCount), page.TotalCount)
}
