package main

import (
	"context"
	"database/sql"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/nycmg/nycmg-cli/internal/api"
	"github.com/nycmg/nycmg-cli/internal/models"
	"github.com/nycmg/nycmg-cli/internal/realtime"
	"github.com/nycmg/nycmg-cli/internal/repositories"
	"github.com/nycmg/nycmg-cli/internal/shared"
	"github.com/nycmg/nycmg-cli/internal/store"
	"github.com/urfave/cli/v3"
)

// Runner holds all dependencies for CLI commands and provides methods for each command action.
type Runner struct {
	config  *shared.Config
	client  *api.Client
	db      *sql.DB
	channel *realtime.Channel
	logger  *log.Logger
	output  io.Writer

	session       *store.SessionStore
	tracks        *store.CollectionStore[api.TrackFilter, models.Track]
	artists       *store.CollectionStore[api.ListFilter, models.Artist]
	albums        *store.CollectionStore[api.ListFilter, models.Album]
	artistDetail  *store.DetailStore[models.Artist]
	trackDetail   *store.DetailStore[models.Track]
	albumDetail   *store.DetailStore[models.Album]
	likes         *store.LikeStore
	follows       *store.FollowStore
	comments      *store.CommentStore
	shares        *store.ShareStore
	notifications *store.NotificationStore
	notifCache    *repositories.NotificationRepository
}

// RunnerOpts contains configuration options for creating a Runner.
type RunnerOpts struct {
	Config  *shared.Config
	Client  *api.Client
	DB      *sql.DB
	Channel *realtime.Channel
	Logger  *log.Logger
	Output  io.Writer
}

// NewRunner creates a new Runner with the provided configuration.
//
// The database is optional; without it the session is memory-only and
// notifications are not cached.
func NewRunner(opts RunnerOpts) *Runner {
	if opts.Config == nil {
		opts.Config = shared.DefaultConfig()
	}
	if opts.Logger == nil {
		opts.Logger = shared.NewLogger(nil)
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.Client == nil {
		httpClient := &http.Client{}
		if opts.Config.API.TimeoutSeconds > 0 {
			httpClient.Timeout = time.Duration(opts.Config.API.TimeoutSeconds) * time.Second
		}
		opts.Client = api.NewClient(opts.Config.API.BaseURL, httpClient)
		opts.Client.SetRateLimit(opts.Config.API.RateLimit)
	}
	if opts.Channel == nil {
		opts.Channel = realtime.NewChannel(realtime.OptionsFromConfig(opts.Config.Realtime), nil, opts.Logger)
	}

	var tokens store.TokenStore
	var notifCache *repositories.NotificationRepository
	var cache store.NotificationCache
	if opts.DB != nil {
		tokens = repositories.NewTokenRepository(opts.DB)
		notifCache = repositories.NewNotificationRepository(opts.DB)
		cache = notifCache
	}

	client := opts.Client
	session := store.NewSessionStore(client, tokens, opts.Logger)
	client.SetTokenSource(session.Token)

	r := &Runner{
		config:        opts.Config,
		client:        client,
		db:            opts.DB,
		channel:       opts.Channel,
		logger:        opts.Logger,
		output:        opts.Output,
		session:       session,
		likes:         store.NewLikeStore(client),
		follows:       store.NewFollowStore(client),
		comments:      store.NewCommentStore(client),
		shares:        store.NewShareStore(client),
		notifications: store.NewNotificationStore(client, cache, opts.Logger),
		notifCache:    notifCache,
	}

	r.tracks = store.NewCollectionStore(func(ctx context.Context, filter api.TrackFilter) ([]models.Track, models.Page, error) {
		page, err := client.Tracks(ctx, filter)
		if err != nil {
			return nil, models.Page{}, err
		}
		return page.Tracks, page.Page, nil
	})
	r.artists = store.NewCollectionStore(func(ctx context.Context, filter api.ListFilter) ([]models.Artist, models.Page, error) {
		page, err := client.Artists(ctx, filter)
		if err != nil {
			return nil, models.Page{}, err
		}
		return page.Artists, page.Page, nil
	})
	r.albums = store.NewCollectionStore(func(ctx context.Context, filter api.ListFilter) ([]models.Album, models.Page, error) {
		page, err := client.Albums(ctx, filter)
		if err != nil {
			return nil, models.Page{}, err
		}
		return page.Albums, page.Page, nil
	})
	r.trackDetail = store.NewDetailStore(client.Track)
	r.artistDetail = store.NewDetailStore(client.Artist)
	r.albumDetail = store.NewDetailStore(client.Album)

	r.session.Restore()

	return r
}

func (r *Runner) register() []*cli.Command {
	commands := []*cli.Command{}
	for _, fn := range [](func(*Runner) *cli.Command){
		setupCommand, authCommand, profileCommand, boroughsCommand, genresCommand,
		artistsCommand, tracksCommand, albumsCommand, socialCommand,
		notificationsCommand, uploadCommand, cacheCommand,
	} {
		commands = append(commands, fn(r))
	}

	return commands
}

func (r *Runner) writeJSON(data any, pretty bool) error {
	output, err := shared.MarshalJSON(data, pretty)
	if err != nil {
		return fmt.Errorf("failed to marshal JSON: %w", err)
	}

	if _, err := r.output.Write(output); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	if _, err := r.output.Write([]byte("\n")); err != nil {
		return fmt.Errorf("failed to write newline: %w", err)
	}

	return nil
}

func (r *Runner) writePlain(format string, args ...any) error {
	text := fmt.Sprintf(format, args...)
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

func (r *Runner) writePlainln(format string, args ...any) error {
	text := "\n" + fmt.Sprintf(format, args...) + "\n"
	if _, err := r.output.Write([]byte(text)); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}
	return nil
}

// requireAuth fails fast for commands that need a logged-in session.
func (r *Runner) requireAuth() error {
	if !r.session.State().Authenticated {
		return fmt.Errorf("%w: run 'nycmg auth login' first", shared.ErrNotAuthenticated)
	}
	return nil
}

// entityRef builds the interaction target from --type and --id flags.
func entityRef(cmd *cli.Command) (models.EntityRef, error) {
	ref := models.EntityRef{Kind: models.EntityKind(cmd.String("type")), ID: cmd.String("id")}
	if err := ref.Validate(); err != nil {
		return models.EntityRef{}, fmt.Errorf("%w: %v", shared.ErrInvalidFlag, err)
	}
	return ref, nil
}
