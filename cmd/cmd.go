// submodule cmd contains command definitions
package main

import "github.com/urfave/cli/v3"

// typeIDFlags are the flags identifying a social interaction target.
func typeIDFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "type",
			Aliases:  []string{"t"},
			Usage:    "Entity type (track, artist, album)",
			Required: true,
		},
		&cli.StringFlag{
			Name:     "id",
			Usage:    "Entity ID",
			Required: true,
		},
	}
}

func outputFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "json",
			Usage: "Output raw JSON",
		},
		&cli.BoolFlag{
			Name:  "pretty",
			Usage: "Pretty-print output",
			Value: true,
		},
	}
}

func pageFlags() []cli.Flag {
	return []cli.Flag{
		&cli.IntFlag{
			Name:  "limit",
			Usage: "Maximum number of items to return",
			Value: 20,
		},
		&cli.IntFlag{
			Name:  "offset",
			Usage: "Number of items to skip",
		},
	}
}

// authCommand handles session operations
func authCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "auth",
		Usage: "Manage the authenticated session",
		Commands: []*cli.Command{
			{
				Name:  "login",
				Usage: "Log in with email and password",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
				},
				Action: r.AuthLogin,
			},
			{
				Name:  "register",
				Usage: "Create a new account",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "email",
						Aliases:  []string{"e"},
						Usage:    "Account email",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "username",
						Aliases:  []string{"u"},
						Usage:    "Display name",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "password",
						Aliases:  []string{"p"},
						Usage:    "Account password",
						Required: true,
					},
					&cli.BoolFlag{
						Name:  "artist",
						Usage: "Register as an artist",
					},
					&cli.StringFlag{
						Name:  "borough",
						Usage: "Home borough ID",
					},
				},
				Action: r.AuthRegister,
			},
			{
				Name:   "whoami",
				Usage:  "Show the authenticated user's profile",
				Flags:  outputFlags(),
				Action: r.AuthWhoami,
			},
			{
				Name:   "refresh",
				Usage:  "Exchange the current token for a fresh one",
				Action: r.AuthRefresh,
			},
			{
				Name:   "logout",
				Usage:  "Destroy the session and forget the stored token",
				Action: r.AuthLogout,
			},
		},
	}
}

// profileCommand handles profile updates
func profileCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "profile",
		Usage: "Manage the authenticated user's profile",
		Commands: []*cli.Command{
			{
				Name:  "update",
				Usage: "Update profile fields",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "username",
						Usage: "New display name",
					},
					&cli.StringFlag{
						Name:  "bio",
						Usage: "New bio",
					},
					&cli.StringFlag{
						Name:  "borough",
						Usage: "New home borough ID",
					},
				},
				Action: r.ProfileUpdate,
			},
			{
				Name:  "artist",
				Usage: "Update an artist profile, optionally replacing the image",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "id",
						Usage:    "Artist ID",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "name",
						Usage: "New artist name",
					},
					&cli.StringFlag{
						Name:  "bio",
						Usage: "New bio",
					},
					&cli.StringFlag{
						Name:  "borough",
						Usage: "New borough ID",
					},
					&cli.StringFlag{
						Name:  "image",
						Usage: "Path to a new profile image",
					},
				},
				Action: r.ArtistProfileUpdate,
			},
		},
	}
}

// boroughsCommand lists the discovery regions
func boroughsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "boroughs",
		Usage: "Borough operations",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all boroughs",
				Flags:  outputFlags(),
				Action: r.BoroughsList,
			},
		},
	}
}

// genresCommand lists genre tags
func genresCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "genres",
		Usage: "Genre operations",
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List all genres",
				Flags:  outputFlags(),
				Action: r.GenresList,
			},
		},
	}
}

// artistsCommand handles artist catalog operations
func artistsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "artists",
		Usage: "Artist catalog operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List artists",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "search",
						Aliases: []string{"s"},
						Usage:   "Search by name",
					},
					&cli.StringFlag{
						Name:  "borough",
						Usage: "Filter by borough ID",
					},
				}, append(pageFlags(), outputFlags()...)...),
				Action: r.ArtistsList,
			},
			{
				Name:  "get",
				Usage: "Show a single artist",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  outputFlags(),
				Action: r.ArtistGet,
			},
		},
	}
}

// tracksCommand handles track catalog operations
func tracksCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "tracks",
		Usage: "Track catalog operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List tracks",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "search",
						Aliases: []string{"s"},
						Usage:   "Search by title or artist",
					},
					&cli.StringSliceFlag{
						Name:  "borough",
						Usage: "Filter by borough ID (repeatable)",
					},
					&cli.StringSliceFlag{
						Name:  "genre",
						Usage: "Filter by genre ID (repeatable)",
					},
					&cli.StringFlag{
						Name:  "artist",
						Usage: "Filter by artist ID",
					},
					&cli.StringFlag{
						Name:  "sort",
						Usage: "Sort field (created_at, title, duration)",
					},
					&cli.StringFlag{
						Name:  "order",
						Usage: "Sort order (asc or desc)",
					},
				}, append(pageFlags(), outputFlags()...)...),
				Action: r.TracksList,
			},
			{
				Name:  "get",
				Usage: "Show a single track",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  outputFlags(),
				Action: r.TrackGet,
			},
			{
				Name:  "export",
				Usage: "Export the current track listing",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "search",
						Aliases: []string{"s"},
						Usage:   "Search by title or artist",
					},
					&cli.StringFlag{
						Name:  "format",
						Usage: "Export format (csv, markdown, text)",
						Value: "text",
					},
					&cli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "Output file path (default: stdout)",
					},
					&cli.StringFlag{
						Name:  "title",
						Usage: "Listing title",
						Value: "NYCMG Tracks",
					},
				}, pageFlags()...),
				Action: r.TracksExport,
			},
		},
	}
}

// albumsCommand handles album catalog operations
func albumsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "albums",
		Usage: "Album catalog operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List albums and EPs",
				Flags: append([]cli.Flag{
					&cli.StringFlag{
						Name:    "search",
						Aliases: []string{"s"},
						Usage:   "Search by title",
					},
					&cli.StringFlag{
						Name:  "borough",
						Usage: "Filter by borough ID",
					},
				}, append(pageFlags(), outputFlags()...)...),
				Action: r.AlbumsList,
			},
			{
				Name:  "get",
				Usage: "Show a single album with its track listing",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Flags:  outputFlags(),
				Action: r.AlbumGet,
			},
			{
				Name:  "create",
				Usage: "Create an album or EP from uploaded tracks",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Album title",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "kind",
						Usage: "Collection kind (ep or album)",
						Value: "album",
					},
					&cli.StringSliceFlag{
						Name:  "track",
						Usage: "Track ID to include (repeatable)",
					},
					&cli.StringFlag{
						Name:  "cover",
						Usage: "Path to a cover image",
					},
				},
				Action: r.AlbumCreate,
			},
		},
	}
}

// socialCommand handles follows, likes, comments, and shares
func socialCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "social",
		Usage: "Follows, likes, comments, and shares",
		Commands: []*cli.Command{
			{
				Name:  "follow",
				Usage: "Follow a user",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "user-id"},
				},
				Action: r.Follow,
			},
			{
				Name:  "unfollow",
				Usage: "Unfollow a user",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "user-id"},
				},
				Action: r.Unfollow,
			},
			{
				Name:  "followers",
				Usage: "List a user's followers",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "user-id"},
				},
				Flags:  outputFlags(),
				Action: r.Followers,
			},
			{
				Name:  "following",
				Usage: "List who a user follows",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "user-id"},
				},
				Flags:  outputFlags(),
				Action: r.Following,
			},
			{
				Name:   "like",
				Usage:  "Like a track, artist, or album",
				Flags:  typeIDFlags(),
				Action: r.Like,
			},
			{
				Name:   "unlike",
				Usage:  "Remove a like",
				Flags:  typeIDFlags(),
				Action: r.Unlike,
			},
			{
				Name:   "likes",
				Usage:  "Show the like count for an entity",
				Flags:  typeIDFlags(),
				Action: r.LikesCount,
			},
			{
				Name:   "share",
				Usage:  "Share a track, artist, or album",
				Flags:  typeIDFlags(),
				Action: r.Share,
			},
			{
				Name:   "shares",
				Usage:  "Show the share count for an entity",
				Flags:  typeIDFlags(),
				Action: r.SharesCount,
			},
			{
				Name:  "comments",
				Usage: "Comment operations",
				Commands: []*cli.Command{
					{
						Name:   "list",
						Usage:  "List comments on an entity",
						Flags:  append(typeIDFlags(), outputFlags()...),
						Action: r.CommentsList,
					},
					{
						Name:  "add",
						Usage: "Comment on an entity",
						Arguments: []cli.Argument{
							&cli.StringArg{Name: "content"},
						},
						Flags:  typeIDFlags(),
						Action: r.CommentAdd,
					},
					{
						Name:  "edit",
						Usage: "Edit one of your comments",
						Arguments: []cli.Argument{
							&cli.StringArg{Name: "content"},
						},
						Flags: append(typeIDFlags(), &cli.StringFlag{
							Name:     "comment-id",
							Usage:    "Comment to edit",
							Required: true,
						}),
						Action: r.CommentEdit,
					},
					{
						Name:  "delete",
						Usage: "Delete one of your comments",
						Flags: append(typeIDFlags(), &cli.StringFlag{
							Name:     "comment-id",
							Usage:    "Comment to delete",
							Required: true,
						}),
						Action: r.CommentDelete,
					},
				},
			},
		},
	}
}

// notificationsCommand handles the notification list and live feed
func notificationsCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:    "notifications",
		Aliases: []string{"notifs"},
		Usage:   "Notification operations",
		Commands: []*cli.Command{
			{
				Name:  "list",
				Usage: "List notifications",
				Flags: append([]cli.Flag{
					&cli.BoolFlag{
						Name:  "include-read",
						Usage: "Include already read notifications",
					},
					&cli.BoolFlag{
						Name:  "offline",
						Usage: "List from the local cache instead of the API",
					},
				}, append(pageFlags(), outputFlags()...)...),
				Action: r.NotificationsList,
			},
			{
				Name:  "read",
				Usage: "Mark a notification read",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.NotificationsRead,
			},
			{
				Name:   "read-all",
				Usage:  "Mark every notification read",
				Action: r.NotificationsReadAll,
			},
			{
				Name:  "delete",
				Usage: "Delete a notification",
				Arguments: []cli.Argument{
					&cli.StringArg{Name: "id"},
				},
				Action: r.NotificationsDelete,
			},
			{
				Name:   "watch",
				Usage:  "Stream notifications live over the WebSocket channel",
				Action: r.NotificationsWatch,
			},
		},
	}
}

// uploadCommand handles artist uploads
func uploadCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "upload",
		Usage: "Artist upload operations",
		Commands: []*cli.Command{
			{
				Name:  "track",
				Usage: "Upload a track with its audio file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "title",
						Usage:    "Track title",
						Required: true,
					},
					&cli.StringFlag{
						Name:     "audio",
						Usage:    "Path to the audio file",
						Required: true,
					},
					&cli.StringFlag{
						Name:  "cover",
						Usage: "Path to a cover image",
					},
					&cli.StringFlag{
						Name:  "borough",
						Usage: "Borough ID",
					},
					&cli.StringSliceFlag{
						Name:  "genre",
						Usage: "Genre ID (repeatable)",
					},
					&cli.BoolFlag{
						Name:  "explicit",
						Usage: "Mark the track explicit",
					},
				},
				Action: r.UploadTrack,
			},
		},
	}
}

// cacheCommand handles the local sqlite cache
func cacheCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "cache",
		Usage: "Manage the local cache database",
		Commands: []*cli.Command{
			{
				Name:   "init",
				Usage:  "Initialize the cache database and run migrations",
				Action: r.CacheInit,
			},
			{
				Name:   "clear",
				Usage:  "Purge cached notifications",
				Action: r.CacheClear,
			},
			{
				Name:  "notifications",
				Usage: "List cached notifications without hitting the API",
				Flags: append([]cli.Flag{
					&cli.IntFlag{
						Name:  "limit",
						Usage: "Maximum number of items to return",
					},
				}, outputFlags()...),
				Action: r.CacheNotifications,
			},
		},
	}
}

// setupCommand handles first-run configuration
func setupCommand(r *Runner) *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Setup and configuration commands",
		Commands: []*cli.Command{
			{
				Name:  "config",
				Usage: "Write a starter config.toml",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "path",
						Aliases: []string{"p"},
						Usage:   "Destination path",
						Value:   "config.toml",
					},
				},
				Action: r.SetupConfig,
			},
		},
	}
}
