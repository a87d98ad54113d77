package api

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"

	"github.com/nycmg/nycmg-cli/internal/models"
	"github.com/nycmg/nycmg-cli/internal/shared"
)

// TrackUpload describes a multipart track upload.
type TrackUpload struct {
	Title      string
	BoroughID  string
	GenreIDs   []string
	IsExplicit bool
	AudioPath  string // local path of the audio file
	CoverPath  string // optional cover image
}

// validate catches missing required fields before any network call.
func (u TrackUpload) validate() error {
	if u.Title == "" {
		return fmt.Errorf("%w: title is required", shared.ErrMissingArgument)
	}
	if u.AudioPath == "" {
		return fmt.Errorf("%w: audio file is required", shared.ErrMissingArgument)
	}
	return nil
}

// AlbumUpload describes a multipart album creation request.
type AlbumUpload struct {
	Title     string
	Kind      string // "ep" or "album"
	TrackIDs  []string
	CoverPath string
}

func (u AlbumUpload) validate() error {
	if u.Title == "" {
		return fmt.Errorf("%w: title is required", shared.ErrMissingArgument)
	}
	if u.Kind != "" && u.Kind != "ep" && u.Kind != "album" {
		return fmt.Errorf("%w: kind must be \"ep\" or \"album\"", shared.ErrInvalidArgument)
	}
	return nil
}

// ArtistProfileUpdate describes a multipart artist profile update.
type ArtistProfileUpdate struct {
	Name      string
	Bio       string
	BoroughID string
	ImagePath string
}

// UploadTrack uploads a track with its audio file and metadata.
func (c *Client) UploadTrack(ctx context.Context, upload TrackUpload) (*models.Track, error) {
	if err := upload.validate(); err != nil {
		return nil, err
	}

	fields := map[string][]string{
		"title":       {upload.Title},
		"is_explicit": {strconv.FormatBool(upload.IsExplicit)},
	}
	if upload.BoroughID != "" {
		fields["borough_id"] = []string{upload.BoroughID}
	}
	if len(upload.GenreIDs) > 0 {
		fields["genre_ids[]"] = upload.GenreIDs
	}

	files := map[string]string{"audio": upload.AudioPath}
	if upload.CoverPath != "" {
		files["cover"] = upload.CoverPath
	}

	var resp struct {
		Track models.Track `json:"track"`
	}
	if err := c.doMultipart(ctx, http.MethodPost, "/track-upload/upload", fields, files, &resp); err != nil {
		return nil, err
	}
	return &resp.Track, nil
}

// CreateAlbum creates an album or EP, optionally with a cover image.
func (c *Client) CreateAlbum(ctx context.Context, upload AlbumUpload) (*models.Album, error) {
	if err := upload.validate(); err != nil {
		return nil, err
	}

	fields := map[string][]string{"title": {upload.Title}}
	if upload.Kind != "" {
		fields["kind"] = []string{upload.Kind}
	}
	if len(upload.TrackIDs) > 0 {
		fields["track_ids[]"] = upload.TrackIDs
	}

	files := map[string]string{}
	if upload.CoverPath != "" {
		files["cover"] = upload.CoverPath
	}

	var resp struct {
		Album models.Album `json:"album"`
	}
	if err := c.doMultipart(ctx, http.MethodPost, "/albums", fields, files, &resp); err != nil {
		return nil, err
	}
	return &resp.Album, nil
}

// UpdateArtistProfile updates an artist profile, optionally replacing the
// profile image.
func (c *Client) UpdateArtistProfile(ctx context.Context, artistID string, update ArtistProfileUpdate) (*models.Artist, error) {
	fields := map[string][]string{}
	if update.Name != "" {
		fields["name"] = []string{update.Name}
	}
	if update.Bio != "" {
		fields["bio"] = []string{update.Bio}
	}
	if update.BoroughID != "" {
		fields["borough_id"] = []string{update.BoroughID}
	}

	files := map[string]string{}
	if update.ImagePath != "" {
		files["image"] = update.ImagePath
	}

	path := "/artist-profile/" + url.PathEscape(artistID) + "/profile"

	var resp struct {
		Artist models.Artist `json:"artist"`
	}
	if err := c.doMultipart(ctx, http.MethodPut, path, fields, files, &resp); err != nil {
		return nil, err
	}
	return &resp.Artist, nil
}

// doMultipart performs an authenticated multipart/form-data request with the
// given form fields and file parts.
func (c *Client) doMultipart(ctx context.Context, method, path string, fields map[string][]string, files map[string]string, result any) error {
	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)

	for name, values := range fields {
		for _, value := range values {
			if err := writer.WriteField(name, value); err != nil {
				return fmt.Errorf("failed to write form field %s: %w", name, err)
			}
		}
	}

	for name, filePath := range files {
		if err := attachFile(writer, name, filePath); err != nil {
			return err
		}
	}

	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize multipart body: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, &buf)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", writer.FormDataContentType())
	c.authorize(req)

	return c.send(req, result)
}

func attachFile(writer *multipart.Writer, name, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("%w: cannot open %s: %v", shared.ErrInvalidInput, path, err)
	}
	defer file.Close()

	part, err := writer.CreateFormFile(name, filepath.Base(path))
	if err != nil {
		return fmt.Errorf("failed to create form file %s: %w", name, err)
	}

	if _, err := io.Copy(part, file); err != nil {
		return fmt.Errorf("failed to copy file %s: %w", path, err)
	}
	return nil
}
