package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nycmg/nycmg-cli/internal/models"
)

// TrackFilter holds query parameters for GET /tracks.
type TrackFilter struct {
	Search     string
	BoroughIDs []string
	GenreIDs   []string
	ArtistID   string
	IsExplicit *bool
	SortBy     string
	SortOrder  string
	Limit      int
	Offset     int
}

func (f TrackFilter) query() (url.Values, error) {
	q, err := pageQuery(f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}

	if f.Search != "" {
		q.Set("search", f.Search)
	}
	for _, id := range f.BoroughIDs {
		q.Add("boroughIds[]", id)
	}
	for _, id := range f.GenreIDs {
		q.Add("genreIds[]", id)
	}
	if f.ArtistID != "" {
		q.Set("artistId", f.ArtistID)
	}
	if f.IsExplicit != nil {
		q.Set("isExplicit", strconv.FormatBool(*f.IsExplicit))
	}
	if f.SortBy != "" {
		q.Set("sortBy", f.SortBy)
	}
	if f.SortOrder != "" {
		q.Set("sortOrder", f.SortOrder)
	}
	return q, nil
}

// ListFilter holds the common search/pagination parameters for artist and
// album listings.
type ListFilter struct {
	Search    string
	BoroughID string
	Limit     int
	Offset    int
}

func (f ListFilter) query() (url.Values, error) {
	q, err := pageQuery(f.Limit, f.Offset)
	if err != nil {
		return nil, err
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	if f.BoroughID != "" {
		q.Set("boroughId", f.BoroughID)
	}
	return q, nil
}

// TracksPage is the paginated response of GET /tracks.
type TracksPage struct {
	Tracks []models.Track `json:"tracks"`
	models.Page
}

// ArtistsPage is the paginated response of GET /artists.
type ArtistsPage struct {
	Artists []models.Artist `json:"artists"`
	models.Page
}

// AlbumsPage is the paginated response of GET /albums.
type AlbumsPage struct {
	Albums []models.Album `json:"albums"`
	models.Page
}

// Boroughs retrieves all boroughs.
func (c *Client) Boroughs(ctx context.Context) ([]models.Borough, error) {
	var resp struct {
		Boroughs []models.Borough `json:"boroughs"`
	}
	if err := c.do(ctx, http.MethodGet, "/boroughs", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Boroughs, nil
}

// Genres retrieves all genres.
func (c *Client) Genres(ctx context.Context) ([]models.Genre, error) {
	var resp struct {
		Genres []models.Genre `json:"genres"`
	}
	if err := c.do(ctx, http.MethodGet, "/genres", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Genres, nil
}

// Artists retrieves a page of artists matching the filter.
func (c *Client) Artists(ctx context.Context, filter ListFilter) (*ArtistsPage, error) {
	q, err := filter.query()
	if err != nil {
		return nil, err
	}

	var page ArtistsPage
	if err := c.do(ctx, http.MethodGet, withQuery("/artists", q), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Artist retrieves a single artist by ID.
func (c *Client) Artist(ctx context.Context, id string) (*models.Artist, error) {
	var resp struct {
		Artist models.Artist `json:"artist"`
	}
	if err := c.do(ctx, http.MethodGet, "/artists/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Artist, nil
}

// Tracks retrieves a page of tracks matching the filter.
func (c *Client) Tracks(ctx context.Context, filter TrackFilter) (*TracksPage, error) {
	q, err := filter.query()
	if err != nil {
		return nil, err
	}

	var page TracksPage
	if err := c.do(ctx, http.MethodGet, withQuery("/tracks", q), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Track retrieves a single track by ID.
func (c *Client) Track(ctx context.Context, id string) (*models.Track, error) {
	var resp struct {
		Track models.Track `json:"track"`
	}
	if err := c.do(ctx, http.MethodGet, "/tracks/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Track, nil
}

// Albums retrieves a page of albums matching the filter.
func (c *Client) Albums(ctx context.Context, filter ListFilter) (*AlbumsPage, error) {
	q, err := filter.query()
	if err != nil {
		return nil, err
	}

	var page AlbumsPage
	if err := c.do(ctx, http.MethodGet, withQuery("/albums", q), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// Album retrieves a single album by ID, including its track listing.
func (c *Client) Album(ctx context.Context, id string) (*models.Album, error) {
	var resp struct {
		Album models.Album `json:"album"`
	}
	if err := c.do(ctx, http.MethodGet, "/albums/"+url.PathEscape(id), nil, &resp); err != nil {
		return nil, err
	}
	return &resp.Album, nil
}

// StreamURL returns the URL of the range-capable audio stream for a stored
// file. The stream itself is consumed by external players.
func (c *Client) StreamURL(filename string) string {
	return fmt.Sprintf("%s/audio/stream/%s", c.baseURL, url.PathEscape(filename))
}
