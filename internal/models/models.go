package models

import "time"

// User represents an account on the platform.
type User struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Username  string    `json:"username"`
	Bio       string    `json:"bio,omitempty"`
	IsArtist  bool      `json:"is_artist"`
	BoroughID string    `json:"borough_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Borough represents one of the five discovery regions.
type Borough struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// Genre represents a music genre tag.
type Genre struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Artist represents an artist profile.
type Artist struct {
	ID         string   `json:"id"`
	UserID     string   `json:"user_id"`
	Name       string   `json:"name"`
	Bio        string   `json:"bio,omitempty"`
	BoroughID  string   `json:"borough_id,omitempty"`
	GenreIDs   []string `json:"genre_ids,omitempty"`
	ImageURL   string   `json:"image_url,omitempty"`
	TrackCount int      `json:"track_count"`
}

// Track represents a single uploaded track.
type Track struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ArtistID    string    `json:"artist_id"`
	ArtistName  string    `json:"artist_name,omitempty"`
	AlbumID     string    `json:"album_id,omitempty"`
	BoroughID   string    `json:"borough_id,omitempty"`
	GenreIDs    []string  `json:"genre_ids,omitempty"`
	Duration    int       `json:"duration"` // seconds
	IsExplicit  bool      `json:"is_explicit"`
	AudioFile   string    `json:"audio_file,omitempty"`
	CoverURL    string    `json:"cover_url,omitempty"`
	ReleaseDate time.Time `json:"release_date,omitzero"`
	CreatedAt   time.Time `json:"created_at"`
}

// Album represents a track collection (EP or full album).
type Album struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	ArtistID    string    `json:"artist_id"`
	ArtistName  string    `json:"artist_name,omitempty"`
	Kind        string    `json:"kind,omitempty"` // "ep" or "album"
	CoverURL    string    `json:"cover_url,omitempty"`
	TrackCount  int       `json:"track_count"`
	Tracks      []Track   `json:"tracks,omitempty"`
	ReleaseDate time.Time `json:"release_date,omitzero"`
	CreatedAt   time.Time `json:"created_at"`
}

// Comment represents a comment on a track, artist, or album.
type Comment struct {
	ID        string    `json:"id"`
	UserID    string    `json:"user_id"`
	Username  string    `json:"username,omitempty"`
	Content   string    `json:"content"`
	TrackID   string    `json:"track_id,omitempty"`
	ArtistID  string    `json:"artist_id,omitempty"`
	AlbumID   string    `json:"album_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Notification represents a server-sourced notification record.
type Notification struct {
	ID        string    `json:"id"`
	Type      string    `json:"type"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"is_read"`
	CreatedAt time.Time `json:"created_at"`
}

// Page holds pagination metadata for a fetched collection.
type Page struct {
	TotalCount  int `json:"total_count"`
	CurrentPage int `json:"current_page"`
	TotalPages  int `json:"total_pages"`
	Limit       int `json:"limit"`
}
