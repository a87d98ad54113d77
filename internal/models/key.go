package models

import (
	"fmt"
	"strings"
)

// EntityKind discriminates the target of a social interaction.
type EntityKind string

const (
	KindTrack   EntityKind = "track"
	KindArtist  EntityKind = "artist"
	KindAlbum   EntityKind = "album"
	KindComment EntityKind = "comment"
)

// Valid reports whether k is one of the known entity kinds.
func (k EntityKind) Valid() bool {
	switch k {
	case KindTrack, KindArtist, KindAlbum, KindComment:
		return true
	}
	return false
}

// EntityRef identifies a likeable/shareable/commentable resource.
//
// It replaces the "type:id" composite strings used on the wire with a tagged
// value that has structural equality, so it can be used directly as a map
// key. The ref is constructed exactly once at the call site; downstream code
// never infers the kind from which ID field happens to be set.
type EntityRef struct {
	Kind EntityKind
	ID   string
}

// TrackRef returns an EntityRef for a track.
func TrackRef(id string) EntityRef { return EntityRef{Kind: KindTrack, ID: id} }

// ArtistRef returns an EntityRef for an artist.
func ArtistRef(id string) EntityRef { return EntityRef{Kind: KindArtist, ID: id} }

// AlbumRef returns an EntityRef for an album.
func AlbumRef(id string) EntityRef { return EntityRef{Kind: KindAlbum, ID: id} }

// CommentRef returns an EntityRef for a comment.
func CommentRef(id string) EntityRef { return EntityRef{Kind: KindComment, ID: id} }

// Validate checks that the ref carries a known kind and a non-empty ID.
func (r EntityRef) Validate() error {
	if !r.Kind.Valid() {
		return fmt.Errorf("unknown entity kind %q", r.Kind)
	}
	if r.ID == "" {
		return fmt.Errorf("empty entity id")
	}
	return nil
}

// Key renders the wire form "kind:id" used by the REST API.
func (r EntityRef) Key() string {
	return string(r.Kind) + ":" + r.ID
}

// String implements fmt.Stringer.
func (r EntityRef) String() string { return r.Key() }

// ParseKey parses a "kind:id" composite key into an EntityRef.
func ParseKey(key string) (EntityRef, error) {
	kind, id, ok := strings.Cut(key, ":")
	if !ok {
		return EntityRef{}, fmt.Errorf("malformed entity key %q", key)
	}

	ref := EntityRef{Kind: EntityKind(kind), ID: id}
	if err := ref.Validate(); err != nil {
		return EntityRef{}, err
	}
	return ref, nil
}

// RefFromComment derives the EntityRef a comment is attached to.
//
// Exactly one of the comment's target IDs is expected to be set. When more
// than one is present the fixed priority track > artist > album applies,
// matching the API's key derivation.
func RefFromComment(c Comment) (EntityRef, error) {
	switch {
	case c.TrackID != "":
		return TrackRef(c.TrackID), nil
	case c.ArtistID != "":
		return ArtistRef(c.ArtistID), nil
	case c.AlbumID != "":
		return AlbumRef(c.AlbumID), nil
	}
	return EntityRef{}, fmt.Errorf("comment %s has no target entity", c.ID)
}
