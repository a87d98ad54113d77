package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/nycmg/nycmg-cli/internal/models"
)

// interactionPayload is the wire form of an [models.EntityRef] for like,
// share, and comment requests. Exactly one ID field is set; it is built from
// the ref once here and never inferred downstream.
type interactionPayload struct {
	TrackID   string `json:"track_id,omitempty"`
	ArtistID  string `json:"artist_id,omitempty"`
	AlbumID   string `json:"album_id,omitempty"`
	CommentID string `json:"comment_id,omitempty"`
	Content   string `json:"content,omitempty"`
}

func payloadFor(ref models.EntityRef) (interactionPayload, error) {
	if err := ref.Validate(); err != nil {
		return interactionPayload{}, err
	}

	switch ref.Kind {
	case models.KindTrack:
		return interactionPayload{TrackID: ref.ID}, nil
	case models.KindArtist:
		return interactionPayload{ArtistID: ref.ID}, nil
	case models.KindAlbum:
		return interactionPayload{AlbumID: ref.ID}, nil
	case models.KindComment:
		return interactionPayload{CommentID: ref.ID}, nil
	}
	return interactionPayload{}, fmt.Errorf("unsupported entity kind %q", ref.Kind)
}

// refPath renders the /{type}/{id} suffix used by count/list endpoints.
func refPath(ref models.EntityRef) string {
	return "/" + string(ref.Kind) + "/" + url.PathEscape(ref.ID)
}

// Follow follows the user with the given ID.
func (c *Client) Follow(ctx context.Context, userID string) error {
	body := map[string]string{"following_id": userID}
	return c.do(ctx, http.MethodPost, "/follows", body, nil)
}

// Unfollow removes a follow relationship.
func (c *Client) Unfollow(ctx context.Context, userID string) error {
	return c.do(ctx, http.MethodDelete, "/follows/"+url.PathEscape(userID), nil, nil)
}

// Followers lists the users following userID.
func (c *Client) Followers(ctx context.Context, userID string) ([]models.User, error) {
	var resp struct {
		Followers []models.User `json:"followers"`
	}
	if err := c.do(ctx, http.MethodGet, "/follows/"+url.PathEscape(userID)+"/followers", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Followers, nil
}

// Following lists the users userID follows.
func (c *Client) Following(ctx context.Context, userID string) ([]models.User, error) {
	var resp struct {
		Following []models.User `json:"following"`
	}
	if err := c.do(ctx, http.MethodGet, "/follows/"+url.PathEscape(userID)+"/following", nil, &resp); err != nil {
		return nil, err
	}
	return resp.Following, nil
}

// FollowingStatus reports whether the authenticated user follows userID.
func (c *Client) FollowingStatus(ctx context.Context, userID string) (bool, error) {
	var resp struct {
		IsFollowing bool `json:"is_following"`
	}
	if err := c.do(ctx, http.MethodGet, "/follows/following/"+url.PathEscape(userID), nil, &resp); err != nil {
		return false, err
	}
	return resp.IsFollowing, nil
}

// Like records a like on the referenced entity.
func (c *Client) Like(ctx context.Context, ref models.EntityRef) error {
	body, err := payloadFor(ref)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/likes", body, nil)
}

// Unlike removes a like from the referenced entity.
func (c *Client) Unlike(ctx context.Context, ref models.EntityRef) error {
	body, err := payloadFor(ref)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodDelete, "/likes", body, nil)
}

// LikesCount retrieves the like count for the referenced entity.
func (c *Client) LikesCount(ctx context.Context, ref models.EntityRef) (int, error) {
	if err := ref.Validate(); err != nil {
		return 0, err
	}

	var resp struct {
		Count int `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/likes"+refPath(ref), nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// CheckLike reports whether the authenticated user has liked the entity.
func (c *Client) CheckLike(ctx context.Context, ref models.EntityRef) (bool, error) {
	body, err := payloadFor(ref)
	if err != nil {
		return false, err
	}

	var resp struct {
		Liked bool `json:"liked"`
	}
	if err := c.do(ctx, http.MethodPost, "/likes/check", body, &resp); err != nil {
		return false, err
	}
	return resp.Liked, nil
}

// Share records a share of the referenced entity.
//
// The server owns the share count; callers observe the effect only through
// a subsequent [Client.SharesCount].
func (c *Client) Share(ctx context.Context, ref models.EntityRef) error {
	body, err := payloadFor(ref)
	if err != nil {
		return err
	}
	return c.do(ctx, http.MethodPost, "/shares", body, nil)
}

// SharesCount retrieves the share count for the referenced entity.
func (c *Client) SharesCount(ctx context.Context, ref models.EntityRef) (int, error) {
	if err := ref.Validate(); err != nil {
		return 0, err
	}

	var resp struct {
		Count int `json:"count"`
	}
	if err := c.do(ctx, http.MethodGet, "/shares"+refPath(ref), nil, &resp); err != nil {
		return 0, err
	}
	return resp.Count, nil
}

// CreateComment posts a comment on the referenced entity.
func (c *Client) CreateComment(ctx context.Context, ref models.EntityRef, content string) (*models.Comment, error) {
	body, err := payloadFor(ref)
	if err != nil {
		return nil, err
	}
	body.Content = content

	var resp struct {
		Comment models.Comment `json:"comment"`
	}
	if err := c.do(ctx, http.MethodPost, "/comments", body, &resp); err != nil {
		return nil, err
	}
	return &resp.Comment, nil
}

// Comments lists the comments on the referenced entity in server order.
func (c *Client) Comments(ctx context.Context, ref models.EntityRef) ([]models.Comment, error) {
	if err := ref.Validate(); err != nil {
		return nil, err
	}

	var resp struct {
		Comments []models.Comment `json:"comments"`
	}
	if err := c.do(ctx, http.MethodGet, "/comments"+refPath(ref), nil, &resp); err != nil {
		return nil, err
	}
	return resp.Comments, nil
}

// UpdateComment edits an existing comment's content.
func (c *Client) UpdateComment(ctx context.Context, commentID, content string) (*models.Comment, error) {
	body := map[string]string{"content": content}

	var resp struct {
		Comment models.Comment `json:"comment"`
	}
	if err := c.do(ctx, http.MethodPut, "/comments/"+url.PathEscape(commentID), body, &resp); err != nil {
		return nil, err
	}
	return &resp.Comment, nil
}

// DeleteComment removes a comment.
func (c *Client) DeleteComment(ctx context.Context, commentID string) error {
	return c.do(ctx, http.MethodDelete, "/comments/"+url.PathEscape(commentID), nil, nil)
}
