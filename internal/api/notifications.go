package api

import (
	"context"
	"net/http"
	"net/url"
	"strconv"

	"github.com/nycmg/nycmg-cli/internal/models"
)

// NotificationsPage is the paginated response of GET /notifications.
type NotificationsPage struct {
	Notifications []models.Notification `json:"notifications"`
	models.Page
}

// Notifications retrieves a page of notifications for the authenticated
// user. When includeRead is false only unread notifications are returned.
func (c *Client) Notifications(ctx context.Context, limit, offset int, includeRead bool) (*NotificationsPage, error) {
	q, err := pageQuery(limit, offset)
	if err != nil {
		return nil, err
	}
	q.Set("includeRead", strconv.FormatBool(includeRead))

	var page NotificationsPage
	if err := c.do(ctx, http.MethodGet, withQuery("/notifications", q), nil, &page); err != nil {
		return nil, err
	}
	return &page, nil
}

// MarkRead marks a single notification as read.
func (c *Client) MarkRead(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodPut, "/notifications/"+url.PathEscape(id)+"/read", nil, nil)
}

// MarkAllRead marks every notification for the authenticated user as read.
func (c *Client) MarkAllRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPut, "/notifications/read-all", nil, nil)
}

// DeleteNotification removes a notification.
func (c *Client) DeleteNotification(ctx context.Context, id string) error {
	return c.do(ctx, http.MethodDelete, "/notifications/"+url.PathEscape(id), nil, nil)
}
