// Package realtime maintains the WebSocket notification channel.
//
// A Channel is constructed and injected by the caller; nothing here is a
// package-level singleton. The channel registers the session with the
// server after connecting and delivers pushed notifications to a single
// handler.
package realtime

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"
	"github.com/nycmg/nycmg-cli/internal/models"
	"github.com/nycmg/nycmg-cli/internal/shared"
)

// State describes the channel lifecycle.
type State int

const (
	StateDisconnected State = iota
	StateConnecting
	StateConnected
)

func (s State) String() string {
	switch s {
	case StateConnecting:
		return "connecting"
	case StateConnected:
		return "connected"
	}
	return "disconnected"
}

// Handler receives pushed notifications. The channel holds exactly one
// handler; registering a new one replaces the previous.
type Handler func(models.Notification)

// Conn is the subset of a WebSocket connection the channel uses.
// *websocket.Conn satisfies it.
type Conn interface {
	ReadJSON(v any) error
	WriteJSON(v any) error
	Close() error
}

// DialFunc opens a WebSocket connection to url.
type DialFunc func(ctx context.Context, url string, header http.Header) (Conn, error)

// envelope is the wire form of channel messages in both directions.
type envelope struct {
	Event        string               `json:"event"`
	UserID       string               `json:"user_id,omitempty"`
	SessionID    string               `json:"session_id,omitempty"`
	Notification *models.Notification `json:"notification,omitempty"`
}

// Options configures a Channel.
type Options struct {
	URL              string
	ReconnectBase    time.Duration
	MaxReconnects    int
	HandshakeTimeout time.Duration
}

// OptionsFromConfig builds channel options from the realtime config
// section, applying defaults for unset fields.
func OptionsFromConfig(cfg shared.RealtimeConfig) Options {
	opts := Options{
		URL:              cfg.URL,
		ReconnectBase:    time.Duration(cfg.ReconnectBaseMS) * time.Millisecond,
		MaxReconnects:    cfg.MaxReconnects,
		HandshakeTimeout: time.Duration(cfg.HandshakeTimeoutS) * time.Second,
	}
	if opts.ReconnectBase <= 0 {
		opts.ReconnectBase = time.Second
	}
	if opts.MaxReconnects <= 0 {
		opts.MaxReconnects = 5
	}
	if opts.HandshakeTimeout <= 0 {
		opts.HandshakeTimeout = 10 * time.Second
	}
	return opts
}

// Channel is the live notification feed for one session.
//
// Dial failures are retried with linear backoff (attempt * ReconnectBase)
// up to MaxReconnects attempts in total, then the channel gives up and
// stays disconnected. A connection dropped by the server is not redialed;
// the caller decides whether to reconnect.
type Channel struct {
	mu      sync.Mutex
	dial    DialFunc
	opts    Options
	logger  *log.Logger
	state   State
	conn    Conn
	handler Handler

	attempts int
	closing  bool
}

// NewChannel creates a channel. dial may be nil, in which case a gorilla
// WebSocket dialer with the configured handshake timeout is used.
func NewChannel(opts Options, dial DialFunc, logger *log.Logger) *Channel {
	if dial == nil {
		dial = websocketDial(opts.HandshakeTimeout)
	}
	return &Channel{dial: dial, opts: opts, logger: logger}
}

// websocketDial returns the production DialFunc.
func websocketDial(timeout time.Duration) DialFunc {
	return func(ctx context.Context, url string, header http.Header) (Conn, error) {
		dialer := websocket.Dialer{HandshakeTimeout: timeout}
		conn, resp, err := dialer.DialContext(ctx, url, header)
		if err != nil {
			if resp != nil {
				resp.Body.Close()
			}
			return nil, fmt.Errorf("%w: %v", shared.ErrNetwork, err)
		}
		return conn, nil
	}
}

// OnNotification registers the notification handler. The last registered
// handler wins.
func (c *Channel) OnNotification(h Handler) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.handler = h
}

// State reports the current channel state.
func (c *Channel) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Connect opens the channel and registers the session. It is a no-op when
// the channel is already connecting or connected. On dial failure it
// returns the error and keeps retrying in the background.
func (c *Channel) Connect(ctx context.Context, token, userID string) error {
	c.mu.Lock()
	if c.state != StateDisconnected {
		c.mu.Unlock()
		return nil
	}
	c.state = StateConnecting
	c.attempts = 0
	c.closing = false
	c.mu.Unlock()

	return c.connect(ctx, token, userID)
}

func (c *Channel) connect(ctx context.Context, token, userID string) error {
	c.mu.Lock()
	if c.closing {
		c.mu.Unlock()
		return nil
	}
	c.mu.Unlock()

	header := http.Header{}
	if token != "" {
		header.Set("Authorization", "Bearer "+token)
	}

	conn, err := c.dial(ctx, c.opts.URL, header)
	if err != nil {
		return c.retry(ctx, token, userID, err)
	}

	c.mu.Lock()
	if c.closing {
		c.mu.Unlock()
		conn.Close()
		return nil
	}
	c.conn = conn
	c.state = StateConnected
	c.attempts = 0
	c.mu.Unlock()

	register := envelope{Event: "register", UserID: userID, SessionID: shared.GenerateID()}
	if err := conn.WriteJSON(register); err != nil {
		c.mu.Lock()
		c.conn = nil
		c.state = StateDisconnected
		c.mu.Unlock()
		conn.Close()
		return fmt.Errorf("failed to register session: %w", err)
	}

	if c.logger != nil {
		c.logger.Debug("notification channel connected", "url", c.opts.URL)
	}

	go c.readLoop(conn)
	return nil
}

// retry counts a failed dial attempt and schedules the next one, or gives
// up once the attempt budget is spent.
func (c *Channel) retry(ctx context.Context, token, userID string, err error) error {
	c.mu.Lock()
	c.attempts++
	attempt := c.attempts
	if c.closing || attempt >= c.opts.MaxReconnects {
		c.state = StateDisconnected
		c.mu.Unlock()
		if c.logger != nil {
			c.logger.Warn("giving up on notification channel", "attempts", attempt, "error", err)
		}
		return fmt.Errorf("connect failed after %d attempts: %w", attempt, err)
	}
	c.mu.Unlock()

	delay := time.Duration(attempt) * c.opts.ReconnectBase
	if c.logger != nil {
		c.logger.Debug("scheduling reconnect", "attempt", attempt, "delay", delay)
	}

	go func() {
		timer := time.NewTimer(delay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			c.mu.Lock()
			c.state = StateDisconnected
			c.mu.Unlock()
		case <-timer.C:
			c.connect(ctx, token, userID)
		}
	}()
	return err
}

// readLoop delivers notification events until the connection drops.
func (c *Channel) readLoop(conn Conn) {
	for {
		var env envelope
		if err := conn.ReadJSON(&env); err != nil {
			c.mu.Lock()
			closing := c.closing
			if c.conn == conn {
				c.conn = nil
				c.state = StateDisconnected
			}
			c.mu.Unlock()

			if !closing && c.logger != nil {
				c.logger.Warn("notification channel closed", "error", err)
			}
			return
		}

		if env.Event != "notification" || env.Notification == nil {
			continue
		}

		c.mu.Lock()
		handler := c.handler
		c.mu.Unlock()
		if handler != nil {
			handler(*env.Notification)
		}
	}
}

// Disconnect closes the channel. Safe to call at any time, including when
// already disconnected.
func (c *Channel) Disconnect() {
	c.mu.Lock()
	c.closing = true
	conn := c.conn
	c.conn = nil
	c.state = StateDisconnected
	c.mu.Unlock()

	if conn != nil {
		conn.Close()
	}
}
