package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nycmg/nycmg-cli/internal/shared"
	internaltest "github.com/nycmg/nycmg-cli/internal/testing"
)

func TestClient(t *testing.T) {
	t.Run("NewClient defaults", func(t *testing.T) {
		c := NewClient("", nil)
		if c.baseURL != defaultBaseURL {
			t.Errorf("expected default base URL, got %s", c.baseURL)
		}
		if c.httpClient != http.DefaultClient {
			t.Error("expected default http client")
		}
	})

	t.Run("bearer token attached when present", func(t *testing.T) {
		rt := internaltest.NewMockRoundTripper(internaltest.JSONResponse(200, `{}`), nil)
		c := NewClient("http://api.test/api/v1", &http.Client{Transport: rt})
		c.SetTokenSource(func() string { return "tok123" })

		if err := c.do(context.Background(), http.MethodGet, "/boroughs", nil, nil); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		got := rt.Requests[0].Header.Get("Authorization")
		if got != "Bearer tok123" {
			t.Errorf("expected bearer header, got %q", got)
		}
	})

	t.Run("no auth header without token", func(t *testing.T) {
		rt := internaltest.NewMockRoundTripper(internaltest.JSONResponse(200, `{}`), nil)
		c := NewClient("http://api.test/api/v1", &http.Client{Transport: rt})
		c.SetTokenSource(func() string { return "" })

		if err := c.do(context.Background(), http.MethodGet, "/boroughs", nil, nil); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}

		if h := rt.Requests[0].Header.Get("Authorization"); h != "" {
			t.Errorf("expected no auth header, got %q", h)
		}
	})

	t.Run("server error payload surfaces verbatim", func(t *testing.T) {
		rt := internaltest.NewMockRoundTripper(internaltest.JSONResponse(404, `{"error":"Track not found"}`), nil)
		c := NewClient("http://api.test/api/v1", &http.Client{Transport: rt})

		err := c.do(context.Background(), http.MethodGet, "/tracks/xyz", nil, nil)

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *APIError, got %v", err)
		}
		if apiErr.Message != "Track not found" {
			t.Errorf("expected server message, got %q", apiErr.Message)
		}
		if apiErr.Status != 404 {
			t.Errorf("expected status 404, got %d", apiErr.Status)
		}
	})

	t.Run("non-JSON error body falls back to status text", func(t *testing.T) {
		rt := internaltest.NewMockRoundTripper(internaltest.JSONResponse(500, `boom`), nil)
		c := NewClient("http://api.test/api/v1", &http.Client{Transport: rt})

		err := c.do(context.Background(), http.MethodGet, "/tracks", nil, nil)

		var apiErr *APIError
		if !errors.As(err, &apiErr) {
			t.Fatalf("expected *APIError, got %v", err)
		}
		if apiErr.Message != http.StatusText(500) {
			t.Errorf("expected status text fallback, got %q", apiErr.Message)
		}
	})

	t.Run("transport failure maps to network error", func(t *testing.T) {
		rt := internaltest.NewMockRoundTripper(nil, errors.New("dial tcp: connection refused"))
		c := NewClient("http://api.test/api/v1", &http.Client{Transport: rt})

		err := c.do(context.Background(), http.MethodGet, "/tracks", nil, nil)
		if !errors.Is(err, shared.ErrNetwork) {
			t.Errorf("expected ErrNetwork, got %v", err)
		}
		if !strings.Contains(err.Error(), "Network error occurred") {
			t.Errorf("expected generic network message, got %q", err.Error())
		}
	})

	t.Run("pageQuery rejects negative values", func(t *testing.T) {
		if _, err := pageQuery(-1, 0); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument for negative limit, got %v", err)
		}
		if _, err := pageQuery(0, -1); !errors.Is(err, shared.ErrInvalidArgument) {
			t.Errorf("expected ErrInvalidArgument for negative offset, got %v", err)
		}
	})
}

func TestAuthEndpoints(t *testing.T) {
	t.Run("Login", func(t *testing.T) {
		t.Run("success returns user and token", func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/auth/login" || r.Method != http.MethodPost {
					t.Errorf("unexpected request %s %s", r.Method, r.URL.Path)
				}
				w.Write([]byte(`{"user":{"id":"u1","email":"a@b.com","username":"ana"},"token":"jwt1"}`))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, nil)
			resp, err := c.Login(context.Background(), Credentials{Email: "a@b.com", Password: "x"})
			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if resp.Token != "jwt1" {
				t.Errorf("expected token jwt1, got %s", resp.Token)
			}
			if resp.User == nil || resp.User.ID != "u1" {
				t.Errorf("unexpected user %+v", resp.User)
			}
		})

		t.Run("missing credentials fail before any network call", func(t *testing.T) {
			c := NewClient("http://unreachable.invalid", nil)
			_, err := c.Login(context.Background(), Credentials{Email: "a@b.com"})
			if !errors.Is(err, shared.ErrMissingArgument) {
				t.Errorf("expected ErrMissingArgument, got %v", err)
			}
		})
	})

	t.Run("Register validates required fields", func(t *testing.T) {
		c := NewClient("http://unreachable.invalid", nil)
		_, err := c.Register(context.Background(), Registration{Email: "a@b.com"})
		if !errors.Is(err, shared.ErrMissingArgument) {
			t.Errorf("expected ErrMissingArgument, got %v", err)
		}
	})
}
