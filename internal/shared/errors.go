package shared

import "fmt"

var (
	// Configuration errors
	ErrMissingConfig = fmt.Errorf("configuration not found")
	ErrInvalidConfig = fmt.Errorf("invalid configuration")

	// Authentication errors
	ErrNotAuthenticated = fmt.Errorf("not authenticated")
	ErrTokenExpired     = fmt.Errorf("access token expired")

	// API and transport errors
	ErrAPIRequest = fmt.Errorf("API request failed")
	ErrNetwork    = fmt.Errorf("Network error occurred")
	ErrNotFound   = fmt.Errorf("resource not found")

	// Real-time channel errors
	ErrChannelClosed = fmt.Errorf("channel disconnected")

	// Input validation errors
	ErrInvalidInput    = fmt.Errorf("invalid input")
	ErrMissingArgument = fmt.Errorf("missing required argument")
	ErrInvalidArgument = fmt.Errorf("invalid argument")
	ErrInvalidFlag     = fmt.Errorf("invalid flag value")
)
