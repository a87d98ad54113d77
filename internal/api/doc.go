// Package api implements the HTTP client for the NYCMG REST API.
//
// [Client] is the single transport shared by every state container. It
// wraps request construction, bearer-token auth, JSON decoding, and the
// mapping of error responses:
//
//   - Server error payloads ({"error": "..."}) surface verbatim as
//     [*APIError] so containers can display the server's message.
//   - Transport-level failures (DNS, connection refused) wrap
//     [shared.ErrNetwork] and collapse to the generic network error string.
//
// Resource methods are grouped by file: auth.go, catalog.go, social.go,
// notifications.go, upload.go. Outgoing calls pass through an optional
// [rate.Limiter] so bulk operations cannot hammer the API.
package api
