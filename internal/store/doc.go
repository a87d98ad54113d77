// Package store implements the client-side state containers that mirror
// server truth between calls to the NYCMG API.
//
// Each container owns one slice of state plus its mutation operations:
//
//   - [CollectionStore] / [DetailStore] : generic paged collections and
//     fetch-by-id singletons for catalog resources (boroughs, genres,
//     artists, tracks, albums)
//   - [SessionStore] : the authenticated session, with pluggable token
//     persistence via [TokenStore]
//   - [LikeStore], [FollowStore], [CommentStore], [ShareStore] : keyed
//     social-interaction state indexed by [models.EntityRef] or user ID
//   - [NotificationStore] : notification list fed by both fetches and the
//     real-time channel
//
// Every asynchronous operation follows the same lifecycle: loading is set
// on dispatch, and either data or an error message is recorded on
// settlement. Server error messages surface verbatim; transport failures
// collapse to the generic network error string. Fetch operations carry a
// per-container monotonic sequence number and completions that are not the
// latest issued are discarded, so overlapping requests can never leave a
// stale result visible.
//
// Containers are safe for concurrent use; all state is guarded by a mutex
// and accessors return copies.
package store
