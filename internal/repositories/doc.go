// Package repositories provides sqlite-backed local persistence: the
// session token slot and the offline notification cache.
package repositories
