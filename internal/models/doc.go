// Package models defines domain entities for the NYCMG music discovery platform.
//
// The package contains two categories of types:
//
// 1. Catalog entities mirroring server-owned resources:
//   - [User] : Account profile and artist flag
//   - [Borough] / [Genre] : Discovery dimensions
//   - [Artist], [Track], [Album] : The content catalog
//
// 2. Social and messaging entities:
//   - [Comment] : Threaded per-entity comments
//   - [Notification] : Server-pushed or fetched notification records
//   - [EntityRef] : Tagged reference identifying the target of a like,
//     share, or comment across heterogeneous entity kinds
//
// All entities are client-side copies of server truth; none are shared by
// reference between state containers.
package models
