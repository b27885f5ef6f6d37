// Package entity defines the core domain entities and validation logic for
// the application: the Article aggregate, the derived author statistics,
// the identity-store user record, and domain-specific errors.
package entity

import "time"

// Article represents a published text article.
//
// ID is opaque and server-assigned. AuthorID, AuthorName, and CreatedAt are
// immutable after creation; AuthorName is a snapshot of the author's display
// name at publish time and is deliberately not kept in sync with later
// profile renames.
type Article struct {
	ID         string
	Title      string
	Content    string
	CoverImage string
	AuthorID   string
	AuthorName string
	CreatedAt  time.Time
}

// AuthorStats is the derived per-author aggregate: authors are not stored
// as first-class records, they exist only as distinct AuthorID values across
// articles. Name comes from the newest article in the group (a snapshot,
// possibly stale); Image is resolved from the identity store and may be
// empty when the profile has none.
type AuthorStats struct {
	AuthorID      string
	Name          string
	TotalArticles int64
	Image         string
}

// User is a principal record in the external identity store. The store is
// owned by the identity provider; this application only reads it.
type User struct {
	ID    string
	Name  string
	Image string
}
