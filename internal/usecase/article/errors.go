// Package article provides use cases for publishing and browsing articles.
// It implements the listing queries (by author, by owner, full-text search)
// and the owner-only mutations, delegating persistence to the repository.
package article

import "errors"

// Sentinel errors for article use case operations.
var (
	// ErrArticleNotFound indicates that the requested article was not found.
	// Mutations also return it when the article exists but belongs to a
	// different owner: the two cases are deliberately indistinguishable so
	// callers cannot enumerate other users' articles.
	ErrArticleNotFound = errors.New("article not found")

	// ErrInvalidArticleID indicates that the provided article ID is not a
	// well-formed identifier.
	ErrInvalidArticleID = errors.New("invalid article ID")

	// ErrAuthorNotFound indicates that an author ID resolves to no profile
	// in the identity store, regardless of whether articles reference it.
	ErrAuthorNotFound = errors.New("author not found")
)
