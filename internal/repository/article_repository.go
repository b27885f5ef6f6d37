// Package repository declares the persistence interfaces the use cases
// depend on. Concrete implementations live under internal/infra/adapter.
package repository

import (
	"context"

	"inkwell/internal/domain/entity"
)

// UpdateFields carries the mutable subset of an article for an owned
// update. Everything else (author, creation time, id) is immutable.
type UpdateFields struct {
	Title      string
	Content    string
	CoverImage string
}

// AuthorGroup is one row of the authors aggregation: a distinct author id,
// the display-name snapshot taken from that author's newest article, and
// the per-group article count.
type AuthorGroup struct {
	AuthorID     string
	AuthorName   string
	ArticleCount int64
}

// ArticleRepository is the storage contract for articles.
//
// Every listing method orders by created_at descending (newest first);
// ties fall back to storage natural order. Offset/limit are applied
// verbatim; an offset past the end returns an empty slice, not an error.
type ArticleRepository interface {
	// ListByAuthorPaginated returns one page of the given author's articles.
	ListByAuthorPaginated(ctx context.Context, authorID string, offset, limit int) ([]*entity.Article, error)
	// CountByAuthor returns the total number of articles by the given author.
	CountByAuthor(ctx context.Context, authorID string) (int64, error)

	// SearchPaginated returns one page of articles whose title, content, or
	// author-name snapshot contains the query case-insensitively. A blank
	// query matches everything.
	SearchPaginated(ctx context.Context, query string, offset, limit int) ([]*entity.Article, error)
	// CountSearch counts the articles SearchPaginated would match.
	CountSearch(ctx context.Context, query string) (int64, error)

	// Get returns the article with the given id, or (nil, nil) when absent.
	Get(ctx context.Context, id string) (*entity.Article, error)

	// Create persists a new article and assigns its server-side identifier
	// on the passed entity.
	Create(ctx context.Context, article *entity.Article) error

	// UpdateOwned applies fields to the article matching BOTH id AND
	// authorID in a single statement. The matched result is false when no
	// such row exists; whether the article is gone or belongs to someone
	// else is indistinguishable on purpose.
	UpdateOwned(ctx context.Context, id, authorID string, fields UpdateFields) (matched bool, err error)

	// DeleteOwned deletes the article matching both id and authorID, with
	// the same deliberate missing/foreign-owner conflation as UpdateOwned.
	DeleteOwned(ctx context.Context, id, authorID string) (deleted bool, err error)

	// AggregateAuthors groups all articles by author id and returns one
	// page of the grouped result, newest-active authors first.
	AggregateAuthors(ctx context.Context, offset, limit int) ([]AuthorGroup, error)
	// CountDistinctAuthors returns the number of distinct author ids across
	// all articles.
	CountDistinctAuthors(ctx context.Context) (int64, error)
}
