// Package author provides the author directory use case. Authors are not
// stored as first-class records; they are derived by grouping articles by
// author id, so only principals with at least one article are visible.
package author

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"inkwell/internal/common/pagination"
	"inkwell/internal/domain/entity"
	"inkwell/internal/repository"
)

// Service aggregates authors from articles and enriches each group with
// the profile image from the identity store.
type Service struct {
	Repo  repository.ArticleRepository
	Users repository.UserRepository
}

// PaginatedAuthors is one page of the author directory. Pagination applies
// to the grouped result (distinct authors), not to articles; Total is the
// count of distinct author ids across all articles.
type PaginatedAuthors struct {
	Items       []entity.AuthorStats
	Total       int64
	TotalPages  int
	CurrentPage int
}

// List returns one page of the author directory.
//
// Each group's display name is the snapshot from that author's newest
// article, which can trail a profile rename; the image is looked up live
// in the identity store and left empty when no profile matches.
func (s *Service) List(ctx context.Context, params pagination.Params) (*PaginatedAuthors, error) {
	if params.Limit <= 0 {
		return nil, pagination.ErrInvalidLimit
	}
	page := pagination.ClampPage(params.Page)
	offset := pagination.CalculateOffset(page, params.Limit)

	var (
		groups []repository.AuthorGroup
		total  int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		groups, err = s.Repo.AggregateAuthors(gctx, offset, params.Limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = s.Repo.CountDistinctAuthors(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("aggregate authors: %w", err)
	}

	items := make([]entity.AuthorStats, 0, len(groups))
	for _, group := range groups {
		stats := entity.AuthorStats{
			AuthorID:      group.AuthorID,
			Name:          group.AuthorName,
			TotalArticles: group.ArticleCount,
		}
		profile, err := s.Users.Get(ctx, group.AuthorID)
		if err != nil {
			return nil, fmt.Errorf("resolve author image: %w", err)
		}
		if profile != nil {
			stats.Image = profile.Image
		}
		items = append(items, stats)
	}

	return &PaginatedAuthors{
		Items:       items,
		Total:       total,
		TotalPages:  pagination.CalculateTotalPages(total, params.Limit),
		CurrentPage: page,
	}, nil
}
