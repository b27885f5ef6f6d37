package article

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"inkwell/internal/common/pagination"
	"inkwell/internal/domain/entity"
	"inkwell/internal/repository"
)

// Owner identifies the authenticated principal performing an operation.
// The display name is captured at create time as the article's immutable
// author-name snapshot.
type Owner struct {
	ID   string
	Name string
}

// Input carries the author-editable fields of an article. The same schema
// applies to create and update.
type Input struct {
	Title      string
	Content    string
	CoverImage string
}

// Service provides article query and mutation use cases.
type Service struct {
	Repo  repository.ArticleRepository
	Users repository.UserRepository
}

// PaginatedArticles is the result of one listing query: a newest-first
// page plus its metadata. Total and the page contents come from two
// independent store round trips, so they may be stale by one write
// relative to each other.
type PaginatedArticles struct {
	Items       []*entity.Article
	Total       int64
	TotalPages  int
	CurrentPage int
}

// AuthorListing couples an author's profile with one page of their
// articles, for the author-detail view.
type AuthorListing struct {
	Author   entity.AuthorStats
	Articles PaginatedArticles
}

// validateInput checks the article schema and reports every field
// violation at once, before anything reaches the store.
func validateInput(in Input) error {
	var v entity.Violations
	if strings.TrimSpace(in.Title) == "" {
		v.Add("title", "is required")
	}
	if strings.TrimSpace(in.Content) == "" {
		v.Add("content", "is required")
	}
	if err := entity.ValidateCoverImage(in.CoverImage); err != nil {
		if ve, ok := err.(*entity.ValidationError); ok {
			v = append(v, ve)
		} else {
			return err
		}
	}
	return v.Err()
}

// listPage runs the count query and the page fetch as two independent
// round trips and assembles the pagination metadata.
func listPage(
	ctx context.Context,
	params pagination.Params,
	count func(ctx context.Context) (int64, error),
	fetch func(ctx context.Context, offset, limit int) ([]*entity.Article, error),
) (*PaginatedArticles, error) {
	if params.Limit <= 0 {
		return nil, pagination.ErrInvalidLimit
	}
	page := pagination.ClampPage(params.Page)
	offset := pagination.CalculateOffset(page, params.Limit)

	var (
		items []*entity.Article
		total int64
	)
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		items, err = fetch(gctx, offset, params.Limit)
		return err
	})
	g.Go(func() error {
		var err error
		total, err = count(gctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &PaginatedArticles{
		Items:       items,
		Total:       total,
		TotalPages:  pagination.CalculateTotalPages(total, params.Limit),
		CurrentPage: page,
	}, nil
}

// ListByOwner returns one page of the authenticated caller's own articles,
// newest first. A page past the end yields an empty page, not an error.
func (s *Service) ListByOwner(ctx context.Context, ownerID string, params pagination.Params) (*PaginatedArticles, error) {
	result, err := listPage(ctx, params,
		func(ctx context.Context) (int64, error) {
			return s.Repo.CountByAuthor(ctx, ownerID)
		},
		func(ctx context.Context, offset, limit int) ([]*entity.Article, error) {
			return s.Repo.ListByAuthorPaginated(ctx, ownerID, offset, limit)
		})
	if err != nil {
		return nil, fmt.Errorf("list own articles: %w", err)
	}
	return result, nil
}

// ListByAuthor returns an author's profile together with one page of their
// articles. It fails with ErrAuthorNotFound when the id resolves to no
// identity-store profile, independent of whether articles exist.
func (s *Service) ListByAuthor(ctx context.Context, authorID string, params pagination.Params) (*AuthorListing, error) {
	profile, err := s.Users.Get(ctx, authorID)
	if err != nil {
		return nil, fmt.Errorf("resolve author profile: %w", err)
	}
	if profile == nil {
		return nil, ErrAuthorNotFound
	}

	result, err := listPage(ctx, params,
		func(ctx context.Context) (int64, error) {
			return s.Repo.CountByAuthor(ctx, authorID)
		},
		func(ctx context.Context, offset, limit int) ([]*entity.Article, error) {
			return s.Repo.ListByAuthorPaginated(ctx, authorID, offset, limit)
		})
	if err != nil {
		return nil, fmt.Errorf("list author articles: %w", err)
	}

	return &AuthorListing{
		Author: entity.AuthorStats{
			AuthorID:      profile.ID,
			Name:          profile.Name,
			TotalArticles: result.Total,
			Image:         profile.Image,
		},
		Articles: *result,
	}, nil
}

// Search returns one page of articles whose title, content, or author-name
// snapshot contains the query, case-insensitively. A blank query degrades
// to an unfiltered listing. Ordering stays recency, never relevance.
func (s *Service) Search(ctx context.Context, query string, params pagination.Params) (*PaginatedArticles, error) {
	result, err := listPage(ctx, params,
		func(ctx context.Context) (int64, error) {
			return s.Repo.CountSearch(ctx, query)
		},
		func(ctx context.Context, offset, limit int) ([]*entity.Article, error) {
			return s.Repo.SearchPaginated(ctx, query, offset, limit)
		})
	if err != nil {
		return nil, fmt.Errorf("search articles: %w", err)
	}
	return result, nil
}

// Get retrieves a single article by its ID.
func (s *Service) Get(ctx context.Context, id string) (*entity.Article, error) {
	if id == "" {
		return nil, ErrInvalidArticleID
	}

	art, err := s.Repo.Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get article: %w", err)
	}
	if art == nil {
		return nil, ErrArticleNotFound
	}
	return art, nil
}

// Create validates the input, stamps the owner's identity and the creation
// time, and persists a new article. The returned entity carries the
// server-assigned identifier. There is no duplicate detection.
func (s *Service) Create(ctx context.Context, owner Owner, in Input) (*entity.Article, error) {
	if err := validateInput(in); err != nil {
		return nil, err
	}

	art := &entity.Article{
		Title:      in.Title,
		Content:    in.Content,
		CoverImage: in.CoverImage,
		AuthorID:   owner.ID,
		AuthorName: owner.Name,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.Repo.Create(ctx, art); err != nil {
		return nil, fmt.Errorf("create article: %w", err)
	}
	return art, nil
}

// Update validates the input and applies it to the article matching both
// the id and the caller as owner. A miss, whether the article is gone or
// belongs to someone else, is ErrArticleNotFound either way.
func (s *Service) Update(ctx context.Context, id string, owner Owner, in Input) error {
	if id == "" {
		return ErrInvalidArticleID
	}
	if err := validateInput(in); err != nil {
		return err
	}

	matched, err := s.Repo.UpdateOwned(ctx, id, owner.ID, repository.UpdateFields{
		Title:      in.Title,
		Content:    in.Content,
		CoverImage: in.CoverImage,
	})
	if err != nil {
		return fmt.Errorf("update article: %w", err)
	}
	if !matched {
		return ErrArticleNotFound
	}
	return nil
}

// Delete removes the article matching both the id and the caller as owner,
// with the same miss conflation as Update. Deletion is terminal.
func (s *Service) Delete(ctx context.Context, id string, owner Owner) error {
	if id == "" {
		return ErrInvalidArticleID
	}

	deleted, err := s.Repo.DeleteOwned(ctx, id, owner.ID)
	if err != nil {
		return fmt.Errorf("delete article: %w", err)
	}
	if !deleted {
		return ErrArticleNotFound
	}
	return nil
}
