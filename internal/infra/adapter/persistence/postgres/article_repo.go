package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"inkwell/internal/domain/entity"
	"inkwell/internal/repository"
)

const articleColumns = "id, title, content, cover_image, author_id, author_name, created_at"

type ArticleRepo struct {
	db Querier
}

func NewArticleRepo(db Querier) repository.ArticleRepository {
	return &ArticleRepo{db: db}
}

func scanArticle(row interface{ Scan(dest ...any) error }) (*entity.Article, error) {
	var a entity.Article
	err := row.Scan(&a.ID, &a.Title, &a.Content, &a.CoverImage,
		&a.AuthorID, &a.AuthorName, &a.CreatedAt)
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func collectArticles(rows *sql.Rows, capacity int) ([]*entity.Article, error) {
	articles := make([]*entity.Article, 0, capacity)
	for rows.Next() {
		a, err := scanArticle(rows)
		if err != nil {
			return nil, fmt.Errorf("scan article: %w", err)
		}
		articles = append(articles, a)
	}
	return articles, rows.Err()
}

func (repo *ArticleRepo) ListByAuthorPaginated(ctx context.Context, authorID string, offset, limit int) ([]*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE author_id = $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := repo.db.QueryContext(ctx, query, authorID, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("ListByAuthorPaginated: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return collectArticles(rows, limit)
}

func (repo *ArticleRepo) CountByAuthor(ctx context.Context, authorID string) (int64, error) {
	const query = `SELECT COUNT(*) FROM articles WHERE author_id = $1`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query, authorID).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountByAuthor: %w", err)
	}
	return count, nil
}

// likePattern turns a raw search query into a case-insensitive substring
// pattern, escaping LIKE metacharacters so user input cannot widen the match.
func likePattern(query string) string {
	escaped := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(query)
	return "%" + escaped + "%"
}

func (repo *ArticleRepo) SearchPaginated(ctx context.Context, query string, offset, limit int) ([]*entity.Article, error) {
	q := strings.TrimSpace(query)

	// A blank query degrades to an unfiltered listing.
	if q == "" {
		const unfiltered = `
SELECT ` + articleColumns + `
FROM articles
ORDER BY created_at DESC
LIMIT $1 OFFSET $2`
		rows, err := repo.db.QueryContext(ctx, unfiltered, limit, offset)
		if err != nil {
			return nil, fmt.Errorf("SearchPaginated: %w", err)
		}
		defer func() { _ = rows.Close() }()
		return collectArticles(rows, limit)
	}

	const filtered = `
SELECT ` + articleColumns + `
FROM articles
WHERE title ILIKE $1 OR content ILIKE $1 OR author_name ILIKE $1
ORDER BY created_at DESC
LIMIT $2 OFFSET $3`
	rows, err := repo.db.QueryContext(ctx, filtered, likePattern(q), limit, offset)
	if err != nil {
		return nil, fmt.Errorf("SearchPaginated: %w", err)
	}
	defer func() { _ = rows.Close() }()
	return collectArticles(rows, limit)
}

func (repo *ArticleRepo) CountSearch(ctx context.Context, query string) (int64, error) {
	q := strings.TrimSpace(query)

	var count int64
	var err error
	if q == "" {
		err = repo.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM articles`).Scan(&count)
	} else {
		const counted = `
SELECT COUNT(*)
FROM articles
WHERE title ILIKE $1 OR content ILIKE $1 OR author_name ILIKE $1`
		err = repo.db.QueryRowContext(ctx, counted, likePattern(q)).Scan(&count)
	}
	if err != nil {
		return 0, fmt.Errorf("CountSearch: %w", err)
	}
	return count, nil
}

func (repo *ArticleRepo) Get(ctx context.Context, id string) (*entity.Article, error) {
	const query = `
SELECT ` + articleColumns + `
FROM articles
WHERE id = $1
LIMIT 1`
	a, err := scanArticle(repo.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return a, nil
}

// Create persists a new article, assigning its server-side identifier.
func (repo *ArticleRepo) Create(ctx context.Context, article *entity.Article) error {
	article.ID = uuid.NewString()

	const query = `
INSERT INTO articles (id, title, content, cover_image, author_id, author_name, created_at)
VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := repo.db.ExecContext(ctx, query,
		article.ID, article.Title, article.Content, article.CoverImage,
		article.AuthorID, article.AuthorName, article.CreatedAt)
	if err != nil {
		return fmt.Errorf("Create: %w", err)
	}
	return nil
}

// UpdateOwned mutates an article only when both the id and the owner
// match, in one statement. A zero row count means "missing or not yours"
// and the two cases stay indistinguishable.
func (repo *ArticleRepo) UpdateOwned(ctx context.Context, id, authorID string, fields repository.UpdateFields) (bool, error) {
	const query = `
UPDATE articles
SET title = $1, content = $2, cover_image = $3
WHERE id = $4 AND author_id = $5`
	res, err := repo.db.ExecContext(ctx, query,
		fields.Title, fields.Content, fields.CoverImage, id, authorID)
	if err != nil {
		return false, fmt.Errorf("UpdateOwned: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("UpdateOwned: rows affected: %w", err)
	}
	return affected > 0, nil
}

func (repo *ArticleRepo) DeleteOwned(ctx context.Context, id, authorID string) (bool, error) {
	const query = `DELETE FROM articles WHERE id = $1 AND author_id = $2`
	res, err := repo.db.ExecContext(ctx, query, id, authorID)
	if err != nil {
		return false, fmt.Errorf("DeleteOwned: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("DeleteOwned: rows affected: %w", err)
	}
	return affected > 0, nil
}

// AggregateAuthors groups all articles by author. The name snapshot is
// taken from the author's newest article; groups are ordered by most
// recent activity so the author directory surfaces active writers first.
func (repo *ArticleRepo) AggregateAuthors(ctx context.Context, offset, limit int) ([]repository.AuthorGroup, error) {
	const query = `
SELECT author_id,
       (array_agg(author_name ORDER BY created_at DESC))[1] AS author_name,
       COUNT(*) AS article_count
FROM articles
GROUP BY author_id
ORDER BY MAX(created_at) DESC
LIMIT $1 OFFSET $2`
	rows, err := repo.db.QueryContext(ctx, query, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("AggregateAuthors: %w", err)
	}
	defer func() { _ = rows.Close() }()

	groups := make([]repository.AuthorGroup, 0, limit)
	for rows.Next() {
		var g repository.AuthorGroup
		if err := rows.Scan(&g.AuthorID, &g.AuthorName, &g.ArticleCount); err != nil {
			return nil, fmt.Errorf("AggregateAuthors: scan: %w", err)
		}
		groups = append(groups, g)
	}
	return groups, rows.Err()
}

func (repo *ArticleRepo) CountDistinctAuthors(ctx context.Context) (int64, error) {
	const query = `SELECT COUNT(DISTINCT author_id) FROM articles`
	var count int64
	if err := repo.db.QueryRowContext(ctx, query).Scan(&count); err != nil {
		return 0, fmt.Errorf("CountDistinctAuthors: %w", err)
	}
	return count, nil
}
