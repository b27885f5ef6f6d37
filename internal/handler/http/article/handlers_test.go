package article_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"testing"
	"time"

	"inkwell/internal/common/pagination"
	"inkwell/internal/domain/entity"
	"inkwell/internal/handler/http/auth"
	"inkwell/internal/repository"
	artUC "inkwell/internal/usecase/article"

	"github.com/google/uuid"
)

// stubRepo is an in-memory ArticleRepository for handler tests.
type stubRepo struct {
	articles []*entity.Article
	err      error
}

func (s *stubRepo) sorted() []*entity.Article {
	out := make([]*entity.Article, len(s.articles))
	copy(out, s.articles)
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID < out[j].ID
	})
	return out
}

func slicePage(list []*entity.Article, offset, limit int) []*entity.Article {
	if offset >= len(list) {
		return nil
	}
	end := offset + limit
	if end > len(list) {
		end = len(list)
	}
	return list[offset:end]
}

func matches(a *entity.Article, query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return true
	}
	return strings.Contains(strings.ToLower(a.Title), q) ||
		strings.Contains(strings.ToLower(a.Content), q) ||
		strings.Contains(strings.ToLower(a.AuthorName), q)
}

func (s *stubRepo) byAuthor(authorID string) []*entity.Article {
	var out []*entity.Article
	for _, a := range s.sorted() {
		if a.AuthorID == authorID {
			out = append(out, a)
		}
	}
	return out
}

func (s *stubRepo) ListByAuthorPaginated(_ context.Context, authorID string, offset, limit int) ([]*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	return slicePage(s.byAuthor(authorID), offset, limit), nil
}

func (s *stubRepo) CountByAuthor(_ context.Context, authorID string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.byAuthor(authorID))), nil
}

func (s *stubRepo) SearchPaginated(_ context.Context, query string, offset, limit int) ([]*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	var hits []*entity.Article
	for _, a := range s.sorted() {
		if matches(a, query) {
			hits = append(hits, a)
		}
	}
	return slicePage(hits, offset, limit), nil
}

func (s *stubRepo) CountSearch(_ context.Context, query string) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	var n int64
	for _, a := range s.articles {
		if matches(a, query) {
			n++
		}
	}
	return n, nil
}

func (s *stubRepo) Get(_ context.Context, id string) (*entity.Article, error) {
	if s.err != nil {
		return nil, s.err
	}
	for _, a := range s.articles {
		if a.ID == id {
			return a, nil
		}
	}
	return nil, nil
}

func (s *stubRepo) Create(_ context.Context, a *entity.Article) error {
	if s.err != nil {
		return s.err
	}
	a.ID = uuid.NewString()
	s.articles = append(s.articles, a)
	return nil
}

func (s *stubRepo) UpdateOwned(_ context.Context, id, authorID string, fields repository.UpdateFields) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for _, a := range s.articles {
		if a.ID == id && a.AuthorID == authorID {
			a.Title, a.Content, a.CoverImage = fields.Title, fields.Content, fields.CoverImage
			return true, nil
		}
	}
	return false, nil
}

func (s *stubRepo) DeleteOwned(_ context.Context, id, authorID string) (bool, error) {
	if s.err != nil {
		return false, s.err
	}
	for i, a := range s.articles {
		if a.ID == id && a.AuthorID == authorID {
			s.articles = append(s.articles[:i], s.articles[i+1:]...)
			return true, nil
		}
	}
	return false, nil
}

func (s *stubRepo) AggregateAuthors(_ context.Context, _, _ int) ([]repository.AuthorGroup, error) {
	return nil, s.err
}

func (s *stubRepo) CountDistinctAuthors(_ context.Context) (int64, error) {
	return 0, s.err
}

type stubUsers struct {
	users map[string]*entity.User
}

func (s *stubUsers) Get(_ context.Context, id string) (*entity.User, error) {
	return s.users[id], nil
}

/* shared fixtures */

var (
	alice = auth.Principal{ID: "9f8e7d6c-5b4a-4392-8170-6f5e4d3c2b1a", Name: "Alice"}
	bob   = auth.Principal{ID: "1a2b3c4d-5e6f-4a8b-9c0d-1e2f3a4b5c6d", Name: "Bob"}
)

func newSvc(repo *stubRepo, users map[string]*entity.User) *artUC.Service {
	if users == nil {
		users = map[string]*entity.User{}
	}
	return &artUC.Service{Repo: repo, Users: &stubUsers{users: users}}
}

func seed(repo *stubRepo, owner auth.Principal, n int, base time.Time) {
	for i := 0; i < n; i++ {
		repo.articles = append(repo.articles, &entity.Article{
			ID:         uuid.NewString(),
			Title:      "Article " + string(rune('A'+i%26)),
			Content:    "body",
			CoverImage: "https://images.example.com/cover.png",
			AuthorID:   owner.ID,
			AuthorName: owner.Name,
			CreatedAt:  base.Add(time.Duration(i) * time.Minute),
		})
	}
}

// authedRequest builds a request carrying the principal, as the session
// guard would after validating a token.
func authedRequest(method, target string, body *strings.Reader, p auth.Principal) *http.Request {
	var req *http.Request
	if body == nil {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, body)
	}
	return req.WithContext(auth.NewContext(req.Context(), p))
}

func testPaginationCfg() pagination.Config {
	return pagination.Config{DefaultPage: 1, DefaultLimit: 10, MaxLimit: 100}
}

type listingEnvelope struct {
	Items       []map[string]any `json:"items"`
	Total       int64            `json:"total"`
	TotalPages  int              `json:"totalPages"`
	CurrentPage int              `json:"currentPage"`
}

func decodeListing(t *testing.T, rr *httptest.ResponseRecorder) listingEnvelope {
	t.Helper()
	var env listingEnvelope
	if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode listing envelope: %v", err)
	}
	return env
}

func errTimeout(msg string) error { return errors.New(msg) }

func jsonHasEmptyItems(body string) bool {
	return strings.Contains(body, `"items":[]`)
}

func decodeErrorEnvelope(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var env map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode error envelope: %v", err)
	}
	return env["error"]
}
