package author_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/sony/gobreaker"

	"inkwell/internal/common/pagination"
	"inkwell/internal/domain/entity"
	"inkwell/internal/handler/http/author"
	"inkwell/internal/repository"
	authorUC "inkwell/internal/usecase/author"
)

type stubAggregator struct {
	repository.ArticleRepository

	groups []repository.AuthorGroup
	err    error
}

func (s *stubAggregator) AggregateAuthors(_ context.Context, offset, limit int) ([]repository.AuthorGroup, error) {
	if s.err != nil {
		return nil, s.err
	}
	if offset >= len(s.groups) {
		return nil, nil
	}
	end := offset + limit
	if end > len(s.groups) {
		end = len(s.groups)
	}
	return s.groups[offset:end], nil
}

func (s *stubAggregator) CountDistinctAuthors(_ context.Context) (int64, error) {
	if s.err != nil {
		return 0, s.err
	}
	return int64(len(s.groups)), nil
}

type stubUsers struct {
	users map[string]*entity.User
}

func (s *stubUsers) Get(_ context.Context, id string) (*entity.User, error) {
	return s.users[id], nil
}

func newHandler(repo *stubAggregator, users map[string]*entity.User) author.ListHandler {
	if users == nil {
		users = map[string]*entity.User{}
	}
	return author.ListHandler{
		Svc:           &authorUC.Service{Repo: repo, Users: &stubUsers{users: users}},
		PaginationCfg: pagination.Config{DefaultPage: 1, DefaultLimit: 10, MaxLimit: 100},
	}
}

type envelope struct {
	Items       []author.DTO `json:"items"`
	Total       int64        `json:"total"`
	TotalPages  int          `json:"totalPages"`
	CurrentPage int          `json:"currentPage"`
}

func TestListHandler_DirectoryPage(t *testing.T) {
	repo := &stubAggregator{groups: []repository.AuthorGroup{
		{AuthorID: "a1", AuthorName: "Alice", ArticleCount: 9},
		{AuthorID: "a2", AuthorName: "Bob", ArticleCount: 7},
		{AuthorID: "a3", AuthorName: "Carol", ArticleCount: 5},
	}}
	users := map[string]*entity.User{
		"a1": {ID: "a1", Name: "Alice", Image: "https://images.example.com/alice.png"},
	}

	handler := newHandler(repo, users)

	req := httptest.NewRequest(http.MethodGet, "/authors?page=1&limit=2", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}

	var env envelope
	if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	// total counts distinct authors
	if env.Total != 3 || env.TotalPages != 2 || env.CurrentPage != 1 || len(env.Items) != 2 {
		t.Fatalf("envelope = total=%d totalPages=%d currentPage=%d len=%d, want 3/2/1/2",
			env.Total, env.TotalPages, env.CurrentPage, len(env.Items))
	}
	if env.Items[0].ID != "a1" || env.Items[0].TotalArticles != 9 {
		t.Fatalf("first entry = %+v, want Alice with 9 articles", env.Items[0])
	}
	if env.Items[0].Image == "" {
		t.Error("profiled author should carry an image")
	}
	if env.Items[1].Image != "" {
		t.Errorf("author without profile should have an empty image, got %q", env.Items[1].Image)
	}
}

func TestListHandler_EmptyDirectory(t *testing.T) {
	handler := newHandler(&stubAggregator{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/authors", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	var env envelope
	if err := json.NewDecoder(rr.Body).Decode(&env); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if env.Items == nil || len(env.Items) != 0 || env.Total != 0 || env.TotalPages != 0 {
		t.Fatalf("empty directory = %+v, want items=[] total=0 totalPages=0", env)
	}
}

func TestListHandler_BreakerOpenIs503(t *testing.T) {
	handler := newHandler(&stubAggregator{err: gobreaker.ErrOpenState}, nil)

	req := httptest.NewRequest(http.MethodGet, "/authors", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
}
