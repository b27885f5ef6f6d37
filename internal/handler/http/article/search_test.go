package article_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/sony/gobreaker"

	"inkwell/internal/handler/http/article"
)

func TestSearchHandler_PaginatedEnvelope(t *testing.T) {
	repo := &stubRepo{}
	seed(repo, alice, 15, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	handler := article.SearchHandler{Svc: newSvc(repo, nil), PaginationCfg: testPaginationCfg()}

	req := authedRequest(http.MethodGet, "/articles/search?page=2&limit=10", nil, alice)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	env := decodeListing(t, rr)
	if env.Total != 15 || env.TotalPages != 2 || env.CurrentPage != 2 || len(env.Items) != 5 {
		t.Fatalf("envelope = total=%d totalPages=%d currentPage=%d len=%d, want 15/2/2/5",
			env.Total, env.TotalPages, env.CurrentPage, len(env.Items))
	}
}

func TestSearchHandler_BlankQueryListsEverything(t *testing.T) {
	repo := &stubRepo{}
	seed(repo, alice, 3, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	seed(repo, bob, 2, time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC))

	handler := article.SearchHandler{Svc: newSvc(repo, nil), PaginationCfg: testPaginationCfg()}

	req := authedRequest(http.MethodGet, "/articles/search", nil, alice)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	env := decodeListing(t, rr)
	if env.Total != 5 {
		t.Fatalf("blank query total = %d, want 5", env.Total)
	}
}

func TestSearchHandler_MatchesAuthorName(t *testing.T) {
	repo := &stubRepo{}
	seed(repo, alice, 2, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	seed(repo, bob, 3, time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC))

	handler := article.SearchHandler{Svc: newSvc(repo, nil), PaginationCfg: testPaginationCfg()}

	req := authedRequest(http.MethodGet, "/articles/search?q=alice", nil, alice)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	env := decodeListing(t, rr)
	if env.Total != 2 {
		t.Fatalf("author-name match total = %d, want 2", env.Total)
	}
}

func TestSearchHandler_EmptyPageHasEmptyItemsArray(t *testing.T) {
	handler := article.SearchHandler{Svc: newSvc(&stubRepo{}, nil), PaginationCfg: testPaginationCfg()}

	req := authedRequest(http.MethodGet, "/articles/search?q=nothing", nil, alice)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	// items must be [], never null
	if body := rr.Body.String(); !jsonHasEmptyItems(body) {
		t.Fatalf("body = %s, want \"items\":[]", body)
	}
	env := decodeListing(t, rr)
	if env.Total != 0 || env.TotalPages != 0 || env.CurrentPage != 1 {
		t.Fatalf("empty result metadata = %+v, want total=0 totalPages=0 currentPage=1", env)
	}
}

func TestSearchHandler_StorageFailureIsMasked(t *testing.T) {
	handler := article.SearchHandler{
		Svc:           newSvc(&stubRepo{err: errTimeout("dial tcp 10.0.0.5:5432: i/o timeout")}, nil),
		PaginationCfg: testPaginationCfg(),
	}

	req := authedRequest(http.MethodGet, "/articles/search", nil, alice)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if msg := decodeErrorEnvelope(t, rr); msg != "internal server error" {
		t.Fatalf("error message leaked detail: %q", msg)
	}
}

func TestSearchHandler_BreakerOpenMapsTo503(t *testing.T) {
	handler := article.SearchHandler{
		Svc:           newSvc(&stubRepo{err: gobreaker.ErrOpenState}, nil),
		PaginationCfg: testPaginationCfg(),
	}

	req := authedRequest(http.MethodGet, "/articles/search", nil, alice)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rr.Code)
	}
	if msg := decodeErrorEnvelope(t, rr); msg != "storage temporarily unavailable" {
		t.Fatalf("message = %q, want the storage-unavailable user message", msg)
	}
}
