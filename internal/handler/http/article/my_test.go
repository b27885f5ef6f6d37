package article_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"inkwell/internal/handler/http/article"
)

func TestMyArticlesHandler_ListsOnlyOwnArticles(t *testing.T) {
	repo := &stubRepo{}
	seed(repo, alice, 4, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	seed(repo, bob, 3, time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC))

	handler := article.MyArticlesHandler{Svc: newSvc(repo, nil), PaginationCfg: testPaginationCfg()}

	req := authedRequest(http.MethodGet, "/articles/my", nil, alice)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rr.Code)
	}
	env := decodeListing(t, rr)
	if env.Total != 4 || len(env.Items) != 4 {
		t.Fatalf("total=%d len=%d, want only alice's 4 articles", env.Total, len(env.Items))
	}
	for _, item := range env.Items {
		if item["authorId"] != alice.ID {
			t.Fatalf("foreign article leaked into own listing: %v", item)
		}
	}
}

func TestMyArticlesHandler_RequiresPrincipal(t *testing.T) {
	handler := article.MyArticlesHandler{Svc: newSvc(&stubRepo{}, nil), PaginationCfg: testPaginationCfg()}

	// request that never passed the guard
	req := httptest.NewRequest(http.MethodGet, "/articles/my", nil)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("status = %d, want 401", rr.Code)
	}
}

func TestMyArticlesHandler_PagePastTheEndIsEmpty(t *testing.T) {
	repo := &stubRepo{}
	seed(repo, alice, 5, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))

	handler := article.MyArticlesHandler{Svc: newSvc(repo, nil), PaginationCfg: testPaginationCfg()}

	req := authedRequest(http.MethodGet, "/articles/my?page=9", nil, alice)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 for a page past the end", rr.Code)
	}
	env := decodeListing(t, rr)
	if len(env.Items) != 0 || env.Total != 5 || env.TotalPages != 1 || env.CurrentPage != 9 {
		t.Fatalf("envelope = %+v, want items=[] total=5 totalPages=1 currentPage=9", env)
	}
}
