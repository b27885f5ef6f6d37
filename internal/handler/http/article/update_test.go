package article_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"inkwell/internal/handler/http/article"
)

const validBody = `{
	"title": "Edited",
	"content": "Edited body",
	"coverImage": "https://images.example.com/new.png"
}`

func TestUpdateHandler_OwnerCanUpdate(t *testing.T) {
	repo := &stubRepo{}
	seed(repo, alice, 1, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	id := repo.articles[0].ID

	handler := article.UpdateHandler{Svc: newSvc(repo, nil)}

	req := authedRequest(http.MethodPut, "/articles/"+id, strings.NewReader(validBody), alice)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200 (body: %s)", rr.Code, rr.Body.String())
	}
	if repo.articles[0].Title != "Edited" {
		t.Fatalf("title = %q, update did not apply", repo.articles[0].Title)
	}
}

func TestUpdateHandler_NonOwnerReadsAsNotFound(t *testing.T) {
	repo := &stubRepo{}
	seed(repo, alice, 1, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	id := repo.articles[0].ID

	handler := article.UpdateHandler{Svc: newSvc(repo, nil)}

	req := authedRequest(http.MethodPut, "/articles/"+id, strings.NewReader(validBody), bob)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	// ownership failures are indistinguishable from missing articles
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want 404", rr.Code)
	}
	if repo.articles[0].Title == "Edited" {
		t.Fatal("non-owner update must not apply")
	}
}

func TestUpdateHandler_ValidationIs400(t *testing.T) {
	repo := &stubRepo{}
	seed(repo, alice, 1, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	id := repo.articles[0].ID

	handler := article.UpdateHandler{Svc: newSvc(repo, nil)}

	body := strings.NewReader(`{"title": "", "content": "x", "coverImage": "https://images.example.com/a.png"}`)
	req := authedRequest(http.MethodPut, "/articles/"+id, body, alice)
	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, req)

	if rr.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", rr.Code)
	}
}
