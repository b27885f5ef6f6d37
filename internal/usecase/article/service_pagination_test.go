package article_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	"inkwell/internal/common/pagination"
)

func page(p, limit int) pagination.Params {
	return pagination.Params{Page: p, Limit: limit}
}

func TestListByOwnerEmptyStore(t *testing.T) {
	svc := newService(newStubRepo(), nil)

	got, err := svc.ListByOwner(context.Background(), owner.ID, page(1, 10))
	if err != nil {
		t.Fatalf("ListByOwner err=%v", err)
	}
	if len(got.Items) != 0 || got.Total != 0 || got.TotalPages != 0 || got.CurrentPage != 1 {
		t.Fatalf("empty store = %+v, want items=[] total=0 totalPages=0 currentPage=1", got)
	}
}

func TestListByOwnerFifteenArticlesLimitTen(t *testing.T) {
	repo := newStubRepo()
	seedArticles(repo, owner.ID, owner.Name, 15, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	svc := newService(repo, nil)

	p1, err := svc.ListByOwner(context.Background(), owner.ID, page(1, 10))
	if err != nil {
		t.Fatalf("page 1 err=%v", err)
	}
	if len(p1.Items) != 10 || p1.Total != 15 || p1.TotalPages != 2 || p1.CurrentPage != 1 {
		t.Fatalf("page 1 = len=%d total=%d totalPages=%d currentPage=%d, want 10/15/2/1",
			len(p1.Items), p1.Total, p1.TotalPages, p1.CurrentPage)
	}

	p2, err := svc.ListByOwner(context.Background(), owner.ID, page(2, 10))
	if err != nil {
		t.Fatalf("page 2 err=%v", err)
	}
	if len(p2.Items) != 5 || p2.CurrentPage != 2 {
		t.Fatalf("page 2 = len=%d currentPage=%d, want 5/2", len(p2.Items), p2.CurrentPage)
	}

	// Pages do not overlap and are newest first.
	if !p1.Items[0].CreatedAt.After(p2.Items[0].CreatedAt) {
		t.Error("page 1 must hold newer articles than page 2")
	}
	seen := map[string]bool{}
	for _, a := range append(p1.Items, p2.Items...) {
		if seen[a.ID] {
			t.Fatalf("article %s appears on both pages", a.ID)
		}
		seen[a.ID] = true
	}
}

func TestListByOwnerPagePastTheEndIsEmptyNotError(t *testing.T) {
	repo := newStubRepo()
	seedArticles(repo, owner.ID, owner.Name, 15, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	svc := newService(repo, nil)

	got, err := svc.ListByOwner(context.Background(), owner.ID, page(7, 10))
	if err != nil {
		t.Fatalf("page past the end err=%v, want nil", err)
	}
	if len(got.Items) != 0 {
		t.Fatalf("len=%d, want empty page", len(got.Items))
	}
	if got.Total != 15 || got.TotalPages != 2 || got.CurrentPage != 7 {
		t.Fatalf("metadata = %+v, want total=15 totalPages=2 currentPage=7", got)
	}
}

func TestListByOwnerNegativePageClampsToFirst(t *testing.T) {
	repo := newStubRepo()
	seedArticles(repo, owner.ID, owner.Name, 3, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	svc := newService(repo, nil)

	got, err := svc.ListByOwner(context.Background(), owner.ID, page(-2, 10))
	if err != nil {
		t.Fatalf("ListByOwner err=%v", err)
	}
	if got.CurrentPage != 1 || len(got.Items) != 3 {
		t.Fatalf("clamped page = currentPage=%d len=%d, want 1/3", got.CurrentPage, len(got.Items))
	}
}

func TestListByOwnerIsIdempotentWithoutWrites(t *testing.T) {
	repo := newStubRepo()
	seedArticles(repo, owner.ID, owner.Name, 12, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	svc := newService(repo, nil)

	first, err := svc.ListByOwner(context.Background(), owner.ID, page(1, 10))
	if err != nil {
		t.Fatalf("first fetch err=%v", err)
	}
	second, err := svc.ListByOwner(context.Background(), owner.ID, page(1, 10))
	if err != nil {
		t.Fatalf("second fetch err=%v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("same page fetched twice differs (-first +second):\n%s", diff)
	}
}

func TestSearchEmptyQueryEqualsUnfilteredListing(t *testing.T) {
	repo := newStubRepo()
	seedArticles(repo, "author-a", "Alice", 6, time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC))
	seedArticles(repo, "author-b", "Bob", 6, time.Date(2026, 2, 2, 0, 0, 0, 0, time.UTC))
	svc := newService(repo, nil)

	got, err := svc.Search(context.Background(), "   ", page(1, 10))
	if err != nil {
		t.Fatalf("Search err=%v", err)
	}
	if got.Total != 12 || len(got.Items) != 10 || got.TotalPages != 2 {
		t.Fatalf("blank search = total=%d len=%d totalPages=%d, want 12/10/2",
			got.Total, len(got.Items), got.TotalPages)
	}
	for i := 1; i < len(got.Items); i++ {
		if got.Items[i-1].CreatedAt.Before(got.Items[i].CreatedAt) {
			t.Fatal("blank search must stay sorted newest first")
		}
	}
}

func TestSearchIsCaseInsensitive(t *testing.T) {
	repo := newStubRepo()
	svc := newService(repo, nil)

	seed := func(title string) {
		in := validInput()
		in.Title = title
		if _, err := svc.Create(context.Background(), owner, in); err != nil {
			t.Fatalf("seed err=%v", err)
		}
	}
	seed("All about FOO things")
	seed("strictly bar")

	got, err := svc.Search(context.Background(), "foo", page(1, 10))
	if err != nil {
		t.Fatalf("Search err=%v", err)
	}
	if got.Total != 1 || len(got.Items) != 1 {
		t.Fatalf("search foo = total=%d len=%d, want 1/1", got.Total, len(got.Items))
	}
	if got.Items[0].Title != "All about FOO things" {
		t.Errorf("matched %q, want the FOO article", got.Items[0].Title)
	}
}
