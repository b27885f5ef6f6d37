package article

import (
	"net/http"

	"inkwell/internal/common/pagination"
	artUC "inkwell/internal/usecase/article"
)

// Register wires all article routes into the mux. The session guard runs
// as an outer middleware over the whole mux; it passes the browsable
// reads (search, single fetch, per-author listings) through anonymously
// and demands a session for the mutations and /articles/my.
func Register(mux *http.ServeMux, svc *artUC.Service, paginationCfg pagination.Config) {
	mux.Handle("GET    /articles/search", SearchHandler{Svc: svc, PaginationCfg: paginationCfg})
	mux.Handle("GET    /articles/my", MyArticlesHandler{Svc: svc, PaginationCfg: paginationCfg})
	mux.Handle("GET    /articles/authors/", AuthorArticlesHandler{Svc: svc, PaginationCfg: paginationCfg})
	mux.Handle("GET    /articles/", GetHandler{Svc: svc})

	mux.Handle("POST   /articles", CreateHandler{Svc: svc})
	mux.Handle("PUT    /articles/", UpdateHandler{Svc: svc})
	mux.Handle("DELETE /articles/", DeleteHandler{Svc: svc})
}
