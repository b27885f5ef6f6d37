package author

import (
	"errors"
	"net/http"

	"inkwell/internal/common/pagination"
	"inkwell/internal/handler/http/respond"
	"inkwell/internal/resilience/circuitbreaker"
	authorUC "inkwell/internal/usecase/author"
)

// Register wires the author-directory route into the mux. The directory
// is browsable: the session guard passes it through anonymously.
func Register(mux *http.ServeMux, svc *authorUC.Service, paginationCfg pagination.Config) {
	mux.Handle("GET    /authors", ListHandler{Svc: svc, PaginationCfg: paginationCfg})
}

func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, pagination.ErrInvalidLimit):
		respond.SafeError(w, http.StatusBadRequest, err)
	case circuitbreaker.IsUnavailable(err):
		respond.SafeError(w, http.StatusServiceUnavailable,
			respond.NewAppError(http.StatusServiceUnavailable, "storage temporarily unavailable", err))
	default:
		respond.SafeError(w, http.StatusInternalServerError, err)
	}
}
