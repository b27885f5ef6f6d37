package article

import (
	"errors"
	"net/http"

	"inkwell/internal/common/pagination"
	"inkwell/internal/domain/entity"
	"inkwell/internal/handler/http/respond"
	"inkwell/internal/resilience/circuitbreaker"
	artUC "inkwell/internal/usecase/article"
)

// writeServiceError maps use-case failures onto HTTP statuses. Anything
// unrecognized falls through to fallback, masked by respond.SafeError.
func writeServiceError(w http.ResponseWriter, fallback int, err error) {
	switch {
	case entity.IsValidation(err),
		errors.Is(err, artUC.ErrInvalidArticleID),
		errors.Is(err, pagination.ErrInvalidLimit):
		respond.SafeError(w, http.StatusBadRequest, err)
	case errors.Is(err, artUC.ErrArticleNotFound),
		errors.Is(err, artUC.ErrAuthorNotFound):
		respond.SafeError(w, http.StatusNotFound, err)
	case circuitbreaker.IsUnavailable(err):
		respond.SafeError(w, http.StatusServiceUnavailable,
			respond.NewAppError(http.StatusServiceUnavailable, "storage temporarily unavailable", err))
	default:
		respond.SafeError(w, fallback, err)
	}
}
