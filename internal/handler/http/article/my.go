package article

import (
	"errors"
	"net/http"
	"time"

	"inkwell/internal/common/pagination"
	"inkwell/internal/handler/http/auth"
	"inkwell/internal/handler/http/respond"
	artUC "inkwell/internal/usecase/article"
)

type MyArticlesHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
}

// ServeHTTP lists the caller's own articles.
// @Summary      List own articles
// @Description  One page of the authenticated caller's articles, newest first. A page past the end is an empty page, not an error.
// @Tags         articles
// @Security     BearerAuth
// @Produce      json
// @Param        page query int false "page number (1-indexed, default: 1)"
// @Param        limit query int false "items per page (default: 10, max: 100)"
// @Success      200 {object} pagination.Response[DTO] "one page of own articles"
// @Failure      401 {object} map[string]string "authentication required"
// @Failure      503 {object} map[string]string "storage temporarily unavailable"
// @Failure      500 {object} map[string]string "server error"
// @Router       /articles/my [get]
func (h MyArticlesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	start := time.Now()
	params := pagination.ParseQueryParams(r, h.PaginationCfg)

	result, err := h.Svc.ListByOwner(r.Context(), principal.ID, params)
	if err != nil {
		pagination.RecordError("list_own")
		writeServiceError(w, http.StatusInternalServerError, err)
		return
	}

	pagination.RecordRequest(http.StatusOK, result.CurrentPage)
	pagination.RecordDuration("list_own", time.Since(start).Seconds())
	respond.JSON(w, http.StatusOK, pagination.NewResponse(
		fromEntities(result.Items), result.Total, result.TotalPages, result.CurrentPage))
}
