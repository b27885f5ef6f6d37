package author

import (
	"net/http"
	"time"

	"inkwell/internal/common/pagination"
	"inkwell/internal/handler/http/respond"
	authorUC "inkwell/internal/usecase/author"
)

type ListHandler struct {
	Svc           *authorUC.Service
	PaginationCfg pagination.Config
}

// ServeHTTP lists authors who have published at least one article.
// @Summary      Author directory
// @Description  One page of authors with article counts, ordered by most recent publication. The total counts distinct authors, not articles.
// @Tags         authors
// @Produce      json
// @Param        page query int false "page number (1-indexed, default: 1)"
// @Param        limit query int false "items per page (default: 10, max: 100)"
// @Success      200 {object} pagination.Response[DTO] "one page of authors"
// @Failure      503 {object} map[string]string "storage temporarily unavailable"
// @Failure      500 {object} map[string]string "server error"
// @Router       /authors [get]
func (h ListHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	params := pagination.ParseQueryParams(r, h.PaginationCfg)

	result, err := h.Svc.List(r.Context(), params)
	if err != nil {
		pagination.RecordError("author_directory")
		writeServiceError(w, err)
		return
	}

	pagination.RecordRequest(http.StatusOK, result.CurrentPage)
	pagination.RecordDuration("author_directory", time.Since(start).Seconds())
	respond.JSON(w, http.StatusOK, pagination.NewResponse(
		fromStats(result.Items), result.Total, result.TotalPages, result.CurrentPage))
}
