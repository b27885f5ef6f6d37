package article

import (
	"net/http"
	"time"

	"inkwell/internal/common/pagination"
	"inkwell/internal/handler/http/respond"
	artUC "inkwell/internal/usecase/article"
)

type SearchHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
}

// ServeHTTP searches articles by substring.
// @Summary      Search articles
// @Description  Case-insensitive substring search over title, content, and author name. A blank query returns the unfiltered listing. Results are newest first.
// @Tags         articles
// @Produce      json
// @Param        q query string false "search query"
// @Param        page query int false "page number (1-indexed, default: 1)"
// @Param        limit query int false "items per page (default: 10, max: 100)"
// @Success      200 {object} pagination.Response[DTO] "one page of matches"
// @Failure      503 {object} map[string]string "storage temporarily unavailable"
// @Failure      500 {object} map[string]string "server error"
// @Router       /articles/search [get]
func (h SearchHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	start := time.Now()
	params := pagination.ParseQueryParams(r, h.PaginationCfg)

	result, err := h.Svc.Search(r.Context(), r.URL.Query().Get("q"), params)
	if err != nil {
		pagination.RecordError("search")
		writeServiceError(w, http.StatusInternalServerError, err)
		return
	}

	pagination.RecordRequest(http.StatusOK, result.CurrentPage)
	pagination.RecordDuration("search", time.Since(start).Seconds())
	respond.JSON(w, http.StatusOK, pagination.NewResponse(
		fromEntities(result.Items), result.Total, result.TotalPages, result.CurrentPage))
}
