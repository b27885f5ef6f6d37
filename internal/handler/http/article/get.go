package article

import (
	"net/http"

	"inkwell/internal/handler/http/pathutil"
	"inkwell/internal/handler/http/respond"
	artUC "inkwell/internal/usecase/article"
)

type GetHandler struct{ Svc *artUC.Service }

// ServeHTTP fetches a single article.
// @Summary      Get article
// @Description  One article by its ID.
// @Tags         articles
// @Produce      json
// @Param        id path string true "article ID"
// @Success      200 {object} DTO "the article"
// @Failure      400 {object} map[string]string "invalid article ID"
// @Failure      404 {object} map[string]string "article not found"
// @Failure      500 {object} map[string]string "server error"
// @Router       /articles/{id} [get]
func (h GetHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	art, err := h.Svc.Get(r.Context(), id)
	if err != nil {
		writeServiceError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, fromEntity(art))
}
