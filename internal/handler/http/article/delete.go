package article

import (
	"errors"
	"net/http"

	"inkwell/internal/handler/http/auth"
	"inkwell/internal/handler/http/pathutil"
	"inkwell/internal/handler/http/respond"
	artUC "inkwell/internal/usecase/article"
)

type DeleteHandler struct{ Svc *artUC.Service }

// ServeHTTP deletes an owned article.
// @Summary      Delete article
// @Description  Deletes the article when the caller owns it. An article owned by someone else reads as not found.
// @Tags         articles
// @Security     BearerAuth
// @Param        id path string true "article ID"
// @Success      204 "No Content"
// @Failure      400 {object} map[string]string "invalid article ID"
// @Failure      401 {object} map[string]string "authentication required"
// @Failure      404 {object} map[string]string "article not found"
// @Failure      503 {object} map[string]string "storage temporarily unavailable"
// @Failure      500 {object} map[string]string "server error"
// @Router       /articles/{id} [delete]
func (h DeleteHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
		return
	}

	id, err := pathutil.ExtractID(r.URL.Path, "/articles/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	if err := h.Svc.Delete(r.Context(), id, artUC.Owner{ID: principal.ID, Name: principal.Name}); err != nil {
		writeServiceError(w, http.StatusInternalServerError, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
