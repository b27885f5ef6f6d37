package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"inkwell/internal/handler/http/auth"
	"inkwell/internal/handler/http/pathutil"
	"inkwell/internal/handler/http/respond"
	artUC "inkwell/internal/usecase/article"
)

type UpdateHandler struct{ Svc *artUC.Service }

// ServeHTTP replaces the editable fields of an owned article.
// @Summary      Update article
// @Description  Full replacement of title, content, and coverImage. Only the owner can update; an article owned by someone else reads as not found.
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        id path string true "article ID"
// @Param        article body object true "title, content, coverImage"
// @Success      200 {object} map[string]string "update confirmation"
// @Failure      400 {object} map[string]string "invalid input"
// @Failure      401 {object} map[string]string "authentication required"
// @Failure      404 {object} map[string]string "article not found"
// @Failure      503 {object} map[string]string "storage temporarily unavailable"
// @Failure      500 {object} map[string]string "server error"
// @Router       /articles/{id} [put]
func (h UpdateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
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

	var req struct {
		Title      string `json:"title"`
		Content    string `json:"content"`
		CoverImage string `json:"coverImage"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respond.SafeError(w, http.StatusBadRequest, errors.New("invalid request body"))
		return
	}

	err = h.Svc.Update(r.Context(), id,
		artUC.Owner{ID: principal.ID, Name: principal.Name},
		artUC.Input{Title: req.Title, Content: req.Content, CoverImage: req.CoverImage})
	if err != nil {
		writeServiceError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusOK, map[string]string{"message": "article updated"})
}
