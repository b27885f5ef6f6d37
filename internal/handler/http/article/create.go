package article

import (
	"encoding/json"
	"errors"
	"net/http"

	"inkwell/internal/handler/http/auth"
	"inkwell/internal/handler/http/respond"
	artUC "inkwell/internal/usecase/article"
)

type CreateHandler struct{ Svc *artUC.Service }

// ServeHTTP creates an article owned by the caller.
// @Summary      Create article
// @Description  Creates a new article. The caller becomes the owner and their display name is captured as the author-name snapshot. No duplicate detection.
// @Tags         articles
// @Security     BearerAuth
// @Accept       json
// @Produce      json
// @Param        article body object true "title, content, coverImage"
// @Success      201 {object} DTO "the created article with its server-assigned ID"
// @Failure      400 {object} map[string]string "invalid input"
// @Failure      401 {object} map[string]string "authentication required"
// @Failure      503 {object} map[string]string "storage temporarily unavailable"
// @Failure      500 {object} map[string]string "server error"
// @Router       /articles [post]
func (h CreateHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	principal, ok := auth.PrincipalFromContext(r.Context())
	if !ok {
		respond.SafeError(w, http.StatusUnauthorized, errors.New("unauthorized"))
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

	art, err := h.Svc.Create(r.Context(),
		artUC.Owner{ID: principal.ID, Name: principal.Name},
		artUC.Input{Title: req.Title, Content: req.Content, CoverImage: req.CoverImage})
	if err != nil {
		writeServiceError(w, http.StatusInternalServerError, err)
		return
	}

	respond.JSON(w, http.StatusCreated, fromEntity(art))
}
