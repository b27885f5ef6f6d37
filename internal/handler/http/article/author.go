package article

import (
	"net/http"
	"time"

	"inkwell/internal/common/pagination"
	"inkwell/internal/handler/http/pathutil"
	"inkwell/internal/handler/http/respond"
	artUC "inkwell/internal/usecase/article"
)

type AuthorArticlesHandler struct {
	Svc           *artUC.Service
	PaginationCfg pagination.Config
}

// AuthorListingResponse couples the author's profile block with one page
// of their articles.
type AuthorListingResponse struct {
	Author   AuthorDTO                `json:"author"`
	Articles pagination.Response[DTO] `json:"articles"`
}

// ServeHTTP lists one author's articles with their profile.
// @Summary      List articles by author
// @Description  The author's profile together with one page of their articles, newest first. 404 when the author ID resolves to no profile.
// @Tags         articles
// @Produce      json
// @Param        authorId path string true "author ID"
// @Param        page query int false "page number (1-indexed, default: 1)"
// @Param        limit query int false "items per page (default: 10, max: 100)"
// @Success      200 {object} AuthorListingResponse "author profile and one page of articles"
// @Failure      400 {object} map[string]string "invalid author ID"
// @Failure      404 {object} map[string]string "author not found"
// @Failure      503 {object} map[string]string "storage temporarily unavailable"
// @Failure      500 {object} map[string]string "server error"
// @Router       /articles/authors/{authorId} [get]
func (h AuthorArticlesHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	authorID, err := pathutil.ExtractID(r.URL.Path, "/articles/authors/")
	if err != nil {
		respond.SafeError(w, http.StatusBadRequest, err)
		return
	}

	start := time.Now()
	params := pagination.ParseQueryParams(r, h.PaginationCfg)

	listing, err := h.Svc.ListByAuthor(r.Context(), authorID, params)
	if err != nil {
		pagination.RecordError("list_by_author")
		writeServiceError(w, http.StatusInternalServerError, err)
		return
	}

	pagination.RecordRequest(http.StatusOK, listing.Articles.CurrentPage)
	pagination.RecordDuration("list_by_author", time.Since(start).Seconds())
	respond.JSON(w, http.StatusOK, AuthorListingResponse{
		Author: AuthorDTO{
			ID:            listing.Author.AuthorID,
			Name:          listing.Author.Name,
			TotalArticles: listing.Author.TotalArticles,
			Image:         listing.Author.Image,
		},
		Articles: pagination.NewResponse(
			fromEntities(listing.Articles.Items),
			listing.Articles.Total,
			listing.Articles.TotalPages,
			listing.Articles.CurrentPage),
	})
}
