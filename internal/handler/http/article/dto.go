// Package article provides the HTTP handlers for article endpoints:
// search, owner and author listings, single fetch, and the owner-scoped
// mutations.
package article

import (
	"time"

	"inkwell/internal/domain/entity"
)

// DTO is the JSON shape of an article. Identifiers stay opaque strings;
// the author name is the snapshot taken when the article was created.
type DTO struct {
	ID         string    `json:"id" example:"0d0e5f3a-7b1c-4f7e-9d2a-3c4b5a6d7e8f"`
	Title      string    `json:"title" example:"Writing a CMS backend in Go"`
	Content    string    `json:"content" example:"Full article body..."`
	CoverImage string    `json:"coverImage" example:"https://images.example.com/cover.png"`
	AuthorID   string    `json:"authorId" example:"9f8e7d6c-5b4a-4392-8170-6f5e4d3c2b1a"`
	AuthorName string    `json:"authorName" example:"Alice"`
	CreatedAt  time.Time `json:"createdAt" example:"2026-02-01T10:00:00Z"`
}

func fromEntity(e *entity.Article) DTO {
	return DTO{
		ID:         e.ID,
		Title:      e.Title,
		Content:    e.Content,
		CoverImage: e.CoverImage,
		AuthorID:   e.AuthorID,
		AuthorName: e.AuthorName,
		CreatedAt:  e.CreatedAt,
	}
}

func fromEntities(list []*entity.Article) []DTO {
	out := make([]DTO, 0, len(list))
	for _, e := range list {
		out = append(out, fromEntity(e))
	}
	return out
}

// AuthorDTO is the author block returned alongside an author's article
// listing. TotalArticles mirrors the listing's total.
type AuthorDTO struct {
	ID            string `json:"id" example:"9f8e7d6c-5b4a-4392-8170-6f5e4d3c2b1a"`
	Name          string `json:"name" example:"Alice"`
	TotalArticles int64  `json:"totalArticles" example:"42"`
	Image         string `json:"image" example:"https://images.example.com/alice.png"`
}
