// Package author provides the HTTP handler for the author directory.
package author

import "inkwell/internal/domain/entity"

// DTO is the JSON shape of one author-directory entry. The name is the
// article snapshot; the image comes from the identity store when the
// author has a profile.
type DTO struct {
	ID            string `json:"id" example:"9f8e7d6c-5b4a-4392-8170-6f5e4d3c2b1a"`
	Name          string `json:"name" example:"Alice"`
	TotalArticles int64  `json:"totalArticles" example:"42"`
	Image         string `json:"image" example:"https://images.example.com/alice.png"`
}

func fromStats(list []entity.AuthorStats) []DTO {
	out := make([]DTO, 0, len(list))
	for _, s := range list {
		out = append(out, DTO{
			ID:            s.AuthorID,
			Name:          s.Name,
			TotalArticles: s.TotalArticles,
			Image:         s.Image,
		})
	}
	return out
}
