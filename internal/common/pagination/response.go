package pagination

// Response is the envelope every listing endpoint returns.
// T is the DTO type for the listed resource (ArticleDTO, AuthorDTO, ...).
//
// The total/totalPages pair is computed from a COUNT query issued
// independently of the page fetch, so it may trail the page contents by
// one concurrent write. That window is accepted; the two are never read
// inside one snapshot.
type Response[T any] struct {
	Items       []T   `json:"items"`
	Total       int64 `json:"total"`
	TotalPages  int   `json:"totalPages"`
	CurrentPage int   `json:"currentPage"`
}

// NewResponse builds a Response from a page of items and its metadata.
func NewResponse[T any](items []T, total int64, totalPages, currentPage int) Response[T] {
	if items == nil {
		items = []T{}
	}
	return Response[T]{
		Items:       items,
		Total:       total,
		TotalPages:  totalPages,
		CurrentPage: currentPage,
	}
}
