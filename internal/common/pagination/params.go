package pagination

import (
	"net/http"
	"strconv"
)

// Params represents pagination query parameters from an HTTP request.
type Params struct {
	Page  int // 1-based page number
	Limit int // items per page
}

// ParseQueryParams parses `page` and `limit` from the request query string.
//
// Bad input never fails a listing request: missing or unparsable values
// fall back to the configured defaults, a page below 1 is normalized to 1,
// and a limit above the configured maximum is capped. This mirrors the
// "page <= 0 is treated as page 1" rule the listing endpoints guarantee.
func ParseQueryParams(r *http.Request, config Config) Params {
	params := Params{
		Page:  config.DefaultPage,
		Limit: config.DefaultLimit,
	}

	if pageStr := r.URL.Query().Get("page"); pageStr != "" {
		if page, err := strconv.Atoi(pageStr); err == nil {
			params.Page = ClampPage(page)
		}
	}

	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if limit, err := strconv.Atoi(limitStr); err == nil && limit > 0 {
			params.Limit = limit
		}
	}
	if params.Limit > config.MaxLimit {
		params.Limit = config.MaxLimit
	}

	return params
}
