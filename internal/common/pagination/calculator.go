// Package pagination provides the offset-based pagination core shared by
// every listing endpoint: offset/total-page calculation, query parameter
// parsing, configuration, and the generic response envelope.
package pagination

import "errors"

// ErrInvalidLimit is returned when a caller passes a non-positive limit.
// Limits come from configuration, not user input, so hitting this error
// indicates a misconfigured caller rather than a bad request.
var ErrInvalidLimit = errors.New("pagination: limit must be positive")

// Result holds the values derived from a (total, page, limit) triple.
type Result struct {
	Offset     int // rows to skip before the requested page
	TotalPages int // ceil(total / limit); 0 when there are no items
	Page       int // the effective (clamped) page number
}

// ClampPage normalizes a page number to the 1-based range.
// Page 0 and negative pages are treated as page 1 so the derived
// offset can never go negative.
func ClampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// CalculateOffset calculates the row offset for a 1-based page number.
// The page is clamped before the computation.
//
// Examples:
//   - Page 1, Limit 10 -> Offset 0
//   - Page 2, Limit 10 -> Offset 10
//   - Page 0, Limit 10 -> Offset 0 (clamped to page 1)
func CalculateOffset(page, limit int) int {
	return (ClampPage(page) - 1) * limit
}

// CalculateTotalPages returns ceil(total / limit).
// An empty collection has zero pages; consumers treat 0 and 1 pages as
// "no pager shown".
func CalculateTotalPages(total int64, limit int) int {
	if total <= 0 {
		return 0
	}
	return int((total + int64(limit) - 1) / int64(limit))
}

// Paginate derives offset and total-page count for one listing request.
// There is no upper clamp on page: asking for a page past the end is legal
// and simply yields an empty page, never an error.
func Paginate(total int64, page, limit int) (Result, error) {
	if limit <= 0 {
		return Result{}, ErrInvalidLimit
	}
	p := ClampPage(page)
	return Result{
		Offset:     (p - 1) * limit,
		TotalPages: CalculateTotalPages(total, limit),
		Page:       p,
	}, nil
}
