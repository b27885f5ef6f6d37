// Package pathutil handles the URL-path concerns shared by all handlers:
// extracting opaque record IDs and normalizing paths for metrics labels.
package pathutil

import (
	"errors"
	"strings"

	"github.com/google/uuid"
)

// ErrInvalidID is returned when the ID segment of a URL path is not a
// well-formed identifier.
var ErrInvalidID = errors.New("invalid id")

// ExtractID strips prefix from path and validates that the remainder is
// a single UUID segment. IDs are opaque to callers; validating the shape
// here lets handlers reject garbage before touching storage.
//
//	id, err := ExtractID("/articles/0d0e…", "/articles/")
func ExtractID(path, prefix string) (string, error) {
	idStr := strings.TrimPrefix(path, prefix)
	if idStr == "" || strings.Contains(idStr, "/") {
		return "", ErrInvalidID
	}
	if _, err := uuid.Parse(idStr); err != nil {
		return "", ErrInvalidID
	}
	return idStr, nil
}
