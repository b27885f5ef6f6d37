package pathutil

import (
	"regexp"
	"strings"
)

// pathPatterns maps dynamic routes to stable templates so metrics labels
// keep a bounded cardinality. Evaluated most specific first.
var pathPatterns = []struct {
	pattern  *regexp.Regexp
	template string
}{
	{regexp.MustCompile(`^/articles/authors/[0-9a-fA-F-]{36}$`), "/articles/authors/:id"},
	{regexp.MustCompile(`^/articles/[0-9a-fA-F-]{36}$`), "/articles/:id"},
}

// NormalizePath rewrites paths containing record IDs to their template
// form. Static routes pass through unchanged; query strings and trailing
// slashes are stripped first.
//
//	NormalizePath("/articles/0d0e…?page=2")  // "/articles/:id"
//	NormalizePath("/articles/search")        // "/articles/search"
func NormalizePath(path string) string {
	if idx := strings.IndexByte(path, '?'); idx != -1 {
		path = path[:idx]
	}
	if len(path) > 1 && path[len(path)-1] == '/' {
		path = path[:len(path)-1]
	}

	for _, p := range pathPatterns {
		if p.pattern.MatchString(path) {
			return p.template
		}
	}
	return path
}
