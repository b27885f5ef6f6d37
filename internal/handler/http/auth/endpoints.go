package auth

import (
	"net/http"
	"strings"
)

// PublicEndpoints lists paths reachable without a session regardless of
// method: orchestration probes, the Prometheus scrape target, and API
// docs.
var PublicEndpoints = []string{
	"/healthz",
	"/metrics",
	"/swagger/",
}

// IsPublicEndpoint reports whether path may be served without a session.
//
// Entries ending in '/' match by prefix (so /swagger/ covers
// /swagger/index.html); the rest match exactly, with a trailing slash or
// query string tolerated. /healthz matches /healthz?verbose=1 but never
// /healthz/detail.
func IsPublicEndpoint(path string) bool {
	for _, endpoint := range PublicEndpoints {
		if strings.HasSuffix(endpoint, "/") {
			if strings.HasPrefix(path, endpoint) {
				return true
			}
			continue
		}

		if path == endpoint || path == endpoint+"/" {
			return true
		}
		if strings.HasPrefix(path, endpoint+"?") {
			return true
		}
	}
	return false
}

// IsPublicRequest reports whether r may be served without a session:
// either an always-public path or a visitor-browsable read.
func IsPublicRequest(r *http.Request) bool {
	return IsPublicEndpoint(r.URL.Path) || isBrowsableRead(r.Method, r.URL.Path)
}

// isBrowsableRead reports whether the request is one of the read-only
// article or author endpoints visitors browse anonymously: search, the
// author directory, per-author listings, and single-article fetches.
// The owner-scoped listing under /articles/my is not browsable; only its
// owner may see it.
func isBrowsableRead(method, path string) bool {
	if method != http.MethodGet {
		return false
	}
	switch {
	case path == "/authors" || path == "/authors/":
		return true
	case path == "/articles/my" || strings.HasPrefix(path, "/articles/my/"):
		return false
	case strings.HasPrefix(path, "/articles/"):
		return true
	}
	return false
}
