package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsPublicEndpoint(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/healthz", true},
		{"/healthz/", true},
		{"/healthz?verbose=1", true},
		{"/healthz/detail", false},
		{"/healthzz", false},
		{"/metrics", true},
		{"/swagger/", true},
		{"/swagger/index.html", true},
		{"/articles/search", false},
		{"/articles/my", false},
		{"/authors", false},
		{"/", false},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			if got := IsPublicEndpoint(tt.path); got != tt.want {
				t.Errorf("IsPublicEndpoint(%q) = %v, want %v", tt.path, got, tt.want)
			}
		})
	}
}

func TestIsPublicRequest(t *testing.T) {
	tests := []struct {
		name   string
		method string
		path   string
		want   bool
	}{
		{"search is browsable", http.MethodGet, "/articles/search", true},
		{"author directory is browsable", http.MethodGet, "/authors", true},
		{"author directory trailing slash", http.MethodGet, "/authors/", true},
		{"per-author listing is browsable", http.MethodGet, "/articles/authors/9f8e7d6c-5b4a-4392-8170-6f5e4d3c2b1a", true},
		{"single article is browsable", http.MethodGet, "/articles/0d0e5f3a-7b1c-4f7e-9d2a-3c4b5a6d7e8f", true},
		{"own listing needs a session", http.MethodGet, "/articles/my", false},
		{"create needs a session", http.MethodPost, "/articles", false},
		{"update needs a session", http.MethodPut, "/articles/0d0e5f3a-7b1c-4f7e-9d2a-3c4b5a6d7e8f", false},
		{"delete needs a session", http.MethodDelete, "/articles/0d0e5f3a-7b1c-4f7e-9d2a-3c4b5a6d7e8f", false},
		{"health probe", http.MethodGet, "/healthz", true},
		{"root is not browsable", http.MethodGet, "/", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := httptest.NewRequest(tt.method, tt.path, nil)
			if got := IsPublicRequest(r); got != tt.want {
				t.Errorf("IsPublicRequest(%s %s) = %v, want %v", tt.method, tt.path, got, tt.want)
			}
		})
	}
}
