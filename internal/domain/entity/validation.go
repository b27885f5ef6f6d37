package entity

import (
	"fmt"
	"net/url"
)

// maxURLLength bounds cover-image URLs so a hostile client cannot stuff
// megabytes into a single field.
const maxURLLength = 2048

// ValidateCoverImage validates that a cover image reference is a
// well-formed absolute http(s) URL.
// Returns a ValidationError naming the coverImage field when it is not.
func ValidateCoverImage(rawURL string) error {
	if rawURL == "" {
		return &ValidationError{Field: "coverImage", Message: "is required"}
	}

	if len(rawURL) > maxURLLength {
		return &ValidationError{
			Field:   "coverImage",
			Message: fmt.Sprintf("must not exceed %d characters", maxURLLength),
		}
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return &ValidationError{Field: "coverImage", Message: "must be a valid URL"}
	}

	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return &ValidationError{Field: "coverImage", Message: "must use http or https scheme"}
	}

	if parsedURL.Host == "" {
		return &ValidationError{Field: "coverImage", Message: "must have a valid host"}
	}

	return nil
}
