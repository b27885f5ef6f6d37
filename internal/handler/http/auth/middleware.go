package auth

import (
	"errors"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"inkwell/internal/handler/http/respond"
)

// SecretEnv is the environment variable holding the session signing key.
// The same key is used by the service that issues sessions.
const SecretEnv = "SESSION_SECRET"

// Guard rejects requests to protected endpoints that lack a valid
// session token. Tokens arrive as "Authorization: Bearer <jwt>" signed
// with HS256; the sub and name claims become the request principal.
//
// Only the mutations and the owner-scoped listing sit behind the guard.
// Visitors browse everything else anonymously: search, single articles,
// the author directory, and per-author listings.
func Guard(next http.Handler) http.Handler {
	secret := []byte(os.Getenv(SecretEnv))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if IsPublicRequest(r) {
			next.ServeHTTP(w, r)
			return
		}

		principal, err := validateSession(r.Header.Get("Authorization"), secret)
		if err != nil {
			respond.SafeError(w, http.StatusUnauthorized, fmt.Errorf("unauthorized: %w", err))
			return
		}

		next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), principal)))
	})
}

func validateSession(authz string, secret []byte) (Principal, error) {
	const prefix = "Bearer "
	if !strings.HasPrefix(authz, prefix) {
		return Principal{}, errors.New("missing bearer token")
	}

	tok, err := jwt.Parse(strings.TrimPrefix(authz, prefix), func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !tok.Valid {
		return Principal{}, errors.New("invalid token")
	}

	claims, ok := tok.Claims.(jwt.MapClaims)
	if !ok {
		return Principal{}, errors.New("invalid claims")
	}
	if exp, ok := claims["exp"].(float64); !ok || int64(exp) < time.Now().Unix() {
		return Principal{}, errors.New("token expired")
	}
	sub, ok := claims["sub"].(string)
	if !ok || sub == "" {
		return Principal{}, errors.New("invalid sub claim")
	}
	name, ok := claims["name"].(string)
	if !ok || name == "" {
		return Principal{}, errors.New("invalid name claim")
	}

	return Principal{ID: sub, Name: name}, nil
}
