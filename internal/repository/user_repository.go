package repository

import (
	"context"

	"inkwell/internal/domain/entity"
)

// UserRepository reads principal profiles from the external identity
// store. The store is written only by the identity provider; this
// application never mutates it.
type UserRepository interface {
	// Get returns the profile for the given principal id, or (nil, nil)
	// when no such profile exists.
	Get(ctx context.Context, id string) (*entity.User, error)
}
