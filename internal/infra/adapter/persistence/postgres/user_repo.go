package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"inkwell/internal/domain/entity"
	"inkwell/internal/repository"
)

// UserRepo reads principal profiles from the identity provider's users
// table. Read-only: the provider owns every write.
type UserRepo struct {
	db Querier
}

func NewUserRepo(db Querier) repository.UserRepository {
	return &UserRepo{db: db}
}

func (repo *UserRepo) Get(ctx context.Context, id string) (*entity.User, error) {
	const query = `
SELECT id, name, image
FROM users
WHERE id = $1
LIMIT 1`
	var u entity.User
	err := repo.db.QueryRowContext(ctx, query, id).Scan(&u.ID, &u.Name, &u.Image)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("Get: %w", err)
	}
	return &u, nil
}
