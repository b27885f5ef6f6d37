package db

import (
	"database/sql"
	"fmt"
)

// schema bootstraps the tables this service reads and writes.
//
// The users table mirrors the identity provider's principal records; the
// provider owns its contents and this service only ever reads it. It is
// created here so local development works against a single empty database.
const schema = `
CREATE TABLE IF NOT EXISTS users (
    id    UUID PRIMARY KEY,
    name  TEXT NOT NULL,
    image TEXT NOT NULL DEFAULT ''
);

CREATE TABLE IF NOT EXISTS articles (
    id          UUID PRIMARY KEY,
    title       TEXT NOT NULL,
    content     TEXT NOT NULL,
    cover_image TEXT NOT NULL,
    author_id   UUID NOT NULL,
    author_name TEXT NOT NULL,
    created_at  TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_articles_created_at ON articles (created_at DESC);
CREATE INDEX IF NOT EXISTS idx_articles_author_id  ON articles (author_id, created_at DESC);
`

// EnsureSchema creates the tables and indexes if they do not exist yet.
func EnsureSchema(pool *sql.DB) error {
	if _, err := pool.Exec(schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
