package circuitbreaker

import (
	"context"
	"database/sql"

	"github.com/sony/gobreaker"
)

// DB wraps a *sql.DB so that queries and statements pass through a
// circuit breaker. It satisfies the Querier interface the persistence
// adapters accept, so repositories can run against a bare pool in tests
// and a protected pool in production.
type DB struct {
	cb *CircuitBreaker
	db *sql.DB
}

// Wrap protects db with the store breaker configuration.
func Wrap(db *sql.DB) *DB {
	return &DB{cb: New(StoreConfig()), db: db}
}

// WrapWithConfig protects db with a custom breaker configuration.
func WrapWithConfig(db *sql.DB, cfg Config) *DB {
	return &DB{cb: New(cfg), db: db}
}

// QueryContext executes a query through the breaker. When the breaker is
// open it returns gobreaker.ErrOpenState without touching the store.
func (d *DB) QueryContext(ctx context.Context, query string, args ...interface{}) (*sql.Rows, error) {
	result, err := d.cb.Execute(func() (interface{}, error) {
		return d.db.QueryContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.(*sql.Rows), nil
}

// ExecContext executes a statement through the breaker.
func (d *DB) ExecContext(ctx context.Context, query string, args ...interface{}) (sql.Result, error) {
	result, err := d.cb.Execute(func() (interface{}, error) {
		return d.db.ExecContext(ctx, query, args...)
	})
	if err != nil {
		return nil, err
	}
	return result.(sql.Result), nil
}

// QueryRowContext bypasses the breaker: sql.Row defers its error to Scan,
// so there is nothing to observe here. Row errors still count against the
// breaker indirectly once the surrounding operations start failing.
func (d *DB) QueryRowContext(ctx context.Context, query string, args ...interface{}) *sql.Row {
	return d.db.QueryRowContext(ctx, query, args...)
}

// State returns the breaker state.
func (d *DB) State() gobreaker.State {
	return d.cb.State()
}

// IsOpen reports whether the breaker currently refuses store calls.
func (d *DB) IsOpen() bool {
	return d.cb.IsOpen()
}

// Unwrap returns the underlying pool for operations that must not pass
// through the breaker (health-check pings, shutdown).
func (d *DB) Unwrap() *sql.DB {
	return d.db
}
