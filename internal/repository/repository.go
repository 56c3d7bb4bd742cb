package repository

import (
	"context"
	"database/sql"
)

// Repository represents the base repository interface
type Repository interface {
	// Transaction executes operations within a database transaction.
	// Repository calls made with the ctx passed to fn join the transaction.
	Transaction(ctx context.Context, fn func(ctx context.Context) error) error
	DB() *sql.DB
}

// Querier is the subset of *sql.DB and *sql.Tx used by the postgres repositories
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

type txKey struct{}

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	db *sql.DB
}

// NewBaseRepository creates a new base repository
func NewBaseRepository(db *sql.DB) BaseRepository {
	return BaseRepository{db: db}
}

// DB returns the database connection
func (r *BaseRepository) DB() *sql.DB {
	return r.db
}

// Conn returns the transaction bound to ctx, or the pool when there is none
func (r *BaseRepository) Conn(ctx context.Context) Querier {
	if tx, ok := ctx.Value(txKey{}).(*sql.Tx); ok {
		return tx
	}
	return r.db
}

// InTransaction reports whether ctx carries an open transaction
func InTransaction(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*sql.Tx)
	return ok
}

// Transaction implements the Repository interface. Nested calls reuse the outer transaction.
func (r *BaseRepository) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if InTransaction(ctx) {
		return fn(ctx)
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		_ = tx.Rollback()
		return err
	}

	return tx.Commit()
}
