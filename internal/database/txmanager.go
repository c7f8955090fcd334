package database

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

type txKey struct{}

// Querier is the query surface shared by *sql.DB and *sql.Tx. Repositories
// depend on it so the same code runs inside and outside a transaction.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// TxManager runs a unit of work inside a transaction carried by the context.
type TxManager interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type sqlTxManager struct {
	db *sql.DB
}

// NewTxManager returns a TxManager that opens transactions on db.
func NewTxManager(db *sql.DB) TxManager {
	return &sqlTxManager{db: db}
}

// WithTx executes fn within a transaction. A nested call joins the transaction
// already in ctx and leaves commit or rollback to the outermost call. A panic
// in fn rolls back and is re-raised.
func (m *sqlTxManager) WithTx(ctx context.Context, fn func(ctx context.Context) error) error {
	if txFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		}
	}()

	if err := fn(context.WithValue(ctx, txKey{}, tx)); err != nil {
		return rollback(tx, err)
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetTx returns the transaction carried by ctx, or db when there is none.
func GetTx(ctx context.Context, db *sql.DB) Querier {
	if tx := txFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

func txFromContext(ctx context.Context) *sql.Tx {
	tx, _ := ctx.Value(txKey{}).(*sql.Tx)
	return tx
}

// rollback aborts tx after fn failed with cause. cause is always kept in the
// returned chain.
func rollback(tx *sql.Tx, cause error) error {
	if err := tx.Rollback(); err != nil {
		return errors.Join(cause, fmt.Errorf("failed to rollback transaction: %w", err))
	}
	return cause
}
