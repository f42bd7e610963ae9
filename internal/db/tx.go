package db

import (
	"context"
	"database/sql"
	"log"
)

// Querier is the subset of *sql.DB and *sql.Tx used by repositories.
type Querier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Transactor runs fn inside a single database transaction.
type Transactor interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type txKey struct{}

type txState struct {
	tx          *sql.Tx
	afterCommit []func(context.Context)
}

// TxManager begins read-committed transactions and injects them into the context so every
// repository call made by fn shares the transaction.
type TxManager struct {
	db *sql.DB
}

// NewTxManager returns a TxManager over db.
func NewTxManager(db *sql.DB) *TxManager {
	return &TxManager{db: db}
}

// RunInTx commits when fn returns nil and rolls back on error or panic. Nested calls join the
// outer transaction. Hooks registered with AfterCommit run after a successful commit, detached
// from the request's cancellation.
func (m *TxManager) RunInTx(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if _, ok := ctx.Value(txKey{}).(*txState); ok {
		return fn(ctx)
	}

	tx, err := m.db.BeginTx(ctx, &sql.TxOptions{Isolation: sql.LevelReadCommitted})
	if err != nil {
		return err
	}
	state := &txState{tx: tx}

	defer func() {
		if p := recover(); p != nil {
			_ = tx.Rollback()
			panic(p)
		} else if err != nil {
			_ = tx.Rollback()
		}
	}()

	if err = fn(context.WithValue(ctx, txKey{}, state)); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}

	hookCtx := context.WithoutCancel(ctx)
	for _, hook := range state.afterCommit {
		runHook(hookCtx, hook)
	}
	return nil
}

// Conn returns the transaction carried by ctx, or fallback when ctx has none.
func Conn(ctx context.Context, fallback *sql.DB) Querier {
	if state, ok := ctx.Value(txKey{}).(*txState); ok {
		return state.tx
	}
	return fallback
}

// AfterCommit schedules fn to run once the transaction in ctx commits. Without a transaction
// fn runs immediately. Hooks are dropped when the transaction rolls back.
func AfterCommit(ctx context.Context, fn func(context.Context)) {
	if state, ok := ctx.Value(txKey{}).(*txState); ok {
		state.afterCommit = append(state.afterCommit, fn)
		return
	}
	runHook(context.WithoutCancel(ctx), fn)
}

func runHook(ctx context.Context, fn func(context.Context)) {
	defer func() {
		if p := recover(); p != nil {
			log.Printf("db: after-commit hook panicked: %v", p)
		}
	}()
	fn(ctx)
}

// InTx reports whether ctx carries a transaction.
func InTx(ctx context.Context) bool {
	_, ok := ctx.Value(txKey{}).(*txState)
	return ok
}
