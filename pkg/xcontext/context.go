package xcontext

import (
	"context"

	"gorm.io/gorm"
)

type (
	dbKey struct{}
	txKey struct{}
)

func WithDB(ctx context.Context, db *gorm.DB) context.Context {
	return context.WithValue(ctx, dbKey{}, db)
}

// DB returns the current database handle. If a transaction was begun with
// WithDBTransaction, the transaction is returned instead of the root
// handle until it is committed or rolled back.
func DB(ctx context.Context) *gorm.DB {
	if tx, ok := ctx.Value(txKey{}).(*transaction); ok && !tx.done {
		return tx.tx
	}

	db, ok := ctx.Value(dbKey{}).(*gorm.DB)
	if !ok {
		panic("no database in context")
	}

	return db
}

type transaction struct {
	tx   *gorm.DB
	done bool
}

// WithDBTransaction begins a transaction and makes DB(ctx) return it.
// Callers must defer WithRollbackDBTransaction and call
// WithCommitDBTransaction on the success path.
func WithDBTransaction(ctx context.Context) context.Context {
	return context.WithValue(ctx, txKey{}, &transaction{tx: DB(ctx).Begin()})
}

func WithCommitDBTransaction(ctx context.Context) context.Context {
	if tx, ok := ctx.Value(txKey{}).(*transaction); ok && !tx.done {
		tx.tx.Commit()
		tx.done = true
	}

	return ctx
}

func WithRollbackDBTransaction(ctx context.Context) context.Context {
	if tx, ok := ctx.Value(txKey{}).(*transaction); ok && !tx.done {
		tx.tx.Rollback()
		tx.done = true
	}

	return ctx
}
