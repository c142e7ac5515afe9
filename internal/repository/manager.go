package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

type txKey struct{}

// TransactionManager выполняет несколько операций репозиториев в одной транзакции.
type TransactionManager struct {
	db *Postgres
}

func NewTransactionManager(db *Postgres) *TransactionManager {
	return &TransactionManager{db: db}
}

// RunInTransaction выполняет fn в транзакции READ COMMITTED. Репозитории получают
// транзакцию через контекст. Если транзакция уже есть в ctx, fn выполняется в ней.
func (tm *TransactionManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if _, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return fn(ctx)
	}
	return pgx.BeginTxFunc(ctx, tm.db.Pool, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, func(tx pgx.Tx) error {
		return fn(context.WithValue(ctx, txKey{}, tx))
	})
}

// DBTX — общий интерфейс *pgxpool.Pool и pgx.Tx.
type DBTX interface {
	Exec(context.Context, string, ...any) (pgconn.CommandTag, error)
	Query(context.Context, string, ...any) (pgx.Rows, error)
	QueryRow(context.Context, string, ...any) pgx.Row
}

// GetQueryExecutor возвращает транзакцию из контекста или пул.
func (p *Postgres) GetQueryExecutor(ctx context.Context) DBTX {
	if tx, ok := ctx.Value(txKey{}).(pgx.Tx); ok {
		return tx
	}
	return p.Pool
}
