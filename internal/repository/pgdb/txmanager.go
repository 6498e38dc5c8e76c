package pgdb

import (
	"context"

	"github.com/DRSN-tech/shop-backend/pkg/e"
	transaction "github.com/avito-tech/go-transaction-manager/drivers/pgxv5/v2"
	"github.com/jackc/pgx/v5"
	"github.com/jimlawless/whereami"
)

// TxManager выполняет функцию внутри транзакции PostgreSQL, помещая
// транзакцию в контекст для репозиториев (см. pkg/tr).
type TxManager struct {
	dbPool transaction.Transactional
}

func NewTxManager(dbPool transaction.Transactional) *TxManager {
	return &TxManager{
		dbPool: dbPool,
	}
}

func (m *TxManager) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	ctx, tx, err := transaction.NewTransaction(ctx, pgx.TxOptions{}, m.dbPool)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), e.Mark(e.ErrStoreUnavailable, err))
	}
	// При ошибке транзакция откатывается, частичные изменения не видны
	defer func() {
		if err != nil && tx.IsActive() {
			tx.Rollback(ctx)
		}
	}()
	ctx = context.WithValue(ctx, "tx", tx.Transaction())

	if err = fn(ctx); err != nil {
		return err
	}

	if err = tx.Commit(ctx); err != nil {
		return e.Wrap(whereami.WhereAmI(), e.Mark(e.ErrStoreUnavailable, err))
	}

	return nil
}
