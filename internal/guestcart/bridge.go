package guestcart

import (
	"context"
	"errors"
	"time"

	"github.com/DRSN-tech/shop-backend/internal/domain"
	"github.com/DRSN-tech/shop-backend/internal/usecase"
	"github.com/DRSN-tech/shop-backend/pkg/e"
	"github.com/DRSN-tech/shop-backend/pkg/jitter"
	"github.com/DRSN-tech/shop-backend/pkg/logger"
)

const (
	mergeMaxAttempts = 3
	mergeBackoffBase = 500 * time.Millisecond
	mergeBackoffMax  = 5 * time.Second
)

// Bridge переносит гостевую корзину в серверную корзину аккаунта
// в момент входа.
type Bridge struct {
	store  *Store
	carts  usecase.CartUC
	logger logger.Logger
}

func NewBridge(store *Store, carts usecase.CartUC, logger logger.Logger) *Bridge {
	return &Bridge{
		store:  store,
		carts:  carts,
		logger: logger,
	}
}

// Merge отправляет каждую позицию гостевой корзины как AddItem в корзину
// владельца. Добавления коммутируют и сливаются по товару, поэтому порядок
// не важен. Позиция удаляется из локального хранилища только после
// подтверждённого добавления: при обрыве посреди слияния неподтверждённые
// позиции сохраняются и будут отправлены повторно без двойного учёта.
func (b *Bridge) Merge(ctx context.Context, owner domain.Owner) error {
	const op = "Bridge.Merge"

	items, err := b.store.Items()
	if err != nil {
		return e.Wrap(op, err)
	}

	for _, item := range items {
		if err := b.submit(ctx, owner, item); err != nil {
			if errors.Is(err, e.ErrProductNotFound) {
				// Товар исчез из каталога, пока посетитель был гостем
				b.logger.Warnf("Dropping guest cart item, product %s no longer exists", item.ProductID)
			} else {
				return e.Wrap(op, err)
			}
		}

		if _, err := b.store.RemoveItem(item.ProductID); err != nil {
			return e.Wrap(op, err)
		}
	}

	return nil
}

// submit добавляет одну гостевую позицию в серверную корзину, повторяя
// попытку с джиттер-отступлением при недоступности хранилища.
func (b *Bridge) submit(ctx context.Context, owner domain.Owner, item domain.CartItem) error {
	var lastErr error

	for attempt := 0; attempt < mergeMaxAttempts; attempt++ {
		if attempt > 0 {
			backoff := jitter.ExponentialBackoff(mergeBackoffBase, mergeBackoffMax, attempt-1, jitter.DefaultJitter)
			select {
			case <-time.After(backoff):
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		_, err := b.carts.AddItem(ctx, owner, item.ProductID, item.Quantity)
		if err == nil {
			return nil
		}

		lastErr = err
		if !errors.Is(err, e.ErrStoreUnavailable) {
			return err
		}

		b.logger.Warnf("Guest cart merge attempt %d failed for product %s: %v", attempt+1, item.ProductID, err)
	}

	return lastErr
}
