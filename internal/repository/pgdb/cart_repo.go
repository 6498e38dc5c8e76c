package pgdb

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/DRSN-tech/shop-backend/internal/domain"
	"github.com/DRSN-tech/shop-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/shop-backend/pkg/e"
	"github.com/DRSN-tech/shop-backend/pkg/tr"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

// CartRepo реализует хранилище корзин поверх PostgreSQL: одна строка на
// владельца, позиции в jsonb-колонке. Запись атомарна на уровне строки.
type CartRepo struct {
	pool *pgxpool.Pool
	conv converter.CartConverter
}

func NewCartRepo(pool *pgxpool.Pool, conv converter.CartConverter) *CartRepo {
	return &CartRepo{
		pool: pool,
		conv: conv,
	}
}

// Get читает корзину владельца без блокировки. Отсутствие корзины — (nil, nil).
func (c *CartRepo) Get(ctx context.Context, ownerID string) (*domain.Cart, error) {
	query := `SELECT owner_id, items, created_at, updated_at FROM carts WHERE owner_id = $1`

	cart, err := c.scanCart(c.pool.QueryRow(ctx, query, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), e.Mark(e.ErrStoreUnavailable, err))
	}

	return cart, nil
}

// EnsureExists лениво создаёт пустую строку корзины владельца внутри текущей
// транзакции. Без строки SELECT ... FOR UPDATE нечего блокировать, и две
// конкурирующие первые мутации одного владельца не сериализовались бы.
func (c *CartRepo) EnsureExists(ctx context.Context, ownerID string) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `INSERT INTO carts (owner_id, items) VALUES ($1, '[]') ON CONFLICT (owner_id) DO NOTHING`

	if _, err := tx.Exec(ctx, query, ownerID); err != nil {
		return e.Wrap(whereami.WhereAmI(), e.Mark(e.ErrStoreUnavailable, err))
	}

	return nil
}

// GetForUpdate блокирует строку корзины владельца до конца транзакции,
// сериализуя конкурирующие мутации одного владельца. Отсутствие корзины — (nil, nil).
func (c *CartRepo) GetForUpdate(ctx context.Context, ownerID string) (*domain.Cart, error) {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	query := `SELECT owner_id, items, created_at, updated_at FROM carts WHERE owner_id = $1 FOR UPDATE`

	cart, err := c.scanCart(tx.QueryRow(ctx, query, ownerID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, e.Wrap(whereami.WhereAmI(), e.Mark(e.ErrStoreUnavailable, err))
	}

	return cart, nil
}

// Upsert сохраняет корзину владельца целиком, лениво создавая строку.
func (c *CartRepo) Upsert(ctx context.Context, cart *domain.Cart) error {
	tx, err := tr.TxFromCtx(ctx)
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	items, err := json.Marshal(c.conv.ToArrModel(cart.Items))
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	query := `
		INSERT INTO carts (owner_id, items)
		VALUES ($1, $2)
		ON CONFLICT (owner_id)
		DO UPDATE SET
			items = EXCLUDED.items,
			updated_at = NOW()
	`

	if _, err := tx.Exec(ctx, query, cart.OwnerID, items); err != nil {
		return e.Wrap(whereami.WhereAmI(), e.Mark(e.ErrStoreUnavailable, err))
	}

	return nil
}

// Delete удаляет корзину владельца. Удаление отсутствующей корзины — не ошибка.
func (c *CartRepo) Delete(ctx context.Context, ownerID string) error {
	if _, err := c.pool.Exec(ctx, `DELETE FROM carts WHERE owner_id = $1`, ownerID); err != nil {
		return e.Wrap(whereami.WhereAmI(), e.Mark(e.ErrStoreUnavailable, err))
	}

	return nil
}

func (c *CartRepo) scanCart(row pgx.Row) (*domain.Cart, error) {
	var (
		cart  domain.Cart
		items []byte
	)

	if err := row.Scan(&cart.OwnerID, &items, &cart.CreatedAt, &cart.UpdatedAt); err != nil {
		return nil, err
	}

	var models []converter.CartItemModel
	if err := json.Unmarshal(items, &models); err != nil {
		return nil, err
	}

	cart.Items = c.conv.ToArrEntity(models)
	if cart.Items == nil {
		cart.Items = []domain.CartItem{}
	}

	return &cart, nil
}
