package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/shop-backend/internal/domain"
)

type ProductRepository interface {
	// GetByID возвращает e.ErrProductNotFound, если товара нет.
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Find(ctx context.Context, filter *ProductFilter) ([]domain.Product, error)
	FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error)
}

type CartRepository interface {
	// Get читает корзину без блокировки; (nil, nil), если корзины нет.
	Get(ctx context.Context, ownerID string) (*domain.Cart, error)
	// EnsureExists лениво создаёт пустую строку корзины владельца.
	// Вызывается перед GetForUpdate: блокирующему чтению всегда должно быть
	// что блокировать. Требует транзакции в контексте.
	EnsureExists(ctx context.Context, ownerID string) error
	// GetForUpdate блокирует строку корзины владельца до конца транзакции;
	// (nil, nil), если корзины нет. Требует транзакции в контексте.
	GetForUpdate(ctx context.Context, ownerID string) (*domain.Cart, error)
	Upsert(ctx context.Context, cart *domain.Cart) error
	Delete(ctx context.Context, ownerID string) error
}

type ImageRepository interface {
	PresignedGet(ctx context.Context, key string, expiry time.Duration) (string, error)
}

type CacheRepository interface {
	GetProducts(ctx context.Context, ids []string) (map[string]ProductDetail, error)
	SetProducts(ctx context.Context, products []ProductDetail) error
}
