package usecase

import (
	"context"

	"github.com/DRSN-tech/shop-backend/internal/domain"
)

type CatalogUC interface {
	Query(ctx context.Context, req *ProductQueryReq) (*ProductQueryRes, error)
	GetProduct(ctx context.Context, id string) (*ProductDetail, error)
}

type CartUC interface {
	AddItem(ctx context.Context, owner domain.Owner, productID string, qty int64) ([]CartItemRes, error)
	SetQuantity(ctx context.Context, owner domain.Owner, productID string, qty int64) ([]CartItemRes, error)
	RemoveItem(ctx context.Context, owner domain.Owner, productID string) ([]CartItemRes, error)
	GetCart(ctx context.Context, owner domain.Owner) ([]CartItemRes, error)
	ClearCart(ctx context.Context, owner domain.Owner) error
}
