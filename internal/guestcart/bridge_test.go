package guestcart

import (
	"context"
	"testing"

	"github.com/DRSN-tech/shop-backend/internal/domain"
	"github.com/DRSN-tech/shop-backend/internal/usecase"
	"github.com/DRSN-tech/shop-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeCartUC — серверная корзина в памяти с настраиваемыми отказами AddItem.
type fakeCartUC struct {
	carts map[string]*domain.Cart
	// failures задаёт, сколько раз AddItem для товара вернёт failErr,
	// прежде чем начнёт проходить
	failures map[string]int
	failErr  error
}

func newFakeCartUC() *fakeCartUC {
	return &fakeCartUC{
		carts:    make(map[string]*domain.Cart),
		failures: make(map[string]int),
	}
}

func (f *fakeCartUC) cart(ownerID string) *domain.Cart {
	cart, ok := f.carts[ownerID]
	if !ok {
		cart = domain.NewCart(ownerID)
		f.carts[ownerID] = cart
	}
	return cart
}

func (f *fakeCartUC) AddItem(ctx context.Context, owner domain.Owner, productID string, qty int64) ([]usecase.CartItemRes, error) {
	if n := f.failures[productID]; n > 0 {
		f.failures[productID] = n - 1
		return nil, f.failErr
	}

	f.cart(owner.AccountID).Add(productID, qty)
	return nil, nil
}

func (f *fakeCartUC) SetQuantity(ctx context.Context, owner domain.Owner, productID string, qty int64) ([]usecase.CartItemRes, error) {
	return nil, nil
}

func (f *fakeCartUC) RemoveItem(ctx context.Context, owner domain.Owner, productID string) ([]usecase.CartItemRes, error) {
	return nil, nil
}

func (f *fakeCartUC) GetCart(ctx context.Context, owner domain.Owner) ([]usecase.CartItemRes, error) {
	return nil, nil
}

func (f *fakeCartUC) ClearCart(ctx context.Context, owner domain.Owner) error {
	return nil
}

func quantities(cart *domain.Cart) map[string]int64 {
	result := make(map[string]int64)
	for _, item := range cart.Items {
		result[item.ProductID] = item.Quantity
	}
	return result
}

func TestMergeMovesGuestItemsIntoAccountCart(t *testing.T) {
	store := newTestStore(t)
	server := newFakeCartUC()
	bridge := NewBridge(store, server, nopLogger{})

	_, err := store.AddItem("p1", 2)
	require.NoError(t, err)
	_, err = store.AddItem("p2", 1)
	require.NoError(t, err)

	// На сервере уже лежит p1: слияние добивает количество
	server.cart("acc-1").Add("p1", 1)

	require.NoError(t, bridge.Merge(context.Background(), domain.AccountOwner("acc-1")))

	assert.Equal(t, map[string]int64{"p1": 3, "p2": 1}, quantities(server.cart("acc-1")))

	items, err := store.Items()
	require.NoError(t, err)
	assert.Empty(t, items, "после слияния гостевая корзина должна быть пуста")
}

func TestMergeEmptyGuestCartIsNoop(t *testing.T) {
	store := newTestStore(t)
	server := newFakeCartUC()
	bridge := NewBridge(store, server, nopLogger{})

	require.NoError(t, bridge.Merge(context.Background(), domain.AccountOwner("acc-1")))

	assert.Empty(t, server.cart("acc-1").Items)
}

func TestMergeDropsVanishedProduct(t *testing.T) {
	store := newTestStore(t)
	server := newFakeCartUC()
	server.failures["p1"] = 1
	server.failErr = e.ErrProductNotFound
	bridge := NewBridge(store, server, nopLogger{})

	_, err := store.AddItem("p1", 2)
	require.NoError(t, err)
	_, err = store.AddItem("p2", 1)
	require.NoError(t, err)

	require.NoError(t, bridge.Merge(context.Background(), domain.AccountOwner("acc-1")))

	// Исчезнувший товар отброшен, остальное перенесено
	assert.Equal(t, map[string]int64{"p2": 1}, quantities(server.cart("acc-1")))

	items, err := store.Items()
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestMergeKeepsUnacknowledgedItemsOnFailure(t *testing.T) {
	store := newTestStore(t)
	server := newFakeCartUC()
	server.failures["p2"] = 1
	server.failErr = assert.AnError
	bridge := NewBridge(store, server, nopLogger{})

	_, err := store.AddItem("p1", 2)
	require.NoError(t, err)
	_, err = store.AddItem("p2", 1)
	require.NoError(t, err)

	err = bridge.Merge(context.Background(), domain.AccountOwner("acc-1"))
	require.Error(t, err)

	// Подтверждённая позиция удалена, неподтверждённая осталась
	items, err := store.Items()
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "p2", items[0].ProductID)

	// Повторное слияние после восстановления не задваивает p1
	require.NoError(t, bridge.Merge(context.Background(), domain.AccountOwner("acc-1")))
	assert.Equal(t, map[string]int64{"p1": 2, "p2": 1}, quantities(server.cart("acc-1")))
}

func TestMergeRetriesWhenStoreUnavailable(t *testing.T) {
	store := newTestStore(t)
	server := newFakeCartUC()
	server.failures["p1"] = 1
	server.failErr = e.ErrStoreUnavailable
	bridge := NewBridge(store, server, nopLogger{})

	_, err := store.AddItem("p1", 2)
	require.NoError(t, err)

	require.NoError(t, bridge.Merge(context.Background(), domain.AccountOwner("acc-1")))

	assert.Equal(t, map[string]int64{"p1": 2}, quantities(server.cart("acc-1")))
}
