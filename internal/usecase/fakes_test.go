package usecase

import (
	"context"
	"sync"
	"time"

	"github.com/DRSN-tech/shop-backend/internal/domain"
	"github.com/DRSN-tech/shop-backend/pkg/e"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

// fakeProductRepo отдаёт товары из памяти в том порядке, в котором они
// добавлены: выборка не полагается на порядок выдачи хранилища.
type fakeProductRepo struct {
	mu       sync.Mutex
	products []domain.Product
	findErr  error
}

func (f *fakeProductRepo) add(p domain.Product) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.products = append(f.products, p)
}

func (f *fakeProductRepo) remove(id string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.products {
		if f.products[i].ID == id {
			f.products = append(f.products[:i], f.products[i+1:]...)
			return
		}
	}
}

func (f *fakeProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for i := range f.products {
		if f.products[i].ID == id {
			p := f.products[i]
			return &p, nil
		}
	}
	return nil, e.ErrProductNotFound
}

func (f *fakeProductRepo) Find(ctx context.Context, filter *ProductFilter) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.findErr != nil {
		return nil, f.findErr
	}
	return append([]domain.Product(nil), f.products...), nil
}

func (f *fakeProductRepo) FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var result []domain.Product
	for i := range f.products {
		for _, id := range ids {
			if f.products[i].ID == id {
				result = append(result, f.products[i])
				break
			}
		}
	}
	return result, nil
}

type fakeCartRepo struct {
	mu    sync.Mutex
	carts map[string]*domain.Cart
	calls []string
}

func newFakeCartRepo() *fakeCartRepo {
	return &fakeCartRepo{carts: make(map[string]*domain.Cart)}
}

func (f *fakeCartRepo) record(call string) {
	f.calls = append(f.calls, call)
}

func (f *fakeCartRepo) get(ownerID string) *domain.Cart {
	cart, ok := f.carts[ownerID]
	if !ok {
		return nil
	}
	copied := *cart
	copied.Items = append([]domain.CartItem(nil), cart.Items...)
	return &copied
}

func (f *fakeCartRepo) Get(ctx context.Context, ownerID string) (*domain.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("get")
	return f.get(ownerID), nil
}

func (f *fakeCartRepo) EnsureExists(ctx context.Context, ownerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("ensure")
	if _, ok := f.carts[ownerID]; !ok {
		f.carts[ownerID] = domain.NewCart(ownerID)
	}
	return nil
}

func (f *fakeCartRepo) GetForUpdate(ctx context.Context, ownerID string) (*domain.Cart, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("getForUpdate")
	return f.get(ownerID), nil
}

func (f *fakeCartRepo) Upsert(ctx context.Context, cart *domain.Cart) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("upsert")
	copied := *cart
	copied.Items = append([]domain.CartItem(nil), cart.Items...)
	f.carts[cart.OwnerID] = &copied
	return nil
}

func (f *fakeCartRepo) Delete(ctx context.Context, ownerID string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("delete")
	delete(f.carts, ownerID)
	return nil
}

type fakeCache struct {
	mu      sync.Mutex
	details map[string]ProductDetail
}

func newFakeCache() *fakeCache {
	return &fakeCache{details: make(map[string]ProductDetail)}
}

func (f *fakeCache) GetProducts(ctx context.Context, ids []string) (map[string]ProductDetail, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	result := make(map[string]ProductDetail)
	for _, id := range ids {
		if d, ok := f.details[id]; ok {
			result[id] = d
		}
	}
	return result, nil
}

func (f *fakeCache) SetProducts(ctx context.Context, products []ProductDetail) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range products {
		f.details[p.ID] = p
	}
	return nil
}

// passTransactor выполняет функцию без реальной транзакции.
type passTransactor struct{}

func (passTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type nopLinker struct{}

func (nopLinker) Links(ctx context.Context, keys []string) []string {
	links := make([]string, 0, len(keys))
	for _, key := range keys {
		links = append(links, "https://s3.local/"+key)
	}
	return links
}

type recordProducer struct {
	mu     sync.Mutex
	events []CartEventReq
	err    error
}

func (r *recordProducer) WriteCartEvent(ctx context.Context, req *CartEventReq) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.err != nil {
		return r.err
	}
	r.events = append(r.events, *req)
	return nil
}

func (r *recordProducer) ops() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	ops := make([]string, 0, len(r.events))
	for _, ev := range r.events {
		ops = append(ops, ev.Op)
	}
	return ops
}

func testProduct(id, title string, price int64, category string, createdAt time.Time) domain.Product {
	return domain.Product{
		ID:        id,
		Title:     title,
		Price:     price,
		Category:  category,
		InStock:   true,
		CreatedAt: createdAt,
	}
}
