package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/DRSN-tech/shop-backend/internal/domain"
	"github.com/DRSN-tech/shop-backend/internal/usecase"
	"github.com/DRSN-tech/shop-backend/pkg/e"
	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

type stubCatalogUC struct {
	lastReq *usecase.ProductQueryReq
	res     *usecase.ProductQueryRes
	detail  *usecase.ProductDetail
	err     error
}

func (s *stubCatalogUC) Query(ctx context.Context, req *usecase.ProductQueryReq) (*usecase.ProductQueryRes, error) {
	s.lastReq = req
	if s.err != nil {
		return nil, s.err
	}
	if s.res == nil {
		return &usecase.ProductQueryRes{Items: []usecase.ProductDetail{}, Page: 1}, nil
	}
	return s.res, nil
}

func (s *stubCatalogUC) GetProduct(ctx context.Context, id string) (*usecase.ProductDetail, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.detail, nil
}

type stubCartUC struct {
	lastOwner domain.Owner
	lastQty   int64
	items     []usecase.CartItemRes
	err       error
}

func (s *stubCartUC) AddItem(ctx context.Context, owner domain.Owner, productID string, qty int64) ([]usecase.CartItemRes, error) {
	s.lastOwner = owner
	s.lastQty = qty
	return s.items, s.err
}

func (s *stubCartUC) SetQuantity(ctx context.Context, owner domain.Owner, productID string, qty int64) ([]usecase.CartItemRes, error) {
	s.lastOwner = owner
	s.lastQty = qty
	return s.items, s.err
}

func (s *stubCartUC) RemoveItem(ctx context.Context, owner domain.Owner, productID string) ([]usecase.CartItemRes, error) {
	s.lastOwner = owner
	return s.items, s.err
}

func (s *stubCartUC) GetCart(ctx context.Context, owner domain.Owner) ([]usecase.CartItemRes, error) {
	s.lastOwner = owner
	return s.items, s.err
}

func (s *stubCartUC) ClearCart(ctx context.Context, owner domain.Owner) error {
	s.lastOwner = owner
	return s.err
}

func newTestRouter(catalog *stubCatalogUC, cart *stubCartUC) *chi.Mux {
	mux := chi.NewRouter()
	router := NewRouter(mux, nopLogger{})
	router.Init(catalog, cart)
	return mux
}

func TestQueryProductsParsesParams(t *testing.T) {
	catalog := &stubCatalogUC{}
	mux := newTestRouter(catalog, &stubCartUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?search=лампа&category=light&price_min=10.50&price_max=99&sort=price_ascending&page=2&page_size=20", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, catalog.lastReq)
	assert.Equal(t, "лампа", catalog.lastReq.Search)
	assert.Equal(t, "light", catalog.lastReq.Category)
	require.NotNil(t, catalog.lastReq.PriceMin)
	assert.Equal(t, int64(1050), *catalog.lastReq.PriceMin)
	require.NotNil(t, catalog.lastReq.PriceMax)
	assert.Equal(t, int64(9900), *catalog.lastReq.PriceMax)
	assert.Equal(t, usecase.SortPriceAscending, catalog.lastReq.Sort)
	assert.Equal(t, 2, catalog.lastReq.Page)
	require.NotNil(t, catalog.lastReq.PageSize)
	assert.Equal(t, 20, *catalog.lastReq.PageSize)
}

func TestQueryProductsRejectsBadPrice(t *testing.T) {
	catalog := &stubCatalogUC{}
	mux := newTestRouter(catalog, &stubCartUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?price_min=10.999", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Nil(t, catalog.lastReq, "невалидный запрос не должен дойти до выборки")
}

func TestGetProductNotFound(t *testing.T) {
	catalog := &stubCatalogUC{err: e.ErrProductNotFound}
	mux := newTestRouter(catalog, &stubCartUC{})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/p1", nil)
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, http.StatusNotFound, body.Code)
}

func TestCartRoutesRequireAccountHeader(t *testing.T) {
	mux := newTestRouter(&stubCatalogUC{}, &stubCartUC{})

	requests := []*http.Request{
		httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil),
		httptest.NewRequest(http.MethodPost, "/api/v1/cart/add", bytes.NewBufferString(`{"product_id":"p1","qty":1}`)),
		httptest.NewRequest(http.MethodPut, "/api/v1/cart/item", bytes.NewBufferString(`{"product_id":"p1","qty":1}`)),
		httptest.NewRequest(http.MethodDelete, "/api/v1/cart/item/p1", nil),
		httptest.NewRequest(http.MethodDelete, "/api/v1/cart", nil),
	}

	for _, req := range requests {
		rec := httptest.NewRecorder()
		mux.ServeHTTP(rec, req)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, "%s %s", req.Method, req.URL.Path)
	}
}

func TestAddItemPassesOwnerFromHeader(t *testing.T) {
	cart := &stubCartUC{items: []usecase.CartItemRes{{ProductID: "p1", Quantity: 2}}}
	mux := newTestRouter(&stubCatalogUC{}, cart)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/add", bytes.NewBufferString(`{"product_id":"p1","qty":2}`))
	req.Header.Set(accountHeader, "acc-1")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, domain.AccountOwner("acc-1"), cart.lastOwner)

	var body CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	assert.Equal(t, int64(2), body.Items[0].Qty)
}

func TestAddItemDefaultsOmittedQtyToOne(t *testing.T) {
	cart := &stubCartUC{items: []usecase.CartItemRes{{ProductID: "p1", Quantity: 1}}}
	mux := newTestRouter(&stubCatalogUC{}, cart)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/add", bytes.NewBufferString(`{"product_id":"p1"}`))
	req.Header.Set(accountHeader, "acc-1")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(1), cart.lastQty)
}

func TestSetQuantityRequiresExplicitQty(t *testing.T) {
	mux := newTestRouter(&stubCatalogUC{}, &stubCartUC{})

	req := httptest.NewRequest(http.MethodPut, "/api/v1/cart/item", bytes.NewBufferString(`{"product_id":"p1"}`))
	req.Header.Set(accountHeader, "acc-1")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAddItemRejectsBodyWithoutProductID(t *testing.T) {
	mux := newTestRouter(&stubCatalogUC{}, &stubCartUC{})

	req := httptest.NewRequest(http.MethodPost, "/api/v1/cart/add", bytes.NewBufferString(`{"qty":2}`))
	req.Header.Set(accountHeader, "acc-1")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestSetQuantityMissingItemMapsToNotFound(t *testing.T) {
	cart := &stubCartUC{err: e.ErrItemNotInCart}
	mux := newTestRouter(&stubCatalogUC{}, cart)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/cart/item", bytes.NewBufferString(`{"product_id":"p1","qty":3}`))
	req.Header.Set(accountHeader, "acc-1")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnavailableItemSerialized(t *testing.T) {
	cart := &stubCartUC{items: []usecase.CartItemRes{{ProductID: "p1", Quantity: 1, Unavailable: true}}}
	mux := newTestRouter(&stubCatalogUC{}, cart)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/cart", nil)
	req.Header.Set(accountHeader, "acc-1")
	rec := httptest.NewRecorder()
	mux.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)

	var body CartResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Items, 1)
	assert.True(t, body.Items[0].Unavailable)
	assert.Nil(t, body.Items[0].Product)
}
