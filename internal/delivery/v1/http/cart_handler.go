package http

import (
	"encoding/json"
	"net/http"

	"github.com/DRSN-tech/shop-backend/internal/usecase"
	"github.com/DRSN-tech/shop-backend/pkg/e"
	"github.com/DRSN-tech/shop-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CartHandler struct {
	cartUsecase usecase.CartUC
	logger      logger.Logger
}

func NewCartHandler(cartUsecase usecase.CartUC, logger logger.Logger) *CartHandler {
	return &CartHandler{cartUsecase: cartUsecase, logger: logger}
}

// cartItemRequest — тело запросов добавления и изменения позиции.
// В addItem пропущенный qty означает одну штуку; setQuantity требует
// явного значения.
type cartItemRequest struct {
	ProductID string `json:"product_id"`
	Qty       *int64 `json:"qty"`
}

// getCart возвращает корзину владельца с актуальными данными товаров.
func (h *CartHandler) getCart(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerFromRequest(r)
	if err != nil {
		h.logger.Warnf("%d %s", http.StatusUnauthorized, e.ErrUnauthorized.Error())
		WriteError(w, err)
		return
	}

	items, err := h.cartUsecase.GetCart(r.Context(), owner)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(items))
}

// addItem добавляет товар в корзину; повторное добавление сливается
// в одну позицию.
func (h *CartHandler) addItem(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerFromRequest(r)
	if err != nil {
		h.logger.Warnf("%d %s", http.StatusUnauthorized, e.ErrUnauthorized.Error())
		WriteError(w, err)
		return
	}

	req, err := parseCartItemBody(r)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	qty := int64(1)
	if req.Qty != nil {
		qty = *req.Qty
	}

	items, err := h.cartUsecase.AddItem(r.Context(), owner, req.ProductID, qty)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(items))
}

// setQuantity заменяет количество существующей позиции; qty <= 0 удаляет её.
func (h *CartHandler) setQuantity(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerFromRequest(r)
	if err != nil {
		h.logger.Warnf("%d %s", http.StatusUnauthorized, e.ErrUnauthorized.Error())
		WriteError(w, err)
		return
	}

	req, err := parseCartItemBody(r)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrStatusBadRequest.Error(), err.Error())
		WriteError(w, err)
		return
	}

	if req.Qty == nil {
		h.logger.Warnf("%d %s: qty is required", http.StatusBadRequest, e.ErrStatusBadRequest.Error())
		WriteError(w, e.Mark(e.ErrMissingFields, e.ErrStatusBadRequest))
		return
	}

	items, err := h.cartUsecase.SetQuantity(r.Context(), owner, req.ProductID, *req.Qty)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(items))
}

// removeItem удаляет позицию из корзины. Идемпотентен.
func (h *CartHandler) removeItem(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerFromRequest(r)
	if err != nil {
		h.logger.Warnf("%d %s", http.StatusUnauthorized, e.ErrUnauthorized.Error())
		WriteError(w, err)
		return
	}

	productID := chi.URLParam(r, "productID")

	items, err := h.cartUsecase.RemoveItem(r.Context(), owner, productID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toCartResponse(items))
}

// clearCart очищает корзину владельца. Идемпотентен.
func (h *CartHandler) clearCart(w http.ResponseWriter, r *http.Request) {
	owner, err := ownerFromRequest(r)
	if err != nil {
		h.logger.Warnf("%d %s", http.StatusUnauthorized, e.ErrUnauthorized.Error())
		WriteError(w, err)
		return
	}

	if err := h.cartUsecase.ClearCart(r.Context(), owner); err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, &CartResponse{Items: []CartItemResponse{}})
}

func parseCartItemBody(r *http.Request) (*cartItemRequest, error) {
	var req cartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		return nil, e.Mark(e.ErrStatusBadRequest, err)
	}

	if req.ProductID == "" {
		return nil, e.Mark(e.ErrMissingFields, e.ErrStatusBadRequest)
	}

	return &req, nil
}
