package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/DRSN-tech/shop-backend/internal/domain"
	"github.com/DRSN-tech/shop-backend/internal/usecase"
	"github.com/DRSN-tech/shop-backend/pkg/e"
	"github.com/shopspring/decimal"
)

// accountHeader заполняется внешним шлюзом аутентификации после проверки
// токена; сама проверка вне ядра.
const accountHeader = "X-Account-ID"

type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewErrorResponse(code int, message string) *ErrorResponse {
	return &ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// ProductResponse — JSON-представление товара.
type ProductResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Price       int64     `json:"price"` // копейки
	Category    string    `json:"category,omitempty"`
	Images      []string  `json:"images,omitempty"`
	InStock     bool      `json:"in_stock"`
	CreatedAt   time.Time `json:"created_at"`
}

// CartItemResponse — JSON-представление позиции корзины.
type CartItemResponse struct {
	ProductID   string           `json:"product_id"`
	Qty         int64            `json:"qty"`
	Product     *ProductResponse `json:"product,omitempty"`
	Unavailable bool             `json:"unavailable,omitempty"`
}

type CartResponse struct {
	Items []CartItemResponse `json:"items"`
}

func ToHTTPResponse(err error) (int, string) {
	switch {
	case errors.Is(err, e.ErrInvalidQuery):
		return http.StatusBadRequest, e.ErrInvalidQuery.Error()
	case errors.Is(err, e.ErrInvalidQuantity):
		return http.StatusBadRequest, e.ErrInvalidQuantity.Error()
	case errors.Is(err, e.ErrMissingFields):
		return http.StatusBadRequest, e.ErrMissingFields.Error()
	case errors.Is(err, e.ErrStatusBadRequest):
		return http.StatusBadRequest, e.ErrStatusBadRequest.Error()
	case errors.Is(err, e.ErrUnauthorized):
		return http.StatusUnauthorized, e.ErrUnauthorized.Error()
	case errors.Is(err, e.ErrProductNotFound):
		return http.StatusNotFound, e.ErrProductNotFound.Error()
	case errors.Is(err, e.ErrItemNotInCart):
		return http.StatusNotFound, e.ErrItemNotInCart.Error()
	case errors.Is(err, e.ErrStoreUnavailable):
		return http.StatusServiceUnavailable, e.ErrStoreUnavailable.Error()
	default:
		return http.StatusInternalServerError, e.ErrInternalServerError.Error()
	}
}

func WriteError(w http.ResponseWriter, err error) {
	code, msg := ToHTTPResponse(err)
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(NewErrorResponse(code, msg))
}

func WriteSuccess(w http.ResponseWriter, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// ownerFromRequest извлекает владельца корзины из заголовка, проставленного
// шлюзом аутентификации.
func ownerFromRequest(r *http.Request) (domain.Owner, error) {
	accountID := strings.TrimSpace(r.Header.Get(accountHeader))
	if accountID == "" {
		return domain.Owner{}, e.ErrUnauthorized
	}

	return domain.AccountOwner(accountID), nil
}

// parsePriceBound разбирает границу цены из параметра запроса в копейки.
// Пустая строка — границы нет. Любое отклонение — ошибка InvalidQuery,
// без молчаливого подрезания.
func parsePriceBound(s string) (*int64, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	d, err := decimal.NewFromString(s)
	if err != nil {
		return nil, e.Mark(e.ErrInvalidQuery, e.ErrInvalidPrice)
	}

	if d.LessThan(decimal.Zero) {
		return nil, e.Mark(e.ErrInvalidQuery, e.ErrInvalidPrice)
	}

	if d.Exponent() < -2 {
		return nil, e.Mark(e.ErrInvalidQuery, e.ErrPricePrecision)
	}

	cents := d.Mul(decimal.NewFromInt(100)).Round(0).IntPart()
	return &cents, nil
}

// parseIntParam разбирает целочисленный параметр запроса; пустая строка — nil.
func parseIntParam(s string) (*int, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}

	v, err := strconv.Atoi(s)
	if err != nil {
		return nil, e.Mark(e.ErrInvalidQuery, err)
	}

	return &v, nil
}

func toProductResponse(detail *usecase.ProductDetail) *ProductResponse {
	if detail == nil {
		return nil
	}

	return &ProductResponse{
		ID:          detail.ID,
		Title:       detail.Title,
		Description: detail.Description,
		Price:       detail.Price,
		Category:    detail.Category,
		Images:      detail.ImageURLs,
		InStock:     detail.InStock,
		CreatedAt:   detail.CreatedAt,
	}
}

func toCartResponse(items []usecase.CartItemRes) *CartResponse {
	result := make([]CartItemResponse, 0, len(items))
	for i := range items {
		result = append(result, CartItemResponse{
			ProductID:   items[i].ProductID,
			Qty:         items[i].Quantity,
			Product:     toProductResponse(items[i].Product),
			Unavailable: items[i].Unavailable,
		})
	}

	return &CartResponse{Items: result}
}
