package e

import "fmt"

var (
	// Внутренние ошибки с транзакциями
	ErrTransactionNotFound = fmt.Errorf("transaction not found")

	// Ошибки ядра корзины и каталога
	ErrInvalidQuery     = fmt.Errorf("invalid query")
	ErrInvalidQuantity  = fmt.Errorf("quantity must be positive")
	ErrProductNotFound  = fmt.Errorf("product not found")
	ErrItemNotInCart    = fmt.Errorf("item not in cart")
	ErrStoreUnavailable = fmt.Errorf("store unavailable")

	// 400 Bad Request
	ErrStatusBadRequest = fmt.Errorf("bad request")
	ErrMissingFields    = fmt.Errorf("missing required fields")
	ErrInvalidPrice     = fmt.Errorf("invalid price")
	ErrPricePrecision   = fmt.Errorf("price must have at most 2 decimal places")

	// 401 Unauthorized
	ErrUnauthorized = fmt.Errorf("unauthorized")

	// 500 Internal Server Error
	ErrInternalServerError = fmt.Errorf("internal server error")

	// Конфигурация
	ErrIncorrectEnvVariable = fmt.Errorf("incorrect environment variable")
)

// Wrap оборачивает ошибку
func Wrap(msg string, err error) error {
	return fmt.Errorf("%s: %w", msg, err)
}

// Mark помечает ошибку сентинелом, сохраняя обе цепочки для errors.Is
func Mark(kind, err error) error {
	return fmt.Errorf("%w: %w", kind, err)
}
