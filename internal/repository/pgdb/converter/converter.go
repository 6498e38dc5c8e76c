//go:generate goverter gen github.com/DRSN-tech/shop-backend/internal/repository/pgdb/converter
package converter

import (
	"time"

	"github.com/DRSN-tech/shop-backend/internal/domain"
)

// ProductConverter преобразует сущности Product между domain и моделью PostgreSQL.
// goverter:converter
// goverter:extend ConvertTime
// goverter:extend ConvertPointerTime
type ProductConverter interface {
	ToEntity(model *ProductModel) *domain.Product
	ToArrEntity(models []ProductModel) []domain.Product
}

// CartConverter преобразует позиции корзины между domain и jsonb-моделью PostgreSQL.
// goverter:converter
type CartConverter interface {
	ToArrModel(entities []domain.CartItem) []CartItemModel
	ToArrEntity(models []CartItemModel) []domain.CartItem
}

func ConvertPointerTime(t *time.Time) *time.Time {
	return t
}

func ConvertTime(t time.Time) time.Time {
	return t
}
