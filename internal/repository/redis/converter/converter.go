//go:generate goverter gen github.com/DRSN-tech/shop-backend/internal/repository/redis/converter

package converter

import (
	"time"

	"github.com/DRSN-tech/shop-backend/internal/usecase"
)

// goverter:converter
// goverter:extend ConvertTime
type ProductDetailConverter interface {
	ToRedisModel(entity *usecase.ProductDetail) *ProductDetailRedisModel
	ToUseCase(model *ProductDetailRedisModel) *usecase.ProductDetail
	ToArrRedisModel(entities []usecase.ProductDetail) []ProductDetailRedisModel
	ToArrUseCase(models []ProductDetailRedisModel) []usecase.ProductDetail
}

func ConvertTime(t time.Time) time.Time {
	return t
}
