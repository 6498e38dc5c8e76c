package converter

import "time"

// ProductDetailRedisModel — кэшируемое представление товара.
// Подписанные ссылки на изображения не кэшируются: они истекают,
// поэтому в кэше хранятся только ключи объектов.
type ProductDetailRedisModel struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	Price       int64     `json:"price"`
	Category    string    `json:"category"`
	Images      []string  `json:"images"`
	InStock     bool      `json:"in_stock"`
	CreatedAt   time.Time `json:"created_at"`
}
