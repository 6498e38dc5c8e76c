package domain

import "time"

// Product описывает товар каталога. Каталог для ядра доступен только на чтение:
// создание и изменение товаров выполняет внешняя админ-поверхность.
type Product struct {
	ID          string
	Title       string
	Description string
	Price       int64 // Цена хранится в копейках
	Category    string
	Images      []string // ключи объектов в S3, не URL
	InStock     bool
	CreatedBy   string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
