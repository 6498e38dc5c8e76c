package usecase

import "time"

// CATALOG USECASE

// Поддерживаемые значения сортировки каталога.
const (
	SortPriceAscending  = "price_ascending"
	SortPriceDescending = "price_descending"
	SortNewest          = "newest"
	SortDefault         = "" // лексикографически по названию, с учётом регистра
)

// ProductQueryReq — запрос выборки каталога: фильтр, сортировка, страница.
// Незаполненные поля фильтра не накладывают ограничений.
type ProductQueryReq struct {
	Search   string
	Category string
	PriceMin *int64 // копейки, включительно; границы могут задаваться по отдельности
	PriceMax *int64
	Sort     string
	Page     int  // нумерация с 1; 0 трактуется как первая страница
	PageSize *int // nil — вернуть всю выборку целиком
}

// ProductQueryRes — страница выборки и полный размер совпавшего множества.
// Total считается до пагинации: по длине Items его выводить нельзя.
type ProductQueryRes struct {
	Items    []ProductDetail
	Total    int
	Page     int
	PageSize *int
}

// ProductDetail — DTO товара для внешнего использования.
// Images — ключи объектов в S3; ImageURLs — подписанные ссылки,
// заполняются только в момент чтения и не кэшируются.
type ProductDetail struct {
	ID          string
	Title       string
	Description string
	Price       int64
	Category    string
	Images      []string
	ImageURLs   []string
	InStock     bool
	CreatedAt   time.Time
}

// REPOSITORIES

// ProductFilter — фильтр выборки товаров для хранилища каталога.
type ProductFilter struct {
	Search   string
	Category string
	PriceMin *int64
	PriceMax *int64
}

// CART USECASE

// CartItemRes — позиция корзины, разрешённая на момент чтения:
// количество плюс актуальные данные товара. Если товар больше не существует,
// позиция помечается Unavailable, а Product остаётся nil.
type CartItemRes struct {
	ProductID   string
	Quantity    int64
	Product     *ProductDetail
	Unavailable bool
}

// INFRASTRUCTURE

// Операции корзины для событий cart_events.
const (
	CartEventAdd         = "add"
	CartEventSetQuantity = "set_quantity"
	CartEventRemove      = "remove"
	CartEventClear       = "clear"
)

// CartEventReq — событие изменения корзины для продюсера Kafka.
type CartEventReq struct {
	Op        string
	OwnerID   string
	ProductID string
	Quantity  int64
}

// MAPPERS

func NewProductFilter(search, category string, priceMin, priceMax *int64) *ProductFilter {
	return &ProductFilter{
		Search:   search,
		Category: category,
		PriceMin: priceMin,
		PriceMax: priceMax,
	}
}

func NewProductQueryRes(items []ProductDetail, total, page int, pageSize *int) *ProductQueryRes {
	return &ProductQueryRes{
		Items:    items,
		Total:    total,
		Page:     page,
		PageSize: pageSize,
	}
}

func NewCartEventReq(op, ownerID, productID string, quantity int64) *CartEventReq {
	return &CartEventReq{
		Op:        op,
		OwnerID:   ownerID,
		ProductID: productID,
		Quantity:  quantity,
	}
}
