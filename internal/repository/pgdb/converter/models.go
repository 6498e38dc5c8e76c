package converter

import "time"

// ProductModel представляет запись таблицы products в PostgreSQL.
type ProductModel struct {
	ID          string     `db:"id"`
	Title       string     `db:"title"`
	Description string     `db:"description"`
	Price       int64      `db:"price"`
	Category    string     `db:"category"`
	Images      []string   `db:"images"`
	InStock     bool       `db:"in_stock"`
	CreatedBy   string     `db:"created_by"`
	CreatedAt   time.Time  `db:"created_at"`
	UpdatedAt   *time.Time `db:"updated_at"`
}

// CartItemModel — элемент jsonb-колонки items таблицы carts.
type CartItemModel struct {
	ProductID string `json:"product_id"`
	Quantity  int64  `json:"quantity"`
}
