package domain

import "time"

// CartItem — пара (товар, количество) внутри корзины.
// Инвариант: Quantity > 0; не более одной позиции на товар в пределах корзины.
type CartItem struct {
	ProductID string
	Quantity  int64
}

// Cart — корзина одного владельца. Цена в позиции не фиксируется:
// каждое чтение корзины заново получает актуальную цену товара.
type Cart struct {
	OwnerID   string
	Items     []CartItem
	CreatedAt time.Time
	UpdatedAt *time.Time
}

func NewCart(ownerID string) *Cart {
	return &Cart{
		OwnerID: ownerID,
		Items:   []CartItem{},
	}
}

// Add добавляет товар в корзину. Если позиция уже существует,
// количество увеличивается, вторая позиция никогда не создаётся.
func (c *Cart) Add(productID string, qty int64) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity += qty
			return
		}
	}

	c.Items = append(c.Items, CartItem{ProductID: productID, Quantity: qty})
}

// SetQuantity заменяет количество в существующей позиции.
// qty <= 0 удаляет позицию — это не ошибка, а псевдоним удаления.
// Возвращает false, если позиции для товара нет.
func (c *Cart) SetQuantity(productID string, qty int64) bool {
	for i := range c.Items {
		if c.Items[i].ProductID != productID {
			continue
		}

		if qty <= 0 {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
		} else {
			c.Items[i].Quantity = qty
		}
		return true
	}

	return false
}

// Remove удаляет позицию товара. Удаление отсутствующей позиции — не ошибка.
func (c *Cart) Remove(productID string) {
	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items = append(c.Items[:i], c.Items[i+1:]...)
			return
		}
	}
}

// IsEmpty сообщает, осталась ли в корзине хотя бы одна позиция.
func (c *Cart) IsEmpty() bool {
	return len(c.Items) == 0
}
