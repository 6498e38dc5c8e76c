// Package guestcart держит корзину неавторизованного посетителя в локальном
// хранилище клиента и переносит её в серверную корзину при входе в аккаунт.
package guestcart

import (
	"encoding/json"
	"errors"

	"github.com/DRSN-tech/shop-backend/internal/domain"
	"github.com/DRSN-tech/shop-backend/pkg/e"
	"github.com/DRSN-tech/shop-backend/pkg/logger"
	badger "github.com/dgraph-io/badger/v4"
	"github.com/jimlawless/whereami"
)

// cartKey — единственный ключ гостевой корзины: на клиенте один неявный гость.
var cartKey = []byte("guest:cart")

// Store — локальное хранилище гостевой корзины поверх Badger.
// Семантика мутаций совпадает с серверной корзиной: слияние по товару,
// qty <= 0 удаляет позицию, удаление отсутствующей позиции — не ошибка.
type Store struct {
	db     *badger.DB
	logger logger.Logger
}

// Open открывает хранилище гостевой корзины в указанной директории.
func Open(path string, logger logger.Logger) (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions(path).WithLogger(nil))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Store{db: db, logger: logger}, nil
}

// OpenInMemory открывает хранилище без персистентности.
func OpenInMemory(logger logger.Logger) (*Store, error) {
	db, err := badger.Open(badger.DefaultOptions("").WithInMemory(true).WithLogger(nil))
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	return &Store{db: db, logger: logger}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Items возвращает текущие позиции гостевой корзины.
func (s *Store) Items() ([]domain.CartItem, error) {
	var items []domain.CartItem

	err := s.db.View(func(txn *badger.Txn) error {
		cart, err := s.load(txn)
		if err != nil {
			return err
		}

		items = append([]domain.CartItem(nil), cart.Items...)
		return nil
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if items == nil {
		items = []domain.CartItem{}
	}

	return items, nil
}

// AddItem добавляет товар в гостевую корзину, сливая повторные добавления
// в одну позицию.
func (s *Store) AddItem(productID string, qty int64) ([]domain.CartItem, error) {
	if qty < 1 {
		return nil, e.Wrap(whereami.WhereAmI(), e.ErrInvalidQuantity)
	}

	return s.mutate(func(cart *domain.Cart) error {
		cart.Add(productID, qty)
		return nil
	})
}

// SetQuantity заменяет количество существующей позиции; qty <= 0 удаляет её.
func (s *Store) SetQuantity(productID string, qty int64) ([]domain.CartItem, error) {
	return s.mutate(func(cart *domain.Cart) error {
		if !cart.SetQuantity(productID, qty) {
			return e.ErrItemNotInCart
		}
		return nil
	})
}

// RemoveItem удаляет позицию. Идемпотентен.
func (s *Store) RemoveItem(productID string) ([]domain.CartItem, error) {
	return s.mutate(func(cart *domain.Cart) error {
		cart.Remove(productID)
		return nil
	})
}

// Clear очищает гостевую корзину. Идемпотентен.
func (s *Store) Clear() error {
	err := s.db.Update(func(txn *badger.Txn) error {
		return txn.Delete(cartKey)
	})
	if err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

func (s *Store) mutate(fn func(cart *domain.Cart) error) ([]domain.CartItem, error) {
	var items []domain.CartItem

	err := s.db.Update(func(txn *badger.Txn) error {
		cart, err := s.load(txn)
		if err != nil {
			return err
		}

		if err := fn(cart); err != nil {
			return err
		}

		if err := s.save(txn, cart); err != nil {
			return err
		}

		items = append([]domain.CartItem(nil), cart.Items...)
		return nil
	})
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if items == nil {
		items = []domain.CartItem{}
	}

	return items, nil
}

func (s *Store) load(txn *badger.Txn) (*domain.Cart, error) {
	item, err := txn.Get(cartKey)
	if err != nil {
		if errors.Is(err, badger.ErrKeyNotFound) {
			return domain.NewCart(""), nil
		}
		return nil, err
	}

	cart := domain.NewCart("")
	err = item.Value(func(val []byte) error {
		return json.Unmarshal(val, &cart.Items)
	})
	if err != nil {
		return nil, err
	}

	return cart, nil
}

func (s *Store) save(txn *badger.Txn, cart *domain.Cart) error {
	if cart.IsEmpty() {
		return txn.Delete(cartKey)
	}

	data, err := json.Marshal(cart.Items)
	if err != nil {
		return err
	}

	return txn.Set(cartKey, data)
}
