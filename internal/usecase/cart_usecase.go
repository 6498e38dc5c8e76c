package usecase

import (
	"context"
	"time"

	"github.com/DRSN-tech/shop-backend/internal/domain"
	"github.com/DRSN-tech/shop-backend/pkg/e"
	"github.com/DRSN-tech/shop-backend/pkg/logger"
)

// CartUseCase — авторитетная машина состояний серверной корзины.
// Каждая мутация выполняется в транзакции с блокировкой строки корзины
// владельца, поэтому две вкладки одного аккаунта не затирают друг друга.
type CartUseCase struct {
	cartRepo    CartRepository
	productRepo ProductRepository
	cacheRepo   CacheRepository
	trm         Transactor
	linker      ImageLinker
	producer    EventProducer
	logger      logger.Logger
}

func NewCartUC(
	cartRepo CartRepository,
	productRepo ProductRepository,
	cacheRepo CacheRepository,
	trm Transactor,
	linker ImageLinker,
	producer EventProducer,
	logger logger.Logger,
) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		cacheRepo:   cacheRepo,
		trm:         trm,
		linker:      linker,
		producer:    producer,
		logger:      logger,
	}
}

// AddItem добавляет товар в корзину владельца. Товар должен существовать
// в каталоге на момент вызова. Повторное добавление того же товара
// увеличивает количество существующей позиции — вторая позиция не создаётся.
// Корзина создаётся лениво при первой мутации.
func (c *CartUseCase) AddItem(ctx context.Context, owner domain.Owner, productID string, qty int64) ([]CartItemRes, error) {
	const op = "CartUseCase.AddItem"

	if err := requireAccount(owner); err != nil {
		return nil, e.Wrap(op, err)
	}
	if qty < 1 {
		return nil, e.Wrap(op, e.ErrInvalidQuantity)
	}

	if _, err := c.productRepo.GetByID(ctx, productID); err != nil {
		return nil, e.Wrap(op, err)
	}

	items, err := c.mutate(ctx, owner, func(cart *domain.Cart) error {
		cart.Add(productID, qty)
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.publishEvent(ctx, NewCartEventReq(CartEventAdd, owner.AccountID, productID, qty))

	return c.resolveItems(ctx, items)
}

// SetQuantity заменяет количество в существующей позиции. qty <= 0 удаляет
// позицию: это псевдоним удаления, а не ошибка. Отсутствующая позиция —
// e.ErrItemNotInCart.
func (c *CartUseCase) SetQuantity(ctx context.Context, owner domain.Owner, productID string, qty int64) ([]CartItemRes, error) {
	const op = "CartUseCase.SetQuantity"

	if err := requireAccount(owner); err != nil {
		return nil, e.Wrap(op, err)
	}

	items, err := c.mutate(ctx, owner, func(cart *domain.Cart) error {
		if !cart.SetQuantity(productID, qty) {
			return e.ErrItemNotInCart
		}
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.publishEvent(ctx, NewCartEventReq(CartEventSetQuantity, owner.AccountID, productID, qty))

	return c.resolveItems(ctx, items)
}

// RemoveItem удаляет позицию товара. Идемпотентен: удаление отсутствующей
// позиции не ошибка, корзина возвращается без изменений.
func (c *CartUseCase) RemoveItem(ctx context.Context, owner domain.Owner, productID string) ([]CartItemRes, error) {
	const op = "CartUseCase.RemoveItem"

	if err := requireAccount(owner); err != nil {
		return nil, e.Wrap(op, err)
	}

	items, err := c.mutate(ctx, owner, func(cart *domain.Cart) error {
		cart.Remove(productID)
		return nil
	})
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	c.publishEvent(ctx, NewCartEventReq(CartEventRemove, owner.AccountID, productID, 0))

	return c.resolveItems(ctx, items)
}

// GetCart возвращает разрешённый список позиций владельца.
// Отсутствие корзины — это пустой список, а не NotFound.
func (c *CartUseCase) GetCart(ctx context.Context, owner domain.Owner) ([]CartItemRes, error) {
	const op = "CartUseCase.GetCart"

	if err := requireAccount(owner); err != nil {
		return nil, e.Wrap(op, err)
	}

	cart, err := c.cartRepo.Get(ctx, owner.AccountID)
	if err != nil {
		return nil, e.Wrap(op, err)
	}
	if cart == nil {
		return []CartItemRes{}, nil
	}

	return c.resolveItems(ctx, cart.Items)
}

// ClearCart удаляет корзину владельца целиком. Идемпотентен.
func (c *CartUseCase) ClearCart(ctx context.Context, owner domain.Owner) error {
	const op = "CartUseCase.ClearCart"

	if err := requireAccount(owner); err != nil {
		return e.Wrap(op, err)
	}

	if err := c.cartRepo.Delete(ctx, owner.AccountID); err != nil {
		return e.Wrap(op, err)
	}

	c.publishEvent(ctx, NewCartEventReq(CartEventClear, owner.AccountID, "", 0))

	return nil
}

// mutate выполняет мутацию корзины атомарно: строка владельца берётся под
// блокировку, изменяется и сохраняется в одной транзакции. Возвращает копию
// позиций на момент коммита.
func (c *CartUseCase) mutate(ctx context.Context, owner domain.Owner, fn func(cart *domain.Cart) error) ([]domain.CartItem, error) {
	var items []domain.CartItem

	err := c.trm.WithinTransaction(ctx, func(ctx context.Context) error {
		// Строка создаётся до блокирующего чтения: иначе двум первым
		// мутациям владельца нечего блокировать, и вторая затёрла бы первую
		if err := c.cartRepo.EnsureExists(ctx, owner.AccountID); err != nil {
			return err
		}

		cart, err := c.cartRepo.GetForUpdate(ctx, owner.AccountID)
		if err != nil {
			return err
		}
		if cart == nil {
			cart = domain.NewCart(owner.AccountID)
		}

		if err := fn(cart); err != nil {
			return err
		}

		if err := c.cartRepo.Upsert(ctx, cart); err != nil {
			return err
		}

		items = append([]domain.CartItem(nil), cart.Items...)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return items, nil
}

// resolveItems дополняет позиции актуальными данными товаров, считанными в
// момент вызова: сначала кэш, промахи — из каталога с фоновым прогревом кэша.
// Позиция без товара в каталоге помечается Unavailable, а не отбрасывается.
func (c *CartUseCase) resolveItems(ctx context.Context, items []domain.CartItem) ([]CartItemRes, error) {
	const op = "CartUseCase.resolveItems"

	if len(items) == 0 {
		return []CartItemRes{}, nil
	}

	ids := make([]string, 0, len(items))
	for _, item := range items {
		ids = append(ids, item.ProductID)
	}

	cached, err := c.cacheRepo.GetProducts(ctx, ids)
	if err != nil {
		cached = nil
	}

	nonCacheable := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := cached[id]; !ok {
			nonCacheable = append(nonCacheable, id)
		}
	}

	detailsMap := make(map[string]ProductDetail, len(ids))
	for id, detail := range cached {
		detailsMap[id] = detail
	}

	if len(nonCacheable) > 0 {
		products, err := c.productRepo.FindByIDs(ctx, nonCacheable)
		if err != nil {
			return nil, e.Wrap(op, err)
		}

		fromDB := make([]ProductDetail, 0, len(products))
		for i := range products {
			detail := toCacheableDetail(&products[i])
			detailsMap[detail.ID] = detail
			fromDB = append(fromDB, detail)
		}

		// Фоновый прогрев кэша, как и при чтении каталога
		if len(fromDB) > 0 {
			go func() {
				bgCtx, cancel := context.WithTimeout(context.Background(), 500*time.Millisecond)
				defer cancel()

				if err := c.cacheRepo.SetProducts(bgCtx, fromDB); err != nil {
					c.logger.Warnf("Failed to cache products in background: %v", e.Wrap(op, err))
				}
			}()
		}
	}

	result := make([]CartItemRes, 0, len(items))
	for _, item := range items {
		detail, ok := detailsMap[item.ProductID]
		if !ok {
			// Товар удалён из каталога, позиция остаётся видимой
			result = append(result, CartItemRes{
				ProductID:   item.ProductID,
				Quantity:    item.Quantity,
				Unavailable: true,
			})
			continue
		}

		detail.ImageURLs = c.linker.Links(ctx, detail.Images)
		result = append(result, CartItemRes{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Product:   &detail,
		})
	}

	return result, nil
}

// publishEvent отправляет событие корзины. Публикация не влияет на результат
// операции: сбой только логируется.
func (c *CartUseCase) publishEvent(ctx context.Context, req *CartEventReq) {
	if err := c.producer.WriteCartEvent(ctx, req); err != nil {
		c.logger.Warnf("Failed to publish cart event %s for owner %s: %v", req.Op, req.OwnerID, err)
	}
}

func requireAccount(owner domain.Owner) error {
	if owner.IsGuest() || owner.AccountID == "" {
		return e.ErrUnauthorized
	}

	return nil
}

func toCacheableDetail(p *domain.Product) ProductDetail {
	return ProductDetail{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Images:      p.Images,
		InStock:     p.InStock,
		CreatedAt:   p.CreatedAt,
	}
}
