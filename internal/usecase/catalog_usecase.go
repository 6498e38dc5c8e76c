package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/DRSN-tech/shop-backend/internal/domain"
	"github.com/DRSN-tech/shop-backend/pkg/e"
	"github.com/DRSN-tech/shop-backend/pkg/logger"
)

// CatalogUseCase реализует детерминированную выборку каталога:
// фильтрация, устойчивая сортировка и пагинация поверх хранилища товаров.
type CatalogUseCase struct {
	productRepo ProductRepository
	linker      ImageLinker
	logger      logger.Logger
}

func NewCatalogUC(productRepo ProductRepository, linker ImageLinker, logger logger.Logger) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo: productRepo,
		linker:      linker,
		logger:      logger,
	}
}

// Query возвращает страницу выборки и полный размер совпавшего множества.
// Фильтр применяется самим движком поверх результата хранилища, поэтому
// контракт не зависит от того, умеет ли хранилище фильтровать.
func (u *CatalogUseCase) Query(ctx context.Context, req *ProductQueryReq) (*ProductQueryRes, error) {
	const op = "CatalogUseCase.Query"

	page, err := u.validateQuery(req)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	products, err := u.productRepo.Find(ctx, NewProductFilter(req.Search, req.Category, req.PriceMin, req.PriceMax))
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	matched := make([]domain.Product, 0, len(products))
	for _, product := range products {
		if matchesFilter(&product, req) {
			matched = append(matched, product)
		}
	}

	sortProducts(matched, req.Sort)

	total := len(matched)
	pageItems := matched
	if req.PageSize != nil {
		pageItems = slicePage(matched, page, *req.PageSize)
	}

	return NewProductQueryRes(u.toDetails(ctx, pageItems), total, page, req.PageSize), nil
}

// GetProduct возвращает один товар по идентификатору.
func (u *CatalogUseCase) GetProduct(ctx context.Context, id string) (*ProductDetail, error) {
	const op = "CatalogUseCase.GetProduct"

	product, err := u.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, e.Wrap(op, err)
	}

	detail := u.toDetail(ctx, product)
	return &detail, nil
}

// validateQuery отклоняет некорректные параметры, ничего не подрезая молча.
// Возвращает нормализованный номер страницы.
func (u *CatalogUseCase) validateQuery(req *ProductQueryReq) (int, error) {
	switch req.Sort {
	case SortPriceAscending, SortPriceDescending, SortNewest, SortDefault:
	default:
		return 0, e.Mark(e.ErrInvalidQuery, fmt.Errorf("unknown sort %q", req.Sort))
	}

	if req.PageSize != nil && *req.PageSize < 1 {
		return 0, e.Mark(e.ErrInvalidQuery, fmt.Errorf("page size %d must be positive", *req.PageSize))
	}

	if req.Page < 0 {
		return 0, e.Mark(e.ErrInvalidQuery, fmt.Errorf("page %d must be positive", req.Page))
	}

	page := req.Page
	if page == 0 {
		page = 1
	}

	return page, nil
}

// matchesFilter проверяет товар против фильтра: подстрока в названии без учёта
// регистра, точное совпадение категории, включительные границы цены.
// Границы независимы: допустима только нижняя или только верхняя.
func matchesFilter(p *domain.Product, req *ProductQueryReq) bool {
	if req.Search != "" && !strings.Contains(strings.ToLower(p.Title), strings.ToLower(req.Search)) {
		return false
	}

	if req.Category != "" && p.Category != req.Category {
		return false
	}

	if req.PriceMin != nil && p.Price < *req.PriceMin {
		return false
	}

	if req.PriceMax != nil && p.Price > *req.PriceMax {
		return false
	}

	return true
}

// sortProducts упорядочивает выборку устойчиво. При равенстве первичного ключа
// сортировки порядок добивается идентификатором, чтобы повторные запросы
// давали одинаковый результат независимо от порядка выдачи хранилища.
func sortProducts(products []domain.Product, sortKey string) {
	less := func(a, b *domain.Product) bool {
		switch sortKey {
		case SortPriceAscending:
			if a.Price != b.Price {
				return a.Price < b.Price
			}
		case SortPriceDescending:
			if a.Price != b.Price {
				return a.Price > b.Price
			}
		case SortNewest:
			if !a.CreatedAt.Equal(b.CreatedAt) {
				return a.CreatedAt.After(b.CreatedAt)
			}
		default:
			if a.Title != b.Title {
				return a.Title < b.Title
			}
		}
		return a.ID < b.ID
	}

	sort.SliceStable(products, func(i, j int) bool {
		return less(&products[i], &products[j])
	})
}

// slicePage вырезает запрошенную страницу; страница за пределами выборки пуста.
// Произведение может переполниться на гигантском номере страницы —
// отрицательный from означает ту же страницу за пределами выборки.
func slicePage(products []domain.Product, page, pageSize int) []domain.Product {
	from := (page - 1) * pageSize
	if from < 0 || from >= len(products) {
		return []domain.Product{}
	}

	to := from + pageSize
	if to > len(products) {
		to = len(products)
	}

	return products[from:to]
}

func (u *CatalogUseCase) toDetails(ctx context.Context, products []domain.Product) []ProductDetail {
	details := make([]ProductDetail, 0, len(products))
	for i := range products {
		details = append(details, u.toDetail(ctx, &products[i]))
	}

	return details
}

// toDetail собирает DTO товара, подписывая ссылки на изображения в момент чтения.
func (u *CatalogUseCase) toDetail(ctx context.Context, p *domain.Product) ProductDetail {
	return ProductDetail{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Price:       p.Price,
		Category:    p.Category,
		Images:      p.Images,
		ImageURLs:   u.linker.Links(ctx, p.Images),
		InStock:     p.InStock,
		CreatedAt:   p.CreatedAt,
	}
}
