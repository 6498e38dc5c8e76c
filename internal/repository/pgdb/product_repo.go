package pgdb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DRSN-tech/shop-backend/internal/domain"
	"github.com/DRSN-tech/shop-backend/internal/repository/pgdb/converter"
	"github.com/DRSN-tech/shop-backend/internal/usecase"
	"github.com/DRSN-tech/shop-backend/pkg/e"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jimlawless/whereami"
)

const productColumns = "id, title, description, price, category, images, in_stock, created_by, created_at, updated_at"

// ProductRepo реализует хранилище каталога поверх PostgreSQL.
// Каталог для ядра доступен только на чтение.
type ProductRepo struct {
	pool *pgxpool.Pool
	conv converter.ProductConverter
}

func NewProductRepo(pool *pgxpool.Pool, conv converter.ProductConverter) *ProductRepo {
	return &ProductRepo{
		pool: pool,
		conv: conv,
	}
}

// GetByID возвращает товар по идентификатору или e.ErrProductNotFound.
func (p *ProductRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = $1`, productColumns)

	model, err := p.scanProduct(p.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, e.Wrap(whereami.WhereAmI(), e.ErrProductNotFound)
		}
		return nil, e.Wrap(whereami.WhereAmI(), e.Mark(e.ErrStoreUnavailable, err))
	}

	return p.conv.ToEntity(model), nil
}

// Find возвращает товары, удовлетворяющие фильтру. Фильтрация в SQL —
// оптимизация: движок выборки перепроверяет условия сам.
func (p *ProductRepo) Find(ctx context.Context, filter *usecase.ProductFilter) ([]domain.Product, error) {
	query, args := buildFindQuery(filter)

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.Mark(e.ErrStoreUnavailable, err))
	}
	defer rows.Close()

	return p.collectProducts(rows)
}

// FindByIDs возвращает товары по идентификаторам; отсутствующие молча пропускаются.
func (p *ProductRepo) FindByIDs(ctx context.Context, ids []string) ([]domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM products WHERE id = ANY($1)`, productColumns)

	rows, err := p.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.Mark(e.ErrStoreUnavailable, err))
	}
	defer rows.Close()

	return p.collectProducts(rows)
}

func (p *ProductRepo) collectProducts(rows pgx.Rows) ([]domain.Product, error) {
	models := make([]converter.ProductModel, 0)
	for rows.Next() {
		model, err := p.scanProduct(rows)
		if err != nil {
			return nil, e.Wrap(whereami.WhereAmI(), e.Mark(e.ErrStoreUnavailable, err))
		}

		models = append(models, *model)
	}
	if err := rows.Err(); err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), e.Mark(e.ErrStoreUnavailable, err))
	}

	return p.conv.ToArrEntity(models), nil
}

func (p *ProductRepo) scanProduct(row pgx.Row) (*converter.ProductModel, error) {
	var model converter.ProductModel
	err := row.Scan(
		&model.ID, &model.Title, &model.Description, &model.Price, &model.Category,
		&model.Images, &model.InStock, &model.CreatedBy, &model.CreatedAt, &model.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	return &model, nil
}

func buildFindQuery(filter *usecase.ProductFilter) (string, []any) {
	var (
		conditions []string
		args       []any
	)

	arg := func(v any) string {
		args = append(args, v)
		return fmt.Sprintf("$%d", len(args))
	}

	if filter.Search != "" {
		conditions = append(conditions, fmt.Sprintf("title ILIKE %s", arg("%"+escapeLike(filter.Search)+"%")))
	}
	if filter.Category != "" {
		conditions = append(conditions, fmt.Sprintf("category = %s", arg(filter.Category)))
	}
	if filter.PriceMin != nil {
		conditions = append(conditions, fmt.Sprintf("price >= %s", arg(*filter.PriceMin)))
	}
	if filter.PriceMax != nil {
		conditions = append(conditions, fmt.Sprintf("price <= %s", arg(*filter.PriceMax)))
	}

	query := fmt.Sprintf(`SELECT %s FROM products`, productColumns)
	if len(conditions) > 0 {
		query += " WHERE " + strings.Join(conditions, " AND ")
	}

	return query, args
}

// escapeLike экранирует спецсимволы шаблона LIKE в пользовательской строке поиска.
func escapeLike(s string) string {
	replacer := strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)
	return replacer.Replace(s)
}
