package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/DRSN-tech/shop-backend/internal/domain"
	"github.com/DRSN-tech/shop-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogFixture(products ...domain.Product) (*CatalogUseCase, *fakeProductRepo) {
	repo := &fakeProductRepo{}
	for _, p := range products {
		repo.add(p)
	}
	return NewCatalogUC(repo, nopLinker{}, nopLogger{}), repo
}

func intPtr(v int) *int       { return &v }
func int64Ptr(v int64) *int64 { return &v }

func baseTime() time.Time {
	return time.Date(2025, time.March, 1, 12, 0, 0, 0, time.UTC)
}

func TestQueryWithoutPageSizeReturnsWholeMatch(t *testing.T) {
	base := baseTime()
	uc, _ := newCatalogFixture(
		testProduct("p1", "Чайник", 2500, "kitchen", base),
		testProduct("p2", "Кружка", 500, "kitchen", base.Add(time.Hour)),
		testProduct("p3", "Лампа", 1500, "light", base.Add(2*time.Hour)),
	)

	res, err := uc.Query(context.Background(), &ProductQueryReq{})

	require.NoError(t, err)
	assert.Equal(t, 3, res.Total)
	assert.Len(t, res.Items, 3)
	assert.Nil(t, res.PageSize)
}

func TestQueryTotalCountedBeforePagination(t *testing.T) {
	base := baseTime()
	uc, _ := newCatalogFixture(
		testProduct("p1", "A", 100, "", base),
		testProduct("p2", "B", 200, "", base),
		testProduct("p3", "C", 300, "", base),
		testProduct("p4", "D", 400, "", base),
		testProduct("p5", "E", 500, "", base),
	)

	res, err := uc.Query(context.Background(), &ProductQueryReq{Page: 2, PageSize: intPtr(2)})

	require.NoError(t, err)
	assert.Equal(t, 5, res.Total)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "C", res.Items[0].Title)
	assert.Equal(t, "D", res.Items[1].Title)
}

func TestQueryPageBeyondRangeIsEmpty(t *testing.T) {
	uc, _ := newCatalogFixture(
		testProduct("p1", "A", 100, "", baseTime()),
	)

	res, err := uc.Query(context.Background(), &ProductQueryReq{Page: 7, PageSize: intPtr(10)})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Empty(t, res.Items)
}

func TestQueryHugePageNumberIsEmptyNotPanic(t *testing.T) {
	uc, _ := newCatalogFixture(
		testProduct("p1", "A", 100, "", baseTime()),
	)

	res, err := uc.Query(context.Background(), &ProductQueryReq{Page: 1 << 62, PageSize: intPtr(4)})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	assert.Empty(t, res.Items)
}

func TestQueryZeroPageMeansFirst(t *testing.T) {
	uc, _ := newCatalogFixture(
		testProduct("p1", "A", 100, "", baseTime()),
		testProduct("p2", "B", 200, "", baseTime()),
	)

	res, err := uc.Query(context.Background(), &ProductQueryReq{Page: 0, PageSize: intPtr(1)})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Page)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "A", res.Items[0].Title)
}

func TestQuerySortPriceAscendingWithTieBreak(t *testing.T) {
	base := baseTime()
	// Хранилище отдаёт товары не в том порядке, в котором их нужно вернуть
	uc, _ := newCatalogFixture(
		testProduct("p3", "B", 500, "", base),
		testProduct("p1", "C", 500, "", base),
		testProduct("p2", "A", 100, "", base),
	)

	res, err := uc.Query(context.Background(), &ProductQueryReq{Sort: SortPriceAscending})

	require.NoError(t, err)
	require.Len(t, res.Items, 3)
	assert.Equal(t, "p2", res.Items[0].ID)
	// Одинаковая цена упорядочивается по идентификатору
	assert.Equal(t, "p1", res.Items[1].ID)
	assert.Equal(t, "p3", res.Items[2].ID)
}

func TestQuerySortPriceDescending(t *testing.T) {
	base := baseTime()
	uc, _ := newCatalogFixture(
		testProduct("p1", "A", 100, "", base),
		testProduct("p2", "B", 300, "", base),
		testProduct("p3", "C", 200, "", base),
	)

	res, err := uc.Query(context.Background(), &ProductQueryReq{Sort: SortPriceDescending})

	require.NoError(t, err)
	require.Len(t, res.Items, 3)
	assert.Equal(t, []int64{300, 200, 100}, []int64{res.Items[0].Price, res.Items[1].Price, res.Items[2].Price})
}

func TestQuerySortNewest(t *testing.T) {
	base := baseTime()
	uc, _ := newCatalogFixture(
		testProduct("p1", "Старый", 100, "", base),
		testProduct("p2", "Новый", 100, "", base.Add(48*time.Hour)),
		testProduct("p3", "Средний", 100, "", base.Add(time.Hour)),
	)

	res, err := uc.Query(context.Background(), &ProductQueryReq{Sort: SortNewest})

	require.NoError(t, err)
	require.Len(t, res.Items, 3)
	assert.Equal(t, "p2", res.Items[0].ID)
	assert.Equal(t, "p3", res.Items[1].ID)
	assert.Equal(t, "p1", res.Items[2].ID)
}

func TestQueryDefaultSortByTitle(t *testing.T) {
	base := baseTime()
	uc, _ := newCatalogFixture(
		testProduct("p1", "Яблоко", 100, "", base),
		testProduct("p2", "Арбуз", 100, "", base),
	)

	res, err := uc.Query(context.Background(), &ProductQueryReq{})

	require.NoError(t, err)
	require.Len(t, res.Items, 2)
	assert.Equal(t, "Арбуз", res.Items[0].Title)
}

func TestQueryFilterCombination(t *testing.T) {
	base := baseTime()
	uc, _ := newCatalogFixture(
		testProduct("p1", "Кофейник стальной", 3000, "kitchen", base),
		testProduct("p2", "Кофейник эмалированный", 900, "kitchen", base),
		testProduct("p3", "Кофе молотый", 700, "grocery", base),
	)

	res, err := uc.Query(context.Background(), &ProductQueryReq{
		Search:   "кофейник",
		Category: "kitchen",
		PriceMin: int64Ptr(1000),
	})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
	require.Len(t, res.Items, 1)
	assert.Equal(t, "p1", res.Items[0].ID)
}

func TestQuerySearchIsCaseInsensitive(t *testing.T) {
	uc, _ := newCatalogFixture(
		testProduct("p1", "Настольная ЛАМПА", 100, "", baseTime()),
	)

	res, err := uc.Query(context.Background(), &ProductQueryReq{Search: "лампа"})

	require.NoError(t, err)
	assert.Equal(t, 1, res.Total)
}

func TestQueryPriceBoundsAreInclusive(t *testing.T) {
	uc, _ := newCatalogFixture(
		testProduct("p1", "A", 100, "", baseTime()),
		testProduct("p2", "B", 200, "", baseTime()),
		testProduct("p3", "C", 300, "", baseTime()),
	)

	res, err := uc.Query(context.Background(), &ProductQueryReq{
		PriceMin: int64Ptr(100),
		PriceMax: int64Ptr(200),
	})

	require.NoError(t, err)
	assert.Equal(t, 2, res.Total)
}

func TestQueryIsDeterministic(t *testing.T) {
	base := baseTime()
	first, _ := newCatalogFixture(
		testProduct("p1", "A", 100, "", base),
		testProduct("p2", "A", 100, "", base),
		testProduct("p3", "A", 100, "", base),
	)
	// Тот же набор, но хранилище отдаёт его в другом порядке
	second, _ := newCatalogFixture(
		testProduct("p3", "A", 100, "", base),
		testProduct("p1", "A", 100, "", base),
		testProduct("p2", "A", 100, "", base),
	)

	req := &ProductQueryReq{Sort: SortPriceAscending, PageSize: intPtr(2)}

	resA, err := first.Query(context.Background(), req)
	require.NoError(t, err)
	resB, err := second.Query(context.Background(), req)
	require.NoError(t, err)

	require.Equal(t, len(resA.Items), len(resB.Items))
	for i := range resA.Items {
		assert.Equal(t, resA.Items[i].ID, resB.Items[i].ID)
	}
}

func TestQueryRejectsUnknownSort(t *testing.T) {
	uc, _ := newCatalogFixture()

	_, err := uc.Query(context.Background(), &ProductQueryReq{Sort: "cheapest"})

	assert.ErrorIs(t, err, e.ErrInvalidQuery)
}

func TestQueryRejectsNonPositivePageSize(t *testing.T) {
	uc, _ := newCatalogFixture()

	_, err := uc.Query(context.Background(), &ProductQueryReq{PageSize: intPtr(0)})

	assert.ErrorIs(t, err, e.ErrInvalidQuery)
}

func TestQueryRejectsNegativePage(t *testing.T) {
	uc, _ := newCatalogFixture()

	_, err := uc.Query(context.Background(), &ProductQueryReq{Page: -1})

	assert.ErrorIs(t, err, e.ErrInvalidQuery)
}

func TestGetProductNotFound(t *testing.T) {
	uc, _ := newCatalogFixture()

	_, err := uc.GetProduct(context.Background(), "нет-такого")

	assert.ErrorIs(t, err, e.ErrProductNotFound)
}

func TestGetProductSignsImageLinks(t *testing.T) {
	p := testProduct("p1", "A", 100, "", baseTime())
	p.Images = []string{"products/p1/main.jpg"}
	uc, _ := newCatalogFixture(p)

	detail, err := uc.GetProduct(context.Background(), "p1")

	require.NoError(t, err)
	require.Len(t, detail.ImageURLs, 1)
	assert.Equal(t, "https://s3.local/products/p1/main.jpg", detail.ImageURLs[0])
}
