package http

import (
	"net/http"

	"github.com/DRSN-tech/shop-backend/internal/usecase"
	"github.com/DRSN-tech/shop-backend/pkg/e"
	"github.com/DRSN-tech/shop-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type CatalogHandler struct {
	catalogUsecase usecase.CatalogUC
	logger         logger.Logger
}

func NewCatalogHandler(catalogUsecase usecase.CatalogUC, logger logger.Logger) *CatalogHandler {
	return &CatalogHandler{catalogUsecase: catalogUsecase, logger: logger}
}

// ProductPageResponse — страница каталога с общим размером выборки.
type ProductPageResponse struct {
	Items    []ProductResponse `json:"items"`
	Total    int               `json:"total"`
	Page     int               `json:"page"`
	PageSize *int              `json:"page_size,omitempty"`
}

// queryProducts возвращает страницу каталога по фильтру из query-параметров.
func (h *CatalogHandler) queryProducts(w http.ResponseWriter, r *http.Request) {
	req, err := parseProductQuery(r)
	if err != nil {
		h.logger.Warnf("%d %s: %s", http.StatusBadRequest, e.ErrInvalidQuery.Error(), err.Error())
		WriteError(w, err)
		return
	}

	res, err := h.catalogUsecase.Query(r.Context(), req)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	items := make([]ProductResponse, 0, len(res.Items))
	for i := range res.Items {
		items = append(items, *toProductResponse(&res.Items[i]))
	}

	WriteSuccess(w, http.StatusOK, &ProductPageResponse{
		Items:    items,
		Total:    res.Total,
		Page:     res.Page,
		PageSize: res.PageSize,
	})
}

// getProduct возвращает один товар по идентификатору.
func (h *CatalogHandler) getProduct(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "productID")

	detail, err := h.catalogUsecase.GetProduct(r.Context(), productID)
	if err != nil {
		h.logger.Warnf("%s", err.Error())
		WriteError(w, err)
		return
	}

	WriteSuccess(w, http.StatusOK, toProductResponse(detail))
}

func parseProductQuery(r *http.Request) (*usecase.ProductQueryReq, error) {
	q := r.URL.Query()

	priceMin, err := parsePriceBound(q.Get("price_min"))
	if err != nil {
		return nil, err
	}

	priceMax, err := parsePriceBound(q.Get("price_max"))
	if err != nil {
		return nil, err
	}

	page, err := parseIntParam(q.Get("page"))
	if err != nil {
		return nil, err
	}

	pageSize, err := parseIntParam(q.Get("page_size"))
	if err != nil {
		return nil, err
	}

	req := &usecase.ProductQueryReq{
		Search:   q.Get("search"),
		Category: q.Get("category"),
		PriceMin: priceMin,
		PriceMax: priceMax,
		Sort:     q.Get("sort"),
		PageSize: pageSize,
	}
	if page != nil {
		req.Page = *page
	}

	return req, nil
}
