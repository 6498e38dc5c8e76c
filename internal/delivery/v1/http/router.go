package http

import (
	"github.com/DRSN-tech/shop-backend/internal/usecase"
	"github.com/DRSN-tech/shop-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(catalogUC usecase.CatalogUC, cartUC usecase.CartUC) {
	r.router.Route("/api/v1", func(v1 chi.Router) {
		catalogHandler := NewCatalogHandler(catalogUC, r.logger)
		registerCatalogRoutes(v1, catalogHandler)

		cartHandler := NewCartHandler(cartUC, r.logger)
		registerCartRoutes(v1, cartHandler)
	})
}

func registerCatalogRoutes(router chi.Router, catalogHandler *CatalogHandler) {
	router.Route("/products", func(pr chi.Router) {
		pr.Get("/", catalogHandler.queryProducts)
		pr.Get("/{productID}", catalogHandler.getProduct)
	})
}

func registerCartRoutes(router chi.Router, cartHandler *CartHandler) {
	router.Route("/cart", func(cr chi.Router) {
		cr.Get("/", cartHandler.getCart)
		cr.Post("/add", cartHandler.addItem)
		cr.Put("/item", cartHandler.setQuantity)
		cr.Delete("/item/{productID}", cartHandler.removeItem)
		cr.Delete("/", cartHandler.clearCart)
	})
}
