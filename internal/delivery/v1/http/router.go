package http

import (
	_ "github.com/DRSN-tech/pricing-backend/docs" // Импорт сгенерированных файлов
	"github.com/DRSN-tech/pricing-backend/internal/usecase"
	"github.com/DRSN-tech/pricing-backend/pkg/logger"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type Router struct {
	router *chi.Mux
	logger logger.Logger
}

func NewRouter(router *chi.Mux, logger logger.Logger) *Router {
	return &Router{router: router, logger: logger}
}

func (r *Router) Init(priceUC usecase.PriceUC) {
	r.router.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("http://localhost:8080/swagger/doc.json"), // ссылка на JSON
	))

	r.router.Route("/api/v1", func(v1 chi.Router) {
		priceHandler := NewPriceHandler(priceUC, r.logger)
		componentHandler := NewComponentHandler(priceUC, r.logger)
		registerPriceRoutes(v1, priceHandler)
		registerComponentRoutes(v1, componentHandler)
	})
}

func registerPriceRoutes(router chi.Router, h *PriceHandler) {
	router.Post("/price", h.getPrice)
}

func registerComponentRoutes(router chi.Router, h *ComponentHandler) {
	router.Route("/components", func(c chi.Router) {
		c.Post("/", h.registerComponent)
	})
}
