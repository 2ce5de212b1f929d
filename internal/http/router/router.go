package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rogerio-castellano/inventory-cli/internal/auth"
	"github.com/rogerio-castellano/inventory-cli/internal/http/handlers"
	mw "github.com/rogerio-castellano/inventory-cli/internal/http/middleware"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	_ "github.com/rogerio-castellano/inventory-cli/docs"
)

// NewRouter builds the API routes. Reads are public; mutations need an operator token.
// limiter may be nil to disable rate limiting.
func NewRouter(s *handlers.Server, tokens *auth.TokenIssuer, limiter *mw.RateLimiter) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	if limiter != nil {
		r.Use(limiter.Middleware)
	}

	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Post("/login", s.LoginHandler)
	r.Get("/products", s.GetProductsHandler)
	r.Get("/products/{name}", s.GetProductByNameHandler)
	r.Get("/metrics/summary", s.GetSummaryHandler)

	r.Group(func(r chi.Router) {
		r.Use(mw.Authenticate(tokens))
		r.Post("/products", s.CreateProductHandler)
		r.Post("/products/import", s.ImportProductsHandler)
		r.Put("/products/{name}", s.UpdateProductHandler)
		r.Delete("/products/{name}", s.DeleteProductHandler)
	})

	return r
}
