package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/chocozoo/storefront/api/controllers"
	"github.com/chocozoo/storefront/api/middleware"
	"github.com/chocozoo/storefront/internal/catalog"
	"github.com/chocozoo/storefront/internal/checkout"
	"github.com/chocozoo/storefront/internal/filters"
	"github.com/chocozoo/storefront/internal/session"
	"github.com/chocozoo/storefront/internal/survey"
	"github.com/chocozoo/storefront/pkg/config"
	"github.com/chocozoo/storefront/pkg/logger"
	"github.com/chocozoo/storefront/pkg/metrics"
	"github.com/chocozoo/storefront/pkg/redis"
)

// Params carries everything the router wires into handlers. Redis may be
// nil, which turns off idempotency, the submit rate limit and the redis
// readiness check.
type Params struct {
	Config   *config.Config
	Logger   *logger.Logger
	Catalog  *catalog.Catalog
	Engine   *filters.Engine
	Sessions *session.Registry
	Checkout *checkout.Service
	Survey   *survey.Service
	Metrics  *metrics.Storefront
	Gatherer prometheus.Gatherer
	Redis    *redis.Client
}

func NewRouter(p Params) http.Handler {
	cfg, logg := p.Config, p.Logger

	var (
		idempotencyStore redis.IdempotencyStore
		limiter          redis.RateLimiter
		redisPinger      controllers.Pinger
	)
	if p.Redis != nil {
		idempotencyStore = p.Redis
		limiter = p.Redis
		redisPinger = p.Redis
	}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.App.CORSOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, redisPinger))
	})

	if cfg.Metrics.Enabled && p.Gatherer != nil {
		r.Method(http.MethodGet, cfg.Metrics.Path, metrics.Handler(p.Gatherer))
	}

	submitPolicy := middleware.NewRateLimitPolicy("checkout_submit", cfg.Checkout.SubmitLimit, cfg.Checkout.SubmitWindow)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/catalog", func(r chi.Router) {
			r.Get("/products", controllers.CatalogProducts(p.Engine, p.Metrics, logg))
			r.Get("/facets", controllers.CatalogFacets(p.Engine))
		})
		r.Get("/checkout/options", controllers.CheckoutOptions())

		r.Group(func(r chi.Router) {
			r.Use(middleware.Session(p.Sessions, logg))
			r.Use(middleware.Idempotency(idempotencyStore, cfg.Checkout.IdempotencyTTL, logg))

			r.Route("/shop", func(r chi.Router) {
				r.Get("/", controllers.ShopView(p.Engine, p.Metrics, logg))
				r.Post("/filters/toggle", controllers.ShopToggleFilter(p.Engine, p.Metrics, logg))
				r.Delete("/filters", controllers.ShopClearFilters(p.Engine, p.Metrics, logg))
				r.Put("/search", controllers.ShopSearch(p.Engine, p.Metrics, logg))
			})

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", controllers.CartFetch(logg))
				r.Get("/badge", controllers.CartBadge(logg))
				r.Post("/items", controllers.CartAddItem(p.Catalog, logg))
				r.Patch("/items/{productId}", controllers.CartUpdateQuantity(logg))
				r.Delete("/items/{productId}", controllers.CartRemoveItem(logg))
			})

			r.Route("/checkout", func(r chi.Router) {
				r.Post("/review", controllers.CheckoutReview(logg))
				r.With(middleware.RateLimit(submitPolicy, limiter, logg)).
					Post("/confirm", controllers.CheckoutConfirm(p.Checkout, logg))
			})

			r.Post("/survey", controllers.SurveySubmit(p.Survey, logg))
		})
	})

	return r
}
