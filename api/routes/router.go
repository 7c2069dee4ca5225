package routes

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/jatansg/sgfoodcourt/api/controllers"
	cartcontrollers "github.com/jatansg/sgfoodcourt/api/controllers/cart"
	"github.com/jatansg/sgfoodcourt/api/controllers/dto"
	ordercontrollers "github.com/jatansg/sgfoodcourt/api/controllers/orders"
	"github.com/jatansg/sgfoodcourt/api/middleware"
	"github.com/jatansg/sgfoodcourt/internal/catalog"
	checkoutsvc "github.com/jatansg/sgfoodcourt/internal/checkout"
	"github.com/jatansg/sgfoodcourt/internal/session"
	"github.com/jatansg/sgfoodcourt/pkg/config"
	"github.com/jatansg/sgfoodcourt/pkg/enums"
	"github.com/jatansg/sgfoodcourt/pkg/logger"
	"github.com/jatansg/sgfoodcourt/pkg/metrics"
)

// RouterParams carries everything the HTTP surface is wired to.
type RouterParams struct {
	Config      *config.Config
	Logger      *logger.Logger
	Catalog     *catalog.Catalog
	Sessions    session.Service
	Checkout    checkoutsvc.Service
	Orders      ordercontrollers.Board
	HTTPMetrics *metrics.HTTPMetrics
	// MetricsHandler serves the Prometheus scrape endpoint; nil disables it.
	MetricsHandler http.Handler
}

func NewRouter(params RouterParams) http.Handler {
	cfg := params.Config
	logg := params.Logger
	presenter := dto.Presenter{CurrencySymbol: cfg.Engine.CurrencySymbol}

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(params.HTTPMetrics),
		middleware.CORS(cfg.HTTP.CORSOrigins),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, map[string]controllers.ReadinessCheck{
			"catalog": func() error {
				if params.Catalog == nil || len(params.Catalog.Stalls()) == 0 {
					return errors.New("catalog not loaded")
				}
				return nil
			},
		}))
	})

	if cfg.Metrics.Enabled && params.MetricsHandler != nil {
		r.Method(http.MethodGet, cfg.Metrics.Path, params.MetricsHandler)
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.Actor(logg))

		r.Get("/stalls", controllers.StallsList(params.Catalog, logg))
		r.Get("/catalog", controllers.CatalogList(params.Catalog, presenter, logg))
		r.Get("/catalog/{itemId}", controllers.CatalogItem(params.Catalog, presenter, logg))

		r.Post("/sessions", controllers.SessionCreate(params.Sessions, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireSession(logg))

			r.Route("/cart", func(r chi.Router) {
				r.Get("/", cartcontrollers.Fetch(params.Sessions, presenter, logg))
				r.Delete("/", cartcontrollers.Clear(params.Sessions, presenter, logg))
				r.Post("/items", cartcontrollers.AddItem(params.Sessions, presenter, logg))
				r.Put("/items/{itemId}", cartcontrollers.SetQuantity(params.Sessions, presenter, logg))
				r.Delete("/items/{itemId}", cartcontrollers.RemoveItem(params.Sessions, presenter, logg))
			})
			r.Post("/checkout", controllers.Checkout(params.Checkout, presenter, logg))
		})

		r.Route("/orders", func(r chi.Router) {
			r.Get("/", ordercontrollers.List(params.Orders, presenter, logg))
			r.With(middleware.RequireRole(logg, enums.ActorRoleCoffeeShopOwner, enums.ActorRoleStallOwner)).
				Get("/summary", ordercontrollers.Summary(params.Orders, presenter, logg))
			r.Get("/{orderId}", ordercontrollers.Get(params.Orders, presenter, logg))
			r.Post("/{orderId}/status", ordercontrollers.Transition(params.Orders, presenter, logg))
		})
	})

	return r
}
