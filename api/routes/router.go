package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rentalke/rentalke-backend/api/controllers"
	"github.com/rentalke/rentalke-backend/api/middleware"
	adminsvc "github.com/rentalke/rentalke-backend/internal/admin"
	authsvc "github.com/rentalke/rentalke-backend/internal/auth"
	property "github.com/rentalke/rentalke-backend/internal/properties"
	"github.com/rentalke/rentalke-backend/pkg/auth/session"
	"github.com/rentalke/rentalke-backend/pkg/config"
	"github.com/rentalke/rentalke-backend/pkg/db"
	"github.com/rentalke/rentalke-backend/pkg/logger"
	"github.com/rentalke/rentalke-backend/pkg/metrics"
	"github.com/rentalke/rentalke-backend/pkg/redis"
)

type sessionManager interface {
	session.AccessSessionChecker
	Rotate(context.Context, string, string) (string, string, error)
	Revoke(context.Context, string) error
}

// Deps carries everything the HTTP surface needs.
type Deps struct {
	Config          *config.Config
	Logger          *logger.Logger
	DB              db.Pinger
	Redis           *redis.Client
	Sessions        sessionManager
	PropertyService property.Service
	AdminService    adminsvc.Service
	AuthService     authsvc.Service
	HTTPMetrics     *metrics.HTTPMetrics
	Gatherer        prometheus.Gatherer
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(cfg.Site),
		middleware.Metrics(deps.HTTPMetrics),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	var redisP redis.Pinger
	if deps.Redis != nil {
		redisP = deps.Redis
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, deps.DB, redisP))
	})

	if deps.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(deps.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Get("/sitemap.xml", controllers.Sitemap(deps.PropertyService, cfg.Site, logg))

	r.Route("/api/v1/properties", func(r chi.Router) {
		r.Get("/", controllers.ListProperties(deps.PropertyService, logg))
		r.Get("/count", controllers.CountAvailableProperties(deps.PropertyService, logg))
		r.Get("/search", controllers.SearchProperties(deps.PropertyService, logg))
		r.Get("/{propertyId}", controllers.GetProperty(deps.PropertyService, logg))
	})

	r.Route("/api/admin/v1/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).Post("/login", controllers.AuthLogin(deps.AuthService, logg))
		r.Post("/refresh", controllers.AuthRefresh(deps.AuthService, logg))
		r.Post("/logout", controllers.AuthLogout(deps.AuthService, cfg.JWT, logg))
	})

	r.Route("/api/admin/v1/properties", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, deps.Sessions, logg))

		r.Post("/", controllers.AdminCreateProperty(deps.AdminService, logg))
		r.Patch("/{propertyId}", controllers.AdminUpdateProperty(deps.AdminService, logg))
		r.Post("/{propertyId}/toggle", controllers.AdminTogglePropertyAvailability(deps.AdminService, logg))
		r.Delete("/{propertyId}", controllers.AdminDeleteProperty(deps.AdminService, logg))
	})

	return r
}
