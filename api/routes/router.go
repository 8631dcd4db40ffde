package routes

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/mateovidal/streamhaus-backend/api/controllers"
	"github.com/mateovidal/streamhaus-backend/api/middleware"
	internalauth "github.com/mateovidal/streamhaus-backend/internal/auth"
	"github.com/mateovidal/streamhaus-backend/internal/settings"
	"github.com/mateovidal/streamhaus-backend/internal/users"
	"github.com/mateovidal/streamhaus-backend/internal/vod"
	"github.com/mateovidal/streamhaus-backend/pkg/auth/session"
	"github.com/mateovidal/streamhaus-backend/pkg/config"
	"github.com/mateovidal/streamhaus-backend/pkg/db"
	"github.com/mateovidal/streamhaus-backend/pkg/enums"
	"github.com/mateovidal/streamhaus-backend/pkg/logger"
	"github.com/mateovidal/streamhaus-backend/pkg/metrics"
	"github.com/mateovidal/streamhaus-backend/pkg/redis"
)

type sessionManager interface {
	session.AccessSessionChecker
	Rotate(context.Context, string, string) (string, string, error)
	Revoke(context.Context, string) error
}

// Deps carries everything the router wires into controllers.
type Deps struct {
	Config           *config.Config
	Logger           *logger.Logger
	DB               db.Pinger
	Redis            *redis.Client
	SessionManager   sessionManager
	AuthService      internalauth.Service
	ProvisionService users.ProvisionService
	UsersRepo        *users.Repository
	VodService       vod.Service
	SettingsService  settings.Service
	Registry         *prometheus.Registry
}

func NewRouter(deps Deps) http.Handler {
	cfg := deps.Config
	logg := deps.Logger

	r := chi.NewRouter()

	registry := deps.Registry
	if registry == nil {
		registry = prometheus.NewRegistry()
	}
	httpMetrics := metrics.NewHTTPMetrics(registry)

	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.Metrics(httpMetrics),
		middleware.CORS(),
	)

	loginPolicy := middleware.NewAuthRateLimitPolicy(
		"login",
		cfg.AuthRateLimit.LoginWindow,
		cfg.AuthRateLimit.LoginIPLimit,
		cfg.AuthRateLimit.LoginEmailLimit,
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, deps.DB, deps.Redis, logg))
	})

	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.With(middleware.AuthRateLimit(loginPolicy, deps.Redis, logg)).
				Post("/login", controllers.AuthLogin(deps.AuthService, logg))
			r.Post("/logout", controllers.AuthLogout(deps.AuthService, cfg.JWT, logg))
			r.Post("/refresh", controllers.AuthRefresh(deps.AuthService, cfg.JWT, logg))
		})

		// Account bootstrap for fresh environments. Production provisioning
		// goes through the authenticated /api/users route.
		if !cfg.App.IsProd() {
			r.Post("/admin/bootstrap", controllers.ProvisionUser(deps.ProvisionService, logg))
		}

		r.With(middleware.OptionalAuth(cfg.JWT, deps.SessionManager, logg)).
			Get("/vod", controllers.VodList(deps.VodService, deps.UsersRepo, logg))
		r.Get("/settings", controllers.SettingsGet(deps.SettingsService, logg))

		r.Group(func(r chi.Router) {
			r.Use(middleware.Auth(cfg.JWT, deps.SessionManager, logg))
			r.Use(middleware.RequireRole(string(enums.UserRoleAdmin), logg))

			r.Post("/vod", controllers.VodCreate(deps.VodService, logg))
			r.Delete("/vod/{folder}", controllers.VodDelete(deps.VodService, logg))
			r.Post("/settings", controllers.SettingsUpdate(deps.SettingsService, logg))
			r.Post("/users", controllers.ProvisionUser(deps.ProvisionService, logg))
		})
	})

	return r
}
