package routes

import (
	"net/http"

	"github.com/bintangpramudya/kasirpay-backend/api/controllers"
	"github.com/bintangpramudya/kasirpay-backend/api/middleware"
	"github.com/bintangpramudya/kasirpay-backend/pkg/config"
	"github.com/bintangpramudya/kasirpay-backend/pkg/enums"
	"github.com/bintangpramudya/kasirpay-backend/pkg/logger"
	"github.com/bintangpramudya/kasirpay-backend/pkg/metrics"
	"github.com/go-chi/chi/v5"
)

// Controllers groups every handler the router mounts.
type Controllers struct {
	Health       *controllers.HealthController
	Auth         *controllers.AuthController
	Samples      *controllers.SamplesController
	Items        *controllers.ItemsController
	Transactions *controllers.TransactionsController
	Webhooks     *controllers.WebhooksController
}

// New assembles the HTTP router with the full middleware chain.
func New(cfg *config.Config, logg *logger.Logger, httpMetrics *metrics.HTTPMetrics, rateStore middleware.RateLimiterStore, ctrl Controllers) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer(logg))
	r.Use(middleware.RequestID(logg))
	r.Use(middleware.Logging(logg))
	r.Use(middleware.CORS(cfg.Midtrans.FrontendURL))
	r.Use(middleware.Metrics(httpMetrics))

	r.Get("/health/live", ctrl.Health.Live)
	r.Get("/health/ready", ctrl.Health.Ready)
	if httpMetrics != nil {
		r.Method(http.MethodGet, "/metrics", httpMetrics.Handler())
	}

	loginPolicy := middleware.NewAuthRateLimitPolicy("login",
		cfg.AuthRateLimit.LoginWindow, cfg.AuthRateLimit.LoginIPLimit, cfg.AuthRateLimit.LoginEmailLimit)
	registerPolicy := middleware.NewAuthRateLimitPolicy("register",
		cfg.AuthRateLimit.RegisterWindow, cfg.AuthRateLimit.RegisterIPLimit, cfg.AuthRateLimit.RegisterEmailLimit)

	r.Route("/auth", func(r chi.Router) {
		r.With(middleware.AuthRateLimit(loginPolicy, rateStore, logg)).
			Post("/login", ctrl.Auth.Login)
		r.With(middleware.AuthRateLimit(registerPolicy, rateStore, logg)).
			Post("/register", ctrl.Auth.Register)
	})

	requireAuth := middleware.Auth(cfg.JWT, logg)

	r.Route("/samples", func(r chi.Router) {
		r.Get("/", ctrl.Samples.List)
		r.With(requireAuth, middleware.RequireRole(logg, enums.UserRoleUser)).
			Get("/{sampleId}", ctrl.Samples.Detail)
		r.With(requireAuth).Post("/", ctrl.Samples.Create)
		r.With(requireAuth).Patch("/{sampleId}", ctrl.Samples.Update)
		r.With(requireAuth).Delete("/{sampleId}", ctrl.Samples.Delete)
	})

	r.Route("/items", func(r chi.Router) {
		r.Get("/", ctrl.Items.List)
		r.Get("/{itemId}", ctrl.Items.Detail)
		r.With(requireAuth).Post("/", ctrl.Items.Create)
		r.With(requireAuth).Patch("/{itemId}", ctrl.Items.Update)
		r.With(requireAuth).Delete("/{itemId}", ctrl.Items.Delete)
	})

	r.Route("/transactions", func(r chi.Router) {
		r.Get("/", ctrl.Transactions.List)
		r.Get("/{orderId}", ctrl.Transactions.Detail)
		r.Post("/", ctrl.Transactions.Create)
		// The gateway calls this server-to-server; it carries its own signature.
		r.Post("/notification", ctrl.Webhooks.MidtransNotification)
	})

	return r
}
