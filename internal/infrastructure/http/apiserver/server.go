// Package apiserver provides the JSON API HTTP server
package apiserver

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/platewise/v1/internal/infrastructure/config"
	"github.com/platewise/v1/internal/infrastructure/http/handlers"
	"github.com/platewise/v1/internal/infrastructure/http/middleware"
	"github.com/platewise/v1/internal/infrastructure/security"
	"github.com/platewise/v1/internal/ports/inbound"
	"github.com/platewise/v1/pkg/healthcheck"
)

// APIServer serves the JSON API.
type APIServer struct {
	config              *config.Config
	logger              *zap.Logger
	server              *http.Server
	router              *chi.Mux
	authService         *security.AuthService
	userService         inbound.UserService
	recipeService       inbound.RecipeService
	planService         inbound.PlanService
	shoppingListService inbound.ShoppingListService
	health              *healthcheck.HealthCheck
	registry            *prometheus.Registry
}

// NewAPIServer creates a new API server instance
func NewAPIServer(
	cfg *config.Config,
	log *zap.Logger,
	authService *security.AuthService,
	userService inbound.UserService,
	recipeService inbound.RecipeService,
	planService inbound.PlanService,
	shoppingListService inbound.ShoppingListService,
	health *healthcheck.HealthCheck,
) *APIServer {
	s := &APIServer{
		config:              cfg,
		logger:              log,
		authService:         authService,
		userService:         userService,
		recipeService:       recipeService,
		planService:         planService,
		shoppingListService: shoppingListService,
		health:              health,
		registry:            prometheus.NewRegistry(),
	}

	s.router = s.setupRoutes()
	s.server = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
		Handler:      s.router,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
	}

	return s
}

// setupRoutes configures the JSON API routes
func (s *APIServer) setupRoutes() *chi.Mux {
	r := chi.NewRouter()

	metrics := middleware.NewMetrics(s.registry)

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.Logger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(metrics.Handler())
	r.Use(middleware.Security())
	if s.config.Server.EnableCORS {
		r.Use(middleware.CORS(s.config.Server.AllowedOrigins))
	}
	r.Use(chimiddleware.Timeout(30 * time.Second))
	r.Use(chimiddleware.Compress(5))

	if s.config.RateLimit.Enable {
		limiter := middleware.NewRateLimiter(s.config.RateLimit.RequestsPerMin, s.config.RateLimit.BurstSize)
		r.Use(limiter.Handler())
	}

	r.Get("/health", s.health.Handler())
	r.Get("/health/live", s.health.LivenessHandler())
	r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(s.registry, promhttp.HandlerOpts{}))

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.JSONOnly())
		s.setupAPIV1Routes(r)
	})

	return r
}

// setupAPIV1Routes configures API v1 endpoints
func (s *APIServer) setupAPIV1Routes(r chi.Router) {
	authH := handlers.NewAuthAPIHandlers(s.userService, s.logger)
	recipeH := handlers.NewRecipeAPIHandlers(s.recipeService, s.logger)
	planH := handlers.NewPlanAPIHandlers(s.planService, s.config.ShoppingList.MaxRangeDays, s.logger)
	shoppingH := handlers.NewShoppingListAPIHandlers(s.shoppingListService, s.config.ShoppingList.MaxRangeDays, s.logger)

	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authH.Register)
		r.Post("/login", authH.Login)
		r.Post("/refresh", authH.Refresh)

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthenticateAPI(s.authService))
			r.Post("/logout", authH.Logout)
			r.Get("/profile", authH.Profile)
		})
	})

	r.Route("/recipes", func(r chi.Router) {
		r.Use(middleware.AuthenticateAPI(s.authService))
		r.Get("/", recipeH.ListRecipes)
		r.Post("/", recipeH.CreateRecipe)
		r.Get("/{id}", recipeH.GetRecipe)
		r.Put("/{id}", recipeH.UpdateRecipe)
		r.Delete("/{id}", recipeH.DeleteRecipe)
	})

	r.Route("/plans", func(r chi.Router) {
		r.Use(middleware.AuthenticateAPI(s.authService))
		r.Get("/", planH.GetPlans)
		r.Post("/meals", planH.ChooseMeal)
		r.Delete("/meals", planH.ClearMeal)
		r.Get("/{date}", planH.GetPlanForDate)
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthenticateAPI(s.authService))
		r.Get("/shopping-list", shoppingH.GetShoppingList)
	})
}

// Start starts the API HTTP server
func (s *APIServer) Start() error {
	s.logger.Info("Starting JSON API server",
		zap.String("address", s.server.Addr))

	return s.server.ListenAndServe()
}

// Server returns the underlying HTTP server instance
func (s *APIServer) Server() *http.Server {
	return s.server
}

// Router returns the configured router, used by tests to drive the
// full middleware stack without a listener.
func (s *APIServer) Router() http.Handler {
	return s.router
}

// Shutdown gracefully shuts down the API server
func (s *APIServer) Shutdown(ctx context.Context) error {
	s.logger.Info("Shutting down API server...")
	return s.server.Shutdown(ctx)
}
