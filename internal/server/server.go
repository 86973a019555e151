package server

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jmoiron/sqlx"

	"gympulse/internal/account"
	"gympulse/internal/api"
	"gympulse/internal/auth"
	"gympulse/internal/config"
	"gympulse/internal/email"
	"gympulse/internal/events"
	"gympulse/internal/profile"
	"gympulse/internal/recipe"
	"gympulse/internal/stats"
	"gympulse/internal/subscription"
)

type Server struct {
	router *gin.Engine
	http   *http.Server
	db     *sqlx.DB
	config *config.Config
	email  *email.Service
}

// Handlers groups the feature handlers mounted by the router.
type Handlers struct {
	Account      *account.Handler
	Profile      *profile.Handler
	Recipe       *recipe.Handler
	Subscription *subscription.Handler
	Stats        *stats.Handler

	// TestEmail is mounted only when set.
	TestEmail gin.HandlerFunc
}

// New wires repositories, services and handlers on top of db. emailService
// and publisher may be nil.
func New(db *sqlx.DB, cfg *config.Config, emailService *email.Service, publisher *events.Publisher) *Server {
	accounts := account.NewRepository(db)
	profiles := profile.NewRepository(db)
	recipes := recipe.NewRepository(db)

	var mailer subscription.Mailer
	if emailService != nil {
		mailer = emailService
	}
	var renewals subscription.EventPublisher
	if publisher != nil {
		renewals = publisher
	}

	h := Handlers{
		Account:      account.NewHandler(account.NewService(accounts, cfg.JWTSecret)),
		Profile:      profile.NewHandler(profile.NewService(profiles, accounts)),
		Recipe:       recipe.NewHandler(recipe.NewService(recipes, accounts, profiles, cfg.Location)),
		Subscription: subscription.NewHandler(subscription.NewService(subscription.NewRepository(db), accounts, profiles, renewals, mailer)),
		Stats:        stats.NewHandler(stats.NewService(stats.NewRepository(db), recipes)),
	}

	if emailService != nil {
		h.TestEmail = TestEmail(emailService)
	}

	return &Server{
		router: NewRouter(cfg, h),
		db:     db,
		config: cfg,
		email:  emailService,
	}
}

// NewRouter builds the gin engine with middleware and every route mounted.
func NewRouter(cfg *config.Config, h Handlers) *gin.Engine {
	router := gin.New()
	router.Use(
		RecoveryMiddleware(),
		RequestIDMiddleware(),
		RequestLoggingMiddleware(),
		MetricsMiddleware(),
		corsMiddleware(),
		RateLimitMiddleware(cfg.RateLimitRPS, cfg.RateLimitBurst),
	)

	router.GET("/health", Health)
	router.GET("/metrics", Metrics())
	SetupSwagger(router)

	public := router.Group("/auth")
	{
		handle(public, http.MethodPost, "/register", h.Account.Register)
		handle(public, http.MethodPost, "/login", h.Account.Login)
		handle(public, http.MethodPost, "/refresh", h.Account.Refresh)
	}

	authMiddleware := auth.AuthMiddleware(cfg.JWTSecret)
	handle(router.Group("/", authMiddleware), http.MethodGet, "/me", h.Account.Me)

	apiGroup := router.Group("/api")
	{
		handle(apiGroup, http.MethodPost, "/recipes/add", h.Recipe.Add)
		handle(apiGroup, http.MethodGet, "/recipes/user/:userID", h.Recipe.ListForUser)
		handle(apiGroup, http.MethodGet, "/recipes", h.Recipe.ListAll)
		handle(apiGroup, http.MethodPut, "/recipes/update/:recipeID", h.Recipe.Update)
		handle(apiGroup, http.MethodDelete, "/recipes/delete/:recipeID", h.Recipe.Delete)
		handle(apiGroup, http.MethodGet, "/recipes/count", h.Recipe.Count)

		handle(apiGroup, http.MethodGet, "/subscription/status/:userID", h.Subscription.GetStatus)
		handle(apiGroup, http.MethodPost, "/subscription/renew", h.Subscription.Renew)
		handle(apiGroup, http.MethodGet, "/subscription/history/:userID", h.Subscription.History)

		handle(apiGroup, http.MethodPost, "/trainers", h.Account.RegisterTrainer)
		handle(apiGroup, http.MethodGet, "/trainers/:userID", h.Account.GetTrainer)

		handle(apiGroup, http.MethodPost, "/profile", h.Profile.Create)
		handle(apiGroup, http.MethodGet, "/profile/:userID", h.Profile.Get)
	}

	admin := router.Group("/admin", authMiddleware, auth.RequireRole(string(account.RoleAdmin)))
	{
		handle(admin, http.MethodGet, "/stats", h.Stats.Get)
		handle(admin, http.MethodPost, "/accounts/:userID/deactivate", h.Account.Deactivate)
		if h.TestEmail != nil {
			handle(admin, http.MethodGet, "/test-email", h.TestEmail)
		}
	}

	return router
}

// handle mounts h for every method so that other verbs get a JSON 405.
func handle(g gin.IRoutes, method, path string, h gin.HandlerFunc) {
	g.Any(path, api.AllowOnly(method, h))
}

func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) Start(port string) error {
	s.http = &http.Server{
		Addr:              ":" + port,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s.http.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	if s.http == nil {
		return nil
	}
	return s.http.Shutdown(ctx)
}
