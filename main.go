package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/pdlamini/portfolio/authenticator"
	"github.com/pdlamini/portfolio/config"
	"github.com/pdlamini/portfolio/controllers"
	"github.com/pdlamini/portfolio/database"
	appmiddleware "github.com/pdlamini/portfolio/middleware"
	"github.com/pdlamini/portfolio/repositories"
	"github.com/pdlamini/portfolio/services"
	"github.com/pdlamini/portfolio/session"
	"github.com/pdlamini/portfolio/templates"
)

func main() {
	// Load environment variables from .env file
	if err := config.LoadDotEnv(); err != nil {
		log.Printf("warning: loading .env: %v", err)
	}

	cfg, err := config.Parse()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	logger, err := newLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to build logger: %v", err)
	}
	defer logger.Sync()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		logger.Fatal("failed to initialize database", zap.Error(err))
	}
	defer db.Close()
	logger.Info("database initialized", zap.String("dialect", string(db.Dialect)))

	repos := repositories.NewRepositories(db)
	srvs := services.NewServices(repos)

	auth, err := authenticator.NewStaticProvider(authenticator.Config{
		Email:        cfg.AdminEmail,
		Password:     cfg.AdminPassword,
		PasswordHash: cfg.AdminPasswordHash,
	})
	if err != nil {
		logger.Fatal("failed to initialize admin credential", zap.Error(err))
	}
	if !cfg.AdminConfigured() {
		logger.Warn("ADMIN_EMAIL and ADMIN_PASSWORD are not set, dashboard login is disabled")
	}

	if cfg.SessionSecret == "" {
		logger.Warn("SESSION_SECRET is not set, sessions will not survive a restart")
	}
	sessions, err := session.NewManager(session.Options{
		Secret: []byte(cfg.SessionSecret),
		TTL:    cfg.SessionTTL,
		Secure: cfg.UseHTTPS,
	})
	if err != nil {
		logger.Fatal("failed to initialize sessions", zap.Error(err))
	}

	renderer, err := controllers.NewRenderer(templates.FS, logger)
	if err != nil {
		logger.Fatal("failed to parse templates", zap.Error(err))
	}

	ctrl := controllers.NewControllers(srvs, auth, sessions, renderer, logger)

	r := setupRouter(routerDeps{
		controllers: ctrl,
		sessions:    sessions,
		audit:       repos.Audit,
		db:          db,
		staticDir:   cfg.StaticDir,
		logger:      logger,
	})

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	logger.Info("starting server",
		zap.String("port", cfg.Port),
		zap.String("url", "http://localhost:"+cfg.Port),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("server error", zap.Error(err))
	}
}

// newLogger builds the process logger from configuration
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	zcfg := zap.NewDevelopmentConfig()
	if cfg.IsProduction() {
		zcfg = zap.NewProductionConfig()
	}

	level, err := zap.ParseAtomicLevel(cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	zcfg.Level = level

	return zcfg.Build()
}

type routerDeps struct {
	controllers *controllers.Controllers
	sessions    *session.Manager
	audit       repositories.AuditRepository
	db          *database.DB
	staticDir   string
	logger      *zap.Logger
}

// setupRouter configures all routes
func setupRouter(deps routerDeps) *chi.Mux {
	ctrl := deps.controllers
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(appmiddleware.RequestLogger(deps.logger))
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))
	r.Use(middleware.Compress(5))
	r.Use(appmiddleware.LoadSession(deps.sessions))
	r.Use(appmiddleware.AuditLogger(deps.audit, deps.logger))

	r.Handle("/static/*", http.StripPrefix("/static/", http.FileServer(http.Dir(deps.staticDir))))

	// PUBLIC ROUTES (no authentication required)
	r.Get("/", ctrl.Home.Index)
	r.Post("/contact", ctrl.Home.Contact)
	r.Get("/login", ctrl.Auth.LoginPage)
	r.Post("/login", ctrl.Auth.Login)
	// Logout always clears the cookie, even a stale or invalid one
	r.Get("/logout", ctrl.Auth.Logout)
	r.Get("/health", healthHandler(deps.db, deps.logger))

	// PROTECTED ROUTES (authentication required)
	r.Group(func(r chi.Router) {
		r.Use(appmiddleware.RequireAuth)

		r.Get("/dashboard", ctrl.Dashboard.Index)
	})

	return r
}

// healthHandler reports whether the database answers a ping
func healthHandler(db *database.DB, logger *zap.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status, code := "healthy", http.StatusOK
		if err := db.PingContext(r.Context()); err != nil {
			logger.Error("health check failed", zap.Error(err))
			status, code = "unhealthy", http.StatusServiceUnavailable
		}

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		json.NewEncoder(w).Encode(map[string]string{
			"status":  status,
			"service": "portfolio",
		})
	}
}
