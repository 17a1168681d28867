package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/manara-academy/platform-api/docs"
	"github.com/manara-academy/platform-api/internal/api/handler"
	"github.com/manara-academy/platform-api/internal/api/metrics"
	"github.com/manara-academy/platform-api/internal/api/middleware"
	"github.com/manara-academy/platform-api/internal/core/domain"
	"github.com/manara-academy/platform-api/internal/core/service"
	"github.com/manara-academy/platform-api/internal/core/session"
	"github.com/manara-academy/platform-api/internal/infrastructure/authapi"
	"github.com/manara-academy/platform-api/internal/infrastructure/config"
	mongoinfra "github.com/manara-academy/platform-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/manara-academy/platform-api/internal/infrastructure/db/redis"
	"github.com/manara-academy/platform-api/internal/infrastructure/mail"
	"github.com/manara-academy/platform-api/internal/infrastructure/notify"
)

const loginPath = "/login"

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.RequestLoggerWithConfig(echomiddleware.RequestLoggerConfig{
		LogStatus:  true,
		LogURI:     true,
		LogMethod:  true,
		LogLatency: true,
		LogValuesFunc: func(c echo.Context, v echomiddleware.RequestLoggerValues) error {
			log.Info().
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Msg("request")
			return nil
		},
	}))
	e.Use(echoprometheus.NewMiddleware("platform"))

	// --- Collaborators ---
	authClient := authapi.NewClient(cfg.Auth.BaseURL, cfg.Auth.Timeout)
	verifier := authapi.NewTokenVerifier(cfg.JWTSecret)
	creds := redisinfra.NewCredentialStore(rdb, cfg.SessionTTL)
	limiter := redisinfra.NewLimiter(rdb, cfg.Rate.Limit, cfg.Rate.Window)
	mailer := mail.NewProviderClient(cfg.Mail.BaseURL, cfg.Mail.APIKey, cfg.Mail.Timeout)
	notifier := notify.NewLogNotifier(log)

	manager := session.NewManager(creds, verifier)
	manager.OnUpdate = func(sess domain.Session) {
		metrics.SessionTransitionsTotal.WithLabelValues(string(sess.Status)).Inc()
	}

	// --- Services ---
	contactSvc := service.NewContactService(
		mailer,
		mongoinfra.NewInquiryRepository(db),
		cfg.Mail.From,
		cfg.Mail.To,
		log,
	)
	contentSvc := service.NewContentService(mongoinfra.NewContentRepository(db))

	// --- Handlers ---
	contactHandler := handler.NewContactHandler(contactSvc, limiter)
	contentHandler := handler.NewContentHandler(contentSvc)
	authHandler := handler.NewAuthHandler(authClient, creds, manager, cfg.SessionTTL, cfg.Env == "production")
	recoveryHandler := handler.NewRecoveryHandler(authClient, notifier, limiter, log)
	guard := middleware.Guard(manager, loginPath)

	// --- Public routes ---
	e.GET("/api/content/landing", contentHandler.Landing)
	e.POST("/api/contact", contactHandler.Submit)
	e.POST("/auth/login", authHandler.Login)
	e.POST("/auth/logout", authHandler.Logout)
	e.POST("/auth/forgot", recoveryHandler.Forgot)
	e.POST("/auth/reset", recoveryHandler.Reset)

	// --- Protected routes ---
	protected := e.Group("", guard)
	protected.GET("/auth/me", authHandler.Me)
	protected.GET("/dashboard", authHandler.Me)

	// --- Operational endpoints ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness)  // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
