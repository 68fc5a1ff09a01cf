package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"realty-server/auth"
	"realty-server/cache"
	"realty-server/confs"
	"realty-server/db"
	"realty-server/entities"
	"realty-server/events"
	"realty-server/handlers"
	httpHandler "realty-server/handlers/http"
	"realty-server/i18n"
	"realty-server/repositories"
	"realty-server/services"
	"realty-server/usecases"
	"realty-server/ws"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Options carries the infrastructure chosen at startup.
type Options struct {
	Config      confs.Config
	Database    db.Database
	Revocations cache.RevocationStore
	ResetTokens cache.ResetTokenStore
	Publisher   events.Publisher
	Mailer      services.Mailer
	Logger      *slog.Logger
}

type Server struct {
	app      *gin.Engine
	http     *http.Server
	cfg      confs.Config
	db       db.Database
	hub      *ws.Manager
	recorder *services.ActivityRecorder
	logger   *slog.Logger
}

func NewServer(opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.Default()
	}
	if opts.Revocations == nil {
		opts.Revocations = cache.NewMemoryRevocationStore()
	}
	if opts.ResetTokens == nil {
		opts.ResetTokens = cache.NewMemoryResetTokenStore()
	}
	if opts.Publisher == nil {
		opts.Publisher = events.NewLogPublisher(opts.Logger)
	}
	if opts.Mailer == nil {
		opts.Mailer = services.NewLogMailer(opts.Logger)
	}
	if !opts.Config.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	s := &Server{
		app:    gin.New(),
		cfg:    opts.Config,
		db:     opts.Database,
		hub:    ws.NewManager(cache.NewSnapshotCache()),
		logger: opts.Logger.With("module", "server"),
	}
	s.setupRoutes(opts)
	s.http = &http.Server{
		Addr:              opts.Config.HTTPAddress(),
		Handler:           s.app,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

func (s *Server) setupRoutes(opts Options) {
	s.app.Use(gin.Recovery())
	s.app.Use(httpHandler.RequestLogger(opts.Logger))
	s.app.Use(cors.New(corsConfig(s.cfg.CORSOrigins)))

	s.app.GET("/health", func(c *gin.Context) {
		status, code := "OK", http.StatusOK
		if sqlDB, err := s.db.GetDB().DB(); err != nil || sqlDB.PingContext(c.Request.Context()) != nil {
			status, code = "DEGRADED", http.StatusServiceUnavailable
		}
		c.JSON(code, gin.H{"status": status})
	})

	// Initialize repositories
	userRepo := repositories.NewUserPgRepository(s.db)
	propertyRepo := repositories.NewPropertyPgRepository(s.db)
	contractRepo := repositories.NewContractPgRepository(s.db)
	leadRepo := repositories.NewLeadPgRepository(s.db)
	activityRepo := repositories.NewActivityPgRepository(s.db)

	s.recorder = services.NewActivityRecorder(activityRepo, opts.Publisher, s.cfg.ActivityFlushInterval)
	catalog := i18n.NewCatalog(s.cfg.DefaultLocale)

	// Initialize use cases
	sessionUseCase := usecases.NewSessionUseCase(usecases.SessionDeps{
		Users:            userRepo,
		Leads:            leadRepo,
		Tokens:           auth.NewTokenManager(s.cfg.JWTSecret, s.cfg.JWTIssuer, s.cfg.JWTTTL),
		Revocations:      opts.Revocations,
		ResetTokens:      opts.ResetTokens,
		Mailer:           opts.Mailer,
		Activity:         s.recorder,
		Publisher:        opts.Publisher,
		Hub:              s.hub,
		EnforceLoginRole: s.cfg.EnforceLoginRole,
		ResetTokenTTL:    s.cfg.ResetTokenTTL,
	})
	propertyUseCase := usecases.NewPropertyUseCase(propertyRepo, s.hub)
	contractUseCase := usecases.NewContractUseCase(contractRepo, userRepo, propertyRepo, s.hub)
	adminUseCase := usecases.NewAdminUseCase(userRepo, leadRepo, activityRepo, s.recorder)

	// Initialize handlers
	authHandler := httpHandler.NewAuthHandler(sessionUseCase, catalog)
	dashboardHandler := httpHandler.NewDashboardHandler(usecases.NewDashboardUseCase(), catalog)
	propertyHandler := httpHandler.NewPropertyHandler(propertyUseCase, catalog)
	contractHandler := httpHandler.NewContractHandler(contractUseCase, catalog)
	adminHandler := httpHandler.NewAdminHandler(adminUseCase, catalog)
	profileHandler := httpHandler.NewProfileHandler(usecases.NewProfileUseCase(userRepo), catalog)
	analyticsHandler := httpHandler.NewAnalyticsHandler(usecases.NewAnalyticsUseCase(propertyUseCase, contractUseCase), catalog)
	cacheHandler := handlers.NewCacheHandler(s.hub, s.recorder, catalog)
	wsHandler := handlers.NewWSHandler(s.hub, sessionUseCase, propertyUseCase, contractUseCase, catalog)

	authenticated := httpHandler.Authenticate(sessionUseCase, catalog)
	identity := httpHandler.RequireIdentity(catalog)

	// Setup API routes
	api := s.app.Group("/api/v1", httpHandler.Locale(catalog))
	{
		authRoutes := api.Group("/auth")
		{
			authRoutes.POST("/register", authHandler.Register)
			authRoutes.POST("/login", authHandler.Login)
			authRoutes.POST("/demo", authHandler.Demo)
			authRoutes.POST("/password-reset", authHandler.RequestPasswordReset)
			authRoutes.POST("/password-reset/confirm", authHandler.ConfirmPasswordReset)
			authRoutes.POST("/logout", authenticated, authHandler.Logout)
			authRoutes.GET("/session", authenticated, authHandler.Session)
		}

		api.GET("/dashboard", authenticated, dashboardHandler.GetDashboard)

		properties := api.Group("/properties", authenticated, identity)
		{
			properties.POST("", propertyHandler.CreateProperty)
			properties.GET("", propertyHandler.GetProperties)
			properties.GET("/:id", propertyHandler.GetProperty)
		}

		contracts := api.Group("/contracts", authenticated, identity)
		{
			contracts.POST("", contractHandler.CreateContract)
			contracts.GET("", contractHandler.GetContracts)
			contracts.DELETE("/:id", contractHandler.DeleteContract)
		}

		profile := api.Group("/profile", authenticated, identity)
		{
			profile.GET("", profileHandler.GetProfile)
			profile.PUT("", profileHandler.UpdateProfile)
		}

		api.GET("/analytics", authenticated, identity, analyticsHandler.GetAnalytics)

		admin := api.Group("/admin", authenticated, httpHandler.RequireRole(catalog, entities.RoleAdmin))
		{
			admin.GET("/users", adminHandler.GetUsers)
			admin.GET("/users/:id", adminHandler.GetUser)
			admin.PUT("/users/:id", adminHandler.UpdateUser)
			admin.GET("/leads", adminHandler.GetLeads)
			admin.GET("/activity", adminHandler.GetActivity)
			admin.POST("/activity/flush", cacheHandler.FlushActivity)
			admin.GET("/export", adminHandler.Export)
			admin.GET("/realtime", cacheHandler.GetCacheStats)
		}
	}

	s.app.GET("/ws", wsHandler.HandleWS)
}

func corsConfig(origins []string) cors.Config {
	config := cors.DefaultConfig()
	config.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	config.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "Accept-Language", "Authorization"}
	config.ExposeHeaders = []string{"X-Request-Id", "Content-Disposition"}
	for _, o := range origins {
		if o == "*" {
			config.AllowAllOrigins = true
			return config
		}
	}
	if len(origins) == 0 {
		config.AllowAllOrigins = true
		return config
	}
	config.AllowOrigins = origins
	return config
}

// Handler exposes the router, mainly for tests.
func (s *Server) Handler() http.Handler { return s.app }

// Start runs the activity flusher and serves until Shutdown is called.
func (s *Server) Start(ctx context.Context) error {
	s.recorder.Start(ctx)
	s.logger.Info("listening", "addr", s.http.Addr)
	if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and writes pending activity.
func (s *Server) Shutdown(ctx context.Context) error {
	httpErr := s.http.Shutdown(ctx)
	flushErr := s.recorder.Stop(ctx)
	return errors.Join(httpErr, flushErr)
}
