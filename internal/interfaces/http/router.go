// Package http wires repositories, use cases and handlers into the gin
// engine.
package http

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	authapp "fixmylab/internal/application/auth"
	"fixmylab/internal/application/notification"
	settingusecases "fixmylab/internal/application/setting/usecases"
	ticketusecases "fixmylab/internal/application/ticket/usecases"
	infraauth "fixmylab/internal/infrastructure/auth"
	"fixmylab/internal/infrastructure/config"
	"fixmylab/internal/infrastructure/email"
	"fixmylab/internal/infrastructure/ratelimit"
	"fixmylab/internal/infrastructure/repository"
	"fixmylab/internal/infrastructure/storage"
	adminhandlers "fixmylab/internal/interfaces/http/handlers/admin"
	authhandlers "fixmylab/internal/interfaces/http/handlers/auth"
	publichandlers "fixmylab/internal/interfaces/http/handlers/public"
	settinghandlers "fixmylab/internal/interfaces/http/handlers/setting"
	tickethandlers "fixmylab/internal/interfaces/http/handlers/ticket"
	"fixmylab/internal/interfaces/http/middleware"
	"fixmylab/internal/interfaces/http/routes"
	"fixmylab/internal/shared/logger"
	"fixmylab/internal/shared/services/markdown"
)

type Router struct {
	engine  *gin.Engine
	db      *gorm.DB
	cfg     *config.Config
	limiter ratelimit.RateLimiter
	logger  logger.Interface

	// OldTicketsCheck is exposed so the scheduler can run the same use
	// case the admin endpoint does.
	OldTicketsCheck ticketusecases.OldTicketsCheckExecutor
}

func NewRouter(db *gorm.DB, cfg *config.Config, limiter ratelimit.RateLimiter, log logger.Interface) *Router {
	return &Router{
		engine:  gin.New(),
		db:      db,
		cfg:     cfg,
		limiter: limiter,
		logger:  log,
	}
}

func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}

// SetupRoutes builds the dependency graph and registers every route.
func (r *Router) SetupRoutes() error {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))
	r.engine.Use(middleware.SecurityHeaders())

	// Repositories
	ticketRepo := repository.NewTicketRepository(r.db, r.logger)
	settingRepo := repository.NewSettingRepository(r.db, r.logger)
	userRepo := repository.NewUserRepository(r.db)

	// Infrastructure services
	store, err := storage.NewLocalStore(&r.cfg.Storage)
	if err != nil {
		return err
	}
	mailer := email.NewSMTPMailer(&r.cfg.Email)
	jwtService := infraauth.NewJWTService(
		r.cfg.Auth.JWT.Secret,
		r.cfg.Auth.JWT.AccessExpMinutes,
		r.cfg.Auth.JWT.AnonymousExpMinutes,
	)
	hasher := infraauth.NewBcryptPasswordHasher(r.cfg.Auth.BcryptCost)

	// Application services
	notifier := notification.NewService(
		settingRepo,
		ticketRepo,
		mailer,
		r.cfg.Server.BaseURL,
		r.cfg.Server.PublicBaseURL,
		r.logger,
	)
	authService := authapp.NewService(userRepo, hasher, jwtService, r.logger)
	terms := settingusecases.NewTermsProvider(settingRepo, markdown.NewService(), r.logger)

	// Use cases
	createTicketUC := ticketusecases.NewCreateTicketUseCase(ticketRepo, store, notifier, r.logger)
	updateTicketUC := ticketusecases.NewUpdateTicketUseCase(ticketRepo, r.logger)
	updateStatusUC := ticketusecases.NewUpdateStatusUseCase(ticketRepo, notifier, r.logger)
	getTicketUC := ticketusecases.NewGetTicketUseCase(ticketRepo, terms, r.logger)
	listTicketsUC := ticketusecases.NewListTicketsUseCase(ticketRepo, r.logger)
	deleteTicketUC := ticketusecases.NewDeleteTicketUseCase(ticketRepo, store, r.logger)
	oldTicketsUC := ticketusecases.NewOldTicketsCheckUseCase(notifier, r.logger)
	getSettingsUC := settingusecases.NewGetSettingsUseCase(settingRepo, r.logger)
	updateSettingsUC := settingusecases.NewUpdateSettingsUseCase(settingRepo, r.logger)

	r.OldTicketsCheck = oldTicketsUC

	// Handlers
	authMW := middleware.NewAuthMiddleware(jwtService, r.logger)
	ticketHandler := tickethandlers.NewTicketHandler(
		createTicketUC, updateTicketUC, updateStatusUC,
		getTicketUC, listTicketsUC, deleteTicketUC,
	)
	settingHandler := settinghandlers.NewSettingHandler(getSettingsUC, updateSettingsUC)
	authHandler := authhandlers.NewAuthHandler(authService)
	intakeHandler := publichandlers.NewIntakeHandler(authService, createTicketUC, getTicketUC)
	adminHandler := adminhandlers.NewAdminHandler(oldTicketsUC)

	// Routes
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// Attachment files are served straight off the local store.
	r.engine.Static(r.cfg.Storage.PublicURL, store.RootPath())

	api := r.engine.Group("/api")

	routes.SetupAuthRoutes(api, &routes.AuthRouteConfig{
		AuthHandler: authHandler,
	})
	routes.SetupTicketRoutes(api, &routes.TicketRouteConfig{
		TicketHandler:  ticketHandler,
		AuthMiddleware: authMW,
	})
	routes.SetupSettingRoutes(api, &routes.SettingRouteConfig{
		SettingHandler: settingHandler,
		AuthMiddleware: authMW,
	})
	routes.SetupPublicRoutes(api, &routes.PublicRouteConfig{
		IntakeHandler:  intakeHandler,
		AuthMiddleware: authMW,
		RateLimit:      middleware.IntakeRateLimit(r.limiter, &r.cfg.RateLimit, r.logger),
	})
	routes.SetupAdminRoutes(api, &routes.AdminRouteConfig{
		AdminHandler:   adminHandler,
		AuthMiddleware: authMW,
	})

	return nil
}
