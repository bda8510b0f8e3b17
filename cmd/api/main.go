package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerfiles "github.com/swaggo/files"
	ginswagger "github.com/swaggo/gin-swagger"

	_ "github.com/rafabene/propfinder-backend/docs"
	httphandlers "github.com/rafabene/propfinder-backend/internal/handlers/http"
	"github.com/rafabene/propfinder-backend/internal/handlers/middleware"
	"github.com/rafabene/propfinder-backend/internal/infrastructure/config"
	"github.com/rafabene/propfinder-backend/internal/infrastructure/i18n"
	"github.com/rafabene/propfinder-backend/internal/infrastructure/logging"
	"github.com/rafabene/propfinder-backend/internal/infrastructure/persistence/postgres"
	"github.com/rafabene/propfinder-backend/internal/services"
)

// @title           PropFinder API
// @version         1.0
// @description     API do marketplace imobiliário: imóveis, agentes, blog e administração.

// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
// @description Token JWT no formato: Bearer {token}
func main() {
	// Carregar configurações
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load config:", err)
	}

	// Inicializar logger
	logger := logging.NewSlogLogger(cfg.Logging.Level)
	logger.Info("starting propfinder backend",
		"env", cfg.Env,
		"version", "dev",
	)

	// Conectar ao banco de dados
	db, err := postgres.NewDatabaseConnection(&cfg.Database, logger)
	if err != nil {
		logger.Error("failed to connect to database", "error", err)
		log.Fatal(err)
	}

	// Inicializar i18n
	i18nService, err := i18n.NewService("./internal/infrastructure/i18n/locales", "en")
	if err != nil {
		logger.Error("failed to initialize i18n", "error", err)
		log.Fatal(err)
	}
	logger.Info("i18n initialized",
		"default_language", i18nService.GetDefaultLanguage(),
		"supported_languages", i18nService.GetSupportedLanguages(),
	)

	// Inicializar repositories
	userRepo := postgres.NewUserRepository(db)
	profileRepo := postgres.NewAgentProfileRepository(db)
	propertyRepo := postgres.NewPropertyRepository(db)
	blogRepo := postgres.NewBlogPostRepository(db)
	uow := postgres.NewUnitOfWork(db)

	// Inicializar services
	authService := services.NewAuthService(userRepo, logger, cfg.JWT.Secret, cfg.JWT.AccessExpiry)
	agentService := services.NewAgentService(profileRepo, userRepo, uow, logger)
	propertyService := services.NewPropertyService(propertyRepo, logger)
	blogService := services.NewBlogService(blogRepo, logger)
	adminService := services.NewAdminService(userRepo, profileRepo, propertyRepo, blogRepo, uow, logger)

	// Inicializar handlers
	authHandler := httphandlers.NewAuthHandler(authService, logger)
	agentHandler := httphandlers.NewAgentHandler(agentService, logger)
	propertyHandler := httphandlers.NewPropertyHandler(propertyService, logger)
	blogHandler := httphandlers.NewBlogHandler(blogService, logger)
	adminHandler := httphandlers.NewAdminHandler(adminService, agentService, logger)

	// Setup Gin
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.Default()

	// Middleware global para adicionar base URL ao contexto
	router.Use(func(c *gin.Context) {
		c.Set("base_url", cfg.Server.BaseURL)
		c.Next()
	})

	// Middleware i18n
	i18nMiddleware := middleware.NewI18nMiddleware(i18nService)
	router.Use(i18nMiddleware.DetectLanguage())

	// Middleware CORS
	corsConfig := cors.DefaultConfig()
	if len(cfg.CORS.AllowedOrigins) == 1 && cfg.CORS.AllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORS.AllowedOrigins
		corsConfig.AllowCredentials = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Middleware de identidade: toda rota enxerga a identidade resolvida
	// (ou anônima); a autorização acontece na camada de serviço
	authMiddleware := middleware.NewAuthMiddleware(authService)
	router.Use(authMiddleware.ResolveIdentity())

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status": "ok",
			"env":    cfg.Env,
		})
	})

	// Swagger UI
	router.GET("/swagger/*any", ginswagger.WrapHandler(swaggerfiles.Handler))

	// API routes
	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
		}

		properties := api.Group("/properties")
		{
			properties.GET("", propertyHandler.ListProperties)
			properties.POST("", propertyHandler.CreateProperty)
			properties.GET("/:id", propertyHandler.GetProperty)
			properties.PUT("/:id", propertyHandler.UpdateProperty)
			properties.DELETE("/:id", propertyHandler.DeleteProperty)
		}

		agents := api.Group("/agents")
		{
			agents.GET("", agentHandler.ListAgents)
			agents.POST("", agentHandler.CreateAgent)
			agents.GET("/:id", agentHandler.GetAgent)
		}

		blog := api.Group("/blog")
		{
			blog.GET("", blogHandler.ListPosts)
			blog.POST("", blogHandler.CreatePost)
			blog.GET("/:slug", blogHandler.GetPost)
			blog.PUT("/:slug", blogHandler.UpdatePost)
			blog.DELETE("/:slug", blogHandler.DeletePost)
		}

		admin := api.Group("/admin")
		{
			admin.GET("/stats", adminHandler.GetStats)
			admin.GET("/users", adminHandler.ListUsers)
			admin.PUT("/users/:id", adminHandler.UpdateUser)
			admin.DELETE("/users/:id", adminHandler.DeleteUser)
			admin.GET("/agents", adminHandler.ListAgents)
			admin.DELETE("/agents/:id", adminHandler.DeleteAgent)
		}
	}

	// HTTP Server
	srv := &http.Server{
		Addr:              cfg.Server.Host + ":" + cfg.Server.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	go func() {
		logger.Info("server starting",
			"host", cfg.Server.Host,
			"port", cfg.Server.Port,
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			log.Fatal(err)
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}

	logger.Info("server exited")
}
