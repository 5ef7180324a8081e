package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prefeitura-rio/brado/internal/config"
	"github.com/prefeitura-rio/brado/internal/handlers"
	"github.com/prefeitura-rio/brado/internal/logging"
	"github.com/prefeitura-rio/brado/internal/middleware"
	"github.com/prefeitura-rio/brado/internal/observability"
	"github.com/prefeitura-rio/brado/internal/validators"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"

	_ "github.com/prefeitura-rio/brado/docs"
)

// @title           Brado API
// @version         1.0
// @description     API para validação, formatação e geração de CPFs e CNPJs. Os documentos podem ser enviados sem pontuação ou com pontuação (masked=true). Nos CNPJs com pontuação a barra deve ser codificada como %2F no caminho.

// @contact.name   API Support
// @contact.url    http://www.swagger.io/support
// @contact.email  support@swagger.io

// @license.name  Apache 2.0
// @license.url   http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:8080
// @BasePath  /v1

// @tag.name cpf
// @tag.description Validação de CPF

// @tag.name cnpj
// @tag.description Validação de CNPJ

// @tag.name documents
// @tag.description Validação, formatação e geração de documentos

// @tag.name health
// @tag.description Health check operations

func main() {
	// Initialize logger first
	if err := logging.InitLogger(); err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() { _ = logging.Logger.Sync() }()

	// Load configuration
	if err := config.LoadConfig(); err != nil {
		logging.Logger.Fatal("failed to load config", zap.Error(err))
	}

	// Initialize observability
	observability.InitTracer()
	defer observability.ShutdownTracer()

	if err := validators.RegisterWithGin(); err != nil {
		logging.Logger.Fatal("failed to register document validators", zap.Error(err))
	}

	if config.AppConfig.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := setupRouter(config.AppConfig, handlers.NewDocumentHandlers(logging.Logger))

	// Create server with timeouts
	srv := &http.Server{
		Addr:         fmt.Sprintf(":%d", config.AppConfig.Port),
		Handler:      router,
		ReadTimeout:  config.AppConfig.ReadTimeout,
		WriteTimeout: config.AppConfig.WriteTimeout,
		IdleTimeout:  config.AppConfig.IdleTimeout,
	}

	// Start server in a goroutine
	go func() {
		logging.Logger.Info("starting server",
			zap.Int("port", config.AppConfig.Port),
			zap.String("environment", config.AppConfig.Environment),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logging.Logger.Fatal("failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	logging.Logger.Info("shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logging.Logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logging.Logger.Info("server exited gracefully")
}

// setupRouter builds the engine with middleware and every route
func setupRouter(cfg *config.Config, h *handlers.DocumentHandlers) *gin.Engine {
	router := gin.New()
	// Masked CNPJs arrive with the slash escaped as %2F
	router.UseRawPath = true

	corsConfig := cors.DefaultConfig()
	if cfg == nil || len(cfg.CORSAllowedOrigins) == 0 || cfg.CORSAllowedOrigins[0] == "*" {
		corsConfig.AllowAllOrigins = true
	} else {
		corsConfig.AllowOrigins = cfg.CORSAllowedOrigins
	}
	corsConfig.AddAllowHeaders(middleware.RequestIDHeader)
	corsConfig.AddExposeHeaders(middleware.RequestIDHeader)

	router.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.RequestTiming(),
		middleware.RequestLogger(),
		middleware.RequestTracker(),
		cors.New(corsConfig),
	)

	// Metrics endpoint
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// API v1 routes
	v1 := router.Group("/v1")
	{
		v1.GET("/health", h.HealthCheck)

		v1.GET("/cpf/:document", h.ValidateCPF)
		v1.GET("/cnpj/:document", h.ValidateCNPJ)
		v1.POST("/validate", h.Validate)
		v1.POST("/format", h.Format)
		v1.GET("/generate/:type", h.GenerateDocument)
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	return router
}
