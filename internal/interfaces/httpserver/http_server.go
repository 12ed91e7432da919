package httpserver

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	wellboredocs "github.com/norce-drilling/wellbore-api/docs/swagger"
	"github.com/norce-drilling/wellbore-api/internal/config"
	"github.com/norce-drilling/wellbore-api/internal/domain/usage"
	"github.com/norce-drilling/wellbore-api/internal/domain/wellbore"
	"github.com/norce-drilling/wellbore-api/internal/infrastructure/observability"
	"github.com/norce-drilling/wellbore-api/internal/interfaces/httpserver/handlers"
	"github.com/norce-drilling/wellbore-api/internal/interfaces/httpserver/middlewares"
	"github.com/norce-drilling/wellbore-api/internal/interfaces/httpserver/routes"
)

// HttpServer wraps the gin engine with graceful shutdown helpers.
type HttpServer struct {
	cfg    *config.Config
	engine *gin.Engine
	log    zerolog.Logger
}

// New constructs the HTTP server with default middleware and routes.
func New(cfg *config.Config, log zerolog.Logger, wellBoreService wellbore.Service, tracker *usage.Tracker) *HttpServer {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	wellboredocs.SwaggerInfo.BasePath = cfg.APIBasePath

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(middlewares.RequestID())
	engine.Use(middlewares.Tracing(observability.TracerName))
	engine.Use(middlewares.RequestLogger(log.With().Str("component", "http").Logger()))
	engine.Use(middlewares.Metrics())
	engine.Use(middlewares.CORS(middlewares.DefaultCORSConfig()))

	handlerProvider := handlers.NewProvider(wellBoreService, tracker)
	routeProvider := routes.NewProvider(handlerProvider, log)
	registerCoreRoutes(engine, cfg)
	routeProvider.Register(engine, cfg.APIBasePath)

	return &HttpServer{
		cfg:    cfg,
		engine: engine,
		log:    log,
	}
}

// Handler exposes the engine, mainly for tests.
func (s *HttpServer) Handler() http.Handler {
	return s.engine
}

// Run starts the HTTP listener and handles graceful shutdown via context cancellation.
func (s *HttpServer) Run(ctx context.Context) error {
	server := &http.Server{
		Addr:    s.cfg.Addr(),
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.cfg.Addr()).Str("base_path", s.cfg.APIBasePath).Msg("HTTP server listening")
		err := server.ListenAndServe()
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			s.log.Error().Err(err).Msg("HTTP server error")
			errCh <- err
			return
		}
		errCh <- nil
	}()

	select {
	case <-ctx.Done():
		s.log.Info().Msg("Context cancelled, shutting down HTTP server")
	case err := <-errCh:
		return err
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

func registerCoreRoutes(engine *gin.Engine, cfg *config.Config) {
	engine.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"service": cfg.ServiceName,
			"status":  "ok",
		})
	})

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	engine.GET("/readyz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))
	engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
