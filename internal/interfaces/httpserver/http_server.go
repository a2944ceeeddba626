package httpserver

import (
	"context"
	"errors"
	"net"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	appdocs "jan-server/services/application-settings-api/docs/swagger"
	"jan-server/services/application-settings-api/internal/config"
	domain "jan-server/services/application-settings-api/internal/domain/customlabel"
	"jan-server/services/application-settings-api/internal/infrastructure/auth"
	"jan-server/services/application-settings-api/internal/infrastructure/metrics"
	"jan-server/services/application-settings-api/internal/interfaces/httpserver/handlers"
	"jan-server/services/application-settings-api/internal/interfaces/httpserver/middlewares"
	"jan-server/services/application-settings-api/internal/interfaces/httpserver/responses"
	"jan-server/services/application-settings-api/internal/interfaces/httpserver/routes"
	"jan-server/services/application-settings-api/internal/utils/platformerrors"
)

const (
	errUUIDDatabasePing  = "9a7d3c1e-5f2b-4e80-a6c4-2b8f0d1e7c53"
	errUUIDDatabaseLoad  = "0c4e8b2f-7a1d-4f93-b5e6-3d9a1c7f2e84"
	errUUIDRouteNotFound = "d2b6f0a8-4c3e-4a17-9e5d-8f1b7c2a6d09"
)

// HttpServer wraps the gin engine with graceful shutdown helpers.
type HttpServer struct {
	cfg    *config.Config
	engine *gin.Engine
	log    zerolog.Logger
}

// New constructs the HTTP server with default middleware and routes. db may be
// nil, in which case readiness does not depend on the database.
func New(cfg *config.Config, log zerolog.Logger, db *gorm.DB, customLabelService domain.Service, authValidator *auth.Validator) *HttpServer {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	appdocs.SwaggerInfo.BasePath = "/"

	engine := gin.New()
	engine.Use(
		gin.Recovery(),
		middlewares.RequestID(),
		middlewares.TracingMiddleware(cfg.ServiceName),
		middlewares.MetricsMiddleware(),
		middlewares.LoggingMiddleware(log),
	)

	handlerProvider := handlers.NewProvider(customLabelService)
	routeProvider := routes.NewRoutes(handlerProvider)
	registerCoreRoutes(engine, log, db)
	routeProvider.Register(engine, authValidator.Middleware())

	return &HttpServer{
		cfg:    cfg,
		engine: engine,
		log:    log,
	}
}

// Handler exposes the configured engine.
func (s *HttpServer) Handler() http.Handler {
	return s.engine
}

// Run starts the HTTP listener and handles graceful shutdown via context cancellation.
func (s *HttpServer) Run(ctx context.Context) error {
	listener, err := net.Listen("tcp", s.cfg.Addr())
	if err != nil {
		return err
	}
	return s.Serve(ctx, listener)
}

// Serve accepts connections on listener until ctx is cancelled.
func (s *HttpServer) Serve(ctx context.Context, listener net.Listener) error {
	server := &http.Server{
		Handler: s.engine,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", listener.Addr().String()).Msg("Application is running on: " + applicationURL(listener.Addr()))
		err := server.Serve(listener)
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

func applicationURL(addr net.Addr) string {
	host, port := "localhost", ""
	if tcp, ok := addr.(*net.TCPAddr); ok {
		if tcp.IP != nil && !tcp.IP.IsUnspecified() {
			host = tcp.IP.String()
		}
		port = strconv.Itoa(tcp.Port)
	}
	return "http://" + net.JoinHostPort(host, port)
}

func registerCoreRoutes(engine *gin.Engine, log zerolog.Logger, db *gorm.DB) {
	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	engine.GET("/readyz", func(c *gin.Context) {
		if err := pingDatabase(c.Request.Context(), db); err != nil {
			perr := platformerrors.AsError(c.Request.Context(), platformerrors.LayerHandler, err, "readiness check")
			platformerrors.LogError(log, perr)
			c.JSON(platformerrors.ErrorTypeToHTTPStatus(perr.Type), gin.H{"status": "unavailable", "error": perr.Message})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	engine.GET("/metrics", gin.WrapH(metrics.Handler()))

	swagger := ginSwagger.WrapHandler(swaggerFiles.Handler)
	engine.GET("/api/*any", func(c *gin.Context) {
		if c.Param("any") == "/" {
			c.Redirect(http.StatusMovedPermanently, "/api/index.html")
			return
		}
		swagger(c)
	})

	engine.NoRoute(func(c *gin.Context) {
		responses.HandleNewError(c, platformerrors.ErrorTypeNotFound, "route not found", errUUIDRouteNotFound)
	})
}

func pingDatabase(ctx context.Context, db *gorm.DB) error {
	if db == nil {
		return nil
	}
	sqlDB, err := db.DB()
	if err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeDatabaseError, "load database handle", err, errUUIDDatabaseLoad)
	}
	if err := sqlDB.PingContext(ctx); err != nil {
		return platformerrors.NewError(ctx, platformerrors.LayerInfrastructure, platformerrors.ErrorTypeDatabaseError, "ping database", err, errUUIDDatabasePing)
	}
	return nil
}
