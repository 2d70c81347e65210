package routes

import (
	"context"
	"errors"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/aicedeno1/quotations-business-rules/docs"
	"github.com/aicedeno1/quotations-business-rules/internal/adapter/http/handlers"
	"github.com/aicedeno1/quotations-business-rules/internal/adapter/persistence/repository"
	"github.com/aicedeno1/quotations-business-rules/internal/infrastructure/config"
	"github.com/aicedeno1/quotations-business-rules/internal/infrastructure/metrics"
	"github.com/aicedeno1/quotations-business-rules/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

const shutdownTimeout = 10 * time.Second

// Dependencies are the collaborators the router is built from. Metrics may be
// nil, in which case /metrics is not exposed.
type Dependencies struct {
	Reports    usecase.IReportUseCase
	Quotations usecase.IQuotationUseCase
	Metrics    *metrics.Recorder
	Logger     zerolog.Logger
}

// Run wires the store selected by cfg and serves HTTP until SIGINT/SIGTERM.
func Run(ctx context.Context, cfg *config.Config, logger zerolog.Logger) error {
	if cfg.GinMode != "" {
		gin.SetMode(cfg.GinMode)
	}

	repo, closeStore, err := repository.OpenQuotationStore(logger.WithContext(ctx), cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := closeStore(); err != nil {
			logger.Error().Err(err).Msg("failed to close quotation store")
		}
	}()

	var rec *metrics.Recorder
	if cfg.MetricsEnabled {
		rec = metrics.NewRecorder()
	}

	router := NewRouter(Dependencies{
		Reports:    usecase.NewReportUseCase(repo),
		Quotations: usecase.NewQuotationUseCase(repo),
		Metrics:    rec,
		Logger:     logger,
	})

	server := &http.Server{
		Addr:              net.JoinHostPort("", cfg.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	return serve(ctx, server, logger)
}

// NewRouter registers every route on a fresh engine.
func NewRouter(deps Dependencies) *gin.Engine {
	router := gin.New()
	router.Use(recovery(deps.Logger))
	router.Use(requestLogger(deps.Logger))

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if deps.Metrics != nil {
		router.GET("/metrics", gin.WrapH(deps.Metrics.Handler()))
	}

	addHomeRoute(router)

	reportHandler := handlers.NewReportHandler(deps.Reports, deps.Metrics)
	quotationHandler := handlers.NewQuotationHandler(deps.Quotations)

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuotationRoutes(v1, reportHandler, quotationHandler)

	return router
}

func serve(ctx context.Context, server *http.Server, logger zerolog.Logger) error {
	serverErrors := make(chan error, 1)
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(shutdown)

	go func() {
		logger.Info().Str("addr", server.Addr).Msg("starting server")
		serverErrors <- server.ListenAndServe()
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-shutdown:
	case <-ctx.Done():
	}
	logger.Info().Msg("shutdown initiated")

	// Give outstanding requests a deadline for completion.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error().Err(err).Msg("graceful shutdown failed")
		return server.Close()
	}
	return nil
}
