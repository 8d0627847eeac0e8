package routes

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	_ "quicksizer/docs" // generated by swag init
	"quicksizer/internal/adapter/http/handlers"
	"quicksizer/internal/adapter/http/middleware"
	"quicksizer/internal/bootstrap"
	"quicksizer/internal/config"
	"quicksizer/internal/domain/pricing"
	"quicksizer/internal/usecase"
	"quicksizer/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
)

// Handlers groups everything the router mounts.
type Handlers struct {
	Health        *handlers.HealthHandler
	Questionnaire *handlers.QuestionnaireHandler
	Estimate      *handlers.EstimateHandler
}

// Run will start the server
func Run(ctx context.Context, cfg *config.Config, log *logger.Logger) error {
	stores, err := bootstrap.NewStores(ctx, cfg, log)
	if err != nil {
		return fmt.Errorf("storage: %w", err)
	}
	defer stores.Close()

	questionnaireUseCase := usecase.NewQuestionnaireUseCase(stores.Questionnaires, log)
	estimateUseCase := usecase.NewEstimateUseCase(stores.Questionnaires, stores.Estimates, pricing.NewEngine(), log)

	router := NewRouter(cfg, log, Handlers{
		Health:        handlers.NewHealthHandler(),
		Questionnaire: handlers.NewQuestionnaireHandler(questionnaireUseCase),
		Estimate:      handlers.NewEstimateHandler(estimateUseCase),
	})

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTPPort),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		log.Info("http server listening", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("failed to startup the application: %w", err)
	case <-ctx.Done():
		log.Info("shutting down http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func NewRouter(cfg *config.Config, log *logger.Logger, h Handlers) *gin.Engine {
	router := gin.New()
	setMiddlewares(router, cfg, log)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1, h.Health)
	addQuestionnaireRoutes(v1, h.Questionnaire, h.Estimate)
	addResultRoutes(v1, h.Estimate)
	return router
}

func setMiddlewares(router *gin.Engine, cfg *config.Config, log *logger.Logger) {
	router.Use(middleware.Recovery(log))
	router.Use(middleware.RequestID())
	if cfg.Tracing.Enabled {
		router.Use(otelgin.Middleware(cfg.Tracing.ServiceName))
	}
	router.Use(middleware.RequestLogger(log))
	router.Use(middleware.CORS(cfg.CORSOrigins))
}
