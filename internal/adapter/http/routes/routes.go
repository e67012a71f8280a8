package routes

import (
	"context"
	"fmt"
	"net/http"
	"time"

	_ "orcafacil/docs" // swagger definitions
	"orcafacil/internal/adapter/http/handlers"
	"orcafacil/internal/adapter/persistence/repository"
	"orcafacil/internal/adapter/storage"
	"orcafacil/internal/infrastructure/config"
	"orcafacil/internal/infrastructure/database"
	"orcafacil/internal/infrastructure/objectstore"
	"orcafacil/internal/pdf"
	"orcafacil/internal/render"
	"orcafacil/internal/usecase"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Run wires the dependency graph from configuration and starts the HTTP
// server. It blocks until the server stops.
func Run(cfg config.Application) error {
	router, err := NewRouter(context.Background(), cfg)
	if err != nil {
		return err
	}

	addr := fmt.Sprintf(":%d", cfg.Port)
	log.Infof("listening on %s", addr)
	return router.Run(addr)
}

// NewRouter builds the gin engine with every dependency resolved. Split out
// from Run so tests can exercise the wiring without binding a port.
func NewRouter(ctx context.Context, cfg config.Application) (*gin.Engine, error) {
	ddb, err := database.NewDynamoDBClient(ctx, cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("dynamodb client: %w", err)
	}
	s3c, err := objectstore.NewS3Client(ctx, cfg.AWS)
	if err != nil {
		return nil, fmt.Errorf("s3 client: %w", err)
	}

	budgetRepo := repository.NewBudgetDynamoRepository(ddb, cfg.AWS.BudgetsTable)
	userRepo := repository.NewUserDynamoRepository(ddb, cfg.AWS.UsersTable)
	blobStore := storage.NewS3BlobStore(s3c, cfg.AWS.PDFBucket)

	budgetUseCase := usecase.NewBudgetUseCase(budgetRepo, blobStore, pdf.NewBuilder())
	dashboardUseCase := usecase.NewDashboardUseCase(budgetRepo)
	authUseCase := usecase.NewAuthUseCase(userRepo, cfg.Auth.SessionSecret, time.Duration(cfg.Auth.TokenTTLHours)*time.Hour)

	budgetHandler := handlers.NewBudgetHandler(budgetUseCase, render.NewHTMLRenderer())
	dashboardHandler := handlers.NewDashboardHandler(dashboardUseCase)
	authHandler := handlers.NewAuthHandler(authUseCase)
	fileHandler := handlers.NewFileHandler(blobStore)

	router := gin.New()
	setMiddlewares(router)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler, authUseCase)

	guarded := v1.Group("", handlers.SessionMiddleware(authUseCase))
	addBudgetRoutes(guarded, budgetHandler, dashboardHandler, fileHandler)

	return router, nil
}

func setMiddlewares(router *gin.Engine) {
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Errorf("recovered from panic: %v", recovered)
		c.AbortWithStatus(http.StatusInternalServerError)
	}))
}
