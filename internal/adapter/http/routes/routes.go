package routes

import (
	"context"
	"log"
	"strconv"

	_ "oscell/docs" // This will be auto-generated
	"oscell/internal/adapter/http/handlers"
	"oscell/internal/adapter/http/middleware"
	"oscell/internal/config"
	"oscell/internal/infrastructure/auth"
	"oscell/internal/infrastructure/realtime"
	"oscell/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

// Run will start the server
func Run(cfg config.Config) {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	if err := getRoutes(context.Background(), router, cfg); err != nil {
		log.Fatalf("Failed to wire the application: %v", err.Error())
	}

	err := router.Run(":" + strconv.Itoa(cfg.Port))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes(ctx context.Context, engine *gin.Engine, cfg config.Config) error {
	counterRepo, serviceRepo, err := newRepositories(ctx, cfg)
	if err != nil {
		return err
	}

	hub := realtime.NewHub()
	allocator := usecase.NewSequenceAllocatorUseCase(counterRepo, cfg.InstallationID, cfg.CounterSeed)
	ledger := usecase.NewServiceLedgerUseCase(serviceRepo, hub, cfg.InstallationID)
	workOrders := newWorkOrderUseCase(ctx, cfg, allocator)
	if cfg.Auth.UsesDefaultSecret() {
		log.Printf("[auth][config] WARNING JWT_SECRET not set, signing tokens with the public development secret")
	}
	tokens := auth.New(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	workOrderHandler := handlers.NewWorkOrderHandler(allocator, workOrders)
	serviceRecordHandler := handlers.NewServiceRecordHandler(ledger)
	serviceStreamHandler := handlers.NewServiceStreamHandler(ledger)
	authHandler := handlers.NewAuthHandler(tokens)

	// Rotas publicas
	v1 := engine.Group("/v1")
	addPingRoutes(v1)
	addAuthRoutes(v1, authHandler)

	// Rotas autenticadas
	requireSubject := middleware.RequireSubject(tokens)
	addWorkOrderRoutes(v1, requireSubject, workOrderHandler)
	addServiceRoutes(v1, requireSubject, serviceRecordHandler, serviceStreamHandler)
	return nil
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
