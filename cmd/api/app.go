package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/Qathar8/ums-portal/internal/adapter/api/controller"
	"github.com/Qathar8/ums-portal/internal/adapter/api/route"
	"github.com/Qathar8/ums-portal/internal/infrastructure/storage"
	"github.com/Qathar8/ums-portal/internal/state"
	"github.com/Qathar8/ums-portal/pkg/logger"
)

// App representa a aplicação e suas dependências
type App struct {
	router    *gin.Engine
	store     storage.Store
	container *state.Container
	log       logger.Logger
}

// NewApp cria uma nova instância do aplicativo
func NewApp() (*App, error) {
	log := logger.NewLogger()

	// Configurar armazenamento persistente
	store, err := storage.NewStoreFromEnv()
	if err != nil {
		return nil, err
	}

	// Hidratar o contêiner de estado
	container, err := state.New(store, log)
	if err != nil {
		store.Close()
		return nil, err
	}

	ctx := context.Background()
	if err := container.Bootstrap(ctx); err != nil {
		store.Close()
		return nil, err
	}
	if err := container.SeedDemoData(ctx); err != nil {
		store.Close()
		return nil, err
	}

	// Criar controllers
	authController := controller.NewAuthController(container)
	userController := controller.NewUserController(container)
	shopController := controller.NewShopController(container)
	productController := controller.NewProductController(container)
	saleController := controller.NewSaleController(container)
	expenseController := controller.NewExpenseController(container)
	transferController := controller.NewTransferController(container)
	settingsController := controller.NewSettingsController(container)
	notificationController := controller.NewNotificationController(container)
	activityController := controller.NewActivityController(container)
	dashboardController := controller.NewDashboardController(container)

	// Configurar router
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	// CORS para o frontend da SPA
	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// Swagger
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api/v1")

	// Health check
	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	// Rotas dos módulos
	route.SetupAuthRoutes(api, authController)
	route.SetupUserRoutes(api, userController)
	route.SetupShopRoutes(api, shopController)
	route.SetupProductRoutes(api, productController)
	route.SetupSaleRoutes(api, saleController)
	route.SetupExpenseRoutes(api, expenseController)
	route.SetupTransferRoutes(api, transferController)
	route.SetupSettingsRoutes(api, settingsController)
	route.SetupNotificationRoutes(api, notificationController)
	route.SetupActivityRoutes(api, activityController)
	route.SetupDashboardRoutes(api, dashboardController)

	return &App{
		router:    router,
		store:     store,
		container: container,
		log:       log,
	}, nil
}

// Run inicia o servidor HTTP e bloqueia até o desligamento
func (a *App) Run() error {
	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	server := &http.Server{
		Addr:    ":" + port,
		Handler: a.router,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("Servidor HTTP iniciado", "port", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		a.log.Info("Desligando servidor", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return server.Shutdown(ctx)
}

// Close libera os recursos da aplicação
func (a *App) Close() {
	if a.store != nil {
		a.store.Close()
	}
}
