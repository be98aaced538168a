package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/saiisback/capy/internal/config"
	"github.com/saiisback/capy/internal/infrastructure/blockchain"
	"github.com/saiisback/capy/internal/infrastructure/database"
	"github.com/saiisback/capy/internal/infrastructure/jobs"
	"github.com/saiisback/capy/internal/infrastructure/repositories"
	"github.com/saiisback/capy/internal/interfaces/http/handlers"
	"github.com/saiisback/capy/internal/interfaces/http/middleware"
	"github.com/saiisback/capy/internal/usecases"
	"github.com/saiisback/capy/pkg/jwt"
	"github.com/saiisback/capy/pkg/logger"
	"github.com/saiisback/capy/pkg/redis"
)

var (
	loadDotenv      = godotenv.Load
	loadCfg         = config.Load
	initLog         = logger.Init
	initRedis       = redis.Init
	openDB          = database.Open
	migrateDB       = database.Migrate
	newSessionStore = redis.NewSessionStore
	runServer       = func(r *gin.Engine, port string) error { return r.Run(":" + port) }
)

func main() {
	if err := runMainProcess(); err != nil {
		log.Fatal(err)
	}
}

func runMainProcess() error {
	// Load .env file
	if err := loadDotenv(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	// Load configuration
	cfg := loadCfg()

	// Initialize Logger
	initLog(cfg.Server.Env)
	logger.Info(context.Background(), "Logger initialized", zap.String("env", cfg.Server.Env))

	if !cfg.Chain.ContractDeployed() {
		logger.Warn(context.Background(), "Contract address looks undeployed, on-chain calls will fail",
			zap.String("address", cfg.Chain.ContractAddress))
	}

	// Initialize Redis
	if err := initRedis(cfg.Redis.URL, cfg.Redis.PASSWORD); err != nil {
		logger.Error(context.Background(), "Failed to initialize Redis", zap.Error(err))
		return fmt.Errorf("failed to initialize redis: %w", err)
	}
	defer redis.Close()
	logger.Info(context.Background(), "Redis initialized")

	// Set Gin mode
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database and apply schema
	db, err := openDB(cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer closeDB(db)

	if err := migrateDB(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	// Initialize repositories and seed the launch catalog
	catalogRepo := repositories.NewCatalogRepository(db)
	if err := repositories.SeedCatalog(context.Background(), catalogRepo); err != nil {
		return fmt.Errorf("failed to seed catalog: %w", err)
	}

	// Initialize session store and token service
	sessionStore, err := newSessionStore(cfg.Security.SessionEncryptionKey)
	if err != nil {
		return fmt.Errorf("failed to initialize session store: %w", err)
	}
	tokenService := jwt.NewSessionTokenService(cfg.JWT.Secret, cfg.JWT.SessionExpiry)

	// Initialize chain clients
	nodeClient := blockchain.NewNodeClient(cfg.Chain.NodeURL, cfg.Chain.TxPollInterval, cfg.Chain.TxWaitTimeout)
	walletBridge := blockchain.NewHTTPWalletBridge(cfg.Wallet.BridgeURL, cfg.Wallet.Timeout)
	contractClient := blockchain.NewContractClient(nodeClient, walletBridge, cfg.Chain.ContractAddress)

	// Initialize usecases
	walletUsecase := usecases.NewWalletUsecase(walletBridge, sessionStore, tokenService, cfg.JWT.SessionExpiry)
	invitationUsecase := usecases.NewInvitationUsecase(contractClient)
	petUsecase := usecases.NewPetUsecase(contractClient)
	marketplaceUsecase := usecases.NewMarketplaceUsecase(contractClient, catalogRepo)
	inventoryUsecase := usecases.NewInventoryUsecase(contractClient, catalogRepo)
	arcadeUsecase := usecases.NewArcadeUsecase(contractClient)

	// Initialize handlers
	walletHandler := handlers.NewWalletHandler(walletUsecase)
	stateHandler := handlers.NewStateHandler(invitationUsecase, petUsecase)
	invitationHandler := handlers.NewInvitationHandler(invitationUsecase)
	petHandler := handlers.NewPetHandler(petUsecase)
	marketplaceHandler := handlers.NewMarketplaceHandler(marketplaceUsecase)
	inventoryHandler := handlers.NewInventoryHandler(inventoryUsecase)
	arcadeHandler := handlers.NewArcadeHandler(arcadeUsecase)

	// Start background jobs
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	syncJob := jobs.NewCatalogSyncJob(catalogRepo, contractClient, cfg.Chain.CatalogSyncTick)
	go syncJob.Start(ctx)

	// Initialize router
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestIDMiddleware())
	r.Use(middleware.LoggerMiddleware())

	applyCORSMiddleware(r)
	registerHealthRoute(r)
	registerAPIV1Routes(r, routeDeps{
		walletHandler:      walletHandler,
		stateHandler:       stateHandler,
		invitationHandler:  invitationHandler,
		petHandler:         petHandler,
		marketplaceHandler: marketplaceHandler,
		inventoryHandler:   inventoryHandler,
		arcadeHandler:      arcadeHandler,
		sessionMiddleware:  middleware.SessionMiddleware(walletUsecase),
		optionalSession:    middleware.OptionalSessionMiddleware(walletUsecase),
	})

	// Graceful shutdown
	go func() {
		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
		<-quit
		log.Println("🛑 Shutting down server...")
		syncJob.Stop()
		cancel()
	}()

	// Start server
	log.Printf("🚀 CapyPets backend starting on port %s", cfg.Server.Port)
	log.Printf("📚 API: http://localhost:%s/api/v1", cfg.Server.Port)
	log.Printf("❤️ Health: http://localhost:%s/health", cfg.Server.Port)

	if err := runServer(r, cfg.Server.Port); err != nil {
		return fmt.Errorf("failed to start server: %w", err)
	}
	return nil
}

func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}
}
