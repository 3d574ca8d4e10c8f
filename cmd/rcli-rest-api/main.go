// cmd/rcli-rest-api/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	v1 "github.com/luffy2025/rcli/internal/api/rest/v1"
	"github.com/luffy2025/rcli/internal/app"
	"github.com/luffy2025/rcli/internal/domain/keys"
	"github.com/luffy2025/rcli/internal/infrastructure/connector"
	"github.com/luffy2025/rcli/internal/infrastructure/cryptography"
	"github.com/luffy2025/rcli/internal/infrastructure/persistence"
	"github.com/luffy2025/rcli/internal/pkg/config"
	"github.com/luffy2025/rcli/internal/pkg/logger"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Application error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	restConfig, err := config.InitializeRestConfig(config.RestConfigPath())
	if err != nil {
		return fmt.Errorf("failed to initialize config: %w", err)
	}

	if err := logger.InitLogger(&restConfig.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}

	log, err := logger.GetLogger()
	if err != nil {
		return fmt.Errorf("failed to get logger: %w", err)
	}

	db, err := persistence.NewDBConnection(restConfig.Database, log)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer func() {
		if err := persistence.CloseDB(db); err != nil {
			log.Error("Failed to close database: ", err)
		}
	}()

	services, err := initializeApplicationServices(restConfig, db, log)
	if err != nil {
		return fmt.Errorf("failed to initialize services: %w", err)
	}

	return startServerWithGracefulShutdown(restConfig, services, log)
}

type appServices struct {
	signingKeyUpload   keys.SigningKeyUploadService
	signingKeyMetadata keys.SigningKeyMetadataService
	textSigning        keys.TextSigningService
}

// initializeApplicationServices wires the repository, the key store and the services
func initializeApplicationServices(cfg *config.RestConfig, db *gorm.DB, log logger.Logger) (*appServices, error) {
	signingKeyRepo, err := persistence.NewGormSigningKeyRepository(db, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create signing key repository: %w", err)
	}

	vaultConnector, err := connector.NewLocalVaultConnector(&cfg.KeyStore, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create key store: %w", err)
	}

	textService, err := app.NewTextService(cryptography.NewKeyGenerator(log), log)
	if err != nil {
		return nil, fmt.Errorf("failed to create text service: %w", err)
	}

	signingKeyUploadService, err := app.NewSigningKeyUploadService(vaultConnector, signingKeyRepo, textService, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create signing key upload service: %w", err)
	}

	signingKeyMetadataService, err := app.NewSigningKeyMetadataService(vaultConnector, signingKeyRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create signing key metadata service: %w", err)
	}

	textSigningService, err := app.NewTextSigningService(vaultConnector, signingKeyRepo, log)
	if err != nil {
		return nil, fmt.Errorf("failed to create text signing service: %w", err)
	}

	log.Info("Application services initialized successfully")
	return &appServices{
		signingKeyUpload:   signingKeyUploadService,
		signingKeyMetadata: signingKeyMetadataService,
		textSigning:        textSigningService,
	}, nil
}

// startServerWithGracefulShutdown starts the HTTP server and handles graceful shutdown
func startServerWithGracefulShutdown(cfg *config.RestConfig, services *appServices, log logger.Logger) error {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	if cfg.RateLimit.Enabled() {
		r.Use(v1.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst))
	}

	v1.SetupRoutes(r,
		services.signingKeyUpload,
		services.signingKeyMetadata,
		services.textSigning,
	)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second, // Prevent Slowloris attack
	}

	serverErrors := make(chan error, 1)

	go func() {
		log.Info("Starting server on port ", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErrors <- fmt.Errorf("server failed to start: %w", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		return err
	case sig := <-quit:
		log.Info(fmt.Sprintf("Received signal %v, initiating graceful shutdown", sig))
	}

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	log.Info("Shutting down server...")
	if err := srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("server forced to shutdown: %w", err)
	}

	log.Info("Server stopped gracefully")
	return nil
}
