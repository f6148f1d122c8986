package main

import (
	"context"
	"database/sql"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/lib/pq"

	httpapi "rentalcar-backend/internal/api/http"
	"rentalcar-backend/internal/config"
	"rentalcar-backend/internal/logger"
	"rentalcar-backend/internal/repository"
	"rentalcar-backend/internal/repository/memory"
	"rentalcar-backend/internal/repository/postgres"
	"rentalcar-backend/internal/security"
	"rentalcar-backend/internal/service"
)

func main() {
	// Parse command-line flags
	configPath := flag.String("config", "config/config.dev.yaml", "Path to configuration file")
	flag.Parse()

	// Load configuration
	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Initialize(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting Rental Car Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress(), "storage", cfg.Storage.Type)

	// Initialize Storage
	var (
		customerRepo repository.CustomerRepository
		carRepo      repository.CarRepository
		rentalRepo   repository.RentalRepository
		uow          repository.UnitOfWork
	)

	switch cfg.Storage.Type {
	case config.StorageTypePostgres:
		logger.Info("Connecting to database...", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database)
		db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
		if err != nil {
			logger.Error("Failed to connect to database", "error", err)
			log.Fatalf("Failed to connect to database: %v", err)
		}
		defer db.Close()

		if err := db.Ping(); err != nil {
			logger.Error("Failed to ping database", "error", err)
			log.Fatalf("Failed to ping database: %v", err)
		}
		logger.Info("Database connection established")

		store := postgres.NewStore(db)
		customerRepo = store.CustomerRepository
		carRepo = store.CarRepository
		rentalRepo = store.RentalRepository
		uow = store.UnitOfWork()

	default:
		logger.Info("Using in-memory storage")
		store := memory.NewStore()
		if err := store.Seed(context.Background()); err != nil {
			logger.Error("Failed to seed in-memory store", "error", err)
			log.Fatalf("Failed to seed in-memory store: %v", err)
		}
		customerRepo = store.CustomerRepository
		carRepo = store.CarRepository
		rentalRepo = store.RentalRepository
		uow = store.UnitOfWork()
	}

	// Initialize Security
	tokenManager := security.NewTokenManager(
		cfg.JWT.Secret,
		time.Duration(cfg.JWT.AccessTokenExpiry)*time.Minute,
		time.Duration(cfg.JWT.RefreshTokenExpiry)*time.Minute,
	)

	// Initialize Email Service
	var emailSvc service.EmailService
	if cfg.SMTP.Enabled {
		emailSvc = service.NewEmailService(
			cfg.SMTP.Host,
			cfg.SMTP.Port,
			cfg.SMTP.User,
			cfg.SMTP.Password,
			cfg.SMTP.From,
		)
	} else {
		emailSvc = service.NewNoopEmailService()
	}

	// Initialize Services
	customerSvc := service.NewCustomerService(customerRepo)
	carSvc := service.NewCarService(carRepo)
	rentalSvc := service.NewRentalService(rentalRepo, carRepo, customerRepo, uow, emailSvc)

	// Set up HTTP server
	router := httpapi.NewRouter(customerSvc, carSvc, rentalSvc, tokenManager)
	server := &http.Server{
		Addr:         cfg.GetServerAddress(),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", "error", err)
			log.Fatalf("Failed to serve: %v", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	// Graceful shutdown
	logger.Info("Shutting down HTTP server...")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("Failed to shut down cleanly", "error", err)
	}
	logger.Info("Server stopped. Goodbye!")
}
