package main

import (
	"database/sql"
	"flag"
	"log"
	"net/http"

	_ "github.com/lib/pq"

	httpapi "librarysystem-backend/internal/api/http"
	"librarysystem-backend/internal/config"
	"librarysystem-backend/internal/logger"
	"librarysystem-backend/internal/repository/postgres"
	"librarysystem-backend/internal/security"
	"librarysystem-backend/internal/service"
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
	logger.Info("Starting Library System Backend...", "log_level", cfg.Log.Level, "log_format", cfg.Log.Format)
	logger.Info("Server configuration", "address", cfg.GetServerAddress())
	logger.Info("Database configuration", "host", cfg.Database.Host, "port", cfg.Database.Port, "database", cfg.Database.Database, "user", cfg.Database.User)

	// Initialize Database
	db, err := sql.Open("postgres", cfg.GetDatabaseConnectionString())
	if err != nil {
		logger.Error("Failed to connect to database", "error", err)
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Test database connection
	if err := db.Ping(); err != nil {
		logger.Error("Failed to ping database", "error", err)
		log.Fatalf("Failed to ping database: %v", err)
	}
	logger.Info("Database connection established")

	// Initialize Repositories
	store := postgres.NewStore(db)

	// Initialize Security
	tokenManager := security.NewTokenManager(cfg.JWT.Secret)

	// Initialize Notifier and Verifier
	notifier := service.NewEmailNotifier(cfg.Email.APIKey, cfg.Email.FromEmail, cfg.Email.FromName)
	verifier := service.NewHTTPLibrarianVerifier(cfg.Library.LibrarianVerifyURL, cfg.Library.LibrarianVerifyToken)

	// Initialize Services
	userSvc := service.NewUserService(store.UserRepository, verifier, tokenManager)
	bookSvc := service.NewBookService(store.BookRepository, store.BranchRepository, store.InventoryRepository)
	branchSvc := service.NewBranchService(store.BranchRepository)
	loanSvc := service.NewLoanService(
		store.LoanRepository,
		store.UserRepository,
		store.BookRepository,
		store.BranchRepository,
		store.InventoryRepository,
		store.Transactor,
		notifier,
		&cfg.Library,
	)

	// Initialize HTTP handlers
	auth := httpapi.NewAuthenticator(tokenManager)
	userHandler := httpapi.NewUserHandler(userSvc)
	bookHandler := httpapi.NewBookHandler(bookSvc)
	branchHandler := httpapi.NewBranchHandler(branchSvc)
	loanHandler := httpapi.NewLoanHandler(loanSvc)

	router := httpapi.NewRouter(auth, userHandler, bookHandler, branchHandler, loanHandler)

	logger.Info("HTTP server listening", "address", cfg.GetServerAddress())
	if err := http.ListenAndServe(cfg.GetServerAddress(), router); err != nil {
		logger.Error("HTTP server error", "error", err)
		log.Fatalf("Failed to serve: %v", err)
	}
}
