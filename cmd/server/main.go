package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"device-warranty-server/internal/config"
	"device-warranty-server/internal/database"
	"device-warranty-server/internal/domain"
	"device-warranty-server/internal/handler"
	"device-warranty-server/internal/middleware"
	"device-warranty-server/internal/repository"
	"device-warranty-server/internal/service"
	"device-warranty-server/pkg/hash"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.Server.Env)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	db, err := database.NewClient(cfg.Database, logger)
	if err != nil {
		logger.Fatal("failed to connect to database", zap.Error(err))
	}
	defer db.Close()

	userRepo := repository.NewUserRepository(db.Gorm)
	passportRepo := repository.NewPassportRepository(db.Gorm)
	deviceRepo := repository.NewDeviceRepository(db.Gorm)
	renovationRepo := repository.NewRenovationRepository(db.Gorm)

	passportService := service.NewPassportService(passportRepo, logger)
	deviceService := service.NewDeviceService(deviceRepo, passportService)
	authService := service.NewAuthService(userRepo, deviceService, logger, cfg.JWT.Secret, cfg.JWT.Expiration)
	userService := service.NewUserService(userRepo)
	renovationService := service.NewRenovationService(renovationRepo, deviceService)

	if err := ensureAdmin(userRepo, cfg.Admin, logger); err != nil {
		logger.Fatal("failed to bootstrap admin account", zap.Error(err))
	}

	authHandler := handler.NewAuthHandler(authService)
	userHandler := handler.NewUserHandler(userService)
	deviceHandler := handler.NewDeviceHandler(deviceService)
	passportHandler := handler.NewPassportHandler(passportService)
	renovationHandler := handler.NewRenovationHandler(renovationService)

	r := mux.NewRouter()

	r.Use(middleware.LoggerMiddleware(logger))
	r.Use(middleware.CORSMiddleware(
		cfg.CORS.AllowedOrigins,
		cfg.CORS.AllowedMethods,
		cfg.CORS.AllowedHeaders,
	))

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes. Registered before the protected subrouters so that
	// /devices/exists/{serial} wins over /devices/{serial}.
	api.HandleFunc("/users/registration", authHandler.Register).Methods("POST", "OPTIONS")
	api.HandleFunc("/users/login", authHandler.Login).Methods("POST", "OPTIONS")
	api.HandleFunc("/devices/exists/{serial}", deviceHandler.Exists).Methods("GET", "OPTIONS")
	api.HandleFunc("/devices/anonymousDevice", deviceHandler.RegisterAnonymous).Methods("POST", "OPTIONS")
	api.HandleFunc("/passports/getBySerialId/{serial}", passportHandler.GetBySerialID).Methods("GET", "OPTIONS")

	// Routes for any authenticated account.
	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	protected.Use(middleware.RequireRoles(domain.RoleUser, domain.RoleAdmin))

	protected.HandleFunc("/users/getUser", userHandler.GetUser).Methods("GET", "OPTIONS")
	protected.HandleFunc("/users/update", userHandler.Update).Methods("PUT", "OPTIONS")
	protected.HandleFunc("/users/changePassword", userHandler.ChangePassword).Methods("POST", "OPTIONS")

	protected.HandleFunc("/devices", deviceHandler.List).Methods("GET", "OPTIONS")
	protected.HandleFunc("/devices", deviceHandler.Register).Methods("POST", "OPTIONS")
	protected.HandleFunc("/devices/{serial}", deviceHandler.Get).Methods("GET", "OPTIONS")
	protected.HandleFunc("/devices/{serial}", deviceHandler.Update).Methods("PUT", "OPTIONS")
	protected.HandleFunc("/devices/{serial}", deviceHandler.Delete).Methods("DELETE", "OPTIONS")

	// Administrator-only routes.
	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AuthMiddleware(cfg.JWT.Secret))
	admin.Use(middleware.RequireRoles(domain.RoleAdmin))

	admin.HandleFunc("/users", userHandler.List).Methods("GET", "OPTIONS")

	admin.HandleFunc("/passports", passportHandler.Create).Methods("POST", "OPTIONS")
	admin.HandleFunc("/passports", passportHandler.List).Methods("GET", "OPTIONS")
	admin.HandleFunc("/passports/{id}", passportHandler.Update).Methods("PUT", "OPTIONS")
	admin.HandleFunc("/passports/{id}", passportHandler.Delete).Methods("DELETE", "OPTIONS")

	admin.HandleFunc("/renovations", renovationHandler.Create).Methods("POST", "OPTIONS")
	admin.HandleFunc("/renovations/{id}", renovationHandler.Delete).Methods("DELETE", "OPTIONS")

	r.HandleFunc("/health", healthHandler).Methods("GET")

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)

	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("starting device warranty server",
			zap.String("addr", addr),
			zap.String("env", cfg.Server.Env),
		)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed to start", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Fatal("server forced to shutdown", zap.Error(err))
	}

	logger.Info("server stopped gracefully")
}

func newLogger(env string) (*zap.Logger, error) {
	if env == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

// ensureAdmin creates the administrator account from config on first start.
func ensureAdmin(userRepo repository.UserRepository, cfg config.AdminConfig, logger *zap.Logger) error {
	if cfg.Email == "" || cfg.Password == "" {
		logger.Warn("admin bootstrap skipped, ADMIN_EMAIL or ADMIN_PASSWORD not set")
		return nil
	}

	existing, err := userRepo.FindByEmail(cfg.Email)
	if err != nil {
		return err
	}
	if existing != nil {
		return nil
	}

	hashedPassword, err := hash.Hash(cfg.Password)
	if err != nil {
		return err
	}

	admin := &domain.User{
		ID:       uuid.New().String(),
		FullName: cfg.FullName,
		Email:    cfg.Email,
		Phone:    cfg.Phone,
		Password: hashedPassword,
		Role:     domain.RoleAdmin,
	}

	if err := userRepo.Create(admin); err != nil {
		return err
	}

	logger.Info("admin account created", zap.String("email", cfg.Email))
	return nil
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"healthy","service":"device-warranty-server"}`))
}
