package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"time"

	"checkin-backend/internal/auth"
	"checkin-backend/internal/cache"
	"checkin-backend/internal/config"
	"checkin-backend/internal/database"
	"checkin-backend/internal/db"
	"checkin-backend/internal/directory"
	"checkin-backend/internal/handlers"
	"checkin-backend/internal/health"
	h "checkin-backend/internal/http"
	"checkin-backend/internal/middleware"
	"checkin-backend/internal/monitoring"
	"checkin-backend/internal/repositories"
	"checkin-backend/internal/services"
	"checkin-backend/internal/storage"
	"checkin-backend/migrations"
)

func main() {
	port := flag.Int("port", 0, "Server port (overrides config)")
	flag.Parse()

	cfg := config.Load()
	if *port != 0 {
		cfg.Server.Port = *port
	}

	pool := db.Connect(cfg)
	defer pool.Close()

	// Redis is optional, stats fall back to direct aggregation without it
	if err := cache.Init(); err != nil {
		log.Printf("[Redis] Cache unavailable: %v (stats will be computed per request)", err)
	} else {
		log.Println("[Redis] Cache connected successfully")
	}

	// Run embedded migrations on startup so the binary is self-contained
	log.Println("Running database migrations...")
	migrator := database.NewMigrator(pool, migrations.FS, ".")
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := migrator.RunMigrations(ctx); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	healthChecker := health.NewHealthChecker(pool, cfg)

	// Ops dashboard on a separate port
	go monitoring.NewServer(pool, cfg.Server.MonitoringPort).Start()

	jwtManager := auth.NewJWTManager(cfg)

	uploader, err := storage.NewUploader(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize object storage: %v", err)
	}

	directoryClient := directory.NewClient(cfg.Directory.SheetURL, cfg.Directory.AccountsURL)

	checkinRepo := repositories.NewCheckInRepository(pool)

	checkinService := services.NewCheckInService(checkinRepo)
	statsService := services.NewStatsService()
	reportService := services.NewReportService(statsService)
	authService := services.NewAuthService(cfg, directoryClient, jwtManager)

	uploadHandler := handlers.NewUploadHandler(uploader)
	checkinHandler := handlers.NewCheckInHandler(checkinService)
	salesHandler := handlers.NewSalesHandler(directoryClient)
	authHandler := handlers.NewAuthHandler(authService)
	statsHandler := handlers.NewStatsHandler(checkinService, statsService)
	reportHandler := handlers.NewReportHandler(checkinService, reportService)
	healthHandler := handlers.NewHealthHandler(healthChecker)

	authMiddleware := middleware.NewAuthMiddleware(jwtManager)
	corsMiddleware := middleware.NewCORS(cfg)

	router := h.NewRouter(
		uploadHandler,
		checkinHandler,
		salesHandler,
		authHandler,
		statsHandler,
		reportHandler,
		healthHandler,
		authMiddleware,
	)

	handler := middleware.PanicRecovery(middleware.MetricsMiddleware(corsMiddleware(router)))

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	log.Printf("Server running on %s", addr)
	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
