package http

import (
	"net/http"

	"checkin-backend/internal/handlers"
	"checkin-backend/internal/middleware"
	"checkin-backend/internal/models"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func NewRouter(
	uploadHandler *handlers.UploadHandler,
	checkInHandler *handlers.CheckInHandler,
	salesHandler *handlers.SalesHandler,
	authHandler *handlers.AuthHandler,
	statsHandler *handlers.StatsHandler,
	reportHandler *handlers.ReportHandler,
	healthHandler *handlers.HealthHandler,
	authMiddleware *middleware.AuthMiddleware,
) *mux.Router {
	r := mux.NewRouter()

	// Public routes
	r.HandleFunc("/", healthHandler.ServiceInfo).Methods("GET")
	r.HandleFunc("/api/login", authHandler.Login).Methods("POST")

	// Protected API routes - everything else requires a session token
	api := r.PathPrefix("/api").Subrouter()
	api.Use(authMiddleware.Authenticate)
	api.HandleFunc("/upload-image", uploadHandler.UploadImage).Methods("POST")
	api.HandleFunc("/checkin", checkInHandler.CreateCheckIn).Methods("POST")
	api.HandleFunc("/checkins", checkInHandler.ListCheckIns).Methods("GET")
	api.HandleFunc("/checkin/{id}", checkInHandler.GetCheckIn).Methods("GET")
	api.HandleFunc("/checkin/{id}", authMiddleware.RequireRole(models.RoleAdmin)(http.HandlerFunc(checkInHandler.DeleteCheckIn)).ServeHTTP).Methods("DELETE")
	api.HandleFunc("/sales-list", salesHandler.ListSales).Methods("GET")
	api.HandleFunc("/stats", statsHandler.GetStats).Methods("GET")
	api.HandleFunc("/reports", reportHandler.GetReport).Methods("GET")
	api.HandleFunc("/reports/export", reportHandler.ExportReport).Methods("GET")

	// Health endpoints (no auth required - for Kubernetes probes)
	r.HandleFunc("/health", healthHandler.BasicHealth).Methods("GET")
	r.HandleFunc("/health/detailed", healthHandler.DetailedHealth).Methods("GET")

	// Metrics endpoint (Prometheus format)
	r.Handle("/metrics", promhttp.Handler())

	return r
}
