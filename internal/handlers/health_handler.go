package handlers

import (
	"net/http"

	"checkin-backend/internal/health"
	"checkin-backend/internal/timeutil"
	"checkin-backend/pkg/utils"
)

type HealthHandler struct {
	Checker *health.HealthChecker
}

func NewHealthHandler(checker *health.HealthChecker) *HealthHandler {
	return &HealthHandler{Checker: checker}
}

// ServiceInfo handles GET /, the service banner the mobile app pings
func (h *HealthHandler) ServiceInfo(w http.ResponseWriter, r *http.Request) {
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"status":    "OK",
		"message":   "Realty Check-in API is running",
		"timestamp": timeutil.Now().Format("2006-01-02T15:04:05Z07:00"),
	})
}

// BasicHealth handles GET /health
func (h *HealthHandler) BasicHealth(w http.ResponseWriter, r *http.Request) {
	status := h.Checker.CheckBasic()

	code := http.StatusOK
	if status.Status != "healthy" {
		code = http.StatusServiceUnavailable
	}
	utils.JSON(w, code, status)
}

// DetailedHealth handles GET /health/detailed for the ops dashboard.
// Only an unreachable database turns the status code; "degraded"
// (missing storage or directory config) still answers 200.
func (h *HealthHandler) DetailedHealth(w http.ResponseWriter, r *http.Request) {
	status := h.Checker.CheckDetailed()

	code := http.StatusOK
	if status.Status == "unhealthy" {
		code = http.StatusServiceUnavailable
	}
	utils.JSON(w, code, status)
}
