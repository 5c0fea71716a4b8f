// Package health reports service liveness for the Kubernetes probes and
// the ops dashboard. The basic check is a DB ping; the detailed check
// adds the checkins table and the configured external dependencies
// (object storage, directory sheet).
package health

import (
	"context"
	"time"

	"checkin-backend/internal/config"

	"github.com/jackc/pgx/v5"
)

// Store is the slice of the pgx pool the checker needs
type Store interface {
	Ping(ctx context.Context) error
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type HealthChecker struct {
	db        Store
	storage   DependencyStatus
	directory DependencyStatus
	startedAt time.Time
}

type HealthStatus struct {
	Status   string         `json:"status"`
	Database DatabaseHealth `json:"database"`
}

type DatabaseHealth struct {
	Status       string `json:"status"`
	ResponseTime int64  `json:"response_time_ms"`
	CheckIns     *int64 `json:"checkins,omitempty"` // row count, detailed check only
}

// DependencyStatus reports whether an external dependency is wired.
// Config presence only; the health endpoints never call out to R2 or
// the published sheet.
type DependencyStatus struct {
	Configured bool   `json:"configured"`
	Target     string `json:"target,omitempty"`
}

type DetailedStatus struct {
	Status    string           `json:"status"`
	Database  DatabaseHealth   `json:"database"`
	Storage   DependencyStatus `json:"storage"`
	Directory DependencyStatus `json:"directory"`
	Uptime    string           `json:"uptime"`
}

func NewHealthChecker(db Store, cfg *config.Config) *HealthChecker {
	return &HealthChecker{
		db: db,
		storage: DependencyStatus{
			Configured: cfg.Storage.Bucket != "" && cfg.Storage.Endpoint != "",
			Target:     cfg.Storage.Bucket,
		},
		directory: DependencyStatus{
			Configured: cfg.Directory.SheetURL != "" && cfg.Directory.AccountsURL != "",
		},
		startedAt: time.Now(),
	}
}

func (h *HealthChecker) CheckBasic() HealthStatus {
	dbHealth := h.checkDatabase(false)

	status := "healthy"
	if dbHealth.Status != "healthy" {
		status = "unhealthy"
	}

	return HealthStatus{
		Status:   status,
		Database: dbHealth,
	}
}

// CheckDetailed extends the basic check with the checkins row count and
// the dependency wiring the service needs to take a check-in end to end.
// A reachable database with missing storage or directory config reports
// "degraded" rather than "unhealthy".
func (h *HealthChecker) CheckDetailed() DetailedStatus {
	dbHealth := h.checkDatabase(true)

	status := "healthy"
	if dbHealth.Status != "healthy" {
		status = "unhealthy"
	} else if !h.storage.Configured || !h.directory.Configured {
		status = "degraded"
	}

	return DetailedStatus{
		Status:    status,
		Database:  dbHealth,
		Storage:   h.storage,
		Directory: h.directory,
		Uptime:    time.Since(h.startedAt).Round(time.Second).String(),
	}
}

func (h *HealthChecker) checkDatabase(withCount bool) DatabaseHealth {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	start := time.Now()
	err := h.db.Ping(ctx)
	responseTime := time.Since(start).Milliseconds()

	if err != nil {
		return DatabaseHealth{
			Status:       "unhealthy",
			ResponseTime: responseTime,
		}
	}

	health := DatabaseHealth{
		Status:       "healthy",
		ResponseTime: responseTime,
	}
	if withCount {
		var count int64
		if err := h.db.QueryRow(ctx, "SELECT count(*) FROM checkins").Scan(&count); err == nil {
			health.CheckIns = &count
		}
	}
	return health
}
