package handlers

import (
	"log"
	"net/http"

	"checkin-backend/internal/cache"
	"checkin-backend/internal/services"
	"checkin-backend/internal/timeutil"
	"checkin-backend/pkg/utils"
)

type StatsHandler struct {
	CheckIns *services.CheckInService
	Stats    *services.StatsService
}

func NewStatsHandler(checkIns *services.CheckInService, stats *services.StatsService) *StatsHandler {
	return &StatsHandler{CheckIns: checkIns, Stats: stats}
}

// GetStats handles GET /api/stats?saleName=. The summary is computed
// over the full (optionally agent-restricted) record set and cached
// briefly; creates and deletes invalidate the cache.
func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	saleName := r.URL.Query().Get("saleName")

	if summary, ok := cache.GetCachedStats(r.Context(), saleName); ok {
		utils.JSON(w, http.StatusOK, map[string]interface{}{
			"success": true,
			"data":    summary,
		})
		return
	}

	records, err := h.CheckIns.ListAll(r.Context(), saleName)
	if err != nil {
		log.Printf("[Stats] fetch failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch statistics", err.Error())
		return
	}

	summary := h.Stats.Summarize(records, timeutil.Now())
	cache.CacheStats(r.Context(), saleName, summary)

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    summary,
	})
}
