package handlers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"checkin-backend/internal/directory"
	"checkin-backend/internal/models"
	"checkin-backend/pkg/utils"
)

// DirectorySource yields the sales agent roster
type DirectorySource interface {
	FetchDirectory(ctx context.Context) ([]models.SalesAgentEntry, error)
}

type SalesHandler struct {
	Directory DirectorySource
}

func NewSalesHandler(dir DirectorySource) *SalesHandler {
	return &SalesHandler{Directory: dir}
}

// ListSales handles GET /api/sales-list. Every call re-fetches the
// published sheet; nothing is cached.
func (h *SalesHandler) ListSales(w http.ResponseWriter, r *http.Request) {
	entries, err := h.Directory.FetchDirectory(r.Context())
	if err != nil {
		if errors.Is(err, directory.ErrFetchTimeout) {
			utils.Error(w, http.StatusGatewayTimeout, "Failed to fetch sales list", err.Error())
			return
		}
		log.Printf("[Sales] directory fetch failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch sales list", err.Error())
		return
	}
	if entries == nil {
		entries = []models.SalesAgentEntry{}
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    entries,
		"count":   len(entries),
	})
}
