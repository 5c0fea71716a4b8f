package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strconv"

	"checkin-backend/internal/cache"
	"checkin-backend/internal/metrics"
	"checkin-backend/internal/models"
	"checkin-backend/internal/repositories"
	"checkin-backend/internal/services"
	"checkin-backend/internal/timeutil"
	"checkin-backend/pkg/utils"

	"github.com/gorilla/mux"
)

type CheckInHandler struct {
	Service *services.CheckInService
}

func NewCheckInHandler(s *services.CheckInService) *CheckInHandler {
	return &CheckInHandler{Service: s}
}

// CreateCheckIn handles POST /api/checkin
func (h *CheckInHandler) CreateCheckIn(w http.ResponseWriter, r *http.Request) {
	var req models.CreateCheckInRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.Error(w, http.StatusBadRequest, "Invalid request body", "")
		return
	}

	rec, err := h.Service.Create(r.Context(), &req)
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			utils.Error(w, http.StatusBadRequest, "Sale name and customer name are required", "")
			return
		}
		log.Printf("[CheckIn] create failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to create check-in", err.Error())
		return
	}

	metrics.CheckInsCreated.Inc()
	cache.InvalidateStats(r.Context())

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"id":      rec.ID,
		"message": "Check-in recorded successfully",
		"data":    rec,
	})
}

// ListCheckIns handles GET /api/checkins?saleName=&startDate=&endDate=&limit=
func (h *CheckInHandler) ListCheckIns(w http.ResponseWriter, r *http.Request) {
	filter := models.CheckInFilter{
		SaleName: r.URL.Query().Get("saleName"),
		Limit:    models.DefaultListLimit,
	}

	if v := r.URL.Query().Get("limit"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			filter.Limit = n
		}
	}
	if v := r.URL.Query().Get("startDate"); v != "" {
		t, err := timeutil.ParseInVN(timeutil.DateLayout, v)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid startDate, expected YYYY-MM-DD", "")
			return
		}
		filter.StartDate = &t
	}
	if v := r.URL.Query().Get("endDate"); v != "" {
		t, err := timeutil.ParseInVN(timeutil.DateLayout, v)
		if err != nil {
			utils.Error(w, http.StatusBadRequest, "Invalid endDate, expected YYYY-MM-DD", "")
			return
		}
		end := timeutil.EndOfDay(t)
		filter.EndDate = &end
	}

	records, err := h.Service.List(r.Context(), filter)
	if err != nil {
		log.Printf("[CheckIn] list failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch check-ins", err.Error())
		return
	}
	if records == nil {
		records = []*models.CheckInRecord{}
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"count":   len(records),
		"data":    records,
	})
}

// GetCheckIn handles GET /api/checkin/{id}
func (h *CheckInHandler) GetCheckIn(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	rec, err := h.Service.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, repositories.ErrCheckInNotFound) {
			utils.Error(w, http.StatusNotFound, "Check-in not found", "")
			return
		}
		log.Printf("[CheckIn] get failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch check-in", err.Error())
		return
	}

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    rec,
	})
}

// DeleteCheckIn handles DELETE /api/checkin/{id} (admin only)
func (h *CheckInHandler) DeleteCheckIn(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]

	if err := h.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, repositories.ErrCheckInNotFound) {
			utils.Error(w, http.StatusNotFound, "Check-in not found", "")
			return
		}
		log.Printf("[CheckIn] delete failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to delete check-in", err.Error())
		return
	}

	cache.InvalidateStats(r.Context())

	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"message": "Check-in deleted successfully",
	})
}
