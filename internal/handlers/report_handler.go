package handlers

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"checkin-backend/internal/services"
	"checkin-backend/internal/timeutil"
	"checkin-backend/pkg/utils"
)

type ReportHandler struct {
	CheckIns *services.CheckInService
	Reports  *services.ReportService
}

func NewReportHandler(checkIns *services.CheckInService, reports *services.ReportService) *ReportHandler {
	return &ReportHandler{CheckIns: checkIns, Reports: reports}
}

// reportWindow parses startDate/endDate query params, defaulting to the
// last 30 days, matching the report page's initial range.
func reportWindow(r *http.Request) (time.Time, time.Time, error) {
	now := timeutil.Now()
	from := now.AddDate(0, 0, -29)
	to := now

	if v := r.URL.Query().Get("startDate"); v != "" {
		t, err := timeutil.ParseInVN(timeutil.DateLayout, v)
		if err != nil {
			return from, to, fmt.Errorf("invalid startDate, expected YYYY-MM-DD")
		}
		from = t
	}
	if v := r.URL.Query().Get("endDate"); v != "" {
		t, err := timeutil.ParseInVN(timeutil.DateLayout, v)
		if err != nil {
			return from, to, fmt.Errorf("invalid endDate, expected YYYY-MM-DD")
		}
		to = t
	}
	return from, to, nil
}

// GetReport handles GET /api/reports?startDate=&endDate=&project=
func (h *ReportHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	from, to, err := reportWindow(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	records, err := h.CheckIns.ListAll(r.Context(), "")
	if err != nil {
		log.Printf("[Report] fetch failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch report", err.Error())
		return
	}

	breakdown := h.Reports.Breakdown(records, from, to, r.URL.Query().Get("project"))
	utils.JSON(w, http.StatusOK, map[string]interface{}{
		"success": true,
		"data":    breakdown,
	})
}

// ExportReport handles GET /api/reports/export?format=csv|pdf
func (h *ReportHandler) ExportReport(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "pdf" {
		utils.Error(w, http.StatusBadRequest, "format must be csv or pdf", "")
		return
	}

	from, to, err := reportWindow(r)
	if err != nil {
		utils.Error(w, http.StatusBadRequest, err.Error(), "")
		return
	}

	records, err := h.CheckIns.ListAll(r.Context(), "")
	if err != nil {
		log.Printf("[Report] fetch failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to fetch report", err.Error())
		return
	}
	breakdown := h.Reports.Breakdown(records, from, to, r.URL.Query().Get("project"))

	filename := fmt.Sprintf("checkin-report_%s_%s.%s",
		from.Format(timeutil.DateLayout), to.Format(timeutil.DateLayout), format)

	var body []byte
	var contentType string
	if format == "pdf" {
		body, err = h.Reports.GeneratePDF(breakdown, from, to)
		contentType = "application/pdf"
	} else {
		body, err = h.Reports.GenerateCSV(breakdown, from, to)
		contentType = "text/csv"
	}
	if err != nil {
		log.Printf("[Report] export failed: %v", err)
		utils.Error(w, http.StatusInternalServerError, "Failed to generate report", err.Error())
		return
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}
