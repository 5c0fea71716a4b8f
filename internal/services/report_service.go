package services

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"sort"
	"time"

	"checkin-backend/internal/models"
	"checkin-backend/internal/timeutil"

	"github.com/jung-kurt/gofpdf/v2"
)

// ReportService renders the windowed check-in breakdown as PDF or CSV
// for download from the admin report page.
type ReportService struct {
	stats *StatsService
}

func NewReportService(stats *StatsService) *ReportService {
	return &ReportService{stats: stats}
}

// Breakdown delegates to the aggregator; kept here so handlers depend on
// one service for all report shapes.
func (s *ReportService) Breakdown(records []*models.CheckInRecord, from, to time.Time, project string) models.ReportBreakdown {
	return s.stats.Breakdown(records, from, to, project)
}

// GenerateCSV renders the breakdown as a two-section CSV: daily counts,
// then the agent leaderboard.
func (s *ReportService) GenerateCSV(breakdown models.ReportBreakdown, from, to time.Time) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	w.Write([]string{"Check-in Report",
		from.Format(timeutil.DateLayout) + " - " + to.Format(timeutil.DateLayout)})
	w.Write([]string{"Total", fmt.Sprintf("%d", breakdown.Total)})
	w.Write(nil)

	w.Write([]string{"Date", "Check-ins"})
	for _, date := range sortedDates(breakdown.PerDay) {
		w.Write([]string{date, fmt.Sprintf("%d", breakdown.PerDay[date])})
	}
	w.Write(nil)

	w.Write([]string{"#", "Sale", "Check-ins"})
	for i, agent := range breakdown.PerAgent {
		w.Write([]string{fmt.Sprintf("%d", i+1), agent.Name, fmt.Sprintf("%d", agent.Count)})
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// GeneratePDF renders the breakdown as a one-page A4 report
func (s *ReportService) GeneratePDF(breakdown models.ReportBreakdown, from, to time.Time) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetMargins(10, 10, 10)
	pdf.AddPage()

	// Header
	pdf.SetFont("Arial", "B", 16)
	pdf.CellFormat(190, 10, "Check-in Report", "", 1, "C", false, 0, "")
	pdf.SetFont("Arial", "", 10)
	pdf.CellFormat(190, 6, fmt.Sprintf("%s - %s | Generated: %s",
		from.Format(timeutil.DateLayout),
		to.Format(timeutil.DateLayout),
		timeutil.Now().Format("02-Jan-2006 03:04 PM")), "", 1, "C", false, 0, "")
	pdf.Ln(5)

	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, fmt.Sprintf("Total check-ins: %d", breakdown.Total), "", 1, "L", false, 0, "")
	pdf.Ln(2)

	// Daily counts
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Check-ins per day", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(95, 7, "Date", "1", 0, "C", true, 0, "")
	pdf.CellFormat(95, 7, "Check-ins", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for _, date := range sortedDates(breakdown.PerDay) {
		pdf.CellFormat(95, 6, date, "1", 0, "C", false, 0, "")
		pdf.CellFormat(95, 6, fmt.Sprintf("%d", breakdown.PerDay[date]), "1", 1, "C", false, 0, "")
	}
	pdf.Ln(5)

	// Agent leaderboard
	pdf.SetFillColor(240, 240, 240)
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(190, 8, "Top sales", "1", 1, "L", true, 0, "")

	pdf.SetFont("Arial", "B", 10)
	pdf.SetFillColor(200, 200, 200)
	pdf.CellFormat(20, 7, "#", "1", 0, "C", true, 0, "")
	pdf.CellFormat(120, 7, "Sale", "1", 0, "C", true, 0, "")
	pdf.CellFormat(50, 7, "Check-ins", "1", 1, "C", true, 0, "")

	pdf.SetFont("Arial", "", 10)
	for i, agent := range breakdown.PerAgent {
		name := agent.Name
		if len(name) > 50 {
			name = name[:47] + "..."
		}
		pdf.CellFormat(20, 6, fmt.Sprintf("%d", i+1), "1", 0, "C", false, 0, "")
		pdf.CellFormat(120, 6, name, "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 6, fmt.Sprintf("%d", agent.Count), "1", 1, "C", false, 0, "")
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func sortedDates(perDay map[string]int) []string {
	dates := make([]string, 0, len(perDay))
	for date := range perDay {
		dates = append(dates, date)
	}
	sort.Strings(dates)
	return dates
}
