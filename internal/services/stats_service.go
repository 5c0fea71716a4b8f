package services

import (
	"sort"
	"time"

	"checkin-backend/internal/models"
	"checkin-backend/internal/timeutil"
)

// StatsService aggregates already-fetched record sets. Pure computation,
// no storage access.
type StatsService struct{}

func NewStatsService() *StatsService {
	return &StatsService{}
}

// Summarize counts records into cumulative day/week/month buckets bounded
// at now. A record landing in "today" also counts in "thisWeek" and
// "thisMonth"; the buckets are not mutually exclusive. Records with no
// usable time count only toward the total.
func (s *StatsService) Summarize(records []*models.CheckInRecord, now time.Time) models.StatsSummary {
	startOfDay := timeutil.StartOfDay(now)
	startOfWeek := timeutil.StartOfWeek(now)
	startOfMonth := timeutil.StartOfMonth(now)

	summary := models.StatsSummary{TotalCheckins: len(records)}
	for _, rec := range records {
		ts, ok := effectiveTime(rec)
		if !ok {
			continue
		}
		if !ts.Before(startOfDay) {
			summary.Today++
		}
		if !ts.Before(startOfWeek) {
			summary.ThisWeek++
		}
		if !ts.Before(startOfMonth) {
			summary.ThisMonth++
		}
	}
	return summary
}

// Breakdown restricts records to [from, end of to] and an optional
// project, then produces per-day counts and a top-10 per-agent
// leaderboard. Ties keep encounter order.
func (s *StatsService) Breakdown(records []*models.CheckInRecord, from, to time.Time, project string) models.ReportBreakdown {
	start := timeutil.StartOfDay(from)
	end := timeutil.EndOfDay(to)

	breakdown := models.ReportBreakdown{PerDay: map[string]int{}}
	agentCounts := map[string]int{}
	var agentOrder []string

	for _, rec := range records {
		if project != "" && rec.Project != project {
			continue
		}
		ts, ok := effectiveTime(rec)
		if !ok || ts.Before(start) || ts.After(end) {
			continue
		}

		breakdown.Total++
		breakdown.PerDay[ts.In(timeutil.VN).Format(timeutil.DateLayout)]++

		if _, seen := agentCounts[rec.SaleName]; !seen {
			agentOrder = append(agentOrder, rec.SaleName)
		}
		agentCounts[rec.SaleName]++
	}

	for _, name := range agentOrder {
		breakdown.PerAgent = append(breakdown.PerAgent, models.AgentCount{
			Name:  name,
			Count: agentCounts[name],
		})
	}
	sort.SliceStable(breakdown.PerAgent, func(i, j int) bool {
		return breakdown.PerAgent[i].Count > breakdown.PerAgent[j].Count
	})
	if len(breakdown.PerAgent) > 10 {
		breakdown.PerAgent = breakdown.PerAgent[:10]
	}
	return breakdown
}

// effectiveTime picks the record's timestamp when set, else tries the
// client-observed createdAt string.
func effectiveTime(rec *models.CheckInRecord) (time.Time, bool) {
	if rec.Timestamp != nil {
		return *rec.Timestamp, true
	}
	if rec.CreatedAt == "" {
		return time.Time{}, false
	}
	if ts, err := time.Parse(time.RFC3339, rec.CreatedAt); err == nil {
		return ts, true
	}
	return time.Time{}, false
}
