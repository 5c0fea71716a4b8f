package models

// SalesAgentEntry is one row of the published sales directory sheet.
// Derived per request from the spreadsheet export, never persisted.
type SalesAgentEntry struct {
	Name             string `json:"name"`
	LastActivityDate string `json:"lastPSGD"`
	DaysSinceLast    *int   `json:"daysWithoutPSGD"` // absent when the column is empty or non-numeric
	Type             string `json:"type"`
}

// Credential is a username/password pair from the accounts view of the
// same sheet. Compared in plaintext and discarded after the request.
type Credential struct {
	Name     string
	Username string
	Password string
}

// LoginRequest represents the request body for POST /api/login
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SessionUser is the authenticated identity returned by a successful login
type SessionUser struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Role     string `json:"role"`
	Token    string `json:"token,omitempty"`
}

// Roles issued by the session gate
const (
	RoleAdmin    = "admin"
	RoleEmployee = "employee"
)

// StatsSummary holds the server-computed check-in counts. Buckets are
// cumulative: a record counted in Today also counts in ThisWeek and
// ThisMonth.
type StatsSummary struct {
	TotalCheckins int `json:"totalCheckins"`
	Today         int `json:"today"`
	ThisWeek      int `json:"thisWeek"`
	ThisMonth     int `json:"thisMonth"`
}

// AgentCount is one leaderboard row of the report breakdown
type AgentCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// ReportBreakdown is the windowed per-day / per-agent frequency report
type ReportBreakdown struct {
	Total    int            `json:"total"`
	PerDay   map[string]int `json:"perDay"`
	PerAgent []AgentCount   `json:"perAgent"` // descending by count, top 10
}
