package models

import "time"

// Check-in types recorded by the field app
const (
	CheckInTypeMeeting   = "meeting"    // Gặp khách hàng
	CheckInTypeSiteVisit = "site_visit" // Đi xem dự án
)

// CheckInRecord is one field-visit event: customer, agent, location and
// photographic evidence. Records are immutable after creation; the only
// mutation is whole-record deletion.
type CheckInRecord struct {
	ID            string     `json:"id"`
	SaleName      string     `json:"saleName"`
	CustomerName  string     `json:"customerName"`
	CustomerPhone string     `json:"customerPhone"`
	Location      string     `json:"location"`
	Latitude      *float64   `json:"latitude"`
	Longitude     *float64   `json:"longitude"`
	Notes         string     `json:"notes"`
	Project       string     `json:"project"`
	ImageURL      string     `json:"imageUrl"`
	CheckInType   string     `json:"checkInType"`
	Timestamp     *time.Time `json:"timestamp"`           // server-assigned, authoritative for ordering
	CreatedAt     string     `json:"createdAt,omitempty"` // client-observed ISO-8601, display fallback
}

// CreateCheckInRequest represents the request body for creating a check-in
type CreateCheckInRequest struct {
	SaleName      string   `json:"saleName"`
	CustomerName  string   `json:"customerName"`
	CustomerPhone string   `json:"customerPhone"`
	Location      string   `json:"location"`
	Latitude      *float64 `json:"latitude"`
	Longitude     *float64 `json:"longitude"`
	Notes         string   `json:"notes"`
	Project       string   `json:"project"`
	ImageURL      string   `json:"imageUrl"`
	CheckInType   string   `json:"checkInType"`
	CreatedAt     string   `json:"createdAt"`
}

// CheckInFilter narrows a listing. Filtering stops at exact saleName match
// plus a timestamp window; anything fuzzier is left to the caller.
type CheckInFilter struct {
	SaleName  string
	StartDate *time.Time
	EndDate   *time.Time
	Limit     int
}

// DefaultListLimit caps listings when the caller does not raise it
const DefaultListLimit = 100
