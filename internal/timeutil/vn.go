package timeutil

import (
	"time"
)

// VN is the Vietnam time zone (UTC+7). All business-day boundaries
// (daily stats, report windows) are computed in this zone.
var VN *time.Location

func init() {
	var err error
	VN, err = time.LoadLocation("Asia/Ho_Chi_Minh")
	if err != nil {
		// Fallback: create fixed zone if Asia/Ho_Chi_Minh not available
		VN = time.FixedZone("ICT", 7*60*60) // UTC+7
	}
}

// Now returns the current time in Vietnam time
func Now() time.Time {
	return time.Now().In(VN)
}

// ToVN converts any time to Vietnam time
func ToVN(t time.Time) time.Time {
	return t.In(VN)
}

// ParseInVN parses a time string and returns it in Vietnam time
func ParseInVN(layout, value string) (time.Time, error) {
	t, err := time.ParseInLocation(layout, value, VN)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// StartOfDay returns the start of day (00:00:00) in Vietnam time
func StartOfDay(t time.Time) time.Time {
	vn := t.In(VN)
	return time.Date(vn.Year(), vn.Month(), vn.Day(), 0, 0, 0, 0, VN)
}

// StartOfWeek returns the most recent Sunday midnight in Vietnam time.
// Weeks start on Sunday, matching time.Weekday numbering.
func StartOfWeek(t time.Time) time.Time {
	vn := t.In(VN)
	return StartOfDay(vn.AddDate(0, 0, -int(vn.Weekday())))
}

// StartOfMonth returns the first of the current month at midnight in Vietnam time
func StartOfMonth(t time.Time) time.Time {
	vn := t.In(VN)
	return time.Date(vn.Year(), vn.Month(), 1, 0, 0, 0, 0, VN)
}

// EndOfDay returns the end of day (23:59:59.999999999) in Vietnam time
func EndOfDay(t time.Time) time.Time {
	vn := t.In(VN)
	return time.Date(vn.Year(), vn.Month(), vn.Day(), 23, 59, 59, 999999999, VN)
}

// Common layouts
const (
	DateLayout     = "2006-01-02"
	DateTimeLayout = "2006-01-02 15:04:05"
)
