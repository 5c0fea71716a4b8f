package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMetricsPathCollapsesRecordIDs(t *testing.T) {
	cases := map[string]string{
		"/api/checkin/53ab0f3e-6d8f-4f4e-9b1a-000000000000": "/api/checkin/{id}",
		"/api/checkin/anything": "/api/checkin/{id}",
		"/api/checkins":         "/api/checkins",
		"/api/checkin":          "/api/checkin",
		"/api/stats":            "/api/stats",
		"/health":               "/health",
	}
	for in, want := range cases {
		assert.Equal(t, want, metricsPath(in), in)
	}
}
