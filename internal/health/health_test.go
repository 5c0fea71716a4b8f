package health

import (
	"context"
	"errors"
	"testing"

	"checkin-backend/internal/config"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRow struct {
	count int64
	err   error
}

func (r fakeRow) Scan(dest ...any) error {
	if r.err != nil {
		return r.err
	}
	*(dest[0].(*int64)) = r.count
	return nil
}

type fakeStore struct {
	pingErr  error
	count    int64
	queryErr error
}

func (f *fakeStore) Ping(ctx context.Context) error { return f.pingErr }

func (f *fakeStore) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return fakeRow{count: f.count, err: f.queryErr}
}

func wiredConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Storage.Bucket = "checkin-images"
	cfg.Storage.Endpoint = "https://r2.example.com"
	cfg.Directory.SheetURL = "https://sheet.example.com/sales"
	cfg.Directory.AccountsURL = "https://sheet.example.com/accounts"
	return cfg
}

func TestCheckBasic(t *testing.T) {
	h := NewHealthChecker(&fakeStore{}, wiredConfig())
	status := h.CheckBasic()

	assert.Equal(t, "healthy", status.Status)
	assert.Equal(t, "healthy", status.Database.Status)
	// Row count belongs to the detailed check only
	assert.Nil(t, status.Database.CheckIns)
}

func TestCheckBasicDatabaseDown(t *testing.T) {
	h := NewHealthChecker(&fakeStore{pingErr: errors.New("refused")}, wiredConfig())
	status := h.CheckBasic()

	assert.Equal(t, "unhealthy", status.Status)
	assert.Equal(t, "unhealthy", status.Database.Status)
}

func TestCheckDetailed(t *testing.T) {
	h := NewHealthChecker(&fakeStore{count: 42}, wiredConfig())
	status := h.CheckDetailed()

	assert.Equal(t, "healthy", status.Status)
	require.NotNil(t, status.Database.CheckIns)
	assert.Equal(t, int64(42), *status.Database.CheckIns)
	assert.True(t, status.Storage.Configured)
	assert.Equal(t, "checkin-images", status.Storage.Target)
	assert.True(t, status.Directory.Configured)
	assert.NotEmpty(t, status.Uptime)
}

func TestCheckDetailedDegradedWithoutStorage(t *testing.T) {
	cfg := wiredConfig()
	cfg.Storage.Bucket = ""
	h := NewHealthChecker(&fakeStore{}, cfg)

	status := h.CheckDetailed()
	assert.Equal(t, "degraded", status.Status)
	assert.False(t, status.Storage.Configured)
}

func TestCheckDetailedCountFailureNonFatal(t *testing.T) {
	h := NewHealthChecker(&fakeStore{queryErr: errors.New("relation missing")}, wiredConfig())
	status := h.CheckDetailed()

	// A failing count never flips an otherwise healthy database
	assert.Equal(t, "healthy", status.Status)
	assert.Nil(t, status.Database.CheckIns)
}
