package directory

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sheetCSV = "Name,LastPSGD,Days,Type,Username,Password\n" +
	"Khai,2024-01-01,45,VIP,khai01,pass123\n" +
	"Lan,2024-02-10,,Standard,lan02,secret\n" +
	"\n" +
	",2024-03-01,5,VIP,ghost,ghost\n" +
	"Minh,2024-03-05,abc,Standard,minh03,minh pw\n"

func newSheetServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(body))
	}))
}

func TestFetchDirectory(t *testing.T) {
	srv := newSheetServer(t, sheetCSV)
	defer srv.Close()

	client := NewClient(srv.URL, srv.URL)
	entries, err := client.FetchDirectory(context.Background())
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "Khai", entries[0].Name)
	assert.Equal(t, "2024-01-01", entries[0].LastActivityDate)
	require.NotNil(t, entries[0].DaysSinceLast)
	assert.Equal(t, 45, *entries[0].DaysSinceLast)
	assert.Equal(t, "VIP", entries[0].Type)

	// Empty and non-numeric day columns stay nil
	assert.Nil(t, entries[1].DaysSinceLast)
	assert.Nil(t, entries[2].DaysSinceLast)
}

func TestFetchCredentials(t *testing.T) {
	srv := newSheetServer(t, sheetCSV)
	defer srv.Close()

	client := NewClient(srv.URL, srv.URL)
	creds, err := client.FetchCredentials(context.Background())
	require.NoError(t, err)
	require.Len(t, creds, 3)

	assert.Equal(t, "Khai", creds[0].Name)
	assert.Equal(t, "khai01", creds[0].Username)
	assert.Equal(t, "pass123", creds[0].Password)
	assert.Equal(t, "lan02", creds[1].Username)
}

func TestFetchDirectoryUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	client := NewClient(srv.URL, srv.URL)
	_, err := client.FetchDirectory(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrFetchTimeout)
}

func TestParseRows(t *testing.T) {
	t.Run("header only", func(t *testing.T) {
		assert.Nil(t, parseRows("Name,Date\n"))
	})

	t.Run("empty body", func(t *testing.T) {
		assert.Nil(t, parseRows(""))
	})

	t.Run("trims cells and skips blank names", func(t *testing.T) {
		rows := parseRows("Name,Type\n  An , VIP \n,orphan\nBinh,Standard")
		require.Len(t, rows, 2)
		assert.Equal(t, []string{"An", "VIP"}, rows[0])
		assert.Equal(t, []string{"Binh", "Standard"}, rows[1])
	})

	t.Run("short rows read as empty columns", func(t *testing.T) {
		rows := parseRows("Name,Date,Days,Type\nChi")
		require.Len(t, rows, 1)
		assert.Equal(t, "", column(rows[0], 3))
	})
}
