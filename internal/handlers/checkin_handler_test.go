package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"checkin-backend/internal/models"
	"checkin-backend/internal/repositories"
	"checkin-backend/internal/services"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubStore struct {
	records  []*models.CheckInRecord
	listErr  error
	notFound bool
	deleted  []string
	filters  []models.CheckInFilter
}

func (s *stubStore) Create(ctx context.Context, rec *models.CheckInRecord) error {
	rec.ID = "11111111-2222-3333-4444-555555555555"
	s.records = append(s.records, rec)
	return nil
}

func (s *stubStore) Get(ctx context.Context, id string) (*models.CheckInRecord, error) {
	if s.notFound {
		return nil, repositories.ErrCheckInNotFound
	}
	return &models.CheckInRecord{ID: id, SaleName: "An", CustomerName: "KH A"}, nil
}

func (s *stubStore) List(ctx context.Context, filter models.CheckInFilter) ([]*models.CheckInRecord, error) {
	s.filters = append(s.filters, filter)
	return s.records, s.listErr
}

func (s *stubStore) ListAllBySale(ctx context.Context, saleName string) ([]*models.CheckInRecord, error) {
	return s.records, nil
}

func (s *stubStore) Delete(ctx context.Context, id string) error {
	if s.notFound {
		return repositories.ErrCheckInNotFound
	}
	s.deleted = append(s.deleted, id)
	return nil
}

func newCheckInRouter(store *stubStore) *mux.Router {
	h := NewCheckInHandler(services.NewCheckInService(store))
	r := mux.NewRouter()
	r.HandleFunc("/api/checkin", h.CreateCheckIn).Methods("POST")
	r.HandleFunc("/api/checkins", h.ListCheckIns).Methods("GET")
	r.HandleFunc("/api/checkin/{id}", h.GetCheckIn).Methods("GET")
	r.HandleFunc("/api/checkin/{id}", h.DeleteCheckIn).Methods("DELETE")
	return r
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	return body
}

func TestCreateCheckIn(t *testing.T) {
	store := &stubStore{}
	router := newCheckInRouter(store)

	payload := `{"saleName":"An","customerName":"KH A","checkInType":"site_visit"}`
	req := httptest.NewRequest(http.MethodPost, "/api/checkin", bytes.NewBufferString(payload))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, "11111111-2222-3333-4444-555555555555", body["id"])
	assert.Equal(t, "Check-in recorded successfully", body["message"])
	require.Len(t, store.records, 1)
}

func TestCreateCheckInValidation(t *testing.T) {
	store := &stubStore{}
	router := newCheckInRouter(store)

	req := httptest.NewRequest(http.MethodPost, "/api/checkin",
		bytes.NewBufferString(`{"saleName":"","customerName":"KH A"}`))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusBadRequest, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "Sale name and customer name are required", body["error"])
	assert.Empty(t, store.records)
}

func TestCreateCheckInBadJSON(t *testing.T) {
	router := newCheckInRouter(&stubStore{})

	req := httptest.NewRequest(http.MethodPost, "/api/checkin", bytes.NewBufferString("{"))
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestListCheckInsDefaults(t *testing.T) {
	store := &stubStore{}
	router := newCheckInRouter(store)

	req := httptest.NewRequest(http.MethodGet, "/api/checkins", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, true, body["success"])
	assert.Equal(t, float64(0), body["count"])
	// Empty result serializes as [], never null
	assert.Equal(t, []interface{}{}, body["data"])

	require.Len(t, store.filters, 1)
	assert.Equal(t, models.DefaultListLimit, store.filters[0].Limit)
}

func TestListCheckInsFilters(t *testing.T) {
	store := &stubStore{}
	router := newCheckInRouter(store)

	req := httptest.NewRequest(http.MethodGet,
		"/api/checkins?saleName=An&limit=5&startDate=2026-03-01&endDate=2026-03-10", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	require.Len(t, store.filters, 1)
	filter := store.filters[0]
	assert.Equal(t, "An", filter.SaleName)
	assert.Equal(t, 5, filter.Limit)
	require.NotNil(t, filter.StartDate)
	require.NotNil(t, filter.EndDate)
	// endDate covers the whole day
	assert.Equal(t, 23, filter.EndDate.Hour())
}

func TestListCheckInsRejectsBadDate(t *testing.T) {
	router := newCheckInRouter(&stubStore{})

	req := httptest.NewRequest(http.MethodGet, "/api/checkins?startDate=03/01/2026", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestGetCheckInNotFound(t *testing.T) {
	router := newCheckInRouter(&stubStore{notFound: true})

	req := httptest.NewRequest(http.MethodGet, "/api/checkin/missing-id", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusNotFound, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "Check-in not found", body["error"])
}

func TestDeleteCheckIn(t *testing.T) {
	store := &stubStore{}
	router := newCheckInRouter(store)

	req := httptest.NewRequest(http.MethodDelete, "/api/checkin/some-id", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	body := decodeBody(t, rr)
	assert.Equal(t, "Check-in deleted successfully", body["message"])
	assert.Equal(t, []string{"some-id"}, store.deleted)
}

func TestDeleteCheckInNotFound(t *testing.T) {
	router := newCheckInRouter(&stubStore{notFound: true})

	req := httptest.NewRequest(http.MethodDelete, "/api/checkin/missing-id", nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusNotFound, rr.Code)
}
