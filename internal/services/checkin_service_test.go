package services

import (
	"context"
	"testing"

	"checkin-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeCheckInStore struct {
	created []*models.CheckInRecord
	deleted []string
}

func (f *fakeCheckInStore) Create(ctx context.Context, rec *models.CheckInRecord) error {
	rec.ID = "generated-id"
	f.created = append(f.created, rec)
	return nil
}

func (f *fakeCheckInStore) Get(ctx context.Context, id string) (*models.CheckInRecord, error) {
	return &models.CheckInRecord{ID: id}, nil
}

func (f *fakeCheckInStore) List(ctx context.Context, filter models.CheckInFilter) ([]*models.CheckInRecord, error) {
	return nil, nil
}

func (f *fakeCheckInStore) ListAllBySale(ctx context.Context, saleName string) ([]*models.CheckInRecord, error) {
	return nil, nil
}

func (f *fakeCheckInStore) Delete(ctx context.Context, id string) error {
	f.deleted = append(f.deleted, id)
	return nil
}

func TestCreateValidatesRequiredNames(t *testing.T) {
	store := &fakeCheckInStore{}
	s := NewCheckInService(store)

	cases := []models.CreateCheckInRequest{
		{SaleName: "", CustomerName: "KH A"},
		{SaleName: "An", CustomerName: ""},
		{SaleName: "   ", CustomerName: "KH A"},
		{SaleName: "An", CustomerName: "\t"},
	}
	for _, req := range cases {
		_, err := s.Create(context.Background(), &req)
		assert.ErrorIs(t, err, ErrValidation)
	}

	// Rejected requests never touch the store
	assert.Empty(t, store.created)
}

func TestCreateDefaultsCheckInType(t *testing.T) {
	store := &fakeCheckInStore{}
	s := NewCheckInService(store)

	rec, err := s.Create(context.Background(), &models.CreateCheckInRequest{
		SaleName:     "An",
		CustomerName: "KH A",
	})
	require.NoError(t, err)
	assert.Equal(t, models.CheckInTypeMeeting, rec.CheckInType)
	assert.Equal(t, "generated-id", rec.ID)
}

func TestCreateKeepsExplicitType(t *testing.T) {
	s := NewCheckInService(&fakeCheckInStore{})

	rec, err := s.Create(context.Background(), &models.CreateCheckInRequest{
		SaleName:     "An",
		CustomerName: "KH A",
		CheckInType:  models.CheckInTypeSiteVisit,
		Project:      "Horizon",
		Notes:        "met at showroom",
	})
	require.NoError(t, err)
	assert.Equal(t, models.CheckInTypeSiteVisit, rec.CheckInType)
	assert.Equal(t, "Horizon", rec.Project)
	assert.Equal(t, "met at showroom", rec.Notes)
}

func TestDeletePassesThrough(t *testing.T) {
	store := &fakeCheckInStore{}
	s := NewCheckInService(store)

	require.NoError(t, s.Delete(context.Background(), "abc"))
	assert.Equal(t, []string{"abc"}, store.deleted)
}
