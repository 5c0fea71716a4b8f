package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"checkin-backend/internal/models"
)

// ErrValidation wraps every rejected-input error so handlers can map
// the whole family to a 400.
var ErrValidation = errors.New("invalid request")

// CheckInStore is the persistence surface the service needs. The pgx
// repository satisfies it; tests substitute a fake.
type CheckInStore interface {
	Create(ctx context.Context, rec *models.CheckInRecord) error
	Get(ctx context.Context, id string) (*models.CheckInRecord, error)
	List(ctx context.Context, filter models.CheckInFilter) ([]*models.CheckInRecord, error)
	ListAllBySale(ctx context.Context, saleName string) ([]*models.CheckInRecord, error)
	Delete(ctx context.Context, id string) error
}

type CheckInService struct {
	Store CheckInStore
}

func NewCheckInService(store CheckInStore) *CheckInService {
	return &CheckInService{Store: store}
}

// Create validates and stores a new check-in. Nothing is written when
// validation fails.
func (s *CheckInService) Create(ctx context.Context, req *models.CreateCheckInRequest) (*models.CheckInRecord, error) {
	if strings.TrimSpace(req.SaleName) == "" || strings.TrimSpace(req.CustomerName) == "" {
		return nil, fmt.Errorf("%w: sale name and customer name are required", ErrValidation)
	}

	checkInType := req.CheckInType
	if checkInType == "" {
		checkInType = models.CheckInTypeMeeting
	}

	rec := &models.CheckInRecord{
		SaleName:      req.SaleName,
		CustomerName:  req.CustomerName,
		CustomerPhone: req.CustomerPhone,
		Location:      req.Location,
		Latitude:      req.Latitude,
		Longitude:     req.Longitude,
		Notes:         req.Notes,
		Project:       req.Project,
		ImageURL:      req.ImageURL,
		CheckInType:   checkInType,
		CreatedAt:     req.CreatedAt,
	}

	if err := s.Store.Create(ctx, rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// Get returns one check-in by id
func (s *CheckInService) Get(ctx context.Context, id string) (*models.CheckInRecord, error) {
	return s.Store.Get(ctx, id)
}

// List returns check-ins newest first, truncated to the filter limit.
// A caller needing more records raises the limit; there is no cursor.
func (s *CheckInService) List(ctx context.Context, filter models.CheckInFilter) ([]*models.CheckInRecord, error) {
	return s.Store.List(ctx, filter)
}

// ListAll fetches the full record set for an optional agent, for the
// aggregation endpoints that bucket in memory.
func (s *CheckInService) ListAll(ctx context.Context, saleName string) ([]*models.CheckInRecord, error) {
	return s.Store.ListAllBySale(ctx, saleName)
}

// Delete permanently removes a check-in
func (s *CheckInService) Delete(ctx context.Context, id string) error {
	return s.Store.Delete(ctx, id)
}
