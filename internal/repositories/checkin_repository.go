package repositories

import (
	"context"
	"errors"
	"fmt"

	"checkin-backend/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// ErrCheckInNotFound is returned when no record has the requested id
var ErrCheckInNotFound = errors.New("check-in not found")

type CheckInRepository struct {
	DB *pgxpool.Pool
}

func NewCheckInRepository(db *pgxpool.Pool) *CheckInRepository {
	return &CheckInRepository{DB: db}
}

const checkinColumns = `id, sale_name, customer_name, customer_phone, location,
	latitude, longitude, notes, project, image_url, checkin_type, ts, created_at`

// Create inserts a new check-in record. The id and the authoritative
// timestamp are assigned here, never by the caller.
func (r *CheckInRepository) Create(ctx context.Context, rec *models.CheckInRecord) error {
	rec.ID = uuid.NewString()
	query := `
		INSERT INTO checkins (id, sale_name, customer_name, customer_phone, location,
			latitude, longitude, notes, project, image_url, checkin_type, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING ts
	`
	return r.DB.QueryRow(ctx, query,
		rec.ID,
		rec.SaleName,
		rec.CustomerName,
		rec.CustomerPhone,
		rec.Location,
		rec.Latitude,
		rec.Longitude,
		rec.Notes,
		rec.Project,
		rec.ImageURL,
		rec.CheckInType,
		rec.CreatedAt,
	).Scan(&rec.Timestamp)
}

// Get retrieves a single check-in by id
func (r *CheckInRepository) Get(ctx context.Context, id string) (*models.CheckInRecord, error) {
	query := `SELECT ` + checkinColumns + ` FROM checkins WHERE id = $1`

	var rec models.CheckInRecord
	err := r.DB.QueryRow(ctx, query, id).Scan(
		&rec.ID, &rec.SaleName, &rec.CustomerName, &rec.CustomerPhone, &rec.Location,
		&rec.Latitude, &rec.Longitude, &rec.Notes, &rec.Project, &rec.ImageURL,
		&rec.CheckInType, &rec.Timestamp, &rec.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrCheckInNotFound
		}
		return nil, err
	}
	return &rec, nil
}

// List returns check-ins matching the filter, newest first. The store's
// query model stops at exact-match sale_name plus a timestamp window;
// substring filtering is the caller's problem.
func (r *CheckInRepository) List(ctx context.Context, filter models.CheckInFilter) ([]*models.CheckInRecord, error) {
	query := `SELECT ` + checkinColumns + ` FROM checkins WHERE 1=1`
	args := []interface{}{}

	if filter.SaleName != "" {
		args = append(args, filter.SaleName)
		query += fmt.Sprintf(" AND sale_name = $%d", len(args))
	}
	if filter.StartDate != nil {
		args = append(args, *filter.StartDate)
		query += fmt.Sprintf(" AND ts >= $%d", len(args))
	}
	if filter.EndDate != nil {
		args = append(args, *filter.EndDate)
		query += fmt.Sprintf(" AND ts <= $%d", len(args))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = models.DefaultListLimit
	}
	args = append(args, limit)
	query += fmt.Sprintf(" ORDER BY ts DESC LIMIT $%d", len(args))

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.CheckInRecord
	for rows.Next() {
		var rec models.CheckInRecord
		err := rows.Scan(
			&rec.ID, &rec.SaleName, &rec.CustomerName, &rec.CustomerPhone, &rec.Location,
			&rec.Latitude, &rec.Longitude, &rec.Notes, &rec.Project, &rec.ImageURL,
			&rec.CheckInType, &rec.Timestamp, &rec.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

// ListAllBySale returns every record (optionally restricted to one
// agent) with no limit, for the aggregation endpoints. Acceptable only
// because check-in volumes are small business events.
func (r *CheckInRepository) ListAllBySale(ctx context.Context, saleName string) ([]*models.CheckInRecord, error) {
	query := `SELECT ` + checkinColumns + ` FROM checkins`
	args := []interface{}{}
	if saleName != "" {
		query += ` WHERE sale_name = $1`
		args = append(args, saleName)
	}
	query += ` ORDER BY ts DESC`

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []*models.CheckInRecord
	for rows.Next() {
		var rec models.CheckInRecord
		err := rows.Scan(
			&rec.ID, &rec.SaleName, &rec.CustomerName, &rec.CustomerPhone, &rec.Location,
			&rec.Latitude, &rec.Longitude, &rec.Notes, &rec.Project, &rec.ImageURL,
			&rec.CheckInType, &rec.Timestamp, &rec.CreatedAt,
		)
		if err != nil {
			return nil, err
		}
		records = append(records, &rec)
	}
	return records, rows.Err()
}

// Delete permanently removes a check-in. No soft delete, no audit trail.
func (r *CheckInRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.DB.Exec(ctx, `DELETE FROM checkins WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrCheckInNotFound
	}
	return nil
}
