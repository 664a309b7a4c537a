// internal/attractions/implementation.go
package attractions

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"zooplatform/internal/apperr"
)

// service implements the Service interface.
type service struct {
	db       *sql.DB
	notifier Notifier
}

// NewService creates a new attraction registry backed by Postgres.
// notifier may be nil, in which case status changes are not announced.
func NewService(db *sql.DB, notifier Notifier) Service {
	return &service{db: db, notifier: notifier}
}

// Create registers an attraction and its zeroed queue state in a single
// transaction, so a queue row exists for every attraction from the start.
func (s *service) Create(ctx context.Context, na NewAttraction) (*Attraction, error) {
	if strings.TrimSpace(na.Name) == "" {
		return nil, fmt.Errorf("%w: name is required", apperr.ErrInvalidInput)
	}
	if na.Latitude < -90 || na.Latitude > 90 {
		return nil, fmt.Errorf("%w: latitude out of range", apperr.ErrInvalidInput)
	}
	if na.Longitude < -180 || na.Longitude > 180 {
		return nil, fmt.Errorf("%w: longitude out of range", apperr.ErrInvalidInput)
	}
	if na.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", apperr.ErrInvalidInput)
	}
	status := na.Status
	if status == "" {
		status = StatusOpen
	}
	if !validStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", apperr.ErrInvalidInput, na.Status)
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	a := &Attraction{
		ID:           uuid.New(),
		Name:         na.Name,
		Category:     na.Category,
		Latitude:     na.Latitude,
		Longitude:    na.Longitude,
		VisitMinutes: na.VisitMinutes,
		Capacity:     na.Capacity,
		Status:       status,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	query := `
		INSERT INTO attractions (id, name, category, latitude, longitude, visit_minutes, capacity, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`
	_, err = tx.ExecContext(ctx, query, a.ID, a.Name, a.Category, a.Latitude, a.Longitude, a.VisitMinutes, a.Capacity, a.Status, a.CreatedAt, a.UpdatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, fmt.Errorf("%w: attraction %q already exists", apperr.ErrConflict, a.Name)
		}
		return nil, fmt.Errorf("insert attraction: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO queue_states (attraction_id, queue_length, estimated_wait_minutes, updated_at)
		VALUES ($1, 0, 0, $2)
	`, a.ID, a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert queue state: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("commit transaction: %w", err)
	}

	return a, nil
}

// Get retrieves an attraction by its ID.
func (s *service) Get(ctx context.Context, id uuid.UUID) (*Attraction, error) {
	query := `
		SELECT id, name, category, latitude, longitude, visit_minutes, capacity, status, created_at, updated_at
		FROM attractions
		WHERE id = $1
	`
	a := &Attraction{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&a.ID,
		&a.Name,
		&a.Category,
		&a.Latitude,
		&a.Longitude,
		&a.VisitMinutes,
		&a.Capacity,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: attraction %s", apperr.ErrNotFound, id)
		}
		return nil, fmt.Errorf("query attraction: %w", err)
	}
	return a, nil
}

// List returns attractions ordered by name. With no status filter the
// listing is restricted to open attractions.
func (s *service) List(ctx context.Context, filter Filter) ([]*Attraction, error) {
	status := filter.Status
	if status == "" {
		status = StatusOpen
	}
	if !validStatus(status) {
		return nil, fmt.Errorf("%w: unknown status %q", apperr.ErrInvalidInput, filter.Status)
	}

	query := `
		SELECT id, name, category, latitude, longitude, visit_minutes, capacity, status, created_at, updated_at
		FROM attractions
		WHERE status = $1
	`
	args := []interface{}{status}
	if filter.Category != "" {
		query += " AND category = $2"
		args = append(args, filter.Category)
	}
	query += " ORDER BY name ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query attractions: %w", err)
	}
	defer rows.Close()

	var out []*Attraction
	for rows.Next() {
		a := &Attraction{}
		err := rows.Scan(
			&a.ID,
			&a.Name,
			&a.Category,
			&a.Latitude,
			&a.Longitude,
			&a.VisitMinutes,
			&a.Capacity,
			&a.Status,
			&a.CreatedAt,
			&a.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan attraction: %w", err)
		}
		out = append(out, a)
	}
	return out, rows.Err()
}

// SetStatus mutates an attraction's operating status and announces the
// change to visitors.
func (s *service) SetStatus(ctx context.Context, id uuid.UUID, newStatus, reason string) (*Attraction, error) {
	if !validStatus(newStatus) {
		return nil, fmt.Errorf("%w: unknown status %q", apperr.ErrInvalidInput, newStatus)
	}
	if strings.TrimSpace(reason) == "" {
		return nil, fmt.Errorf("%w: reason is required", apperr.ErrInvalidInput)
	}

	query := `
		UPDATE attractions
		SET status = $1, updated_at = NOW()
		WHERE id = $2
		RETURNING id, name, category, latitude, longitude, visit_minutes, capacity, status, created_at, updated_at
	`
	a := &Attraction{}
	err := s.db.QueryRowContext(ctx, query, newStatus, id).Scan(
		&a.ID,
		&a.Name,
		&a.Category,
		&a.Latitude,
		&a.Longitude,
		&a.VisitMinutes,
		&a.Capacity,
		&a.Status,
		&a.CreatedAt,
		&a.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: attraction %s", apperr.ErrNotFound, id)
		}
		return nil, fmt.Errorf("update attraction status: %w", err)
	}

	if s.notifier != nil {
		if err := s.notifier.BroadcastStatusChange(ctx, a.ID, a.Name, a.Status, reason); err != nil {
			// The status change itself committed; a failed announcement
			// is logged, not surfaced.
			log.Printf("broadcast status change for %s: %v", a.ID, err)
		}
	}

	return a, nil
}
