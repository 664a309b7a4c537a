// internal/queue/implementation.go
package queue

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"zooplatform/internal/apperr"
	"zooplatform/internal/monitoring"
)

// service implements the Service interface.
type service struct {
	db     *sql.DB
	policy Policy
	tracer trace.Tracer
}

// NewService creates a new queue state store backed by Postgres.
func NewService(db *sql.DB) Service {
	return &service{
		db:     db,
		tracer: otel.Tracer("zooplatform/queue"),
	}
}

// GetStatus retrieves the current queue state for one attraction.
func (s *service) GetStatus(ctx context.Context, attractionID uuid.UUID) (*State, error) {
	query := `
		SELECT q.attraction_id, a.name, q.queue_length, q.estimated_wait_minutes, q.updated_at
		FROM queue_states q
		JOIN attractions a ON a.id = q.attraction_id
		WHERE q.attraction_id = $1
	`
	st := &State{}
	err := s.db.QueryRowContext(ctx, query, attractionID).Scan(
		&st.AttractionID,
		&st.AttractionName,
		&st.Length,
		&st.WaitMinutes,
		&st.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: attraction %s", apperr.ErrNotFound, attractionID)
		}
		return nil, fmt.Errorf("query queue state: %w", err)
	}
	return st, nil
}

// ListAll returns every queue state joined with its attraction name,
// ordered by name.
func (s *service) ListAll(ctx context.Context) ([]*State, error) {
	query := `
		SELECT q.attraction_id, a.name, q.queue_length, q.estimated_wait_minutes, q.updated_at
		FROM queue_states q
		JOIN attractions a ON a.id = q.attraction_id
		ORDER BY a.name ASC
	`
	rows, err := s.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("query queue states: %w", err)
	}
	defer rows.Close()

	var out []*State
	for rows.Next() {
		st := &State{}
		err := rows.Scan(
			&st.AttractionID,
			&st.AttractionName,
			&st.Length,
			&st.WaitMinutes,
			&st.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan queue state: %w", err)
		}
		out = append(out, st)
	}
	return out, rows.Err()
}

// Join applies one arrival as a single atomic update. The increment and
// the recomputed wait land in the same statement, so concurrent joins
// never lose updates and no intermediate state is observable. The
// attraction's operating status is not consulted.
func (s *service) Join(ctx context.Context, attractionID uuid.UUID) (*State, error) {
	ctx, span := s.tracer.Start(ctx, "queue.join",
		trace.WithAttributes(attribute.String("attraction.id", attractionID.String())),
	)
	defer span.End()

	query := `
		UPDATE queue_states
		SET queue_length = queue_length + 1,
		    estimated_wait_minutes = (queue_length + 1) * $1,
		    updated_at = $2
		WHERE attraction_id = $3
		RETURNING attraction_id,
		          (SELECT name FROM attractions WHERE id = attraction_id),
		          queue_length, estimated_wait_minutes, updated_at
	`
	st := &State{}
	err := s.db.QueryRowContext(ctx, query, minutesPerVisitor, time.Now().UTC(), attractionID).Scan(
		&st.AttractionID,
		&st.AttractionName,
		&st.Length,
		&st.WaitMinutes,
		&st.UpdatedAt,
	)
	monitoring.CountQueueOperation("join", err)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: attraction %s", apperr.ErrNotFound, attractionID)
		}
		return nil, fmt.Errorf("apply join: %w", err)
	}

	span.SetAttributes(
		attribute.Int("queue.length", st.Length),
		attribute.Int("queue.wait_minutes", st.WaitMinutes),
	)
	monitoring.SetQueueLength(st.AttractionName, st.Length)
	return st, nil
}

// Override is the staff correction path. Both values must be
// non-negative; no consistency between them is enforced, so staff can
// deliberately set a pair the policy would never produce.
func (s *service) Override(ctx context.Context, attractionID uuid.UUID, length, waitMinutes int) (*State, error) {
	ctx, span := s.tracer.Start(ctx, "queue.override",
		trace.WithAttributes(
			attribute.String("attraction.id", attractionID.String()),
			attribute.Int("queue.length", length),
			attribute.Int("queue.wait_minutes", waitMinutes),
		),
	)
	defer span.End()

	if length < 0 {
		return nil, fmt.Errorf("%w: queue_length must be non-negative", apperr.ErrInvalidInput)
	}
	if waitMinutes < 0 {
		return nil, fmt.Errorf("%w: estimated_wait_minutes must be non-negative", apperr.ErrInvalidInput)
	}

	query := `
		UPDATE queue_states
		SET queue_length = $1,
		    estimated_wait_minutes = $2,
		    updated_at = $3
		WHERE attraction_id = $4
		RETURNING attraction_id,
		          (SELECT name FROM attractions WHERE id = attraction_id),
		          queue_length, estimated_wait_minutes, updated_at
	`
	st := &State{}
	err := s.db.QueryRowContext(ctx, query, length, waitMinutes, time.Now().UTC(), attractionID).Scan(
		&st.AttractionID,
		&st.AttractionName,
		&st.Length,
		&st.WaitMinutes,
		&st.UpdatedAt,
	)
	monitoring.CountQueueOperation("override", err)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: attraction %s", apperr.ErrNotFound, attractionID)
		}
		return nil, fmt.Errorf("apply override: %w", err)
	}

	monitoring.SetQueueLength(st.AttractionName, st.Length)
	return st, nil
}
