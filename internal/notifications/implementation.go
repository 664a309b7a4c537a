// internal/notifications/implementation.go
package notifications

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"zooplatform/internal/apperr"
)

// service implements the Service interface.
type service struct {
	db *sql.DB
}

// NewService creates a new notification store backed by Postgres.
func NewService(db *sql.DB) Service {
	return &service{db: db}
}

// Create records a single notification for one user.
func (s *service) Create(ctx context.Context, userID uuid.UUID, attractionID *uuid.UUID, category, message string) (*Notification, error) {
	if strings.TrimSpace(message) == "" {
		return nil, fmt.Errorf("%w: message is required", apperr.ErrInvalidInput)
	}

	n := &Notification{
		ID:           uuid.New(),
		UserID:       userID,
		AttractionID: attractionID,
		Category:     category,
		Message:      message,
		CreatedAt:    time.Now().UTC(),
	}

	query := `
		INSERT INTO notifications (id, user_id, attraction_id, category, message, read, created_at)
		VALUES ($1, $2, $3, $4, $5, FALSE, $6)
	`
	_, err := s.db.ExecContext(ctx, query, n.ID, n.UserID, n.AttractionID, n.Category, n.Message, n.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert notification: %w", err)
	}
	return n, nil
}

// BroadcastStatusChange fans one status announcement out to every
// visitor account in a single statement.
func (s *service) BroadcastStatusChange(ctx context.Context, attractionID uuid.UUID, name, newStatus, reason string) error {
	message := fmt.Sprintf("%s is now %s: %s", name, newStatus, reason)

	query := `
		INSERT INTO notifications (id, user_id, attraction_id, category, message, read, created_at)
		SELECT gen_random_uuid(), id, $1, $2, $3, FALSE, NOW()
		FROM users
		WHERE role = 'visitor'
	`
	_, err := s.db.ExecContext(ctx, query, attractionID, CategoryStatusChange, message)
	if err != nil {
		return fmt.Errorf("broadcast status change: %w", err)
	}
	return nil
}

// ListForUser returns a user's notifications, newest first.
func (s *service) ListForUser(ctx context.Context, userID uuid.UUID) ([]*Notification, error) {
	query := `
		SELECT id, user_id, attraction_id, category, message, read, created_at
		FROM notifications
		WHERE user_id = $1
		ORDER BY created_at DESC
	`
	rows, err := s.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("query notifications: %w", err)
	}
	defer rows.Close()

	var out []*Notification
	for rows.Next() {
		n := &Notification{}
		err := rows.Scan(
			&n.ID,
			&n.UserID,
			&n.AttractionID,
			&n.Category,
			&n.Message,
			&n.Read,
			&n.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("scan notification: %w", err)
		}
		out = append(out, n)
	}
	return out, rows.Err()
}

// MarkRead flips the read flag, one way only. A notification belonging
// to another user reads as absent.
func (s *service) MarkRead(ctx context.Context, id, userID uuid.UUID) (*Notification, error) {
	query := `
		UPDATE notifications
		SET read = TRUE
		WHERE id = $1 AND user_id = $2
		RETURNING id, user_id, attraction_id, category, message, read, created_at
	`
	n := &Notification{}
	err := s.db.QueryRowContext(ctx, query, id, userID).Scan(
		&n.ID,
		&n.UserID,
		&n.AttractionID,
		&n.Category,
		&n.Message,
		&n.Read,
		&n.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: notification %s", apperr.ErrNotFound, id)
		}
		return nil, fmt.Errorf("mark notification read: %w", err)
	}
	return n, nil
}
