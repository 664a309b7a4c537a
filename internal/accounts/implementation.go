// internal/accounts/implementation.go
package accounts

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/base64"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"golang.org/x/time/rate"

	"zooplatform/internal/apperr"
)

const sessionTTL = 24 * time.Hour

// service implements the Service interface.
type service struct {
	db          *sql.DB
	rateLimiter *rate.Limiter
}

// NewService creates a new accounts service backed by Postgres.
func NewService(db *sql.DB) Service {
	return &service{
		db:          db,
		rateLimiter: rate.NewLimiter(rate.Every(time.Second), 10),
	}
}

// Register creates a visitor account and an initial session. Staff
// accounts are provisioned by the seed process, never self-registered.
func (s *service) Register(ctx context.Context, email, password string) (*User, *Session, error) {
	if !s.rateLimiter.Allow() {
		return nil, nil, apperr.ErrRateLimited
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, nil, fmt.Errorf("%w: valid email is required", apperr.ErrInvalidInput)
	}
	if len(password) < 8 {
		return nil, nil, fmt.Errorf("%w: password must be at least 8 characters", apperr.ErrInvalidInput)
	}

	passwordHash, salt, err := hashPassword(password)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		ID:           uuid.New(),
		Email:        email,
		Role:         RoleVisitor,
		CreatedAt:    time.Now().UTC(),
		PasswordHash: passwordHash,
		Salt:         salt,
	}

	query := `
		INSERT INTO users (id, email, password_hash, salt, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = s.db.ExecContext(ctx, query, user.ID, user.Email, user.PasswordHash, user.Salt, user.Role, user.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, nil, fmt.Errorf("%w: email already registered", apperr.ErrConflict)
		}
		return nil, nil, fmt.Errorf("insert user: %w", err)
	}

	session, err := s.createSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

// ProvisionStaff creates a staff account without a session. It is the
// only path that creates a staff role; used by the seed process.
func (s *service) ProvisionStaff(ctx context.Context, email, password string) (*User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, fmt.Errorf("%w: valid email is required", apperr.ErrInvalidInput)
	}
	if len(password) < 8 {
		return nil, fmt.Errorf("%w: password must be at least 8 characters", apperr.ErrInvalidInput)
	}

	passwordHash, salt, err := hashPassword(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &User{
		ID:           uuid.New(),
		Email:        email,
		Role:         RoleStaff,
		CreatedAt:    time.Now().UTC(),
		PasswordHash: passwordHash,
		Salt:         salt,
	}

	query := `
		INSERT INTO users (id, email, password_hash, salt, role, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	_, err = s.db.ExecContext(ctx, query, user.ID, user.Email, user.PasswordHash, user.Salt, user.Role, user.CreatedAt)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code == "23505" {
			return nil, fmt.Errorf("%w: email already registered", apperr.ErrConflict)
		}
		return nil, fmt.Errorf("insert user: %w", err)
	}
	return user, nil
}

// Authenticate verifies credentials and establishes a session. Every
// failure path returns the same InvalidCredentials error so an unknown
// email is indistinguishable from a wrong password.
func (s *service) Authenticate(ctx context.Context, email, password string) (*User, *Session, error) {
	if !s.rateLimiter.Allow() {
		return nil, nil, apperr.ErrRateLimited
	}

	email = strings.ToLower(strings.TrimSpace(email))
	user, err := s.userByEmail(ctx, email)
	if err != nil {
		return nil, nil, apperr.ErrInvalidCredentials
	}

	ok, err := verifyPassword(password, user.Salt, user.PasswordHash)
	if err != nil || !ok {
		return nil, nil, apperr.ErrInvalidCredentials
	}

	session, err := s.createSession(ctx, user)
	if err != nil {
		return nil, nil, err
	}
	return user, session, nil
}

func (s *service) userByEmail(ctx context.Context, email string) (*User, error) {
	query := `
		SELECT id, email, password_hash, salt, role, created_at
		FROM users
		WHERE email = $1
	`
	user := &User{}
	err := s.db.QueryRowContext(ctx, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Salt,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return user, nil
}

// UserByID retrieves a user by ID.
func (s *service) UserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	query := `
		SELECT id, email, password_hash, salt, role, created_at
		FROM users
		WHERE id = $1
	`
	user := &User{}
	err := s.db.QueryRowContext(ctx, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Salt,
		&user.Role,
		&user.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, fmt.Errorf("%w: user %s", apperr.ErrNotFound, id)
		}
		return nil, fmt.Errorf("query user: %w", err)
	}
	return user, nil
}

func (s *service) createSession(ctx context.Context, user *User) (*Session, error) {
	raw := make([]byte, 32)
	if _, err := rand.Read(raw); err != nil {
		return nil, fmt.Errorf("generate session token: %w", err)
	}

	session := &Session{
		Token:     base64.RawURLEncoding.EncodeToString(raw),
		UserID:    user.ID,
		Role:      user.Role,
		ExpiresAt: time.Now().UTC().Add(sessionTTL),
		CreatedAt: time.Now().UTC(),
	}

	query := `
		INSERT INTO sessions (token, user_id, role, expires_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`
	_, err := s.db.ExecContext(ctx, query, session.Token, session.UserID, session.Role, session.ExpiresAt, session.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}
	return session, nil
}

// SessionByToken resolves a session, treating unknown and expired tokens
// alike.
func (s *service) SessionByToken(ctx context.Context, token string) (*Session, error) {
	query := `
		SELECT token, user_id, role, expires_at, created_at
		FROM sessions
		WHERE token = $1 AND expires_at > NOW()
	`
	session := &Session{}
	err := s.db.QueryRowContext(ctx, query, token).Scan(
		&session.Token,
		&session.UserID,
		&session.Role,
		&session.ExpiresAt,
		&session.CreatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, apperr.ErrUnauthenticated
		}
		return nil, fmt.Errorf("query session: %w", err)
	}
	return session, nil
}

// DestroySession removes a session. Destroying an absent session is not
// an error.
func (s *service) DestroySession(ctx context.Context, token string) error {
	_, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE token = $1`, token)
	if err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// PurgeExpiredSessions is periodic housekeeping for the sessions table.
func (s *service) PurgeExpiredSessions(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM sessions WHERE expires_at <= NOW()`)
	if err != nil {
		return 0, fmt.Errorf("purge sessions: %w", err)
	}
	return res.RowsAffected()
}
