// Copyright (c) 2026 Yadawity. All rights reserved.
// Author: eng@yadawity.com

package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/yadawity/yadawity/internal/platform/apperr"
	"github.com/yadawity/yadawity/internal/platform/dberr"
)

// # User Repository

// PostgresUserRepository implements the UserRepository interface using pgx.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

/*
Create persists a new user record into the users.account table.

Description: Persists account metadata and hydrates the generated ID and
timestamps back into the entity.

Parameters:
  - context: context.Context
  - user: *User (Entity to persist)

Returns:
  - error: Conflict on duplicate email, or connectivity errors
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	const query = `
		INSERT INTO users.account (
			email, passwordhash, name, role, isverified, isactive, createdat, updatedat
		) VALUES ($1, $2, $3, $4, $5, $6, NOW(), NOW())
		RETURNING id, createdat, updatedat`

	err := repository.pool.QueryRow(context, query,
		user.Email,
		user.PasswordHash,
		user.Name,
		user.Role,
		user.IsVerified,
		user.IsActive,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)

	return dberr.Wrap(err, "create_user")
}

/*
FindByEmail retrieves a user record by their unique email address.

Parameters:
  - context: context.Context
  - email: string

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or database errors
*/
func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	const query = `
		SELECT id, email, passwordhash, name, role, isverified, isactive,
		       bio, specialty, yearsofexperience, createdat, updatedat
		FROM users.account
		WHERE email = $1`

	user := &User{}
	err := repository.pool.QueryRow(context, query, email).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.Role,
		&user.IsVerified,
		&user.IsActive,
		&user.Bio,
		&user.Specialty,
		&user.YearsOfExp,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User not found with this email")
		}
		return nil, fmt.Errorf("postgres_user_repo_find_by_email_failed: %w", err)
	}

	return user, nil
}

/*
FindActiveByID retrieves an active user record by their unique ID.

Description: The credential checker's user lookup. Soft-disabled accounts
(isactive = FALSE) are indistinguishable from missing ones by design — both
fail closed to the guest state.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *User: Hydrated account entity
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresUserRepository) FindActiveByID(context context.Context, id int64) (*User, error) {
	const query = `
		SELECT id, email, passwordhash, name, role, isverified, isactive,
		       bio, specialty, yearsofexperience, createdat, updatedat
		FROM users.account
		WHERE id = $1 AND isactive = TRUE`

	user := &User{}
	err := repository.pool.QueryRow(context, query, id).Scan(
		&user.ID,
		&user.Email,
		&user.PasswordHash,
		&user.Name,
		&user.Role,
		&user.IsVerified,
		&user.IsActive,
		&user.Bio,
		&user.Specialty,
		&user.YearsOfExp,
		&user.CreatedAt,
		&user.UpdatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("User not found")
		}
		return nil, fmt.Errorf("postgres_user_repo_find_active_failed: %w", err)
	}

	return user, nil
}

/*
MarkVerified updates the user's status to isverified = TRUE.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - error: Database errors
*/
func (repository *PostgresUserRepository) MarkVerified(context context.Context, userID int64) error {
	const query = "UPDATE users.account SET isverified = TRUE, updatedat = NOW() WHERE id = $1"
	_, err := repository.pool.Exec(context, query, userID)
	if err != nil {
		return fmt.Errorf("postgres_user_repo_mark_verified_failed: %w", err)
	}
	return nil
}

// # Session Repository

// PostgresSessionRepository implements the SessionRepository interface.
type PostgresSessionRepository struct {
	pool *pgxpool.Pool
}

// NewSessionRepository creates a new PostgreSQL implementation of SessionRepository.
func NewSessionRepository(pool *pgxpool.Pool) *PostgresSessionRepository {
	return &PostgresSessionRepository{pool: pool}
}

/*
Create persists a new session record into the users.session table.

Description: Records a successful authentication session. The logintime
column is the HMAC input and is stored with second precision.

Parameters:
  - context: context.Context
  - session: *Session

Returns:
  - error: Storage failures
*/
func (repository *PostgresSessionRepository) Create(context context.Context, session *Session) error {
	const query = `
		INSERT INTO users.session (
			id, userid, sessiontoken, ipaddress, useragent, isactive, logintime, expiresat, createdat
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	if session.CreatedAt.IsZero() {
		session.CreatedAt = time.Now()
	}

	_, err := repository.pool.Exec(context, query,
		session.ID,
		session.UserID,
		session.SessionToken,
		session.IPAddress,
		session.UserAgent,
		session.IsActive,
		session.LoginTime,
		session.ExpiresAt,
		session.CreatedAt,
	)

	if err != nil {
		return fmt.Errorf("postgres_session_repo_create_failed: %w", err)
	}

	return nil
}

/*
FindLatestActive retrieves the most recent active, non-expired session for a user.

Description: The credential checker's session lookup. Expiry is enforced in
SQL so a stale-but-active row can never authenticate a cookie.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - *Session: Hydrated session metadata
  - error: apperr.NotFound or execution errors
*/
func (repository *PostgresSessionRepository) FindLatestActive(context context.Context, userID int64) (*Session, error) {
	const query = `
		SELECT id, userid, sessiontoken, ipaddress, useragent, isactive, logintime, expiresat, createdat
		FROM users.session
		WHERE userid = $1 AND isactive = TRUE AND expiresat > NOW()
		ORDER BY logintime DESC
		LIMIT 1`

	session := &Session{}
	err := repository.pool.QueryRow(context, query, userID).Scan(
		&session.ID,
		&session.UserID,
		&session.SessionToken,
		&session.IPAddress,
		&session.UserAgent,
		&session.IsActive,
		&session.LoginTime,
		&session.ExpiresAt,
		&session.CreatedAt,
	)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound("Session not found or expired")
		}
		return nil, fmt.Errorf("postgres_session_repo_find_failed: %w", err)
	}

	return session, nil
}

/*
Deactivate marks a specific session as inactive.

Parameters:
  - context: context.Context
  - sessionID: string

Returns:
  - error: Deactivation failures
*/
func (repository *PostgresSessionRepository) Deactivate(context context.Context, sessionID string) error {
	const query = "UPDATE users.session SET isactive = FALSE WHERE id = $1"
	_, err := repository.pool.Exec(context, query, sessionID)
	if err != nil {
		return fmt.Errorf("postgres_session_repo_deactivate_failed: %w", err)
	}
	return nil
}

/*
DeactivateAll marks all active sessions for a user as inactive.

Description: Used when an account is disabled by an admin — every
outstanding cookie dies with its session row.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - error: Batch deactivation failures
*/
func (repository *PostgresSessionRepository) DeactivateAll(context context.Context, userID int64) error {
	const query = "UPDATE users.session SET isactive = FALSE WHERE userid = $1 AND isactive = TRUE"
	_, err := repository.pool.Exec(context, query, userID)
	if err != nil {
		return fmt.Errorf("postgres_session_repo_deactivate_all_failed: %w", err)
	}
	return nil
}

/*
DeleteExpired permanently removes sessions that expired before the cutoff.

Parameters:
  - context: context.Context
  - before: time.Time

Returns:
  - error: Cleanup failures
*/
func (repository *PostgresSessionRepository) DeleteExpired(context context.Context, before time.Time) error {
	const query = "DELETE FROM users.session WHERE expiresat <= $1"
	_, err := repository.pool.Exec(context, query, before)
	if err != nil {
		return fmt.Errorf("postgres_session_repo_delete_expired_failed: %w", err)
	}
	return nil
}
