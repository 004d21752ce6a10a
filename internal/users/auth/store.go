// Copyright (c) 2026 Yadawity. All rights reserved.
// Author: eng@yadawity.com

package auth

import (
	"context"
	"time"
)

// # Storage Contracts

// UserRepository abstracts persistent storage for user accounts.
type UserRepository interface {
	Create(ctx context.Context, user *User) error
	FindByEmail(ctx context.Context, email string) (*User, error)
	FindActiveByID(ctx context.Context, id int64) (*User, error)
	MarkVerified(ctx context.Context, userID int64) error
}

// SessionRepository abstracts persistent storage for login sessions.
type SessionRepository interface {
	Create(ctx context.Context, session *Session) error

	// FindLatestActive returns the most recent active, non-expired session
	// for the user. Concurrent sessions per user are allowed; the newest one
	// is the authority for cookie validation.
	FindLatestActive(ctx context.Context, userID int64) (*Session, error)

	Deactivate(ctx context.Context, sessionID string) error
	DeactivateAll(ctx context.Context, userID int64) error
	DeleteExpired(ctx context.Context, before time.Time) error
}

// CSRFTokenRepository abstracts volatile storage for per-session CSRF tokens.
type CSRFTokenRepository interface {
	Set(ctx context.Context, sessionID, token string, ttl time.Duration) error
	Get(ctx context.Context, sessionID string) (string, error)
	Delete(ctx context.Context, sessionID string) error
}
