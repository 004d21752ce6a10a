// Copyright (c) 2026 Yadawity. All rights reserved.
// Author: eng@yadawity.com

/*
Package auth implements the user identity and session management layer.

It defines the core domain entities (User, Session) and the logic for the
signed login cookie: issuance at login, validation on every credentialed
request, and invalidation at logout.

# Architecture

This layer is the "Truth" of the system. Entities defined here have no external
dependencies and encapsulate all business rules related to user identity.
*/
package auth

import (
	"time"

	"github.com/yadawity/yadawity/internal/platform/sec"
)

// # Domain Entities

// User represents a registered member of the Yadawity marketplace.
type User struct {
	ID           int64        `json:"user_id"`
	Email        string       `json:"email"`
	PasswordHash string       `json:"-"` // Explicitly omitted from JSON for security.
	Name         string       `json:"name"`
	Role         sec.UserRole `json:"role"`
	IsVerified   bool         `json:"is_verified"`
	IsActive     bool         `json:"is_active"`
	Bio          *string      `json:"bio,omitempty"`
	Specialty    *string      `json:"specialty,omitempty"`
	YearsOfExp   *int         `json:"years_of_experience,omitempty"`
	CreatedAt    time.Time    `json:"created_at"`
	UpdatedAt    time.Time    `json:"updated_at"`
}

// Session represents a server-side login session.
//
// The client never holds the session token itself — only the login cookie,
// whose HMAC is derived from this row. Invalidating the row invalidates
// every cookie pointing at it.
type Session struct {
	ID           string    `json:"id"`
	UserID       int64     `json:"user_id"`
	SessionToken string    `json:"-"` // Server-held HMAC key material. Omitted for security.
	IPAddress    string    `json:"ip_address"`
	UserAgent    string    `json:"user_agent"`
	IsActive     bool      `json:"is_active"`
	LoginTime    time.Time `json:"login_time"`
	ExpiresAt    time.Time `json:"expires_at"`
	CreatedAt    time.Time `json:"created_at"`
}

// # Field Identifiers

// Global field names for validation and identity mapping in the authentication domain.
const (
	FieldEmail     = "email"
	FieldPassword  = "password"
	FieldName      = "name"
	FieldRole      = "role"
	FieldToken     = "token"
	FieldUser      = "user"
	FieldMessage   = "message"
	FieldCSRFToken = "csrf_token"
)
