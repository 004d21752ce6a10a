// Copyright (c) 2026 Yadawity. All rights reserved.
// Author: eng@yadawity.com

/*
Package auth implements the core identity and access management (IAM) system.

It handles everything from user registration and secure password hashing to the
full lifecycle of the signed login cookie and its server-side session row.

Architecture:

  - Service: Orchestrates business logic (Register, Login, CheckCredentials).
  - Repository: Abstracted interfaces for Postgres (Users, Sessions) and Redis (CSRF tokens).
  - Security: Leverages bcrypt hashing and HMAC-SHA256 cookie signing.

The package ensures that identity data remains consistent and secure throughout
the platform's lifecycle.
*/
package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/yadawity/yadawity/internal/platform/apperr"
	"github.com/yadawity/yadawity/internal/platform/sec"
	"github.com/yadawity/yadawity/pkg/uuidv7"
)

// # Contracts & Types

// VerifyTokenProvider defines the contract for email verification tokens.
type VerifyTokenProvider interface {
	Generate(userID int64, email string, timeToLive time.Duration) (string, error)
	Parse(tokenString string) (*sec.VerifyClaims, error)
}

// Service implements user authentication use cases.
//
// # Review Process
//
// This service is critical for security. Any changes to hashing, cookie
// signing, or credential checking must be reviewed by the security team.
type Service struct {
	userRepository      UserRepository
	sessionRepository   SessionRepository
	csrfTokenRepository CSRFTokenRepository
	verifyTokens        VerifyTokenProvider
}

// NewService constructs a new auth [Service] with necessary dependencies.
func NewService(
	userRepo UserRepository,
	sessionRepo SessionRepository,
	csrfRepo CSRFTokenRepository,
	verifyTokens VerifyTokenProvider,
) *Service {
	return &Service{
		userRepository:      userRepo,
		sessionRepository:   sessionRepo,
		csrfTokenRepository: csrfRepo,
		verifyTokens:        verifyTokens,
	}
}

// # Registration Flow

// RegisterInput holds the data required to enroll a new member.
type RegisterInput struct {
	Email    string
	Password string
	Name     string
	Role     sec.UserRole // buyer or artist; admin accounts are provisioned manually
}

/*
Register validates, hashes, and persists a brand new user account.

Description: Enrollment of a new buyer or artist, handling password hashing
and verification token issuance.

Parameters:
  - context: context.Context
  - input: RegisterInput

Returns:
  - *User: Created entity
  - err: Conflict (if identity exists) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterInput) (*User, error) {

	// Verify email uniqueness. Return a client-safe Conflict err.
	_, err := service.userRepository.FindByEmail(context, input.Email)
	if err == nil {
		return nil, apperr.Conflict("Email is already registered")
	}

	// Only buyer and artist accounts self-register.
	role := input.Role
	if role != sec.RoleBuyer && role != sec.RoleArtist {
		role = sec.RoleBuyer
	}

	// Prevent storing plain-text passwords. Default cost is used for balance
	// between security and CPU utilization during registration spikes.
	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Name:         input.Name,
		Role:         role,
		IsVerified:   false,
		IsActive:     true,
	}

	// Persist the user to the database
	if err := service.userRepository.Create(context, user); err != nil {
		return nil, fmt.Errorf("auth_service_register_failed: %w", err)
	}

	return user, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email     string
	Password  string
	UserAgent string
	IPAddress string
}

// LoginResult represents a successfully established user session.
//
// CookieValue is the complete "user_login" cookie payload; CSRFToken must be
// echoed back by the client in the X-CSRF-Token header on every write.
type LoginResult struct {
	CookieValue   string
	CookieExpires time.Time
	CSRFToken     string
	User          *User
}

/*
Login validates user credentials and issues the signed login cookie.

Description: Verifies identity, creates a server-side session row, derives
the HMAC cookie from it, and binds a fresh CSRF token to the session.

Parameters:
  - context: context.Context
  - input: LoginInput

Returns:
  - *LoginResult: Transport-ready session identifiers
  - err: Unauthorized or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*LoginResult, error) {

	// Look up by email. Generic message to prevent enumeration.
	user, err := service.userRepository.FindByEmail(context, input.Email)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// Disabled accounts cannot authenticate.
	if !user.IsActive {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// bcrypt performs a constant-time comparison internally.
	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		return nil, apperr.Unauthorized("Invalid login credentials")
	}

	// Generate the server-held session token (HMAC key material).
	sessionToken, err := sec.GenerateSecureToken(SessionTokenLength)
	if err != nil {
		return nil, fmt.Errorf("auth_service_session_token_failed: %w", err)
	}

	// LoginTime feeds the HMAC and is persisted with second precision, so it
	// must be truncated here or the recomputed HMAC would never match.
	loginTime := time.Now().Truncate(time.Second)
	expiresAt := loginTime.Add(SessionTTL)

	session := &Session{
		ID:           uuidv7.New(),
		UserID:       user.ID,
		SessionToken: sessionToken,
		IPAddress:    input.IPAddress,
		UserAgent:    input.UserAgent,
		IsActive:     true,
		LoginTime:    loginTime,
		ExpiresAt:    expiresAt,
	}

	if err := service.sessionRepository.Create(context, session); err != nil {
		return nil, fmt.Errorf("auth_service_session_creation_failed: %w", err)
	}

	// Bind a CSRF token to the session for the write-request guard.
	csrfToken, err := sec.GenerateSecureToken(CSRFTokenLength)
	if err != nil {
		return nil, fmt.Errorf("auth_service_csrf_token_failed: %w", err)
	}

	if err := service.csrfTokenRepository.Set(context, session.ID, csrfToken, SessionTTL); err != nil {
		return nil, fmt.Errorf("auth_service_csrf_store_failed: %w", err)
	}

	return &LoginResult{
		CookieValue:   sec.LoginCookieValue(user.ID, user.Email, sessionToken, loginTime),
		CookieExpires: expiresAt,
		CSRFToken:     csrfToken,
		User:          user,
	}, nil
}

// # Credential Checking

/*
CheckCredentials resolves a raw login cookie value into authenticated claims.

Description: The single validation path for every credentialed request.
Parses the cookie, loads the owning user and their most recent active
session, recomputes the HMAC from server-held data, and compares it in
constant time.

Every failure mode — malformed cookie, unknown or inactive user, missing or
expired session, HMAC mismatch, storage unavailability — yields an
Unauthorized error. Callers (the Authenticate middleware) translate that
into the anonymous guest state; it never becomes a 5xx.

Parameters:
  - context: context.Context
  - rawCookie: string (the "user_login" cookie value)

Returns:
  - *sec.AuthClaims: Identity of the cookie holder
  - err: Unauthorized for any invalid cookie

Side effects: none (pure read).
*/
func (service *Service) CheckCredentials(context context.Context, rawCookie string) (*sec.AuthClaims, error) {

	// 1. Structural parse: "{user_id}_{hmac_hex}".
	userID, presentedMAC, err := sec.ParseLoginCookie(rawCookie)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login cookie")
	}

	// 2. The user must exist and be active.
	user, err := service.userRepository.FindActiveByID(context, userID)
	if err != nil {
		return nil, apperr.Unauthorized("Invalid login cookie")
	}

	// 3. The most recent active, non-expired session is the HMAC authority.
	session, err := service.sessionRepository.FindLatestActive(context, user.ID)
	if err != nil {
		return nil, apperr.Unauthorized("Session expired or not found")
	}

	// 4. Recompute and compare. hmac.Equal underneath — a tampered suffix
	// must not be distinguishable from a wrong one by timing.
	expectedMAC := sec.LoginHMAC(session.SessionToken, user.Email, user.ID, session.LoginTime)
	if !sec.VerifyLoginHMAC(presentedMAC, expectedMAC) {
		return nil, apperr.Unauthorized("Invalid login cookie")
	}

	return &sec.AuthClaims{
		UserID:     user.ID,
		Email:      user.Email,
		Role:       string(user.Role),
		IsVerified: user.IsVerified,
		SessionID:  session.ID,
	}, nil
}

// # Session Management

/*
Logout permanently deactivates the given session.

Description: Ensures that every cookie derived from the session can never be
used again, and drops the bound CSRF token. Logout of an already-dead
session is treated as success (idempotent operation).

Parameters:
  - context: context.Context
  - sessionID: string

Returns:
  - err: Deactivation failures
*/
func (service *Service) Logout(context context.Context, sessionID string) error {

	if err := service.sessionRepository.Deactivate(context, sessionID); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	// CSRF token cleanup is best-effort; the Redis TTL is the backstop.
	_ = service.csrfTokenRepository.Delete(context, sessionID)

	return nil
}

// SessionState describes the remaining lifetime of the caller's session.
// Long-lived pages poll this to force re-authentication past expiry.
type SessionState struct {
	ExpiresAt time.Time `json:"expires_at"`
	ExpiresIn int64     `json:"expires_in_seconds"`
}

/*
SessionTimeout reports the expiry of the user's current session.

Returns Unauthorized if no live session remains, which clients treat as the
signal to redirect to login.
*/
func (service *Service) SessionTimeout(context context.Context, userID int64) (*SessionState, error) {
	session, err := service.sessionRepository.FindLatestActive(context, userID)
	if err != nil {
		return nil, apperr.Unauthorized("Session expired")
	}

	return &SessionState{
		ExpiresAt: session.ExpiresAt,
		ExpiresIn: int64(time.Until(session.ExpiresAt).Seconds()),
	}, nil
}

// # Email Verification

/*
RequestVerification issues a signed email verification token.

Description: The token is delivered to the user out-of-band (email delivery
is an external collaborator); this service only mints it.

Parameters:
  - context: context.Context
  - userID: int64

Returns:
  - string: Signed verification token
  - err: Generation errors
*/
func (service *Service) RequestVerification(context context.Context, userID int64) (string, error) {
	user, err := service.userRepository.FindActiveByID(context, userID)
	if err != nil {
		return "", err
	}

	token, err := service.verifyTokens.Generate(user.ID, user.Email, VerifyTokenTTL)
	if err != nil {
		return "", fmt.Errorf("auth_service_verify_token_failed: %w", err)
	}

	return token, nil
}

/*
VerifyEmail confirms a user's email address using a signed token.

Parameters:
  - context: context.Context
  - token: string

Returns:
  - err: Invalid token or database errors
*/
func (service *Service) VerifyEmail(context context.Context, token string) error {

	claims, err := service.verifyTokens.Parse(token)
	if err != nil {
		return apperr.Unprocessable("Verification token is invalid or expired")
	}

	if err := service.userRepository.MarkVerified(context, claims.UserID); err != nil {
		return fmt.Errorf("auth_service_verify_email_failed: %w", err)
	}

	return nil
}
