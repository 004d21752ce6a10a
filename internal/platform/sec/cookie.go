// Copyright (c) 2026 Yadawity. All rights reserved.
// Author: eng@yadawity.com

// Package sec provides cryptographic primitives for the Yadawity platform.
//
// # Architecture
//
// This package isolates security-sensitive code (password hashing, login
// cookie signing, verification tokens) from the domain logic. It is an
// Infrastructure service injected into the Application layer.
package sec

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

// # Login Cookie

// The login cookie is the client-held credential. Its value is
// "{user_id}_{hmac_hex}" where the HMAC-SHA256 is computed over
// "{session_token}|{email}|{user_id}|{login_time}" keyed by
// "{session_token}_{email}". The cookie is never stored server-side; it is
// recomputed from the session row on every request and compared in constant
// time, so a cookie is only valid while a matching active session exists.

// ErrMalformedCookie is returned when the cookie value does not match the
// "{user_id}_{hmac_hex}" shape.
var ErrMalformedCookie = errors.New("sec: malformed login cookie")

// AuthClaims is the request-scoped identity resolved from a valid login cookie.
//
// It is injected into the request context by the Authenticate middleware so
// that handlers never touch the cookie or the session store directly.
type AuthClaims struct {
	UserID     int64
	Email      string
	Role       string
	IsVerified bool
	SessionID  string
}

// LoginCookieValue builds the full cookie value for a freshly issued session.
func LoginCookieValue(userID int64, email, sessionToken string, loginTime time.Time) string {
	mac := LoginHMAC(sessionToken, email, userID, loginTime)
	return strconv.FormatInt(userID, 10) + "_" + mac
}

// LoginHMAC recomputes the keyed hash binding a session to its owner.
//
// login_time is serialized as Unix seconds so the value survives storage
// round-trips with second precision.
func LoginHMAC(sessionToken, email string, userID int64, loginTime time.Time) string {
	key := sessionToken + "_" + email
	message := fmt.Sprintf("%s|%s|%d|%d", sessionToken, email, userID, loginTime.Unix())

	h := hmac.New(sha256.New, []byte(key))
	h.Write([]byte(message))
	return hex.EncodeToString(h.Sum(nil))
}

// ParseLoginCookie splits a raw cookie value into user ID and HMAC suffix.
//
// A missing separator or non-numeric ID yields [ErrMalformedCookie]; callers
// must treat that as an anonymous request, never as a server error.
func ParseLoginCookie(value string) (userID int64, mac string, err error) {
	idPart, macPart, found := strings.Cut(value, "_")
	if !found || idPart == "" || macPart == "" {
		return 0, "", ErrMalformedCookie
	}

	userID, err = strconv.ParseInt(idPart, 10, 64)
	if err != nil || userID <= 0 {
		return 0, "", ErrMalformedCookie
	}

	return userID, macPart, nil
}

// VerifyLoginHMAC compares a presented HMAC against the expected value.
//
// Constant-time comparison is a correctness requirement here: a byte-wise
// "==" would leak the matching prefix length as a timing side channel.
func VerifyLoginHMAC(presented, expected string) bool {
	return hmac.Equal([]byte(presented), []byte(expected))
}

// # Secure Tokens

// GenerateSecureToken returns a hex-encoded random token of byteLength bytes.
func GenerateSecureToken(byteLength int) (string, error) {
	buf := make([]byte, byteLength)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("sec: failed to generate secure token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// ConstantTimeEquals reports whether two tokens match without leaking timing.
func ConstantTimeEquals(a, b string) bool {
	return hmac.Equal([]byte(a), []byte(b))
}
