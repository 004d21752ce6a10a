// Copyright (c) 2026 Yadawity. All rights reserved.
// Author: eng@yadawity.com

package auth

import "time"

// # Authentication Constraints

const (
	// SessionTTL is the duration a login session (and therefore its cookie)
	// remains valid. Seven days balances convenience against the exposure
	// window of a stolen cookie.
	SessionTTL = 7 * 24 * time.Hour

	// SessionTokenLength is the byte length of the random per-session token
	// that keys the login cookie HMAC.
	SessionTokenLength = 32

	// CSRFTokenLength is the byte length of the random per-session CSRF token.
	CSRFTokenLength = 32

	// VerifyTokenTTL is the duration an email verification token remains valid.
	// Long-lived (24 hours) as users might not check email immediately.
	VerifyTokenTTL = 24 * time.Hour
)
