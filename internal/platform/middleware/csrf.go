// Copyright (c) 2026 Yadawity. All rights reserved.
// Author: eng@yadawity.com

package middleware

import (
	"context"
	"net/http"

	"github.com/yadawity/yadawity/internal/platform/apperr"
	"github.com/yadawity/yadawity/internal/platform/constants"
	"github.com/yadawity/yadawity/internal/platform/respond"
	"github.com/yadawity/yadawity/internal/platform/sec"
)

// CSRFTokenStore resolves the CSRF token bound to a session.
type CSRFTokenStore interface {
	Get(ctx context.Context, sessionID string) (string, error)
}

// RequireCSRF rejects state-changing requests whose X-CSRF-Token header does
// not match the token bound to the current session.
//
// # Flow
//  1. GET, HEAD, and OPTIONS bypass the check entirely. OPTIONS never reaches
//     this middleware in practice because CORS short-circuits preflights
//     earlier in the chain.
//  2. Anonymous requests pass through untouched — the auth gates downstream
//     already reject them, and a guest has no session to forge against.
//  3. The presented header is compared against the stored per-session token
//     in constant time. Absent or mismatched tokens abort with HTTP 403.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireCSRF(store CSRFTokenStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Read-only methods bypass ───────────────────────────────────
			switch request.Method {
			case http.MethodGet, http.MethodHead, http.MethodOptions:
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Guests have no session to protect ──────────────────────────
			claims := GetUser(request.Context())
			if claims == nil {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 3. Token comparison ───────────────────────────────────────────
			presented := request.Header.Get(constants.HeaderCSRFToken)
			if presented == "" {
				respond.Error(writer, request, apperr.Forbidden("Missing CSRF token"))
				return
			}

			expected, err := store.Get(request.Context(), claims.SessionID)
			if err != nil || expected == "" {
				respond.Error(writer, request, apperr.Forbidden("CSRF validation failed"))
				return
			}

			if !sec.ConstantTimeEquals(presented, expected) {
				respond.Error(writer, request, apperr.Forbidden("CSRF validation failed"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}
