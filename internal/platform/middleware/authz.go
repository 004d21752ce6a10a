// Copyright (c) 2026 Yadawity. All rights reserved.
// Author: eng@yadawity.com

// Package middleware provides the HTTP middleware chain for the Yadawity API server.
//
// # Architecture
//
// Middleware intercepts incoming HTTP requests to apply global policies
// before they reach the domain handlers. This includes cross-cutting concerns
// like Logging, AuthN/AuthZ, CSRF, Rate Limiting, and CORS.
package middleware

import (
	"context"
	"net/http"

	"github.com/yadawity/yadawity/internal/platform/apperr"
	"github.com/yadawity/yadawity/internal/platform/constants"
	"github.com/yadawity/yadawity/internal/platform/ctxutil"
	"github.com/yadawity/yadawity/internal/platform/respond"
	"github.com/yadawity/yadawity/internal/platform/sec"
)

// CredentialChecker resolves a raw login cookie value into request-scoped claims.
//
// # Why an interface?
//
// Defining CredentialChecker here decouples the middleware from the `auth`
// service implementation, allowing us to easily inject mocks during unit testing.
type CredentialChecker interface {
	CheckCredentials(ctx context.Context, rawCookie string) (*sec.AuthClaims, error)
}

// Authenticate resolves the signed login cookie into an identity.
//
// # Flow
//  1. Read the "user_login" cookie. If absent, the request proceeds as anonymous.
//  2. Validate it via [CredentialChecker] (session lookup + HMAC recompute).
//  3. On ANY failure — malformed cookie, tampered HMAC, expired session,
//     storage unavailability — the request proceeds as anonymous. Authentication
//     failure is a guest state, never an error response (gates downstream
//     decide whether a guest may pass).
//  4. On success, inject [*sec.AuthClaims] into the request context.
func Authenticate(checker CredentialChecker) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {

			// ── 1. Anonymous Access ───────────────────────────────────────────
			cookie, err := request.Cookie(constants.LoginCookieName)
			if err != nil || cookie.Value == "" {
				next.ServeHTTP(writer, request)
				return
			}

			// ── 2. Credential Validation ──────────────────────────────────────
			claims, err := checker.CheckCredentials(request.Context(), cookie.Value)
			if err != nil || claims == nil {
				// Fail closed to guest. No error leaves this middleware.
				next.ServeHTTP(writer, request)
				return
			}

			// ── 3. Context Injection ──────────────────────────────────────────
			ctx := ctxutil.WithAuthUser(request.Context(), claims)
			next.ServeHTTP(writer, request.WithContext(ctx))
		})
	}
}

// RequireAuth blocks requests that are not authenticated.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate].
func RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := GetUser(request.Context())
		if claims == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}
		next.ServeHTTP(writer, request)
	})
}

// RequireRole blocks requests if the authenticated user doesn't have the required role.
//
// # Usage
//
// Must be registered in the router AFTER [Authenticate]. It automatically implies
// [RequireAuth] so you don't need to mount both.
//
// # Flow
//  1. Check if [*sec.AuthClaims] exists in context (implies AuthN).
//  2. Check if the user's role meets or exceeds the target using [sec.UserRole.AtLeast].
//  3. If insufficient, abort with HTTP 403 Forbidden.
func RequireRole(role sec.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
			claims := GetUser(request.Context())

			// ── 1. Authentication Check ───────────────────────────────────────
			if claims == nil {
				respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
				return
			}

			// ── 2. Authorization Check ────────────────────────────────────────
			userRole := sec.UserRole(claims.Role)
			if !userRole.AtLeast(role) {
				respond.Error(writer, request, apperr.Forbidden("Insufficient permissions"))
				return
			}

			next.ServeHTTP(writer, request)
		})
	}
}

// RequireVerifiedArtist blocks requests unless the user is an artist whose
// account has passed admin verification (or an admin).
//
// Unverified artists can browse and manage their profile but cannot list
// artworks or auctions for sale.
func RequireVerifiedArtist(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		claims := GetUser(request.Context())

		if claims == nil {
			respond.Error(writer, request, apperr.Unauthorized("Authentication required"))
			return
		}

		userRole := sec.UserRole(claims.Role)
		if userRole == sec.RoleAdmin {
			next.ServeHTTP(writer, request)
			return
		}

		if userRole != sec.RoleArtist {
			respond.Error(writer, request, apperr.Forbidden("Artist account required"))
			return
		}

		if !claims.IsVerified {
			respond.Error(writer, request, apperr.Forbidden("Artist account is pending verification"))
			return
		}

		next.ServeHTTP(writer, request)
	})
}

// GetUser retrieves the [*sec.AuthClaims] from the [context.Context].
//
// # Returns
//   - A pointer to [*sec.AuthClaims] if the user is authenticated.
//   - nil if the user is anonymous.
func GetUser(ctx context.Context) *sec.AuthClaims {
	return ctxutil.GetAuthUser(ctx)
}
