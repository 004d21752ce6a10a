// Copyright (c) 2026 Yadawity. All rights reserved.
// Author: eng@yadawity.com

/*
Package api wires together the HTTP router, middleware chain, and all
domain handlers into a runnable [http.Server].

Architecture:

  - This package is the topmost Presentation layer boundary.
  - It acts as the central composition root for the HTTP transport framework (chi router).
  - Only this package and cmd/api are allowed to import net/http server primitives.
*/
package api

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/yadawity/yadawity/internal/admin"
	"github.com/yadawity/yadawity/internal/platform/apperr"
	"github.com/yadawity/yadawity/internal/core/artwork"
	"github.com/yadawity/yadawity/internal/core/auction"
	"github.com/yadawity/yadawity/internal/core/cart"
	"github.com/yadawity/yadawity/internal/core/order"
	"github.com/yadawity/yadawity/internal/platform/config"
	"github.com/yadawity/yadawity/internal/platform/constants"
	"github.com/yadawity/yadawity/internal/platform/middleware"
	"github.com/yadawity/yadawity/internal/platform/respond"
	"github.com/yadawity/yadawity/internal/users/account"
	"github.com/yadawity/yadawity/internal/users/auth"
)

// # Server Definitions

// Server wraps the chi router and the [http.Server].
//
// It is constructed once in main.go with all dependencies injected.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	log        *slog.Logger
}

// # Handler Registry

// Handlers groups all domain-specific HTTP handler sets.
//
// # Usage
//
// New domains add a field here — no other change to server.go is required.
type Handlers struct {
	// Liveness is the /health handler — always returns 200 if process is alive.
	Liveness http.HandlerFunc

	// Readiness is the /ready handler — returns 200 when all deps are healthy.
	Readiness http.HandlerFunc

	// Auth handles the identity lifecycle (register, login, sessions).
	Auth *auth.Handler

	// Account handles profiles and artist achievements.
	Account *account.Handler

	// Artwork handles the public gallery and artist listings.
	Artwork *artwork.Handler

	// Auction handles timed sales and bidding.
	Auction *auction.Handler

	// Cart handles the Redis-backed shopping cart.
	Cart *cart.Handler

	// Order handles checkout and the buyer's order history.
	Order *order.Handler

	// Admin handles user management, moderation, and reporting.
	Admin *admin.Handler
}

// # Server Initialization

// NewServer constructs the chi router with the full middleware chain and
// registers all route groups.
//
// Chain ordering is load-bearing: CORS must run before Authenticate and
// RequireCSRF so preflight OPTIONS requests short-circuit before any
// credential or token checks.
func NewServer(context context.Context, cfg *config.Config, log *slog.Logger, checker middleware.CredentialChecker, csrfTokens middleware.CSRFTokenStore, h Handlers) *Server {
	r := chi.NewRouter()

	// # Middleware Chain
	// Global middleware applied in order of execution.
	r.Use(middleware.RequestID())
	r.Use(middleware.StructuredLogger(log))
	r.Use(chimw.Timeout(constants.GlobalRequestTimeout))
	r.Use(middleware.RateLimit(context))
	r.Use(middleware.PanicRecovery(log))
	r.Use(middleware.CORS(cfg))
	r.Use(middleware.Authenticate(checker))
	r.Use(middleware.RequireCSRF(csrfTokens))
	r.Use(chimw.CleanPath)

	r.NotFound(notFound)
	r.MethodNotAllowed(methodNotAllowed(r))

	// # Infrastructure Endpoints
	// Unauthenticated health probes for container orchestration.
	r.Get("/health", h.Liveness)
	r.Get("/ready", h.Readiness)

	// # Application API
	// Domain-specific route groups mounted under versioned prefix.
	r.Route("/api/v1", func(api chi.Router) {
		api.Mount("/auth", h.Auth.Routes())
		api.Mount("/users", h.Account.Routes())
		api.Mount("/artists", h.Account.ArtistRoutes())
		api.Mount("/artworks", h.Artwork.Routes())
		api.Mount("/auctions", h.Auction.Routes())
		api.Mount("/cart", h.Cart.Routes())
		api.Mount("/orders", h.Order.Routes())
		api.Mount("/admin", h.Admin.Routes())
	})

	return &Server{
		router: r,
		log:    log,
		httpServer: &http.Server{
			Addr:              ":" + cfg.ServerPort,
			Handler:           r,
			ReadTimeout:       constants.DefaultReadTimeout,
			WriteTimeout:      constants.DefaultWriteTimeout,
			IdleTimeout:       constants.DefaultIdleTimeout,
			ReadHeaderTimeout: constants.DefaultReadHeaderTimeout,
		},
	}
}

// # Fallback Handlers

func notFound(writer http.ResponseWriter, request *http.Request) {
	respond.Error(writer, request, apperr.NotFound("Route"))
}

// methodNotAllowed answers 405 with an Allow header computed from the route
// table, so clients learn which verbs the path does support.
func methodNotAllowed(router *chi.Mux) http.HandlerFunc {
	probeMethods := []string{
		http.MethodGet, http.MethodHead, http.MethodPost, http.MethodPut,
		http.MethodPatch, http.MethodDelete, http.MethodOptions,
	}

	return func(writer http.ResponseWriter, request *http.Request) {
		var allowed []string
		for _, method := range probeMethods {
			probe := chi.NewRouteContext()
			if router.Match(probe, method, request.URL.Path) {
				allowed = append(allowed, method)
			}
		}

		if len(allowed) > 0 {
			writer.Header().Set(constants.HeaderAllow, strings.Join(allowed, ", "))
		}

		respond.Error(writer, request, apperr.MethodNotAllowed(request.Method))
	}
}

// # Server Lifecycle

// ListenAndServe starts the HTTP server.
//
// It blocks until the server is closed or an error occurs.
func (s *Server) ListenAndServe() error {
	s.log.Info("server starting", slog.String("addr", s.httpServer.Addr))
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the server, waiting for in-flight requests.
func (s *Server) Shutdown(timeout time.Duration) error {
	context, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return s.httpServer.Shutdown(context)
}
