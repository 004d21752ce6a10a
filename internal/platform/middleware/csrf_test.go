// Copyright (c) 2026 Yadawity. All rights reserved.
// Author: eng@yadawity.com

package middleware_test

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/yadawity/yadawity/internal/platform/constants"
	"github.com/yadawity/yadawity/internal/platform/middleware"
	"github.com/yadawity/yadawity/internal/platform/sec"
)

// fakeCSRFStore maps session IDs to tokens in memory.
type fakeCSRFStore struct {
	tokens map[string]string
	err    error
}

func (f *fakeCSRFStore) Get(_ context.Context, sessionID string) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	return f.tokens[sessionID], nil
}

func okHandler() http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusOK)
	})
}

/*
TestRequireCSRF_ReadMethodsBypass verifies GET, HEAD and OPTIONS skip the check.
*/
func TestRequireCSRF_ReadMethodsBypass(t *testing.T) {
	store := &fakeCSRFStore{tokens: map[string]string{}}
	handler := middleware.RequireCSRF(store)(okHandler())
	claims := &sec.AuthClaims{UserID: 7, Role: "buyer", SessionID: "s1"}

	for _, method := range []string{http.MethodGet, http.MethodHead, http.MethodOptions} {
		t.Run(method, func(t *testing.T) {
			// No token in the store, no header on the request
			request := withClaims(httptest.NewRequest(method, "/", nil), claims)
			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)
			assert.Equal(t, http.StatusOK, recorder.Code)
		})
	}
}

/*
TestRequireCSRF_AnonymousPassThrough verifies guests are not blocked — the
auth gates downstream handle them.
*/
func TestRequireCSRF_AnonymousPassThrough(t *testing.T) {
	store := &fakeCSRFStore{tokens: map[string]string{}}
	handler := middleware.RequireCSRF(store)(okHandler())

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, httptest.NewRequest(http.MethodPost, "/", nil))
	assert.Equal(t, http.StatusOK, recorder.Code)
}

/*
TestRequireCSRF_WriteMethods verifies token enforcement on authenticated writes.
*/
func TestRequireCSRF_WriteMethods(t *testing.T) {
	claims := &sec.AuthClaims{UserID: 7, Role: "buyer", SessionID: "s1"}

	tests := []struct {
		name       string
		store      *fakeCSRFStore
		header     string
		wantStatus int
	}{
		{
			name:       "matching_token",
			store:      &fakeCSRFStore{tokens: map[string]string{"s1": "tok-123"}},
			header:     "tok-123",
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing_header",
			store:      &fakeCSRFStore{tokens: map[string]string{"s1": "tok-123"}},
			header:     "",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "mismatched_token",
			store:      &fakeCSRFStore{tokens: map[string]string{"s1": "tok-123"}},
			header:     "tok-456",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "no_stored_token",
			store:      &fakeCSRFStore{tokens: map[string]string{}},
			header:     "tok-123",
			wantStatus: http.StatusForbidden,
		},
		{
			name:       "store_unavailable",
			store:      &fakeCSRFStore{err: errors.New("redis down")},
			header:     "tok-123",
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			handler := middleware.RequireCSRF(tt.store)(okHandler())

			request := withClaims(httptest.NewRequest(http.MethodPost, "/", nil), claims)
			if tt.header != "" {
				request.Header.Set(constants.HeaderCSRFToken, tt.header)
			}

			recorder := httptest.NewRecorder()
			handler.ServeHTTP(recorder, request)
			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}
}
