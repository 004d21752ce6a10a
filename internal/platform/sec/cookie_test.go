// Copyright (c) 2026 Yadawity. All rights reserved.
// Author: eng@yadawity.com

package sec_test

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yadawity/yadawity/internal/platform/sec"
)

/*
TestLoginCookieValue verifies the "{user_id}_{hmac_hex}" cookie layout.
*/
func TestLoginCookieValue(t *testing.T) {
	loginTime := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	value := sec.LoginCookieValue(42, "artist@yadawity.com", "tok-abc", loginTime)

	// 1. Numeric prefix, single separator, hex suffix
	userID, mac, err := sec.ParseLoginCookie(value)
	require.NoError(t, err)
	assert.Equal(t, int64(42), userID)
	assert.Len(t, mac, 64) // SHA-256 hex

	// 2. The suffix must be the HMAC over the server-held fields
	expected := sec.LoginHMAC("tok-abc", "artist@yadawity.com", 42, loginTime)
	assert.Equal(t, expected, mac)
}

/*
TestLoginHMAC_Determinism verifies the signature is stable for identical
inputs and changes when any input changes.
*/
func TestLoginHMAC_Determinism(t *testing.T) {
	loginTime := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

	base := sec.LoginHMAC("token", "a@b.com", 7, loginTime)
	assert.Equal(t, base, sec.LoginHMAC("token", "a@b.com", 7, loginTime))

	assert.NotEqual(t, base, sec.LoginHMAC("other", "a@b.com", 7, loginTime))
	assert.NotEqual(t, base, sec.LoginHMAC("token", "x@b.com", 7, loginTime))
	assert.NotEqual(t, base, sec.LoginHMAC("token", "a@b.com", 8, loginTime))
	assert.NotEqual(t, base, sec.LoginHMAC("token", "a@b.com", 7, loginTime.Add(time.Second)))
}

/*
TestParseLoginCookie_Malformed verifies structural rejection of bad cookies.
*/
func TestParseLoginCookie_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		value string
	}{
		{"empty", ""},
		{"no_separator", "42abcdef"},
		{"non_numeric_id", "abc_deadbeef"},
		{"zero_id", "0_deadbeef"},
		{"negative_id", "-5_deadbeef"},
		{"missing_mac", "42_"},
		{"missing_id", "_deadbeef"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := sec.ParseLoginCookie(tt.value)
			assert.Error(t, err)
		})
	}
}

/*
TestVerifyLoginHMAC verifies tamper detection on the cookie suffix.
*/
func TestVerifyLoginHMAC(t *testing.T) {
	loginTime := time.Now().Truncate(time.Second)
	mac := sec.LoginHMAC("token", "a@b.com", 7, loginTime)

	// 1. Untouched signature passes
	assert.True(t, sec.VerifyLoginHMAC(mac, mac))

	// 2. A single flipped character fails
	tampered := "0" + mac[1:]
	if tampered == mac {
		tampered = "1" + mac[1:]
	}
	assert.False(t, sec.VerifyLoginHMAC(tampered, mac))

	// 3. Truncated signature fails
	assert.False(t, sec.VerifyLoginHMAC(mac[:32], mac))
}

/*
TestGenerateSecureToken verifies length and uniqueness of generated tokens.
*/
func TestGenerateSecureToken(t *testing.T) {
	first, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)
	assert.Len(t, first, 64) // hex doubles the byte length

	second, err := sec.GenerateSecureToken(32)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

/*
TestConstantTimeEquals covers the string comparison helper.
*/
func TestConstantTimeEquals(t *testing.T) {
	assert.True(t, sec.ConstantTimeEquals("abc", "abc"))
	assert.False(t, sec.ConstantTimeEquals("abc", "abd"))
	assert.False(t, sec.ConstantTimeEquals("abc", "abcd"))
	assert.True(t, sec.ConstantTimeEquals("", ""))
}

/*
TestVerifyTokenService_RoundTrip verifies email verification token issue and parse.
*/
func TestVerifyTokenService_RoundTrip(t *testing.T) {
	service := sec.NewVerifyTokenService("test-secret", "yadawity.com")

	token, err := service.Generate(42, "artist@yadawity.com", time.Hour)
	require.NoError(t, err)

	claims, err := service.Parse(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "artist@yadawity.com", claims.Email)
}

/*
TestVerifyTokenService_Rejections verifies expired and foreign tokens fail.
*/
func TestVerifyTokenService_Rejections(t *testing.T) {
	service := sec.NewVerifyTokenService("test-secret", "yadawity.com")

	// 1. Expired token
	expired, err := service.Generate(42, "artist@yadawity.com", -time.Minute)
	require.NoError(t, err)
	_, err = service.Parse(expired)
	assert.Error(t, err)

	// 2. Token signed with a different secret
	foreign := sec.NewVerifyTokenService("other-secret", "yadawity.com")
	token, err := foreign.Generate(42, "artist@yadawity.com", time.Hour)
	require.NoError(t, err)
	_, err = service.Parse(token)
	assert.Error(t, err)

	// 3. Garbage input
	_, err = service.Parse(fmt.Sprintf("not.a.%s", "token"))
	assert.Error(t, err)
}
