// Copyright (c) 2026 Yadawity. All rights reserved.
// Author: eng@yadawity.com

package sec

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// # Email Verification Tokens

// VerifyClaims is the payload embedded inside an email verification token.
//
// # Why JWT here?
//
// Verification links must survive server restarts and need no revocation
// story beyond their expiry, so a signed stateless token avoids a database
// table entirely. The login flow deliberately does NOT use JWTs — sessions
// are server-side rows so they can be revoked instantly.
type VerifyClaims struct {
	jwt.RegisteredClaims

	UserID int64  `json:"uid"`
	Email  string `json:"eml"`
}

// VerifyTokenService signs and parses email verification tokens using HS256.
type VerifyTokenService struct {
	secret []byte
	issuer string
}

// NewVerifyTokenService creates a new VerifyTokenService.
func NewVerifyTokenService(secret, issuer string) *VerifyTokenService {
	return &VerifyTokenService{secret: []byte(secret), issuer: issuer}
}

// Generate creates a signed verification token for the given account.
func (service *VerifyTokenService) Generate(userID int64, email string, timeToLive time.Duration) (string, error) {
	currentTime := time.Now()
	claims := VerifyClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    service.issuer,
			IssuedAt:  jwt.NewNumericDate(currentTime),
			ExpiresAt: jwt.NewNumericDate(currentTime.Add(timeToLive)),
		},
		UserID: userID,
		Email:  email,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signedToken, err := token.SignedString(service.secret)
	if err != nil {
		return "", fmt.Errorf("sec: failed to sign verification token: %w", err)
	}

	return signedToken, nil
}

// Parse checks the signature and validity of a verification token string.
func (service *VerifyTokenService) Parse(tokenString string) (*VerifyClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &VerifyClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("sec: unexpected signing method: %v", token.Header["alg"])
		}
		return service.secret, nil
	}, jwt.WithIssuer(service.issuer))

	if err != nil {
		return nil, fmt.Errorf("sec: invalid verification token: %w", err)
	}

	claims, ok := token.Claims.(*VerifyClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("sec: invalid verification token claims")
	}

	return claims, nil
}
