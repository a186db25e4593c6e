// Package testutil holds helpers shared by tests across packages.
package testutil

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenSecret signs tokens minted by MintToken.
const TokenSecret = "test-secret"

type claims struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	jwt.RegisteredClaims
}

// MintToken returns an HS256 token whose payload carries the identity claims.
func MintToken(tb testing.TB, id, username, email string) string {
	tb.Helper()
	tok, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		ID:       id,
		Username: username,
		Email:    email,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}).SignedString([]byte(TokenSecret))
	if err != nil {
		tb.Fatalf("mint token: %v", err)
	}
	return tok
}
