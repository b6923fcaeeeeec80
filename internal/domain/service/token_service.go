package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims embedded in access tokens.
type Claims struct {
	UserID uint64 `json:"id"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and verifying the signed
// bearer tokens that assert caller identity. Tokens are self-contained and
// reverified on every protected call; no trust decision is cached.
type TokenService interface {
	// IssueToken creates a signed access token for the given user.
	IssueToken(userID uint64) (string, error)

	// VerifyToken checks signature and expiry and returns the decoded claims.
	// It does not check that the user still exists; callers resolve the
	// identity against storage themselves.
	VerifyToken(tokenString string) (*Claims, error)
}
