package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"placelog/config"
	domainerrors "placelog/internal/domain/errors"
	"placelog/internal/domain/service"
	"placelog/internal/errors"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Shared secret for HS256 signing.
	ttl    time.Duration // Access token lifetime.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Access),
		ttl:    cfg.AccessTokenTTL(),
	}, nil
}

// IssueToken creates a signed access token embedding the user's identity.
// Tokens always carry an expiry claim.
func (s *jwtService) IssueToken(userID uint64) (string, error) {
	now := time.Now()
	claims := &service.Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign access token")
	}

	return signed, nil
}

// VerifyToken parses and validates a token string, mapping library failures
// onto the API's token error codes. Expiry wins over any other structural
// problem so clients can tell a stale session from a forged token.
func (s *jwtService) VerifyToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.Wrap(domainerrors.ErrExpiredToken, "access token expired")
		}

		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "failed to parse token structure")
	}

	if !token.Valid {
		return nil, errors.Wrap(domainerrors.ErrInvalidToken, "token validation failed")
	}

	return claims, nil
}
