package middleware

import (
	"strings"

	deliverycontext "placelog/internal/delivery/context"
	domainerrors "placelog/internal/domain/errors"
	"placelog/internal/domain/repository"
	"placelog/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
	userRepo repository.UserRepository
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService, userRepo repository.UserRepository) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc, userRepo: userRepo}
}

// Authenticate validates the bearer token and resolves the caller against
// storage on every request. A valid token for a user row that no longer
// exists fails with INVALID_USER, so deleting an account revokes its tokens.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get("Authorization")
		if authHeader == "" {
			return errors.Wrap(domainerrors.ErrInvalidToken, "Authorization header is missing")
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader {
			return errors.Wrap(domainerrors.ErrInvalidToken, "token must use the Bearer scheme")
		}

		claims, err := m.tokenSvc.VerifyToken(tokenString)
		if err != nil {
			// Already an AppError (expired or malformed).
			return err
		}

		user, err := m.userRepo.FindByID(c.Request().Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidUser, "token subject no longer exists")
			}

			return errors.Wrap(err, "failed to resolve token subject")
		}

		deliverycontext.SetUserID(c, user.ID)

		return next(c)
	}
}
