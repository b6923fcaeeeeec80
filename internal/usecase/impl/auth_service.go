// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"regexp"
	"strings"

	deliverycontext "placelog/internal/delivery/context"
	"placelog/internal/domain/entity"
	domainerrors "placelog/internal/domain/errors"
	"placelog/internal/domain/repository"
	"placelog/internal/domain/service"
	"placelog/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// emailPattern accepts a local part, an @, and a dotted domain with a 2-4
// letter TLD. Uniqueness is checked separately; this is shape only.
var emailPattern = regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,4}$`)

// passwordSpecials is the set of special characters a password must draw from.
const passwordSpecials = "$@$!%*#?&"

const minPasswordLength = 8

// authService implements the AuthUsecase interface.
type authService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp orchestrates the complete account creation process.
func (srv *authService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.SignUpOutput, error) {
	srv.log(ctx).Info("Starting sign-up", slog.String("email", input.Email))

	if !emailPattern.MatchString(input.Email) {
		srv.log(ctx).Warn("Email validation failed during sign-up", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidEmailFormat, "sign-up rejected")
	}
	if !validPassword(input.Password) {
		srv.log(ctx).Warn("Password validation failed during sign-up", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidPasswordFormat, "sign-up rejected")
	}

	// Hash before the transaction; bcrypt is CPU-bound.
	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password during sign-up", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to hash password during sign-up")
	}

	newUser := &entity.User{
		Email:        input.Email,
		PasswordHash: hashedPassword,
		Nickname:     input.Nickname,
	}

	// Duplicate checks and the insert share one transaction so two concurrent
	// sign-ups with the same email serialize on the store.
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		userRepo := repoFactory.UserRepo()

		emailTaken, err := userRepo.ExistsByEmail(ctx, input.Email)
		if err != nil {
			return errors.Wrap(err, "failed to check email uniqueness")
		}
		if emailTaken {
			return errors.Wrap(domainerrors.ErrAccountExists, "sign-up rejected")
		}

		nicknameTaken, err := userRepo.ExistsByNickname(ctx, input.Nickname)
		if err != nil {
			return errors.Wrap(err, "failed to check nickname uniqueness")
		}
		if nicknameTaken {
			return errors.Wrap(domainerrors.ErrNicknameExists, "sign-up rejected")
		}

		return userRepo.Create(ctx, newUser)
	})
	if err != nil {
		srv.log(ctx).Warn("Sign-up failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.log(ctx).Debug("Sign-up completed", slog.Uint64("userID", newUser.ID))

	return &usecase.SignUpOutput{User: newUser}, nil
}

// SignIn checks the credentials and issues an access token. An unknown email
// and a wrong password surface the same error so the response does not leak
// which accounts exist.
func (srv *authService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	srv.log(ctx).Debug("Starting sign-in", slog.String("email", input.Email))

	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.log(ctx).Warn("Sign-in failed", slog.String("email", input.Email))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in rejected")
		}

		return nil, errors.Wrap(err, "failed to load user for sign-in")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", input.Email))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "sign-in rejected")
	}

	accessToken, err := srv.tokenService.IssueToken(user.ID)
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to issue access token")
	}

	srv.log(ctx).Debug("Sign-in completed", slog.Uint64("userID", user.ID))

	return &usecase.SignInOutput{
		AccessToken: accessToken,
		User:        user,
	}, nil
}

// validPassword enforces the password shape: at least eight characters drawn
// only from letters, digits and the allowed special characters, with at least
// one of each.
func validPassword(password string) bool {
	if len(password) < minPasswordLength {
		return false
	}

	var hasLetter, hasDigit, hasSpecial bool
	for _, r := range password {
		switch {
		case r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z':
			hasLetter = true
		case r >= '0' && r <= '9':
			hasDigit = true
		case strings.ContainsRune(passwordSpecials, r):
			hasSpecial = true
		default:
			return false
		}
	}

	return hasLetter && hasDigit && hasSpecial
}
