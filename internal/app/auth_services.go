package app

import (
	"context"
	"errors"

	"github.com/MGTheTrain/rms/internal/domain/auth"
	"github.com/MGTheTrain/rms/internal/domain/shared"
	"github.com/MGTheTrain/rms/internal/domain/users"
	"github.com/MGTheTrain/rms/internal/pkg/logger"
)

// authService implements the AuthService interface issuing and checking JWT pairs
type authService struct {
	userRepo   users.UserRepository
	tokens     auth.TokenProvider
	hasher     auth.PasswordHasher
	transactor shared.Transactor
	logger     logger.Logger
}

// NewAuthService creates a new authService instance
func NewAuthService(
	userRepo users.UserRepository,
	tokens auth.TokenProvider,
	hasher auth.PasswordHasher,
	transactor shared.Transactor,
	logger logger.Logger,
) (auth.AuthService, error) {
	return &authService{
		userRepo:   userRepo,
		tokens:     tokens,
		hasher:     hasher,
		transactor: transactor,
		logger:     logger,
	}, nil
}

// verify returns the user matching credentials. Unknown users and wrong
// passwords fail alike.
func (s *authService) verify(ctx context.Context, credentials *auth.Credentials) (*users.User, error) {
	if err := validate(credentials); err != nil {
		return nil, err
	}

	user, err := s.userRepo.GetByUsername(ctx, credentials.Username)
	if err != nil {
		if errors.Is(err, users.ErrUserNotFound) {
			return nil, auth.ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Password == "" || !s.hasher.Verify(user.Password, credentials.Password) {
		return nil, auth.ErrInvalidCredentials
	}
	return user, nil
}

// Login issues an access and refresh token and stores the refresh token on the user.
func (s *authService) Login(ctx context.Context, credentials *auth.Credentials) (*auth.TokenPair, error) {
	var pair *auth.TokenPair
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err := s.verify(ctx, credentials)
		if err != nil {
			return err
		}

		access, err := s.tokens.IssueAccessToken(user.Username)
		if err != nil {
			return err
		}
		refresh, err := s.tokens.IssueRefreshToken(user.Username)
		if err != nil {
			return err
		}

		if err := s.userRepo.UpdateRefreshToken(ctx, user.Seq, &refresh); err != nil {
			return err
		}
		pair = &auth.TokenPair{AccessToken: access, RefreshToken: refresh}
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx, s.logger).Info("User ", credentials.Username, " logged in")
	return pair, nil
}

// Refresh issues a new access token for a refresh token that is still the
// one stored on its user.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*auth.TokenPair, error) {
	claims, err := s.tokens.Parse(refreshToken)
	if err != nil {
		return nil, err
	}
	if claims.Scope != auth.ScopeRefresh {
		return nil, auth.ErrInvalidScope
	}

	user, err := s.userRepo.GetByUsername(ctx, claims.Subject)
	if err != nil {
		return nil, err
	}
	if user.CurrentRefreshToken == nil || *user.CurrentRefreshToken != refreshToken {
		return nil, auth.ErrLoggedOut
	}

	access, err := s.tokens.IssueAccessToken(user.Username)
	if err != nil {
		return nil, err
	}
	return &auth.TokenPair{AccessToken: access, RefreshToken: refreshToken}, nil
}

// Logout clears the stored refresh token when it matches refreshToken.
func (s *authService) Logout(ctx context.Context, username, refreshToken string) error {
	err := s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err := s.userRepo.GetByUsername(ctx, username)
		if err != nil {
			return err
		}
		if user.CurrentRefreshToken == nil || *user.CurrentRefreshToken != refreshToken {
			return auth.ErrTokenMismatch
		}
		return s.userRepo.UpdateRefreshToken(ctx, user.Seq, nil)
	})
	if err != nil {
		return err
	}

	logger.FromContext(ctx, s.logger).Info("User ", username, " logged out")
	return nil
}

// IssueAccessToken verifies credentials and returns an access token only.
func (s *authService) IssueAccessToken(ctx context.Context, credentials *auth.Credentials) (string, error) {
	user, err := s.verify(ctx, credentials)
	if err != nil {
		return "", err
	}
	return s.tokens.IssueAccessToken(user.Username)
}

// Authenticate returns the username of a valid access token.
func (s *authService) Authenticate(_ context.Context, accessToken string) (string, error) {
	claims, err := s.tokens.Parse(accessToken)
	if err != nil {
		return "", err
	}
	if claims.Scope != auth.ScopeAccess {
		return "", auth.ErrInvalidScope
	}
	return claims.Subject, nil
}
