package auth

import "context"

// TokenProvider signs and verifies tokens.
type TokenProvider interface {
	IssueAccessToken(subject string) (string, error)
	IssueRefreshToken(subject string) (string, error)
	// Parse verifies signature and expiry. Expired tokens fail with ErrTokenExpired,
	// everything else with ErrInvalidToken.
	Parse(token string) (*Claims, error)
}

// PasswordHasher hashes and verifies passwords.
type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(hash, password string) bool
}

// AuthService defines the login, refresh and logout use cases.
type AuthService interface {
	// Login verifies the credentials, issues a token pair and stores the refresh token.
	Login(ctx context.Context, credentials *Credentials) (*TokenPair, error)
	// Refresh issues a new access token for a stored refresh token.
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
	// Logout clears the stored refresh token of username.
	Logout(ctx context.Context, username, refreshToken string) error
	// IssueAccessToken verifies the credentials and returns only an access token.
	IssueAccessToken(ctx context.Context, credentials *Credentials) (string, error)
	// Authenticate verifies an access token and returns its subject.
	Authenticate(ctx context.Context, accessToken string) (string, error)
}
