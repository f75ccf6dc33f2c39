// Package auth defines token based authentication: the token pair issued at
// login, the claims carried by a token and the ports to sign and hash.
package auth

import (
	"time"

	"github.com/MGTheTrain/rms/internal/pkg/apperrors"
	"github.com/MGTheTrain/rms/internal/pkg/validators"
)

// Token scopes
const (
	ScopeAccess  = "access"
	ScopeRefresh = "refresh"
)

// TokenTypeBearer is reported by the form login endpoint
const TokenTypeBearer = "bearer"

// Errors
var (
	ErrInvalidCredentials = apperrors.Unauthorized("INVALID_CREDENTIALS", "invalid credentials")
	ErrTokenExpired       = apperrors.Unauthorized("TOKEN_EXPIRED", "token expired")
	ErrInvalidToken       = apperrors.Unauthorized("INVALID_TOKEN", "invalid token")
	ErrSubjectMissing     = apperrors.Unauthorized("TOKEN_SUBJECT_MISSING", "token has no subject")
	ErrInvalidScope       = apperrors.Unauthorized("INVALID_TOKEN_SCOPE", "invalid token scope")
	ErrLoggedOut          = apperrors.Unauthorized("LOGGED_OUT", "user is logged out")
	ErrTokenMismatch      = apperrors.Unauthorized("REFRESH_TOKEN_MISMATCH", "refresh token does not match")
	ErrNotAuthenticated   = apperrors.Unauthorized("NOT_AUTHENTICATED", "not authenticated")
)

// Claims are the verified contents of a token.
type Claims struct {
	Subject   string
	Scope     string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenPair is returned by a successful login.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// Credentials identify a user at login.
type Credentials struct {
	Username string `json:"username" form:"username" validate:"required"`
	Password string `json:"password" form:"password" validate:"required"`
}

// Validate for validating Credentials struct
func (c *Credentials) Validate() error {
	return validators.Struct(c)
}
