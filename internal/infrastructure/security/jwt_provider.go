package security

import (
	"errors"
	"fmt"
	"time"

	"github.com/MGTheTrain/rms/internal/domain/auth"
	"github.com/MGTheTrain/rms/internal/pkg/config"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// tokenClaims is the JWT payload: sub, iat, exp, jti and the token scope.
type tokenClaims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

type jwtTokenProvider struct {
	secret          []byte
	method          jwt.SigningMethod
	accessLifetime  time.Duration
	refreshLifetime time.Duration
	now             func() time.Time
}

// NewJWTTokenProvider creates a TokenProvider signing HMAC tokens with the configured secret
func NewJWTTokenProvider(settings *config.JWTSettings) (auth.TokenProvider, error) {
	return newJWTTokenProvider(settings, time.Now)
}

func newJWTTokenProvider(settings *config.JWTSettings, now func() time.Time) (*jwtTokenProvider, error) {
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid jwt settings: %w", err)
	}

	method := jwt.GetSigningMethod(settings.Algorithm)
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("unsupported jwt algorithm: %s", settings.Algorithm)
	}

	return &jwtTokenProvider{
		secret:          []byte(settings.Secret),
		method:          method,
		accessLifetime:  time.Duration(settings.ExpirationMinutes) * time.Minute,
		refreshLifetime: time.Duration(settings.RefreshExpirationMinutes) * time.Minute,
		now:             now,
	}, nil
}

func (p *jwtTokenProvider) IssueAccessToken(subject string) (string, error) {
	return p.issue(subject, auth.ScopeAccess, p.accessLifetime)
}

func (p *jwtTokenProvider) IssueRefreshToken(subject string) (string, error) {
	return p.issue(subject, auth.ScopeRefresh, p.refreshLifetime)
}

func (p *jwtTokenProvider) issue(subject, scope string, lifetime time.Duration) (string, error) {
	issuedAt := p.now()
	claims := &tokenClaims{
		Scope: scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(issuedAt.Add(lifetime)),
			ID:        uuid.NewString(),
		},
	}

	signed, err := jwt.NewWithClaims(p.method, claims).SignedString(p.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign %s token: %w", scope, err)
	}
	return signed, nil
}

// Parse verifies the signature and expiry of token and returns its claims.
func (p *jwtTokenProvider) Parse(token string) (*auth.Claims, error) {
	claims := &tokenClaims{}
	_, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return p.secret, nil
	},
		jwt.WithValidMethods([]string{p.method.Alg()}),
		jwt.WithTimeFunc(p.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, auth.ErrTokenExpired
		}
		return nil, auth.ErrInvalidToken.Wrap(err)
	}

	if claims.Subject == "" {
		return nil, auth.ErrSubjectMissing
	}

	result := &auth.Claims{
		Subject: claims.Subject,
		Scope:   claims.Scope,
	}
	if claims.IssuedAt != nil {
		result.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		result.ExpiresAt = claims.ExpiresAt.Time
	}
	return result, nil
}
