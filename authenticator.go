package inkpress

import (
	"context"
	"reflect"
)

type Auther struct {
	provider     IdentityProvider
	logger       Logger
	tokenService TokenService
}

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(provider IdentityProvider, opts Config) *Auther {
	tokenService := NewTokenService(
		[]byte(opts.GetSigningKey()),
		opts.GetTokenExpiration(),
		opts.GetIssuer(),
		opts.GetAudience(),
		defLogger{},
	)

	return &Auther{
		provider:     provider,
		logger:       defLogger{},
		tokenService: tokenService,
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	if logger != nil {
		s.logger = logger
	}
	return s
}

// WithTokenService overrides the token service, e.g. to share one
// instance between the authenticator and the HTTP middleware.
func (s *Auther) WithTokenService(ts TokenService) *Auther {
	if ts != nil {
		s.tokenService = ts
	}
	return s
}

// TokenService returns the TokenService instance used by this Authenticator
func (s *Auther) TokenService() TokenService {
	return s.tokenService
}

// Login verifies the supplied credentials and issues a bearer token.
// Every verification failure surfaces as ErrInvalidCredentials.
func (s *Auther) Login(ctx context.Context, email, password string) (string, error) {
	identity, err := s.provider.VerifyIdentity(ctx, email, password)
	if err != nil {
		s.logger.Error("Login verify identity error: %v", err)
		return "", err
	}

	if identity == nil || reflect.ValueOf(identity).IsZero() {
		s.logger.Error("Login identity is nil or zero value")
		return "", ErrInvalidCredentials
	}

	return s.tokenService.Generate(identity)
}

// SessionFromToken validates a raw token and returns its claims
func (s *Auther) SessionFromToken(raw string) (AuthClaims, error) {
	claims, err := s.tokenService.Validate(raw)
	if err != nil {
		s.logger.Error("SessionFromToken validation failed: %v", err)
		return nil, err
	}

	return claims, nil
}

// IdentityFromClaims resolves the claims back into a stored identity
func (s *Auther) IdentityFromClaims(ctx context.Context, claims AuthClaims) (Identity, error) {
	identity, err := s.provider.FindIdentityByID(ctx, claims.UserID())
	if err != nil {
		s.logger.Error("IdentityFromClaims find identity: %s", err)
		return nil, err
	}

	return identity, nil
}

var _ Authenticator = (*Auther)(nil)
