package inkpress

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// AuthClaims represents the structured identity claim embedded in a token
type AuthClaims interface {
	Subject() string
	UserID() string
	Email() string
	Name() string
	Expires() time.Time
	IssuedAt() time.Time
}

// JWTClaims is the concrete implementation of AuthClaims
type JWTClaims struct {
	jwt.RegisteredClaims
	UID         string `json:"uid,omitempty"`
	UserEmail   string `json:"email,omitempty"`
	DisplayName string `json:"name,omitempty"`
}

// Verify interface compliance
var _ AuthClaims = (*JWTClaims)(nil)

// Subject returns the subject claim
func (c *JWTClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// UserID returns the user ID
func (c *JWTClaims) UserID() string {
	if c.UID != "" {
		return c.UID
	}
	return c.Subject()
}

// UserUUID parses the user ID claim into a UUID
func (c *JWTClaims) UserUUID() (uuid.UUID, error) {
	return uuid.Parse(c.UserID())
}

// Email returns the identity's email claim
func (c *JWTClaims) Email() string {
	return c.UserEmail
}

// Name returns the identity's display name claim
func (c *JWTClaims) Name() string {
	return c.DisplayName
}

// Expires returns the expiration time
func (c *JWTClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time
func (c *JWTClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}
