package inkpress_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/inkpress/inkpress"
	"github.com/stretchr/testify/assert"
)

func TestJWTClaims(t *testing.T) {
	now := time.Now()
	uid := uuid.New()

	claims := &inkpress.JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   uid.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Hour)),
		},
		UID:         uid.String(),
		UserEmail:   "ada@example.com",
		DisplayName: "Ada",
	}

	t.Run("accessors return claim values", func(t *testing.T) {
		assert.Equal(t, uid.String(), claims.Subject())
		assert.Equal(t, uid.String(), claims.UserID())
		assert.Equal(t, "ada@example.com", claims.Email())
		assert.Equal(t, "Ada", claims.Name())
		assert.WithinDuration(t, now, claims.IssuedAt(), time.Second)
		assert.WithinDuration(t, now.Add(time.Hour), claims.Expires(), time.Second)
	})

	t.Run("UserUUID parses the id claim", func(t *testing.T) {
		parsed, err := claims.UserUUID()
		assert.NoError(t, err)
		assert.Equal(t, uid, parsed)
	})

	t.Run("UserID falls back to the subject", func(t *testing.T) {
		c := &inkpress.JWTClaims{
			RegisteredClaims: jwt.RegisteredClaims{Subject: "subject-id"},
		}
		assert.Equal(t, "subject-id", c.UserID())
	})

	t.Run("zero times for missing timestamps", func(t *testing.T) {
		c := &inkpress.JWTClaims{}
		assert.True(t, c.Expires().IsZero())
		assert.True(t, c.IssuedAt().IsZero())
	})
}
