package inkpress_test

import (
	"errors"
	"testing"

	"github.com/inkpress/inkpress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type validatorStub struct {
	calls  int
	claims inkpress.AuthClaims
	err    error
}

func (v *validatorStub) Validate(tokenString string) (inkpress.AuthClaims, error) {
	v.calls++
	return v.claims, v.err
}

func TestTokenValidatorFunc(t *testing.T) {
	t.Run("adapts a function", func(t *testing.T) {
		claims := &inkpress.JWTClaims{}
		validator := inkpress.TokenValidatorFunc(func(tokenString string) (inkpress.AuthClaims, error) {
			return claims, nil
		})

		result, err := validator.Validate("token")
		require.NoError(t, err)
		assert.Same(t, claims, result)
	})

	t.Run("nil func reads as malformed", func(t *testing.T) {
		var validator inkpress.TokenValidatorFunc

		result, err := validator.Validate("token")
		assert.Nil(t, result)
		assert.True(t, inkpress.IsMalformedError(err))
	})
}

func TestMultiTokenValidator_UsesFirstSuccess(t *testing.T) {
	claims := &inkpress.JWTClaims{}
	primary := &validatorStub{claims: claims}
	secondary := &validatorStub{claims: &inkpress.JWTClaims{}}

	validator := inkpress.NewMultiTokenValidator(primary, secondary)

	result, err := validator.Validate("token")
	require.NoError(t, err)
	assert.Same(t, claims, result)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, secondary.calls)
}

func TestMultiTokenValidator_FallbacksOnMalformed(t *testing.T) {
	claims := &inkpress.JWTClaims{}
	primary := &validatorStub{err: errors.New("token is malformed")}
	secondary := &validatorStub{claims: claims}

	validator := inkpress.NewMultiTokenValidator(primary, secondary)

	result, err := validator.Validate("token")
	require.NoError(t, err)
	assert.Same(t, claims, result)
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestMultiTokenValidator_ReturnsNonMalformedError(t *testing.T) {
	primary := &validatorStub{err: inkpress.ErrTokenExpired}
	secondary := &validatorStub{claims: &inkpress.JWTClaims{}}

	validator := inkpress.NewMultiTokenValidator(primary, secondary)

	result, err := validator.Validate("token")
	assert.Nil(t, result)
	assert.True(t, inkpress.IsTokenExpiredError(err))
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 0, secondary.calls)
}

func TestMultiTokenValidator_AllMalformed(t *testing.T) {
	primary := &validatorStub{err: errors.New("token is malformed")}
	secondary := &validatorStub{err: errors.New("missing or malformed JWT")}

	validator := inkpress.NewMultiTokenValidator(primary, secondary)

	result, err := validator.Validate("token")
	assert.Nil(t, result)
	assert.True(t, inkpress.IsMalformedError(err))
	assert.Equal(t, 1, primary.calls)
	assert.Equal(t, 1, secondary.calls)
}

func TestMultiTokenValidator_EmptyValidators(t *testing.T) {
	validator := inkpress.NewMultiTokenValidator(nil, nil)

	result, err := validator.Validate("token")
	assert.Nil(t, result)
	assert.True(t, inkpress.IsMalformedError(err))
}
