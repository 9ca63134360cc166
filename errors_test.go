package inkpress_test

import (
	"errors"
	"testing"

	goerrors "github.com/goliatone/go-errors"
	"github.com/inkpress/inkpress"
	"github.com/stretchr/testify/assert"
)

func TestIsTokenExpiredError(t *testing.T) {
	assert.True(t, inkpress.IsTokenExpiredError(inkpress.ErrTokenExpired))
	assert.True(t, inkpress.IsTokenExpiredError(errors.New("jwt: token is expired")))
	assert.False(t, inkpress.IsTokenExpiredError(inkpress.ErrTokenMalformed))
	assert.False(t, inkpress.IsTokenExpiredError(nil))
}

func TestIsMalformedError(t *testing.T) {
	assert.True(t, inkpress.IsMalformedError(inkpress.ErrTokenMalformed))
	assert.True(t, inkpress.IsMalformedError(errors.New("missing or malformed JWT")))
	assert.False(t, inkpress.IsMalformedError(inkpress.ErrTokenExpired))
	assert.False(t, inkpress.IsMalformedError(nil))
}

func TestIsConflictError(t *testing.T) {
	assert.True(t, inkpress.IsConflictError(inkpress.ErrEdgeExists))
	assert.True(t, inkpress.IsConflictError(inkpress.ErrDuplicateEmail))

	wrapped := goerrors.Wrap(inkpress.ErrEdgeExists, goerrors.CategoryConflict, "insert failed")
	assert.True(t, inkpress.IsConflictError(wrapped))

	assert.False(t, inkpress.IsConflictError(inkpress.ErrInvalidCredentials))
	assert.False(t, inkpress.IsConflictError(errors.New("plain error")))
	assert.False(t, inkpress.IsConflictError(nil))
}

func TestIsDuplicateKeyError(t *testing.T) {
	cases := []struct {
		name string
		err  error
		want bool
	}{
		{"sqlite unique", errors.New("UNIQUE constraint failed: users.email"), true},
		{"postgres unique", errors.New(`duplicate key value violates unique constraint "idx_users_email"`), true},
		{"postgres sqlstate", errors.New("ERROR: duplicate key (SQLSTATE 23505)"), true},
		{"other constraint", errors.New("constraint failed: NOT NULL"), true},
		{"unrelated", errors.New("connection refused"), false},
		{"nil", nil, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, inkpress.IsDuplicateKeyError(tc.err))
		})
	}
}
