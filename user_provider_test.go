package inkpress_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/inkpress/inkpress"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestUserProvider_VerifyIdentity(t *testing.T) {
	ctx := context.Background()

	hash, err := inkpress.HashPassword("correct-password")
	assert.NoError(t, err)

	user := &inkpress.User{
		ID:           uuid.New(),
		Name:         "Ada",
		Email:        "ada@example.com",
		PasswordHash: hash,
	}

	t.Run("returns identity for valid credentials", func(t *testing.T) {
		store := &MockUserTracker{}
		store.On("GetByEmail", ctx, "ada@example.com").Return(user, nil)
		store.On("TrackSuccessfulLogin", ctx, user).Return(nil)

		provider := inkpress.NewUserProvider(store)

		identity, err := provider.VerifyIdentity(ctx, "ada@example.com", "correct-password")

		assert.NoError(t, err)
		assert.Equal(t, user.ID.String(), identity.ID())
		assert.Equal(t, "ada@example.com", identity.Email())
		store.AssertExpectations(t)
	})

	t.Run("normalizes the email before lookup", func(t *testing.T) {
		store := &MockUserTracker{}
		store.On("GetByEmail", ctx, "ada@example.com").Return(user, nil)
		store.On("TrackSuccessfulLogin", ctx, user).Return(nil)

		provider := inkpress.NewUserProvider(store)

		identity, err := provider.VerifyIdentity(ctx, "  ADA@Example.com ", "correct-password")

		assert.NoError(t, err)
		assert.NotNil(t, identity)
		store.AssertExpectations(t)
	})

	t.Run("unknown email reads as invalid credentials", func(t *testing.T) {
		store := &MockUserTracker{}
		store.On("GetByEmail", ctx, "ghost@example.com").
			Return(nil, inkpress.ErrIdentityNotFound)

		provider := inkpress.NewUserProvider(store)

		identity, err := provider.VerifyIdentity(ctx, "ghost@example.com", "whatever")

		assert.Nil(t, identity)
		assert.ErrorIs(t, err, inkpress.ErrInvalidCredentials)
		store.AssertNotCalled(t, "TrackAttemptedLogin")
	})

	t.Run("wrong password reads as invalid credentials and is tracked", func(t *testing.T) {
		store := &MockUserTracker{}
		store.On("GetByEmail", ctx, "ada@example.com").Return(user, nil)
		store.On("TrackAttemptedLogin", ctx, user).Return(nil)

		provider := inkpress.NewUserProvider(store)

		identity, err := provider.VerifyIdentity(ctx, "ada@example.com", "wrong-password")

		assert.Nil(t, identity)
		assert.ErrorIs(t, err, inkpress.ErrInvalidCredentials)
		store.AssertExpectations(t)
	})

	t.Run("failed attempt tracking does not change the outcome", func(t *testing.T) {
		logger := &MockLogger{}
		logger.On("Error", mock.Anything, mock.Anything).Maybe()

		store := &MockUserTracker{}
		store.On("GetByEmail", ctx, "ada@example.com").Return(user, nil)
		store.On("TrackAttemptedLogin", ctx, user).Return(assert.AnError)

		provider := inkpress.NewUserProvider(store).WithLogger(logger)

		identity, err := provider.VerifyIdentity(ctx, "ada@example.com", "wrong-password")

		assert.Nil(t, identity)
		assert.ErrorIs(t, err, inkpress.ErrInvalidCredentials)
	})
}

func TestUserProvider_FindIdentityByID(t *testing.T) {
	ctx := context.Background()

	user := &inkpress.User{
		ID:    uuid.New(),
		Name:  "Ada",
		Email: "ada@example.com",
	}

	t.Run("resolves a stored user", func(t *testing.T) {
		store := &MockUserTracker{}
		store.On("GetByID", ctx, user.ID.String()).Return(user, nil)

		provider := inkpress.NewUserProvider(store)

		identity, err := provider.FindIdentityByID(ctx, user.ID.String())

		assert.NoError(t, err)
		assert.Equal(t, user.ID.String(), identity.ID())
		assert.Equal(t, "Ada", identity.Name())
	})

	t.Run("propagates store errors", func(t *testing.T) {
		store := &MockUserTracker{}
		store.On("GetByID", ctx, "missing").Return(nil, inkpress.ErrIdentityNotFound)

		provider := inkpress.NewUserProvider(store)

		identity, err := provider.FindIdentityByID(ctx, "missing")

		assert.Nil(t, identity)
		assert.ErrorIs(t, err, inkpress.ErrIdentityNotFound)
	})
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "ada@example.com", inkpress.NormalizeEmail("  ADA@Example.COM "))
	assert.Equal(t, "", inkpress.NormalizeEmail("   "))
}
