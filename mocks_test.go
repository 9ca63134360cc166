package inkpress_test

import (
	"context"

	"github.com/google/uuid"
	"github.com/inkpress/inkpress"
	"github.com/stretchr/testify/mock"
)

// MockIdentity implements inkpress.Identity
type MockIdentity struct {
	mock.Mock
}

func (m *MockIdentity) ID() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockIdentity) Email() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockIdentity) Name() string {
	args := m.Called()
	return args.String(0)
}

// MockLogger implements inkpress.Logger
type MockLogger struct {
	mock.Mock
}

func (m *MockLogger) Debug(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Info(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Warn(format string, args ...any) {
	m.Called(format, args)
}

func (m *MockLogger) Error(format string, args ...any) {
	m.Called(format, args)
}

// MockIdentityProvider implements inkpress.IdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) VerifyIdentity(ctx context.Context, email, password string) (inkpress.Identity, error) {
	args := m.Called(ctx, email, password)
	identity, _ := args.Get(0).(inkpress.Identity)
	return identity, args.Error(1)
}

func (m *MockIdentityProvider) FindIdentityByID(ctx context.Context, id string) (inkpress.Identity, error) {
	args := m.Called(ctx, id)
	identity, _ := args.Get(0).(inkpress.Identity)
	return identity, args.Error(1)
}

// MockEdgeStore implements inkpress.EdgeStore
type MockEdgeStore struct {
	mock.Mock
}

func (m *MockEdgeStore) Exists(ctx context.Context, actorID, targetID uuid.UUID) (bool, error) {
	args := m.Called(ctx, actorID, targetID)
	return args.Bool(0), args.Error(1)
}

func (m *MockEdgeStore) Insert(ctx context.Context, actorID, targetID uuid.UUID) error {
	args := m.Called(ctx, actorID, targetID)
	return args.Error(0)
}

func (m *MockEdgeStore) Delete(ctx context.Context, actorID, targetID uuid.UUID) error {
	args := m.Called(ctx, actorID, targetID)
	return args.Error(0)
}

func (m *MockEdgeStore) Count(ctx context.Context, targetID uuid.UUID) (int, error) {
	args := m.Called(ctx, targetID)
	return args.Int(0), args.Error(1)
}

func (m *MockEdgeStore) CountByActor(ctx context.Context, actorID uuid.UUID) (int, error) {
	args := m.Called(ctx, actorID)
	return args.Int(0), args.Error(1)
}

func (m *MockEdgeStore) TargetExists(ctx context.Context, targetID uuid.UUID) (bool, error) {
	args := m.Called(ctx, targetID)
	return args.Bool(0), args.Error(1)
}

// MockUserTracker implements inkpress.UserTracker
type MockUserTracker struct {
	mock.Mock
}

func (m *MockUserTracker) GetByEmail(ctx context.Context, email string) (*inkpress.User, error) {
	args := m.Called(ctx, email)
	user, _ := args.Get(0).(*inkpress.User)
	return user, args.Error(1)
}

func (m *MockUserTracker) GetByID(ctx context.Context, id string) (*inkpress.User, error) {
	args := m.Called(ctx, id)
	user, _ := args.Get(0).(*inkpress.User)
	return user, args.Error(1)
}

func (m *MockUserTracker) TrackAttemptedLogin(ctx context.Context, user *inkpress.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserTracker) TrackSuccessfulLogin(ctx context.Context, user *inkpress.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
