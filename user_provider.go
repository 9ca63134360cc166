package inkpress

import (
	"context"
	"strings"

	"github.com/goliatone/go-errors"
)

// UserTracker is a store we can use to retrieve users and record login outcomes
type UserTracker interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
	TrackAttemptedLogin(ctx context.Context, user *User) error
	TrackSuccessfulLogin(ctx context.Context, user *User) error
}

// UserProvider resolves identities against the user store
type UserProvider struct {
	store  UserTracker
	logger Logger
}

// NewUserProvider will create a new UserProvider
func NewUserProvider(store UserTracker) *UserProvider {
	return &UserProvider{
		store:  store,
		logger: defLogger{},
	}
}

func (u *UserProvider) WithLogger(l Logger) *UserProvider {
	if l != nil {
		u.logger = l
	}
	return u
}

// VerifyIdentity will find the user, compare the password, and return
// the identity. Unknown emails and mismatched passwords both collapse
// into ErrInvalidCredentials: the caller gets no signal which one it was.
func (u UserProvider) VerifyIdentity(ctx context.Context, email, password string) (Identity, error) {
	user, err := u.store.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrInvalidCredentials
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user during verification")
	}

	if user == nil {
		return nil, ErrInvalidCredentials
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		// Failed attempts are tracked for audit; there is no lockout.
		if err2 := u.store.TrackAttemptedLogin(ctx, user); err2 != nil {
			u.logger.Error("failed to track login attempt: %v", err2)
		}

		return nil, ErrInvalidCredentials
	}

	if err := u.store.TrackSuccessfulLogin(ctx, user); err != nil {
		u.logger.Error("failed to track successful login: %v", err)
	}

	return identityFromUser(user), nil
}

// FindIdentityByID resolves a user id back into an identity
func (u UserProvider) FindIdentityByID(ctx context.Context, id string) (Identity, error) {
	user, err := u.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, ErrIdentityNotFound
	}

	return identityFromUser(user), nil
}

// NormalizeEmail lowercases and trims an email so the uniqueness
// constraint on users.email compares like with like.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

type authIdentity struct {
	id    string
	email string
	name  string
}

func identityFromUser(user *User) authIdentity {
	return authIdentity{
		id:    user.ID.String(),
		email: user.Email,
		name:  user.Name,
	}
}

func (a authIdentity) ID() string {
	return a.id
}

func (a authIdentity) Email() string {
	return a.email
}

func (a authIdentity) Name() string {
	return a.name
}

var _ Identity = authIdentity{}
