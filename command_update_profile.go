package inkpress

import (
	"context"
	"time"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
)

type UpdateProfileMessage struct {
	UserID    uuid.UUID `json:"-"`
	Name      *string   `json:"name"`
	Email     *string   `json:"email"`
	Bio       *string   `json:"bio"`
	AvatarURL *string   `json:"avatar_url"`
	Phone     *string   `json:"phone"`
}

func (e UpdateProfileMessage) Type() string { return "user.update_profile" }

// UpdateProfileHandler patches the mutable profile fields. Nil fields
// are left untouched.
type UpdateProfileHandler struct {
	repo       RepositoryManager
	logger     Logger
	OnResponse func(user *User)
}

func NewUpdateProfileHandler(repo RepositoryManager) *UpdateProfileHandler {
	return &UpdateProfileHandler{
		repo:   repo,
		logger: defLogger{},
	}
}

// WithLogger overrides the logger used by the handler.
func (h *UpdateProfileHandler) WithLogger(logger Logger) *UpdateProfileHandler {
	if logger != nil {
		h.logger = logger
	}
	return h
}

func (h *UpdateProfileHandler) Execute(ctx context.Context, event UpdateProfileMessage) error {
	select {
	case <-ctx.Done():
		return goerrors.Wrap(
			ctx.Err(),
			goerrors.CategoryOperation,
			"context cancelled during profile update",
		)
	default:
		return h.execute(ctx, event)
	}
}

func (h *UpdateProfileHandler) execute(ctx context.Context, event UpdateProfileMessage) error {
	ctx, cancel := context.WithTimeout(ctx, time.Second*10)
	defer cancel()

	user, err := h.repo.Users().GetByID(ctx, event.UserID.String())
	if err != nil {
		if goerrors.IsNotFound(err) {
			return ErrIdentityNotFound
		}
		return goerrors.Wrap(err, goerrors.CategoryInternal, "could not retrieve user")
	}

	if event.Name != nil {
		user.Name = *event.Name
	}

	if event.Email != nil {
		email := NormalizeEmail(*event.Email)
		if email != user.Email {
			existing, err := h.repo.Users().GetByEmail(ctx, email)
			if err != nil && !goerrors.IsNotFound(err) {
				return goerrors.Wrap(err, goerrors.CategoryInternal, "could not check email availability")
			}
			if existing != nil && existing.ID != user.ID {
				return ErrDuplicateEmail
			}
			user.Email = email
		}
	}

	if event.Bio != nil {
		user.Bio = *event.Bio
	}

	if event.AvatarURL != nil {
		user.AvatarURL = *event.AvatarURL
	}

	if event.Phone != nil {
		user.Phone = NormalizePhone(*event.Phone)
	}

	criteria := []repository.UpdateCriteria{
		repository.UpdateByID(user.ID.String()),
	}

	updated, err := h.repo.Users().Update(ctx, user, criteria...)
	if err != nil {
		// the unique index on email is the real arbiter
		if IsDuplicateKeyError(err) {
			return ErrDuplicateEmail
		}
		return goerrors.Wrap(err, goerrors.CategoryInternal, "failed to update user profile")
	}

	if h.OnResponse != nil {
		h.OnResponse(updated.Sanitized())
	}

	return nil
}
