package inkpress

import (
	"strings"

	"github.com/goliatone/go-errors"
)

// ErrInvalidCredentials is returned for both unknown emails and wrong
// passwords so callers cannot enumerate accounts.
var ErrInvalidCredentials = errors.New("invalid credentials", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("INVALID_CREDENTIALS")

// ErrTokenExpired is the rich error for expired tokens
var ErrTokenExpired = errors.New("token is expired", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("TOKEN_EXPIRED")

// ErrTokenMalformed is the rich error for tokens that fail signature or shape checks
var ErrTokenMalformed = errors.New("token is malformed", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("TOKEN_MALFORMED")

// ErrTokenInvalid is the only token failure the HTTP boundary renders.
// Expired, tampered, and malformed tokens all collapse into it so the
// response gives no hint which check failed.
var ErrTokenInvalid = errors.New("invalid or expired token", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized).
	WithTextCode("TOKEN_INVALID")

// ErrIdentityNotFound is the error we return for non found identities
var ErrIdentityNotFound = errors.New("identity not found", errors.CategoryNotFound).
	WithCode(errors.CodeNotFound)

// ErrMismatchedHashAndPassword means the supplied secret does not match the stored hash
var ErrMismatchedHashAndPassword = errors.New("password does not match stored hash", errors.CategoryAuth).
	WithCode(errors.CodeUnauthorized)

// ErrNoEmptyString rejects empty required values
var ErrNoEmptyString = errors.New("value should not be an empty string", errors.CategoryBadInput).
	WithCode(errors.CodeBadRequest)

// ErrSelfFollow rejects follow toggles where actor and target are the same user
var ErrSelfFollow = errors.New("users cannot follow themselves", errors.CategoryValidation).
	WithCode(errors.CodeBadRequest).
	WithTextCode("SELF_FOLLOW")

// ErrEdgeExists marks a duplicate edge insert; the toggle engine treats
// it as benign and re-reads state instead of failing the request.
var ErrEdgeExists = errors.New("relation edge already exists", errors.CategoryConflict).
	WithCode(errors.CodeConflict).
	WithTextCode("EDGE_EXISTS")

// ErrDuplicateEmail marks a registration against an email that is taken
var ErrDuplicateEmail = errors.New("email is already registered", errors.CategoryConflict).
	WithCode(errors.CodeConflict).
	WithTextCode("DUPLICATE_EMAIL")

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "token is expired")
}

// IsMalformedError will check for error message
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "token is malformed") ||
		strings.Contains(err.Error(), "missing or malformed JWT")
}

// IsConflictError reports whether err carries the conflict category,
// which covers duplicate registrations and racing edge inserts.
func IsConflictError(err error) bool {
	if err == nil {
		return false
	}
	var rich *errors.Error
	if errors.As(err, &rich) {
		return rich.Category == errors.CategoryConflict
	}
	return false
}

// IsDuplicateKeyError detects unique constraint violations across the
// drivers we target (sqlite and postgres).
func IsDuplicateKeyError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value violates unique constraint") ||
		strings.Contains(msg, "SQLSTATE 23505") ||
		strings.Contains(msg, "constraint failed")
}
