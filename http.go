package inkpress

import (
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/gofiber/fiber/v2"
	"github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"
	"github.com/inkpress/inkpress/middleware/authware"
)

// RouteAuthenticator wires token validation into fiber middleware and
// owns the error rendering for the JSON API.
type RouteAuthenticator struct {
	auth         Authenticator
	cfg          Config
	tokens       TokenService
	validator    TokenValidator
	Logger       Logger
	ErrorHandler func(c *fiber.Ctx, err error) error
}

func NewHTTPAuthenticator(auther Authenticator, tokens TokenService, cfg Config) (*RouteAuthenticator, error) {
	a := &RouteAuthenticator{
		cfg:       cfg,
		auth:      auther,
		tokens:    tokens,
		validator: tokens,
		Logger:    defLogger{},
	}

	a.ErrorHandler = a.defaultErrHandler

	return a, nil
}

// WithTokenValidator swaps the validator used by the middleware, e.g.
// NewMultiTokenValidator(localService, jwksBacked) to accept tokens
// from more than one issuer.
func (a *RouteAuthenticator) WithTokenValidator(v TokenValidator) *RouteAuthenticator {
	if v != nil {
		a.validator = v
	}
	return a
}

// ProtectedRoute rejects requests without a valid bearer token.
func (a *RouteAuthenticator) ProtectedRoute() fiber.Handler {
	return a.middleware(false)
}

// OptionalRoute validates a bearer token when present but lets
// anonymous requests through.
func (a *RouteAuthenticator) OptionalRoute() fiber.Handler {
	return a.middleware(true)
}

func (a *RouteAuthenticator) middleware(optional bool) fiber.Handler {
	return authware.New(authware.Config{
		ErrorHandler: a.MakeRouteAuthErrorHandler(optional),
		SigningKey: authware.SigningKey{
			Key:    []byte(a.cfg.GetSigningKey()),
			JWTAlg: a.cfg.GetSigningMethod(),
		},
		AuthScheme:     a.cfg.GetAuthScheme(),
		ContextKey:     a.cfg.GetContextKey(),
		TokenLookup:    a.cfg.GetTokenLookup(),
		TokenValidator: tokenValidatorAdapter{validator: a.validator},
		Optional:       optional,
	})
}

func (a *RouteAuthenticator) MakeRouteAuthErrorHandler(optional bool) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		// The reason stays in the logs; the response body is the same
		// for expired and tampered tokens.
		switch {
		case IsTokenExpiredError(err):
			a.Logger.Info("auth token rejected: expired")
		case IsMalformedError(err):
			a.Logger.Info("auth token rejected: malformed")
		default:
			a.Logger.Info("auth token rejected: %v", err)
		}

		if optional {
			return c.Next()
		}

		return a.ErrorHandler(c, ErrTokenInvalid)
	}
}

func (a *RouteAuthenticator) defaultErrHandler(c *fiber.Ctx, err error) error {
	return RenderError(c, a.Logger, err)
}

// tokenValidatorAdapter bridges a TokenValidator into the middleware's
// narrower claims interface.
type tokenValidatorAdapter struct {
	validator TokenValidator
}

func (a tokenValidatorAdapter) Validate(tokenString string) (authware.AuthClaims, error) {
	claims, err := a.validator.Validate(tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// ClaimsFromCtx returns the validated claims stored by the middleware,
// or nil for anonymous requests on optional routes.
func ClaimsFromCtx(c *fiber.Ctx, contextKey string) AuthClaims {
	raw := c.Locals(contextKey)
	if raw == nil {
		return nil
	}

	claims, ok := raw.(AuthClaims)
	if !ok {
		return nil
	}

	return claims
}

// StatusFromError maps rich error categories onto HTTP status codes.
func StatusFromError(err error) int {
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		return http.StatusInternalServerError
	}

	switch richErr.Category {
	case errors.CategoryAuth:
		return http.StatusUnauthorized
	case errors.CategoryAuthz:
		return http.StatusForbidden
	case errors.CategoryValidation, errors.CategoryBadInput:
		return http.StatusBadRequest
	case errors.CategoryNotFound:
		return http.StatusNotFound
	case errors.CategoryConflict:
		return http.StatusConflict
	}

	if richErr.Code >= http.StatusBadRequest {
		return richErr.Code
	}

	return http.StatusInternalServerError
}

// RenderError writes the JSON error envelope for the API.
func RenderError(c *fiber.Ctx, logger Logger, err error) error {
	var richErr *errors.Error
	if !errors.As(err, &richErr) {
		richErr = errors.Wrap(err, errors.CategoryInternal, "An unexpected server error occurred").
			WithCode(errors.CodeInternal)
	}

	status := StatusFromError(richErr)

	if status >= http.StatusInternalServerError {
		logger.Error(
			"request error: %s category=%s details=%s",
			richErr.Message,
			richErr.Category,
			print.MaybePrettyJSON(richErr.Metadata),
		)
	}

	body := fiber.Map{
		"message": richErr.Message,
	}

	if richErr.TextCode != "" {
		body["text_code"] = richErr.TextCode
	}

	if len(richErr.Metadata) > 0 {
		body["details"] = richErr.Metadata
	}

	return c.Status(status).JSON(fiber.Map{"error": body})
}

// FormatValidationErrorToMap flattens ozzo validation errors into a
// field to message map for the response payload.
func FormatValidationErrorToMap(err error) map[string]string {
	out := map[string]string{}

	if errs, ok := err.(validation.Errors); ok {
		for field, ferr := range errs {
			out[field] = ferr.Error()
		}
		return out
	}

	if err != nil {
		out["payload"] = err.Error()
	}

	return out
}

// RenderValidationError writes a 400 with per-field messages.
func RenderValidationError(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"error": fiber.Map{
			"message":    "Error validating payload",
			"text_code":  "VALIDATION",
			"validation": FormatValidationErrorToMap(err),
		},
	})
}
