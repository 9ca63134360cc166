package authware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/inkpress/inkpress/middleware/authware"
	"github.com/stretchr/testify/assert"
)

type stubClaims struct {
	subject string
}

func (s stubClaims) Subject() string { return s.subject }
func (s stubClaims) UserID() string  { return s.subject }
func (s stubClaims) Email() string   { return s.subject + "@example.com" }
func (s stubClaims) Name() string    { return "Stub" }

type stubValidator struct {
	accept string
}

func (v stubValidator) Validate(tokenString string) (authware.AuthClaims, error) {
	if tokenString == v.accept {
		return stubClaims{subject: "user-123"}, nil
	}
	return nil, errors.New("token is malformed")
}

func newTestApp(cfg authware.Config) *fiber.App {
	app := fiber.New()
	app.Get("/protected", authware.New(cfg), func(c *fiber.Ctx) error {
		claims, _ := c.Locals("user").(authware.AuthClaims)
		if claims == nil {
			return c.SendString("anonymous")
		}
		return c.SendString(claims.UserID())
	})
	return app
}

func baseConfig() authware.Config {
	return authware.Config{
		SigningKey:     authware.SigningKey{Key: []byte("test-key"), JWTAlg: "HS256"},
		TokenValidator: stubValidator{accept: "good-token"},
	}
}

func TestMiddleware(t *testing.T) {
	t.Run("accepts a valid bearer token", func(t *testing.T) {
		app := newTestApp(baseConfig())

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer good-token")

		res, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("rejects a missing token", func(t *testing.T) {
		app := newTestApp(baseConfig())

		res, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("rejects an invalid token", func(t *testing.T) {
		app := newTestApp(baseConfig())

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer bad-token")

		res, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("optional mode lets anonymous requests through", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Optional = true
		app := newTestApp(cfg)

		res, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("optional mode still rejects an invalid token", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Optional = true
		app := newTestApp(cfg)

		req := httptest.NewRequest(http.MethodGet, "/protected", nil)
		req.Header.Set(fiber.HeaderAuthorization, "Bearer bad-token")

		res, err := app.Test(req)
		assert.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, res.StatusCode)
	})

	t.Run("filter short circuits the middleware", func(t *testing.T) {
		cfg := baseConfig()
		cfg.Filter = func(c *fiber.Ctx) bool { return true }
		app := newTestApp(cfg)

		res, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected", nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("reads tokens from the configured query param", func(t *testing.T) {
		cfg := baseConfig()
		cfg.TokenLookup = "query:auth_token"
		app := newTestApp(cfg)

		res, err := app.Test(httptest.NewRequest(http.MethodGet, "/protected?auth_token=good-token", nil))
		assert.NoError(t, err)
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})
}

func TestGetExtractors(t *testing.T) {
	t.Run("builds an extractor per lookup entry", func(t *testing.T) {
		extractors := authware.GetExtractors("header:Authorization,query:auth_token,cookie:jwt")
		assert.Len(t, extractors, 3)
	})

	t.Run("unknown sources are skipped", func(t *testing.T) {
		extractors := authware.GetExtractors("bogus:thing")
		assert.Len(t, extractors, 0)
	})
}
