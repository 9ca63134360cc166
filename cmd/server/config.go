package main

import (
	"os"
	"strconv"
	"strings"
	"time"
)

// AppConfig is the environment backed configuration for the server.
type AppConfig struct {
	Address     string
	Debug       bool
	Auth        *AuthConfig
	Persistence *PersistenceConfig
}

// AuthConfig implements the auth package Config interface.
type AuthConfig struct {
	SigningKey      string
	SigningMethod   string
	ContextKey      string
	TokenExpiration int
	TokenLookup     string
	AuthScheme      string
	Issuer          string
	Audience        []string
}

func (c *AuthConfig) GetSigningKey() string    { return c.SigningKey }
func (c *AuthConfig) GetSigningMethod() string { return c.SigningMethod }
func (c *AuthConfig) GetContextKey() string    { return c.ContextKey }
func (c *AuthConfig) GetTokenExpiration() int  { return c.TokenExpiration }
func (c *AuthConfig) GetTokenLookup() string   { return c.TokenLookup }
func (c *AuthConfig) GetAuthScheme() string    { return c.AuthScheme }
func (c *AuthConfig) GetIssuer() string        { return c.Issuer }
func (c *AuthConfig) GetAudience() []string    { return c.Audience }

// PersistenceConfig feeds the persistence client.
type PersistenceConfig struct {
	DSN         string
	PingTimeout time.Duration
	Debug       bool
}

func (c *PersistenceConfig) GetDSN() string                { return c.DSN }
func (c *PersistenceConfig) GetPingTimeout() time.Duration { return c.PingTimeout }
func (c *PersistenceConfig) GetDebug() bool                { return c.Debug }
func (c *PersistenceConfig) GetDriver() string             { return "" }
func (c *PersistenceConfig) GetServer() string             { return "" }
func (c *PersistenceConfig) GetOtelIdentifier() string     { return "" }

// LoadConfig builds the configuration from INKPRESS_* environment
// variables with development friendly defaults.
func LoadConfig() *AppConfig {
	return &AppConfig{
		Address: envString("INKPRESS_ADDRESS", ":8570"),
		Debug:   envBool("INKPRESS_DEBUG", false),
		Auth: &AuthConfig{
			SigningKey:      envString("INKPRESS_SIGNING_KEY", "development-signing-key"),
			SigningMethod:   envString("INKPRESS_SIGNING_METHOD", "HS256"),
			ContextKey:      envString("INKPRESS_CONTEXT_KEY", "user"),
			TokenExpiration: envInt("INKPRESS_TOKEN_EXPIRATION", 72),
			TokenLookup:     envString("INKPRESS_TOKEN_LOOKUP", "header:Authorization"),
			AuthScheme:      envString("INKPRESS_AUTH_SCHEME", "Bearer"),
			Issuer:          envString("INKPRESS_TOKEN_ISSUER", "inkpress"),
			Audience:        envList("INKPRESS_TOKEN_AUDIENCE", []string{"inkpress"}),
		},
		Persistence: &PersistenceConfig{
			DSN:         envString("INKPRESS_DSN", "file:inkpress.db?cache=shared&_pragma=foreign_keys(1)"),
			PingTimeout: envDuration("INKPRESS_DB_PING_TIMEOUT", 5*time.Second),
			Debug:       envBool("INKPRESS_DB_DEBUG", false),
		},
	}
}

func envString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func envBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func envList(key string, def []string) []string {
	if v := os.Getenv(key); v != "" {
		parts := strings.Split(v, ",")
		out := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
		if len(out) > 0 {
			return out
		}
	}
	return def
}
