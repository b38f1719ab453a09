package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// chdir mirrors testing.T.Chdir (Go 1.24+) for older toolchains.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func validConfig() Config {
	var cfg Config
	cfg.Server.Host = "127.0.0.1"
	cfg.Server.Port = 9000
	cfg.Database.Path = "data/test.db"
	cfg.Auth.JWTSecret = "secret"
	cfg.Auth.TokenScheme = "JWT"
	cfg.Auth.TokenTTL = time.Hour
	cfg.Auth.BcryptCost = 10
	return cfg
}

func TestLoad_Defaults(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("JWT_SECRET", "from-env")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0", cfg.Server.Host)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "data/movies.db", cfg.Database.Path)
	assert.Equal(t, "from-env", cfg.Auth.JWTSecret)
	assert.Equal(t, "JWT", cfg.Auth.TokenScheme)
	assert.Equal(t, time.Hour, cfg.Auth.TokenTTL)
	assert.Equal(t, 10, cfg.Auth.BcryptCost)
	assert.Equal(t, 4, cfg.Auth.MaxConcurrentHashes)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_PrefixedEnvOverrides(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv("MOVIES_AUTH_JWTSECRET", "prefixed")
	t.Setenv("MOVIES_AUTH_TOKENTTL", "30m")
	t.Setenv("MOVIES_SERVER_PORT", "9090")
	t.Setenv("MOVIES_DATABASE_PATH", "/tmp/x.db")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "prefixed", cfg.Auth.JWTSecret)
	assert.Equal(t, 30*time.Minute, cfg.Auth.TokenTTL)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/tmp/x.db", cfg.Database.Path)
	assert.Equal(t, "0.0.0.0:9090", cfg.Addr())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		ok     bool
	}{
		{name: "valid", mutate: func(*Config) {}, ok: true},
		{name: "missing secret", mutate: func(c *Config) { c.Auth.JWTSecret = "  " }},
		{name: "scheme with space", mutate: func(c *Config) { c.Auth.TokenScheme = "JWT X" }},
		{name: "empty scheme", mutate: func(c *Config) { c.Auth.TokenScheme = "" }},
		{name: "zero ttl", mutate: func(c *Config) { c.Auth.TokenTTL = 0 }},
		{name: "cost too low", mutate: func(c *Config) { c.Auth.BcryptCost = 1 }},
		{name: "cost too high", mutate: func(c *Config) { c.Auth.BcryptCost = 40 }},
		{name: "missing database", mutate: func(c *Config) { c.Database.Path = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := validConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			if tt.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
