package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"golang.org/x/crypto/bcrypt"
)

// Config holds application level configuration aggregated from env/config files.
type Config struct {
	Server struct {
		Host string
		Port int
	}
	Database struct {
		Path string
	}
	Auth struct {
		JWTSecret           string
		TokenScheme         string
		TokenTTL            time.Duration
		BcryptCost          int
		MaxConcurrentHashes int
	}
	Log struct {
		Level string
		Env   string
	}
}

// Addr returns the listen address for the HTTP server.
func (c Config) Addr() string {
	return net.JoinHostPort(c.Server.Host, strconv.Itoa(c.Server.Port))
}

// Load reads configuration from environment variables and optional config files.
func Load() (Config, error) {
	_ = godotenv.Load() // optional .env, existing env wins

	v := viper.New()
	v.SetEnvPrefix("MOVIES")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// unprefixed names kept for deployments that already export them
	_ = v.BindEnv("server.port", "MOVIES_SERVER_PORT", "PORT")
	_ = v.BindEnv("database.path", "MOVIES_DATABASE_PATH", "DATABASE_URL")
	_ = v.BindEnv("auth.jwtsecret", "MOVIES_AUTH_JWTSECRET", "JWT_SECRET")

	v.SetDefault("server.host", "0.0.0.0")
	v.SetDefault("server.port", 8080)
	v.SetDefault("database.path", "data/movies.db")
	v.SetDefault("auth.jwtsecret", "")
	v.SetDefault("auth.tokenscheme", "JWT")
	v.SetDefault("auth.tokenttl", time.Hour)
	v.SetDefault("auth.bcryptcost", 10)
	v.SetDefault("auth.maxconcurrenthashes", 4)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.env", "production")

	v.SetConfigName("config")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // optional file

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	return cfg, nil
}

// Validate reports configuration that must stop the process at startup.
func (c Config) Validate() error {
	var errs []error
	if strings.TrimSpace(c.Auth.JWTSecret) == "" {
		errs = append(errs, errors.New("auth jwt secret is required"))
	}
	if c.Auth.TokenScheme == "" || strings.ContainsAny(c.Auth.TokenScheme, " \t") {
		errs = append(errs, fmt.Errorf("auth token scheme %q must be a single word", c.Auth.TokenScheme))
	}
	if c.Auth.TokenTTL <= 0 {
		errs = append(errs, fmt.Errorf("auth token ttl must be positive, got %s", c.Auth.TokenTTL))
	}
	if c.Auth.BcryptCost < bcrypt.MinCost || c.Auth.BcryptCost > bcrypt.MaxCost {
		errs = append(errs, fmt.Errorf("auth bcrypt cost must be within [%d, %d], got %d", bcrypt.MinCost, bcrypt.MaxCost, c.Auth.BcryptCost))
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		errs = append(errs, errors.New("database path is required"))
	}
	return errors.Join(errs...)
}
