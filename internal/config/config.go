// Package config loads application configuration from defaults, an optional
// YAML file and AUCTIONHUB_ environment variables.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override. Nested keys are separated
// by a double underscore, e.g. AUCTIONHUB_SESSION__SECRET_KEY.
const EnvPrefix = "AUCTIONHUB_"

// Config holds application configuration.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Log     LogConfig     `koanf:"log"`
	CORS    CORSConfig    `koanf:"cors"`
	Session SessionConfig `koanf:"session"`
	Auth    AuthConfig    `koanf:"auth"`
}

// ServerConfig configures the HTTP listeners.
type ServerConfig struct {
	Host              string        `koanf:"host"`
	Port              string        `koanf:"port" validate:"required"`
	MetricsPort       string        `koanf:"metrics_port" validate:"required,nefield=Port"`
	ReadTimeout       time.Duration `koanf:"read_timeout"`
	ReadHeaderTimeout time.Duration `koanf:"read_header_timeout"`
	WriteTimeout      time.Duration `koanf:"write_timeout"`
	IdleTimeout       time.Duration `koanf:"idle_timeout"`
	ShutdownTimeout   time.Duration `koanf:"shutdown_timeout"`
}

// LogConfig configures the slog handler.
type LogConfig struct {
	Level  string `koanf:"level" validate:"oneof=debug info warn error"`
	Format string `koanf:"format" validate:"oneof=json text"`
}

// CORSConfig lists origins allowed to call the API with credentials.
type CORSConfig struct {
	AllowedOrigins []string `koanf:"allowed_origins"`
}

// SessionConfig configures the signed session cookie.
type SessionConfig struct {
	SecretKey    string        `koanf:"secret_key" validate:"required,min=32"`
	CookieName   string        `koanf:"cookie_name" validate:"required"`
	CookieDomain string        `koanf:"cookie_domain"`
	CookieSecure bool          `koanf:"cookie_secure"`
	MaxAge       time.Duration `koanf:"max_age" validate:"gte=0"`
}

// AuthConfig configures the login flow.
type AuthConfig struct {
	AllowFallback bool            `koanf:"allow_fallback"`
	Latency       time.Duration   `koanf:"latency" validate:"gte=0"`
	BcryptCost    int             `koanf:"bcrypt_cost" validate:"gte=0,lte=31"`
	Accounts      []AccountConfig `koanf:"accounts" validate:"dive"`
}

// AccountConfig is one allow-listed login.
type AccountConfig struct {
	Username     string `koanf:"username" validate:"required"`
	Email        string `koanf:"email" validate:"required,email"`
	Name         string `koanf:"name"`
	Role         string `koanf:"role" validate:"oneof=CUSTOMER SELLER ADMIN"`
	Password     string `koanf:"password" validate:"required_without=PasswordHash"`
	PasswordHash string `koanf:"password_hash"`
}

// defaults is a koanf provider serving the built-in configuration.
type defaults map[string]interface{}

func (d defaults) ReadBytes() ([]byte, error) {
	return nil, errors.New("defaults provider does not support ReadBytes")
}

func (d defaults) Read() (map[string]interface{}, error) {
	return d, nil
}

func defaultValues() defaults {
	return defaults{
		"server": map[string]interface{}{
			"host":                "0.0.0.0",
			"port":                "8080",
			"metrics_port":        "9090",
			"read_timeout":        "15s",
			"read_header_timeout": "5s",
			"write_timeout":       "15s",
			"idle_timeout":        "60s",
			"shutdown_timeout":    "10s",
		},
		"log": map[string]interface{}{
			"level":  "info",
			"format": "json",
		},
		"cors": map[string]interface{}{
			"allowed_origins": []interface{}{"http://localhost:3000"},
		},
		"session": map[string]interface{}{
			"cookie_name":   "auctionhub_session",
			"cookie_secure": false,
			"max_age":       "168h",
		},
		"auth": map[string]interface{}{
			"allow_fallback": true,
			"latency":        "0s",
			"bcrypt_cost":    0,
			"accounts": []interface{}{
				demoAccount("admin", "Admin User", "ADMIN"),
				demoAccount("seller", "Seller User", "SELLER"),
				demoAccount("customer", "Customer User", "CUSTOMER"),
			},
		},
	}
}

func demoAccount(username, name, role string) map[string]interface{} {
	return map[string]interface{}{
		"username": username,
		"email":    username + "@example.com",
		"name":     name,
		"role":     role,
		"password": username + "123",
	}
}

// Load builds the configuration. An empty path skips the YAML file.
func Load(path string) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(defaultValues(), nil); err != nil {
		return nil, fmt.Errorf("load defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil {
			return nil, fmt.Errorf("load config file %s: %w", path, err)
		}
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil); err != nil {
		return nil, fmt.Errorf("load environment: %w", err)
	}

	var cfg Config
	if err := k.UnmarshalWithConf("", &cfg, koanf.UnmarshalConf{Tag: "koanf"}); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// envKey maps AUCTIONHUB_SESSION__SECRET_KEY to session.secret_key.
func envKey(s string) string {
	s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.ReplaceAll(s, "__", ".")
}

// Validate checks the loaded configuration.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
