package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

var (
	ErrMissingMongoURI   = errors.New("MONGO_URI is required")
	ErrInvalidListLimit  = errors.New("LIST_LIMIT must be between 1 and 100")
	ErrInvalidLogLevel   = errors.New("LOG_LEVEL must be one of: debug, info, warn, error")
	ErrInvalidRateLimit  = errors.New("RATE_LIMIT_RPS and RATE_LIMIT_BURST must be non-negative")
	ErrInvalidConfigFile = errors.New("invalid config file")
	ErrNoAllowedOrigins  = errors.New("ALLOWED_ORIGINS must name at least one origin")
)

const maxListLimit = 100

type Config struct {
	Port           string   `yaml:"port"`
	MongoDBURI     string   `yaml:"-"`
	MongoDBName    string   `yaml:"mongo_db_name"`
	Environment    string   `yaml:"environment"`
	LogLevel       string   `yaml:"log_level"`
	ListLimit      int      `yaml:"list_limit"`
	AllowedOrigins []string `yaml:"allowed_origins"`
	RateLimitRPS   float64  `yaml:"rate_limit_rps"`
	RateLimitBurst int      `yaml:"rate_limit_burst"`
}

func defaults() *Config {
	return &Config{
		Port:           "8080",
		MongoDBName:    "event_management_db",
		Environment:    "development",
		LogLevel:       "info",
		ListLimit:      maxListLimit,
		AllowedOrigins: []string{"http://localhost:3000"},
		RateLimitRPS:   0,
		RateLimitBurst: 20,
	}
}

// LoadConfig builds the configuration from defaults, then the optional YAML
// file named by CONFIG_FILE, then the environment. The connection string is
// only ever read from the environment.
func LoadConfig() (*Config, error) {
	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		if err := cfg.loadFile(path); err != nil {
			return nil, err
		}
	}

	cfg.MongoDBURI = os.Getenv("MONGO_URI")
	if password := os.Getenv("MONGODB_PASSWORD"); password != "" {
		cfg.MongoDBURI = strings.Replace(cfg.MongoDBURI, "<password>", password, 1)
	}
	cfg.Port = getEnvWithDefault("PORT", cfg.Port)
	cfg.MongoDBName = getEnvWithDefault("MONGO_DB_NAME", cfg.MongoDBName)
	cfg.Environment = getEnvWithDefault("ENVIRONMENT", cfg.Environment)
	cfg.LogLevel = strings.ToLower(getEnvWithDefault("LOG_LEVEL", cfg.LogLevel))

	if origins := splitList(os.Getenv("ALLOWED_ORIGINS")); len(origins) > 0 {
		cfg.AllowedOrigins = origins
	}

	var err error
	if cfg.ListLimit, err = getEnvInt("LIST_LIMIT", cfg.ListLimit); err != nil {
		return nil, err
	}
	if cfg.RateLimitBurst, err = getEnvInt("RATE_LIMIT_BURST", cfg.RateLimitBurst); err != nil {
		return nil, err
	}
	if v := os.Getenv("RATE_LIMIT_RPS"); v != "" {
		if cfg.RateLimitRPS, err = strconv.ParseFloat(v, 64); err != nil {
			return nil, fmt.Errorf("RATE_LIMIT_RPS: %w", err)
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.MongoDBURI == "" {
		return ErrMissingMongoURI
	}
	if c.ListLimit < 1 || c.ListLimit > maxListLimit {
		return ErrInvalidListLimit
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return ErrInvalidLogLevel
	}
	if c.RateLimitRPS < 0 || c.RateLimitBurst < 0 {
		return ErrInvalidRateLimit
	}
	if len(c.AllowedOrigins) == 0 {
		return ErrNoAllowedOrigins
	}
	return nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidConfigFile, err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("%w: %s: %v", ErrInvalidConfigFile, path, err)
	}
	return nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", key, err)
	}
	return n, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

func (c *Config) RateLimitEnabled() bool {
	return c.RateLimitRPS > 0
}
