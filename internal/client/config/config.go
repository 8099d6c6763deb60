package config

import (
	"time"

	"github.com/dmitrijs2005/nutrio/internal/client/avatars"
	"github.com/dmitrijs2005/nutrio/internal/flagx"
)

// Config holds runtime settings for the nutrio client.
//
// DatabaseDSN empty means offline: the client runs on the in-memory gateway
// with mock data. S3Bucket empty disables avatar upload.
type Config struct {
	DatabaseDSN         string        `envconfig:"DATABASE_DSN"`
	LocalDBPath         string        `envconfig:"LOCAL_DB_PATH"`
	JWTSecret           string        `envconfig:"JWT_SECRET"`
	SessionTTL          time.Duration `envconfig:"SESSION_TTL"`
	OnlineCheckInterval time.Duration `envconfig:"ONLINE_CHECK_INTERVAL"`

	S3Bucket       string `envconfig:"S3_BUCKET"`
	S3Region       string `envconfig:"S3_REGION"`
	S3BaseEndpoint string `envconfig:"S3_BASE_ENDPOINT"`
	S3AccessKey    string `envconfig:"S3_ACCESS_KEY"`
	S3SecretKey    string `envconfig:"S3_SECRET_KEY"`

	LogLevel   string `envconfig:"LOG_LEVEL"`
	LogBackend string `envconfig:"LOG_BACKEND"`
}

// LoadDefaults populates c with defaults suitable for a local demo.
func (c *Config) LoadDefaults() {
	c.LocalDBPath = "nutrio.db"
	c.JWTSecret = "nutrio-dev-secret"
	c.SessionTTL = 24 * time.Hour
	c.OnlineCheckInterval = 5 * time.Second
	c.S3Region = "us-east-1"
	c.LogLevel = "info"
	c.LogBackend = "slog"
}

// Avatars returns the avatar storage settings.
func (c *Config) Avatars() avatars.Config {
	return avatars.Config{
		Bucket:       c.S3Bucket,
		Region:       c.S3Region,
		BaseEndpoint: c.S3BaseEndpoint,
		AccessKey:    c.S3AccessKey,
		SecretKey:    c.S3SecretKey,
	}
}

// LoadConfig builds a Config from defaults, then the JSON file (-c), then
// the environment (NUTRIO_*, optionally seeded from the -e dotenv file), then
// flags. Later sources win.
func LoadConfig() (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()

	jsonFile, envFile := flagx.SourceFiles()
	if err := parseJSON(cfg, jsonFile); err != nil {
		return nil, err
	}
	if err := parseEnv(cfg, envFile); err != nil {
		return nil, err
	}
	if err := parseFlags(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadEnv builds a Config from defaults and the environment only, seeding it
// from envFile when set. It is meant for tools that own their flag parsing.
func LoadEnv(envFile string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseEnv(cfg, envFile); err != nil {
		return nil, err
	}
	return cfg, nil
}
