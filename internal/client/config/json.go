package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/nutrio/internal/timex"
)

// JsonConfig is the on-disk form. Zero values leave the current setting
// alone; durations accept "3s" or integer nanoseconds.
type JsonConfig struct {
	DatabaseDSN         string         `json:"database_dsn"`
	LocalDBPath         string         `json:"local_db_path"`
	JWTSecret           string         `json:"jwt_secret"`
	SessionTTL          timex.Duration `json:"session_ttl"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval"`
	S3Bucket            string         `json:"s3_bucket"`
	S3Region            string         `json:"s3_region"`
	S3BaseEndpoint      string         `json:"s3_base_endpoint"`
	S3AccessKey         string         `json:"s3_access_key"`
	S3SecretKey         string         `json:"s3_secret_key"`
	LogLevel            string         `json:"log_level"`
	LogBackend          string         `json:"log_backend"`
}

// parseJSON overlays cfg with the file at path. An empty path is a no-op.
func parseJSON(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("config file: %w", err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("config file %s: %w", path, err)
	}

	setString(&cfg.DatabaseDSN, jc.DatabaseDSN)
	setString(&cfg.LocalDBPath, jc.LocalDBPath)
	setString(&cfg.JWTSecret, jc.JWTSecret)
	setDuration(&cfg.SessionTTL, jc.SessionTTL.Duration)
	setDuration(&cfg.OnlineCheckInterval, jc.OnlineCheckInterval.Duration)
	setString(&cfg.S3Bucket, jc.S3Bucket)
	setString(&cfg.S3Region, jc.S3Region)
	setString(&cfg.S3BaseEndpoint, jc.S3BaseEndpoint)
	setString(&cfg.S3AccessKey, jc.S3AccessKey)
	setString(&cfg.S3SecretKey, jc.S3SecretKey)
	setString(&cfg.LogLevel, jc.LogLevel)
	setString(&cfg.LogBackend, jc.LogBackend)
	return nil
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}

func setDuration(dst *time.Duration, v time.Duration) {
	if v != 0 {
		*dst = v
	}
}
