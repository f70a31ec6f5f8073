// Package config centralises configuration parsing for the workout tracker.
package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration values for the tracker.
type Config struct {
	PackagesFile   string
	LogLevel       string
	LogFile        string
	LogToStderr    bool
	LogJSON        bool
	KafkaBrokers   []string
	SummaryTopic   string
	PublishTimeout time.Duration
	MetricsFile    string // Prometheus textfile; empty disables the dump.
}

// Load reads an optional .env file and then environment variables into Config.
// Variables already present in the environment take precedence over .env entries.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if err := godotenv.Load(file); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, err
		}
	}

	return Config{
		PackagesFile:   getEnv("TRACKER_PACKAGES_FILE", ""),
		LogLevel:       getEnv("TRACKER_LOG_LEVEL", "info"),
		LogFile:        getEnv("TRACKER_LOG_FILE", ""),
		LogToStderr:    getBoolEnv("TRACKER_LOG_TO_STDERR", true),
		LogJSON:        getBoolEnv("TRACKER_LOG_JSON", false),
		KafkaBrokers:   splitAndTrim(getEnv("KAFKA_BROKERS", "")),
		SummaryTopic:   getEnv("SUMMARY_TOPIC", "workout_summaries"),
		PublishTimeout: getDurationEnv("PUBLISH_TIMEOUT", 10*time.Second),
		MetricsFile:    getEnv("TRACKER_METRICS_FILE", ""),
	}, nil
}

// PublishingEnabled reports whether summaries should be sent to Kafka.
func (c Config) PublishingEnabled() bool {
	return len(c.KafkaBrokers) > 0
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func splitAndTrim(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := strconv.ParseBool(value); err == nil {
			return parsed
		}
	}
	return fallback
}
