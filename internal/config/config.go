package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Default feed endpoints. Both are read-only public GeoJSON documents
// consumed whole.
const (
	DefaultQuakeFeedURL = "https://earthquake.usgs.gov/earthquakes/feed/v1.0/summary/all_month.geojson"
	DefaultBordersURL   = "https://raw.githubusercontent.com/johan/world.geo.json/master/countries.geo.json"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	QuakeFeedURL   string
	BordersURL     string
	BordersEnabled bool
	FetchTimeout   time.Duration
	// RefreshInterval of 0 means fetch once at startup and never again.
	RefreshInterval time.Duration

	HTTPAddr        string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration

	SphereGrid int

	// Kafka sink configuration. Disabled by default; when enabled, every
	// extracted event is republished to the sink topic after each fetch.
	KafkaEnabled   bool
	KafkaBrokers   []string
	KafkaSinkTopic string
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	fetchTimeout, err := envDuration("FETCH_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	refreshInterval, err := envRefreshInterval()
	if err != nil {
		return nil, err
	}

	shutdownTimeout, err := envDuration("SHUTDOWN_TIMEOUT", 10*time.Second)
	if err != nil {
		return nil, err
	}

	sphereGrid, err := envSphereGrid()
	if err != nil {
		return nil, err
	}

	kafkaEnabled := false
	if v := os.Getenv("KAFKA_ENABLED"); v != "" {
		kafkaEnabled = v == "true"
	}

	cfg := &Config{
		QuakeFeedURL:    envOrDefault("QUAKE_FEED_URL", DefaultQuakeFeedURL),
		BordersURL:      envOrDefault("BORDERS_URL", DefaultBordersURL),
		BordersEnabled:  envOrDefault("BORDERS_ENABLED", "true") == "true",
		FetchTimeout:    fetchTimeout,
		RefreshInterval: refreshInterval,
		HTTPAddr:        envOrDefault("HTTP_ADDR", ":8080"),
		LogLevel:        envOrDefault("LOG_LEVEL", "info"),
		LogFormat:       envOrDefault("LOG_FORMAT", "json"),
		ShutdownTimeout: shutdownTimeout,
		SphereGrid:      sphereGrid,
		KafkaEnabled:    kafkaEnabled,
		KafkaBrokers:    parseBrokers(envOrDefault("KAFKA_BROKERS", "localhost:9092")),
		KafkaSinkTopic:  envOrDefault("KAFKA_SINK_TOPIC", "quake-events"),
	}

	if cfg.QuakeFeedURL == "" {
		return nil, errors.New("QUAKE_FEED_URL is required")
	}
	if cfg.BordersEnabled && cfg.BordersURL == "" {
		return nil, errors.New("BORDERS_ENABLED is true but BORDERS_URL is empty")
	}
	if cfg.KafkaEnabled && len(cfg.KafkaBrokers) == 0 {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_BROKERS is empty")
	}
	if cfg.KafkaEnabled && cfg.KafkaSinkTopic == "" {
		return nil, errors.New("KAFKA_ENABLED is true but KAFKA_SINK_TOPIC is empty")
	}

	return cfg, nil
}

func envOrDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func envDuration(key string, def time.Duration) (time.Duration, error) {
	s := os.Getenv(key)
	if s == "" {
		return def, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d <= 0 {
		return 0, fmt.Errorf("invalid %s: %q", key, s)
	}
	return d, nil
}

// envRefreshInterval allows 0 (fetch once) but rejects negative or
// unparseable values.
func envRefreshInterval() (time.Duration, error) {
	s := os.Getenv("REFRESH_INTERVAL")
	if s == "" || s == "0" {
		return 0, nil
	}
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return 0, fmt.Errorf("invalid REFRESH_INTERVAL: %q", s)
	}
	return d, nil
}

func envSphereGrid() (int, error) {
	s := os.Getenv("SPHERE_GRID")
	if s == "" {
		return 50, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 2 || n > 200 {
		return 0, fmt.Errorf("invalid SPHERE_GRID: %q", s)
	}
	return n, nil
}

func parseBrokers(s string) []string {
	parts := strings.Split(s, ",")
	brokers := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			brokers = append(brokers, p)
		}
	}
	return brokers
}
