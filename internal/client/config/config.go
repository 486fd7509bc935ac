package config

import (
	"os"
	"path/filepath"
	"time"
)

// Config holds runtime settings for the showcase CLI.
type Config struct {
	// APIBaseURL is the root of the REST API, without the /api suffix.
	APIBaseURL string
	// HealthAddr is the host:port of the server's gRPC health endpoint.
	HealthAddr          string
	OnlineCheckInterval time.Duration
	// SessionDBPath is the SQLite file the session is kept in between runs.
	SessionDBPath string
	PageSize      int
	AdminPageSize int
	LogLevel      string
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:3000"
	c.HealthAddr = "127.0.0.1:50051"
	c.OnlineCheckInterval = 3 * time.Second
	c.SessionDBPath = defaultSessionDBPath()
	c.PageSize = 12
	c.AdminPageSize = 100
	c.LogLevel = "warn"
}

func defaultSessionDBPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "showcase.db"
	}
	return filepath.Join(dir, "showcase", "session.db")
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// a config file, the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
