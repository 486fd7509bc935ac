package config

import (
	"os"

	"github.com/dmitrijs2005/showcase/internal/configx"
	"github.com/dmitrijs2005/showcase/internal/flagx"
	"github.com/dmitrijs2005/showcase/internal/timex"
)

// FileConfig is the on-disk shape of the configuration, JSON or YAML.
// Durations go through timex.Duration so "3s" and integer nanoseconds both
// work. Zero values leave the current setting alone.
type FileConfig struct {
	APIBaseURL          string         `json:"api_base_url" yaml:"api_base_url"`
	HealthAddr          string         `json:"health_addr" yaml:"health_addr"`
	OnlineCheckInterval timex.Duration `json:"online_check_interval" yaml:"online_check_interval"`
	SessionDBPath       string         `json:"session_db_path" yaml:"session_db_path"`
	PageSize            int            `json:"page_size" yaml:"page_size"`
	AdminPageSize       int            `json:"admin_page_size" yaml:"admin_page_size"`
	LogLevel            string         `json:"log_level" yaml:"log_level"`
}

// parseFile overlays cfg with the file named by -c/-config, if any. It panics
// on read or decode errors.
func parseFile(cfg *Config) {
	path := flagx.ConfigFileFlag(os.Args[1:])
	if path == "" {
		return
	}

	var fc FileConfig
	if err := configx.DecodeFile(path, &fc); err != nil {
		panic(err)
	}
	fc.apply(cfg)
}

func (fc FileConfig) apply(cfg *Config) {
	if fc.APIBaseURL != "" {
		cfg.APIBaseURL = fc.APIBaseURL
	}
	if fc.HealthAddr != "" {
		cfg.HealthAddr = fc.HealthAddr
	}
	if fc.OnlineCheckInterval.Duration > 0 {
		cfg.OnlineCheckInterval = fc.OnlineCheckInterval.Duration
	}
	if fc.SessionDBPath != "" {
		cfg.SessionDBPath = fc.SessionDBPath
	}
	if fc.PageSize > 0 {
		cfg.PageSize = fc.PageSize
	}
	if fc.AdminPageSize > 0 {
		cfg.AdminPageSize = fc.AdminPageSize
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
}
