package config

import "github.com/dmitrijs2005/showcase/internal/configx"

const (
	EnvAPIBaseURL          = "SHOWCASE_API_URL"
	EnvHealthAddr          = "SHOWCASE_HEALTH_ADDR"
	EnvOnlineCheckInterval = "SHOWCASE_ONLINE_CHECK_INTERVAL"
	EnvSessionDBPath       = "SHOWCASE_SESSION_DB"
	EnvPageSize            = "SHOWCASE_PAGE_SIZE"
	EnvAdminPageSize       = "SHOWCASE_ADMIN_PAGE_SIZE"
	EnvLogLevel            = "SHOWCASE_LOG_LEVEL"
)

// parseEnv overlays cfg with SHOWCASE_* variables. It panics on malformed
// numbers or durations.
func parseEnv(cfg *Config) {
	configx.String(EnvAPIBaseURL, &cfg.APIBaseURL)
	configx.String(EnvHealthAddr, &cfg.HealthAddr)
	configx.String(EnvSessionDBPath, &cfg.SessionDBPath)
	configx.String(EnvLogLevel, &cfg.LogLevel)

	for _, err := range []error{
		configx.Duration(EnvOnlineCheckInterval, &cfg.OnlineCheckInterval),
		configx.Int(EnvPageSize, &cfg.PageSize),
		configx.Int(EnvAdminPageSize, &cfg.AdminPageSize),
	} {
		if err != nil {
			panic(err)
		}
	}
}
