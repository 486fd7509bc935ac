package config

import "github.com/dmitrijs2005/showcase/internal/configx"

const (
	EnvHTTPAddr              = "SHOWCASE_HTTP_ADDR"
	EnvHealthAddr            = "SHOWCASE_HEALTH_ADDR"
	EnvDatabaseDSN           = "SHOWCASE_DATABASE_DSN"
	EnvSecretKey             = "SHOWCASE_SECRET_KEY"
	EnvTokenValidityDuration = "SHOWCASE_TOKEN_TTL"
	EnvAdminUsername         = "SHOWCASE_ADMIN_USERNAME"
	EnvAdminPassword         = "SHOWCASE_ADMIN_PASSWORD"
	EnvS3AccessKey           = "SHOWCASE_S3_ACCESS_KEY"
	EnvS3SecretKey           = "SHOWCASE_S3_SECRET_KEY"
	EnvS3Bucket              = "SHOWCASE_S3_BUCKET"
	EnvS3Region              = "SHOWCASE_S3_REGION"
	EnvS3BaseEndpoint        = "SHOWCASE_S3_ENDPOINT"
	EnvS3UsePathStyle        = "SHOWCASE_S3_PATH_STYLE"
	EnvLogLevel              = "SHOWCASE_LOG_LEVEL"
	EnvLogFormat             = "SHOWCASE_LOG_FORMAT"
)

// parseEnv overlays cfg with SHOWCASE_* variables. It panics on malformed
// booleans or durations.
func parseEnv(cfg *Config) {
	configx.String(EnvHTTPAddr, &cfg.HTTPAddr)
	configx.String(EnvHealthAddr, &cfg.HealthAddr)
	configx.String(EnvDatabaseDSN, &cfg.DatabaseDSN)
	configx.String(EnvSecretKey, &cfg.SecretKey)
	configx.String(EnvAdminUsername, &cfg.AdminUsername)
	configx.String(EnvAdminPassword, &cfg.AdminPassword)
	configx.String(EnvS3AccessKey, &cfg.S3AccessKey)
	configx.String(EnvS3SecretKey, &cfg.S3SecretKey)
	configx.String(EnvS3Bucket, &cfg.S3Bucket)
	configx.String(EnvS3Region, &cfg.S3Region)
	configx.String(EnvS3BaseEndpoint, &cfg.S3BaseEndpoint)
	configx.String(EnvLogLevel, &cfg.LogLevel)
	configx.String(EnvLogFormat, &cfg.LogFormat)

	for _, err := range []error{
		configx.Duration(EnvTokenValidityDuration, &cfg.TokenValidityDuration),
		configx.Bool(EnvS3UsePathStyle, &cfg.S3UsePathStyle),
	} {
		if err != nil {
			panic(err)
		}
	}
}
