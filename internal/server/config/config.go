// Package config handles configuration for the API server: defaults, an
// optional JSON or YAML file, SHOWCASE_* environment variables and
// command-line flags, applied in that order.
package config

import "time"

// Config holds runtime settings for the showcase API server.
//
// Fields:
//   - HTTPAddr: bind address of the REST API.
//   - HealthAddr: bind address of the gRPC health endpoint.
//   - DatabaseDSN: PostgreSQL DSN (pgx). Empty keeps everything in memory.
//   - SecretKey: HMAC secret for signing JWTs (HS256). Do not use the default in prod.
//   - TokenValidityDuration: lifetime of issued bearer tokens.
//   - AdminUsername / AdminPassword: account created at startup when missing.
//   - S3*: object storage for image payloads. An empty S3Bucket keeps images
//     inline in the database.
type Config struct {
	HTTPAddr              string
	HealthAddr            string
	DatabaseDSN           string
	SecretKey             string
	TokenValidityDuration time.Duration
	AdminUsername         string
	AdminPassword         string
	S3AccessKey           string
	S3SecretKey           string
	S3Bucket              string
	S3Region              string
	S3BaseEndpoint        string
	S3UsePathStyle        bool
	LogLevel              string
	LogFormat             string
}

// LoadDefaults populates Config with development defaults.
// NOTE: These values are insecure for production and should be overridden.
func (c *Config) LoadDefaults() {
	c.HTTPAddr = ":3000"
	c.HealthAddr = ":50051"
	c.DatabaseDSN = ""
	c.SecretKey = "secretKey"
	c.TokenValidityDuration = 24 * time.Hour
	c.AdminUsername = "admin"
	c.AdminPassword = "admin123"
	c.S3Region = "us-east-1"
	c.S3UsePathStyle = true
	c.LogLevel = "info"
	c.LogFormat = "json"
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional config file, the environment and finally command-line
// flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseFile(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
