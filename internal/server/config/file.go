package config

import (
	"os"

	"github.com/dmitrijs2005/showcase/internal/configx"
	"github.com/dmitrijs2005/showcase/internal/flagx"
	"github.com/dmitrijs2005/showcase/internal/timex"
)

// FileConfig is the on-disk shape of the server configuration, JSON or YAML.
// Empty values leave the current setting alone; S3UsePathStyle is a pointer
// so a file can switch it off.
type FileConfig struct {
	HTTPAddr              string         `json:"http_addr" yaml:"http_addr"`
	HealthAddr            string         `json:"health_addr" yaml:"health_addr"`
	DatabaseDSN           string         `json:"database_dsn" yaml:"database_dsn"`
	SecretKey             string         `json:"secret_key" yaml:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration" yaml:"token_validity_duration"`
	AdminUsername         string         `json:"admin_username" yaml:"admin_username"`
	AdminPassword         string         `json:"admin_password" yaml:"admin_password"`
	S3AccessKey           string         `json:"s3_access_key" yaml:"s3_access_key"`
	S3SecretKey           string         `json:"s3_secret_key" yaml:"s3_secret_key"`
	S3Bucket              string         `json:"s3_bucket" yaml:"s3_bucket"`
	S3Region              string         `json:"s3_region" yaml:"s3_region"`
	S3BaseEndpoint        string         `json:"s3_base_endpoint" yaml:"s3_base_endpoint"`
	S3UsePathStyle        *bool          `json:"s3_use_path_style" yaml:"s3_use_path_style"`
	LogLevel              string         `json:"log_level" yaml:"log_level"`
	LogFormat             string         `json:"log_format" yaml:"log_format"`
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
	set := func(dst *string, v string) {
		if v != "" {
			*dst = v
		}
	}

	set(&cfg.HTTPAddr, fc.HTTPAddr)
	set(&cfg.HealthAddr, fc.HealthAddr)
	set(&cfg.DatabaseDSN, fc.DatabaseDSN)
	set(&cfg.SecretKey, fc.SecretKey)
	set(&cfg.AdminUsername, fc.AdminUsername)
	set(&cfg.AdminPassword, fc.AdminPassword)
	set(&cfg.S3AccessKey, fc.S3AccessKey)
	set(&cfg.S3SecretKey, fc.S3SecretKey)
	set(&cfg.S3Bucket, fc.S3Bucket)
	set(&cfg.S3Region, fc.S3Region)
	set(&cfg.S3BaseEndpoint, fc.S3BaseEndpoint)
	set(&cfg.LogLevel, fc.LogLevel)
	set(&cfg.LogFormat, fc.LogFormat)

	if fc.TokenValidityDuration.Duration > 0 {
		cfg.TokenValidityDuration = fc.TokenValidityDuration.Duration
	}
	if fc.S3UsePathStyle != nil {
		cfg.S3UsePathStyle = *fc.S3UsePathStyle
	}
}
