package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_parseEnv(t *testing.T) {
	t.Setenv(EnvHTTPAddr, ":9000")
	t.Setenv(EnvDatabaseDSN, "postgres://x")
	t.Setenv(EnvTokenValidityDuration, "90m")
	t.Setenv(EnvS3Bucket, "bkt")
	t.Setenv(EnvS3UsePathStyle, "false")
	t.Setenv(EnvLogFormat, "text")

	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)

	assert.Equal(t, ":9000", cfg.HTTPAddr)
	assert.Equal(t, "postgres://x", cfg.DatabaseDSN)
	assert.Equal(t, 90*time.Minute, cfg.TokenValidityDuration)
	assert.Equal(t, "bkt", cfg.S3Bucket)
	assert.False(t, cfg.S3UsePathStyle)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.Equal(t, ":50051", cfg.HealthAddr)
}

func Test_parseEnv_InvalidPanics(t *testing.T) {
	t.Setenv(EnvS3UsePathStyle, "maybe")
	cfg := &Config{}
	require.Panics(t, func() { parseEnv(cfg) })
}
