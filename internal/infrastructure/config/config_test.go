package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"GRPC_PORT", "HTTP_PORT", "MAX_FILES", "ANALYSIS_DELAY", "KAFKA_BROKERS", "STORAGE_ENDPOINT", "STORAGE_BUCKET", "MIGRATIONS_SOURCE"} {
		t.Setenv(k, "")
	}

	cfg := FromEnv()
	assert.Equal(t, 9090, cfg.GRPCPort)
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 10, cfg.MaxFiles)
	assert.Equal(t, 3*time.Second, cfg.AnalysisDelay)
	assert.Empty(t, cfg.Kafka.Brokers)
	assert.Equal(t, "creditrisk.events", cfg.Kafka.Topic)
	assert.Equal(t, "documentos", cfg.Storage.Bucket)
	assert.Equal(t, "file://migrations", cfg.MigrationsSource)
	assert.False(t, cfg.Storage.Enabled())
	assert.Equal(t, ":9090", cfg.GRPCAddr())
	assert.NoError(t, cfg.Validate())
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("GRPC_PORT", "7000")
	t.Setenv("MAX_FILES", "5")
	t.Setenv("ANALYSIS_DELAY", "250ms")
	t.Setenv("KAFKA_BROKERS", "k1:9092, k2:9092 ,")
	t.Setenv("STORAGE_USE_SSL", "false")
	t.Setenv("GRPC_REFLECTION", "true")
	t.Setenv("MIGRATIONS_SOURCE", "file:///srv/creditrisk/migrations")

	cfg := FromEnv()
	assert.Equal(t, 7000, cfg.GRPCPort)
	assert.Equal(t, 5, cfg.MaxFiles)
	assert.Equal(t, 250*time.Millisecond, cfg.AnalysisDelay)
	assert.Equal(t, []string{"k1:9092", "k2:9092"}, cfg.Kafka.Brokers)
	assert.False(t, cfg.Storage.UseSSL)
	assert.True(t, cfg.Reflection)
	assert.Equal(t, "file:///srv/creditrisk/migrations", cfg.MigrationsSource)
}

func TestFromEnv_InvalidValuesFallBack(t *testing.T) {
	t.Setenv("HTTP_PORT", "eighty")
	t.Setenv("ANALYSIS_DELAY", "soon")

	cfg := FromEnv()
	assert.Equal(t, 8080, cfg.HTTPPort)
	assert.Equal(t, 3*time.Second, cfg.AnalysisDelay)
}

func TestValidate(t *testing.T) {
	base := Config{MaxFiles: 10, Storage: StorageConfig{Bucket: "documentos"}}
	require.NoError(t, base.Validate())

	t.Run("storage without credentials", func(t *testing.T) {
		cfg := base
		cfg.Storage.Endpoint = "localhost:9000"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "STORAGE_ACCESS_KEY")
	})

	t.Run("half configured tls", func(t *testing.T) {
		cfg := base
		cfg.TLS.CertFile = "cert.pem"
		assert.Error(t, cfg.Validate())
	})

	t.Run("non positive cap", func(t *testing.T) {
		cfg := base
		cfg.MaxFiles = 0
		assert.Error(t, cfg.Validate())
	})
}
