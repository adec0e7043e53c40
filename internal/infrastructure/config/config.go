package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type StorageConfig struct {
	Endpoint  string
	AccessKey string
	SecretKey string
	Bucket    string
	UseSSL    bool
}

// Enabled reports whether object storage has been configured.
func (s StorageConfig) Enabled() bool { return s.Endpoint != "" }

type KafkaConfig struct {
	Brokers []string
	Topic   string
}

type TLSConfig struct {
	CertFile string
	KeyFile  string
}

func (t TLSConfig) Enabled() bool { return t.CertFile != "" && t.KeyFile != "" }

type Config struct {
	GRPCPort         int
	HTTPPort         int
	LogLevel         string
	LogFormat        string
	MaxFiles         int
	AnalysisDelay    time.Duration
	DatabaseURL      string
	MigrationsSource string
	Kafka            KafkaConfig
	Storage          StorageConfig
	OTLPEndpoint     string
	TLS              TLSConfig
	Reflection       bool
	ServiceName      string
}

// Validate reports inconsistent settings.
func (c Config) Validate() error {
	var errs []error
	if c.MaxFiles <= 0 {
		errs = append(errs, fmt.Errorf("MAX_FILES must be positive, got %d", c.MaxFiles))
	}
	if c.AnalysisDelay < 0 {
		errs = append(errs, errors.New("ANALYSIS_DELAY must not be negative"))
	}
	if c.Storage.Enabled() {
		if c.Storage.AccessKey == "" || c.Storage.SecretKey == "" {
			errs = append(errs, errors.New("STORAGE_ACCESS_KEY and STORAGE_SECRET_KEY are required when STORAGE_ENDPOINT is set"))
		}
		if c.Storage.Bucket == "" {
			errs = append(errs, errors.New("STORAGE_BUCKET is required when STORAGE_ENDPOINT is set"))
		}
	}
	if (c.TLS.CertFile == "") != (c.TLS.KeyFile == "") {
		errs = append(errs, errors.New("GRPC_TLS_CERT_FILE and GRPC_TLS_KEY_FILE must be set together"))
	}
	return errors.Join(errs...)
}

// Load reads an optional .env file, then the environment.
func Load() Config {
	_ = godotenv.Load()
	return FromEnv()
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	return Config{
		GRPCPort:         getEnvInt("GRPC_PORT", 9090),
		HTTPPort:         getEnvInt("HTTP_PORT", 8080),
		LogLevel:         getEnv("LOG_LEVEL", "info"),
		LogFormat:        getEnv("LOG_FORMAT", "json"),
		MaxFiles:         getEnvInt("MAX_FILES", 10),
		AnalysisDelay:    getEnvDuration("ANALYSIS_DELAY", 3*time.Second),
		DatabaseURL:      getEnv("DATABASE_URL", ""),
		MigrationsSource: getEnv("MIGRATIONS_SOURCE", "file://migrations"),
		Kafka: KafkaConfig{
			Brokers: splitList(getEnv("KAFKA_BROKERS", "")),
			Topic:   getEnv("KAFKA_TOPIC", "creditrisk.events"),
		},
		Storage: StorageConfig{
			Endpoint:  getEnv("STORAGE_ENDPOINT", ""),
			AccessKey: getEnv("STORAGE_ACCESS_KEY", ""),
			SecretKey: getEnv("STORAGE_SECRET_KEY", ""),
			Bucket:    getEnv("STORAGE_BUCKET", "documentos"),
			UseSSL:    getEnvBool("STORAGE_USE_SSL", true),
		},
		OTLPEndpoint: getEnv("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		TLS: TLSConfig{
			CertFile: getEnv("GRPC_TLS_CERT_FILE", ""),
			KeyFile:  getEnv("GRPC_TLS_KEY_FILE", ""),
		},
		Reflection:  getEnvBool("GRPC_REFLECTION", false),
		ServiceName: "creditrisk",
	}
}

func (c Config) GRPCAddr() string {
	return fmt.Sprintf(":%d", c.GRPCPort)
}

func (c Config) HTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}

func splitList(v string) []string {
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
