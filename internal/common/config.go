package common

import (
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration
type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	Storage  StorageConfig
	Pipeline PipelineConfig
}

// DatabaseConfig holds database-related configuration
type DatabaseConfig struct {
	DSN              string
	MaxConns         int32
	MinConns         int32
	MaxConnLifetime  time.Duration
	MaxConnIdleTime  time.Duration
	DialTimeout      time.Duration
	StatementTimeout time.Duration
}

// ServerConfig holds server-related configuration
type ServerConfig struct {
	GRPCAddr string
}

// StorageConfig holds blob-store configuration
type StorageConfig struct {
	Root string
}

// PipelineConfig holds extraction and verification tunables.
// Thresholds are deliberately configuration, not constants.
type PipelineConfig struct {
	ReviewThreshold         float32 // overall confidence below this routes to manual review
	AutoApproveThreshold    float32 // verification score at or above this auto-approves
	ClassificationThreshold float32 // classifier confidence below this routes to manual review
	FieldThreshold          float32 // per-field confidence below this flags requires_validation
	MaxRetries              int
	Workers                 int
	PollInterval            time.Duration
	BatchSize               int // 0 means 2x workers
	ProcessTimeout          time.Duration
	MaxProcessingDuration   time.Duration // stale-claim sweep cutoff
	VerificationTTL         time.Duration // expires_at horizon on new records
}

// LoadConfig loads configuration from environment variables
func LoadConfig() *Config {
	return &Config{
		Database: DatabaseConfig{
			DSN:              getEnv("DB_URL", ""),
			MaxConns:         getEnvAsInt32("DB_MAX_CONNS", 20),
			MinConns:         getEnvAsInt32("DB_MIN_CONNS", 5),
			MaxConnLifetime:  getEnvAsDuration("DB_MAX_CONN_LIFETIME", 30*time.Minute),
			MaxConnIdleTime:  getEnvAsDuration("DB_MAX_CONN_IDLE_TIME", 5*time.Minute),
			DialTimeout:      getEnvAsDuration("DB_DIAL_TIMEOUT", 3*time.Second),
			StatementTimeout: getEnvAsDuration("DB_STATEMENT_TIMEOUT", 0),
		},
		Server: ServerConfig{
			GRPCAddr: getEnv("GRPC_ADDR", ":8080"),
		},
		Storage: StorageConfig{
			Root: getEnv("STORAGE_ROOT", "./blobs"),
		},
		Pipeline: PipelineConfig{
			ReviewThreshold:         getEnvAsFloat32("REVIEW_THRESHOLD", 0.80),
			AutoApproveThreshold:    getEnvAsFloat32("AUTO_APPROVE_THRESHOLD", 0.90),
			ClassificationThreshold: getEnvAsFloat32("CLASSIFICATION_THRESHOLD", 0.85),
			FieldThreshold:          getEnvAsFloat32("FIELD_THRESHOLD", 0.80),
			MaxRetries:              getEnvAsInt("MAX_RETRIES", 3),
			Workers:                 getEnvAsInt("WORKERS", 5),
			PollInterval:            getEnvAsDuration("POLL_INTERVAL", 30*time.Second),
			BatchSize:               getEnvAsInt("BATCH_SIZE", 0),
			ProcessTimeout:          getEnvAsDuration("PROCESS_TIMEOUT", 3*time.Minute),
			MaxProcessingDuration:   getEnvAsDuration("MAX_PROCESSING_DURATION", 10*time.Minute),
			VerificationTTL:         getEnvAsDuration("VERIFICATION_TTL", 90*24*time.Hour),
		},
	}
}

// Helper functions for environment variable parsing
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsInt32(key string, defaultValue int32) int32 {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.ParseInt(value, 10, 32); err == nil {
			return int32(intVal)
		}
	}
	return defaultValue
}

func getEnvAsFloat32(key string, defaultValue float32) float32 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 32); err == nil {
			return float32(floatVal)
		}
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

// Validate validates the loaded configuration
func (c *Config) Validate() error {
	if c.Database.DSN == "" {
		return NewAppError("CONFIG_ERROR", "DB_URL is required", ErrInvalidInput)
	}
	if c.Server.GRPCAddr == "" {
		return NewAppError("CONFIG_ERROR", "GRPC_ADDR is required", ErrInvalidInput)
	}
	if c.Pipeline.ReviewThreshold <= 0 || c.Pipeline.ReviewThreshold > 1 {
		return NewAppError("CONFIG_ERROR", "REVIEW_THRESHOLD must be in (0,1]", ErrInvalidInput)
	}
	if c.Pipeline.AutoApproveThreshold <= 0 || c.Pipeline.AutoApproveThreshold > 1 {
		return NewAppError("CONFIG_ERROR", "AUTO_APPROVE_THRESHOLD must be in (0,1]", ErrInvalidInput)
	}
	if c.Pipeline.Workers <= 0 {
		return NewAppError("CONFIG_ERROR", "WORKERS must be positive", ErrInvalidInput)
	}
	return nil
}

// SchedulerBatchSize resolves the effective claim batch size.
func (c *PipelineConfig) SchedulerBatchSize() int {
	if c.BatchSize > 0 {
		return c.BatchSize
	}
	return 2 * c.Workers
}
