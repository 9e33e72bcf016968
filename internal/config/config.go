package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Port string `yaml:"port"`

	// Auth
	APIKey string `yaml:"api_key"`

	// Worker pool
	WorkerCount  int `yaml:"worker_count"`
	MaxQueueSize int `yaml:"max_queue_size"`

	// Upload limits
	MaxUploadBytes int64 `yaml:"max_upload_bytes"`

	// Pipeline defaults
	ChunkSize  int     `yaml:"chunk_size"`
	MinQuality float64 `yaml:"min_quality"`

	// Job state
	JobTTL time.Duration `yaml:"job_ttl"`

	// PDF
	PDFFallbackPdftotext bool `yaml:"pdf_fallback_pdftotext"`
}

// Load reads configuration from the environment (after loading .env if one
// exists). When CONFIG_FILE is set, the YAML file is read first and the
// environment overrides it.
func Load() (Config, error) {
	_ = godotenv.Load()

	cfg := defaults()

	if path := os.Getenv("CONFIG_FILE"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return cfg, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.Port = envOr("PORT", cfg.Port)
	cfg.APIKey = envOr("API_KEY", cfg.APIKey)
	cfg.WorkerCount = envInt("WORKER_COUNT", cfg.WorkerCount)
	cfg.MaxQueueSize = envInt("MAX_QUEUE_SIZE", cfg.MaxQueueSize)
	cfg.MaxUploadBytes = envInt64("MAX_UPLOAD_BYTES", cfg.MaxUploadBytes)
	cfg.ChunkSize = envInt("CHUNK_SIZE", cfg.ChunkSize)
	cfg.MinQuality = envFloat("MIN_QUALITY", cfg.MinQuality)
	cfg.JobTTL = envDuration("JOB_TTL", cfg.JobTTL)
	cfg.PDFFallbackPdftotext = envBool("PDF_FALLBACK_PDFTOTEXT", cfg.PDFFallbackPdftotext)

	if cfg.WorkerCount <= 0 {
		cfg.WorkerCount = 4
	}
	if cfg.MaxQueueSize <= 0 {
		cfg.MaxQueueSize = 100
	}
	if cfg.MaxUploadBytes <= 0 {
		cfg.MaxUploadBytes = 52428800
	}
	if cfg.JobTTL <= 0 {
		cfg.JobTTL = 1 * time.Hour
	}

	return cfg, nil
}

func defaults() Config {
	return Config{
		Port:                 "8090",
		WorkerCount:          4,
		MaxQueueSize:         100,
		MaxUploadBytes:       52428800, // 50MB
		ChunkSize:            10,
		MinQuality:           0,
		JobTTL:               1 * time.Hour,
		PDFFallbackPdftotext: true,
	}
}

func (c Config) Validate() error {
	if c.APIKey == "" {
		return fmt.Errorf("API_KEY is required")
	}
	if c.ChunkSize < 0 {
		return fmt.Errorf("CHUNK_SIZE must be >= 0, got %d", c.ChunkSize)
	}
	if c.MinQuality < 0 || c.MinQuality > 10 {
		return fmt.Errorf("MIN_QUALITY must be within [0,10], got %g", c.MinQuality)
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envInt64(key string, fallback int64) int64 {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.ParseInt(v, 10, 64); err == nil {
			return n
		}
	}
	return fallback
}

func envFloat(key string, fallback float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return fallback
}

func envBool(key string, fallback bool) bool {
	if v := os.Getenv(key); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			return b
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
