package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/kozaktomas/color-season/internal/constants"
)

// Storage backends
const (
	BackendLocal = "local"
	BackendS3    = "s3"
)

type Config struct {
	Environment string
	Log         LogConfig
	Web         WebConfig
	Storage     StorageConfig
}

type LogConfig struct {
	Level string // zerolog level name, defaults to info
}

type WebConfig struct {
	Host            string
	Port            int
	AllowedOrigins  []string      // extra CORS origins, localhost is always allowed
	ShutdownTimeout time.Duration // graceful shutdown budget
}

type StorageConfig struct {
	Backend         string // "local" or "s3"
	Bucket          string // bucket name, defaults to color-analysis
	Endpoint        string // custom S3 endpoint (Supabase, MinIO, R2...), empty for AWS
	Region          string
	AccessKeyID     string
	SecretAccessKey string
	PublicURL       string // base URL objects are publicly reachable under, required with a custom endpoint
	PathStyle       bool   // use path-style addressing, required by most S3-compatible providers
	LocalDir        string // directory used by the local backend
}

// Validate reports configuration that cannot produce a working store.
func (c *StorageConfig) Validate() error {
	switch c.Backend {
	case BackendLocal:
		if c.LocalDir == "" {
			return errors.New("STORAGE_LOCAL_DIR is required for the local storage backend")
		}
	case BackendS3:
		if c.Bucket == "" {
			return errors.New("STORAGE_BUCKET is required for the s3 storage backend")
		}
		if c.AccessKeyID == "" || c.SecretAccessKey == "" {
			return errors.New("STORAGE_ACCESS_KEY_ID and STORAGE_SECRET_ACCESS_KEY are required for the s3 storage backend")
		}
		if c.Endpoint != "" && c.PublicURL == "" {
			return errors.New("STORAGE_PUBLIC_URL is required when STORAGE_ENDPOINT is set")
		}
	default:
		return errors.New("unknown storage backend: " + c.Backend)
	}
	return nil
}

// IsDevelopment reports whether the service runs in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "" || c.Environment == "development"
}

// envInt reads an environment variable and parses it as a positive integer.
// Returns the default value if the env var is unset, empty, or invalid.
func envInt(key string, defaultVal int) int {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	if n, err := strconv.Atoi(s); err == nil && n > 0 {
		return n
	}
	return defaultVal
}

func envString(key, defaultVal string) string {
	if s := os.Getenv(key); s != "" {
		return s
	}
	return defaultVal
}

func envBool(key string, defaultVal bool) bool {
	s := os.Getenv(key)
	if s == "" {
		return defaultVal
	}
	b, err := strconv.ParseBool(s)
	if err != nil {
		return defaultVal
	}
	return b
}

// envList splits a comma-separated variable, dropping blanks.
func envList(key string) []string {
	var out []string
	for item := range strings.SplitSeq(os.Getenv(key), ",") {
		if item = strings.TrimSpace(item); item != "" {
			out = append(out, item)
		}
	}
	return out
}

func Load() *Config {
	return &Config{
		Environment: envString("ENVIRONMENT", "development"),
		Log: LogConfig{
			Level: envString("LOG_LEVEL", "info"),
		},
		Web: WebConfig{
			Host:            envString("WEB_HOST", constants.DefaultHost),
			Port:            envInt("WEB_PORT", constants.DefaultPort),
			AllowedOrigins:  envList("WEB_ALLOWED_ORIGINS"),
			ShutdownTimeout: time.Duration(envInt("WEB_SHUTDOWN_TIMEOUT", constants.DefaultShutdownTimeout)) * time.Second,
		},
		Storage: StorageConfig{
			Backend:         strings.ToLower(envString("STORAGE_BACKEND", BackendLocal)),
			Bucket:          envString("STORAGE_BUCKET", constants.DefaultBucket),
			Endpoint:        strings.TrimRight(os.Getenv("STORAGE_ENDPOINT"), "/"),
			Region:          envString("STORAGE_REGION", constants.DefaultRegion),
			AccessKeyID:     os.Getenv("STORAGE_ACCESS_KEY_ID"),
			SecretAccessKey: os.Getenv("STORAGE_SECRET_ACCESS_KEY"),
			PublicURL:       strings.TrimRight(os.Getenv("STORAGE_PUBLIC_URL"), "/"),
			PathStyle:       envBool("STORAGE_PATH_STYLE", false),
			LocalDir:        envString("STORAGE_LOCAL_DIR", constants.DefaultLocalDir),
		},
	}
}
