// Package constants provides shared constants used across the codebase.
package constants

// File upload constants
const (
	// MaxUploadSize is the maximum photo upload size in bytes (20MB)
	MaxUploadSize = 20 << 20

	// MaxJSONBodySize is the maximum JSON request body size in bytes (1MB)
	MaxJSONBodySize = 1 << 20

	// MultipartMemory is how much of a multipart form is kept in memory before spilling to disk
	MultipartMemory = 8 << 20
)

// Server constants
const (
	// DefaultPort is the port the web server listens on
	DefaultPort = 8080

	// DefaultHost is the interface the web server binds to
	DefaultHost = "0.0.0.0"

	// DefaultShutdownTimeout is the graceful shutdown budget in seconds
	DefaultShutdownTimeout = 30
)
