// Package constants provides shared constants used across the codebase.
// Centralizing these values ensures consistency and makes them easier to modify.
package constants

// Classification constants
const (
	// WarmCountThreshold is the minimum number of warm colors (out of hair, eyes
	// and skin) for a warm season
	WarmCountThreshold = 2

	// BrightnessMidpoint separates bright from deep coloring; the comparison is strict
	BrightnessMidpoint = 128.0

	// PaletteSize is the number of recommended colors per season
	PaletteSize = 5
)

// Storage constants
const (
	// DefaultBucket is the bucket uploaded photos are stored in
	DefaultBucket = "color-analysis"

	// DefaultRegion is used for S3 clients when no region is configured
	DefaultRegion = "us-east-1"

	// DefaultLocalDir is where the local storage backend writes uploads
	DefaultLocalDir = "./uploads"
)
