// Package sampler reads single pixels out of uploaded photos, the server-side
// counterpart of the eyedropper.
package sampler

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"math"

	"github.com/kozaktomas/color-season/internal/color"
	"github.com/lucasb-eyer/go-colorful"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

var (
	// ErrOutOfBounds is returned when the sampled point lies outside the image.
	ErrOutOfBounds = errors.New("coordinates outside image")
	// ErrUnsupportedFormat is returned when the image cannot be decoded.
	ErrUnsupportedFormat = errors.New("unsupported image format")
	// ErrInvalidCoordinates is returned for NaN, infinite, negative or huge coordinates.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// MaxCoordinate bounds accepted coordinates and display sizes so that the
// float to int conversion in ScalePoint is always defined.
const MaxCoordinate = 1 << 24

// ValidCoordinate reports whether v is a finite number in [0, MaxCoordinate].
func ValidCoordinate(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v >= 0 && v <= MaxCoordinate
}

// Sampler picks the color of a single pixel.
type Sampler interface {
	SamplePixel(img image.Image, x, y int) (color.RGB, error)
}

// Canvas samples pixels the way a 2D canvas getImageData call does: straight
// (non-premultiplied) 8-bit channels, with fully transparent pixels as black.
type Canvas struct{}

// SamplePixel returns the color at (x, y), relative to the image's top-left corner.
func (Canvas) SamplePixel(img image.Image, x, y int) (color.RGB, error) {
	bounds := img.Bounds()
	p := image.Pt(bounds.Min.X+x, bounds.Min.Y+y)
	if x < 0 || y < 0 || !p.In(bounds) {
		return color.RGB{}, fmt.Errorf("%w: (%d, %d) not in %dx%d", ErrOutOfBounds, x, y, bounds.Dx(), bounds.Dy())
	}

	c, ok := colorful.MakeColor(img.At(p.X, p.Y))
	if !ok {
		return color.RGB{}, nil
	}
	r, g, b := c.Clamped().RGB255()
	return color.RGB{R: r, G: g, B: b}, nil
}

// Decode reads an image in any registered format: PNG, JPEG, GIF, BMP, TIFF or WebP.
func Decode(r io.Reader) (image.Image, string, error) {
	img, format, err := image.Decode(r)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %v", ErrUnsupportedFormat, err)
	}
	return img, format, nil
}

// ScalePoint maps a point on an image displayed at displayW x displayH to
// the image's natural pixel grid. A zero display size means the point is
// already in natural coordinates.
func ScalePoint(x, y, displayW, displayH float64, bounds image.Rectangle) (image.Point, error) {
	for _, v := range []float64{x, y, displayW, displayH} {
		if !ValidCoordinate(v) {
			return image.Point{}, fmt.Errorf("%w: %v", ErrInvalidCoordinates, v)
		}
	}
	if displayW > 0 {
		x *= float64(bounds.Dx()) / displayW
	}
	if displayH > 0 {
		y *= float64(bounds.Dy()) / displayH
	}
	if !ValidCoordinate(x) || !ValidCoordinate(y) {
		return image.Point{}, fmt.Errorf("%w: scaled point (%v, %v)", ErrInvalidCoordinates, x, y)
	}
	return image.Pt(int(x), int(y)), nil
}

// Hex renders a sampled color as lower-case "#rrggbb", matching the browser eyedropper.
func Hex(c color.RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}
