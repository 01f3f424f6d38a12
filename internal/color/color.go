// Package color decodes hex color strings and evaluates the warmth and
// brightness heuristics used by the season classifier.
package color

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidColorFormat is returned when a string is not a #RRGGBB color.
var ErrInvalidColorFormat = errors.New("invalid color format")

// hexColorLen is the length of "#RRGGBB".
const hexColorLen = 7

// RGB is a color with 8-bit red, green and blue channels.
type RGB struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Decode parses a "#RRGGBB" string. Both upper and lower case digits are accepted.
func Decode(hex string) (RGB, error) {
	if len(hex) != hexColorLen || hex[0] != '#' {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}

	var channels [3]uint8
	for i := range channels {
		start := 1 + i*2
		v, err := strconv.ParseUint(hex[start:start+2], 16, 8)
		if err != nil {
			return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
		}
		channels[i] = uint8(v)
	}

	return RGB{R: channels[0], G: channels[1], B: channels[2]}, nil
}

// MustDecode is like Decode but panics on malformed input.
func MustDecode(hex string) RGB {
	c, err := Decode(hex)
	if err != nil {
		panic(err)
	}
	return c
}

// IsWarm reports whether the red channel exceeds the blue channel.
func (c RGB) IsWarm() bool {
	return c.R > c.B
}

// Brightness returns the mean of the three channels, in [0, 255].
func (c RGB) Brightness() float64 {
	return (float64(c.R) + float64(c.G) + float64(c.B)) / 3
}

// Hex renders the color as "#RRGGBB".
func (c RGB) Hex() string {
	return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
}

func (c RGB) String() string {
	return c.Hex()
}
