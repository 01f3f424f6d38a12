package season

import (
	"fmt"

	"github.com/kozaktomas/color-season/internal/color"
	"github.com/kozaktomas/color-season/internal/constants"
)

// decisionTable maps [warm][bright] to a season. Every (warmCount, avgBrightness)
// pair lands in exactly one cell.
var decisionTable = [2][2]Season{
	// cool
	{Winter, Summer},
	// warm
	{Autumn, Spring},
}

// Assessment holds the aggregated heuristics for one Input.
type Assessment struct {
	WarmCount     int     `json:"warmCount"`
	AvgBrightness float64 `json:"avgBrightness"`
	Season        Season  `json:"season"`
}

// Warm reports whether enough colors are warm for a warm season.
func (a Assessment) Warm() bool {
	return a.WarmCount >= constants.WarmCountThreshold
}

// Bright reports whether the average brightness is strictly above the midpoint.
func (a Assessment) Bright() bool {
	return a.AvgBrightness > constants.BrightnessMidpoint
}

// Assess decodes the three colors and computes the warm count, the average
// brightness and the resulting season.
func Assess(in Input) (Assessment, error) {
	if err := in.Validate(); err != nil {
		return Assessment{}, err
	}

	colors := make([]color.RGB, 0, 3)
	for _, field := range []struct{ name, hex string }{
		{"hair", in.Hair},
		{"eyes", in.Eyes},
		{"skin", in.Skin},
	} {
		c, err := color.Decode(field.hex)
		if err != nil {
			return Assessment{}, fmt.Errorf("%s: %w", field.name, err)
		}
		colors = append(colors, c)
	}

	a := Assessment{}
	var total float64
	for _, c := range colors {
		if c.IsWarm() {
			a.WarmCount++
		}
		total += c.Brightness()
	}
	a.AvgBrightness = total / float64(len(colors))
	a.Season = decide(a.Warm(), a.Bright())

	return a, nil
}

// Classify returns the season record for the three colors.
func Classify(in Input) (Result, error) {
	a, err := Assess(in)
	if err != nil {
		return Result{}, err
	}
	r, ok := Get(a.Season)
	if !ok {
		return Result{}, fmt.Errorf("no record for season %s", a.Season)
	}
	return r, nil
}

func decide(warm, bright bool) Season {
	return decisionTable[index(warm)][index(bright)]
}

func index(b bool) int {
	if b {
		return 1
	}
	return 0
}
