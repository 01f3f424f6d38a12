// Package season classifies hair, eye and skin colors into one of four
// color seasons and holds the fixed season records.
package season

import (
	_ "embed"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/kozaktomas/color-season/internal/color"
	"github.com/kozaktomas/color-season/internal/constants"
	"gopkg.in/yaml.v3"
)

//go:embed seasons.yaml
var seasonsYAML []byte

// ErrMissingColors is returned when hair, eyes or skin is empty.
var ErrMissingColors = errors.New("missing required color values")

// Season is one of the four season tags.
type Season string

const (
	Spring Season = "Spring"
	Summer Season = "Summer"
	Autumn Season = "Autumn"
	Winter Season = "Winter"
)

// Input holds the three sampled colors as "#RRGGBB" strings.
type Input struct {
	Hair string `json:"hair"`
	Eyes string `json:"eyes"`
	Skin string `json:"skin"`
}

// Validate checks that all three colors are present.
func (in Input) Validate() error {
	if in.Hair == "" || in.Eyes == "" || in.Skin == "" {
		return ErrMissingColors
	}
	return nil
}

// Result is a season with its description and recommended palette.
type Result struct {
	Season      Season   `json:"season" yaml:"season"`
	Description string   `json:"description" yaml:"description"`
	Colors      []string `json:"colors" yaml:"colors"`
}

func (r Result) clone() Result {
	r.Colors = slices.Clone(r.Colors)
	return r
}

type seasonsFile struct {
	Seasons []Result `yaml:"seasons"`
}

// records is keyed by season tag; order holds the declaration order of seasons.yaml.
var (
	records map[Season]Result
	order   []Season
)

func init() {
	var f seasonsFile
	if err := yaml.Unmarshal(seasonsYAML, &f); err != nil {
		panic("failed to unmarshal embedded seasons.yaml: " + err.Error())
	}
	if err := load(f.Seasons); err != nil {
		panic("invalid embedded seasons.yaml: " + err.Error())
	}
}

func load(results []Result) error {
	m := make(map[Season]Result, len(results))
	seq := make([]Season, 0, len(results))
	for _, r := range results {
		if len(r.Colors) != constants.PaletteSize {
			return fmt.Errorf("season %s has %d colors, want %d", r.Season, len(r.Colors), constants.PaletteSize)
		}
		for _, hex := range r.Colors {
			if _, err := color.Decode(hex); err != nil {
				return fmt.Errorf("season %s: %w", r.Season, err)
			}
		}
		m[r.Season] = r
		seq = append(seq, r.Season)
	}
	for _, s := range []Season{Spring, Summer, Autumn, Winter} {
		if _, ok := m[s]; !ok {
			return fmt.Errorf("season %s is not defined", s)
		}
	}
	records = m
	order = seq
	return nil
}

// Get returns the record for a season tag.
func Get(s Season) (Result, bool) {
	r, ok := records[s]
	if !ok {
		return Result{}, false
	}
	return r.clone(), true
}

// Lookup finds a season by name, ignoring case.
func Lookup(name string) (Result, bool) {
	for _, s := range order {
		if strings.EqualFold(string(s), strings.TrimSpace(name)) {
			return Get(s)
		}
	}
	return Result{}, false
}

// All returns every season record in Spring, Summer, Autumn, Winter order.
func All() []Result {
	out := make([]Result, 0, len(order))
	for _, s := range order {
		out = append(out, records[s].clone())
	}
	return out
}
