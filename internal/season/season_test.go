package season

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kozaktomas/color-season/internal/color"
)

func TestClassify_Scenarios(t *testing.T) {
	tests := []struct {
		name          string
		input         Input
		wantSeason    Season
		wantWarmCount int
	}{
		{
			name:          "warm and deep",
			input:         Input{Hair: "#8B4513", Eyes: "#654321", Skin: "#D2B48C"},
			wantSeason:    Autumn,
			wantWarmCount: 3,
		},
		{
			name:          "all white is cool because red equals blue",
			input:         Input{Hair: "#FFFFFF", Eyes: "#FFFFFF", Skin: "#FFFFFF"},
			wantSeason:    Summer,
			wantWarmCount: 0,
		},
		{
			name:          "cool and deep",
			input:         Input{Hair: "#000000", Eyes: "#000000", Skin: "#0000FF"},
			wantSeason:    Winter,
			wantWarmCount: 0,
		},
		{
			name:          "warm and bright",
			input:         Input{Hair: "#FFD700", Eyes: "#FF8C69", Skin: "#FFE4C4"},
			wantSeason:    Spring,
			wantWarmCount: 3,
		},
		{
			name:          "two warm colors are enough",
			input:         Input{Hair: "#FF0000", Eyes: "#0000FF", Skin: "#FF0000"},
			wantSeason:    Autumn,
			wantWarmCount: 2,
		},
		{
			name:          "one warm color is not enough",
			input:         Input{Hair: "#FFFFF0", Eyes: "#F0F0FF", Skin: "#F0F0FF"},
			wantSeason:    Summer,
			wantWarmCount: 1,
		},
		{
			name:          "lowercase hex",
			input:         Input{Hair: "#8b4513", Eyes: "#654321", Skin: "#d2b48c"},
			wantSeason:    Autumn,
			wantWarmCount: 3,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, err := Assess(tc.input)
			if err != nil {
				t.Fatalf("Assess returned error: %v", err)
			}
			if a.WarmCount != tc.wantWarmCount {
				t.Errorf("expected warmCount %d, got %d", tc.wantWarmCount, a.WarmCount)
			}
			if a.Season != tc.wantSeason {
				t.Errorf("expected season %s, got %s", tc.wantSeason, a.Season)
			}

			result, err := Classify(tc.input)
			if err != nil {
				t.Fatalf("Classify returned error: %v", err)
			}
			if result.Season != tc.wantSeason {
				t.Errorf("expected result season %s, got %s", tc.wantSeason, result.Season)
			}
		})
	}
}

func TestAssess_AverageBrightness(t *testing.T) {
	a, err := Assess(Input{Hair: "#000000", Eyes: "#000000", Skin: "#0000FF"})
	if err != nil {
		t.Fatalf("Assess returned error: %v", err)
	}
	// (0 + 0 + 85) / 3
	want := 85.0 / 3
	if a.AvgBrightness != want {
		t.Errorf("expected avgBrightness %v, got %v", want, a.AvgBrightness)
	}
	if a.AvgBrightness < 28 || a.AvgBrightness > 29 {
		t.Errorf("expected avgBrightness near 28.3, got %v", a.AvgBrightness)
	}
}

func TestClassify_BrightnessBoundaryIsStrict(t *testing.T) {
	tests := []struct {
		name  string
		input Input
		want  Season
	}{
		{
			// (129 + 127 + 128) / 3 == 128 and R > B
			name:  "warm at exactly 128",
			input: Input{Hair: "#817F80", Eyes: "#817F80", Skin: "#817F80"},
			want:  Autumn,
		},
		{
			name:  "cool at exactly 128",
			input: Input{Hair: "#808080", Eyes: "#808080", Skin: "#808080"},
			want:  Winter,
		},
		{
			// (129 + 128 + 128) / 3 > 128
			name:  "cool just above 128",
			input: Input{Hair: "#808081", Eyes: "#808081", Skin: "#808081"},
			want:  Summer,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			a, err := Assess(tc.input)
			if err != nil {
				t.Fatalf("Assess returned error: %v", err)
			}
			if a.Season != tc.want {
				t.Errorf("expected %s, got %s (avgBrightness %v)", tc.want, a.Season, a.AvgBrightness)
			}
		})
	}
}

func TestClassify_Deterministic(t *testing.T) {
	in := Input{Hair: "#8B4513", Eyes: "#654321", Skin: "#D2B48C"}
	first, err := Classify(in)
	if err != nil {
		t.Fatalf("Classify returned error: %v", err)
	}
	for range 10 {
		again, err := Classify(in)
		if err != nil {
			t.Fatalf("Classify returned error: %v", err)
		}
		if !reflect.DeepEqual(first, again) {
			t.Fatalf("expected identical results, got %+v and %+v", first, again)
		}
	}
}

func TestClassify_MissingColors(t *testing.T) {
	tests := []struct {
		name  string
		input Input
	}{
		{"missing hair", Input{Eyes: "#000000", Skin: "#000000"}},
		{"missing eyes", Input{Hair: "#000000", Skin: "#000000"}},
		{"missing skin", Input{Hair: "#000000", Eyes: "#000000"}},
		{"all missing", Input{}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Classify(tc.input)
			if !errors.Is(err, ErrMissingColors) {
				t.Errorf("expected ErrMissingColors, got %v", err)
			}
		})
	}
}

func TestClassify_MalformedColor(t *testing.T) {
	_, err := Classify(Input{Hair: "#8B4513", Eyes: "brown", Skin: "#D2B48C"})
	if !errors.Is(err, color.ErrInvalidColorFormat) {
		t.Fatalf("expected ErrInvalidColorFormat, got %v", err)
	}
	if errors.Is(err, ErrMissingColors) {
		t.Error("malformed color must not be reported as missing")
	}
}

func TestDecisionTable_Partition(t *testing.T) {
	seen := map[Season]int{}
	for warmCount := 0; warmCount <= 3; warmCount++ {
		for _, avg := range []float64{0, 127.9, 128, 128.1, 255} {
			a := Assessment{WarmCount: warmCount, AvgBrightness: avg}
			s := decide(a.Warm(), a.Bright())
			if _, ok := Get(s); !ok {
				t.Fatalf("decision for (%d, %v) produced unknown season %q", warmCount, avg, s)
			}
			seen[s]++
		}
	}
	if len(seen) != 4 {
		t.Errorf("expected all four seasons to be reachable, got %v", seen)
	}
}

func TestDecide(t *testing.T) {
	tests := []struct {
		warm, bright bool
		want         Season
	}{
		{true, true, Spring},
		{true, false, Autumn},
		{false, true, Summer},
		{false, false, Winter},
	}
	for _, tc := range tests {
		if got := decide(tc.warm, tc.bright); got != tc.want {
			t.Errorf("decide(%v, %v) = %s, want %s", tc.warm, tc.bright, got, tc.want)
		}
	}
}

func TestRecords_Literal(t *testing.T) {
	want := []Result{
		{
			Season:      Spring,
			Description: "You have warm and bright coloring. Your best colors are warm and clear, like coral, golden yellow, and warm green.",
			Colors:      []string{"#FF6B35", "#FFD700", "#4CAF50", "#FF8C69", "#98FB98"},
		},
		{
			Season:      Summer,
			Description: "You have cool and soft coloring. Your best colors are cool and muted, like soft pink, powder blue, and sage green.",
			Colors:      []string{"#DDA0DD", "#B0C4DE", "#98FB98", "#DEB887", "#FFB6C1"},
		},
		{
			Season:      Autumn,
			Description: "You have warm and deep coloring. Your best colors are warm and muted, like rust, olive, and golden brown.",
			Colors:      []string{"#8B4513", "#556B2F", "#CD853F", "#A0522D", "#DAA520"},
		},
		{
			Season:      Winter,
			Description: "You have cool and deep coloring. Your best colors are cool and clear, like true red, royal blue, and pure white.",
			Colors:      []string{"#DC143C", "#4169E1", "#FFFFFF", "#000000", "#800080"},
		},
	}

	got := All()
	if !reflect.DeepEqual(got, want) {
		t.Errorf("season records differ\n got: %+v\nwant: %+v", got, want)
	}
}

func TestGet_ReturnsCopy(t *testing.T) {
	r, ok := Get(Spring)
	if !ok {
		t.Fatal("expected Spring record")
	}
	r.Colors[0] = "#000000"

	again, _ := Get(Spring)
	if again.Colors[0] != "#FF6B35" {
		t.Errorf("mutating a returned palette changed the record: %v", again.Colors)
	}
}

func TestLookup(t *testing.T) {
	for _, name := range []string{"winter", "WINTER", " Winter "} {
		r, ok := Lookup(name)
		if !ok {
			t.Errorf("Lookup(%q) found nothing", name)
			continue
		}
		if r.Season != Winter {
			t.Errorf("Lookup(%q) = %s", name, r.Season)
		}
	}
	if _, ok := Lookup("monsoon"); ok {
		t.Error("expected unknown season to be missing")
	}
}

func TestLoad_Invalid(t *testing.T) {
	saved, savedOrder := records, order
	t.Cleanup(func() { records, order = saved, savedOrder })

	tests := []struct {
		name    string
		results []Result
	}{
		{"short palette", []Result{{Season: Spring, Colors: []string{"#FFFFFF"}}}},
		{"bad hex", []Result{{Season: Spring, Colors: []string{"#FFFFFF", "#FFFFFF", "#FFFFFF", "#FFFFFF", "white"}}}},
		{"missing seasons", []Result{{Season: Spring, Colors: []string{"#FFFFFF", "#FFFFFF", "#FFFFFF", "#FFFFFF", "#FFFFFF"}}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := load(tc.results); err == nil {
				t.Error("expected error")
			}
		})
	}
}
