package types

import (
	"errors"
	"fmt"
	"sort"
)

// ErrUnknownVariant is returned by LookupVariant for names with no preset.
var ErrUnknownVariant = errors.New("unknown variant")

// Variant is a compiled-in game preset.
type Variant struct {
	Name     string
	Title    string
	Mode     Mode
	Grid     Grid
	CellSize int
	Start    Point
	Heading  Direction

	// Presets maps a digit key to frames per second.
	Presets map[int]int

	// SpeedUpEvery adds SpeedUpStep fps each time the score reaches a
	// multiple of it. Zero disables the policy.
	SpeedUpEvery int
	SpeedUpStep  int
}

// DefaultVariant is launched when no variant is named.
const DefaultVariant = "classic"

var variants = map[string]Variant{
	"classic": {
		Name:         "classic",
		Title:        "Animated Snake Game",
		Mode:         Bounded,
		Grid:         Grid{Width: 25, Height: 18},
		CellSize:     32,
		Start:        Point{X: 5, Y: 5},
		Heading:      Right,
		Presets:      map[int]int{1: 5, 2: 10, 3: 15},
		SpeedUpEvery: 5,
		SpeedUpStep:  1,
	},
	"slither": {
		Name:     "slither",
		Title:    "Slither - Better Edition",
		Mode:     Wrap,
		Grid:     Grid{Width: 32, Height: 24},
		CellSize: 20,
		Start:    Point{X: 16, Y: 12},
		Heading:  Right,
		Presets:  map[int]int{1: 7, 2: 10, 3: 15, 4: 20, 5: 25},
	},
	"simple": {
		Name:     "simple",
		Title:    "Slither",
		Mode:     Bounded,
		Grid:     Grid{Width: 30, Height: 20},
		CellSize: 20,
		Start:    Point{X: 5, Y: 2},
		Heading:  Right,
		Presets:  map[int]int{1: 15},
	},
}

// LookupVariant returns the preset registered under name.
func LookupVariant(name string) (Variant, error) {
	v, ok := variants[name]
	if !ok {
		return Variant{}, fmt.Errorf("%w %q (have %v)", ErrUnknownVariant, name, VariantNames())
	}
	return v, nil
}

// VariantNames lists registered presets in lexical order.
func VariantNames() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// PresetKeys returns the digits of v's speed presets in ascending order.
func (v Variant) PresetKeys() []int {
	keys := make([]int, 0, len(v.Presets))
	for k := range v.Presets {
		keys = append(keys, k)
	}
	sort.Ints(keys)
	return keys
}

// SpeedFor returns the fps bound to digit, if any.
func (v Variant) SpeedFor(digit int) (int, bool) {
	fps, ok := v.Presets[digit]
	return fps, ok
}
