package types

import (
	"errors"
	"testing"
)

var allDirections = []Direction{Up, Right, Down, Left}

func TestTurnRejectsReversal(t *testing.T) {
	for _, d := range allDirections {
		if got := Turn(d, d.Opposite()); got != d {
			t.Errorf("Turn(%v, %v) = %v, want %v", d, d.Opposite(), got, d)
		}
	}
}

func TestTurnAcceptsOthers(t *testing.T) {
	for _, cur := range allDirections {
		for _, req := range allDirections {
			if req == cur.Opposite() {
				continue
			}
			if got := Turn(cur, req); got != req {
				t.Errorf("Turn(%v, %v) = %v, want %v", cur, req, got, req)
			}
		}
	}
}

func TestOppositeVectorsCancel(t *testing.T) {
	for _, d := range allDirections {
		a, b := d.ToPoint(), d.Opposite().ToPoint()
		if a.X+b.X != 0 || a.Y+b.Y != 0 {
			t.Errorf("%v and %v do not cancel: %v %v", d, d.Opposite(), a, b)
		}
		if abs(a.X)+abs(a.Y) != 1 {
			t.Errorf("%v is not a unit vector: %v", d, a)
		}
	}
}

func TestGridWrap(t *testing.T) {
	g := Grid{Width: 10, Height: 8}
	tests := []struct {
		in, want Point
	}{
		{Point{X: -1, Y: 0}, Point{X: 9, Y: 0}},
		{Point{X: 10, Y: 3}, Point{X: 0, Y: 3}},
		{Point{X: 4, Y: -1}, Point{X: 4, Y: 7}},
		{Point{X: 4, Y: 8}, Point{X: 4, Y: 0}},
		{Point{X: 3, Y: 3}, Point{X: 3, Y: 3}},
	}
	for _, tt := range tests {
		got := g.Wrap(tt.in)
		if got != tt.want {
			t.Errorf("Wrap(%v) = %v, want %v", tt.in, got, tt.want)
		}
		if !g.Contains(got) {
			t.Errorf("Wrap(%v) = %v is outside the grid", tt.in, got)
		}
	}
}

func TestGridContains(t *testing.T) {
	g := Grid{Width: 10, Height: 10}
	if !g.Contains(Point{X: 0, Y: 0}) || !g.Contains(Point{X: 9, Y: 9}) {
		t.Error("corners should be inside")
	}
	for _, p := range []Point{{X: -1, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: -1}, {X: 0, Y: 10}} {
		if g.Contains(p) {
			t.Errorf("%v should be outside", p)
		}
	}
}

func TestKeyDigit(t *testing.T) {
	for n := 0; n <= 9; n++ {
		d, ok := DigitKey(n).Digit()
		if !ok || d != n {
			t.Errorf("DigitKey(%d).Digit() = %d, %v", n, d, ok)
		}
	}
	if _, ok := KeyUp.Digit(); ok {
		t.Error("KeyUp should not be a digit")
	}
	if DigitKey(10) != KeyNone {
		t.Error("DigitKey(10) should be KeyNone")
	}
}

func TestLookupVariant(t *testing.T) {
	v, err := LookupVariant(DefaultVariant)
	if err != nil {
		t.Fatalf("LookupVariant(%q): %v", DefaultVariant, err)
	}
	if v.Mode != Bounded || v.SpeedUpEvery != 5 {
		t.Errorf("classic preset = %+v", v)
	}
	if fps, ok := v.SpeedFor(2); !ok || fps != 10 {
		t.Errorf("classic SpeedFor(2) = %d, %v", fps, ok)
	}

	_, err = LookupVariant("hexagonal")
	if !errors.Is(err, ErrUnknownVariant) {
		t.Errorf("expected ErrUnknownVariant, got %v", err)
	}
}

func TestVariantsStartInsideGrid(t *testing.T) {
	for _, name := range VariantNames() {
		v, _ := LookupVariant(name)
		if !v.Grid.Contains(v.Start) {
			t.Errorf("%s: start %v outside %+v", name, v.Start, v.Grid)
		}
		if len(v.PresetKeys()) == 0 {
			t.Errorf("%s: no speed presets", name)
		}
	}
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
