package audio

import (
	"math"
	"testing"
	"time"
)

func TestUninitializedIsSilent(t *testing.T) {
	sm := NewSoundManager()
	// Must not touch the speaker.
	sm.PlayEat()
	sm.PlayCrash()
	sm.Cleanup()
	if sm.mixer.Len() != 0 {
		t.Errorf("mixer has %d streamers before Initialize", sm.mixer.Len())
	}
}

func TestCrashGeneratorLength(t *testing.T) {
	g := NewCrashGenerator(sampleRate, 100*time.Millisecond)
	want := sampleRate.N(100 * time.Millisecond)

	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := g.Stream(buf)
		total += n
		for _, s := range buf[:n] {
			if math.Abs(s[0]) > 0.2 || s[0] != s[1] {
				t.Fatalf("sample out of range or not mono: %v", s)
			}
		}
		if !ok {
			break
		}
	}
	if total != want {
		t.Errorf("streamed %d samples, want %d", total, want)
	}
}

func TestCrashGeneratorFades(t *testing.T) {
	g := NewCrashGenerator(sampleRate, 200*time.Millisecond)
	buf := make([][2]float64, sampleRate.N(200*time.Millisecond))
	n, _ := g.Stream(buf)

	peak := func(from, to int) float64 {
		m := 0.0
		for _, s := range buf[from:to] {
			m = math.Max(m, math.Abs(s[0]))
		}
		return m
	}
	if early, late := peak(0, n/10), peak(n*9/10, n); late >= early {
		t.Errorf("no fade: early peak %v, late peak %v", early, late)
	}
}
