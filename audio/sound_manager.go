package audio

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	sampleRate = beep.SampleRate(44100)

	eatFreq  = 880
	eatTime  = 60 * time.Millisecond
	crashLen = 400 * time.Millisecond
)

// SoundManager plays the eat and crash effects. Until Initialize succeeds
// every Play call is a no-op, so the game runs the same without a sound
// device.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

func NewSoundManager() *SoundManager {
	return &SoundManager{
		mixer: &beep.Mixer{},
	}
}

// Initialize opens the speaker.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup stops playback and closes the speaker.
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// PlayEat plays a short high blip.
func (sm *SoundManager) PlayEat() {
	sine, err := generators.SineTone(sampleRate, eatFreq)
	if err != nil {
		return
	}
	sm.add(beep.Take(sampleRate.N(eatTime), sine))
}

// PlayCrash plays a falling buzz.
func (sm *SoundManager) PlayCrash() {
	sm.add(beep.Take(sampleRate.N(crashLen), NewCrashGenerator(sampleRate, crashLen)))
}

func (sm *SoundManager) add(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(s)
	speaker.Unlock()
}

// CrashGenerator is a square wave sweeping from 220Hz down to 55Hz with a
// linear fade out.
type CrashGenerator struct {
	sr      beep.SampleRate
	pos     int
	samples int
}

func NewCrashGenerator(sr beep.SampleRate, d time.Duration) *CrashGenerator {
	return &CrashGenerator{sr: sr, samples: sr.N(d)}
}

func (g *CrashGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if g.pos >= g.samples {
			return i, i > 0
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := 220 * math.Pow(0.25, progress)
		t := float64(g.pos) / float64(g.sr)

		v := 0.2 * (1 - progress)
		if math.Sin(2*math.Pi*freq*t) < 0 {
			v = -v
		}
		samples[i][0] = v
		samples[i][1] = v
		g.pos++
	}
	return len(samples), true
}

func (g *CrashGenerator) Err() error {
	return nil
}
