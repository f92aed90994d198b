package term

import (
	"fmt"
	"log"
	"time"

	"github.com/gdamore/tcell/v2"

	"slither/game/types"
)

// Clock sleeps out the remainder of each frame. The terminal has no vsync
// to lean on, unlike the raylib window.
type Clock struct {
	last  time.Time
	now   func() time.Time
	sleep func(time.Duration)
}

func NewClock() *Clock {
	return &Clock{now: time.Now, sleep: time.Sleep}
}

func (c *Clock) Tick(fps int) {
	if fps <= 0 {
		return
	}
	budget := time.Second / time.Duration(fps)
	now := c.now()
	next := c.last.Add(budget)
	if wait := next.Sub(now); wait > 0 {
		c.sleep(wait)
		c.last = next
		return
	}
	// Running late: restart the schedule from now instead of bursting.
	c.last = now
}

// Terminal is the tcell frontend.
type Terminal struct {
	*Renderer
	*Input
	*Clock
	screen tcell.Screen
}

// Open takes over the controlling terminal. Close must be called to give it
// back.
func Open(v types.Variant) (*Terminal, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("init screen: %w", err)
	}
	return New(s, v), nil
}

// New wraps an initialized screen.
func New(s tcell.Screen, v types.Variant) *Terminal {
	s.SetStyle(tcell.StyleDefault)
	s.HideCursor()

	needW, needH := ScreenSize(v)
	if w, h := s.Size(); w < needW || h < needH {
		log.Printf("terminal is %dx%d, %s needs %dx%d; the board will be clipped", w, h, v.Name, needW, needH)
	}

	return &Terminal{
		Renderer: NewRenderer(s, v),
		Input:    NewInput(s),
		Clock:    NewClock(),
		screen:   s,
	}
}

// Close restores the terminal.
func (t *Terminal) Close() {
	t.screen.Fini()
}
