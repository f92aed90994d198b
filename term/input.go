package term

import (
	"unicode"

	"github.com/gdamore/tcell/v2"

	"slither/game/types"
)

const eventBuffer = 64

// Input feeds tcell events through a buffered channel. PollEvent blocks, so
// a single goroutine owns it; Poll only drains what is already queued.
type Input struct {
	screen tcell.Screen
	events chan tcell.Event
}

func NewInput(s tcell.Screen) *Input {
	in := &Input{
		screen: s,
		events: make(chan tcell.Event, eventBuffer),
	}
	go in.pump()
	return in
}

func (in *Input) pump() {
	for {
		ev := in.screen.PollEvent()
		if ev == nil {
			// Fini was called.
			close(in.events)
			return
		}
		select {
		case in.events <- ev:
		default:
			// Drop input the game cannot keep up with.
		}
	}
}

func (in *Input) Poll() []types.Event {
	var out []types.Event
	for {
		select {
		case ev, ok := <-in.events:
			if !ok {
				return append(out, types.QuitEvent)
			}
			if _, resized := ev.(*tcell.EventResize); resized {
				in.screen.Sync()
				continue
			}
			if e, ok := translate(ev); ok {
				out = append(out, e)
			}
		default:
			return out
		}
	}
}

func translate(ev tcell.Event) (types.Event, bool) {
	key, ok := ev.(*tcell.EventKey)
	if !ok {
		return types.Event{}, false
	}

	switch key.Key() {
	case tcell.KeyCtrlC, tcell.KeyEscape:
		return types.QuitEvent, true
	case tcell.KeyUp:
		return types.Press(types.KeyUp), true
	case tcell.KeyDown:
		return types.Press(types.KeyDown), true
	case tcell.KeyLeft:
		return types.Press(types.KeyLeft), true
	case tcell.KeyRight:
		return types.Press(types.KeyRight), true
	case tcell.KeyRune:
	default:
		return types.Event{}, false
	}

	ch := unicode.ToLower(key.Rune())
	if key.Modifiers()&tcell.ModCtrl != 0 {
		if ch == 'c' {
			return types.QuitEvent, true
		}
		return types.Event{}, false
	}
	if ch >= '0' && ch <= '9' {
		return types.Press(types.DigitKey(int(ch - '0'))), true
	}
	switch ch {
	case 'w':
		return types.Press(types.KeyUp), true
	case 's':
		return types.Press(types.KeyDown), true
	case 'a':
		return types.Press(types.KeyLeft), true
	case 'd':
		return types.Press(types.KeyRight), true
	case 'r':
		return types.Press(types.KeyRestart), true
	case 'q':
		return types.Press(types.KeyQuit), true
	}
	return types.Event{}, false
}
