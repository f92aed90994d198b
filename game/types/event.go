package types

// EventKind tags an input event.
type EventKind int

const (
	KindKey  EventKind = iota // KeyDown(key)
	KindQuit                  // window close, Esc, Ctrl-C, SIGINT/SIGTERM
)

// Key is a frontend-independent key code.
type Key int

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyRestart
	KeyQuit
	KeyDigit0
	// KeyDigit1..KeyDigit9 follow KeyDigit0 contiguously.
)

// DigitKey returns the key for the decimal digit n.
func DigitKey(n int) Key {
	if n < 0 || n > 9 {
		return KeyNone
	}
	return KeyDigit0 + Key(n)
}

// Digit returns the digit a key stands for.
func (k Key) Digit() (int, bool) {
	if k >= KeyDigit0 && k <= KeyDigit0+9 {
		return int(k - KeyDigit0), true
	}
	return 0, false
}

// Direction maps an arrow key to a heading.
func (k Key) Direction() (Direction, bool) {
	switch k {
	case KeyUp:
		return Up, true
	case KeyDown:
		return Down, true
	case KeyLeft:
		return Left, true
	case KeyRight:
		return Right, true
	}
	return 0, false
}

// Event is one discrete input event drained from a frontend.
type Event struct {
	Kind EventKind
	Key  Key
}

// Press builds a key-down event.
func Press(k Key) Event {
	return Event{Kind: KindKey, Key: k}
}

// QuitEvent is the unconditional request to end the process.
var QuitEvent = Event{Kind: KindQuit}
