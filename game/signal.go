package game

import (
	"os"
	"os/signal"
	"syscall"

	"slither/game/types"
)

// SignalInput wraps an Input and turns SIGINT/SIGTERM into a Quit event,
// so a forced quit unwinds through the same path as a normal one.
type SignalInput struct {
	Input
	signals chan os.Signal
}

func NewSignalInput(in Input) *SignalInput {
	si := &SignalInput{
		Input:   in,
		signals: make(chan os.Signal, 1),
	}
	signal.Notify(si.signals, os.Interrupt, syscall.SIGTERM)
	return si
}

func (si *SignalInput) Poll() []types.Event {
	select {
	case <-si.signals:
		return []types.Event{types.QuitEvent}
	default:
		return si.Input.Poll()
	}
}

// Stop releases the signal subscription.
func (si *SignalInput) Stop() {
	signal.Stop(si.signals)
}
