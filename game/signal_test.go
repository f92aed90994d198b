package game

import (
	"os"
	"syscall"
	"testing"
	"time"

	"slither/game/types"
)

func TestSignalInputTurnsInterruptIntoQuit(t *testing.T) {
	inner := &scriptedInput{}
	inner.push(types.Press(types.KeyUp))
	in := NewSignalInput(inner)
	defer in.Stop()

	if got := in.Poll(); len(got) != 1 || got[0] != types.Press(types.KeyUp) {
		t.Fatalf("Poll = %+v, want the wrapped input's events", got)
	}

	if err := syscall.Kill(os.Getpid(), syscall.SIGINT); err != nil {
		t.Fatalf("send SIGINT: %v", err)
	}

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		for _, ev := range in.Poll() {
			if ev == types.QuitEvent {
				return
			}
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("SIGINT never surfaced as a quit event")
}
