package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/rand"

	"slither/audio"
	"slither/game"
	"slither/game/manager"
	"slither/game/types"
	"slither/term"
	"slither/ui"
)

// frontend is a renderer, input and clock that must be closed.
type frontend interface {
	game.Renderer
	game.Input
	game.Clock
	Close()
}

func main() {
	variantName := flag.String("variant", types.DefaultVariant, fmt.Sprintf("game variant %v", types.VariantNames()))
	frontendName := flag.String("frontend", "raylib", "frontend: raylib or term")
	assetDir := flag.String("assets", "", "directory with grassland.jpg, snake.png, apple.png and optional font.ttf (raylib only)")
	sound := flag.Bool("sound", false, "play sound effects")
	seed := flag.Uint64("seed", 0, "food placement seed (0 = time based)")
	logFile := flag.String("log", "", "write logs to this file")
	flag.Parse()

	sessionID := uuid.New().String()
	log.SetPrefix(fmt.Sprintf("[%s] ", sessionID[:8]))

	closeLog, err := setupLog(*logFile)
	if err != nil {
		log.Fatalf("open log: %v", err)
	}
	defer closeLog()

	variant, err := types.LookupVariant(*variantName)
	if err != nil {
		log.Fatalf("%v", err)
	}

	if *seed == 0 {
		*seed = uint64(time.Now().UnixNano())
	}
	rng := rand.New(rand.NewSource(*seed))

	fe, err := openFrontend(*frontendName, variant, *assetDir)
	if err != nil {
		log.Fatalf("open %s frontend: %v", *frontendName, err)
	}
	defer fe.Close()

	if quietLog(*frontendName, *logFile) {
		log.SetOutput(io.Discard)
	}

	opts := []game.SessionOption{game.WithStats(manager.NewGameStats(sessionID))}
	if *sound {
		sm := audio.NewSoundManager()
		if err := sm.Initialize(); err != nil {
			// Non-fatal, game can run without sound
			log.Printf("Audio initialization failed: %v", err)
		} else {
			defer sm.Cleanup()
			opts = append(opts, game.WithSound(sm))
		}
	}

	input := game.NewSignalInput(fe)
	defer input.Stop()

	log.Printf("session %s: variant=%s frontend=%s seed=%d", sessionID, variant.Name, *frontendName, *seed)
	game.NewSession(variant, fe, input, fe, rng, opts...).Run()
	log.Printf("session %s: quit", sessionID)
}

func openFrontend(name string, v types.Variant, assetDir string) (frontend, error) {
	switch name {
	case "raylib":
		return ui.Open(v, assetDir)
	case "term":
		if assetDir != "" {
			log.Printf("-assets is ignored by the terminal frontend")
		}
		return term.Open(v)
	default:
		return nil, fmt.Errorf("unknown frontend %q", name)
	}
}

// setupLog points the standard logger at path, or leaves it on stderr
// when path is empty.
func setupLog(path string) (func(), error) {
	if path == "" {
		return func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	log.SetOutput(f)
	return func() { f.Close() }, nil
}

// quietLog reports whether logs must be dropped once the frontend is open:
// the terminal frontend draws over stderr.
func quietLog(frontend, path string) bool {
	return frontend == "term" && path == ""
}
