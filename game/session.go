package game

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"golang.org/x/exp/rand"

	"slither/game/manager"
	"slither/game/types"
)

// MenuFPS paces the screens that are not running a round.
const MenuFPS = 30

// Phase is the session state.
type Phase int

const (
	ChoosingSpeed Phase = iota
	Playing
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case GameOver:
		return "game over"
	default:
		return "choosing speed"
	}
}

// Renderer draws one frame.
type Renderer interface {
	Present(f Frame)
}

// Input returns the events queued since the previous call without blocking.
type Input interface {
	Poll() []types.Event
}

// Clock blocks until the frame budget for fps has elapsed since the
// previous Tick.
type Clock interface {
	Tick(fps int)
}

// Sound plays the round's effects.
type Sound interface {
	PlayEat()
	PlayCrash()
}

// Frame is everything a Renderer needs for one frame.
type Frame struct {
	Phase     Phase
	Variant   types.Variant
	Snake     []types.Point
	Heading   types.Direction
	Food      types.Point
	Score     int
	FPS       int
	Best      int
	Games     int
	Collision types.CollisionType

	// Session history shown on the game over screen.
	AvgScore    float64
	MedianScore float64
	AvgDuration time.Duration
	Recent      []int
}

// recentScores is how many past scores a Frame carries.
const recentScores = 5

// Session drives ChoosingSpeed -> Playing -> GameOver and back.
type Session struct {
	variant  types.Variant
	renderer Renderer
	input    Input
	clock    Clock
	sound    Sound
	stats    *manager.GameStats
	rng      *rand.Rand

	phase Phase
	game  *Game
	quit  bool
}

// SessionOption customizes a Session.
type SessionOption func(*Session)

// WithSound attaches sound effects.
func WithSound(s Sound) SessionOption {
	return func(sess *Session) { sess.sound = s }
}

// WithStats records finished rounds into stats.
func WithStats(stats *manager.GameStats) SessionOption {
	return func(sess *Session) { sess.stats = stats }
}

func NewSession(v types.Variant, r Renderer, in Input, clock Clock, rng *rand.Rand, opts ...SessionOption) *Session {
	s := &Session{
		variant:  v,
		renderer: r,
		input:    in,
		clock:    clock,
		sound:    silence{},
		stats:    manager.NewGameStats(""),
		rng:      rng,
		phase:    ChoosingSpeed,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Session) Phase() Phase {
	return s.phase
}

// Game returns the current round, or nil before a speed is chosen.
func (s *Session) Game() *Game {
	return s.game
}

// Run loops frames until a quit request.
func (s *Session) Run() {
	for s.RunFrame() {
	}
}

// RunFrame drains input, advances the state by at most one step, renders
// and waits for the next tick. It returns false once the player has quit.
func (s *Session) RunFrame() bool {
	for _, ev := range s.input.Poll() {
		s.HandleEvent(ev)
		if s.quit {
			return false
		}
	}

	if s.phase == Playing {
		s.step()
	}

	s.renderer.Present(s.Frame())
	s.clock.Tick(s.fps())
	return true
}

// HandleEvent applies one input event to the current phase.
func (s *Session) HandleEvent(ev types.Event) {
	if ev.Kind == types.KindQuit {
		s.quit = true
		return
	}

	switch s.phase {
	case ChoosingSpeed:
		digit, ok := ev.Key.Digit()
		if !ok {
			return
		}
		if fps, ok := s.variant.SpeedFor(digit); ok {
			s.start(fps)
		}
	case Playing:
		if dir, ok := ev.Key.Direction(); ok {
			s.game.SetDirection(dir)
		}
	case GameOver:
		switch ev.Key {
		case types.KeyRestart:
			s.game = nil
			s.phase = ChoosingSpeed
		case types.KeyQuit:
			s.quit = true
		}
	}
}

func (s *Session) start(fps int) {
	s.game = NewGame(s.variant, fps, s.rng)
	s.phase = Playing
	log.Printf("round started: variant=%s mode=%s fps=%d", s.variant.Name, s.variant.Mode, fps)
	if s.game.Over() != types.NoCollision {
		s.finish(s.game.Over())
	}
}

func (s *Session) step() {
	res := s.game.Update()
	if res.Ate {
		s.sound.PlayEat()
	}
	if res.SpeedChanged {
		log.Printf("speed up: score=%d fps=%d", s.game.GetScore(), s.game.GetFPS())
	}
	if res.Terminal() {
		s.finish(res.Collision)
	}
}

func (s *Session) finish(cause types.CollisionType) {
	s.phase = GameOver
	if cause != types.BoardFull {
		s.sound.PlayCrash()
	}
	s.stats.AddGame(manager.GameRecord{
		Variant:   s.variant.Name,
		StartTime: s.game.StartTime,
		EndTime:   time.Now(),
		Score:     s.game.GetScore(),
		Cause:     cause,
	})
	log.Printf("game over: cause=%s score=%d steps=%d duration=%s",
		cause, s.game.GetScore(), s.game.Steps, s.game.ElapsedTime().Round(time.Millisecond))
}

func (s *Session) fps() int {
	if s.phase == Playing && s.game != nil {
		return s.game.GetFPS()
	}
	return MenuFPS
}

// Frame snapshots the state for rendering.
func (s *Session) Frame() Frame {
	f := Frame{
		Phase:   s.phase,
		Variant: s.variant,
		Best:    s.stats.GetMaxScore(),
		Games:   s.stats.GetGamesPlayed(),
	}
	if s.phase == GameOver {
		f.AvgScore = s.stats.GetAverageScore()
		f.MedianScore = s.stats.GetMedianScore()
		f.AvgDuration = s.stats.GetAverageDuration()
		f.Recent = recent(s.stats.GetStats(), recentScores)
	}
	if s.game != nil {
		f.Snake = s.game.GetSnake().Cells()
		f.Heading = s.game.GetSnake().Heading()
		f.Food = s.game.GetFood()
		f.Score = s.game.GetScore()
		f.FPS = s.game.GetFPS()
		f.Collision = s.game.Over()
	}
	return f
}

// History formats the session history for the game over screen.
func (f Frame) History() string {
	scores := make([]string, len(f.Recent))
	for i, sc := range f.Recent {
		scores[i] = strconv.Itoa(sc)
	}
	return fmt.Sprintf("Avg: %.1f   Median: %.1f   Avg time: %s   Last: %s",
		f.AvgScore, f.MedianScore, f.AvgDuration.Round(time.Second), strings.Join(scores, " "))
}

// recent returns the last n scores of records, newest first.
func recent(records []manager.GameRecord, n int) []int {
	scores := make([]int, 0, n)
	for i := len(records) - 1; i >= 0 && len(scores) < n; i-- {
		scores = append(scores, records[i].Score)
	}
	return scores
}

type silence struct{}

func (silence) PlayEat()   {}
func (silence) PlayCrash() {}
