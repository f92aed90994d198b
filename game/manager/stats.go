package manager

import (
	"sort"
	"sync"
	"time"

	"slither/game/types"
)

// maxRecords bounds the in-memory history; older rounds are dropped.
const maxRecords = 200

// GameStats keeps the finished rounds of the running process. Nothing is
// written to disk.
type GameStats struct {
	SessionID string
	games     []GameRecord
	played    int
	best      int
	mutex     sync.RWMutex
}

// GameRecord is one finished round.
type GameRecord struct {
	SessionID string
	Variant   string
	StartTime time.Time
	EndTime   time.Time
	Score     int
	Cause     types.CollisionType
}

// Duration is the wall-clock length of the round.
func (r GameRecord) Duration() time.Duration {
	return r.EndTime.Sub(r.StartTime)
}

func NewGameStats(sessionID string) *GameStats {
	return &GameStats{
		SessionID: sessionID,
		games:     make([]GameRecord, 0),
	}
}

// AddGame appends a finished round.
func (s *GameStats) AddGame(record GameRecord) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	record.SessionID = s.SessionID
	if len(s.games) >= maxRecords {
		s.games = s.games[1:]
	}
	s.games = append(s.games, record)
	s.played++
	if record.Score > s.best {
		s.best = record.Score
	}
}

func (s *GameStats) GetStats() []GameRecord {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	out := make([]GameRecord, len(s.games))
	copy(out, s.games)
	return out
}

// GetMaxScore returns the best score of the session, including rounds
// already dropped from the history.
func (s *GameStats) GetMaxScore() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.best
}

func (s *GameStats) GetGamesPlayed() int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return s.played
}

// GetAverageScore averages the retained history.
func (s *GameStats) GetAverageScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.games) == 0 {
		return 0
	}
	total := 0
	for _, game := range s.games {
		total += game.Score
	}
	return float64(total) / float64(len(s.games))
}

func (s *GameStats) GetMedianScore() float64 {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.games) == 0 {
		return 0
	}
	scores := make([]int, len(s.games))
	for i, game := range s.games {
		scores[i] = game.Score
	}
	sort.Ints(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return float64(scores[mid-1]+scores[mid]) / 2
	}
	return float64(scores[mid])
}

func (s *GameStats) GetAverageDuration() time.Duration {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	if len(s.games) == 0 {
		return 0
	}
	var total time.Duration
	for _, game := range s.games {
		total += game.Duration()
	}
	return total / time.Duration(len(s.games))
}
