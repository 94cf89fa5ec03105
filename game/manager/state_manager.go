package manager

import (
	"sort"

	"github.com/google/uuid"
)

const (
	MaxScoreHistory = 50  // Scores kept for the rolling history
	GroupSize       = 100 // Runs folded into one grouped record
)

// RunRecord describes one life of the snek, or a group of lives once
// CompressionIndex > 0.
type RunRecord struct {
	ID               uuid.UUID
	Score            int
	StartTick        uint64
	EndTick          uint64
	PeakFruits       int
	Cause            CollisionKind
	CompressionIndex int // 0 for single runs, >0 for groups
	GamesCount       int
	AverageScore     float64
	MedianScore      float64
	MaxScore         int
	MinScore         int
}

// Ticks returns how long the run lasted
func (r RunRecord) Ticks() uint64 {
	return r.EndTick - r.StartTick
}

// StateManager keeps the in-memory scoreboard for the session. Nothing is
// written to disk.
type StateManager struct {
	runs         []RunRecord
	highScore    int
	scoreHistory []int
	gamesPlayed  int
	runStart     uint64
	currentRun   uuid.UUID
}

func NewStateManager() *StateManager {
	return &StateManager{
		runs:         make([]RunRecord, 0),
		scoreHistory: make([]int, 0, MaxScoreHistory),
		currentRun:   uuid.New(),
	}
}

// CurrentRun returns the id of the life in progress
func (sm *StateManager) CurrentRun() uuid.UUID {
	return sm.currentRun
}

// EndRun closes the current life and starts the next one at tick.
func (sm *StateManager) EndRun(score int, tick uint64, peakFruits int, cause CollisionKind) RunRecord {
	record := RunRecord{
		ID:           sm.currentRun,
		Score:        score,
		StartTick:    sm.runStart,
		EndTick:      tick,
		PeakFruits:   peakFruits,
		Cause:        cause,
		GamesCount:   1,
		AverageScore: float64(score),
		MedianScore:  float64(score),
		MaxScore:     score,
		MinScore:     score,
	}
	sm.runs = append(sm.runs, record)
	sm.groupRuns()

	sm.UpdateScore(score)
	sm.AddToHistory(score)
	sm.gamesPlayed++

	sm.runStart = tick
	sm.currentRun = uuid.New()
	return record
}

func (sm *StateManager) UpdateScore(score int) {
	if score > sm.highScore {
		sm.highScore = score
	}
}

func (sm *StateManager) AddToHistory(score int) {
	if len(sm.scoreHistory) >= MaxScoreHistory {
		sm.scoreHistory = sm.scoreHistory[1:]
	}
	sm.scoreHistory = append(sm.scoreHistory, score)
}

func (sm *StateManager) GetHighScore() int {
	return sm.highScore
}

func (sm *StateManager) GetScoreHistory() []int {
	return sm.scoreHistory
}

func (sm *StateManager) GetGamesPlayed() int {
	return sm.gamesPlayed
}

func (sm *StateManager) GetRuns() []RunRecord {
	return sm.runs
}

// GetAverageScore weights grouped records by how many runs they hold
func (sm *StateManager) GetAverageScore() float64 {
	var total float64
	var games int
	for _, r := range sm.runs {
		total += r.AverageScore * float64(r.GamesCount)
		games += r.GamesCount
	}
	if games == 0 {
		return 0
	}
	return total / float64(games)
}

// GetMedianScore approximates the median using each record's median
// repeated GamesCount times.
func (sm *StateManager) GetMedianScore() float64 {
	scores := make([]float64, 0, sm.gamesPlayed)
	for _, r := range sm.runs {
		for i := 0; i < r.GamesCount; i++ {
			scores = append(scores, r.MedianScore)
		}
	}
	return median(scores)
}

// groupRuns folds every GroupSize records of one compression level into a
// single record of the next level.
func (sm *StateManager) groupRuns() {
	for level := 0; ; level++ {
		var same, rest []RunRecord
		for _, r := range sm.runs {
			if r.CompressionIndex == level {
				same = append(same, r)
			} else {
				rest = append(rest, r)
			}
		}
		if len(same) < GroupSize {
			return
		}

		sort.SliceStable(same, func(i, j int) bool {
			return same[i].StartTick < same[j].StartTick
		})

		for len(same) >= GroupSize {
			rest = append(rest, fold(same[:GroupSize], level+1))
			same = same[GroupSize:]
		}
		sm.runs = append(rest, same...)
	}
}

func fold(group []RunRecord, level int) RunRecord {
	out := RunRecord{
		ID:               uuid.New(),
		StartTick:        group[0].StartTick,
		EndTick:          group[0].EndTick,
		CompressionIndex: level,
		MaxScore:         group[0].MaxScore,
		MinScore:         group[0].MinScore,
		Cause:            NoCollision,
	}

	var total float64
	scores := make([]float64, 0, len(group))
	for _, r := range group {
		if r.MaxScore > out.MaxScore {
			out.MaxScore = r.MaxScore
		}
		if r.MinScore < out.MinScore {
			out.MinScore = r.MinScore
		}
		if r.StartTick < out.StartTick {
			out.StartTick = r.StartTick
		}
		if r.EndTick > out.EndTick {
			out.EndTick = r.EndTick
		}
		if r.PeakFruits > out.PeakFruits {
			out.PeakFruits = r.PeakFruits
		}
		total += r.AverageScore * float64(r.GamesCount)
		out.GamesCount += r.GamesCount
		for i := 0; i < r.GamesCount; i++ {
			scores = append(scores, r.MedianScore)
		}
	}

	out.AverageScore = total / float64(out.GamesCount)
	out.MedianScore = median(scores)
	out.Score = out.MaxScore
	return out
}

func median(scores []float64) float64 {
	if len(scores) == 0 {
		return 0
	}
	sort.Float64s(scores)
	mid := len(scores) / 2
	if len(scores)%2 == 0 {
		return (scores[mid-1] + scores[mid]) / 2
	}
	return scores[mid]
}
