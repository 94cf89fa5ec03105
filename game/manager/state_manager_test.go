package manager

import "testing"

func TestEndRunTracksScores(t *testing.T) {
	sm := NewStateManager()
	first := sm.CurrentRun()

	r := sm.EndRun(3, 100, 1, WallCollision)
	if r.ID != first || r.Score != 3 || r.Ticks() != 100 || r.Cause != WallCollision {
		t.Fatalf("unexpected record %+v", r)
	}
	if sm.CurrentRun() == first {
		t.Fatalf("a new run should get a new id")
	}

	r = sm.EndRun(1, 250, 1, SelfCollision)
	if r.StartTick != 100 || r.Ticks() != 150 {
		t.Fatalf("second run spans %d..%d", r.StartTick, r.EndTick)
	}

	if sm.GetHighScore() != 3 {
		t.Fatalf("high score = %d", sm.GetHighScore())
	}
	if sm.GetGamesPlayed() != 2 {
		t.Fatalf("games = %d", sm.GetGamesPlayed())
	}
	if got := sm.GetAverageScore(); got != 2 {
		t.Fatalf("average = %f", got)
	}
	if got := sm.GetMedianScore(); got != 2 {
		t.Fatalf("median = %f", got)
	}
}

func TestScoreHistoryIsBounded(t *testing.T) {
	sm := NewStateManager()
	for i := 0; i < MaxScoreHistory+10; i++ {
		sm.AddToHistory(i)
	}
	h := sm.GetScoreHistory()
	if len(h) != MaxScoreHistory {
		t.Fatalf("history len = %d", len(h))
	}
	if h[0] != 10 || h[len(h)-1] != MaxScoreHistory+9 {
		t.Fatalf("history kept the wrong end: %d..%d", h[0], h[len(h)-1])
	}
}

func TestRunsAreGrouped(t *testing.T) {
	sm := NewStateManager()
	for i := 0; i < GroupSize; i++ {
		sm.EndRun(i, uint64(i+1)*10, 1, WallCollision)
	}

	runs := sm.GetRuns()
	if len(runs) != 1 {
		t.Fatalf("runs = %d, want one grouped record", len(runs))
	}
	g := runs[0]
	if g.CompressionIndex != 1 || g.GamesCount != GroupSize {
		t.Fatalf("group index=%d count=%d", g.CompressionIndex, g.GamesCount)
	}
	if g.MaxScore != GroupSize-1 || g.MinScore != 0 {
		t.Fatalf("group min/max = %d/%d", g.MinScore, g.MaxScore)
	}
	if g.AverageScore != 49.5 || g.MedianScore != 49.5 {
		t.Fatalf("group average/median = %f/%f", g.AverageScore, g.MedianScore)
	}
	if g.StartTick != 0 || g.EndTick != uint64(GroupSize)*10 {
		t.Fatalf("group spans %d..%d", g.StartTick, g.EndTick)
	}

	sm.EndRun(200, 5000, 3, SelfCollision)
	if len(sm.GetRuns()) != 2 {
		t.Fatalf("runs = %d after one more", len(sm.GetRuns()))
	}
	if sm.GetHighScore() != 200 || sm.GetGamesPlayed() != GroupSize+1 {
		t.Fatalf("high=%d games=%d", sm.GetHighScore(), sm.GetGamesPlayed())
	}
	want := (49.5*float64(GroupSize) + 200) / float64(GroupSize+1)
	if got := sm.GetAverageScore(); got != want {
		t.Fatalf("average = %f, want %f", got, want)
	}
}
