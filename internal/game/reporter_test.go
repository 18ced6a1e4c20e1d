package game

import (
	"math"
	"strings"
	"testing"
)

func TestMatchReporter_IgnoresUnfinishedMatch(t *testing.T) {
	r := NewMatchReporter()
	tm := NewTestMatch()
	tm.Start()
	if _, ok := r.Collect(tm.State(), tm.MatchLog); ok {
		t.Fatal("expected an unfinished match to be ignored")
	}
	if r.Aggregate() != nil {
		t.Fatal("expected nil aggregate with no matches")
	}
	if !strings.Contains((*AggregateReport)(nil).Format(), "No matches") {
		t.Fatal("nil aggregate should format as empty")
	}
}

func TestMatchReporter_CountsReflexSaves(t *testing.T) {
	r := NewMatchReporter()

	// Every trial fires and every keeper guesses wrong: ten relocating saves.
	reflex := NewTestMatch(WithScriptedRandom([]GoalArea{BottomRight}, []float64{0.05}))
	st := reflex.PlayMatch(FixedPolicy(TopLeft, TopLeft))
	rpt, ok := r.Collect(st, reflex.MatchLog)
	if !ok {
		t.Fatal("expected the finished match to be collected")
	}
	if rpt.AiReflexSaves != MatchRounds || rpt.PlayerReflexSaves != MatchRounds {
		t.Fatalf("expected %d reflex saves each side, got ai=%d player=%d", MatchRounds, rpt.AiReflexSaves, rpt.PlayerReflexSaves)
	}
	if rpt.ReflexRolls != 2*MatchRounds {
		t.Fatalf("expected %d successful trials, got %d", 2*MatchRounds, rpt.ReflexRolls)
	}
	if rpt.Verdict != VerdictDraw || rpt.PlayerScore != 0 || rpt.AiScore != 0 {
		t.Fatalf("expected a 0-0 draw, got %s", rpt.Summary)
	}

	// Clean win: AI keeper always wrong, AI kicker always read.
	clean := NewTestMatch(WithReflexChance(0), WithScriptedRandom([]GoalArea{BottomRight}, nil))
	st = clean.PlayMatch(FixedPolicy(TopLeft, BottomRight))
	if _, ok := r.Collect(st, clean.MatchLog); !ok {
		t.Fatal("expected the second match to be collected")
	}

	ag := r.Aggregate()
	if ag.Matches != 2 || ag.PlayerWins != 1 || ag.Draws != 1 || ag.AiWins != 0 {
		t.Fatalf("unexpected tallies: %+v", ag)
	}
	if math.Abs(ag.AvgPlayerScore-2.5) > 1e-9 || ag.AvgAiScore != 0 {
		t.Fatalf("expected avg scores 2.5/0, got %.2f/%.2f", ag.AvgPlayerScore, ag.AvgAiScore)
	}
	if math.Abs(ag.PlayerConversion-0.5) > 1e-9 {
		t.Fatalf("expected player conversion 0.5, got %.3f", ag.PlayerConversion)
	}
	if math.Abs(ag.ReflexSaveRate-0.5) > 1e-9 || math.Abs(ag.ReflexRollRate-0.5) > 1e-9 {
		t.Fatalf("expected reflex rates 0.5, got saves=%.3f rolls=%.3f", ag.ReflexSaveRate, ag.ReflexRollRate)
	}
	out := ag.Format()
	if !strings.Contains(out, "player_wins=1") || !strings.Contains(out, "draws=1") {
		t.Fatalf("unexpected report:\n%s", out)
	}
}

func TestMatchReporter_SeparatesMatchesOnSharedLog(t *testing.T) {
	r := NewMatchReporter()
	tm := NewTestMatch(WithScriptedRandom([]GoalArea{BottomRight}, []float64{0.05}))

	first, _ := r.Collect(tm.PlayMatch(FixedPolicy(TopLeft, TopLeft)), tm.MatchLog)
	tm.Apply(ConfirmIntent())
	second, ok := r.Collect(tm.PlayMatch(FixedPolicy(TopLeft, TopLeft)), tm.MatchLog)
	if !ok {
		t.Fatal("expected the second match to be collected")
	}
	if first.MatchID == second.MatchID {
		t.Fatalf("expected two distinct matches, got %q twice", first.MatchID)
	}
	for _, rpt := range []MatchReport{first, second} {
		if rpt.AiReflexSaves != MatchRounds || rpt.PlayerReflexSaves != MatchRounds || rpt.ReflexRolls != 2*MatchRounds {
			t.Fatalf("%s: expected %d saves per side and %d trials, got ai=%d player=%d rolls=%d",
				rpt.MatchID, MatchRounds, 2*MatchRounds, rpt.AiReflexSaves, rpt.PlayerReflexSaves, rpt.ReflexRolls)
		}
	}
}

func TestMatchReporter_ReflexRateNearConfiguredChance(t *testing.T) {
	r := NewMatchReporter()
	for seed := int64(1); seed <= 200; seed++ {
		tm := NewTestMatch(WithSeed(seed))
		st := tm.PlayMatch(FixedPolicy(TopCenter, MiddleRight))
		r.Collect(st, tm.MatchLog)
	}
	ag := r.Aggregate()
	// 2000 trials at p=0.1: three standard deviations is about 0.02.
	if ag.ReflexRollRate < 0.07 || ag.ReflexRollRate > 0.13 {
		t.Fatalf("reflex trial rate %.3f too far from 0.10", ag.ReflexRollRate)
	}
	if ag.ReflexSaveRate > ag.ReflexRollRate {
		t.Fatalf("relocating saves (%.3f) cannot exceed successful trials (%.3f)", ag.ReflexSaveRate, ag.ReflexRollRate)
	}
}
