package main

import (
	"testing"

	"github.com/Garsondee/penalty-kick/internal/game"
)

const (
	o = game.OutcomeScored
	x = game.OutcomeSaved
)

func TestLongestStreak(t *testing.T) {
	results := [game.MatchRounds]game.RoundOutcome{o, o, x, o, o}
	if got := longestStreak(results, o); got != 2 {
		t.Fatalf("expected scored streak 2, got %d", got)
	}
	if got := longestStreak(results, x); got != 1 {
		t.Fatalf("expected saved streak 1, got %d", got)
	}
	all := [game.MatchRounds]game.RoundOutcome{o, o, o, o, o}
	if got := longestStreak(all, o); got != game.MatchRounds {
		t.Fatalf("expected full streak %d, got %d", game.MatchRounds, got)
	}
}

func TestDecidedAfter_EarlyWhenPlayerRunsAway(t *testing.T) {
	player := [game.MatchRounds]game.RoundOutcome{o, o, o, x, x}
	ai := [game.MatchRounds]game.RoundOutcome{x, x, x, o, o}

	// After the AI's third miss it has two kicks left and trails by three.
	if got := decidedAfter(player, ai); got != 6 {
		t.Fatalf("expected match decided after kick 6, got %d", got)
	}
}

func TestDecidedAfter_LevelMatchGoesTheDistance(t *testing.T) {
	player := [game.MatchRounds]game.RoundOutcome{o, x, o, x, o}
	ai := [game.MatchRounds]game.RoundOutcome{o, x, o, x, o}
	if got := decidedAfter(player, ai); got != -1 {
		t.Fatalf("expected -1 for a level match, got %d", got)
	}
}

func TestRunMatch_CollectsFinishedMatch(t *testing.T) {
	reporter := game.NewMatchReporter()
	rs := runMatch(reporter, 1, 42, 0.1, "center")
	if rs.report.MatchID == "" {
		t.Fatal("expected report to carry a match ID")
	}
	if rs.report.Verdict == game.VerdictUndecided {
		t.Fatal("expected a decided verdict after a full match")
	}
	if len(reporter.History()) != 1 {
		t.Fatalf("expected 1 report in history, got %d", len(reporter.History()))
	}
	if rs.logEntries == 0 {
		t.Fatal("expected match log entries")
	}
}
