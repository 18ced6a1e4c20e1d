package main

import (
	"flag"
	"fmt"
	"math/rand"

	"github.com/Garsondee/penalty-kick/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	report        game.MatchReport
	decidedAfter  int // kicks taken when the result became certain, -1 if only at the end
	playerStreak  int
	aiStreak      int
	logEntries    int
	reflexEntries int
}

func main() {
	var runs int
	var seedBase int64
	var seedStep int64
	var reflexChance float64
	var policy string

	flag.IntVar(&runs, "runs", 20, "number of headless matches")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.Float64Var(&reflexChance, "reflex-chance", game.DefaultConfig().ReflexSaveChance, "reflex save probability per kick")
	flag.StringVar(&policy, "policy", "random", "player policy (random | center)")
	flag.Parse()

	if runs <= 0 {
		fmt.Println("error: -runs must be > 0")
		return
	}
	if reflexChance < 0 || reflexChance > 1 {
		fmt.Println("error: -reflex-chance must be within [0,1]")
		return
	}
	if policy != "random" && policy != "center" {
		fmt.Printf("error: unsupported policy %q (supported: random, center)\n", policy)
		return
	}

	fmt.Printf("=== Headless Shoot-out Report ===\n")
	fmt.Printf("policy=%s runs=%d seed_base=%d seed_step=%d reflex_chance=%.2f\n\n", policy, runs, seedBase, seedStep, reflexChance)

	reporter := game.NewMatchReporter()
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		rs := runMatch(reporter, i+1, seed, reflexChance, policy)
		printRun(rs)
	}
	fmt.Println()
	fmt.Print(reporter.Aggregate().Format())
}

func runMatch(reporter *game.MatchReporter, runIndex int, seed int64, reflexChance float64, policy string) runStats {
	tm := game.NewTestMatch(
		game.WithSeed(seed),
		game.WithReflexChance(reflexChance),
	)
	var p game.Policy
	switch policy {
	case "center":
		p = game.FixedPolicy(game.CenterArea(), game.CenterArea())
	default:
		p = game.RandomPolicy(rand.New(rand.NewSource(seed + 7777))) // #nosec G404 -- report only
	}
	st := tm.PlayMatch(p)
	rpt, _ := reporter.Collect(st, tm.MatchLog)

	return runStats{
		runIndex:      runIndex,
		seed:          seed,
		report:        rpt,
		decidedAfter:  decidedAfter(st.PlayerResults, st.AiResults),
		playerStreak:  longestStreak(st.PlayerResults, game.OutcomeScored),
		aiStreak:      longestStreak(st.AiResults, game.OutcomeScored),
		logEntries:    tm.MatchLog.Len(),
		reflexEntries: tm.MatchLog.Count(game.EventReflexSave),
	}
}

// decidedAfter replays the kicks in order (player then AI each round) and
// returns how many had been taken when the trailing side could no longer
// draw level. Returns -1 when the match went the distance.
func decidedAfter(player, ai [game.MatchRounds]game.RoundOutcome) int {
	ps, as := 0, 0
	for r := 0; r < game.MatchRounds; r++ {
		for half := 0; half < 2; half++ {
			if half == 0 && player[r] == game.OutcomeScored {
				ps++
			}
			if half == 1 && ai[r] == game.OutcomeScored {
				as++
			}
			taken := r*2 + half + 1
			playerLeft := game.MatchRounds - r - 1
			aiLeft := game.MatchRounds - r - 1
			if half == 0 {
				aiLeft++
			}
			if taken == game.MatchRounds*2 {
				return -1
			}
			if ps+playerLeft < as || as+aiLeft < ps {
				return taken
			}
		}
	}
	return -1
}

// longestStreak returns the longest run of consecutive want outcomes.
func longestStreak(results [game.MatchRounds]game.RoundOutcome, want game.RoundOutcome) int {
	best, cur := 0, 0
	for _, r := range results {
		if r == want {
			cur++
			if cur > best {
				best = cur
			}
			continue
		}
		cur = 0
	}
	return best
}

func printRun(rs runStats) {
	decided := "final_kick"
	if rs.decidedAfter >= 0 {
		decided = fmt.Sprintf("after_kick_%d", rs.decidedAfter)
	}
	fmt.Printf("--- Run %d (seed=%d) %s ---\n", rs.runIndex, rs.seed, rs.report.Verdict.Label())
	fmt.Printf("  %s\n", rs.report.Summary)
	fmt.Printf("  decided=%s streaks: player=%d ai=%d reflex_saves=%d (ai=%d player=%d) log_entries=%d\n",
		decided, rs.playerStreak, rs.aiStreak, rs.reflexEntries,
		rs.report.AiReflexSaves, rs.report.PlayerReflexSaves, rs.logEntries)
}
