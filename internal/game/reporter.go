package game

import (
	"fmt"
	"strings"
)

// MatchReport captures one finished match.
type MatchReport struct {
	MatchID     string
	Verdict     Verdict
	PlayerScore int
	AiScore     int

	// Reflex saves that relocated a keeper, split by who benefited.
	AiReflexSaves     int
	PlayerReflexSaves int
	// Trials that succeeded, relocation or not.
	ReflexRolls int

	Summary string
}

// MatchReporter collects reports from finished matches and aggregates them.
type MatchReporter struct {
	history []MatchReport
}

// NewMatchReporter creates an empty reporter.
func NewMatchReporter() *MatchReporter {
	return &MatchReporter{}
}

// Collect records the match in st, reading reflex counts for it from ml.
// Matches not yet in PhaseResult are ignored.
func (r *MatchReporter) Collect(st MatchState, ml *MatchLog) (MatchReport, bool) {
	if st.Phase != PhaseResult {
		return MatchReport{}, false
	}
	rpt := MatchReport{
		MatchID:     st.ID,
		Verdict:     st.Verdict(),
		PlayerScore: st.PlayerScore,
		AiScore:     st.AiScore,
		Summary:     st.Summary(),
	}
	if ml != nil {
		tally := ml.ReflexTally(st.ID)
		rpt.ReflexRolls = tally.Rolls
		rpt.AiReflexSaves = tally.AiSaves
		rpt.PlayerReflexSaves = tally.PlayerSaves
	}
	r.history = append(r.history, rpt)
	return rpt, true
}

// History returns every collected report in order.
func (r *MatchReporter) History() []MatchReport {
	return r.history
}

// AggregateReport summarises many matches.
type AggregateReport struct {
	Matches    int
	PlayerWins int
	AiWins     int
	Draws      int

	AvgPlayerScore float64
	AvgAiScore     float64

	// Share of kicks that went in, per kicker.
	PlayerConversion float64
	AiConversion     float64

	ReflexRollRate    float64 // successful trials per kick
	ReflexSaveRate    float64 // relocating saves per kick
	AiReflexSaves     int
	PlayerReflexSaves int
}

// Aggregate folds the history into an AggregateReport. Returns nil when empty.
func (r *MatchReporter) Aggregate() *AggregateReport {
	if len(r.history) == 0 {
		return nil
	}
	ag := &AggregateReport{Matches: len(r.history)}
	var playerGoals, aiGoals, rolls int
	for _, m := range r.history {
		switch m.Verdict {
		case VerdictPlayerWins:
			ag.PlayerWins++
		case VerdictAiWins:
			ag.AiWins++
		case VerdictDraw:
			ag.Draws++
		}
		playerGoals += m.PlayerScore
		aiGoals += m.AiScore
		rolls += m.ReflexRolls
		ag.AiReflexSaves += m.AiReflexSaves
		ag.PlayerReflexSaves += m.PlayerReflexSaves
	}
	n := float64(ag.Matches)
	kicksPerSide := n * MatchRounds
	ag.AvgPlayerScore = float64(playerGoals) / n
	ag.AvgAiScore = float64(aiGoals) / n
	ag.PlayerConversion = float64(playerGoals) / kicksPerSide
	ag.AiConversion = float64(aiGoals) / kicksPerSide
	ag.ReflexRollRate = float64(rolls) / (2 * kicksPerSide)
	ag.ReflexSaveRate = float64(ag.AiReflexSaves+ag.PlayerReflexSaves) / (2 * kicksPerSide)
	return ag
}

// Format returns a human-readable multi-line string of the aggregate.
func (ag *AggregateReport) Format() string {
	if ag == nil {
		return "No matches collected yet.\n"
	}
	var sb strings.Builder
	fmt.Fprintf(&sb, "=== Shoot-out Report (%d matches) ===\n", ag.Matches)
	fmt.Fprintf(&sb, "  results: player_wins=%d ai_wins=%d draws=%d (player win rate %.1f%%)\n",
		ag.PlayerWins, ag.AiWins, ag.Draws, pct(ag.PlayerWins, ag.Matches))
	fmt.Fprintf(&sb, "  avg_score: player=%.2f ai=%.2f\n", ag.AvgPlayerScore, ag.AvgAiScore)
	fmt.Fprintf(&sb, "  conversion: player=%.1f%% ai=%.1f%%\n",
		ag.PlayerConversion*100, ag.AiConversion*100)
	fmt.Fprintf(&sb, "  reflex: rolls/kick=%.3f saves/kick=%.3f ai_saves=%d player_saves=%d\n",
		ag.ReflexRollRate, ag.ReflexSaveRate, ag.AiReflexSaves, ag.PlayerReflexSaves)
	return sb.String()
}

func pct(n, total int) float64 {
	if total <= 0 {
		return 0
	}
	return float64(n) / float64(total) * 100
}
