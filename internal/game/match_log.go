package game

import (
	"fmt"
	"strings"
)

// LogEvent identifies what happened in a MatchLogEntry.
type LogEvent int

const (
	EventMatchNew LogEvent = iota
	EventPhaseChange
	EventKickConfirm
	EventKickAnimate // verbose only
	EventReflexRoll
	EventReflexSave
	EventKickOutcome
	EventRoundAdvance
	EventMatchResult
)

var eventNames = [...]string{
	EventMatchNew:     "match/new",
	EventPhaseChange:  "phase/change",
	EventKickConfirm:  "kick/confirm",
	EventKickAnimate:  "kick/animate",
	EventReflexRoll:   "reflex/roll",
	EventReflexSave:   "reflex/save",
	EventKickOutcome:  "kick/outcome",
	EventRoundAdvance: "round/advance",
	EventMatchResult:  "match/result",
}

func (ev LogEvent) String() string {
	if ev < 0 || int(ev) >= len(eventNames) {
		return fmt.Sprintf("event(%d)", int(ev))
	}
	return eventNames[ev]
}

// MatchLogEntry is one recorded engine event. Match holds the full match ID;
// only String shortens it.
type MatchLogEntry struct {
	Tick   int
	Match  string
	Side   Side // SideNone for match-wide events
	Event  LogEvent
	Detail string
	Num    float64
}

// String formats the entry as a fixed-width log line.
//
//	[T=0061] 1f3a9c2e player kick/outcome     R1 GOAL! TOP_LEFT vs MIDDLE_CENTER
func (e MatchLogEntry) String() string {
	return fmt.Sprintf("[T=%04d] %-8s %-6s %-16s %s",
		e.Tick, shortID(e.Match), e.Side, e.Event, e.Detail)
}

// ReflexTally counts reflex-save activity for one match.
type ReflexTally struct {
	Rolls       int // successful trials, relocating or not
	AiSaves     int // relocations by the AI keeper
	PlayerSaves int // relocations by the player keeper
}

// MatchLog collects the events a MatchEngine emits, across every match it
// plays. Commentary is the on-screen view of the same stream.
type MatchLog struct {
	entries []MatchLogEntry
	verbose bool
}

// NewMatchLog creates a MatchLog. If verbose is true, per-tick animation
// events are kept as well.
func NewMatchLog(verbose bool) *MatchLog {
	return &MatchLog{verbose: verbose}
}

// Add records an event. Animation events are dropped unless the log is verbose.
func (ml *MatchLog) Add(tick int, match string, side Side, ev LogEvent, detail string, num float64) {
	if ev == EventKickAnimate && !ml.verbose {
		return
	}
	ml.entries = append(ml.entries, MatchLogEntry{
		Tick:   tick,
		Match:  match,
		Side:   side,
		Event:  ev,
		Detail: detail,
		Num:    num,
	})
}

func (ml *MatchLog) Entries() []MatchLogEntry {
	return ml.entries
}

func (ml *MatchLog) Len() int {
	return len(ml.entries)
}

// Count returns how many events of kind ev were recorded.
func (ml *MatchLog) Count(ev LogEvent) int {
	n := 0
	for _, e := range ml.entries {
		if e.Event == ev {
			n++
		}
	}
	return n
}

// Last returns the most recent event of kind ev.
func (ml *MatchLog) Last(ev LogEvent) (MatchLogEntry, bool) {
	for i := len(ml.entries) - 1; i >= 0; i-- {
		if ml.entries[i].Event == ev {
			return ml.entries[i], true
		}
	}
	return MatchLogEntry{}, false
}

// Has reports whether an event of kind ev has a detail containing substr.
func (ml *MatchLog) Has(ev LogEvent, substr string) bool {
	for _, e := range ml.entries {
		if e.Event == ev && strings.Contains(e.Detail, substr) {
			return true
		}
	}
	return false
}

// ForMatch returns the events of one match, by full ID.
func (ml *MatchLog) ForMatch(id string) []MatchLogEntry {
	var out []MatchLogEntry
	for _, e := range ml.entries {
		if e.Match == id {
			out = append(out, e)
		}
	}
	return out
}

// ReflexTally counts the reflex trials and relocating saves of one match.
func (ml *MatchLog) ReflexTally(id string) ReflexTally {
	var t ReflexTally
	for _, e := range ml.ForMatch(id) {
		switch {
		case e.Event == EventReflexRoll && e.Num > 0:
			t.Rolls++
		case e.Event == EventReflexSave && e.Side == SideAI:
			t.AiSaves++
		case e.Event == EventReflexSave && e.Side == SidePlayer:
			t.PlayerSaves++
		}
	}
	return t
}

// Format returns the full log, one line per entry.
func (ml *MatchLog) Format() string {
	var sb strings.Builder
	for _, e := range ml.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}
