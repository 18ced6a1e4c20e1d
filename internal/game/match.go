package game

import (
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

// MatchPhase is the active stage of a match.
type MatchPhase int

const (
	PhaseMenu              MatchPhase = iota
	PhasePlayerKicking                // player aims a kick
	PhaseAiGoalkeeping                // player's kick animating against the AI keeper
	PhasePlayerGoalkeeping            // player picks a dive
	PhaseAiKicking                    // AI's kick animating against the player keeper
	PhaseResult
)

func (p MatchPhase) String() string {
	switch p {
	case PhaseMenu:
		return "menu"
	case PhasePlayerKicking:
		return "player_kicking"
	case PhaseAiGoalkeeping:
		return "ai_goalkeeping"
	case PhasePlayerGoalkeeping:
		return "player_goalkeeping"
	case PhaseAiKicking:
		return "ai_kicking"
	case PhaseResult:
		return "result"
	}
	return fmt.Sprintf("phase(%d)", int(p))
}

// Animating reports whether the phase is a kick animation waiting on ticks.
func (p MatchPhase) Animating() bool {
	return p == PhaseAiGoalkeeping || p == PhaseAiKicking
}

// Aiming reports whether the phase accepts aim moves from the player.
func (p MatchPhase) Aiming() bool {
	return p == PhasePlayerKicking || p == PhasePlayerGoalkeeping
}

// RoundOutcome is the result of one kick.
type RoundOutcome int

const (
	OutcomePending RoundOutcome = iota
	OutcomeScored
	OutcomeSaved
)

func (o RoundOutcome) String() string {
	switch o {
	case OutcomeScored:
		return "scored"
	case OutcomeSaved:
		return "saved"
	}
	return "pending"
}

// Mark is the scoreboard glyph for the outcome.
func (o RoundOutcome) Mark() string {
	switch o {
	case OutcomeScored:
		return "O"
	case OutcomeSaved:
		return "X"
	}
	return "-"
}

// Side identifies who is acting.
type Side int

const (
	SidePlayer Side = iota
	SideAI
	SideNone // match-wide log events
)

func (s Side) String() string {
	switch s {
	case SidePlayer:
		return "player"
	case SideAI:
		return "ai"
	}
	return "--"
}

// Result messages, keyed by kicker and outcome.
const (
	MsgPlayerGoal  = "GOAL!"
	MsgPlayerSaved = "SAVED!"
	MsgAiGoal      = "GOAL CONCEDED!"
	MsgAiSaved     = "NICE SAVE!"
)

// Verdict is the final result of a match from the player's point of view.
type Verdict int

const (
	VerdictUndecided Verdict = iota
	VerdictPlayerWins
	VerdictAiWins
	VerdictDraw
)

// Label is the banner text for the verdict.
func (v Verdict) Label() string {
	switch v {
	case VerdictPlayerWins:
		return "YOU WIN!"
	case VerdictAiWins:
		return "AI WINS!"
	case VerdictDraw:
		return "DRAW"
	}
	return ""
}

// MatchState is the full state of one match. The engine owns the only
// mutable copy; Snapshot hands out values.
type MatchState struct {
	ID          string
	Phase       MatchPhase
	Round       int // 1..MatchRounds while playing, MatchRounds+1 in Result
	PlayerScore int
	AiScore     int

	PlayerResults [MatchRounds]RoundOutcome // player's kicks, index = round-1
	AiResults     [MatchRounds]RoundOutcome // AI's kicks, index = round-1

	SelectedArea    GoalArea // player's aim, reset to centre each turn
	OpponentArea    GoalArea // AI's choice for the turn in progress, centre when none
	HasOpponentArea bool

	AnimationTimer      int
	LastResultMessage   string
	ReflexSaveActive    bool
	ReflexSaveAnnounced bool
}

func newMatchState(id string) MatchState {
	return MatchState{
		ID:           id,
		Phase:        PhaseMenu,
		Round:        1,
		SelectedArea: CenterArea(),
		OpponentArea: CenterArea(),
	}
}

// Kicker returns the side taking the kick in the current phase.
// Outside kicking phases it returns SidePlayer.
func (s MatchState) Kicker() Side {
	if s.Phase == PhasePlayerGoalkeeping || s.Phase == PhaseAiKicking {
		return SideAI
	}
	return SidePlayer
}

// KickerArea returns the kicker's target for the kick in progress.
func (s MatchState) KickerArea() GoalArea {
	if s.Kicker() == SideAI {
		return s.OpponentArea
	}
	return s.SelectedArea
}

// KeeperArea returns the keeper's effective dive for the kick in progress.
func (s MatchState) KeeperArea() GoalArea {
	if s.Kicker() == SideAI {
		return s.SelectedArea
	}
	return s.OpponentArea
}

// Verdict returns the final result once the match reaches PhaseResult.
func (s MatchState) Verdict() Verdict {
	if s.Phase != PhaseResult {
		return VerdictUndecided
	}
	switch {
	case s.PlayerScore > s.AiScore:
		return VerdictPlayerWins
	case s.PlayerScore < s.AiScore:
		return VerdictAiWins
	}
	return VerdictDraw
}

// Summary returns a one-line scoreline with per-round marks.
//
//	PLAYER 3 - 2 AI  [O X O O X] [X O O X X]
func (s MatchState) Summary() string {
	return fmt.Sprintf("PLAYER %d - %d AI  [%s] [%s]",
		s.PlayerScore, s.AiScore, marks(s.PlayerResults), marks(s.AiResults))
}

func marks(results [MatchRounds]RoundOutcome) string {
	parts := make([]string, len(results))
	for i, r := range results {
		parts[i] = r.Mark()
	}
	return strings.Join(parts, " ")
}

// CountOutcome returns how many slots of results hold outcome.
func CountOutcome(results [MatchRounds]RoundOutcome, outcome RoundOutcome) int {
	n := 0
	for _, r := range results {
		if r == outcome {
			n++
		}
	}
	return n
}

// IntentKind distinguishes the two player intents.
type IntentKind int

const (
	IntentMove IntentKind = iota
	IntentConfirm
)

// Intent is a discrete player input forwarded by the UI layer.
type Intent struct {
	Kind IntentKind
	Dir  Direction // only for IntentMove
}

// MoveIntent returns an aim move in dir.
func MoveIntent(dir Direction) Intent {
	return Intent{Kind: IntentMove, Dir: dir}
}

// ConfirmIntent returns a confirm (kick, dive, start, restart).
func ConfirmIntent() Intent {
	return Intent{Kind: IntentConfirm}
}

// MatchEngine runs the penalty shoot-out state machine. It is driven
// synchronously by a single frame loop and is not safe for concurrent use.
type MatchEngine struct {
	cfg   Config
	rng   Randomizer
	state MatchState
	log   *MatchLog
	newID func() string
	tick  int

	// reflexRolled is the raw outcome of this turn's trial, kept even when
	// the keeper already guessed right and nothing was relocated.
	reflexRolled bool
}

// EngineOption customises a MatchEngine at construction.
type EngineOption func(*MatchEngine)

// WithMatchLog routes engine events into ml.
func WithMatchLog(ml *MatchLog) EngineOption {
	return func(e *MatchEngine) {
		e.log = ml
	}
}

// WithIDSource replaces the match ID generator.
func WithIDSource(fn func() string) EngineOption {
	return func(e *MatchEngine) {
		e.newID = fn
	}
}

// NewMatchEngine creates an engine sitting in the menu of a fresh match.
func NewMatchEngine(cfg Config, rng Randomizer, opts ...EngineOption) (*MatchEngine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if rng == nil {
		return nil, errors.New("match engine: nil randomizer")
	}
	e := &MatchEngine{
		cfg:   cfg,
		rng:   rng,
		log:   NewMatchLog(false),
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(e)
	}
	e.StartNewMatch()
	return e, nil
}

// Config returns the engine's settings.
func (e *MatchEngine) Config() Config {
	return e.cfg
}

// Log returns the engine's event log.
func (e *MatchEngine) Log() *MatchLog {
	return e.log
}

// Snapshot returns a copy of the current state for rendering.
func (e *MatchEngine) Snapshot() MatchState {
	return e.state
}

// ReflexRolled reports whether this turn's reflex-save trial succeeded,
// whether or not it relocated the keeper.
func (e *MatchEngine) ReflexRolled() bool {
	return e.reflexRolled
}

// StartNewMatch discards the current match and replaces it with a fresh one
// in the menu.
func (e *MatchEngine) StartNewMatch() {
	e.state = newMatchState(e.newID())
	e.reflexRolled = false
	e.record(SideNone, EventMatchNew, e.state.ID, 0)
}

// ApplyIntent applies one player intent. Intents the current phase does not
// accept are ignored.
func (e *MatchEngine) ApplyIntent(in Intent) {
	switch in.Kind {
	case IntentMove:
		if e.state.Phase.Aiming() {
			e.state.SelectedArea = e.state.SelectedArea.Move(in.Dir)
		}
	case IntentConfirm:
		e.confirm()
	}
}

func (e *MatchEngine) confirm() {
	switch e.state.Phase {
	case PhaseMenu:
		e.state.Round = 1
		e.state.SelectedArea = CenterArea()
		e.setPhase(PhasePlayerKicking)
	case PhasePlayerKicking:
		e.takeKick(PhaseAiGoalkeeping)
	case PhasePlayerGoalkeeping:
		e.takeKick(PhaseAiKicking)
	case PhaseResult:
		e.StartNewMatch()
	}
}

// takeKick locks in the player's choice, draws the AI's and rolls the
// reflex save once for this kick.
func (e *MatchEngine) takeKick(next MatchPhase) {
	s := &e.state
	s.OpponentArea = RandomArea(e.rng)
	s.HasOpponentArea = true
	s.AnimationTimer = 0
	e.setPhase(next)

	kicker := s.Kicker()
	e.record(kicker, EventKickConfirm,
		fmt.Sprintf("round=%d kick=%s keep=%s", s.Round, s.KickerArea(), s.KeeperArea()), float64(s.Round))
	e.rollReflexSave()
}

func (e *MatchEngine) rollReflexSave() {
	s := &e.state
	e.reflexRolled = e.rng.Float64() < e.cfg.ReflexSaveChance
	keeper := SidePlayer
	if s.Kicker() == SidePlayer {
		keeper = SideAI
	}
	e.record(keeper, EventReflexRoll, fmt.Sprintf("%t", e.reflexRolled), boolNum(e.reflexRolled))

	if !e.reflexRolled || s.KickerArea() == s.KeeperArea() {
		s.ReflexSaveActive = false
		s.ReflexSaveAnnounced = false
		return
	}
	from := s.KeeperArea()
	if s.Phase == PhaseAiGoalkeeping {
		s.OpponentArea = s.SelectedArea
	} else {
		s.SelectedArea = s.OpponentArea
	}
	s.ReflexSaveActive = true
	s.ReflexSaveAnnounced = true
	e.record(keeper, EventReflexSave, fmt.Sprintf("%s -> %s", from, s.KeeperArea()), 1)
}

// AdvanceTick moves time forward by one frame. Only kick animations react.
func (e *MatchEngine) AdvanceTick() {
	e.tick++
	s := &e.state
	if !s.Phase.Animating() {
		return
	}
	s.AnimationTimer++
	e.record(s.Kicker(), EventKickAnimate, fmt.Sprintf("timer=%d", s.AnimationTimer), float64(s.AnimationTimer))
	if s.AnimationTimer > e.cfg.AnimationFrames {
		e.resolve()
	}
}

// resolve settles the kick in progress: a save happens exactly when the
// keeper's effective area equals the kicker's.
func (e *MatchEngine) resolve() {
	s := &e.state
	kicker := s.Kicker()
	outcome := OutcomeScored
	if s.KickerArea() == s.KeeperArea() {
		outcome = OutcomeSaved
	}
	idx := s.Round - 1

	var msg string
	switch kicker {
	case SidePlayer:
		s.PlayerResults[idx] = outcome
		msg = MsgPlayerSaved
		if outcome == OutcomeScored {
			s.PlayerScore++
			msg = MsgPlayerGoal
		}
	case SideAI:
		s.AiResults[idx] = outcome
		msg = MsgAiSaved
		if outcome == OutcomeScored {
			s.AiScore++
			msg = MsgAiGoal
		}
	}
	s.LastResultMessage = msg
	e.record(kicker, EventKickOutcome,
		fmt.Sprintf("R%d %s %s vs %s", s.Round, msg, s.KickerArea(), s.KeeperArea()), float64(outcome))

	s.AnimationTimer = 0
	s.OpponentArea = CenterArea()
	s.HasOpponentArea = false
	s.ReflexSaveActive = false
	s.ReflexSaveAnnounced = false
	e.reflexRolled = false

	if kicker == SidePlayer {
		s.SelectedArea = CenterArea()
		e.setPhase(PhasePlayerGoalkeeping)
		return
	}

	s.Round++
	e.record(SideNone, EventRoundAdvance, fmt.Sprintf("round=%d", s.Round), float64(s.Round))
	if s.Round > MatchRounds {
		s.LastResultMessage = ""
		e.setPhase(PhaseResult)
		e.record(SideNone, EventMatchResult, s.Summary(), float64(s.PlayerScore-s.AiScore))
		return
	}
	s.SelectedArea = CenterArea()
	e.setPhase(PhasePlayerKicking)
}

func (e *MatchEngine) setPhase(p MatchPhase) {
	from := e.state.Phase
	e.state.Phase = p
	e.record(SideNone, EventPhaseChange, fmt.Sprintf("%s -> %s", from, p), float64(p))
}

func (e *MatchEngine) record(side Side, ev LogEvent, detail string, num float64) {
	if e.log == nil {
		return
	}
	e.log.Add(e.tick, e.state.ID, side, ev, detail, num)
}

func shortID(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func boolNum(b bool) float64 {
	if b {
		return 1
	}
	return 0
}
