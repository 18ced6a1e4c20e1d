package game

import (
	"fmt"
	"math/rand"
)

// TestMatch is a headless match harness used by tests and the batch report.
// It drives a MatchEngine exactly as Game.Update does but has no Ebiten
// dependency and supports deterministic draws and structured logging.
type TestMatch struct {
	Engine   *MatchEngine
	MatchLog *MatchLog
	Tick     int

	cfg     Config
	rng     Randomizer
	verbose bool
	ids     int
}

// MatchOption is a builder function applied to a TestMatch during construction.
type MatchOption func(*TestMatch)

// WithSeed seeds a math/rand source for the engine's draws.
func WithSeed(seed int64) MatchOption {
	return func(tm *TestMatch) {
		tm.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- test harness
	}
}

// WithReflexChance overrides the reflex save probability.
func WithReflexChance(p float64) MatchOption {
	return func(tm *TestMatch) {
		tm.cfg.ReflexSaveChance = p
	}
}

// WithAnimationFrames overrides the animation gate length.
func WithAnimationFrames(n int) MatchOption {
	return func(tm *TestMatch) {
		tm.cfg.AnimationFrames = n
	}
}

// WithScriptedRandom replaces the RNG with fixed sequences: areas feed the AI's
// choices in order, rolls feed the reflex save trials.
func WithScriptedRandom(areas []GoalArea, rolls []float64) MatchOption {
	return func(tm *TestMatch) {
		tm.rng = NewScriptedRandom(areas, rolls)
	}
}

// WithVerbose enables per-tick animation logging.
func WithVerbose(v bool) MatchOption {
	return func(tm *TestMatch) {
		tm.verbose = v
	}
}

// NewTestMatch builds a harness sitting in the menu. It panics on an invalid
// configuration since options are fixed by the caller.
func NewTestMatch(opts ...MatchOption) *TestMatch {
	tm := &TestMatch{
		cfg: DefaultConfig(),
		rng: rand.New(rand.NewSource(1)), // #nosec G404 -- test harness default
	}
	for _, o := range opts {
		o(tm)
	}
	tm.MatchLog = NewMatchLog(tm.verbose)
	eng, err := NewMatchEngine(tm.cfg, tm.rng,
		WithMatchLog(tm.MatchLog),
		WithIDSource(tm.nextID),
	)
	if err != nil {
		panic(fmt.Sprintf("test match: %v", err))
	}
	tm.Engine = eng
	return tm
}

// nextID hands out readable sequential match IDs.
func (tm *TestMatch) nextID() string {
	tm.ids++
	return fmt.Sprintf("match-%03d", tm.ids)
}

// State returns the engine snapshot.
func (tm *TestMatch) State() MatchState {
	return tm.Engine.Snapshot()
}

// Apply forwards intents to the engine.
func (tm *TestMatch) Apply(intents ...Intent) {
	for _, in := range intents {
		tm.Engine.ApplyIntent(in)
	}
}

// RunTicks advances the engine n frames.
func (tm *TestMatch) RunTicks(n int) {
	for i := 0; i < n; i++ {
		tm.Tick++
		tm.Engine.AdvanceTick()
	}
}

// RunUntilPhase ticks until the engine leaves its animation and reaches
// phase, up to maxTicks. Returns the ticks taken, or -1.
func (tm *TestMatch) RunUntilPhase(phase MatchPhase, maxTicks int) int {
	for i := 0; i < maxTicks; i++ {
		if tm.Engine.Snapshot().Phase == phase {
			return i
		}
		tm.RunTicks(1)
	}
	if tm.Engine.Snapshot().Phase == phase {
		return maxTicks
	}
	return -1
}

// Start leaves the menu.
func (tm *TestMatch) Start() {
	if tm.State().Phase == PhaseMenu {
		tm.Apply(ConfirmIntent())
	}
}

// AimAt navigates the player's selection to area with move intents.
func (tm *TestMatch) AimAt(area GoalArea) {
	for _, d := range PathFrom(tm.State().SelectedArea, area) {
		tm.Apply(MoveIntent(d))
	}
}

// Kick aims, shoots and waits out the animation.
func (tm *TestMatch) Kick(area GoalArea) {
	tm.AimAt(area)
	tm.Apply(ConfirmIntent())
	tm.RunUntilPhase(PhasePlayerGoalkeeping, tm.cfg.AnimationFrames+2)
}

// Dive picks the player's keeper area, confirms and waits out the AI's kick.
func (tm *TestMatch) Dive(area GoalArea) {
	tm.AimAt(area)
	tm.Apply(ConfirmIntent())
	for i := 0; i <= tm.cfg.AnimationFrames+1; i++ {
		if !tm.State().Phase.Animating() {
			return
		}
		tm.RunTicks(1)
	}
}

// PlayRound plays one full round: the player's kick then the AI's.
func (tm *TestMatch) PlayRound(kick, dive GoalArea) {
	tm.Kick(kick)
	tm.Dive(dive)
}

// Policy picks the player's kick target and dive for a round.
type Policy func(round int) (kick, dive GoalArea)

// FixedPolicy always kicks at kick and dives to dive.
func FixedPolicy(kick, dive GoalArea) Policy {
	return func(int) (GoalArea, GoalArea) { return kick, dive }
}

// RandomPolicy picks uniformly from rng each round.
func RandomPolicy(rng Randomizer) Policy {
	return func(int) (GoalArea, GoalArea) { return RandomArea(rng), RandomArea(rng) }
}

// PlayMatch starts the match and plays every round with policy, leaving the
// engine in PhaseResult.
func (tm *TestMatch) PlayMatch(policy Policy) MatchState {
	tm.Start()
	for tm.State().Phase != PhaseResult {
		round := tm.State().Round
		kick, dive := policy(round)
		tm.PlayRound(kick, dive)
		if tm.State().Round == round && tm.State().Phase != PhaseResult {
			panic(fmt.Sprintf("test match: round %d did not advance (phase=%s)", round, tm.State().Phase))
		}
	}
	return tm.State()
}

// ScriptedRandom is a Randomizer that replays fixed sequences, cycling when
// exhausted. With no rolls it always returns 0.99.
type ScriptedRandom struct {
	ints   []int
	floats []float64
	ni, nf int
}

// NewScriptedRandom builds a ScriptedRandom whose Intn replays the area indices.
func NewScriptedRandom(areas []GoalArea, rolls []float64) *ScriptedRandom {
	ints := make([]int, len(areas))
	for i, a := range areas {
		ints[i] = a.Index()
	}
	return &ScriptedRandom{ints: ints, floats: rolls}
}

// Intn returns the next scripted int, reduced modulo n.
func (sr *ScriptedRandom) Intn(n int) int {
	if len(sr.ints) == 0 || n <= 0 {
		return 0
	}
	v := sr.ints[sr.ni%len(sr.ints)]
	sr.ni++
	return v % n
}

// Float64 returns the next scripted roll.
func (sr *ScriptedRandom) Float64() float64 {
	if len(sr.floats) == 0 {
		return 0.99
	}
	v := sr.floats[sr.nf%len(sr.floats)]
	sr.nf++
	return v
}
