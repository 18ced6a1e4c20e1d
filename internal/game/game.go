package game

import (
	"math/rand"
	"time"

	"github.com/atotto/clipboard"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"
)

const (
	pitchWidth  = 800
	pitchHeight = 600
)

// statusFrames is how long a transient status line stays on screen.
const statusFrames = 120

// Game adapts a MatchEngine to ebiten.Game. It only turns key presses into
// intents, ticks the engine and draws snapshots; all match rules live in
// MatchEngine.
type Game struct {
	engine     *MatchEngine
	commentary *Commentary
	width      int
	height     int
	frame      int // drives blinking text

	status      string
	statusTimer int

	bannerFace *text.GoXFace
	copyText   func(string) error
}

// New creates a game in the menu. A zero seed seeds from the clock.
func New(cfg Config, seed int64) (*Game, error) {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed)) // #nosec G404 -- game only
	eng, err := NewMatchEngine(cfg, rng)
	if err != nil {
		return nil, err
	}
	g := &Game{
		engine:     eng,
		commentary: NewCommentary(),
		width:      pitchWidth + commentaryPanelWidth,
		height:     pitchHeight,
		bannerFace: text.NewGoXFace(basicfont.Face7x13),
		copyText:   clipboard.WriteAll,
	}
	g.commentary.Ingest(eng.Log())
	return g, nil
}

func (g *Game) Update() error {
	g.frame++
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		return ebiten.Termination
	}

	if in, ok := pollIntent(); ok {
		g.engine.ApplyIntent(in)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		g.copySummary()
	}
	g.engine.AdvanceTick()
	g.commentary.Ingest(g.engine.Log())

	if g.statusTimer > 0 {
		g.statusTimer--
		if g.statusTimer == 0 {
			g.status = ""
		}
	}
	return nil
}

// copySummary puts the finished match's scoreline on the clipboard.
func (g *Game) copySummary() {
	st := g.engine.Snapshot()
	if st.Phase != PhaseResult {
		return
	}
	line := st.Verdict().Label() + "  " + st.Summary()
	if err := g.copyText(line); err != nil {
		g.setStatus("clipboard unavailable: " + err.Error())
		g.commentary.Add(g.frame, SideNone, "clipboard error")
		return
	}
	g.setStatus("copied: " + line)
}

func (g *Game) setStatus(msg string) {
	g.status = msg
	g.statusTimer = statusFrames
}

func (g *Game) Draw(screen *ebiten.Image) {
	st := g.engine.Snapshot()
	switch st.Phase {
	case PhaseMenu:
		g.drawMenu(screen)
	case PhasePlayerKicking, PhaseAiGoalkeeping:
		g.drawKickingView(screen, st)
	case PhasePlayerGoalkeeping, PhaseAiKicking:
		g.drawKeepingView(screen, st)
	case PhaseResult:
		g.drawResult(screen, st)
	}

	if st.Phase != PhaseMenu && st.Phase != PhaseResult {
		g.drawScoreboard(screen, st)
	}
	if st.LastResultMessage != "" && st.Phase != PhaseMenu {
		g.drawMessageBox(screen, st.LastResultMessage)
	}
	if g.status != "" {
		g.drawStatus(screen)
	}
	g.commentary.Draw(screen, pitchWidth, g.height)
}

func (g *Game) Layout(_, _ int) (int, int) {
	return g.width, g.height
}
