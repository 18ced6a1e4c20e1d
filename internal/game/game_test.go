package game

import (
	"errors"
	"strings"
	"testing"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(DefaultConfig(), 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return g
}

func TestNew_RejectsInvalidConfig(t *testing.T) {
	if _, err := New(Config{AnimationFrames: -5}, 1); !errors.Is(err, ErrInvalidConfig) {
		t.Fatalf("expected ErrInvalidConfig, got %v", err)
	}
}

func TestLayout_IncludesCommentaryPanel(t *testing.T) {
	g := newTestGame(t)
	w, h := g.Layout(0, 0)
	if w != pitchWidth+commentaryPanelWidth || h != pitchHeight {
		t.Fatalf("unexpected layout %dx%d", w, h)
	}
}

func TestCopySummary_OnlyOnResult(t *testing.T) {
	g := newTestGame(t)
	var copied []string
	g.copyText = func(s string) error {
		copied = append(copied, s)
		return nil
	}

	g.copySummary()
	if len(copied) != 0 {
		t.Fatalf("nothing should be copied before the result, got %v", copied)
	}

	for g.engine.Snapshot().Phase != PhaseResult {
		g.engine.ApplyIntent(ConfirmIntent())
		for g.engine.Snapshot().Phase.Animating() {
			g.engine.AdvanceTick()
		}
	}
	g.copySummary()
	if len(copied) != 1 {
		t.Fatalf("expected one copy, got %v", copied)
	}
	st := g.engine.Snapshot()
	if !strings.HasPrefix(copied[0], st.Verdict().Label()) || !strings.HasSuffix(copied[0], st.Summary()) {
		t.Fatalf("unexpected clipboard text %q", copied[0])
	}
	if !strings.HasPrefix(g.status, "copied:") || g.statusTimer != statusFrames {
		t.Fatalf("expected a copied status, got %q (%d)", g.status, g.statusTimer)
	}
}

func TestCopySummary_ReportsClipboardError(t *testing.T) {
	g := newTestGame(t)
	g.copyText = func(string) error { return errors.New("no display") }
	for g.engine.Snapshot().Phase != PhaseResult {
		g.engine.ApplyIntent(ConfirmIntent())
		for g.engine.Snapshot().Phase.Animating() {
			g.engine.AdvanceTick()
		}
	}
	g.copySummary()
	if !strings.Contains(g.status, "no display") {
		t.Fatalf("expected the error in the status line, got %q", g.status)
	}
	recent := g.commentary.Recent()
	if recent[len(recent)-1].Message != "clipboard error" {
		t.Fatalf("expected a commentary line, got %+v", recent[len(recent)-1])
	}
}

func TestGeometry_AreaCentresInsideGoal(t *testing.T) {
	for i := 0; i < gridSize*gridSize; i++ {
		a := AreaFromIndex(i)
		cx, cy := areaCenter(a)
		if cx <= goalX || cx >= goalX+goalW || cy <= goalY || cy >= goalY+goalH {
			t.Fatalf("%s centre (%.1f,%.1f) outside the goal", a, cx, cy)
		}
	}
	lx, _ := areaCenter(MiddleLeft)
	rx, _ := areaCenter(MiddleRight)
	_, ty := areaCenter(TopCenter)
	_, by := areaCenter(BottomCenter)
	if lx >= rx || ty >= by {
		t.Fatal("left/right or top/bottom cells are mirrored")
	}
}

func TestGeometry_BallFlight(t *testing.T) {
	sx, sy := ballPosition(TopLeft, 0)
	if sx != pitchWidth/2 || sy != spotY {
		t.Fatalf("ball should start on the spot, got (%.1f,%.1f)", sx, sy)
	}
	ex, ey := ballPosition(TopLeft, 1)
	tx, ty := areaCenter(TopLeft)
	if ex != tx || ey != ty {
		t.Fatalf("ball should end on the target centre, got (%.1f,%.1f)", ex, ey)
	}
	if p := kickProgress(120, 60); p != 1 {
		t.Fatalf("progress should clamp to 1, got %.2f", p)
	}
	if p := kickProgress(30, 60); p != 0.5 {
		t.Fatalf("expected half progress, got %.2f", p)
	}
	if p := kickProgress(0, 0); p != 1 {
		t.Fatalf("zero-length animation should be complete, got %.2f", p)
	}
}
