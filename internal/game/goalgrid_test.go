package game

import (
	"math/rand"
	"testing"
)

func allAreas() []GoalArea {
	out := make([]GoalArea, 0, gridSize*gridSize)
	for i := 0; i < gridSize*gridSize; i++ {
		out = append(out, AreaFromIndex(i))
	}
	return out
}

func TestMove_ClampsAtEdges(t *testing.T) {
	for _, a := range allAreas() {
		if a.Row == 0 && a.Move(DirUp) != a {
			t.Fatalf("%s: moving up off the crossbar should be a no-op, got %s", a, a.Move(DirUp))
		}
		if a.Row == 2 && a.Move(DirDown) != a {
			t.Fatalf("%s: moving down off the grid should be a no-op, got %s", a, a.Move(DirDown))
		}
		if a.Col == 0 && a.Move(DirLeft) != a {
			t.Fatalf("%s: moving left off the grid should be a no-op, got %s", a, a.Move(DirLeft))
		}
		if a.Col == 2 && a.Move(DirRight) != a {
			t.Fatalf("%s: moving right off the grid should be a no-op, got %s", a, a.Move(DirRight))
		}
	}
}

func TestMove_InteriorSteps(t *testing.T) {
	c := CenterArea()
	cases := map[Direction]GoalArea{
		DirUp:    TopCenter,
		DirDown:  BottomCenter,
		DirLeft:  MiddleLeft,
		DirRight: MiddleRight,
	}
	for dir, want := range cases {
		if got := c.Move(dir); got != want {
			t.Fatalf("centre %s: expected %s, got %s", dir, want, got)
		}
	}
	if got := TopLeft.Move(DirRight).Move(DirDown); got != MiddleCenter {
		t.Fatalf("expected TOP_LEFT right+down to reach MIDDLE_CENTER, got %s", got)
	}
}

func TestMove_NeverLeavesGrid(t *testing.T) {
	rng := rand.New(rand.NewSource(3))
	a := CenterArea()
	for i := 0; i < 500; i++ {
		a = a.Move(Direction(rng.Intn(4)))
		if !a.Valid() {
			t.Fatalf("step %d: area left the grid: %+v", i, a)
		}
	}
}

func TestCenterArea(t *testing.T) {
	c := CenterArea()
	if c.Row != 1 || c.Col != 1 {
		t.Fatalf("expected centre at (1,1), got (%d,%d)", c.Row, c.Col)
	}
	if c.Index() != 4 {
		t.Fatalf("expected centre index 4, got %d", c.Index())
	}
}

func TestAreaFromIndex_MatchesNamedAreas(t *testing.T) {
	named := []GoalArea{
		TopLeft, TopCenter, TopRight,
		MiddleLeft, MiddleCenter, MiddleRight,
		BottomLeft, BottomCenter, BottomRight,
	}
	for i, want := range named {
		if got := AreaFromIndex(i); got != want {
			t.Fatalf("index %d: expected %s, got %s", i, want, got)
		}
	}
	if AreaFromIndex(-3) != TopLeft || AreaFromIndex(42) != BottomRight {
		t.Fatal("out-of-range indices should clamp to the grid ends")
	}
}

func TestRandomArea_CoversAllCells(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	seen := map[GoalArea]int{}
	for i := 0; i < 900; i++ {
		a := RandomArea(rng)
		if !a.Valid() {
			t.Fatalf("random area off grid: %+v", a)
		}
		seen[a]++
	}
	if len(seen) != gridSize*gridSize {
		t.Fatalf("expected all 9 cells drawn, got %d", len(seen))
	}
	for a, n := range seen {
		if n < 50 {
			t.Fatalf("cell %s drawn only %d/900 times; expected roughly uniform", a, n)
		}
	}
}

func TestPathFrom_ReachesTarget(t *testing.T) {
	for _, from := range allAreas() {
		for _, to := range allAreas() {
			a := from
			for _, d := range PathFrom(from, to) {
				a = a.Move(d)
			}
			if a != to {
				t.Fatalf("path %s -> %s ended at %s", from, to, a)
			}
		}
	}
}

func TestGoalArea_String(t *testing.T) {
	if TopLeft.String() != "TOP_LEFT" || BottomRight.String() != "BOTTOM_RIGHT" {
		t.Fatalf("unexpected names: %s %s", TopLeft, BottomRight)
	}
	if got := (GoalArea{Row: 5, Col: 1}).String(); got != "area(5,1)" {
		t.Fatalf("expected off-grid formatting, got %s", got)
	}
}
