package game

import "fmt"

// gridSize is the number of rows and columns in the goal mouth.
const gridSize = 3

// GoalArea is one cell of the 3×3 goal mouth. Row 0 is the crossbar side,
// column 0 the kicker's left.
type GoalArea struct {
	Row int
	Col int
}

// Named goal areas, in index order.
var (
	TopLeft      = GoalArea{Row: 0, Col: 0}
	TopCenter    = GoalArea{Row: 0, Col: 1}
	TopRight     = GoalArea{Row: 0, Col: 2}
	MiddleLeft   = GoalArea{Row: 1, Col: 0}
	MiddleCenter = GoalArea{Row: 1, Col: 1}
	MiddleRight  = GoalArea{Row: 1, Col: 2}
	BottomLeft   = GoalArea{Row: 2, Col: 0}
	BottomCenter = GoalArea{Row: 2, Col: 1}
	BottomRight  = GoalArea{Row: 2, Col: 2}
)

var areaNames = [gridSize * gridSize]string{
	"TOP_LEFT", "TOP_CENTER", "TOP_RIGHT",
	"MIDDLE_LEFT", "MIDDLE_CENTER", "MIDDLE_RIGHT",
	"BOTTOM_LEFT", "BOTTOM_CENTER", "BOTTOM_RIGHT",
}

// Direction is a navigation step on the goal grid.
type Direction int

const (
	DirUp Direction = iota
	DirDown
	DirLeft
	DirRight
)

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	}
	return fmt.Sprintf("dir(%d)", int(d))
}

// CenterArea returns the cell every aim resets to at the start of a turn.
func CenterArea() GoalArea {
	return MiddleCenter
}

// AreaFromIndex maps row*3+col back to a GoalArea. Out-of-range indices clamp
// to the nearest end of the grid.
func AreaFromIndex(i int) GoalArea {
	if i < 0 {
		i = 0
	}
	if i >= gridSize*gridSize {
		i = gridSize*gridSize - 1
	}
	return GoalArea{Row: i / gridSize, Col: i % gridSize}
}

// RandomArea picks one of the nine cells uniformly.
func RandomArea(rng Randomizer) GoalArea {
	return AreaFromIndex(rng.Intn(gridSize * gridSize))
}

// Index returns row*3+col.
func (a GoalArea) Index() int {
	return a.Row*gridSize + a.Col
}

// Valid reports whether the area lies on the grid.
func (a GoalArea) Valid() bool {
	return a.Row >= 0 && a.Row < gridSize && a.Col >= 0 && a.Col < gridSize
}

// Move steps one cell in dir. Stepping off an edge leaves the area unchanged.
func (a GoalArea) Move(dir Direction) GoalArea {
	next := a
	switch dir {
	case DirUp:
		next.Row--
	case DirDown:
		next.Row++
	case DirLeft:
		next.Col--
	case DirRight:
		next.Col++
	}
	if !next.Valid() {
		return a
	}
	return next
}

func (a GoalArea) String() string {
	if !a.Valid() {
		return fmt.Sprintf("area(%d,%d)", a.Row, a.Col)
	}
	return areaNames[a.Index()]
}

// PathFrom returns the moves that navigate from one area to another,
// vertical steps first.
func PathFrom(from, to GoalArea) []Direction {
	var path []Direction
	for r := from.Row; r > to.Row; r-- {
		path = append(path, DirUp)
	}
	for r := from.Row; r < to.Row; r++ {
		path = append(path, DirDown)
	}
	for c := from.Col; c > to.Col; c-- {
		path = append(path, DirLeft)
	}
	for c := from.Col; c < to.Col; c++ {
		path = append(path, DirRight)
	}
	return path
}
