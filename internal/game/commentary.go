package game

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	commentaryPanelWidth = 240
	commentaryMaxEntries = 24
	commentaryLineHeight = 14
)

// CommentaryEntry is a single line in the commentary panel.
type CommentaryEntry struct {
	Tick    int
	Side    Side
	Message string
}

// Commentary is a ring buffer of match events rendered beside the pitch.
type Commentary struct {
	entries []CommentaryEntry
	head    int
	count   int
	seen    int // MatchLog entries already ingested
}

// NewCommentary creates a commentary buffer with a fixed capacity.
func NewCommentary() *Commentary {
	return &Commentary{
		entries: make([]CommentaryEntry, commentaryMaxEntries),
	}
}

// Add appends an entry.
func (c *Commentary) Add(tick int, side Side, msg string) {
	c.entries[c.head] = CommentaryEntry{Tick: tick, Side: side, Message: msg}
	c.head = (c.head + 1) % commentaryMaxEntries
	if c.count < commentaryMaxEntries {
		c.count++
	}
}

// Ingest turns MatchLog entries recorded since the last call into
// commentary lines.
func (c *Commentary) Ingest(ml *MatchLog) {
	entries := ml.Entries()
	if c.seen > len(entries) {
		c.seen = 0
	}
	for _, e := range entries[c.seen:] {
		if msg, ok := commentaryLine(e); ok {
			c.Add(e.Tick, e.Side, msg)
		}
	}
	c.seen = len(entries)
}

func commentaryLine(e MatchLogEntry) (string, bool) {
	switch e.Event {
	case EventMatchNew:
		return "new match " + shortID(e.Match), true
	case EventKickOutcome:
		return e.Detail, true
	case EventReflexSave:
		return "reflex save! " + e.Detail, true
	case EventMatchResult:
		return e.Detail, true
	}
	return "", false
}

// Recent returns entries in chronological order (oldest first).
func (c *Commentary) Recent() []CommentaryEntry {
	result := make([]CommentaryEntry, c.count)
	for i := 0; i < c.count; i++ {
		idx := (c.head - c.count + i + commentaryMaxEntries) % commentaryMaxEntries
		result[i] = c.entries[idx]
	}
	return result
}

// Draw renders the commentary panel at panelX.
func (c *Commentary) Draw(screen *ebiten.Image, panelX int, panelH int) {
	vector.FillRect(screen, float32(panelX), 0, float32(commentaryPanelWidth), float32(panelH), color.RGBA{R: 8, G: 12, B: 40, A: 248}, false)
	vector.StrokeLine(screen, float32(panelX), 0, float32(panelX), float32(panelH), 1.0, color.RGBA{R: 60, G: 80, B: 160, A: 255}, false)

	vector.FillRect(screen, float32(panelX), 0, float32(commentaryPanelWidth), 16, color.RGBA{R: 16, G: 48, B: 144, A: 255}, false)
	ebitenutil.DebugPrintAt(screen, "COMMENTARY", panelX+8, 0)

	entries := c.Recent()
	maxVisible := (panelH - 24) / commentaryLineHeight
	if len(entries) > maxVisible {
		entries = entries[len(entries)-maxVisible:]
	}

	y := 20
	for _, e := range entries {
		dot := color.RGBA{R: 160, G: 160, B: 160, A: 255}
		switch e.Side {
		case SidePlayer:
			dot = playerBlue
		case SideAI:
			dot = keeperRed
		}
		vector.FillRect(screen, float32(panelX+5), float32(y+4), 3, 6, dot, false)
		ebitenutil.DebugPrintAt(screen, e.Message, panelX+12, y)
		y += commentaryLineHeight
	}
}
