package game

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Palette.
var (
	white       = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	black       = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	pitchGreen  = color.RGBA{R: 16, G: 148, B: 16, A: 255}
	pitchDark   = color.RGBA{R: 8, G: 120, B: 8, A: 255}
	skyBlue     = color.RGBA{R: 96, G: 176, B: 248, A: 255}
	netWhite    = color.RGBA{R: 240, G: 240, B: 240, A: 255}
	goalGray    = color.RGBA{R: 192, G: 192, B: 192, A: 255}
	goalPost    = color.RGBA{R: 224, G: 224, B: 224, A: 255}
	playerBlue  = color.RGBA{R: 48, G: 104, B: 216, A: 255}
	keeperRed   = color.RGBA{R: 216, G: 48, B: 48, A: 255}
	skin        = color.RGBA{R: 248, G: 184, B: 136, A: 255}
	gold        = color.RGBA{R: 248, G: 216, B: 96, A: 255}
	yellow      = color.RGBA{R: 248, G: 216, B: 32, A: 255}
	scoreboard  = color.RGBA{R: 16, G: 16, B: 64, A: 255}
	panelShadow = color.RGBA{R: 0, G: 0, B: 0, A: 200}
)

// Goal mouth geometry in pitch pixels.
const (
	goalW    = 400
	goalH    = 200
	goalX    = (pitchWidth - goalW) / 2
	goalY    = 150
	skyH     = 80
	stripeH  = 40
	spotY    = pitchHeight - 110
	ballSize = 8
)

// areaRect returns the pixel rectangle of a goal cell.
func areaRect(a GoalArea) (x, y, w, h float32) {
	w = float32(goalW) / gridSize
	h = float32(goalH) / gridSize
	return float32(goalX) + float32(a.Col)*w, float32(goalY) + float32(a.Row)*h, w, h
}

// areaCenter returns the pixel centre of a goal cell.
func areaCenter(a GoalArea) (float32, float32) {
	x, y, w, h := areaRect(a)
	return x + w/2, y + h/2
}

// kickProgress maps the animation timer to [0,1].
func kickProgress(timer, frames int) float32 {
	if frames <= 0 {
		return 1
	}
	p := float32(timer) / float32(frames)
	if p > 1 {
		p = 1
	}
	return p
}

// ballPosition interpolates the ball from the penalty spot to target.
func ballPosition(target GoalArea, progress float32) (float32, float32) {
	tx, ty := areaCenter(target)
	sx, sy := float32(pitchWidth)/2, float32(spotY)
	return sx + (tx-sx)*progress, sy + (ty-sy)*progress
}

// blink reports the on half of a period-frame cycle.
func (g *Game) blink(period int) bool {
	return g.frame%period >= period/2
}

func (g *Game) drawField(screen *ebiten.Image) {
	vector.FillRect(screen, 0, 0, pitchWidth, skyH, skyBlue, false)
	for y := skyH; y < pitchHeight; y += stripeH {
		c := pitchGreen
		if (y/stripeH)%2 == 0 {
			c = pitchDark
		}
		vector.FillRect(screen, 0, float32(y), pitchWidth, stripeH, c, false)
	}
	// Six-yard box and penalty spot.
	vector.StrokeRect(screen, goalX-60, goalY+goalH, goalW+120, 70, 2, white, false)
	vector.FillCircle(screen, pitchWidth/2, spotY+ballSize, 3, white, false)
}

func (g *Game) drawGoal(screen *ebiten.Image) {
	vector.FillRect(screen, goalX+10, goalY+5, goalW-20, goalH-10, netWhite, false)
	for x := goalX + 10; x <= goalX+goalW-10; x += 15 {
		vector.StrokeLine(screen, float32(x), goalY+5, float32(x), goalY+goalH-5, 1, goalGray, false)
	}
	for y := goalY + 5; y <= goalY+goalH-5; y += 15 {
		vector.StrokeLine(screen, goalX+10, float32(y), goalX+goalW-10, float32(y), 1, goalGray, false)
	}
	// Posts and crossbar.
	vector.FillRect(screen, goalX-6, goalY-6, 6, goalH+6, goalPost, false)
	vector.FillRect(screen, goalX+goalW, goalY-6, 6, goalH+6, goalPost, false)
	vector.FillRect(screen, goalX-6, goalY-6, goalW+12, 6, goalPost, false)
}

// drawAreaGrid outlines the nine target cells.
func (g *Game) drawAreaGrid(screen *ebiten.Image) {
	faint := color.RGBA{R: 120, G: 120, B: 120, A: 90}
	for i := 0; i < gridSize*gridSize; i++ {
		x, y, w, h := areaRect(AreaFromIndex(i))
		vector.StrokeRect(screen, x, y, w, h, 1, faint, false)
	}
}

func (g *Game) drawCrosshair(screen *ebiten.Image, a GoalArea, c color.Color) {
	x, y, w, h := areaRect(a)
	vector.StrokeRect(screen, x+2, y+2, w-4, h-4, 2, c, false)
	if g.blink(60) {
		cx, cy := areaCenter(a)
		vector.StrokeLine(screen, cx-20, cy, cx+20, cy, 2, c, false)
		vector.StrokeLine(screen, cx, cy-20, cx, cy+20, 2, c, false)
	}
}

func drawFigure(screen *ebiten.Image, x, y float32, kit color.Color) {
	vector.FillRect(screen, x-10, y-8, 20, 26, kit, false)
	vector.FillCircle(screen, x, y-16, 8, skin, false)
	vector.FillRect(screen, x-9, y+18, 7, 12, black, false)
	vector.FillRect(screen, x+2, y+18, 7, 12, black, false)
}

func drawBall(screen *ebiten.Image, x, y float32) {
	vector.FillCircle(screen, x, y, ballSize, white, false)
	vector.StrokeCircle(screen, x, y, ballSize, 1, black, false)
}

func (g *Game) drawBallFlight(screen *ebiten.Image, target GoalArea, progress float32) {
	for i := 1; i < 8; i++ {
		tp := progress - float32(i)*0.1
		if tp <= 0 {
			break
		}
		tx, ty := ballPosition(target, tp)
		vector.FillCircle(screen, tx, ty, 2, white, false)
	}
	bx, by := ballPosition(target, progress)
	drawBall(screen, bx, by)
}

func (g *Game) drawTurnBanner(screen *ebiten.Image, label string, c color.Color) {
	vector.FillRect(screen, pitchWidth-310, 10, 300, 40, black, false)
	vector.StrokeRect(screen, pitchWidth-310, 10, 300, 40, 2, white, false)
	g.drawText(screen, label, pitchWidth-160, 30, 1.5, c)
}

func (g *Game) drawKickingView(screen *ebiten.Image, st MatchState) {
	g.drawField(screen)
	g.drawGoal(screen)
	g.drawAreaGrid(screen)

	if st.Phase == PhasePlayerKicking {
		g.drawTurnBanner(screen, "YOUR TURN - KICKER", playerBlue)
		g.drawCrosshair(screen, st.SelectedArea, yellow)
		cx, cy := areaCenter(CenterArea())
		drawFigure(screen, cx, cy, keeperRed)
		drawBall(screen, pitchWidth/2, spotY)
		return
	}

	g.drawTurnBanner(screen, "YOUR SHOT - AI KEEPER", playerBlue)
	kx, ky := areaCenter(st.KeeperArea())
	drawFigure(screen, kx, ky, keeperRed)
	g.drawBallFlight(screen, st.KickerArea(), kickProgress(st.AnimationTimer, g.engine.Config().AnimationFrames))
	if st.ReflexSaveAnnounced {
		g.drawReflexBanner(screen)
	}
}

func (g *Game) drawKeepingView(screen *ebiten.Image, st MatchState) {
	g.drawField(screen)
	g.drawGoal(screen)
	g.drawAreaGrid(screen)

	if st.Phase == PhasePlayerGoalkeeping {
		g.drawTurnBanner(screen, "YOUR TURN - KEEPER", playerBlue)
		g.drawCrosshair(screen, st.SelectedArea, playerBlue)
		cx, cy := areaCenter(CenterArea())
		drawFigure(screen, cx, cy, playerBlue)
		drawFigure(screen, pitchWidth/2-30, spotY+20, keeperRed)
		drawBall(screen, pitchWidth/2, spotY)
		return
	}

	g.drawTurnBanner(screen, "AI SHOT - YOU KEEP", keeperRed)
	progress := kickProgress(st.AnimationTimer, g.engine.Config().AnimationFrames)
	kx, ky := areaCenter(st.KeeperArea())
	if g.blink(30) {
		vector.StrokeCircle(screen, kx, ky, 20, 2, yellow, false)
	}
	drawFigure(screen, kx, ky, playerBlue)
	g.drawBallFlight(screen, st.KickerArea(), progress)
	if st.ReflexSaveAnnounced {
		g.drawReflexBanner(screen)
	}
}

// drawReflexBanner flashes the reflex-save call-out.
func (g *Game) drawReflexBanner(screen *ebiten.Image) {
	const w, h = 400, 80
	x := float32(pitchWidth-w) / 2
	y := float32(pitchHeight-h) / 2
	vector.FillRect(screen, x, y, w, h, black, false)
	vector.StrokeRect(screen, x, y, w, h, 4, gold, false)
	c := yellow
	if g.blink(18) {
		c = color.RGBA{R: 232, G: 32, B: 32, A: 255}
	}
	g.drawText(screen, "SA N KA KU TO BI !!!", pitchWidth/2, float64(y)+h/2, 2.5, c)
}

func (g *Game) drawScoreboard(screen *ebiten.Image, st MatchState) {
	vector.FillRect(screen, 10, 10, 300, 60, black, false)
	vector.StrokeRect(screen, 10, 10, 300, 60, 1, white, false)
	rows := []struct {
		label   string
		results [MatchRounds]RoundOutcome
		score   int
		y       int
	}{
		{"PLAYER", st.PlayerResults, st.PlayerScore, 18},
		{"AI", st.AiResults, st.AiScore, 44},
	}
	for _, r := range rows {
		ebitenutil.DebugPrintAt(screen, r.label, 20, r.y)
		for i, res := range r.results {
			if res == OutcomePending {
				continue
			}
			ebitenutil.DebugPrintAt(screen, res.Mark(), 80+i*25, r.y)
		}
		ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%d", r.score), 280, r.y)
	}
	round := st.Round
	if round > MatchRounds {
		round = MatchRounds
	}
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("ROUND %d/%d", round, MatchRounds), 20, 74)
}

func (g *Game) drawMessageBox(screen *ebiten.Image, msg string) {
	const w, h = 300, 60
	x := float32(pitchWidth-w) / 2
	const y = 80
	border := keeperRed
	if msg == MsgPlayerGoal || msg == MsgAiGoal {
		border = playerBlue
	}
	vector.FillRect(screen, x, y, w, h, black, false)
	vector.StrokeRect(screen, x, y, w, h, 2, border, false)
	c := white
	if g.blink(24) {
		c = yellow
	}
	g.drawText(screen, msg, pitchWidth/2, y+h/2, 2, c)
}

func (g *Game) drawMenu(screen *ebiten.Image) {
	g.drawField(screen)
	g.drawGoal(screen)

	const pw, ph = 600, 320
	px := float32(pitchWidth-pw) / 2
	py := float32(pitchHeight-ph) / 2
	vector.FillRect(screen, px, py, pw, ph, scoreboard, false)
	vector.StrokeRect(screen, px-2, py-2, pw+4, ph+4, 2, white, false)
	vector.StrokeRect(screen, px-6, py-6, pw+12, ph+12, 2, yellow, false)

	vector.FillRect(screen, px+50, py+30, pw-100, 80, black, false)
	g.drawText(screen, "PENALTY KICK", pitchWidth/2, float64(py)+70, 4, white)

	c := white
	if g.blink(48) {
		c = yellow
	}
	g.drawText(screen, "PRESS SPACE TO START", pitchWidth/2, float64(py)+170, 2, c)
	g.drawText(screen, "ARROWS/WASD aim or dive  SPACE confirm  ESC quit", pitchWidth/2, float64(py)+230, 1, white)

	drawFigure(screen, px+100, py+ph-80, playerBlue)
	drawFigure(screen, px+pw-100, py+ph-80, keeperRed)
}

func (g *Game) drawResult(screen *ebiten.Image, st MatchState) {
	g.drawField(screen)
	g.drawGoal(screen)

	const pw, ph = 600, 400
	px := float32(pitchWidth-pw) / 2
	py := float32(pitchHeight-ph) / 2
	vector.FillRect(screen, px, py, pw, ph, black, false)
	vector.StrokeRect(screen, px, py, pw, ph, 2, white, false)

	verdict := st.Verdict()
	banner := yellow
	switch verdict {
	case VerdictPlayerWins:
		banner = playerBlue
	case VerdictAiWins:
		banner = keeperRed
	}
	vector.FillRect(screen, px, py, pw, 80, banner, false)
	g.drawText(screen, verdict.Label(), pitchWidth/2, float64(py)+40, 4, white)

	sy := py + 230
	vector.FillRect(screen, px+100, sy, pw-200, 60, scoreboard, false)
	vector.StrokeRect(screen, px+100, sy, pw-200, 60, 2, white, false)
	g.drawText(screen, fmt.Sprintf("PLAYER  %d  VS  %d  AI", st.PlayerScore, st.AiScore), pitchWidth/2, float64(sy)+30, 2.5, yellow)

	ebitenutil.DebugPrintAt(screen, "PLAYER "+marks(st.PlayerResults), int(px)+220, int(py)+110)
	ebitenutil.DebugPrintAt(screen, "AI     "+marks(st.AiResults), int(px)+220, int(py)+130)

	c := white
	if g.blink(48) {
		c = yellow
	}
	g.drawText(screen, "PRESS SPACE TO CONTINUE   C = COPY RESULT", pitchWidth/2, float64(py+ph)-40, 1.5, c)
}

func (g *Game) drawStatus(screen *ebiten.Image) {
	vector.FillRect(screen, 0, pitchHeight-18, pitchWidth, 18, panelShadow, false)
	ebitenutil.DebugPrintAt(screen, g.status, 6, pitchHeight-17)
}

// drawText draws s centred on (cx, cy) with the bitmap face scaled up.
func (g *Game) drawText(screen *ebiten.Image, s string, cx, cy, scale float64, c color.Color) {
	w, h := text.Measure(s, g.bannerFace, 0)
	op := &text.DrawOptions{}
	op.GeoM.Translate(-w/2, -h/2)
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(cx, cy)
	op.ColorScale.ScaleWithColor(c)
	text.Draw(screen, s, g.bannerFace, op)
}
