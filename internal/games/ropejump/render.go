package ropejump

import (
	"fmt"

	"github.com/vovakirdan/tui-ropejump/internal/core"
)

// Visual characters for rendering
const (
	GroundChar = '▀'
	HeadChar   = 'O'
	BodyChar   = '|'
	ArmChar    = '·'
	HandChar   = '*'
	LegLeft    = '/'
	LegRight   = '\\'
	RopeChar   = '~'
	DustChar   = '.'
	SparkChar  = '+'
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	vp := g.viewport(dst)

	_, groundY := vp.ToScreen(core.Vec2{Y: g.cfg.Character.RestingBottomY})
	for x := 0; x < dst.Width(); x++ {
		dst.SetColored(x, groundY+1, GroundChar, core.ColorGreen)
	}

	// A descending rope passes in front of the character, otherwise behind
	descending := g.session.Rope().State() == SweepDescending
	if !descending {
		g.drawRope(dst, vp)
	}
	g.drawCharacter(dst, vp)
	if descending {
		g.drawRope(dst, vp)
	}

	g.drawParticles(dst, vp)
	g.drawHUD(dst)

	if g.paused {
		drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}

	if g.session.Over() {
		drawCenteredMessage(dst, "GAME OVER", fmt.Sprintf("Score: %d  |  Press R to restart", g.session.Score()))
	}
}

// viewport maps the virtual world onto the screen buffer.
func (g *Game) viewport(dst *core.Screen) core.Viewport {
	return core.Viewport{
		WorldW:  g.cfg.World.Width,
		WorldH:  g.cfg.World.Height,
		ScreenW: dst.Width(),
		ScreenH: dst.Height(),
	}
}

// drawCharacter renders the stick figure and the arms reaching for the hands.
func (g *Game) drawCharacter(dst *core.Screen, vp core.Viewport) {
	rig := g.session.Rig()
	feet := rig.Position()
	h := rig.Height()

	head := core.Vec2{X: feet.X, Y: feet.Y - h*0.9}
	neck := core.Vec2{X: feet.X, Y: feet.Y - h*0.75}
	shoulder := core.Vec2{X: feet.X, Y: feet.Y - h + g.cfg.Character.ShoulderDrop}
	hip := core.Vec2{X: feet.X, Y: feet.Y - h*0.4}

	spread := h * 0.2
	if rig.IsJumping() {
		spread = h * 0.1 // Legs tucked
	}

	color := core.ColorBrightWhite
	if g.session.Over() {
		color = core.ColorRed
	}

	line(dst, vp, neck, hip, BodyChar, color)
	line(dst, vp, hip, core.Vec2{X: feet.X - spread, Y: feet.Y}, LegLeft, color)
	line(dst, vp, hip, core.Vec2{X: feet.X + spread, Y: feet.Y}, LegRight, color)

	left, right := rig.Hands()
	line(dst, vp, shoulder, left, ArmChar, color)
	line(dst, vp, shoulder, right, ArmChar, color)

	x, y := vp.ToScreen(head)
	dst.SetColored(x, y, HeadChar, color)

	for _, hand := range []core.Vec2{left, right} {
		x, y := vp.ToScreen(hand)
		dst.SetColored(x, y, HandChar, core.ColorYellow)
	}
}

// drawRope renders the rope polyline as connected line segments.
func (g *Game) drawRope(dst *core.Screen, vp core.Viewport) {
	color := core.ColorCyan
	if g.session.Rope().State() == SweepDescending {
		color = core.ColorBrightRed
	}

	points := g.session.Rope().Geometry()
	for i := 1; i < len(points); i++ {
		line(dst, vp, points[i-1], points[i], RopeChar, color)
	}
}

func (g *Game) drawParticles(dst *core.Screen, vp core.Viewport) {
	for _, p := range g.particles.Particles() {
		r := DustChar
		if p.Color != core.ColorBrown {
			r = SparkChar
		}
		x, y := vp.ToScreen(p.Position)
		dst.SetColored(x, y, r, p.Color)
	}
}

// drawHUD renders score, sweep and rope speed on the top row.
func (g *Game) drawHUD(dst *core.Screen) {
	scoreText := fmt.Sprintf(" Score: %d ", g.session.Score())
	dst.DrawTextColored(2, 0, scoreText, core.ColorBrightWhite)

	rope := g.session.Rope()
	status := fmt.Sprintf(" %s %s ", sweepArrow(rope.State()), rope.State())
	if g.session.Difficulty().IsEnabled() {
		status += fmt.Sprintf("Spd: %.3f ", rope.Velocity())
	}
	dst.DrawTextColored(dst.Width()-len([]rune(status))-2, 0, status, core.ColorGray)
}

// sweepArrow returns a glyph showing where the rope is heading.
func sweepArrow(s SweepState) string {
	switch s {
	case SweepDescending:
		return "▼"
	case SweepAscending:
		return "▲"
	case SweepBelowFeet:
		return "_"
	default:
		return "‾"
	}
}

// line draws a world-space segment.
func line(dst *core.Screen, vp core.Viewport, a, b core.Vec2, r rune, c core.Color) {
	x0, y0 := vp.ToScreen(a)
	x1, y1 := vp.ToScreen(b)
	dst.DrawLine(x0, y0, x1, y1, r, c)
}

// drawCenteredMessage draws a message box in the center of the screen.
func drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	// Calculate box dimensions
	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	// Draw box
	dst.DrawRect(core.NewRect(boxX, boxY, boxW, boxH), ' ')
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH))

	// Draw text
	titleX := boxX + (boxW-len(title))/2
	dst.DrawText(titleX, boxY+1, title)

	subtitleX := boxX + (boxW-len(subtitle))/2
	dst.DrawText(subtitleX, boxY+3, subtitle)
}
