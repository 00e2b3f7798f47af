package tui

import (
	"math"
	"strings"

	"github.com/vovakirdan/tui-flappy/internal/core"
	"github.com/vovakirdan/tui-flappy/internal/effects"
	"github.com/vovakirdan/tui-flappy/internal/game"
)

// Visual characters for rendering
const (
	particleLarge = '●'
	particleSmall = '•'
	particleDot   = '·'
	capChar       = '▀'
)

var (
	colorCap  = core.ColorObstacle.Blend(core.RGB{}, 0.35)
	colorText = core.ColorWhite
)

// projection maps world coordinates (origin at center, +Y up) to cells,
// with the camera displaced by the shake offset.
type projection struct {
	cols, rows int
	vp         game.Viewport
	off        core.Vec2
}

func (p projection) col(wx float64) int {
	return int(math.Floor((wx - p.off.X + p.vp.HalfWidth()) / p.vp.Width * float64(p.cols)))
}

func (p projection) row(wy float64) int {
	return int(math.Floor((p.vp.HalfHeight() - wy + p.off.Y) / p.vp.Height * float64(p.rows)))
}

// rect returns the half-open cell rectangle covering b. Boxes smaller
// than a cell still cover one cell.
func (p projection) rect(b core.Box) (x0, y0, x1, y1 int) {
	x0, x1 = p.col(b.Left()), p.col(b.Right())
	y0, y1 = p.row(b.Top()), p.row(b.Bottom())
	if x1 <= x0 {
		x1 = x0 + 1
	}
	if y1 <= y0 {
		y1 = y0 + 1
	}
	return x0, y0, x1, y1
}

// Paint draws a snapshot onto dst, replacing its contents.
func Paint(dst *core.Screen, snap game.Snapshot) {
	dst.SetBackground(core.ColorSky)
	dst.Clear()
	if dst.Width() == 0 || dst.Height() == 0 || snap.Viewport.Width <= 0 || snap.Viewport.Height <= 0 {
		return
	}

	p := projection{cols: dst.Width(), rows: dst.Height(), vp: snap.Viewport, off: snap.ShakeOffset}
	vp := snap.Viewport

	// Ground, wide enough that shake never exposes its ends
	ground := core.NewBox(0, -vp.HalfHeight()+snap.FloorHeight/2, vp.Width*2, snap.FloorHeight)
	x0, y0, x1, y1 := p.rect(ground)
	dst.FillBG(x0, y0, x1, y1, core.ColorGround)

	for _, o := range snap.Obstacles {
		paintObstacle(dst, p, o)
	}

	for _, pt := range snap.Particles {
		paintParticle(dst, p, pt)
	}

	if snap.HasActor {
		paintActor(dst, p, snap.Actor)
	}

	for _, st := range snap.EdgeStrips {
		x0, y0, x1, y1 := p.rect(st.Rect)
		tintRect(dst, x0, y0, x1, y1, st.Color, st.Alpha)
	}

	if snap.Flash.Alpha > 0 {
		tintRect(dst, 0, 0, dst.Width(), dst.Height(), snap.Flash.Color, snap.Flash.Alpha)
	}

	paintHUD(dst, snap)
}

func paintObstacle(dst *core.Screen, p projection, o game.Obstacle) {
	x0, y0, x1, y1 := p.rect(o.Box())
	dst.FillBG(x0, y0, x1, y1, core.ColorObstacle)

	// Cap on the edge facing the gap
	capY := y1 - 1
	if o.Role == game.RoleBottom {
		capY = y0
	}
	for x := x0; x < x1; x++ {
		dst.Set(x, capY, capChar, colorCap)
	}
}

func paintParticle(dst *core.Screen, p projection, pt game.ParticleView) {
	if pt.Size <= 0 {
		return
	}
	r := particleDot
	switch {
	case pt.Size >= 8:
		r = particleLarge
	case pt.Size >= 4 || pt.Kind == effects.ParticleDeath:
		r = particleSmall
	}
	dst.Set(p.col(pt.Pos.X), p.row(pt.Pos.Y), r, pt.Color)
}

func paintActor(dst *core.Screen, p projection, a game.ActorView) {
	box := core.Box{Center: a.Pos, W: a.Size * a.Scale.X, H: a.Size * a.Scale.Y}
	x0, y0, x1, y1 := p.rect(box)
	dst.FillBG(x0, y0, x1, y1, core.ColorActor)

	// Beak on the leading column shows the tilt
	beak := '→'
	switch {
	case a.Rotation > 0.15:
		beak = '↗'
	case a.Rotation < -0.3:
		beak = '↘'
	}
	dst.Set(x1-1, (y0+y1-1)/2, beak, core.RGB{})
}

func paintHUD(dst *core.Screen, snap game.Snapshot) {
	score := snap.ScoreText
	if snap.ScoreScale > 1.05 {
		score = "» " + score + " «"
	}
	if snap.Mode != game.ModeMenu {
		dst.DrawTextCentered(1, score, colorText)
	}

	if snap.Instruction == "" {
		return
	}
	lines := strings.Split(snap.Instruction, "\n")
	top := dst.Height()/2 - len(lines)/2
	for i, line := range lines {
		dst.DrawTextCentered(top+i, line, colorText)
	}
}

func tintRect(dst *core.Screen, x0, y0, x1, y1 int, c core.RGB, alpha float64) {
	for y := max(y0, 0); y < min(y1, dst.Height()); y++ {
		for x := max(x0, 0); x < min(x1, dst.Width()); x++ {
			dst.Tint(x, y, c, alpha)
		}
	}
}
