package carshow

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Grid is the ground helper: evenly spaced lines on the y=0 plane. Its Z
// offset scrolls each frame to fake the car driving forward; the offset
// wraps at one cell so the motion is seamless.
type Grid struct {
	Size      float64
	Divisions int

	lineColor color.RGBA
	offset    float64
}

func NewGrid(size float64, divisions int) *Grid {
	return &Grid{
		Size:      size,
		Divisions: divisions,
		lineColor: color.RGBA{R: 0x60, G: 0x60, B: 0x60, A: 255},
	}
}

func (g *Grid) Step() float64 {
	if g.Divisions <= 0 {
		return g.Size
	}
	return g.Size / float64(g.Divisions)
}

// Scroll moves the grid to the given absolute travel distance. Only the
// fractional cell remainder is kept.
func (g *Grid) Scroll(travel float64) {
	step := g.Step()
	if step <= 0 {
		return
	}
	g.offset = math.Mod(travel, step)
	if g.offset < 0 {
		g.offset += step
	}
}

func (g *Grid) Offset() float64 { return g.offset }

func (g *Grid) Paint(screen *ebiten.Image, vp *Viewport, view *Matrix, sh *Shading) {
	half := g.Size / 2
	step := g.Step()
	if step <= 0 {
		return
	}

	// Lines running along X, scrolled in Z.
	for z := -half + g.offset; z <= half+1e-9; z += step {
		g.paintLine(screen, vp, view, sh, -half, 0, z, half, 0, z)
	}
	// Lines running along Z stay put; the scroll only moves the crossings.
	for x := -half; x <= half+1e-9; x += step {
		g.paintLine(screen, vp, view, sh, x, 0, -half, x, 0, half)
	}
}

func (g *Grid) paintLine(screen *ebiten.Image, vp *Viewport, view *Matrix, sh *Shading, x1, y1, z1, x2, y2, z2 float64) {
	cx1, cy1, cz1 := view.TransformPoint(x1, y1, z1)
	cx2, cy2, cz2 := view.TransformPoint(x2, y2, z2)

	// Clip to the near plane in camera space.
	if cz1 < vp.Near && cz2 < vp.Near {
		return
	}
	if cz1 < vp.Near || cz2 < vp.Near {
		t := (vp.Near - cz1) / (cz2 - cz1)
		ix := cx1 + (cx2-cx1)*t
		iy := cy1 + (cy2-cy1)*t
		if cz1 < vp.Near {
			cx1, cy1, cz1 = ix, iy, vp.Near
		} else {
			cx2, cy2, cz2 = ix, iy, vp.Near
		}
	}

	col := g.lineColor
	if sh != nil {
		// Fade with fog at the line's midpoint depth.
		f := sh.fogAmount((cz1 + cz2) / 2)
		col = color.RGBA{
			R: uint8(float64(col.R)*(1-f) + float64(sh.FogColor.R)*f),
			G: uint8(float64(col.G)*(1-f) + float64(sh.FogColor.G)*f),
			B: uint8(float64(col.B)*(1-f) + float64(sh.FogColor.B)*f),
			A: 255,
		}
	}

	DrawLine(screen,
		float32(vp.ScreenX(cx1, cz1)), float32(vp.ScreenY(cy1, cz1)),
		float32(vp.ScreenX(cx2, cz2)), float32(vp.ScreenY(cy2, cz2)),
		1, col)
}
