package carshow

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// ShadowPlane is the baked ground-shadow texture drawn flat under the car.
type ShadowPlane struct {
	tex     *ebiten.Image
	halfW   float64
	halfL   float64
	opacity float32
}

// NewShadowPlane loads the baked shadow image. width and length are the
// world-space extents of the quad.
func NewShadowPlane(path string, width, length float64) (*ShadowPlane, error) {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("could not load shadow texture %s: %w", path, err)
	}
	return &ShadowPlane{
		tex:     img,
		halfW:   width / 2,
		halfL:   length / 2,
		opacity: 0.75,
	}, nil
}

func (sp *ShadowPlane) Paint(screen *ebiten.Image, vp *Viewport, view *Matrix) {
	// Quad corners on the ground, slightly above y=0 to sit over the grid.
	const lift = 0.001
	corners := [4][3]float64{
		{-sp.halfW, lift, -sp.halfL},
		{sp.halfW, lift, -sp.halfL},
		{sp.halfW, lift, sp.halfL},
		{-sp.halfW, lift, sp.halfL},
	}

	var xp, yp [4]float32
	for i, c := range corners {
		cx, cy, cz := view.TransformPoint(c[0], c[1], c[2])
		if cz < vp.Near {
			// A corner behind the near plane only happens when the camera
			// dives to ground level; skip the quad rather than clip it.
			return
		}
		xp[i] = float32(vp.ScreenX(cx, cz))
		yp[i] = float32(vp.ScreenY(cy, cz))
	}

	drawTexturedQuad(screen, sp.tex, xp, yp, sp.opacity)
}
