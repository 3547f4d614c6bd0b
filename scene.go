package carshow

import (
	"image/color"
	"math"
	"sort"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scene owns everything that gets painted: background, fog and environment
// light, the draw-first ground pieces (grid, baked shadow), and the objects
// with their world positions. Objects are painted far-to-near relative to
// the camera.
type Scene struct {
	camera *Camera

	background color.RGBA
	shading    *Shading

	objects []*Object3d
	objXpos []float64
	objYpos []float64
	objZpos []float64

	grid   *Grid
	shadow *ShadowPlane
}

func NewScene(cam *Camera) *Scene {
	background := color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 255}
	return &Scene{
		camera:     cam,
		background: background,
		shading: &Shading{
			Ambient:   0.55,
			SpotPower: 6.0,
			EnvColor:  color.RGBA{R: 0x8a, G: 0x8f, B: 0x99, A: 255},
			FogColor:  background,
			FogNear:   10,
			FogFar:    15,
		},
	}
}

func (s *Scene) Camera() *Camera           { return s.camera }
func (s *Scene) Background() color.RGBA    { return s.background }
func (s *Scene) Shading() *Shading         { return s.shading }
func (s *Scene) SetGrid(g *Grid)           { s.grid = g }
func (s *Scene) Grid() *Grid               { return s.grid }
func (s *Scene) SetShadow(sp *ShadowPlane) { s.shadow = sp }
func (s *Scene) ObjectCount() int          { return len(s.objects) }
func (s *Scene) Object(i int) *Object3d    { return s.objects[i] }

func (s *Scene) AddObject(obj *Object3d, x, y, z float64) {
	s.objects = append(s.objects, obj)
	s.objXpos = append(s.objXpos, x)
	s.objYpos = append(s.objYpos, y)
	s.objZpos = append(s.objZpos, z)
}

// Paint draws one frame of the scene. A scene with no objects still paints
// the background and ground pieces, which is what shows while the model is
// loading.
func (s *Scene) Paint(screen *ebiten.Image, xsize, ysize int) {
	screen.Fill(s.background)

	view := s.camera.ViewMatrix()
	vp := NewViewport(xsize, ysize, s.camera.Fov(), s.camera.Near())

	if s.grid != nil {
		s.grid.Paint(screen, vp, view, s.shading)
	}
	if s.shadow != nil {
		s.shadow.Paint(screen, vp, view)
	}

	if len(s.objects) == 0 {
		return
	}

	eye := s.camera.Position()

	sortedIndices := make([]int, len(s.objects))
	for i := range s.objects {
		sortedIndices[i] = i
	}
	sort.Slice(sortedIndices, func(i, j int) bool {
		return s.objDistance(sortedIndices[i], eye) > s.objDistance(sortedIndices[j], eye)
	})

	for _, i := range sortedIndices {
		obj := s.objects[i]

		objToWorld := TransMatrix(s.objXpos[i], s.objYpos[i], s.objZpos[i])
		objToCam := view.MultiplyBy(objToWorld)

		obj.ApplyMatrixTemp(objToCam)
		obj.PaintObject(screen, vp, s.shading)
	}
}

func (s *Scene) objDistance(i int, eye *Vector3) float64 {
	dx := s.objXpos[i] - eye.X
	dy := s.objYpos[i] - eye.Y
	dz := s.objZpos[i] - eye.Z
	return math.Sqrt(dx*dx + dy*dy + dz*dz)
}
