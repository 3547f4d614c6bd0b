package carshow

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
)

// Viewport carries the per-frame projection parameters. The focal length is
// derived from the camera's vertical field of view, so resizing the window
// changes the projection instead of a baked-in constant.
type Viewport struct {
	CX    float64
	CY    float64
	Focal float64
	Near  float64
}

func NewViewport(width, height int, fovRadians, near float64) *Viewport {
	return &Viewport{
		CX:    float64(width) / 2.0,
		CY:    float64(height) / 2.0,
		Focal: (float64(height) / 2.0) / math.Tan(fovRadians/2.0),
		Near:  near,
	}
}

func (vp *Viewport) ScreenX(x, z float64) float64 {
	return vp.CX + (vp.Focal*x)/z
}

// ScreenY flips Y: camera space is Y-up, the screen is Y-down.
func (vp *Viewport) ScreenY(y, z float64) float64 {
	return vp.CY - (vp.Focal*y)/z
}

// Unproject recovers the camera-space x,y of a screen point at depth z.
func (vp *Viewport) Unproject(sx, sy, z float64) (float64, float64) {
	x := (sx - vp.CX) * z / vp.Focal
	y := -(sy - vp.CY) * z / vp.Focal
	return x, y
}

// Shading holds the scene-wide lighting model: headlight-style diffuse with
// an ambient floor, an environment tint picked up by metallic materials,
// linear distance fog toward the background, and a tone-mapping rolloff.
type Shading struct {
	Ambient   float64
	SpotPower float64

	EnvColor color.RGBA

	FogColor color.RGBA
	FogNear  float64
	FogFar   float64

	// Outline strokes every painted face, for eyeballing the tessellation.
	Outline bool
}

// fogAmount is 0 before FogNear, 1 past FogFar, linear in between.
func (sh *Shading) fogAmount(z float64) float64 {
	if sh == nil || sh.FogFar <= sh.FogNear {
		return 0
	}
	f := (z - sh.FogNear) / (sh.FogFar - sh.FogNear)
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}

// toneMap compresses an accumulated light value back into displayable range.
func toneMap(v float64) uint8 {
	v = v / (1.0 + v/1024.0)
	if v < 0 {
		v = 0
	}
	if v > 255 {
		v = 255
	}
	return uint8(v)
}

// BspNode is one face of an object's BSP tree. Traversal paints far side,
// face, near side, so overlapping polygons land in the right order without a
// depth buffer.
type BspNode struct {
	mat              *Material
	Left             *BspNode
	Right            *BspNode
	facePointIndices []int
	normalIndex      int
	pointsToUse      [][]float64 // scratch, reused every frame
}

func NewBspNode(facePoints [][]float64, mat *Material, pointIndices []int, normalIdx int) *BspNode {
	return &BspNode{
		mat:              mat,
		facePointIndices: pointIndices,
		normalIndex:      normalIdx,
		pointsToUse:      make([][]float64, 0, len(facePoints)*2),
	}
}

func (b *BspNode) PaintShaded(screen *ebiten.Image, vp *Viewport, transPoints, transNormals *Matrix, sh *Shading) {
	if len(b.facePointIndices) == 0 {
		return
	}

	transformedNormal := transNormals.ThisMatrix[b.normalIndex]
	firstTransformedPoint := transPoints.ThisMatrix[b.facePointIndices[0]]

	where := transformedNormal[0]*firstTransformedPoint[0] +
		transformedNormal[1]*firstTransformedPoint[1] +
		transformedNormal[2]*firstTransformedPoint[2]

	if where >= 0 {
		// Back-facing: cull the face, still paint both sides far-to-near.
		if b.Right != nil {
			b.Right.PaintShaded(screen, vp, transPoints, transNormals, sh)
		}
		if b.Left != nil {
			b.Left.PaintShaded(screen, vp, transPoints, transNormals, sh)
		}
	} else {
		if b.Left != nil {
			b.Left.PaintShaded(screen, vp, transPoints, transNormals, sh)
		}

		b.paintPoly(screen, vp, transPoints, transformedNormal, sh)

		if b.Right != nil {
			b.Right.PaintShaded(screen, vp, transPoints, transNormals, sh)
		}
	}
}

func (b *BspNode) createFaceFromVertices(verticesInCameraSpace *Matrix) *Face {
	f := NewFaceEmpty(b.mat, nil)
	for _, pointIndex := range b.facePointIndices {
		pnt := verticesInCameraSpace.ThisMatrix[pointIndex]
		f.AddPoint(pnt[0], pnt[1], pnt[2])
	}
	f.Finished(FACE_NORMAL)
	return f
}

// clipToNearPlane splits the camera-space face at the near plane and
// returns the part in front of it, or nil if nothing remains.
func clipToNearPlane(face *Face, near float64) [][]float64 {
	plane := NewPlaneFromPoint(NewPoint3d(0, 0, near), NewVector3(0, 0, 1))

	newFaces := plane.SplitFace(face)
	for _, f := range newFaces {
		if f == nil {
			continue
		}
		for _, point := range f.Points {
			if point[2] > near+1e-9 {
				return f.Points
			}
		}
	}
	return nil
}

func getMidpoint(points [][]float64) []float64 {
	if len(points) == 0 {
		return nil
	}

	midpoint := make([]float64, 3)
	for _, point := range points {
		midpoint[0] += point[0]
		midpoint[1] += point[1]
		midpoint[2] += point[2]
	}
	midpoint[0] /= float64(len(points))
	midpoint[1] /= float64(len(points))
	midpoint[2] /= float64(len(points))
	return midpoint
}

func (b *BspNode) paintPoly(screen *ebiten.Image, vp *Viewport, verticesInCameraSpace *Matrix, transformedNormal []float64, sh *Shading) {
	pointsToUse := b.pointsToUse[:0]

	numPointsBehind := 0
	for _, pointIndex := range b.facePointIndices {
		pnt := verticesInCameraSpace.ThisMatrix[pointIndex]
		if pnt[2] < vp.Near {
			numPointsBehind++
		}
		pointsToUse = append(pointsToUse, pnt)
	}

	if numPointsBehind == len(b.facePointIndices) {
		return
	}
	if numPointsBehind > 0 {
		face := b.createFaceFromVertices(verticesInCameraSpace)
		pointsToUse = clipToNearPlane(face, vp.Near)
		if pointsToUse == nil {
			return
		}
	}

	midPoint := getMidpoint(pointsToUse)

	screenPointsX := make([]float32, len(pointsToUse))
	screenPointsY := make([]float32, len(pointsToUse))
	for i, pnt := range pointsToUse {
		screenPointsX[i] = float32(vp.ScreenX(pnt[0], pnt[2]))
		screenPointsY[i] = float32(vp.ScreenY(pnt[1], pnt[2]))
	}

	polyColor := b.shadeColor(midPoint, transformedNormal, sh)
	fillConvexPolygon(screen, screenPointsX, screenPointsY, polyColor)

	if sh != nil && sh.Outline {
		drawPolygonOutline(screen, screenPointsX, screenPointsY, 1.0, color.RGBA{R: 100, G: 100, B: 100, A: 20})
	}
}

func (b *BspNode) shadeColor(midPoint, transformedNormal []float64, sh *Shading) color.RGBA {
	mat := b.mat
	if mat == nil {
		mat = defaultMaterial
	}

	if sh == nil {
		return color.RGBA{R: mat.Col.R, G: mat.Col.G, B: mat.Col.B, A: mat.Alpha}
	}

	// Diffuse from the face orientation; the light sits at the camera.
	diffuseFactor := -transformedNormal[2]
	if diffuseFactor < 0 {
		diffuseFactor = 0
	}

	// Spotlight falloff toward the edges of the view.
	spotlightFactor := 1.0
	lenVecToPoint := math.Sqrt(midPoint[0]*midPoint[0] + midPoint[1]*midPoint[1] + midPoint[2]*midPoint[2])
	if lenVecToPoint > 0 {
		cosAngle := midPoint[2] / lenVecToPoint
		if cosAngle < 0 {
			cosAngle = 0
		}
		spotlightFactor = math.Pow(cosAngle, sh.SpotPower)
	}

	brightness := sh.Ambient + diffuseFactor*spotlightFactor*(1.0-sh.Ambient)

	r := float64(mat.Col.R) * brightness
	g := float64(mat.Col.G) * brightness
	bl := float64(mat.Col.B) * brightness

	// Metallic faces pick up the environment, strongest on upward-facing
	// surfaces, like a lit room overhead.
	if mat.Metallic > 0 {
		up := transformedNormal[1]
		if up < 0 {
			up = 0
		}
		env := mat.Metallic * (0.15 + 0.45*up)
		r += float64(sh.EnvColor.R) * env
		g += float64(sh.EnvColor.G) * env
		bl += float64(sh.EnvColor.B) * env
	}

	fog := sh.fogAmount(midPoint[2])
	if fog > 0 {
		r = r*(1-fog) + float64(sh.FogColor.R)*fog
		g = g*(1-fog) + float64(sh.FogColor.G)*fog
		bl = bl*(1-fog) + float64(sh.FogColor.B)*fog
	}

	return color.RGBA{
		R: toneMap(r),
		G: toneMap(g),
		B: toneMap(bl),
		A: mat.Alpha,
	}
}

var defaultMaterial = NewMaterial("default", color.RGBA{R: 0x88, G: 0x88, B: 0x88, A: 255})
