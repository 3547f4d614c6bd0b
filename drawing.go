package carshow

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

func fillConvexPolygon(screen *ebiten.Image, xp, yp []float32, clr color.RGBA) {
	if len(xp) < 3 {
		return
	}

	indices := make([]uint16, 0, (len(xp)-2)*3)
	for i := 2; i < len(xp); i++ {
		indices = append(indices, 0, uint16(i-1), uint16(i))
	}

	vertices := make([]ebiten.Vertex, len(xp))
	ca := float32(clr.A) / 255.0
	// Premultiplied, so translucent materials blend under the default
	// source-over mode.
	cr := float32(clr.R) / 255.0 * ca
	cg := float32(clr.G) / 255.0 * ca
	cb := float32(clr.B) / 255.0 * ca

	for i := range xp {
		vertices[i] = ebiten.Vertex{
			DstX:   xp[i],
			DstY:   yp[i],
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(vertices, indices, whiteSub, op)
}

// drawTexturedQuad maps the whole of tex onto the convex quad given by four
// screen points in order. Used for the baked ground shadow.
func drawTexturedQuad(screen *ebiten.Image, tex *ebiten.Image, xp, yp [4]float32, alpha float32) {
	w, h := tex.Bounds().Dx(), tex.Bounds().Dy()
	srcX := [4]float32{0, float32(w), float32(w), 0}
	srcY := [4]float32{0, 0, float32(h), float32(h)}

	vertices := make([]ebiten.Vertex, 4)
	for i := 0; i < 4; i++ {
		vertices[i] = ebiten.Vertex{
			DstX:   xp[i],
			DstY:   yp[i],
			SrcX:   srcX[i],
			SrcY:   srcY[i],
			ColorR: alpha,
			ColorG: alpha,
			ColorB: alpha,
			ColorA: alpha,
		}
	}
	indices := []uint16{0, 1, 2, 0, 2, 3}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	screen.DrawTriangles(vertices, indices, tex, op)
}

// drawPolygonOutline strokes the closed polygon outline.
func drawPolygonOutline(screen *ebiten.Image, xp, yp []float32, strokeWidth float32, clr color.RGBA) {
	if len(xp) < 2 {
		return
	}

	var path vector.Path
	path.MoveTo(xp[0], yp[0])
	for i := 1; i < len(xp); i++ {
		path.LineTo(xp[i], yp[i])
	}
	path.Close()

	strokeOp := &vector.StrokeOptions{
		Width: strokeWidth,
	}
	vertices, indices := path.AppendVerticesAndIndicesForStroke(nil, nil, strokeOp)

	cr := float32(clr.R) / 255.0
	cg := float32(clr.G) / 255.0
	cb := float32(clr.B) / 255.0
	ca := float32(clr.A) / 255.0

	for i := range vertices {
		vertices[i].ColorR = cr
		vertices[i].ColorG = cg
		vertices[i].ColorB = cb
		vertices[i].ColorA = ca
		vertices[i].SrcX = 1
		vertices[i].SrcY = 1
	}

	drawOp := &ebiten.DrawTrianglesOptions{
		AntiAlias: true,
	}
	screen.DrawTriangles(vertices, indices, whiteSub, drawOp)
}

// DrawLine strokes a single line segment.
func DrawLine(screen *ebiten.Image, x1, y1, x2, y2 float32, width float32, col color.Color) {
	vector.StrokeLine(screen, x1, y1, x2, y2, width, col, true)
}
