package carshow

import (
	"log"

	"github.com/hajimehoshi/ebiten/v2"
)

// Object3d is one named mesh part. Points live in the part's local space
// around its pivot; the scene supplies the world translation at paint time,
// so a spin matrix set with SetRotMatrix turns the part about its own
// center (wheels about their axle).
type Object3d struct {
	name string

	faceMesh        *FaceMesh
	normalMesh      *NormalMesh
	transFaceMesh   *FaceMesh
	transNormalMesh *NormalMesh
	theFaces        *FaceStore
	root            *BspNode
	rotMatrix       *Matrix

	pivot *Point3d

	xLength float64
	yLength float64
	zLength float64
}

func NewObject3d(name string) *Object3d {
	return &Object3d{
		name:            name,
		transFaceMesh:   NewFaceMesh(),
		transNormalMesh: NewNormalMesh(),
		theFaces:        NewFaceStore(),
		rotMatrix:       IdentMatrix(),
		pivot:           NewPoint3d(0, 0, 0),
	}
}

func (o *Object3d) Name() string { return o.name }

// Pivot is the part's attachment point in model space.
func (o *Object3d) Pivot() *Point3d { return o.pivot }

func (o *Object3d) SetPivot(x, y, z float64) {
	o.pivot = NewPoint3d(x, y, z)
}

func (o *Object3d) AddFace(f *Face) {
	o.theFaces.AddFace(f)
}

func (o *Object3d) FaceCount() int {
	if o.theFaces == nil {
		return 0
	}
	return o.theFaces.FaceCount()
}

// SetMaterial points every face of the part at the given shared material.
func (o *Object3d) SetMaterial(mat *Material) {
	for i := 0; i < o.theFaces.FaceCount(); i++ {
		o.theFaces.GetFace(i).SetMaterial(mat)
	}
	setMaterialOnTree(o.root, mat)
}

func setMaterialOnTree(n *BspNode, mat *Material) {
	if n == nil {
		return
	}
	n.mat = mat
	setMaterialOnTree(n.Left, mat)
	setMaterialOnTree(n.Right, mat)
}

// Material returns the material of the part's first face, or nil.
func (o *Object3d) Material() *Material {
	if o.theFaces.FaceCount() == 0 {
		return nil
	}
	return o.theFaces.GetFace(0).Mat
}

func (o *Object3d) SetRotMatrix(m *Matrix) {
	o.rotMatrix = m
}

func (o *Object3d) RotMatrix() *Matrix { return o.rotMatrix }

func (o *Object3d) ApplyMatrix(m *Matrix) {
	o.rotMatrix = m.MultiplyBy(o.rotMatrix)
}

// Finished seals the part: builds the BSP tree and the shared point pools.
func (o *Object3d) Finished(centerObject bool) {
	if o.theFaces.FaceCount() > 0 {
		// The tree build consumes its working list, so hand it a copy.
		working := append([]*Face(nil), o.theFaces.faces...)
		o.root = o.createBspTree(working, o.transFaceMesh, o.transNormalMesh)
	}

	o.faceMesh = &FaceMesh{Mesh: *o.transFaceMesh.Mesh.Copy()}
	o.normalMesh = &NormalMesh{Mesh: *o.transNormalMesh.Mesh.Copy()}

	if centerObject {
		o.CentreObject()
	}

	o.calcSize()
}

// CentreObject moves all points so 0,0,0 is the center of the bounding box.
func (o *Object3d) CentreObject() {
	if o.faceMesh == nil || len(o.faceMesh.Points.ThisMatrix) == 0 {
		return
	}

	minX, maxX := o.faceMesh.Points.ThisMatrix[0][0], o.faceMesh.Points.ThisMatrix[0][0]
	minY, maxY := o.faceMesh.Points.ThisMatrix[0][1], o.faceMesh.Points.ThisMatrix[0][1]
	minZ, maxZ := o.faceMesh.Points.ThisMatrix[0][2], o.faceMesh.Points.ThisMatrix[0][2]
	for _, point := range o.faceMesh.Points.ThisMatrix {
		if point[0] < minX {
			minX = point[0]
		} else if point[0] > maxX {
			maxX = point[0]
		}
		if point[1] < minY {
			minY = point[1]
		} else if point[1] > maxY {
			maxY = point[1]
		}
		if point[2] < minZ {
			minZ = point[2]
		} else if point[2] > maxZ {
			maxZ = point[2]
		}
	}

	centerX := (minX + maxX) / 2.0
	centerY := (minY + maxY) / 2.0
	centerZ := (minZ + maxZ) / 2.0

	for i := range o.faceMesh.Points.ThisMatrix {
		o.faceMesh.Points.ThisMatrix[i][0] -= centerX
		o.faceMesh.Points.ThisMatrix[i][1] -= centerY
		o.faceMesh.Points.ThisMatrix[i][2] -= centerZ
	}
}

func (o *Object3d) XLength() float64 { return o.xLength }
func (o *Object3d) YLength() float64 { return o.yLength }
func (o *Object3d) ZLength() float64 { return o.zLength }

func (o *Object3d) calcSize() {
	if o.faceMesh == nil || len(o.faceMesh.Points.ThisMatrix) == 0 {
		o.xLength, o.yLength, o.zLength = 0, 0, 0
		return
	}

	minX, maxX := o.faceMesh.Points.ThisMatrix[0][0], o.faceMesh.Points.ThisMatrix[0][0]
	minY, maxY := o.faceMesh.Points.ThisMatrix[0][1], o.faceMesh.Points.ThisMatrix[0][1]
	minZ, maxZ := o.faceMesh.Points.ThisMatrix[0][2], o.faceMesh.Points.ThisMatrix[0][2]
	for _, point := range o.faceMesh.Points.ThisMatrix {
		if point[0] < minX {
			minX = point[0]
		} else if point[0] > maxX {
			maxX = point[0]
		}
		if point[1] < minY {
			minY = point[1]
		} else if point[1] > maxY {
			maxY = point[1]
		}
		if point[2] < minZ {
			minZ = point[2]
		} else if point[2] > maxZ {
			maxZ = point[2]
		}
	}
	o.xLength = maxX - minX
	o.yLength = maxY - minY
	o.zLength = maxZ - minZ
}

// ApplyMatrixTemp transforms the part's points and normals into camera
// space for this frame. The part's own spin matrix is applied first.
func (o *Object3d) ApplyMatrixTemp(aMatrix *Matrix) {
	rotMatrixTemp := aMatrix.MultiplyBy(o.rotMatrix)
	rotMatrixTemp.TransformNormals(o.normalMesh.Points, o.transNormalMesh.Points)
	rotMatrixTemp.TransformObj(o.faceMesh.Points, o.transFaceMesh.Points)
}

func (o *Object3d) PaintObject(screen *ebiten.Image, vp *Viewport, sh *Shading) {
	if o.root == nil {
		return
	}
	o.root.PaintShaded(screen, vp, o.transFaceMesh.Points, o.transNormalMesh.Points, sh)
}

func (o *Object3d) createBspTree(faces []*Face, newFaces *FaceMesh, newNormMesh *NormalMesh) *BspNode {
	if len(faces) == 0 {
		return nil
	}

	store := &FaceStore{faces: faces}
	parentFace := choosePlane(store)
	originalNormal, normalIndex := newNormMesh.AddNormal(normalAsRow(parentFace.GetNormal()))
	parentFace.SetNormal(NewVector3(originalNormal[0], originalNormal[1], originalNormal[2]))
	newFace, parentIndices := newFaces.AddFace(parentFace)
	parent := NewBspNode(newFace.Points, newFace.Mat, parentIndices, normalIndex)
	pPlane := NewPlane(newFace, newFace.GetNormal())

	var fvLeft, fvRight []*Face

	for _, currentFace := range store.faces {
		if pPlane.FaceIntersect(currentFace) {
			split := pPlane.SplitFace(currentFace)
			for _, facePart := range split {
				if facePart == nil || len(facePart.Points) == 0 {
					continue
				}
				part := NewFace(facePart.Points, currentFace.Mat, currentFace.GetNormal())
				if pPlane.Where(part) <= 0 {
					fvLeft = append(fvLeft, part)
				} else {
					fvRight = append(fvRight, part)
				}
			}
		} else {
			if pPlane.Where(currentFace) <= 0 {
				fvLeft = append(fvLeft, currentFace)
			} else {
				fvRight = append(fvRight, currentFace)
			}
		}
	}

	if len(fvLeft) > 0 {
		parent.Left = o.createBspTree(fvLeft, newFaces, newNormMesh)
	}
	if len(fvRight) > 0 {
		parent.Right = o.createBspTree(fvRight, newFaces, newNormMesh)
	}

	return parent
}

// choosePlane picks the face whose plane splits the fewest other faces and
// removes it from the store.
func choosePlane(fs *FaceStore) *Face {
	leastFace, leastFaceTotal := 0, fs.FaceCount()

	for chosen := 0; chosen < fs.FaceCount(); chosen++ {
		total := 0
		p := fs.GetFace(chosen).GetPlane()
		for i := 0; i < fs.FaceCount(); i++ {
			if i == chosen {
				continue
			}
			if p.FaceIntersect(fs.GetFace(i)) {
				total++
			}
		}
		if total < leastFaceTotal {
			leastFaceTotal = total
			leastFace = chosen
			if total == 0 {
				break
			}
		}
	}

	f := fs.faces[leastFace]
	fs.faces = append(fs.faces[:leastFace], fs.faces[leastFace+1:]...)
	return f
}

func normalAsRow(n *Vector3) []float64 {
	return []float64{n.X, n.Y, n.Z, 0}
}

// debugLogSize is handy when a freshly loaded asset comes in at an
// unexpected scale.
func (o *Object3d) debugLogSize() {
	log.Printf("part %q: %d faces, size %.2f x %.2f x %.2f", o.name, o.FaceCount(), o.xLength, o.yLength, o.zLength)
}
