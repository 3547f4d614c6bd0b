package carshow

import (
	"fmt"
	"image/color"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
)

// LoadCarFromGLTF reads a .glb/.gltf asset and builds a CarModel with one
// part per mesh node. Node rotation and scale are baked into the part's
// points; the node's world translation becomes the part pivot, so wheels
// spin about their own axles.
func LoadCarFromGLTF(path string) (*CarModel, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open model %s: %w", path, err)
	}

	car := NewCarModel()
	mats := make(map[int]*Material)

	for _, root := range rootNodes(doc) {
		if err := buildNode(doc, root, mgl64.Ident4(), car, mats); err != nil {
			return nil, fmt.Errorf("error building model %s: %w", path, err)
		}
	}

	if car.PartCount() == 0 {
		return nil, fmt.Errorf("model %s contains no meshes", path)
	}
	return car, nil
}

func rootNodes(doc *gltf.Document) []int {
	sceneIdx := 0
	if doc.Scene != nil {
		sceneIdx = int(*doc.Scene)
	}
	if sceneIdx < len(doc.Scenes) {
		roots := make([]int, 0, len(doc.Scenes[sceneIdx].Nodes))
		for _, n := range doc.Scenes[sceneIdx].Nodes {
			roots = append(roots, int(n))
		}
		return roots
	}

	roots := make([]int, len(doc.Nodes))
	for i := range doc.Nodes {
		roots[i] = i
	}
	return roots
}

func buildNode(doc *gltf.Document, nodeIdx int, parent mgl64.Mat4, car *CarModel, mats map[int]*Material) error {
	if nodeIdx < 0 || nodeIdx >= len(doc.Nodes) {
		return fmt.Errorf("node index %d out of range", nodeIdx)
	}
	node := doc.Nodes[nodeIdx]
	world := parent.Mul4(nodeMatrix(node))

	if node.Mesh != nil {
		part, err := buildPart(doc, node, world, mats)
		if err != nil {
			return err
		}
		if part.FaceCount() > 0 {
			part.Finished(false)
			part.debugLogSize()
			car.AddPart(part)
		}
	}

	for _, child := range node.Children {
		if err := buildNode(doc, int(child), world, car, mats); err != nil {
			return err
		}
	}
	return nil
}

func nodeMatrix(node *gltf.Node) mgl64.Mat4 {
	if m := node.Matrix; m != emptyMatrix && m != identMatrix {
		return mgl64.Mat4{
			float64(m[0]), float64(m[1]), float64(m[2]), float64(m[3]),
			float64(m[4]), float64(m[5]), float64(m[6]), float64(m[7]),
			float64(m[8]), float64(m[9]), float64(m[10]), float64(m[11]),
			float64(m[12]), float64(m[13]), float64(m[14]), float64(m[15]),
		}
	}

	t := node.Translation
	r := node.Rotation
	s := node.Scale
	if s == [3]float64{} {
		s = [3]float64{1, 1, 1}
	}
	q := mgl64.Quat{
		W: float64(r[3]),
		V: mgl64.Vec3{float64(r[0]), float64(r[1]), float64(r[2])},
	}
	if q.Len() == 0 {
		q = mgl64.QuatIdent()
	}
	q = q.Normalize()

	return mgl64.Translate3D(float64(t[0]), float64(t[1]), float64(t[2])).
		Mul4(q.Mat4()).
		Mul4(mgl64.Scale3D(float64(s[0]), float64(s[1]), float64(s[2])))
}

var (
	emptyMatrix [16]float64
	identMatrix = [16]float64{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}
)

func buildPart(doc *gltf.Document, node *gltf.Node, world mgl64.Mat4, mats map[int]*Material) (*Object3d, error) {
	part := NewObject3d(node.Name)
	part.SetPivot(world[12], world[13], world[14])

	// Bake the linear part of the node transform; the pivot holds the
	// translation.
	linear := world
	linear[12], linear[13], linear[14] = 0, 0, 0

	mesh := doc.Meshes[int(*node.Mesh)]
	for _, prim := range mesh.Primitives {
		posAttr, ok := prim.Attributes[gltf.POSITION]
		if !ok {
			continue
		}
		positions, err := modeler.ReadPosition(doc, doc.Accessors[int(posAttr)], nil)
		if err != nil {
			return nil, fmt.Errorf("mesh %s: reading positions: %w", mesh.Name, err)
		}

		var indices []uint32
		if prim.Indices != nil {
			indices, err = modeler.ReadIndices(doc, doc.Accessors[int(*prim.Indices)], nil)
			if err != nil {
				return nil, fmt.Errorf("mesh %s: reading indices: %w", mesh.Name, err)
			}
		} else {
			indices = make([]uint32, len(positions))
			for i := range indices {
				indices[i] = uint32(i)
			}
		}

		mat := materialFor(doc, prim, mats)

		for i := 0; i+2 < len(indices); i += 3 {
			face := NewFace(nil, mat, nil)
			for _, vi := range indices[i : i+3] {
				p := positions[vi]
				v := linear.Mul4x1(mgl64.Vec4{float64(p[0]), float64(p[1]), float64(p[2]), 1})
				face.AddPoint(v.X(), v.Y(), v.Z())
			}
			face.Finished(FACE_NORMAL)
			part.AddFace(face)
		}
	}

	return part, nil
}

// materialFor builds (and caches) a Material from the primitive's glTF PBR
// factors, so untouched parts keep their asset colors.
func materialFor(doc *gltf.Document, prim *gltf.Primitive, mats map[int]*Material) *Material {
	if prim.Material == nil {
		return defaultMaterial
	}
	idx := int(*prim.Material)
	if m, ok := mats[idx]; ok {
		return m
	}
	if idx < 0 || idx >= len(doc.Materials) {
		return defaultMaterial
	}

	gm := doc.Materials[idx]
	mat := NewMaterial(gm.Name, color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 255})
	if pbr := gm.PBRMetallicRoughness; pbr != nil {
		if bc := pbr.BaseColorFactor; bc != nil {
			c := *bc
			mat.Col = color.RGBA{
				R: uint8(float64(c[0]) * 255),
				G: uint8(float64(c[1]) * 255),
				B: uint8(float64(c[2]) * 255),
				A: 255,
			}
			if a := float64(c[3]); a < 1 {
				mat.Alpha = uint8(a * 255)
			}
		}
		if mf := pbr.MetallicFactor; mf != nil {
			mat.Metallic = float64(*mf)
		}
	}

	mats[idx] = mat
	return mat
}
