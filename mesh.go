package carshow

// Mesh is a pool of unique points. Faces share vertices through it so a
// transform pass touches each point once.
type Mesh struct {
	Points     *Matrix
	pointIndex map[[3]float64]int
}

func NewMesh() *Mesh {
	return &Mesh{
		Points:     NewMatrix(),
		pointIndex: make(map[[3]float64]int),
	}
}

// AddPoint returns the stored point and its index, deduplicating via the map
// for an average O(1) lookup.
func (m *Mesh) AddPoint(point []float64) ([]float64, int) {
	pointKey := [3]float64{point[0], point[1], point[2]}

	if index, found := m.pointIndex[pointKey]; found {
		return m.Points.ThisMatrix[index], index
	}

	pointCopy := make([]float64, len(point))
	copy(pointCopy, point)
	m.Points.AddRow(pointCopy)
	newIndex := len(m.Points.ThisMatrix) - 1
	m.pointIndex[pointKey] = newIndex

	return pointCopy, newIndex
}

func (m *Mesh) Copy() *Mesh {
	newPointIndex := make(map[[3]float64]int, len(m.pointIndex))
	for key, value := range m.pointIndex {
		newPointIndex[key] = value
	}

	return &Mesh{
		Points:     m.Points.Copy(),
		pointIndex: newPointIndex,
	}
}

type FaceMesh struct {
	Mesh
}

func NewFaceMesh() *FaceMesh {
	return &FaceMesh{Mesh: *NewMesh()}
}

// AddFace registers the face's points in the pool and returns the shared face
// along with the point indices.
func (fm *FaceMesh) AddFace(f *Face) (*Face, []int) {
	newPoints := make([][]float64, len(f.Points))
	indices := make([]int, len(f.Points))
	for i, p := range f.Points {
		newPoints[i], indices[i] = fm.AddPoint(p)
	}
	nf := NewFace(newPoints, f.Mat, f.GetNormal())
	return nf, indices
}

func (fm *FaceMesh) Copy() *FaceMesh {
	return &FaceMesh{Mesh: *fm.Mesh.Copy()}
}

type NormalMesh struct {
	Mesh
}

func NewNormalMesh() *NormalMesh {
	return &NormalMesh{Mesh: *NewMesh()}
}

func (nm *NormalMesh) AddNormal(pnts []float64) ([]float64, int) {
	return nm.AddPoint(pnts)
}

func (nm *NormalMesh) Copy() *NormalMesh {
	return &NormalMesh{Mesh: *nm.Mesh.Copy()}
}
