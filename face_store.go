package carshow

import "sort"

type FaceStore struct {
	faces []*Face
}

func NewFaceStore() *FaceStore {
	return &FaceStore{faces: make([]*Face, 0, 10)}
}

func (fs *FaceStore) AddFace(f *Face) {
	fs.faces = append(fs.faces, f)
}

func (fs *FaceStore) GetFace(i int) *Face {
	return fs.faces[i]
}

func (fs *FaceStore) FaceCount() int {
	return len(fs.faces)
}

// SortFacesByDistance orders the faces farthest-first from pos.
func (fs *FaceStore) SortFacesByDistance(pos *Vector3) {
	if len(fs.faces) == 0 {
		return
	}
	sort.Slice(fs.faces, func(i, j int) bool {
		distanceI := fs.faces[i].GetMidPoint().DistanceTo(pos)
		distanceJ := fs.faces[j].GetMidPoint().DistanceTo(pos)
		return distanceI > distanceJ
	})
}
