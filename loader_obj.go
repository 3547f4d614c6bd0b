package carshow

import (
	"fmt"
	"io"
	"os"

	"github.com/sheenobu/go-obj/obj"
)

// LoadCarFromOBJFile reads a Wavefront OBJ model. OBJ carries no node
// hierarchy here, so the whole mesh becomes a single "body" part: the body
// color applies, there are no wheels to spin.
func LoadCarFromOBJFile(fileName string) (*CarModel, error) {
	file, err := os.Open(fileName)
	if err != nil {
		return nil, fmt.Errorf("could not open OBJ file %s: %w", fileName, err)
	}
	defer file.Close()

	car, err := NewCarFromOBJ(file)
	if err != nil {
		return nil, fmt.Errorf("error parsing OBJ file %s: %w", fileName, err)
	}
	return car, nil
}

func NewCarFromOBJ(reader io.Reader) (*CarModel, error) {
	o, err := obj.NewReader(reader).Read()
	if err != nil {
		return nil, fmt.Errorf("error reading OBJ source: %w", err)
	}

	part := NewObject3d(PartBody)
	for _, f := range o.Faces {
		aFace := NewFace(nil, defaultMaterial, nil)
		for _, pt := range f.Points {
			v := pt.Vertex
			aFace.AddPoint(v.X, v.Y, v.Z)
		}
		aFace.Finished(FACE_NORMAL)
		part.AddFace(aFace)
	}

	if part.FaceCount() == 0 {
		return nil, fmt.Errorf("OBJ source contains no faces")
	}
	part.Finished(false)

	car := NewCarModel()
	car.AddPart(part)
	return car, nil
}
