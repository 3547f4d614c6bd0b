package carshow

import (
	"math"
	"strings"
	"testing"
	"time"
)

const cubeOBJ = `
v -1 -1 -1
v 1 -1 -1
v 1 1 -1
v -1 1 -1
v -1 -1 1
v 1 -1 1
v 1 1 1
v -1 1 1
f 1 2 3 4
f 8 7 6 5
f 5 6 2 1
f 4 3 7 8
f 1 4 8 5
f 6 7 3 2
`

func TestLoadCarModelRejectsUnknownExtension(t *testing.T) {
	if _, err := LoadCarModel("car.fbx"); err == nil {
		t.Error("LoadCarModel accepted a .fbx path")
	}
	if _, err := LoadCarModel("car"); err == nil {
		t.Error("LoadCarModel accepted a path with no extension")
	}
}

func TestLoadCarModelMissingFile(t *testing.T) {
	if _, err := LoadCarModel("does-not-exist.glb"); err == nil {
		t.Error("LoadCarModel found a model in a missing .glb")
	}
	if _, err := LoadCarModel("does-not-exist.obj"); err == nil {
		t.Error("LoadCarModel found a model in a missing .obj")
	}
}

func TestNewCarFromOBJ(t *testing.T) {
	car, err := NewCarFromOBJ(strings.NewReader(cubeOBJ))
	if err != nil {
		t.Fatalf("NewCarFromOBJ returned error: %v", err)
	}

	if car.PartCount() != 1 {
		t.Fatalf("part count = %d, want 1", car.PartCount())
	}
	body := car.Part(PartBody)
	if body == nil {
		t.Fatal("no body part")
	}
	if body.FaceCount() != 6 {
		t.Errorf("face count = %d, want 6", body.FaceCount())
	}
	if len(car.Wheels()) != 0 {
		t.Errorf("wheel count = %d, want 0", len(car.Wheels()))
	}
	for _, length := range []float64{body.XLength(), body.YLength(), body.ZLength()} {
		if math.Abs(length-2) > 1e-9 {
			t.Errorf("cube side = %v, want 2", length)
		}
	}
}

func TestNewCarFromOBJEmpty(t *testing.T) {
	if _, err := NewCarFromOBJ(strings.NewReader("")); err == nil {
		t.Error("NewCarFromOBJ accepted an empty source")
	}
}

func TestLoadCarModelAsyncDeliversOneResult(t *testing.T) {
	ch := LoadCarModelAsync("does-not-exist.glb")

	select {
	case res := <-ch:
		if res.Err == nil {
			t.Error("missing file loaded without error")
		}
		if res.Model != nil {
			t.Error("got a model alongside the error")
		}
	case <-time.After(5 * time.Second):
		t.Fatal("no load result arrived")
	}

	// The channel is closed after the single result.
	if _, ok := <-ch; ok {
		t.Error("channel delivered a second result")
	}
}
