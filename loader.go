package carshow

import (
	"fmt"
	"log"
	"path/filepath"
	"strings"
)

// LoadResult is the outcome of an asynchronous model load: either a model
// or an error, never both.
type LoadResult struct {
	Model *CarModel
	Err   error
}

// LoadCarModel loads a car model, picking the loader from the file
// extension.
func LoadCarModel(path string) (*CarModel, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".glb", ".gltf":
		return LoadCarFromGLTF(path)
	case ".obj":
		return LoadCarFromOBJFile(path)
	default:
		return nil, fmt.Errorf("unsupported model format %q", filepath.Ext(path))
	}
}

// LoadCarModelAsync starts the load in the background and returns a channel
// that delivers exactly one LoadResult. Failures are logged here as well,
// so a caller that drops the error still leaves a trace.
func LoadCarModelAsync(path string) <-chan LoadResult {
	ch := make(chan LoadResult, 1)
	go func() {
		model, err := LoadCarModel(path)
		if err != nil {
			log.Printf("model load failed: %v", err)
		}
		ch <- LoadResult{Model: model, Err: err}
		close(ch)
	}()
	return ch
}
