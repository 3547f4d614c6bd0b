package carshow

import (
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

const (
	defaultWidth  = 1280
	defaultHeight = 720

	// World units the grid scrolls per second to fake forward motion.
	gridScrollSpeed = 1.0

	dragSensitivity = 1.0 / 200.0
	zoomSensitivity = 0.5
)

// Material slots selectable from the keyboard.
const (
	slotBody = iota
	slotTrim
	slotGlass
)

type Config struct {
	Width  int
	Height int

	ModelPath  string
	ShadowPath string

	// Optional "#rrggbb" startup colors; empty keeps the defaults.
	BodyColor  string
	TrimColor  string
	GlassColor string
}

// Viewer is the rendering service: it owns the scene, the camera, the three
// configurable materials and the frame loop. Create it with NewViewer, stop
// it with Close; the loop checks the closed flag every iteration.
type Viewer struct {
	scene *Scene
	cam   *Camera

	body  *Material
	trim  *Material
	glass *Material

	car     *CarModel
	loadCh  <-chan LoadResult
	loadErr error

	width  int
	height int

	start  time.Time
	closed bool

	dragging     bool
	lastX, lastY int
	selectedSlot int
}

func NewViewer(cfg Config) (*Viewer, error) {
	v := &Viewer{
		width:  cfg.Width,
		height: cfg.Height,
		body:   NewBodyMaterial(),
		trim:   NewTrimMaterial(),
		glass:  NewGlassMaterial(),
		start:  time.Now(),
	}
	if v.width <= 0 {
		v.width = defaultWidth
	}
	if v.height <= 0 {
		v.height = defaultHeight
	}

	for _, c := range []struct {
		hex string
		mat *Material
	}{
		{cfg.BodyColor, v.body},
		{cfg.TrimColor, v.trim},
		{cfg.GlassColor, v.glass},
	} {
		if c.hex == "" {
			continue
		}
		if err := c.mat.SetHexColor(c.hex); err != nil {
			return nil, fmt.Errorf("%s color: %w", c.mat.Name, err)
		}
	}

	// Fixed showroom vantage point, orbiting the car's midriff.
	v.cam = NewCameraAt(NewVector3(4.25, 1.4, -4.5), NewVector3(0, 0.5, 0))
	v.cam.Resize(v.width, v.height)

	v.scene = NewScene(v.cam)
	v.scene.SetGrid(NewGrid(20, 40))

	if cfg.ShadowPath != "" {
		shadow, err := NewShadowPlane(cfg.ShadowPath, 2.5, 5.5)
		if err != nil {
			log.Printf("ground shadow disabled: %v", err)
		} else {
			v.scene.SetShadow(shadow)
		}
	}

	if cfg.ModelPath != "" {
		v.loadCh = LoadCarModelAsync(cfg.ModelPath)
	}

	return v, nil
}

// Run opens the window and drives the frame loop until Close or the window
// is dismissed.
func (v *Viewer) Run() error {
	ebiten.SetWindowSize(v.width, v.height)
	ebiten.SetWindowTitle("carshow")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	return ebiten.RunGame(v)
}

// Close stops the frame loop; the next Update returns termination.
func (v *Viewer) Close() {
	v.closed = true
}

func (v *Viewer) Closed() bool { return v.closed }

func (v *Viewer) Scene() *Scene   { return v.scene }
func (v *Viewer) Camera() *Camera { return v.cam }
func (v *Viewer) Car() *CarModel  { return v.car }

func (v *Viewer) BodyMaterial() *Material  { return v.body }
func (v *Viewer) TrimMaterial() *Material  { return v.trim }
func (v *Viewer) GlassMaterial() *Material { return v.glass }

func (v *Viewer) SetBodyColor(hex string) error  { return v.body.SetHexColor(hex) }
func (v *Viewer) SetTrimColor(hex string) error  { return v.trim.SetHexColor(hex) }
func (v *Viewer) SetGlassColor(hex string) error { return v.glass.SetHexColor(hex) }

// LoadErr reports a failed model load, nil while loading or after success.
func (v *Viewer) LoadErr() error { return v.loadErr }

func (v *Viewer) Update() error {
	if v.closed {
		return ebiten.Termination
	}

	v.pollLoad()
	v.advance(time.Since(v.start).Seconds())
	v.handleInput()

	return nil
}

// pollLoad picks up the async load result without blocking; frames keep
// rendering the bare scene until the model arrives.
func (v *Viewer) pollLoad() {
	if v.loadCh == nil {
		return
	}
	select {
	case res := <-v.loadCh:
		v.loadCh = nil
		v.applyLoadResult(res)
	default:
	}
}

func (v *Viewer) applyLoadResult(res LoadResult) {
	if res.Err != nil {
		v.loadErr = res.Err
		return
	}
	v.car = res.Model
	v.car.ApplyMaterials(v.body, v.trim, v.glass)
	v.car.AddToScene(v.scene, 0, 0, 0)
	log.Printf("car model attached: %d parts, %d wheels", v.car.PartCount(), len(v.car.Wheels()))
}

// advance moves the time-driven parts of the scene to the given elapsed
// seconds. Wheel angle and grid travel are absolute functions of the clock.
func (v *Viewer) advance(elapsedSeconds float64) {
	if v.car != nil {
		v.car.SpinWheels(elapsedSeconds)
	}
	if g := v.scene.Grid(); g != nil {
		g.Scroll(elapsedSeconds * gridScrollSpeed)
	}
}

func (v *Viewer) handleInput() {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		v.Close()
		return
	}

	// Orbit: left drag rotates, wheel zooms.
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		v.dragging = true
		v.lastX, v.lastY = ebiten.CursorPosition()
	}
	if v.dragging {
		x, y := ebiten.CursorPosition()
		dx := float64(x-v.lastX) * dragSensitivity
		dy := float64(y-v.lastY) * dragSensitivity
		v.cam.Orbit(-dx, dy)
		v.lastX, v.lastY = x, y
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) {
		v.dragging = false
	}
	if _, wy := ebiten.Wheel(); wy != 0 {
		v.cam.Zoom(wy * zoomSensitivity)
	}

	// Material slot keys, then a swatch on the digits.
	if inpututil.IsKeyJustPressed(ebiten.KeyB) {
		v.selectedSlot = slotBody
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		v.selectedSlot = slotTrim
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		v.selectedSlot = slotGlass
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyO) {
		v.scene.Shading().Outline = !v.scene.Shading().Outline
	}
	for i := 0; i < len(Swatches) && i < 9; i++ {
		if inpututil.IsKeyJustPressed(ebiten.KeyDigit1 + ebiten.Key(i)) {
			v.selectedMaterial().SetColor(Swatches[i])
		}
	}
}

func (v *Viewer) selectedMaterial() *Material {
	switch v.selectedSlot {
	case slotTrim:
		return v.trim
	case slotGlass:
		return v.glass
	default:
		return v.body
	}
}

func (v *Viewer) Draw(screen *ebiten.Image) {
	v.scene.Paint(screen, v.width, v.height)

	status := fmt.Sprintf("FPS: %0.1f  paint [B]ody/[T]rim/[G]lass: %s  swatch: 1-9", ebiten.ActualFPS(), v.selectedMaterial().Name)
	if v.loadErr != nil {
		status += "\nmodel failed to load, showing empty stage"
	} else if v.loadCh != nil {
		status += "\nloading model..."
	}
	ebitenutil.DebugPrint(screen, status)
}

// Layout reports the render size and tracks window resizes: the camera
// aspect and the output size follow the current viewport dimensions.
func (v *Viewer) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		v.Resize(outsideWidth, outsideHeight)
	}
	return v.width, v.height
}

func (v *Viewer) Resize(width, height int) {
	v.width = width
	v.height = height
	v.cam.Resize(width, height)
}

func (v *Viewer) Size() (int, int) { return v.width, v.height }
