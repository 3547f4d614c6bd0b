package carshow

import (
	"errors"
	"image/color"
	"math"
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestNewViewerDefaults(t *testing.T) {
	v, err := NewViewer(Config{})
	if err != nil {
		t.Fatalf("NewViewer returned error: %v", err)
	}

	w, h := v.Size()
	if w != 1280 || h != 720 {
		t.Errorf("default size = %dx%d, want 1280x720", w, h)
	}
	if got := v.Camera().Aspect(); math.Abs(got-1280.0/720.0) > 1e-12 {
		t.Errorf("aspect = %v, want %v", got, 1280.0/720.0)
	}
	if v.Scene().Grid() == nil {
		t.Error("no grid in a fresh scene")
	}
	if v.Car() != nil {
		t.Error("car set before any model loaded")
	}
	if v.LoadErr() != nil {
		t.Errorf("LoadErr = %v before any load", v.LoadErr())
	}
}

func TestNewViewerStartupColors(t *testing.T) {
	v, err := NewViewer(Config{BodyColor: "#1a2552", GlassColor: "336699"})
	if err != nil {
		t.Fatalf("NewViewer returned error: %v", err)
	}
	if want := (color.RGBA{0x1a, 0x25, 0x52, 0xff}); v.BodyMaterial().Col != want {
		t.Errorf("body color = %v, want %v", v.BodyMaterial().Col, want)
	}
	if want := (color.RGBA{0x33, 0x66, 0x99, 0xff}); v.GlassMaterial().Col != want {
		t.Errorf("glass color = %v, want %v", v.GlassMaterial().Col, want)
	}
}

func TestNewViewerRejectsBadColor(t *testing.T) {
	if _, err := NewViewer(Config{TrimColor: "#zzz"}); err == nil {
		t.Error("NewViewer accepted a bad trim color")
	}
}

func TestSetColorsChangeMaterials(t *testing.T) {
	v, err := NewViewer(Config{})
	if err != nil {
		t.Fatalf("NewViewer returned error: %v", err)
	}

	if err := v.SetBodyColor("#0d542e"); err != nil {
		t.Fatalf("SetBodyColor returned error: %v", err)
	}
	if want := (color.RGBA{0x0d, 0x54, 0x2e, 0xff}); v.BodyMaterial().Col != want {
		t.Errorf("body color = %v, want %v", v.BodyMaterial().Col, want)
	}
	if err := v.SetBodyColor("bogus"); err == nil {
		t.Error("SetBodyColor accepted bad input")
	}
}

func TestResizeUpdatesCameraAspect(t *testing.T) {
	v, err := NewViewer(Config{Width: 800, Height: 600})
	if err != nil {
		t.Fatalf("NewViewer returned error: %v", err)
	}

	v.Resize(1920, 1080)

	w, h := v.Size()
	if w != 1920 || h != 1080 {
		t.Errorf("size = %dx%d, want 1920x1080", w, h)
	}
	if got := v.Camera().Aspect(); math.Abs(got-16.0/9.0) > 1e-12 {
		t.Errorf("aspect = %v, want %v", got, 16.0/9.0)
	}

	gw, gh := v.Layout(640, 480)
	if gw != 640 || gh != 480 {
		t.Errorf("Layout(640, 480) = %d, %d", gw, gh)
	}
	if got := v.Camera().Aspect(); math.Abs(got-640.0/480.0) > 1e-12 {
		t.Errorf("aspect after Layout = %v, want %v", got, 640.0/480.0)
	}
}

func TestCloseStopsUpdate(t *testing.T) {
	v, err := NewViewer(Config{})
	if err != nil {
		t.Fatalf("NewViewer returned error: %v", err)
	}

	v.Close()

	if !v.Closed() {
		t.Error("Closed() = false after Close")
	}
	if got := v.Update(); !errors.Is(got, ebiten.Termination) {
		t.Errorf("Update after Close = %v, want ebiten.Termination", got)
	}
}

func TestAdvanceWithoutCar(t *testing.T) {
	v, err := NewViewer(Config{})
	if err != nil {
		t.Fatalf("NewViewer returned error: %v", err)
	}

	// No model: the grid still scrolls and nothing panics.
	v.advance(0.3)

	if got := v.Scene().Grid().Offset(); math.Abs(got-0.3) > 1e-9 {
		t.Errorf("grid offset = %v, want 0.3", got)
	}
}

func TestAdvanceSpinsCarWheels(t *testing.T) {
	v, err := NewViewer(Config{})
	if err != nil {
		t.Fatalf("NewViewer returned error: %v", err)
	}
	v.applyLoadResult(LoadResult{Model: testCar()})

	v.advance(1)

	want := NewRotationMatrix(ROTX, WheelAngle(1))
	got := v.Car().Wheels()[0].RotMatrix()
	for c := 0; c < 4; c++ {
		for r := 0; r < 4; r++ {
			if math.Abs(got.ThisMatrix[c][r]-want.ThisMatrix[c][r]) > 1e-12 {
				t.Fatalf("wheel rot matrix =\n%v\nwant\n%v", got, want)
			}
		}
	}
}

func TestApplyLoadResultSuccess(t *testing.T) {
	v, err := NewViewer(Config{})
	if err != nil {
		t.Fatalf("NewViewer returned error: %v", err)
	}

	car := testCar()
	v.applyLoadResult(LoadResult{Model: car})

	if v.Car() != car {
		t.Fatal("car not attached")
	}
	if got := v.Scene().ObjectCount(); got != car.PartCount() {
		t.Errorf("scene objects = %d, want %d", got, car.PartCount())
	}
	if got := car.Part(PartBody).Material(); got != v.BodyMaterial() {
		t.Error("body part did not get the body material")
	}
	if got := car.Part(PartGlass).Material(); got != v.GlassMaterial() {
		t.Error("glass part did not get the glass material")
	}
}

func TestApplyLoadResultError(t *testing.T) {
	v, err := NewViewer(Config{})
	if err != nil {
		t.Fatalf("NewViewer returned error: %v", err)
	}

	loadErr := errors.New("corrupt model")
	v.applyLoadResult(LoadResult{Err: loadErr})

	if !errors.Is(v.LoadErr(), loadErr) {
		t.Errorf("LoadErr = %v, want %v", v.LoadErr(), loadErr)
	}
	if v.Car() != nil {
		t.Error("car attached despite load error")
	}
	if got := v.Scene().ObjectCount(); got != 0 {
		t.Errorf("scene objects = %d, want 0", got)
	}

	// The stage keeps running without the model.
	v.advance(0.75)
	if got := v.Scene().Grid().Offset(); math.Abs(got-0.25) > 1e-9 {
		t.Errorf("grid offset = %v, want 0.25", got)
	}
}

func TestPollLoadPicksUpResult(t *testing.T) {
	v, err := NewViewer(Config{})
	if err != nil {
		t.Fatalf("NewViewer returned error: %v", err)
	}

	ch := make(chan LoadResult, 1)
	v.loadCh = ch

	// Nothing buffered yet: pollLoad must not block.
	v.pollLoad()
	if v.Car() != nil {
		t.Fatal("car appeared before a result was sent")
	}

	car := testCar()
	ch <- LoadResult{Model: car}
	v.pollLoad()

	if v.Car() != car {
		t.Error("pollLoad did not attach the delivered model")
	}
	if v.loadCh != nil {
		t.Error("load channel still armed after the result")
	}
}
