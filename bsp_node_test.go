package carshow

import (
	"math"
	"testing"
)

const float64EqualityThreshold = 1e-6

func almostEqual(a, b float64) bool {
	return math.Abs(a-b) <= float64EqualityThreshold
}

func containsPoint(points [][]float64, x, y, z float64) bool {
	for _, p := range points {
		if almostEqual(p[0], x) && almostEqual(p[1], y) && almostEqual(p[2], z) {
			return true
		}
	}
	return false
}

func faceFromPoints(points [][]float64) *Face {
	f := NewFace(nil, nil, nil)
	for _, p := range points {
		f.AddPoint(p[0], p[1], p[2])
	}
	f.Finished(FACE_NORMAL)
	return f
}

func TestClipToNearPlane(t *testing.T) {
	const near = 10.0

	testCases := []struct {
		name     string
		input    [][]float64
		expected [][]float64 // order-independent; nil means fully clipped
	}{
		{
			name: "polygon fully in front of near plane",
			input: [][]float64{
				{0, 0, 20},
				{1, 0, 20},
				{0, 1, 20},
			},
			expected: [][]float64{
				{0, 0, 20},
				{1, 0, 20},
				{0, 1, 20},
			},
		},
		{
			name: "polygon fully behind near plane",
			input: [][]float64{
				{0, 0, 5},
				{1, 0, 5},
				{0, 1, 5},
			},
			expected: nil,
		},
		{
			name: "polygon with one point in front",
			input: [][]float64{
				{0, 0, 15},
				{0, 1, 5},
				{1, 0, 5},
			},
			expected: [][]float64{
				{0, 0, 15},
				{0, 0.5, 10},
				{0.5, 0, 10},
			},
		},
		{
			name: "polygon with two points in front",
			input: [][]float64{
				{0, 0, 5},
				{0, 1, 15},
				{1, 0, 15},
			},
			expected: [][]float64{
				{0, 0.5, 10},
				{0, 1, 15},
				{1, 0, 15},
				{0.5, 0, 10},
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			clipped := clipToNearPlane(faceFromPoints(tc.input), near)

			if tc.expected == nil {
				if clipped != nil {
					t.Fatalf("clipToNearPlane() = %v, want nil", clipped)
				}
				return
			}
			if len(clipped) != len(tc.expected) {
				t.Fatalf("clipToNearPlane() returned %d points, want %d: %v", len(clipped), len(tc.expected), clipped)
			}
			for _, want := range tc.expected {
				if !containsPoint(clipped, want[0], want[1], want[2]) {
					t.Errorf("clipToNearPlane() = %v, missing point %v", clipped, want)
				}
			}
			for _, p := range clipped {
				if p[2] < near-float64EqualityThreshold {
					t.Errorf("clipped point %v is behind the near plane", p)
				}
			}
		})
	}
}

func TestViewportProjectionRoundTrip(t *testing.T) {
	vp := NewViewport(800, 600, 40*math.Pi/180, 0.05)

	testPoints := []struct {
		name    string
		x, y, z float64
	}{
		{"center point", 0, 0, 5},
		{"arbitrary point", 1.5, -2.5, 7.5},
		{"point with large z", 10, 20, 100},
		{"point close to the near plane", 0.1, 0.2, 0.1},
	}

	for _, p := range testPoints {
		t.Run(p.name, func(t *testing.T) {
			sx := vp.ScreenX(p.x, p.z)
			sy := vp.ScreenY(p.y, p.z)

			xBack, yBack := vp.Unproject(sx, sy, p.z)

			if !almostEqual(p.x, xBack) || !almostEqual(p.y, yBack) {
				t.Errorf("projection round trip failed: original (%f, %f), got back (%f, %f)", p.x, p.y, xBack, yBack)
			}
		})
	}
}

func TestViewportCenterProjectsToCenter(t *testing.T) {
	vp := NewViewport(640, 480, 40*math.Pi/180, 0.05)

	if sx := vp.ScreenX(0, 3); !almostEqual(sx, 320) {
		t.Errorf("ScreenX(0) = %f, want 320", sx)
	}
	if sy := vp.ScreenY(0, 3); !almostEqual(sy, 240) {
		t.Errorf("ScreenY(0) = %f, want 240", sy)
	}
	// Screen Y grows downward, camera Y grows upward.
	if up := vp.ScreenY(1, 3); up >= 240 {
		t.Errorf("ScreenY(1) = %f, want above the center", up)
	}
}

func TestFogAmount(t *testing.T) {
	sh := &Shading{FogNear: 10, FogFar: 15}

	testCases := []struct {
		name string
		z    float64
		want float64
	}{
		{"before fog start", 5, 0},
		{"at fog start", 10, 0},
		{"halfway", 12.5, 0.5},
		{"at fog end", 15, 1},
		{"past fog end", 50, 1},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := sh.fogAmount(tc.z); !almostEqual(got, tc.want) {
				t.Errorf("fogAmount(%f) = %f, want %f", tc.z, got, tc.want)
			}
		})
	}
}

func TestToneMapStaysInRange(t *testing.T) {
	for _, v := range []float64{-10, 0, 128, 255, 400, 10000} {
		got := toneMap(v)
		if got > 255 {
			t.Errorf("toneMap(%f) = %d, out of range", v, got)
		}
	}
	if toneMap(0) != 0 {
		t.Errorf("toneMap(0) = %d, want 0", toneMap(0))
	}
	if toneMap(300) <= toneMap(100) {
		t.Errorf("toneMap is not monotonic: toneMap(300)=%d toneMap(100)=%d", toneMap(300), toneMap(100))
	}
}
