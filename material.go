package carshow

import (
	"fmt"
	"image/color"
)

// Material is a shared, mutable surface description. Faces keep a pointer to
// their material, so changing a material's color recolors every face that
// uses it on the next painted frame. Last write wins.
type Material struct {
	Name string
	Col  color.RGBA

	// Metallic scales how much of the environment tint shows in the shading.
	Metallic float64
	// Alpha below 255 makes the material draw translucent (glass).
	Alpha uint8
}

func NewMaterial(name string, col color.RGBA) *Material {
	return &Material{
		Name:     name,
		Col:      col,
		Alpha:    255,
		Metallic: 0,
	}
}

func (m *Material) SetColor(col color.RGBA) {
	m.Col = col
}

// SetHexColor sets the material color from a "#rrggbb" string. The leading
// '#' is optional.
func (m *Material) SetHexColor(hex string) error {
	col, err := ParseHexColor(hex)
	if err != nil {
		return err
	}
	m.Col = col
	return nil
}

// ParseHexColor parses "#rrggbb" (or "rrggbb") into an opaque RGBA.
func ParseHexColor(hex string) (color.RGBA, error) {
	s := hex
	if len(s) > 0 && s[0] == '#' {
		s = s[1:]
	}
	if len(s) != 6 {
		return color.RGBA{}, fmt.Errorf("bad hex color %q: want 6 hex digits", hex)
	}

	var v [6]uint8
	for i := 0; i < 6; i++ {
		c := s[i]
		switch {
		case c >= '0' && c <= '9':
			v[i] = c - '0'
		case c >= 'a' && c <= 'f':
			v[i] = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			v[i] = c - 'A' + 10
		default:
			return color.RGBA{}, fmt.Errorf("bad hex color %q: invalid digit %q", hex, c)
		}
	}

	return color.RGBA{
		R: v[0]<<4 | v[1],
		G: v[2]<<4 | v[3],
		B: v[4]<<4 | v[5],
		A: 255,
	}, nil
}

// The three configurable car materials, matching the original show car:
// red metallic body, bright metal trim, translucent glass.

func NewBodyMaterial() *Material {
	m := NewMaterial("body", color.RGBA{R: 0xff, G: 0x00, B: 0x00, A: 255})
	m.Metallic = 1.0
	return m
}

func NewTrimMaterial() *Material {
	m := NewMaterial("details", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 255})
	m.Metallic = 1.0
	return m
}

func NewGlassMaterial() *Material {
	m := NewMaterial("glass", color.RGBA{R: 0xff, G: 0xff, B: 0xff, A: 255})
	m.Alpha = 110
	return m
}

// Swatches offered on the number keys.
var Swatches = []color.RGBA{
	{0xff, 0x00, 0x00, 0xff}, // red
	{0xc0, 0xc5, 0xcb, 0xff}, // silver
	{0x1a, 0x25, 0x52, 0xff}, // midnight blue
	{0x0d, 0x54, 0x2e, 0xff}, // british racing green
	{0xff, 0xb3, 0x00, 0xff}, // amber
	{0x10, 0x10, 0x10, 0xff}, // near black
	{0xff, 0xff, 0xff, 0xff}, // white
	{0x6b, 0x2d, 0x5c, 0xff}, // plum
	{0x8c, 0x5a, 0x2b, 0xff}, // bronze
}
