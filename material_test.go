package carshow

import (
	"image/color"
	"testing"
)

func TestParseHexColor(t *testing.T) {
	testCases := []struct {
		name    string
		input   string
		want    color.RGBA
		wantErr bool
	}{
		{"red with hash", "#ff0000", color.RGBA{0xff, 0x00, 0x00, 0xff}, false},
		{"no hash", "00ff00", color.RGBA{0x00, 0xff, 0x00, 0xff}, false},
		{"uppercase", "#A1B2C3", color.RGBA{0xa1, 0xb2, 0xc3, 0xff}, false},
		{"mixed case", "#aAbBcC", color.RGBA{0xaa, 0xbb, 0xcc, 0xff}, false},
		{"too short", "#fff", color.RGBA{}, true},
		{"too long", "#ff00ff00", color.RGBA{}, true},
		{"bad digit", "#ff00gg", color.RGBA{}, true},
		{"empty", "", color.RGBA{}, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseHexColor(tc.input)
			if tc.wantErr {
				if err == nil {
					t.Fatalf("ParseHexColor(%q) = %v, want error", tc.input, got)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseHexColor(%q) returned error: %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ParseHexColor(%q) = %v, want %v", tc.input, got, tc.want)
			}
		})
	}
}

func TestSetHexColorUpdatesOnlyThatMaterial(t *testing.T) {
	body := NewBodyMaterial()
	trim := NewTrimMaterial()
	glass := NewGlassMaterial()

	trimBefore := trim.Col
	glassBefore := glass.Col

	if err := body.SetHexColor("#1a2552"); err != nil {
		t.Fatalf("SetHexColor returned error: %v", err)
	}

	want := color.RGBA{0x1a, 0x25, 0x52, 0xff}
	if body.Col != want {
		t.Errorf("body color = %v, want %v", body.Col, want)
	}
	if trim.Col != trimBefore {
		t.Errorf("trim color changed to %v", trim.Col)
	}
	if glass.Col != glassBefore {
		t.Errorf("glass color changed to %v", glass.Col)
	}
}

func TestSetHexColorRejectsBadInputAndKeepsOldColor(t *testing.T) {
	body := NewBodyMaterial()
	before := body.Col

	if err := body.SetHexColor("not-a-color"); err == nil {
		t.Fatal("SetHexColor accepted bad input")
	}
	if body.Col != before {
		t.Errorf("color changed to %v after a rejected input", body.Col)
	}
}

func TestGlassMaterialIsTranslucent(t *testing.T) {
	if a := NewGlassMaterial().Alpha; a >= 255 {
		t.Errorf("glass alpha = %d, want translucent", a)
	}
	if a := NewBodyMaterial().Alpha; a != 255 {
		t.Errorf("body alpha = %d, want opaque", a)
	}
}
