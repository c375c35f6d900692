package hickory

import "testing"

func TestGlyphForMarker(t *testing.T) {
	t.Run("default cycle fully covered", func(t *testing.T) {
		for _, code := range DefaultMarkers {
			if _, err := glyphForMarker(code); err != nil {
				t.Fatalf("no glyph for default marker %q: %v", code, err)
			}
		}
	})

	t.Run("named markers fully covered", func(t *testing.T) {
		for name, code := range MarkerNames {
			if _, err := glyphForMarker(code); err != nil {
				t.Fatalf("no glyph for marker %q (code %q): %v", name, code, err)
			}
		}
	})

	t.Run("unknown code errors", func(t *testing.T) {
		if _, err := glyphForMarker("?"); err == nil {
			t.Fatal("expected error for unknown marker code, got nil")
		}
	})
}

func TestOutlineGlyphForMarker(t *testing.T) {
	// the simple filled shapes have stroked variants for edge colors
	for _, code := range []string{"o", "s", "^", "v", "d", "D", "h", "H", "p", "8"} {
		if _, ok := outlineGlyphForMarker(code); !ok {
			t.Fatalf("no outline glyph for marker %q", code)
		}
	}

	// the cross shapes do not; edge drawing is skipped for them
	for _, code := range []string{"P", "X"} {
		if _, ok := outlineGlyphForMarker(code); ok {
			t.Fatalf("unexpected outline glyph for marker %q", code)
		}
	}
}
