package hickory

import "testing"

func TestResolveMarker(t *testing.T) {
	t.Run("names map to codes", func(t *testing.T) {
		cases := map[string]string{
			"circle":        "o",
			"square":        "s",
			"triangle":      "^",
			"triangle_up":   "^",
			"triangle_down": "v",
			"diamond":       "d",
			"thick_diamond": "D",
			"hexagon":       "h",
			"hexagon2":      "H",
			"filled_plus":   "P",
			"filled_x":      "X",
			"star":          "*",
			"pentagon":      "p",
		}
		for name, want := range cases {
			if got := ResolveMarker(name); got != want {
				t.Fatalf("ResolveMarker(%q) = %q, want %q", name, got, want)
			}
		}
	})

	t.Run("codes pass through", func(t *testing.T) {
		for _, code := range DefaultMarkers {
			if got := ResolveMarker(code); got != code {
				t.Fatalf("ResolveMarker(%q) = %q, want passthrough", code, got)
			}
		}
	})

	t.Run("unknown values pass through", func(t *testing.T) {
		if got := ResolveMarker("blob"); got != "blob" {
			t.Fatalf("ResolveMarker(blob) = %q, want blob", got)
		}
	})
}
