package hickory

import (
	"reflect"
	"testing"
)

func TestLineStyleByName(t *testing.T) {
	t.Run("named styles", func(t *testing.T) {
		cases := map[string]LineStyle{
			"solid":   Solid,
			"dashed":  Dashed,
			"dotted":  Dotted,
			"dashdot": DashDot,
			"none":    NoLine,
		}
		for name, want := range cases {
			got, ok := LineStyleByName(name)
			if !ok {
				t.Fatalf("LineStyleByName(%q) not found", name)
			}
			if !reflect.DeepEqual(got, want) {
				t.Fatalf("LineStyleByName(%q) = %+v, want %+v", name, got, want)
			}
		}
	})

	t.Run("extra styles", func(t *testing.T) {
		got, ok := LineStyleByName("dense dashdot")
		if !ok {
			t.Fatal("expected dense dashdot to resolve")
		}
		want := []float64{3, 1, 1, 1}
		if !reflect.DeepEqual(got.Dashes, want) {
			t.Fatalf("unexpected dashes: got %v want %v", got.Dashes, want)
		}
	})

	t.Run("unknown name", func(t *testing.T) {
		if _, ok := LineStyleByName("wavy"); ok {
			t.Fatal("expected wavy to be unknown")
		}
	})
}

func TestLineStyleIsNone(t *testing.T) {
	if !NoLine.IsNone() {
		t.Fatal("NoLine must report IsNone")
	}
	for _, ls := range DefaultLineStyles {
		if ls.IsNone() {
			t.Fatalf("default cycle entry %q reports IsNone", ls.Name)
		}
	}
}

func TestDefaultLineStylesDistinct(t *testing.T) {
	seen := map[string]bool{}
	for _, ls := range DefaultLineStyles {
		if seen[ls.Name] {
			t.Fatalf("duplicate linestyle %q in default cycle", ls.Name)
		}
		seen[ls.Name] = true
	}
}
