package hickory

import "testing"

func TestBinsForWidth(t *testing.T) {
	t.Run("exact multiple", func(t *testing.T) {
		bins, err := BinsForWidth(0, 1, 0.1)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if bins != 10 {
			t.Fatalf("expected 10 bins, got %d", bins)
		}
	})

	t.Run("rounds to nearest", func(t *testing.T) {
		// 9.6 widths rounds up to 10 bins
		bins, err := BinsForWidth(0, 0.96, 0.1)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if bins != 10 {
			t.Fatalf("expected 10 bins, got %d", bins)
		}
	})

	t.Run("clamps to one bin", func(t *testing.T) {
		bins, err := BinsForWidth(0, 0.05, 1)
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if bins != 1 {
			t.Fatalf("expected 1 bin, got %d", bins)
		}
	})

	t.Run("non positive width errors", func(t *testing.T) {
		for _, w := range []float64{0, -0.5} {
			if _, err := BinsForWidth(0, 1, w); err == nil {
				t.Fatalf("expected error for width %v, got nil", w)
			}
		}
	})
}

func TestDeriveBins(t *testing.T) {
	data := []float64{0, 0.25, 0.5, 0.75, 1}

	t.Run("default bin count", func(t *testing.T) {
		bins, rng, err := deriveBins(data, &HistOptions{})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if bins != DefaultBins {
			t.Fatalf("expected %d bins, got %d", DefaultBins, bins)
		}
		if rng.Min != 0 || rng.Max != 1 {
			t.Fatalf("expected data range [0, 1], got %+v", rng)
		}
	})

	t.Run("explicit bins", func(t *testing.T) {
		bins, _, err := deriveBins(data, &HistOptions{Bins: 25})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if bins != 25 {
			t.Fatalf("expected 25 bins, got %d", bins)
		}
	})

	t.Run("binsize beats bins", func(t *testing.T) {
		bins, _, err := deriveBins(data, &HistOptions{Bins: 25, BinSize: Opt(0.1)})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if bins != 10 {
			t.Fatalf("expected 10 bins from binsize, got %d", bins)
		}
	})

	t.Run("range beats min and max", func(t *testing.T) {
		_, rng, err := deriveBins(data, &HistOptions{
			Range: &Range{Min: -1, Max: 2},
			Min:   Opt(0.5),
			Max:   Opt(0.6),
		})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if rng.Min != -1 || rng.Max != 2 {
			t.Fatalf("expected [-1, 2], got %+v", rng)
		}
	})

	t.Run("min and max fill in one end each", func(t *testing.T) {
		_, rng, err := deriveBins(data, &HistOptions{Min: Opt(-1.0)})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if rng.Min != -1 || rng.Max != 1 {
			t.Fatalf("expected [-1, 1], got %+v", rng)
		}

		_, rng, err = deriveBins(data, &HistOptions{Max: Opt(2.0)})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if rng.Min != 0 || rng.Max != 2 {
			t.Fatalf("expected [0, 2], got %+v", rng)
		}
	})

	t.Run("no data and no range errors", func(t *testing.T) {
		if _, _, err := deriveBins(nil, &HistOptions{BinSize: Opt(0.1)}); err == nil {
			t.Fatal("expected error for missing data, got nil")
		}
	})

	t.Run("explicit range needs no data", func(t *testing.T) {
		bins, _, err := deriveBins(nil, &HistOptions{
			BinSize: Opt(0.1),
			Range:   &Range{Min: 0, Max: 1},
		})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		if bins != 10 {
			t.Fatalf("expected 10 bins, got %d", bins)
		}
	})
}
