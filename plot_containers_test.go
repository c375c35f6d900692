package hickory

import (
	"bytes"
	"strings"
	"testing"
)

func TestPlotItems(t *testing.T) {
	t.Run("size mismatch errors at add time", func(t *testing.T) {
		p := NewPlot(PlotOptions{})
		if err := p.Plot([]float64{1, 2}, []float64{1}, nil); err == nil {
			t.Fatal("expected error, got nil")
		}
		if err := p.Curve([]float64{1}, []float64{1, 2}, nil); err == nil {
			t.Fatal("expected error, got nil")
		}
		if err := p.ErrorBar([]float64{1, 2}, []float64{1, 2}, []float64{1}, nil, nil); err == nil {
			t.Fatal("expected error, got nil")
		}
	})

	t.Run("item errors name the item", func(t *testing.T) {
		p := NewPlot(PlotOptions{})
		if err := p.Plot([]float64{1}, []float64{1}, nil); err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}
		p.Hist(nil, &HistOptions{BinSize: Opt(0.1)}) // fails at render

		_, _, err := p.render()
		if err == nil {
			t.Fatal("expected render error, got nil")
		}
		if !strings.Contains(err.Error(), "item 1:") {
			t.Fatalf("expected item index in error, got %v", err)
		}
	})
}

func TestPlotRenderCaching(t *testing.T) {
	p := NewPlot(PlotOptions{})
	if err := p.Plot([]float64{1, 2}, []float64{3, 4}, nil); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	r1, _, err := p.render()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	r2, _, err := p.render()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if r1 != r2 {
		t.Fatal("render did not cache the figure")
	}

	// adding an item invalidates the cached figure
	p.HLine(0, nil)
	r3, _, err := p.render()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if r3 == r1 {
		t.Fatal("render reused a stale figure after Add")
	}
}

func TestPlotCyclingRestartsPerRender(t *testing.T) {
	// the default cycler is rebuilt every render, so the same items get the
	// same styles no matter how many times the figure is rendered
	p := NewPlot(PlotOptions{})
	if err := p.Plot([]float64{1, 2}, []float64{3, 4}, nil); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if _, _, err := p.render(); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	// force a re-render with one more item; the first item must resolve to
	// the first default marker again rather than continuing the old cursor
	if err := p.Plot([]float64{5, 6}, []float64{7, 8}, nil); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	_, ax, err := p.render()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	rs, err := NewAxes(newFakeRenderer(), nil).resolver.resolveNoLineDefault(nil)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	got, err := ax.resolver.cycler.nextMarker()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	// two items were drawn; the cursor must be exactly two past the start
	if rs.Marker != DefaultMarkers[0] || got != DefaultMarkers[2] {
		t.Fatalf("cycling did not restart: first %q, cursor at %q", rs.Marker, got)
	}
}

func TestPlotWriteTo(t *testing.T) {
	p := NewPlot(PlotOptions{Title: "test"})
	if err := p.Plot([]float64{1, 2, 3}, []float64{1, 4, 9}, nil); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	var buf bytes.Buffer
	n, err := p.WriteTo(&buf, FormatPNG)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if n == 0 || buf.Len() == 0 {
		t.Fatal("expected PNG bytes, got none")
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatal("output is not a PNG")
	}
}

func TestPlotFigureSize(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		p := NewPlot(PlotOptions{})
		fs := p.figureSize()
		if fs.Width != DefaultFigWidth || fs.Height != DefaultFigHeight || fs.DPI != DefaultDPI {
			t.Fatalf("unexpected defaults: %+v", fs)
		}
	})

	t.Run("aspect ratio sets height", func(t *testing.T) {
		p := NewPlot(PlotOptions{ARatio: 1})
		fs := p.figureSize()
		if fs.Height != fs.Width {
			t.Fatalf("aspect ratio not applied: %+v", fs)
		}
	})
}

func TestNewTable(t *testing.T) {
	t.Run("validates shape", func(t *testing.T) {
		if _, err := NewTable(TableOptions{Rows: 0, Cols: 2}); err == nil {
			t.Fatal("expected error for 0 rows, got nil")
		}
		if _, err := NewTable(TableOptions{Rows: 2, Cols: 2, HeightRatios: []float64{1}}); err == nil {
			t.Fatal("expected error for ratio count mismatch, got nil")
		}
		if _, err := NewTable(TableOptions{Rows: 1, Cols: 1, HeightRatios: []float64{-1}}); err == nil {
			t.Fatal("expected error for negative ratio, got nil")
		}
	})

	t.Run("cell addressing", func(t *testing.T) {
		tab, err := NewTable(TableOptions{Rows: 2, Cols: 3})
		if err != nil {
			t.Fatalf("expected nil error, got %v", err)
		}

		if tab.Len() != 6 {
			t.Fatalf("expected 6 cells, got %d", tab.Len())
		}
		// row major: (1, 2) is the last cell
		if tab.At(1, 2) != tab.Index(5) {
			t.Fatal("At and Index disagree")
		}
		if tab.At(0, 0) == tab.At(0, 1) {
			t.Fatal("cells are not distinct")
		}
		if len(tab.Plots()) != 6 {
			t.Fatalf("expected 6 plots, got %d", len(tab.Plots()))
		}
	})
}

func TestTableWriteTo(t *testing.T) {
	tab, err := NewTable(TableOptions{Rows: 2, Cols: 1, SharedX: true})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if err := tab.At(0, 0).Curve([]float64{0, 1}, []float64{0, 1}, nil); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := tab.At(1, 0).Curve([]float64{5, 9}, []float64{1, 0}, nil); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	var buf bytes.Buffer
	if _, err := tab.WriteTo(&buf, FormatPNG); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("\x89PNG")) {
		t.Fatal("output is not a PNG")
	}
}

func TestTableSharedX(t *testing.T) {
	tab, err := NewTable(TableOptions{Rows: 2, Cols: 1, SharedX: true})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if err := tab.At(0, 0).Curve([]float64{0, 1}, []float64{0, 1}, nil); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if err := tab.At(1, 0).Curve([]float64{5, 9}, []float64{1, 0}, nil); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	grid, err := tab.renderCells()
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	// both cells span the union x range
	for r := 0; r < 2; r++ {
		gp := grid[r][0]
		if gp.X.Min != 0 || gp.X.Max != 9 {
			t.Fatalf("row %d x range [%v, %v], want [0, 9]", r, gp.X.Min, gp.X.Max)
		}
	}

	// only the bottom row keeps labeled x ticks
	top := grid[0][0].X.Tick.Marker.Ticks(0, 9)
	for _, tick := range top {
		if tick.Label != "" {
			t.Fatalf("top row has labeled tick %q", tick.Label)
		}
	}
	bottom := grid[1][0].X.Tick.Marker.Ticks(0, 9)
	labeled := false
	for _, tick := range bottom {
		if tick.Label != "" {
			labeled = true
		}
	}
	if !labeled {
		t.Fatal("bottom row lost its tick labels")
	}
}

func TestTableFigureSize(t *testing.T) {
	tab, err := NewTable(TableOptions{Rows: 2, Cols: 1})
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	fs := tab.figureSize()
	if fs.Height != fs.Width*2 {
		t.Fatalf("expected height = 2x width for a 2x1 grid, got %+v", fs)
	}
}
