package hickory

import (
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// PlotOptions configures a Plot container. Everything is optional.
type PlotOptions struct {
	Title  string
	XLabel string
	YLabel string

	XLim *Range
	YLim *Range

	XLog bool
	YLog bool

	// ARatio is the output aspect ratio, height over width. 0 keeps the
	// default figure shape.
	ARatio float64

	// Margin pads both axis ranges by this fraction of the data range.
	Margin *float64

	// Legend enables the legend. Entries come from item labels.
	Legend *Legend

	// Cycler overrides the default style cycler. A caller-supplied
	// cycler is shared and keeps its cursor state across renders.
	Cycler *MultiCycler

	// FigSize overrides the output figure geometry.
	FigSize *FigureSize

	// CurveNoneIsNoLine selects the meaning of an explicit "none"
	// linestyle on curve calls. nil means true.
	CurveNoneIsNoLine *bool
}

// Plot is a single figure with one axes. Items accumulate and the figure is
// rendered lazily: every render replays all items onto a fresh axes, so the
// default style cycling restarts from the first value.
type Plot struct {
	opts   PlotOptions
	items  []Item
	logger logrus.FieldLogger

	renderer *GonumRenderer
	axes     *Axes
}

func NewPlot(opts PlotOptions) *Plot {
	return &Plot{
		opts:   opts,
		logger: logrus.WithField("tag", "Plot"),
	}
}

// Add appends items to the figure and invalidates any rendered state.
func (p *Plot) Add(items ...Item) {
	p.items = append(p.items, items...)
	p.resetFig()
}

// Plot adds a scatter of x vs y (no-line policy).
func (p *Plot) Plot(x, y []float64, st *Style) error {
	if err := checkSameSize("x", x, "y", y); err != nil {
		return err
	}
	p.Add(&Points{X: x, Y: y, Style: styleOrZero(st)})
	return nil
}

// ErrorBar adds points with symmetric error bars (no-line policy).
func (p *Plot) ErrorBar(x, y, xerr, yerr []float64, st *Style) error {
	if err := checkSameSize("x", x, "y", y); err != nil {
		return err
	}
	if xerr != nil {
		if err := checkSameSize("x", x, "xerr", xerr); err != nil {
			return err
		}
	}
	if yerr != nil {
		if err := checkSameSize("y", y, "yerr", yerr); err != nil {
			return err
		}
	}
	p.Add(&Points{X: x, Y: y, XErr: xerr, YErr: yerr, Style: styleOrZero(st)})
	return nil
}

// Curve adds a line through x vs y (line policy).
func (p *Plot) Curve(x, y []float64, st *Style) error {
	if err := checkSameSize("x", x, "y", y); err != nil {
		return err
	}
	p.Add(&Curve{X: x, Y: y, Style: styleOrZero(st)})
	return nil
}

// Function adds f drawn over rng (nil means the data range of the other
// items) at npts points.
func (p *Plot) Function(f func(float64) float64, rng *Range, npts int, st *Style) {
	p.Add(&Function{F: f, Range: rng, Samples: npts, Style: styleOrZero(st)})
}

// Hist adds a histogram of data.
func (p *Plot) Hist(data []float64, o *HistOptions) {
	var opts HistOptions
	if o != nil {
		opts = *o
	}
	p.Add(&Histogram{Data: data, Options: opts})
}

// HLine adds a horizontal reference line at y.
func (p *Plot) HLine(y float64, st *Style) {
	p.Add(&HLine{Y: y, Style: styleOrZero(st)})
}

// VLine adds a vertical reference line at x.
func (p *Plot) VLine(x float64, st *Style) {
	p.Add(&VLine{X: x, Style: styleOrZero(st)})
}

// render builds the figure if it is not already built.
func (p *Plot) render() (*GonumRenderer, *Axes, error) {
	if p.renderer != nil {
		return p.renderer, p.axes, nil
	}

	r := NewGonumRenderer()
	ax := NewAxes(r, p.opts.Cycler)
	if p.opts.CurveNoneIsNoLine != nil {
		ax.SetCurveNoneIsNoLine(*p.opts.CurveNoneIsNoLine)
	}

	if p.opts.Title != "" {
		ax.SetTitle(p.opts.Title)
	}
	if p.opts.XLabel != "" {
		ax.SetXLabel(p.opts.XLabel)
	}
	if p.opts.YLabel != "" {
		ax.SetYLabel(p.opts.YLabel)
	}
	if p.opts.XLog {
		if err := ax.SetXScale("log"); err != nil {
			return nil, nil, err
		}
	}
	if p.opts.YLog {
		if err := ax.SetYScale("log"); err != nil {
			return nil, nil, err
		}
	}
	if p.opts.XLim != nil {
		ax.SetXLim(*p.opts.XLim)
	}
	if p.opts.YLim != nil {
		ax.SetYLim(*p.opts.YLim)
	}
	if p.opts.Margin != nil {
		ax.SetMargin(*p.opts.Margin)
	}

	for i, item := range p.items {
		if err := item.addTo(ax); err != nil {
			return nil, nil, fmt.Errorf("item %d: %w", i, err)
		}
	}

	if p.opts.Legend != nil {
		if err := r.ConfigureLegend(*p.opts.Legend); err != nil {
			return nil, nil, err
		}
	}

	ax.finish()

	p.renderer = r
	p.axes = ax
	return r, ax, nil
}

func (p *Plot) resetFig() {
	p.renderer = nil
	p.axes = nil
}

func (p *Plot) figureSize() FigureSize {
	fs := FigureSize{}
	if p.opts.FigSize != nil {
		fs = *p.opts.FigSize
	}
	fs = fs.withDefaults()
	if p.opts.ARatio > 0 {
		fs.Height = fs.Width * p.opts.ARatio
	}
	return fs
}

// Write renders the figure and writes it to path. The format comes from the
// file extension: .png, .pdf, .svg or .tex.
func (p *Plot) Write(path string) error {
	r, _, err := p.render()
	if err != nil {
		return err
	}
	return r.Save(path, p.figureSize())
}

// WriteTo renders the figure and writes it in the given format.
func (p *Plot) WriteTo(w io.Writer, format Format) (int64, error) {
	r, _, err := p.render()
	if err != nil {
		return 0, err
	}
	return r.WriteTo(w, format, p.figureSize())
}

// TableOptions configures a Table container.
type TableOptions struct {
	Rows int
	Cols int

	// SharedX gives every cell the same x range and hides x tick labels
	// on all rows but the bottom one.
	SharedX bool

	// HeightRatios gives each row a relative height. Must have one entry
	// per row; nil means equal heights.
	HeightRatios []float64

	FigSize *FigureSize
}

// Table is a grid of Plots rendered onto one figure.
type Table struct {
	opts   TableOptions
	cells  []*Plot // row major
	logger logrus.FieldLogger
}

func NewTable(opts TableOptions) (*Table, error) {
	if opts.Rows < 1 || opts.Cols < 1 {
		return nil, fmt.Errorf("table needs at least 1x1 cells, got %dx%d", opts.Rows, opts.Cols)
	}
	if opts.HeightRatios != nil && len(opts.HeightRatios) != opts.Rows {
		return nil, fmt.Errorf("got %d height ratios for %d rows", len(opts.HeightRatios), opts.Rows)
	}
	for _, hr := range opts.HeightRatios {
		if hr <= 0 {
			return nil, fmt.Errorf("height ratios must be positive, got %v", hr)
		}
	}

	cells := make([]*Plot, opts.Rows*opts.Cols)
	for i := range cells {
		cells[i] = NewPlot(PlotOptions{})
	}

	return &Table{
		opts:   opts,
		cells:  cells,
		logger: logrus.WithField("tag", "Table"),
	}, nil
}

// Len returns the number of cells.
func (t *Table) Len() int {
	return len(t.cells)
}

// Index returns the i-th cell in row major order.
func (t *Table) Index(i int) *Plot {
	return t.cells[i]
}

// At returns the cell at (row, col).
func (t *Table) At(row, col int) *Plot {
	return t.cells[row*t.opts.Cols+col]
}

// Plots returns all cells in row major order.
func (t *Table) Plots() []*Plot {
	out := make([]*Plot, len(t.cells))
	copy(out, t.cells)
	return out
}

func (t *Table) figureSize() FigureSize {
	if t.opts.FigSize != nil {
		return t.opts.FigSize.withDefaults()
	}

	fs := FigureSize{Width: DefaultFigWidth}
	fs.Height = fs.Width * float64(t.opts.Rows) / float64(t.opts.Cols)
	return fs.withDefaults()
}

// renderCells renders every cell and applies the shared-x treatment.
func (t *Table) renderCells() ([][]*plot.Plot, error) {
	rows, cols := t.opts.Rows, t.opts.Cols

	grid := make([][]*plot.Plot, rows)
	axes := make([][]*Axes, rows)
	for r := 0; r < rows; r++ {
		grid[r] = make([]*plot.Plot, cols)
		axes[r] = make([]*Axes, cols)
		for c := 0; c < cols; c++ {
			gr, ax, err := t.At(r, c).render()
			if err != nil {
				return nil, fmt.Errorf("cell (%d,%d): %w", r, c, err)
			}
			grid[r][c] = gr.Plot()
			axes[r][c] = ax
		}
	}

	if t.opts.SharedX {
		t.shareX(grid, axes)
	}

	return grid, nil
}

// shareX applies the union x data range to every cell and blanks the x tick
// labels everywhere but the bottom row.
func (t *Table) shareX(grid [][]*plot.Plot, axes [][]*Axes) {
	var union *Range
	for r := range axes {
		for _, ax := range axes[r] {
			if ax.xdata == nil {
				continue
			}
			if union == nil {
				u := *ax.xdata
				union = &u
				continue
			}
			union.Min = Min(union.Min, ax.xdata.Min)
			union.Max = Max(union.Max, ax.xdata.Max)
		}
	}

	for r := range grid {
		for c, gp := range grid[r] {
			if union != nil && axes[r][c].xlim == nil {
				gp.X.Min, gp.X.Max = union.Min, union.Max
			}
			if r != len(grid)-1 {
				gp.X.Tick.Marker = blankLabels{Ticker: gp.X.Tick.Marker}
			}
		}
	}
}

// Write renders the grid and writes it to path, format per file extension.
func (t *Table) Write(path string) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := t.WriteTo(f, format); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// WriteTo renders the grid and writes it in the given format.
func (t *Table) WriteTo(w io.Writer, format Format) (int64, error) {
	grid, err := t.renderCells()
	if err != nil {
		return 0, err
	}

	return writeCanvas(w, format, t.figureSize(), func(dc draw.Canvas) {
		t.drawGrid(dc, grid)
	})
}

const tilePadPts = 8

func (t *Table) drawGrid(dc draw.Canvas, grid [][]*plot.Plot) {
	if t.opts.HeightRatios == nil {
		tiles := draw.Tiles{
			Rows: t.opts.Rows,
			Cols: t.opts.Cols,
			PadX: vg.Points(tilePadPts),
			PadY: vg.Points(tilePadPts),
		}
		canvases := plot.Align(grid, tiles, dc)
		for r := range grid {
			for c := range grid[r] {
				grid[r][c].Draw(canvases[r][c])
			}
		}
		return
	}

	for r := range grid {
		for c := range grid[r] {
			grid[r][c].Draw(t.cellCanvas(dc, r, c))
		}
	}
}

// cellCanvas slices the canvas for cell (row, col) honoring HeightRatios.
// Row 0 is at the top.
func (t *Table) cellCanvas(dc draw.Canvas, row, col int) draw.Canvas {
	var total float64
	for _, hr := range t.opts.HeightRatios {
		total += hr
	}

	width := dc.Max.X - dc.Min.X
	height := dc.Max.Y - dc.Min.Y
	pad := vg.Points(tilePadPts)

	colWidth := width / vg.Length(t.opts.Cols)
	x0 := dc.Min.X + vg.Length(col)*colWidth

	// fraction of the height above this row
	var above float64
	for r := 0; r < row; r++ {
		above += t.opts.HeightRatios[r]
	}
	rowHeight := vg.Length(t.opts.HeightRatios[row]/total) * height
	y1 := dc.Max.Y - vg.Length(above/total)*height

	rect := vg.Rectangle{
		Min: vg.Point{X: x0 + pad/2, Y: y1 - rowHeight + pad/2},
		Max: vg.Point{X: x0 + colWidth - pad/2, Y: y1 - pad/2},
	}
	return draw.Canvas{Canvas: dc.Canvas, Rectangle: rect}
}

// blankLabels keeps tick positions but hides the labels, for shared axes.
type blankLabels struct {
	plot.Ticker
}

func (b blankLabels) Ticks(min, max float64) []plot.Tick {
	ticks := b.Ticker.Ticks(min, max)
	for i := range ticks {
		ticks[i].Label = ""
	}
	return ticks
}

func checkSameSize(an string, a []float64, bn string, b []float64) error {
	if len(a) != len(b) {
		return fmt.Errorf("%s and %s must be same size, got %d and %d", an, bn, len(a), len(b))
	}
	return nil
}

func styleOrZero(st *Style) Style {
	if st == nil {
		return Style{}
	}
	return *st
}
