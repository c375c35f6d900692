package hickory

import (
	"fmt"
	"image/color"
	"io"
	"os"

	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"gonum.org/v1/plot/vg/vgimg"
	"gonum.org/v1/plot/vg/vgpdf"
	"gonum.org/v1/plot/vg/vgsvg"
	"gonum.org/v1/plot/vg/vgtex"
)

const (
	defaultLineWidthPts  = 1
	defaultMarkerSizePts = 3
	defaultCapSizePts    = 2
)

// GonumRenderer implements Renderer on top of a gonum/plot plot.Plot. All
// drawing, layout and export work is delegated; this type only translates
// resolved style values into gonum plotters.
type GonumRenderer struct {
	plot   *plot.Plot
	logger logrus.FieldLogger
}

func NewGonumRenderer() *GonumRenderer {
	p := plot.New()
	p.X.Tick.Marker = ScalarTicks{}
	p.Y.Tick.Marker = ScalarTicks{}

	return &GonumRenderer{
		plot:   p,
		logger: logrus.WithField("tag", "GonumRenderer"),
	}
}

// Plot exposes the underlying gonum plot for callers that need to reach past
// this layer.
func (g *GonumRenderer) Plot() *plot.Plot {
	return g.plot
}

func (g *GonumRenderer) DrawSeries(s SeriesSpec) error {
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("x and y must be same size, got %d and %d", len(s.X), len(s.Y))
	}

	xys := makeXYs(s.X, s.Y)
	col, err := parseColor(s.Style.Color)
	if err != nil {
		return err
	}
	if s.Style.Alpha > 0 {
		col = withAlpha(col, s.Style.Alpha)
	}

	lineWidth := s.Style.LineWidth
	if lineWidth <= 0 {
		lineWidth = defaultLineWidthPts
	}
	radius := s.Style.MarkerSize
	if radius <= 0 {
		radius = defaultMarkerSizePts
	}

	var thumbs []plot.Thumbnailer

	if s.Style.HasLine() {
		dashes, err := dashPattern(s.Style.LineStyle)
		if err != nil {
			return err
		}

		l, err := plotter.NewLine(xys)
		if err != nil {
			return err
		}
		l.LineStyle = draw.LineStyle{
			Color:    col,
			Width:    vg.Points(lineWidth),
			Dashes:   dashes,
			DashOffs: vg.Points(s.Style.LineStyle.Offset),
		}
		g.plot.Add(l)
		thumbs = append(thumbs, l)
	}

	if s.Style.HasMarker() {
		glyph, err := glyphForMarker(s.Style.Marker)
		if err != nil {
			return err
		}

		sc, err := plotter.NewScatter(xys)
		if err != nil {
			return err
		}
		sc.GlyphStyle = draw.GlyphStyle{
			Color:  col,
			Radius: vg.Points(radius),
			Shape:  glyph,
		}
		g.plot.Add(sc)
		thumbs = append(thumbs, sc)

		if s.Style.EdgeColor != "" {
			if err := g.drawMarkerEdges(xys, s.Style, radius); err != nil {
				return err
			}
		}
	}

	if err := g.drawErrorBars(xys, s, col); err != nil {
		return err
	}

	if s.Style.Label != "" && len(thumbs) > 0 {
		g.plot.Legend.Add(s.Style.Label, thumbs...)
	}

	return nil
}

// drawMarkerEdges overlays outline glyphs in the edge color. Markers without
// an outline variant keep their fill only.
func (g *GonumRenderer) drawMarkerEdges(xys plotter.XYs, sty ResolvedStyle, radius float64) error {
	outline, ok := outlineGlyphForMarker(sty.Marker)
	if !ok {
		g.logger.WithField("marker", sty.Marker).Debug("no outline glyph for marker, ignoring edge color")
		return nil
	}

	edgeCol, err := parseColor(sty.EdgeColor)
	if err != nil {
		return err
	}

	edge, err := plotter.NewScatter(xys)
	if err != nil {
		return err
	}
	edge.GlyphStyle = draw.GlyphStyle{
		Color:  edgeCol,
		Radius: vg.Points(radius),
		Shape:  outline,
	}
	g.plot.Add(edge)
	return nil
}

func (g *GonumRenderer) drawErrorBars(xys plotter.XYs, s SeriesSpec, col color.Color) error {
	capSize := s.CapSize
	if capSize <= 0 {
		capSize = defaultCapSizePts
	}
	lineWidth := s.Style.LineWidth
	if lineWidth <= 0 {
		lineWidth = defaultLineWidthPts
	}
	sty := draw.LineStyle{Color: col, Width: vg.Points(lineWidth)}

	if s.YErr != nil {
		if len(s.YErr) != len(s.Y) {
			return fmt.Errorf("y and yerr must be same size, got %d and %d", len(s.Y), len(s.YErr))
		}

		bars, err := plotter.NewYErrorBars(yErrPoints{XYs: xys, YErrors: symmetricErrors(s.YErr)})
		if err != nil {
			return err
		}
		bars.LineStyle = sty
		bars.CapWidth = vg.Points(capSize)
		g.plot.Add(bars)
	}

	if s.XErr != nil {
		if len(s.XErr) != len(s.X) {
			return fmt.Errorf("x and xerr must be same size, got %d and %d", len(s.X), len(s.XErr))
		}

		bars, err := plotter.NewXErrorBars(xErrPoints{XYs: xys, XErrors: plotter.XErrors(symmetricErrors(s.XErr))})
		if err != nil {
			return err
		}
		bars.LineStyle = sty
		bars.CapWidth = vg.Points(capSize)
		g.plot.Add(bars)
	}

	return nil
}

func (g *GonumRenderer) DrawHistogram(h HistogramSpec) error {
	if h.Bins < 1 {
		return fmt.Errorf("histogram needs at least 1 bin, got %d", h.Bins)
	}
	if h.Range.Max <= h.Range.Min {
		return fmt.Errorf("histogram range is empty: [%v, %v]", h.Range.Min, h.Range.Max)
	}

	col, err := parseColor(h.Color)
	if err != nil {
		return err
	}
	fill := col
	if h.Alpha > 0 {
		fill = withAlpha(col, h.Alpha)
	}

	hist := &plotter.Histogram{
		Bins:      binValues(h.Values, h.Bins, h.Range),
		Width:     h.Range.Max - h.Range.Min,
		FillColor: fill,
		LineStyle: draw.LineStyle{Color: col, Width: vg.Points(defaultLineWidthPts)},
	}
	g.plot.Add(hist)

	if h.Label != "" {
		g.plot.Legend.Add(h.Label, hist)
	}

	return nil
}

// binValues counts values into n equal width bins over rng. Values outside
// the range are dropped.
func binValues(values []float64, n int, rng Range) []plotter.HistogramBin {
	width := (rng.Max - rng.Min) / float64(n)

	bins := make([]plotter.HistogramBin, n)
	for i := range bins {
		bins[i].Min = rng.Min + float64(i)*width
		bins[i].Max = bins[i].Min + width
	}
	bins[n-1].Max = rng.Max

	for _, v := range values {
		if v < rng.Min || v > rng.Max {
			continue
		}
		idx := int((v - rng.Min) / width)
		if idx >= n {
			idx = n - 1
		}
		bins[idx].Weight++
	}

	return bins
}

func (g *GonumRenderer) DrawHLine(l RefLineSpec) error {
	sty, err := refLineStyle(l.Style)
	if err != nil {
		return err
	}
	g.plot.Add(hLinePlotter{y: l.Position, sty: sty})
	return nil
}

func (g *GonumRenderer) DrawVLine(l RefLineSpec) error {
	sty, err := refLineStyle(l.Style)
	if err != nil {
		return err
	}
	g.plot.Add(vLinePlotter{x: l.Position, sty: sty})
	return nil
}

func refLineStyle(rs ResolvedStyle) (draw.LineStyle, error) {
	col, err := parseColor(rs.Color)
	if err != nil {
		return draw.LineStyle{}, err
	}
	if rs.Alpha > 0 {
		col = withAlpha(col, rs.Alpha)
	}

	dashes, err := dashPattern(rs.LineStyle)
	if err != nil {
		return draw.LineStyle{}, err
	}

	lineWidth := rs.LineWidth
	if lineWidth <= 0 {
		lineWidth = defaultLineWidthPts
	}

	return draw.LineStyle{
		Color:    col,
		Width:    vg.Points(lineWidth),
		Dashes:   dashes,
		DashOffs: vg.Points(rs.LineStyle.Offset),
	}, nil
}

func (g *GonumRenderer) SetTitle(title string) {
	g.plot.Title.Text = title
}

func (g *GonumRenderer) SetLabel(axis Axis, label string) {
	if axis == XAxis {
		g.plot.X.Label.Text = label
	} else {
		g.plot.Y.Label.Text = label
	}
}

func (g *GonumRenderer) SetLimits(axis Axis, rng Range) {
	if axis == XAxis {
		g.plot.X.Min, g.plot.X.Max = rng.Min, rng.Max
	} else {
		g.plot.Y.Min, g.plot.Y.Max = rng.Min, rng.Max
	}
}

func (g *GonumRenderer) SetScale(axis Axis, scale Scale) error {
	ax := &g.plot.X
	if axis == YAxis {
		ax = &g.plot.Y
	}

	switch scale {
	case LinearScale:
		ax.Scale = plot.LinearScale{}
		ax.Tick.Marker = ScalarTicks{}
	case LogScale:
		ax.Scale = plot.LogScale{}
		ax.Tick.Marker = LogTicks{}
	default:
		return fmt.Errorf("unknown axis scale %d", scale)
	}
	return nil
}

func (g *GonumRenderer) ConfigureLegend(legend Legend) error {
	top, left, err := legend.anchor()
	if err != nil {
		return err
	}

	g.plot.Legend.Top = top
	g.plot.Legend.Left = left

	pad := vg.Length(legend.BorderPad) * g.plot.Legend.TextStyle.Font.Size
	if left {
		g.plot.Legend.XOffs = pad
	} else {
		g.plot.Legend.XOffs = -pad
	}
	if top {
		g.plot.Legend.YOffs = -pad
	} else {
		g.plot.Legend.YOffs = pad
	}

	return nil
}

func (g *GonumRenderer) WriteTo(w io.Writer, format Format, size FigureSize) (int64, error) {
	return writeCanvas(w, format, size, func(dc draw.Canvas) {
		g.plot.Draw(dc)
	})
}

// writeCanvas makes a canvas for the format, lets render draw on it, and
// writes the result out.
func writeCanvas(w io.Writer, format Format, size FigureSize, render func(draw.Canvas)) (int64, error) {
	size = size.withDefaults()
	width := vg.Length(size.Width) * vg.Inch
	height := vg.Length(size.Height) * vg.Inch

	switch format {
	case FormatPNG:
		img := vgimg.NewWith(
			vgimg.UseWH(width, height),
			vgimg.UseDPI(int(size.DPI)),
		)
		render(draw.New(img))
		png := vgimg.PngCanvas{Canvas: img}
		return png.WriteTo(w)
	case FormatPDF:
		c := vgpdf.New(width, height)
		render(draw.New(c))
		return c.WriteTo(w)
	case FormatSVG:
		c := vgsvg.New(width, height)
		render(draw.New(c))
		return c.WriteTo(w)
	case FormatTeX:
		c := vgtex.NewDocument(width, height)
		render(draw.New(c))
		return c.WriteTo(w)
	default:
		return 0, fmt.Errorf("unknown plot format %d", format)
	}
}

func (g *GonumRenderer) Save(path string, size FigureSize) error {
	format, err := FormatForPath(path)
	if err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := g.WriteTo(f, format, size); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func makeXYs(x, y []float64) plotter.XYs {
	xys := make(plotter.XYs, len(x))
	for i := range x {
		xys[i].X = x[i]
		xys[i].Y = y[i]
	}
	return xys
}

// dashPattern converts a LineStyle into gonum dash lengths. A resolvable
// style has dashes or is solid; anything else is an unknown linestyle that
// was passed through for validation here.
func dashPattern(ls LineStyle) ([]vg.Length, error) {
	if len(ls.Dashes) == 0 {
		switch ls.Name {
		case "", Solid.Name:
			return nil, nil
		default:
			return nil, fmt.Errorf("unknown linestyle %q", ls.Name)
		}
	}

	dashes := make([]vg.Length, len(ls.Dashes))
	for i, d := range ls.Dashes {
		dashes[i] = vg.Points(d)
	}
	return dashes, nil
}

func symmetricErrors(errs []float64) plotter.YErrors {
	out := make(plotter.YErrors, len(errs))
	for i, e := range errs {
		out[i].Low = e
		out[i].High = e
	}
	return out
}

type yErrPoints struct {
	plotter.XYs
	plotter.YErrors
}

type xErrPoints struct {
	plotter.XYs
	plotter.XErrors
}

// hLinePlotter draws a horizontal reference line across the full width of
// the plotting area.
type hLinePlotter struct {
	y   float64
	sty draw.LineStyle
}

func (h hLinePlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	_, trY := plt.Transforms(&c)
	y := trY(h.y)
	c.StrokeLine2(h.sty, c.Min.X, y, c.Max.X, y)
}

// vLinePlotter draws a vertical reference line across the full height of the
// plotting area.
type vLinePlotter struct {
	x   float64
	sty draw.LineStyle
}

func (v vLinePlotter) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, _ := plt.Transforms(&c)
	x := trX(v.x)
	c.StrokeLine2(v.sty, x, c.Min.Y, x, c.Max.Y)
}
