package hickory

import (
	"errors"
	"fmt"

	"github.com/sirupsen/logrus"
)

// DefaultFunctionSamples is the number of evaluation points for Function
// when no count is given.
const DefaultFunctionSamples = 100

var errNoFunctionRange = errors.New("function needs a range: none given and no data drawn yet")

// Axes is one plot surface: it owns the style cycler, applies the resolution
// policies, and hands fully resolved drawing requests to the injected
// renderer. All methods are call-and-return on the caller's goroutine; an
// Axes must not be shared between goroutines.
type Axes struct {
	renderer Renderer
	resolver *styleResolver
	logger   logrus.FieldLogger

	// data ranges of everything drawn so far, for margins and default
	// function ranges
	xdata *Range
	ydata *Range

	// explicit limits and margin, applied by finish
	xlim   *Range
	ylim   *Range
	margin *float64
}

// NewAxes builds an axes over the given renderer. A nil cycler gets the
// default marker/linestyle/color cycler.
func NewAxes(renderer Renderer, cycler *MultiCycler) *Axes {
	return &Axes{
		renderer: renderer,
		resolver: newStyleResolver(cycler),
		logger:   logrus.WithField("tag", "Axes"),
	}
}

// SetCurveNoneIsNoLine selects what an explicit "none" linestyle means on a
// curve call: no line (true, the default) or "cycle as if omitted" (false).
func (a *Axes) SetCurveNoneIsNoLine(v bool) {
	a.resolver.curveNoneIsNoLine = v
}

// Plot draws x vs y as points. Markers cycle in unless given; there is no
// line unless one is asked for.
func (a *Axes) Plot(x, y []float64, st *Style) error {
	rs, err := a.resolver.resolveNoLineDefault(st)
	if err != nil {
		return err
	}
	return a.drawSeries(SeriesSpec{X: x, Y: y, Style: rs})
}

// ErrorBar draws x vs y as points with error bars. Either of xerr and yerr
// may be nil. Styling follows the same no-line policy as Plot.
func (a *Axes) ErrorBar(x, y, xerr, yerr []float64, st *Style) error {
	rs, err := a.resolver.resolveNoLineDefault(st)
	if err != nil {
		return err
	}

	var capSize float64
	if st != nil {
		capSize = st.CapSize
	}
	return a.drawSeries(SeriesSpec{X: x, Y: y, XErr: xerr, YErr: yerr, Style: rs, CapSize: capSize})
}

// Curve draws x vs y as a line. Linestyles cycle in unless given; there is
// no marker unless one is asked for.
func (a *Axes) Curve(x, y []float64, st *Style) error {
	rs, err := a.resolver.resolveLineDefault(st)
	if err != nil {
		return err
	}
	return a.drawSeries(SeriesSpec{X: x, Y: y, Style: rs})
}

// Function evaluates f at npts evenly spaced points over rng and draws the
// result as a curve. A nil rng uses the x range of the data drawn so far; a
// npts of 0 uses DefaultFunctionSamples.
func (a *Axes) Function(f func(float64) float64, rng *Range, npts int, st *Style) error {
	if rng == nil {
		if a.xdata == nil {
			return errNoFunctionRange
		}
		rng = a.xdata
	}
	if npts <= 0 {
		npts = DefaultFunctionSamples
	}

	x := Linspace(rng.Min, rng.Max, npts)
	y := make([]float64, len(x))
	for i, xv := range x {
		y[i] = f(xv)
	}

	return a.Curve(x, y, st)
}

// Hist bins data and draws a histogram. A requested bin width (BinSize) is
// converted to a bin count here; the renderer only ever sees count plus
// range.
func (a *Axes) Hist(data []float64, o *HistOptions) error {
	if o == nil {
		o = &HistOptions{}
	}

	bins, rng, err := deriveBins(data, o)
	if err != nil {
		return err
	}

	spec := HistogramSpec{
		Values: data,
		Bins:   bins,
		Range:  rng,
		Alpha:  o.Alpha,
		Label:  o.Label,
	}

	if o.Color == nil || *o.Color == StyleCycle {
		c, err := a.resolver.cycler.nextColor()
		if err != nil {
			return err
		}
		spec.Color = c
	} else {
		spec.Color = ResolveColor(*o.Color)
	}

	if err := a.renderer.DrawHistogram(spec); err != nil {
		return err
	}

	a.trackRange(&a.xdata, rng.Min, rng.Max)
	return nil
}

// HLine draws a horizontal reference line at y. Reference lines do not
// consume the cycler; the default style is a thin solid black line.
func (a *Axes) HLine(y float64, st *Style) error {
	rs, err := refLineResolved(st)
	if err != nil {
		return err
	}
	return a.renderer.DrawHLine(RefLineSpec{Position: y, Style: rs})
}

// VLine draws a vertical reference line at x.
func (a *Axes) VLine(x float64, st *Style) error {
	rs, err := refLineResolved(st)
	if err != nil {
		return err
	}
	return a.renderer.DrawVLine(RefLineSpec{Position: x, Style: rs})
}

func refLineResolved(st *Style) (ResolvedStyle, error) {
	if st == nil {
		st = &Style{}
	}

	rs := ResolvedStyle{
		Color:     "black",
		LineStyle: Solid,
		LineWidth: st.LineWidth,
		Alpha:     st.Alpha,
		Label:     st.Label,
	}

	if st.Color != nil {
		rs.Color = ResolveColor(*st.Color)
	}

	switch {
	case st.Dashes != nil:
		rs.LineStyle = *st.Dashes
	case st.LineStyle != nil:
		if *st.LineStyle == StyleCycle {
			return ResolvedStyle{}, fmt.Errorf("reference lines cannot cycle styles")
		}
		rs.LineStyle = literalLineStyle(*st.LineStyle)
	}

	return rs, nil
}

// SetTitle sets the plot title.
func (a *Axes) SetTitle(title string) {
	a.renderer.SetTitle(title)
}

// SetXLabel sets the x axis label.
func (a *Axes) SetXLabel(label string) {
	a.renderer.SetLabel(XAxis, label)
}

// SetYLabel sets the y axis label.
func (a *Axes) SetYLabel(label string) {
	a.renderer.SetLabel(YAxis, label)
}

// SetXLim fixes the x axis limits, overriding margins and autoscaling.
func (a *Axes) SetXLim(rng Range) {
	a.xlim = &rng
	a.renderer.SetLimits(XAxis, rng)
}

// SetYLim fixes the y axis limits.
func (a *Axes) SetYLim(rng Range) {
	a.ylim = &rng
	a.renderer.SetLimits(YAxis, rng)
}

// SetXScale sets the x axis scale, "log" or "linear", installing the
// matching tick formatter.
func (a *Axes) SetXScale(name string) error {
	return a.setScale(XAxis, name)
}

// SetYScale sets the y axis scale.
func (a *Axes) SetYScale(name string) error {
	return a.setScale(YAxis, name)
}

func (a *Axes) setScale(axis Axis, name string) error {
	switch name {
	case "linear":
		return a.renderer.SetScale(axis, LinearScale)
	case "log":
		return a.renderer.SetScale(axis, LogScale)
	default:
		return fmt.Errorf("unknown axis scale %q", name)
	}
}

// SetMargin pads both axis ranges by the given fraction of the data range.
// Explicit limits take precedence.
func (a *Axes) SetMargin(m float64) {
	a.margin = &m
}

func (a *Axes) drawSeries(s SeriesSpec) error {
	if len(s.X) != len(s.Y) {
		return fmt.Errorf("x and y must be same size, got %d and %d", len(s.X), len(s.Y))
	}
	if s.XErr != nil && len(s.XErr) != len(s.X) {
		return fmt.Errorf("x and xerr must be same size, got %d and %d", len(s.X), len(s.XErr))
	}
	if s.YErr != nil && len(s.YErr) != len(s.Y) {
		return fmt.Errorf("y and yerr must be same size, got %d and %d", len(s.Y), len(s.YErr))
	}

	if err := a.renderer.DrawSeries(s); err != nil {
		return err
	}

	if lo, hi, err := MinMax(s.X); err == nil {
		a.trackRange(&a.xdata, lo, hi)
	}
	if lo, hi, err := MinMax(s.Y); err == nil {
		a.trackRange(&a.ydata, lo, hi)
	}

	return nil
}

func (a *Axes) trackRange(r **Range, lo, hi float64) {
	if *r == nil {
		*r = &Range{Min: lo, Max: hi}
		return
	}
	(*r).Min = Min((*r).Min, lo)
	(*r).Max = Max((*r).Max, hi)
}

// finish applies deferred axis state (margins) before export. Called by the
// owning container once all items are drawn.
func (a *Axes) finish() {
	if a.margin == nil {
		return
	}

	m := *a.margin
	if a.xlim == nil && a.xdata != nil {
		a.renderer.SetLimits(XAxis, padRange(*a.xdata, m))
	}
	if a.ylim == nil && a.ydata != nil {
		a.renderer.SetLimits(YAxis, padRange(*a.ydata, m))
	}
}

func padRange(r Range, m float64) Range {
	pad := (r.Max - r.Min) * m
	return Range{Min: r.Min - pad, Max: r.Max + pad}
}
