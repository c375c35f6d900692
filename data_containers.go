package hickory

// Item is a declarative plot element. Items are added to a Plot container
// and replayed onto a fresh Axes each time the figure is rendered, so style
// cycling restarts with every render.
type Item interface {
	addTo(ax *Axes) error
}

// Points is a scatter of x/y values with optional symmetric error bars.
// Styling follows the no-line policy: markers cycle in unless given.
type Points struct {
	X, Y []float64

	XErr, YErr []float64

	Style Style
}

func (p *Points) addTo(ax *Axes) error {
	if p.XErr != nil || p.YErr != nil {
		return ax.ErrorBar(p.X, p.Y, p.XErr, p.YErr, &p.Style)
	}
	return ax.Plot(p.X, p.Y, &p.Style)
}

// Curve is a line through x/y values. Styling follows the line policy:
// linestyles cycle in unless given.
type Curve struct {
	X, Y []float64

	Style Style
}

func (c *Curve) addTo(ax *Axes) error {
	return ax.Curve(c.X, c.Y, &c.Style)
}

// Function draws f evaluated over Range (or the data range of previously
// added items when nil) at Samples points.
type Function struct {
	F       func(float64) float64
	Range   *Range
	Samples int

	Style Style
}

func (f *Function) addTo(ax *Axes) error {
	return ax.Function(f.F, f.Range, f.Samples, &f.Style)
}

// Histogram bins Data per Options and draws the result.
type Histogram struct {
	Data    []float64
	Options HistOptions
}

func (h *Histogram) addTo(ax *Axes) error {
	return ax.Hist(h.Data, &h.Options)
}

// HLine is a horizontal reference line.
type HLine struct {
	Y     float64
	Style Style
}

func (l *HLine) addTo(ax *Axes) error {
	return ax.HLine(l.Y, &l.Style)
}

// VLine is a vertical reference line.
type VLine struct {
	X     float64
	Style Style
}

func (l *VLine) addTo(ax *Axes) error {
	return ax.VLine(l.X, &l.Style)
}
