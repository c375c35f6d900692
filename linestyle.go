package hickory

// LineStyle describes how a line is dashed. Dash lengths are in printer's
// points; an empty Dashes means a solid line. Name is set for the named
// styles so they can be matched back by name in style requests.
type LineStyle struct {
	Name   string
	Offset float64
	Dashes []float64
}

// The named linestyles.
var (
	Solid   = LineStyle{Name: "solid"}
	Dashed  = LineStyle{Name: "dashed", Dashes: []float64{6, 6}}
	Dotted  = LineStyle{Name: "dotted", Dashes: []float64{1, 3}}
	DashDot = LineStyle{Name: "dashdot", Dashes: []float64{6, 3, 1, 3}}

	// NoLine suppresses the line entirely.
	NoLine = LineStyle{Name: "none"}
)

// ExtraLineStyles are dash variants beyond the named styles, keyed by a
// human readable name.
var ExtraLineStyles = map[string]LineStyle{
	"loose dotted": {Name: "loose dotted", Dashes: []float64{1, 10}},
	"dense dotted": {Name: "dense dotted", Dashes: []float64{1, 1}},

	"loose dashed":      {Name: "loose dashed", Dashes: []float64{5, 5}},
	"very loose dashed": {Name: "very loose dashed", Dashes: []float64{5, 10}},
	"dense dashed":      {Name: "dense dashed", Dashes: []float64{5, 1}},

	"dashdotdot": {Name: "dashdotdot", Dashes: []float64{3, 5, 1, 5, 1, 5}},

	"dense dashdot":    {Name: "dense dashdot", Dashes: []float64{3, 1, 1, 1}},
	"dense dashdotdot": {Name: "dense dashdotdot", Dashes: []float64{3, 1, 1, 1, 1, 1}},
}

// IsNone reports whether the style suppresses the line.
func (ls LineStyle) IsNone() bool {
	return ls.Name == NoLine.Name
}

// LineStyleByName resolves a linestyle name, checking the named styles first
// and then ExtraLineStyles. Unknown names report ok=false.
func LineStyleByName(name string) (LineStyle, bool) {
	switch name {
	case Solid.Name:
		return Solid, true
	case Dashed.Name:
		return Dashed, true
	case Dotted.Name:
		return Dotted, true
	case DashDot.Name:
		return DashDot, true
	case NoLine.Name:
		return NoLine, true
	}

	ls, ok := ExtraLineStyles[name]
	return ls, ok
}
