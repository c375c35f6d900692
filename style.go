package hickory

// Style is the per-call style request for a drawing call. nil pointer fields
// mean "no preference"; the resolution policy for the drawing primitive
// decides what that turns into. The StyleCycle sentinel on Marker, LineStyle
// or Color forces the value to be taken from the surface's cycler.
type Style struct {
	// Marker is a marker name or code, or StyleCycle.
	Marker *string

	// LineStyle is a linestyle name (see LineStyleByName), "none", or
	// StyleCycle.
	LineStyle *string

	// Dashes is an explicit dash pattern. It takes precedence over
	// LineStyle.
	Dashes *LineStyle

	// Color is a color name, a "#rrggbb" hex value, or StyleCycle.
	Color *string

	// EdgeColor is the marker edge color, resolved like Color but never
	// cycled.
	EdgeColor *string

	LineWidth  float64 // line width in points; 0 means the renderer default
	MarkerSize float64 // marker radius in points; 0 means the renderer default
	Alpha      float64 // opacity in (0, 1]; 0 means opaque
	CapSize    float64 // error bar cap width in points; 0 means the default

	Label string // legend label; empty means no legend entry
}

// ResolvedStyle is a fully resolved style: concrete values only, never
// sentinels or names. This is what gets handed to the renderer.
type ResolvedStyle struct {
	Marker    string // marker code; "" means no marker
	LineStyle LineStyle
	Color     string // hex or passthrough literal
	EdgeColor string // "" means same as Color

	LineWidth  float64
	MarkerSize float64
	Alpha      float64

	Label string
}

func (rs ResolvedStyle) HasMarker() bool {
	return rs.Marker != ""
}

func (rs ResolvedStyle) HasLine() bool {
	return !rs.LineStyle.IsNone()
}

// styleResolver applies the per-primitive resolution policies against a
// shared cycler. Every cycler draw advances state visible to subsequent
// drawing calls on the same surface.
type styleResolver struct {
	cycler *MultiCycler

	// curveNoneIsNoLine selects what an explicit "none" linestyle means on
	// a line-default call: true draws no line, false ignores it and cycles
	// as if the linestyle had been omitted.
	curveNoneIsNoLine bool
}

func newStyleResolver(cycler *MultiCycler) *styleResolver {
	if cycler == nil {
		cycler = NewDefaultMultiCycler()
	}
	return &styleResolver{cycler: cycler, curveNoneIsNoLine: true}
}

// resolveNoLineDefault is the policy for scatter style calls: markers are
// cycled in unless given literally, and there is no line unless one is asked
// for.
func (r *styleResolver) resolveNoLineDefault(st *Style) (ResolvedStyle, error) {
	if st == nil {
		st = &Style{}
	}
	rs := r.baseResolved(st)

	if st.Marker == nil || *st.Marker == StyleCycle {
		m, err := r.cycler.nextMarker()
		if err != nil {
			return ResolvedStyle{}, err
		}
		rs.Marker = m
	} else {
		rs.Marker = ResolveMarker(*st.Marker)
	}

	switch {
	case st.Dashes != nil:
		rs.LineStyle = *st.Dashes
	case st.LineStyle == nil:
		rs.LineStyle = NoLine
	case *st.LineStyle == StyleCycle:
		ls, err := r.cycler.nextLineStyle()
		if err != nil {
			return ResolvedStyle{}, err
		}
		rs.LineStyle = ls
	default:
		rs.LineStyle = literalLineStyle(*st.LineStyle)
	}

	if err := r.resolveColor(st, &rs); err != nil {
		return ResolvedStyle{}, err
	}

	return rs, nil
}

// resolveLineDefault is the policy for curve style calls: linestyles are
// cycled in unless given literally, and there is no marker unless one is
// asked for.
func (r *styleResolver) resolveLineDefault(st *Style) (ResolvedStyle, error) {
	if st == nil {
		st = &Style{}
	}
	rs := r.baseResolved(st)

	explicitNone := st.Dashes == nil && st.LineStyle != nil && *st.LineStyle == NoLine.Name

	switch {
	case st.Dashes != nil:
		rs.LineStyle = *st.Dashes
	case explicitNone && r.curveNoneIsNoLine:
		rs.LineStyle = NoLine
	case st.LineStyle == nil || *st.LineStyle == StyleCycle || explicitNone:
		ls, err := r.cycler.nextLineStyle()
		if err != nil {
			return ResolvedStyle{}, err
		}
		rs.LineStyle = ls
	default:
		rs.LineStyle = literalLineStyle(*st.LineStyle)
	}

	switch {
	case st.Marker == nil:
		rs.Marker = ""
	case *st.Marker == StyleCycle:
		m, err := r.cycler.nextMarker()
		if err != nil {
			return ResolvedStyle{}, err
		}
		rs.Marker = m
	default:
		rs.Marker = ResolveMarker(*st.Marker)
	}

	if err := r.resolveColor(st, &rs); err != nil {
		return ResolvedStyle{}, err
	}

	return rs, nil
}

// resolveColor is shared by both policies: color cycles independently of
// marker and line.
func (r *styleResolver) resolveColor(st *Style, rs *ResolvedStyle) error {
	if st.Color == nil || *st.Color == StyleCycle {
		c, err := r.cycler.nextColor()
		if err != nil {
			return err
		}
		rs.Color = c
		return nil
	}

	rs.Color = ResolveColor(*st.Color)
	return nil
}

func (r *styleResolver) baseResolved(st *Style) ResolvedStyle {
	rs := ResolvedStyle{
		LineWidth:  st.LineWidth,
		MarkerSize: st.MarkerSize,
		Alpha:      st.Alpha,
		Label:      st.Label,
	}
	if st.EdgeColor != nil {
		rs.EdgeColor = ResolveColor(*st.EdgeColor)
	}
	return rs
}

// literalLineStyle resolves a linestyle name, passing unknown names through
// for the renderer to validate.
func literalLineStyle(name string) LineStyle {
	if ls, ok := LineStyleByName(name); ok {
		return ls
	}
	return LineStyle{Name: name}
}
