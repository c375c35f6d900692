package hickory

import (
	"errors"
	"fmt"
)

// Property names registered on the default MultiCycler.
const (
	PropMarker    = "marker"
	PropLineStyle = "linestyle"
	PropColor     = "color"
)

// StyleCycle is the sentinel style value meaning "take the next value from
// the shared cycler for this property" rather than "use this literal value".
const StyleCycle = "cycle"

var errEmptyCycle = errors.New("cycle values must not be empty")

// DefaultMarkers is the default marker cycle, as single character marker
// codes. See MarkerNames for the name to code mapping.
var DefaultMarkers = []string{"o", "d", "^", "s", "v", "h", "p", "P", "H", "X"}

// DefaultColors is the default color cycle, a qualitative palette of ten
// hex RGB values.
var DefaultColors = []string{
	"#1f77b4", "#ff7f0e", "#2ca02c", "#d62728",
	"#9467bd", "#8c564b", "#e377c2", "#7f7f7f", "#bcbd22", "#17becf",
}

// DefaultLineStyles is the default linestyle cycle.
var DefaultLineStyles = []LineStyle{
	Solid,
	Dashed,
	Dotted,
	ExtraLineStyles["dense dashdot"],
	ExtraLineStyles["loose dashed"],
	ExtraLineStyles["dense dashdotdot"],
	ExtraLineStyles["dense dotted"],
	DashDot,
	ExtraLineStyles["very loose dashed"],
	ExtraLineStyles["dense dashed"],
}

// Cycle is an infinite, restartable sequence over a fixed, non-empty list of
// style values. Next consumes the current value and moves the cursor forward,
// wrapping to the start after the last value. A Cycle is owned by a single
// plot surface and is not safe for concurrent use.
type Cycle[T any] struct {
	values []T
	pos    int
}

// NewCycle makes a cycle over values. An empty list is a configuration error.
func NewCycle[T any](values []T) (*Cycle[T], error) {
	if len(values) == 0 {
		return nil, errEmptyCycle
	}

	vs := make([]T, len(values))
	copy(vs, values)
	return &Cycle[T]{values: vs}, nil
}

// Next returns the current value and advances the cursor.
func (c *Cycle[T]) Next() T {
	v := c.values[c.pos]
	c.pos = (c.pos + 1) % len(c.values)
	return v
}

// Len returns the number of values in one period of the cycle.
func (c *Cycle[T]) Len() int {
	return len(c.values)
}

func (c *Cycle[T]) next() any {
	return c.Next()
}

// propertyCycle erases the element type so cycles over markers, linestyles
// and colors can live in one MultiCycler.
type propertyCycle interface {
	next() any
}

// CycleSource is a constructor argument for MultiCycler: either a raw value
// list (Values) or a prebuilt Cycle (Prebuilt). It is normalized to a Cycle
// at construction time.
type CycleSource interface {
	makeCycle() (propertyCycle, error)
}

type valuesSource[T any] struct {
	values []T
}

// Values makes a CycleSource from a raw list of style values.
func Values[T any](values ...T) CycleSource {
	return valuesSource[T]{values: values}
}

func (s valuesSource[T]) makeCycle() (propertyCycle, error) {
	return NewCycle(s.values)
}

type prebuiltSource[T any] struct {
	cycle *Cycle[T]
}

// Prebuilt makes a CycleSource from an existing Cycle. The cycle is used as
// is, cursor position included.
func Prebuilt[T any](c *Cycle[T]) CycleSource {
	return prebuiltSource[T]{cycle: c}
}

func (s prebuiltSource[T]) makeCycle() (propertyCycle, error) {
	if s.cycle == nil {
		return nil, errors.New("prebuilt cycle is nil")
	}
	return s.cycle, nil
}

// MultiCycler aggregates independent named style cycles. Advancing one
// property never moves the cursor of another. Each plot surface owns one
// MultiCycler, shared by all drawing calls issued against that surface.
type MultiCycler struct {
	cycles map[string]propertyCycle
}

// NewMultiCycler builds a cycler from the given property sources.
func NewMultiCycler(sources map[string]CycleSource) (*MultiCycler, error) {
	cycles := make(map[string]propertyCycle, len(sources))
	for property, source := range sources {
		c, err := source.makeCycle()
		if err != nil {
			return nil, fmt.Errorf("property %q: %w", property, err)
		}
		cycles[property] = c
	}

	return &MultiCycler{cycles: cycles}, nil
}

// NewDefaultMultiCycler builds a cycler with the marker, linestyle and color
// properties populated from the default lists.
func NewDefaultMultiCycler() *MultiCycler {
	m, err := NewMultiCycler(map[string]CycleSource{
		PropMarker:    Values(DefaultMarkers...),
		PropLineStyle: Values(DefaultLineStyles...),
		PropColor:     Values(DefaultColors...),
	})
	if err != nil {
		// The default lists are non-empty constants.
		panic(err)
	}
	return m
}

// Next returns the next value for the named property and advances only that
// property's cursor. Requesting a property that was not registered at
// construction is an error and mutates nothing.
func (m *MultiCycler) Next(property string) (any, error) {
	c, ok := m.cycles[property]
	if !ok {
		return nil, fmt.Errorf("unknown cycle: %q", property)
	}
	return c.next(), nil
}

// Has reports whether the property was registered.
func (m *MultiCycler) Has(property string) bool {
	_, ok := m.cycles[property]
	return ok
}

func (m *MultiCycler) nextMarker() (string, error) {
	v, err := m.Next(PropMarker)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("marker cycle produced %T, want string", v)
	}
	return s, nil
}

func (m *MultiCycler) nextLineStyle() (LineStyle, error) {
	v, err := m.Next(PropLineStyle)
	if err != nil {
		return LineStyle{}, err
	}
	ls, ok := v.(LineStyle)
	if !ok {
		return LineStyle{}, fmt.Errorf("linestyle cycle produced %T, want LineStyle", v)
	}
	return ls, nil
}

func (m *MultiCycler) nextColor() (string, error) {
	v, err := m.Next(PropColor)
	if err != nil {
		return "", err
	}
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("color cycle produced %T, want string", v)
	}
	return s, nil
}

// NewMarkerCycle returns a standalone cycle over the default markers.
func NewMarkerCycle() *Cycle[string] {
	c, _ := NewCycle(DefaultMarkers)
	return c
}

// NewLineStyleCycle returns a standalone cycle over the default linestyles.
func NewLineStyleCycle() *Cycle[LineStyle] {
	c, _ := NewCycle(DefaultLineStyles)
	return c
}

// NewColorCycle returns a standalone cycle over the default colors.
func NewColorCycle() *Cycle[string] {
	c, _ := NewCycle(DefaultColors)
	return c
}
