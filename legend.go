package hickory

import "fmt"

// Legend describes legend placement. Entries themselves come from the Label
// of each drawn series; rendering is delegated to the renderer.
type Legend struct {
	// Loc is the legend corner: "upper right", "upper left", "lower
	// right" or "lower left". Empty means upper right.
	Loc string

	// BorderPad is the padding between the legend and the axes edge, in
	// units of the legend font size.
	BorderPad float64
}

// NewLegend returns a legend with the default placement.
func NewLegend() Legend {
	return Legend{Loc: "upper right", BorderPad: 2}
}

// anchor maps Loc to top/left placement flags.
func (l Legend) anchor() (top, left bool, err error) {
	switch l.Loc {
	case "", "upper right":
		return true, false, nil
	case "upper left":
		return true, true, nil
	case "lower right":
		return false, false, nil
	case "lower left":
		return false, true, nil
	default:
		return false, false, fmt.Errorf("unknown legend loc %q", l.Loc)
	}
}
