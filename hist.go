package hickory

import (
	"errors"
	"fmt"
	"math"
)

// DefaultBins is the histogram bin count used when neither a bin count nor a
// bin width is requested.
const DefaultBins = 10

var errHistNoData = errors.New("binsize requires data or an explicit range")

// Range is a closed interval on an axis.
type Range struct {
	Min float64
	Max float64
}

// BinsForWidth converts a requested bin width over [dataMin, dataMax] into a
// bin count: round((max-min)/width), clamped to a minimum of 1. This uses
// round, not truncation, so a data range of 9.5 widths gets 10 bins.
func BinsForWidth(dataMin, dataMax, width float64) (int, error) {
	if width <= 0 {
		return 0, fmt.Errorf("binsize must be positive, got %v", width)
	}

	bins := int(math.Round((dataMax - dataMin) / width))
	if bins < 1 {
		bins = 1
	}
	return bins, nil
}

// HistOptions controls histogram binning and styling. BinSize takes
// precedence over Bins. Range takes precedence over Min/Max; Min/Max fill in
// one or both ends when Range is not given, with the rest coming from the
// data.
type HistOptions struct {
	BinSize *float64
	Bins    int // explicit bin count; 0 means DefaultBins
	Range   *Range
	Min     *float64
	Max     *float64

	Color *string // fill color; nil cycles
	Alpha float64 // fill opacity in (0, 1]; 0 means opaque
	Label string
}

// deriveBins resolves the bin count and bin range for a histogram call. Only
// the count and range are ever forwarded to the renderer; a requested width
// is converted here and dropped.
func deriveBins(data []float64, o *HistOptions) (int, Range, error) {
	rng, err := deriveHistRange(data, o)
	if err != nil {
		return 0, Range{}, err
	}

	if o.BinSize != nil {
		bins, err := BinsForWidth(rng.Min, rng.Max, *o.BinSize)
		if err != nil {
			return 0, Range{}, err
		}
		return bins, rng, nil
	}

	bins := o.Bins
	if bins <= 0 {
		bins = DefaultBins
	}
	return bins, rng, nil
}

func deriveHistRange(data []float64, o *HistOptions) (Range, error) {
	if o.Range != nil {
		return *o.Range, nil
	}

	rng := Range{}
	needData := o.Min == nil || o.Max == nil
	if needData && len(data) == 0 {
		return Range{}, errHistNoData
	}

	var dataMin, dataMax float64
	if needData {
		var err error
		dataMin, dataMax, err = MinMax(data)
		if err != nil {
			return Range{}, err
		}
	}

	if o.Min != nil {
		rng.Min = *o.Min
	} else {
		rng.Min = dataMin
	}
	if o.Max != nil {
		rng.Max = *o.Max
	} else {
		rng.Max = dataMax
	}

	return rng, nil
}
