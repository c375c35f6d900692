package hickory

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Axis identifies one of the two plot axes.
type Axis int

const (
	XAxis Axis = iota
	YAxis
)

// Scale is an axis scale kind.
type Scale int

const (
	LinearScale Scale = iota
	LogScale
)

// Format is an export file format.
type Format int

const (
	FormatPNG Format = iota
	FormatPDF
	FormatSVG
	FormatTeX
)

// FormatForPath picks the export format from the file extension.
func FormatForPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return FormatPNG, nil
	case ".pdf":
		return FormatPDF, nil
	case ".svg":
		return FormatSVG, nil
	case ".tex":
		return FormatTeX, nil
	default:
		return 0, fmt.Errorf("unsupported plot file extension in %q", path)
	}
}

// FigureSize is the output figure geometry. Width and Height are in inches;
// DPI only affects raster output. Zero fields take the defaults.
type FigureSize struct {
	Width  float64
	Height float64
	DPI    float64
}

// Figure size defaults.
const (
	DefaultFigWidth  = 6.4
	DefaultFigHeight = 4.8
	DefaultDPI       = 96
)

func (fs FigureSize) withDefaults() FigureSize {
	if fs.Width <= 0 {
		fs.Width = DefaultFigWidth
	}
	if fs.Height <= 0 {
		fs.Height = DefaultFigHeight
	}
	if fs.DPI <= 0 {
		fs.DPI = DefaultDPI
	}
	return fs
}

// SeriesSpec is one fully styled data series: coordinate arrays plus a
// resolved style. Error bars are drawn for whichever of XErr/YErr is
// non-nil.
type SeriesSpec struct {
	X, Y []float64

	XErr, YErr []float64

	Style ResolvedStyle

	// CapSize is the error bar cap width in points; 0 means the default.
	CapSize float64
}

// HistogramSpec is a binned histogram request: only the bin count and range
// are forwarded, never a bin width.
type HistogramSpec struct {
	Values []float64
	Bins   int
	Range  Range

	Color string
	Alpha float64
	Label string
}

// RefLineSpec is a horizontal or vertical reference line spanning the full
// axis.
type RefLineSpec struct {
	Position float64
	Style    ResolvedStyle
}

// Renderer is the injected rendering collaborator. The styling layer hands
// it fully resolved values only; sentinels and names never cross this
// boundary. Implementations validate what they receive (unknown marker
// codes, unparseable colors).
type Renderer interface {
	DrawSeries(s SeriesSpec) error
	DrawHistogram(h HistogramSpec) error
	DrawHLine(l RefLineSpec) error
	DrawVLine(l RefLineSpec) error

	SetTitle(title string)
	SetLabel(axis Axis, label string)
	SetLimits(axis Axis, rng Range)
	SetScale(axis Axis, scale Scale) error
	ConfigureLegend(legend Legend) error

	Save(path string, size FigureSize) error
	WriteTo(w io.Writer, format Format, size FigureSize) (int64, error)
}
