package hickory

import (
	"fmt"
	"math"

	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// The glyph set extends gonum's built-in glyphs with the shapes needed for
// the full default marker cycle: diamond, down triangle, hexagons, pentagon,
// filled plus and filled x.

// polygonGlyph draws a filled regular n-gon with the first vertex at angle
// rot (radians, counterclockwise from +x).
type polygonGlyph struct {
	n   int
	rot float64
}

func (g polygonGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetColor(sty.Color)
	c.Fill(polygonPath(pt, sty.Radius, g.n, g.rot))
}

// polygonOutlineGlyph is the stroked variant of polygonGlyph.
type polygonOutlineGlyph struct {
	n   int
	rot float64
}

func (g polygonOutlineGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	c.SetLineStyle(draw.LineStyle{Color: sty.Color, Width: vg.Points(0.5)})
	c.Stroke(polygonPath(pt, sty.Radius, g.n, g.rot))
}

func polygonPath(pt vg.Point, r vg.Length, n int, rot float64) vg.Path {
	var p vg.Path
	for i := 0; i < n; i++ {
		theta := rot + 2*math.Pi*float64(i)/float64(n)
		v := vg.Point{
			X: pt.X + r*vg.Length(math.Cos(theta)),
			Y: pt.Y + r*vg.Length(math.Sin(theta)),
		}
		if i == 0 {
			p.Move(v)
		} else {
			p.Line(v)
		}
	}
	p.Close()
	return p
}

// thickCrossGlyph draws a filled plus sign, optionally rotated (rot of pi/4
// gives the filled x).
type thickCrossGlyph struct {
	rot float64
}

func (g thickCrossGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := float64(sty.Radius)
	t := r / 3 // half the arm thickness

	// The twelve corners of a plus sign, counterclockwise from the right
	// arm's lower right corner.
	corners := [][2]float64{
		{r, -t}, {r, t}, {t, t}, {t, r}, {-t, r}, {-t, t},
		{-r, t}, {-r, -t}, {-t, -t}, {-t, -r}, {t, -r}, {t, -t},
	}

	sin, cos := math.Sincos(g.rot)
	var p vg.Path
	for i, xy := range corners {
		v := vg.Point{
			X: pt.X + vg.Length(xy[0]*cos-xy[1]*sin),
			Y: pt.Y + vg.Length(xy[0]*sin+xy[1]*cos),
		}
		if i == 0 {
			p.Move(v)
		} else {
			p.Line(v)
		}
	}
	p.Close()
	c.SetColor(sty.Color)
	c.Fill(p)
}

// starGlyph draws a filled five pointed star.
type starGlyph struct{}

func (starGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	outer := sty.Radius
	inner := sty.Radius * 0.4

	var p vg.Path
	for i := 0; i < 10; i++ {
		r := outer
		if i%2 == 1 {
			r = inner
		}
		theta := math.Pi/2 + 2*math.Pi*float64(i)/10
		v := vg.Point{
			X: pt.X + r*vg.Length(math.Cos(theta)),
			Y: pt.Y + r*vg.Length(math.Sin(theta)),
		}
		if i == 0 {
			p.Move(v)
		} else {
			p.Line(v)
		}
	}
	p.Close()
	c.SetColor(sty.Color)
	c.Fill(p)
}

// spokeGlyph draws three radial lines from the center, the first at angle
// rot and the others 120 degrees apart.
type spokeGlyph struct {
	rot float64
}

func (g spokeGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	sty2 := draw.LineStyle{Color: sty.Color, Width: vg.Points(0.5)}
	for i := 0; i < 3; i++ {
		theta := g.rot + 2*math.Pi*float64(i)/3
		x := pt.X + sty.Radius*vg.Length(math.Cos(theta))
		y := pt.Y + sty.Radius*vg.Length(math.Sin(theta))
		c.StrokeLine2(sty2, pt.X, pt.Y, x, y)
	}
}

// dotGlyph draws a tiny filled box, used for the pixel marker.
type dotGlyph struct{}

func (dotGlyph) DrawGlyph(c *draw.Canvas, sty draw.GlyphStyle, pt vg.Point) {
	r := sty.Radius / 3
	var p vg.Path
	p.Move(vg.Point{X: pt.X - r, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y - r})
	p.Line(vg.Point{X: pt.X + r, Y: pt.Y + r})
	p.Line(vg.Point{X: pt.X - r, Y: pt.Y + r})
	p.Close()
	c.SetColor(sty.Color)
	c.Fill(p)
}

var markerGlyphs = map[string]draw.GlyphDrawer{
	".": draw.CircleGlyph{},
	",": dotGlyph{},
	"o": draw.CircleGlyph{},
	"v": polygonGlyph{n: 3, rot: -math.Pi / 2},
	"^": draw.PyramidGlyph{},
	"<": polygonGlyph{n: 3, rot: math.Pi},
	">": polygonGlyph{n: 3, rot: 0},
	"1": spokeGlyph{rot: -math.Pi / 2},
	"2": spokeGlyph{rot: math.Pi / 2},
	"3": spokeGlyph{rot: math.Pi},
	"4": spokeGlyph{rot: 0},
	"8": polygonGlyph{n: 8, rot: math.Pi / 8},
	"s": draw.BoxGlyph{},
	"p": polygonGlyph{n: 5, rot: math.Pi / 2},
	"P": thickCrossGlyph{},
	"*": starGlyph{},
	"h": polygonGlyph{n: 6, rot: math.Pi / 2},
	"H": polygonGlyph{n: 6, rot: 0},
	"+": draw.PlusGlyph{},
	"x": draw.CrossGlyph{},
	"X": thickCrossGlyph{rot: math.Pi / 4},
	"D": polygonGlyph{n: 4, rot: math.Pi / 2},
	"d": polygonGlyph{n: 4, rot: math.Pi / 2},
}

// markerOutlines are the stroked counterparts used for marker edge colors.
// Not every marker has one.
var markerOutlines = map[string]draw.GlyphDrawer{
	"o": draw.RingGlyph{},
	"v": polygonOutlineGlyph{n: 3, rot: -math.Pi / 2},
	"^": draw.TriangleGlyph{},
	"<": polygonOutlineGlyph{n: 3, rot: math.Pi},
	">": polygonOutlineGlyph{n: 3, rot: 0},
	"8": polygonOutlineGlyph{n: 8, rot: math.Pi / 8},
	"s": draw.SquareGlyph{},
	"p": polygonOutlineGlyph{n: 5, rot: math.Pi / 2},
	"h": polygonOutlineGlyph{n: 6, rot: math.Pi / 2},
	"H": polygonOutlineGlyph{n: 6, rot: 0},
	"D": polygonOutlineGlyph{n: 4, rot: math.Pi / 2},
	"d": polygonOutlineGlyph{n: 4, rot: math.Pi / 2},
}

// glyphForMarker maps a resolved marker code to its glyph. Unknown codes are
// a renderer side validation error.
func glyphForMarker(code string) (draw.GlyphDrawer, error) {
	g, ok := markerGlyphs[code]
	if !ok {
		return nil, fmt.Errorf("unknown marker %q", code)
	}
	return g, nil
}

func outlineGlyphForMarker(code string) (draw.GlyphDrawer, bool) {
	g, ok := markerOutlines[code]
	return g, ok
}
