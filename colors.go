package hickory

import (
	"fmt"
	"image/color"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Colors maps color names to hex RGB values. It covers the single letter
// matplotlib style codes, the tab10 palette by name, and a handful of common
// names. Read-only.
var Colors = map[string]string{
	"b": "#0000ff",
	"g": "#008000",
	"r": "#ff0000",
	"c": "#00bfbf",
	"m": "#bf00bf",
	"y": "#bfbf00",
	"k": "#000000",
	"w": "#ffffff",

	"tab:blue":   "#1f77b4",
	"tab:orange": "#ff7f0e",
	"tab:green":  "#2ca02c",
	"tab:red":    "#d62728",
	"tab:purple": "#9467bd",
	"tab:brown":  "#8c564b",
	"tab:pink":   "#e377c2",
	"tab:gray":   "#7f7f7f",
	"tab:olive":  "#bcbd22",
	"tab:cyan":   "#17becf",

	"black":     "#000000",
	"white":     "#ffffff",
	"red":       "#ff0000",
	"firebrick": "#b22222",
	"green":     "#008000",
	"blue":      "#0000ff",
	"cyan":      "#00ffff",
	"magenta":   "#ff00ff",
	"yellow":    "#ffff00",
	"orange":    "#ffa500",
	"purple":    "#800080",
	"brown":     "#a52a2a",
	"pink":      "#ffc0cb",
	"teal":      "#008080",
	"gray":      "#808080",
	"grey":      "#808080",
}

// ResolveColor returns the hex value for a color name. Values not in the
// name table pass through unchanged, so raw hex specifications are accepted
// anywhere a name is. Pure; never fails.
func ResolveColor(value string) string {
	if hex, ok := Colors[value]; ok {
		return hex
	}
	return value
}

// parseColor converts a resolved color spec to a color.Color. The spec must
// be a known name or a "#rrggbb" hex value; anything else is a renderer side
// validation error.
func parseColor(spec string) (color.Color, error) {
	c, err := colorful.Hex(ResolveColor(spec))
	if err != nil {
		return nil, fmt.Errorf("invalid color %q: %w", spec, err)
	}
	return c, nil
}

// withAlpha scales the alpha channel of c by alpha in [0, 1].
func withAlpha(c color.Color, alpha float64) color.Color {
	if alpha >= 1 {
		return c
	}
	if alpha < 0 {
		alpha = 0
	}

	nc := color.NRGBAModel.Convert(c).(color.NRGBA)
	nc.A = uint8(float64(nc.A) * alpha)
	return nc
}

// RandomColors generates n distinguishable colors for callers that need more
// series than the default palette covers.
func RandomColors(n int) []color.Color {
	pal := colorful.FastHappyPalette(n)
	out := make([]color.Color, len(pal))
	for i, c := range pal {
		out[i] = c
	}
	return out
}
