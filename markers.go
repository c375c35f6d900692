package hickory

// MarkerNames maps human friendly marker names to the single character
// marker codes understood by the renderer. Read-only.
var MarkerNames = map[string]string{
	"point": ".",
	"pixel": ",",

	"circle": "o",

	"triangle_down":  "v",
	"triangle_up":    "^",
	"triangle":       "^",
	"triangle_left":  "<",
	"triangle_right": ">",

	"tri_down":  "1",
	"tri_up":    "2",
	"tri_left":  "3",
	"tri_right": "4",

	"octagon":  "8",
	"square":   "s",
	"pentagon": "p",
	"star":     "*",

	"hexagon":  "h",
	"hexagon1": "h",
	"hexagon2": "H",

	"plus":        "+",
	"filled_plus": "P",
	"x":           "x",
	"filled_x":    "X",

	"thick_diamond": "D",
	"thin_diamond":  "d",
	"diamond":       "d",
}

// ResolveMarker returns the marker code for a marker name. Values not in the
// name table pass through unchanged, so native marker codes are accepted
// anywhere a name is. Pure; never fails.
func ResolveMarker(value string) string {
	if code, ok := MarkerNames[value]; ok {
		return code
	}
	return value
}
