package videotex

import (
	"fmt"
	"strings"
)

// Color names, used by configuration files and debug output
var colorNames = map[Color]string{
	Black:   "black",
	Red:     "red",
	Green:   "green",
	Yellow:  "yellow",
	Blue:    "blue",
	Magenta: "magenta",
	Cyan:    "cyan",
	White:   "white",
}

// ParseColor resolves a color name (case-insensitive)
func ParseColor(name string) (Color, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for c, n := range colorNames {
		if n == name {
			return c, nil
		}
	}
	return Black, fmt.Errorf("unknown color %q", name)
}
