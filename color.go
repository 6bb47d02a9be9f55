package plot

import (
	"strings"

	"github.com/gogpu/gg"
	"golang.org/x/image/colornames"
)

// ColorNamed resolves a CSS/SVG color name ("firebrick", "navy", ...) or a
// hex literal ("#1f77b4", "#abc") to a gg color. Names are matched
// case-insensitively.
func ColorNamed(name string) (gg.RGBA, error) {
	if strings.HasPrefix(name, "#") {
		return gg.Hex(name), nil
	}
	c, ok := colornames.Map[strings.ToLower(name)]
	if !ok {
		return gg.RGBA{}, &UnknownColorError{Name: name}
	}
	return gg.FromColor(c), nil
}

// MustColor is ColorNamed for static color literals; it panics on an
// unknown name.
func MustColor(name string) gg.RGBA {
	c, err := ColorNamed(name)
	if err != nil {
		panic(err)
	}
	return c
}
