package annotations

import "github.com/gogpu/gg"

// Title is the text placed along one side of a figure, most commonly
// above the plot area.
type Title struct {
	// Text is the title content.
	Text string

	// Align anchors the text horizontally within the side.
	Align TextAlign

	// Style selects the font style.
	Style FontStyle

	// TextColor and TextAlpha style the text.
	TextColor gg.RGBA
	TextAlpha float64

	// Visible controls whether the title is painted.
	Visible bool
}

// NewTitle creates a visible left-aligned bold title.
func NewTitle(text string) *Title {
	return &Title{
		Text:      text,
		Style:     StyleBold,
		TextColor: gg.Black,
		TextAlpha: 1,
		Visible:   true,
	}
}

func (*Title) annotation() {}
