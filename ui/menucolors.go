package ui

import (
	"image/color"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"termblox/config"
)

// MenuColors defines the palette for the high-score card.
var MenuColors = struct {
	Border      tcell.Color // Muted blue-gray for borders
	CardBG      tcell.Color // Dark gray background
	Title       tcell.Color // Bright white for title
	TitleAccent tcell.Color // Blue accent for decoration
	Label       tcell.Color // Light gray for rows
	Hint        tcell.Color // Dim gray for hints
}{
	Border:      tcell.PaletteColor(60),
	CardBG:      tcell.PaletteColor(236),
	Title:       tcell.PaletteColor(255),
	TitleAccent: tcell.PaletteColor(109),
	Label:       tcell.PaletteColor(250),
	Hint:        tcell.PaletteColor(245),
}

// Palette holds the themed colours of the entry screen.
type Palette struct {
	Heading   tcell.Color
	Letters   tcell.Color
	Hint      tcell.Color
	Brick     tcell.Color
	BrickEdge tcell.Color
	Highlight tcell.Color
	BrickRune rune
	WashFrom  colorful.Color
	WashTo    colorful.Color
}

// NewPalette resolves theme colour indices. A theme that fails validation
// gets a black wash.
func NewPalette(theme config.Theme) Palette {
	c := theme.Colors
	from, to, _ := theme.Wash()
	return Palette{
		Heading:   tcell.PaletteColor(c.Heading),
		Letters:   tcell.PaletteColor(c.Letters),
		Hint:      tcell.PaletteColor(c.Hint),
		Brick:     tcell.PaletteColor(c.Brick),
		BrickEdge: tcell.PaletteColor(c.BrickEdge),
		Highlight: tcell.PaletteColor(c.Highlight),
		BrickRune: theme.Brick,
		WashFrom:  from,
		WashTo:    to,
	}
}

// rgb converts an animation colour to a terminal colour.
func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
