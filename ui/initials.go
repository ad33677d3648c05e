// Package ui draws the termblox screens with tview and tcell.
package ui

import (
	"fmt"
	"math"

	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/rivo/tview"

	"termblox/config"
	"termblox/initials"
	"termblox/types"
)

// Layout of the entry screen, in rows from the top of the content block.
const (
	rowTitle    = 0
	rowScore    = 2
	rowLetters  = 5
	rowSelect   = 8
	rowChange   = 9
	rowPrompt   = 11
	blockHeight = 12

	letterSpacing = 4
	brickWidth    = 4
)

// InitialsScreen renders the initials entry screen. It only reads the editor.
type InitialsScreen struct {
	*tview.Box
	editor  *initials.Editor
	palette Palette
}

// NewInitialsScreen creates the entry screen for editor.
func NewInitialsScreen(editor *initials.Editor, theme config.Theme) *InitialsScreen {
	return &InitialsScreen{
		Box:     tview.NewBox(),
		editor:  editor,
		palette: NewPalette(theme),
	}
}

// Draw renders the screen.
func (s *InitialsScreen) Draw(screen tcell.Screen) {
	s.Box.DrawForSubclass(screen, s)

	x, y, width, height := s.GetInnerRect()
	if width < 24 || height < blockHeight {
		return
	}

	clock := s.editor.Clock()
	session := s.editor.Session()
	accent := rgb(clock.Color())
	bg := newGradient(height, clock.GradientRow(), s.palette.WashFrom, s.palette.WashTo)

	// Scrolling background.
	for row := 0; row < height; row++ {
		style := tcell.StyleDefault.Background(bg.at(row))
		for col := 0; col < width; col++ {
			screen.SetContent(x+col, y+row, ' ', nil, style)
		}
	}

	s.drawBricks(screen, x, y, width, height)

	top := (height - blockHeight) / 2
	cx := width / 2
	text := func(row int, str string, fg tcell.Color, bold bool) {
		style := tcell.StyleDefault.Foreground(fg).Background(bg.at(top + row)).Bold(bold)
		col := x + cx - len(str)/2
		for i, ch := range str {
			screen.SetContent(col+i, y+top+row, ch, nil, style)
		}
	}

	text(rowTitle, "NEW HIGH SCORE!", s.palette.Heading, true)
	text(rowScore, fmt.Sprintf("%05d", session.Score), s.palette.Heading, false)
	text(rowSelect, "LEFT/RIGHT TO SELECT", s.palette.Hint, false)
	text(rowChange, "UP/DOWN TO CHANGE", s.palette.Hint, false)
	text(rowPrompt, "PRESS 'B' TO SAVE", accent, true)

	// Letters, each in its own cell so the cursor box fits between them.
	for i, ch := range session.Letters {
		row := top + rowLetters
		style := tcell.StyleDefault.Foreground(s.palette.Letters).Background(bg.at(row)).Bold(true)
		r := rune(ch)
		if ch == ' ' {
			r = '_'
			style = style.Foreground(s.palette.Hint).Bold(false)
		}
		screen.SetContent(x+letterColumn(cx, i), y+row, r, nil, style)
	}

	s.drawCursor(screen, x+letterColumn(cx, session.Cursor), y+top+rowLetters, accent, bg)
}

// letterColumn returns the column of letter i relative to the screen's left edge.
func letterColumn(cx, i int) int {
	return cx + (i-types.InitialsLen/2)*letterSpacing
}

// drawCursor boxes the letter at (col, row).
func (s *InitialsScreen) drawCursor(screen tcell.Screen, col, row int, accent tcell.Color, bg gradient) {
	_, y, _, _ := s.GetInnerRect()
	style := func(r int) tcell.Style {
		return tcell.StyleDefault.Foreground(accent).Background(bg.at(r - y))
	}
	screen.SetContent(col-1, row-1, '┌', nil, style(row-1))
	screen.SetContent(col, row-1, '─', nil, style(row-1))
	screen.SetContent(col+1, row-1, '┐', nil, style(row-1))
	screen.SetContent(col-1, row, '│', nil, style(row))
	screen.SetContent(col+1, row, '│', nil, style(row))
	screen.SetContent(col-1, row+1, '└', nil, style(row+1))
	screen.SetContent(col, row+1, '─', nil, style(row+1))
	screen.SetContent(col+1, row+1, '┘', nil, style(row+1))
}

// drawBricks frames the corners with L-shaped brick clusters.
func (s *InitialsScreen) drawBricks(screen tcell.Screen, x, y, width, height int) {
	right := width - brickWidth
	bottom := height - 1
	bricks := [][2]int{
		{0, 0}, {brickWidth, 0}, {0, 1},
		{right - brickWidth, 0}, {right, 0}, {right, 1},
		{0, bottom}, {brickWidth, bottom}, {0, bottom - 1},
		{right - brickWidth, bottom}, {right, bottom}, {right, bottom - 1},
	}
	style := tcell.StyleDefault.Foreground(s.palette.Brick).Background(s.palette.BrickEdge)
	for _, b := range bricks {
		for i := 0; i < brickWidth-1; i++ {
			screen.SetContent(x+b[0]+i, y+b[1], s.palette.BrickRune, nil, style)
		}
		screen.SetContent(x+b[0]+brickWidth-1, y+b[1], ' ', nil, style)
	}
}

// gradient is a vertical colour wash scrolled by an offset. Row colours
// swing between two endpoints in Lab space along one sine period.
type gradient struct {
	height   int
	offset   int
	from, to colorful.Color
}

func newGradient(height, offset int, from, to colorful.Color) gradient {
	return gradient{height: height, offset: offset, from: from, to: to}
}

// blend returns the wash colour for screen row.
func (g gradient) blend(row int) colorful.Color {
	src := ((row-g.offset)%g.height + g.height) % g.height
	angle := 2 * math.Pi / float64(g.height) * float64(src)
	return g.from.BlendLab(g.to, (1+math.Sin(angle))/2).Clamped()
}

// at returns the background colour shown on screen row.
func (g gradient) at(row int) tcell.Color {
	r, gg, b := g.blend(row).RGB255()
	return tcell.NewRGBColor(int32(r), int32(gg), int32(b))
}
