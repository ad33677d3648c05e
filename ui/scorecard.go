package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"termblox/types"
)

// ScoreCard is a rounded card listing the high-score table.
type ScoreCard struct {
	*tview.Box
	title     string
	entries   func() []types.ScoreEntry
	highlight *types.ScoreEntry
	message   string
	hint      string
	accent    tcell.Color
}

// NewScoreCard creates a card that reads its rows from entries on every draw.
func NewScoreCard(title string, entries func() []types.ScoreEntry, accent tcell.Color) *ScoreCard {
	return &ScoreCard{
		Box:     tview.NewBox(),
		title:   title,
		entries: entries,
		accent:  accent,
		hint:    "q · quit",
	}
}

// SetHighlight marks the row matching score and name.
func (c *ScoreCard) SetHighlight(score uint32, name string) {
	c.highlight = &types.ScoreEntry{Score: score, Name: name}
}

// SetMessage shows a line of text under the table.
func (c *ScoreCard) SetMessage(msg string) {
	c.message = msg
}

// Draw renders the card centred in its rect.
func (c *ScoreCard) Draw(screen tcell.Screen) {
	c.Box.DrawForSubclass(screen, c)

	rows := c.entries()
	x, y, width, height := c.GetInnerRect()
	cardW, cardH := 30, len(rows)+9
	if width < cardW || height < cardH {
		return
	}
	x += (width - cardW) / 2
	y += (height - cardH) / 2
	width, height = cardW, cardH

	borderStyle := tcell.StyleDefault.Foreground(MenuColors.Border).Background(MenuColors.CardBG)
	bgStyle := tcell.StyleDefault.Background(MenuColors.CardBG)

	// Fill background
	for row := y; row < y+height; row++ {
		for col := x; col < x+width; col++ {
			screen.SetContent(col, row, ' ', nil, bgStyle)
		}
	}

	// Top border: ╭───╮
	screen.SetContent(x, y, '╭', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, y, '─', nil, borderStyle)
	}
	screen.SetContent(x+width-1, y, '╮', nil, borderStyle)

	for row := y + 1; row < y+height-1; row++ {
		screen.SetContent(x, row, '│', nil, borderStyle)
		screen.SetContent(x+width-1, row, '│', nil, borderStyle)
	}

	// Bottom border: ╰───╯
	screen.SetContent(x, y+height-1, '╰', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, y+height-1, '─', nil, borderStyle)
	}
	screen.SetContent(x+width-1, y+height-1, '╯', nil, borderStyle)

	// Title with brick decoration: ▄ HIGH SCORES
	titleStyle := tcell.StyleDefault.Foreground(MenuColors.Title).Background(MenuColors.CardBG).Bold(true)
	accentStyle := tcell.StyleDefault.Foreground(MenuColors.TitleAccent).Background(MenuColors.CardBG)
	titleX := x + (width-len([]rune(c.title))-3)/2
	screen.SetContent(titleX, y+1, '▄', nil, accentStyle)
	drawText(screen, titleX+3, y+1, c.title, titleStyle)

	// Divider: ├───┤
	screen.SetContent(x, y+2, '├', nil, borderStyle)
	for col := x + 1; col < x+width-1; col++ {
		screen.SetContent(col, y+2, '─', nil, borderStyle)
	}
	screen.SetContent(x+width-1, y+2, '┤', nil, borderStyle)

	labelStyle := tcell.StyleDefault.Foreground(MenuColors.Label).Background(MenuColors.CardBG)
	markStyle := tcell.StyleDefault.Foreground(c.accent).Background(MenuColors.CardBG).Bold(true)
	marked := false
	for i, e := range rows {
		style := labelStyle
		if !marked && c.highlight != nil && e.Score == c.highlight.Score && e.Name == c.highlight.Name {
			style = markStyle
			marked = true
			screen.SetContent(x+2, y+4+i, '▸', nil, style)
		}
		drawText(screen, x+4, y+4+i, formatRow(i+1, e), style)
	}

	hintStyle := tcell.StyleDefault.Foreground(MenuColors.Hint).Background(MenuColors.CardBG)
	if c.message != "" {
		drawText(screen, x+2, y+height-3, c.message, labelStyle)
	}
	drawText(screen, x+2, y+height-2, c.hint, hintStyle)
}

// formatRow renders one table row: rank, name and zero-padded score.
func formatRow(rank int, e types.ScoreEntry) string {
	return fmt.Sprintf("%2d. %-3s   %05d", rank, e.Name, e.Score)
}

func drawText(screen tcell.Screen, x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		screen.SetContent(x+i, y, ch, nil, style)
	}
}
