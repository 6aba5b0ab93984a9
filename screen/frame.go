//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//   http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
//
package screen

import (
	"fmt"

	"github.com/timburks/pad/commander"
	"github.com/timburks/pad/editor"
	pad "github.com/timburks/pad/types"
)

const (
	findLabel    = " Find:    "
	replaceLabel = " Replace: "
	findHint     = "Tab: switch  Enter: replace all  Esc: close "
)

var aboutText = []string{
	"pad - a basic terminal text editor",
	"Version 1.0",
	"",
	"Press any key to continue",
}

// A Layout assigns screen rows to the parts of the display.
// Rows of hidden parts are -1.
type Layout struct {
	Title     int
	Text      pad.Rect
	FindPanel int // first of two rows
	StatusBar int
	Message   int
}

func NewLayout(size pad.Size, findPanel bool, statusBar bool) Layout {
	l := Layout{
		Title:     0,
		FindPanel: -1,
		StatusBar: -1,
		Message:   size.Rows - 1,
	}
	bottom := l.Message
	if statusBar {
		bottom--
		l.StatusBar = bottom
	}
	if findPanel {
		bottom -= 2
		l.FindPanel = bottom
	}
	l.Text = pad.Rect{
		Origin: pad.Point{Row: 1, Col: 0},
		Size:   pad.Size{Rows: max(bottom-1, 0), Cols: size.Cols},
	}
	return l
}

// Draw renders a frame and returns the cursor position.
// The returned row is negative when the cursor should be hidden.
func Draw(display pad.Display, size pad.Size, e *editor.Editor, c *commander.Commander) pad.Point {
	d := e.GetDocument()
	prefs := d.Preferences()
	l := NewLayout(size, c.FindPanelVisible(), prefs.StatusBar)

	e.SetSize(l.Text.Size)
	cursor := e.Render(display, l.Text.Origin, prefs.WordWrap)

	drawBar(display, l.Title, size.Cols, " "+d.Title(), "")

	if l.FindPanel >= 0 {
		cursor = drawFindPanel(display, l.FindPanel, size.Cols, c)
	}

	if l.StatusBar >= 0 {
		status := d.Status()
		wrap := "No Wrap"
		if prefs.WordWrap {
			wrap = "Wrap"
		}
		right := fmt.Sprintf("%gpt | %s | %s ", prefs.FontSize, wrap, status.Indicator())
		drawBar(display, l.StatusBar, size.Cols, " "+status.String(), right)
	}

	message := c.GetMessageBarText(size.Cols)
	x := drawText(display, 0, l.Message, size.Cols, message, pad.ColorDefault, pad.ColorDefault)
	switch c.GetMode() {
	case pad.ModeCommand, pad.ModePromptOpen, pad.ModePromptSave, pad.ModeConfirm:
		cursor = pad.Point{Row: l.Message, Col: min(x, max(size.Cols-1, 0))}
	case pad.ModeAbout:
		drawAbout(display, l.Text)
		cursor = pad.Point{Row: -1, Col: -1}
	}
	return cursor
}

// drawText draws text starting at x and returns the column after it.
// Nothing is drawn at or beyond width.
func drawText(display pad.Display, x int, y int, width int, text string, fg pad.Color, bg pad.Color) int {
	for _, c := range text {
		w := editor.CellWidth(c)
		if x+w > width {
			break
		}
		if w > 0 {
			display.SetCell(x, y, c, fg, bg)
		}
		x += w
	}
	return x
}

// drawBar fills a row in reverse colors with left aligned and right aligned text.
func drawBar(display pad.Display, y int, width int, left string, right string) {
	for x := 0; x < width; x++ {
		display.SetCell(x, y, ' ', pad.ColorBlack, pad.ColorWhite)
	}
	drawText(display, 0, y, width, left, pad.ColorBlack, pad.ColorWhite)
	x := width - editor.TextWidth([]rune(right))
	if x > editor.TextWidth([]rune(left)) {
		drawText(display, x, y, width, right, pad.ColorBlack, pad.ColorWhite)
	}
}

func drawFindPanel(display pad.Display, y int, width int, c *commander.Commander) pad.Point {
	fieldColor := func(mode int) pad.Color {
		if c.GetMode() == mode {
			return pad.ColorYellow
		}
		return pad.ColorDefault
	}
	x := drawText(display, 0, y, width, findLabel, pad.ColorCyan, pad.ColorDefault)
	end := drawText(display, x, y, width, c.GetFindText(), fieldColor(pad.ModeFind), pad.ColorDefault)
	hint := width - editor.TextWidth([]rune(findHint))
	if hint > end+1 {
		drawText(display, hint, y, width, findHint, pad.ColorCyan, pad.ColorDefault)
	}
	cursor := pad.Point{Row: y, Col: end}

	x = drawText(display, 0, y+1, width, replaceLabel, pad.ColorCyan, pad.ColorDefault)
	end = drawText(display, x, y+1, width, c.GetReplaceText(), fieldColor(pad.ModeReplace), pad.ColorDefault)
	if c.GetMode() == pad.ModeReplace {
		cursor = pad.Point{Row: y + 1, Col: end}
	}
	cursor.Col = min(cursor.Col, max(width-1, 0))
	return cursor
}

// drawAbout draws a framed box in the middle of the area.
func drawAbout(display pad.Display, area pad.Rect) {
	inner := 0
	for _, line := range aboutText {
		inner = max(inner, editor.TextWidth([]rune(line)))
	}
	w := min(inner+4, area.Size.Cols)
	h := min(len(aboutText)+2, area.Size.Rows)
	left := area.Origin.Col + (area.Size.Cols-w)/2
	top := area.Origin.Row + (area.Size.Rows-h)/2
	for i := 0; i < h; i++ {
		for j := 0; j < w; j++ {
			c := ' '
			switch {
			case (i == 0 || i == h-1) && (j == 0 || j == w-1):
				c = '+'
			case i == 0 || i == h-1:
				c = '-'
			case j == 0 || j == w-1:
				c = '|'
			}
			display.SetCell(left+j, top+i, c, pad.ColorBlack, pad.ColorWhite)
		}
	}
	for i, line := range aboutText {
		if i+1 >= h-1 {
			break
		}
		x := left + (w-editor.TextWidth([]rune(line)))/2
		drawText(display, x, top+1+i, left+w-1, line, pad.ColorBlack, pad.ColorWhite)
	}
}
