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
package editor

import (
	"github.com/timburks/pad/document"
	pad "github.com/timburks/pad/types"
)

// The Editor manages cursor-based editing of a Document.
type Editor struct {
	Cursor   pad.Point          // cursor position, Col may equal the row length
	Offset   pad.Size           // display offset; Rows counts visual lines, Cols counts cells
	document *document.Document // the document being edited
	buffer   *Buffer            // the document's content split into rows
	revision int                // document revision that the buffer reflects
	path     string             // document path that the buffer reflects
	size     pad.Size           // size of editing area
}

func NewEditor(d *document.Document) *Editor {
	e := &Editor{document: d}
	e.buffer = NewBuffer()
	e.revision = -1
	e.Sync()
	return e
}

func (e *Editor) GetBuffer() *Buffer {
	return e.buffer
}

func (e *Editor) GetDocument() *document.Document {
	return e.document
}

func (e *Editor) SetSize(s pad.Size) {
	e.size = s
}

// Sync reloads the rows if the document's content was replaced by someone else.
func (e *Editor) Sync() {
	if e.document.Revision() == e.revision {
		return
	}
	e.buffer.LoadString(e.document.Content())
	e.revision = e.document.Revision()
	if e.document.Path() != e.path {
		e.path = e.document.Path()
		e.Cursor = pad.Point{}
		e.Offset = pad.Size{}
	}
	e.KeepCursorInBuffer()
}

// commit writes the rows back to the document.
func (e *Editor) commit() {
	e.document.SetContent(e.buffer.String())
	e.revision = e.document.Revision()
}

func (e *Editor) KeepCursorInBuffer() {
	if e.Cursor.Row >= e.buffer.GetRowCount() {
		e.Cursor.Row = e.buffer.GetRowCount() - 1
	}
	if e.Cursor.Row < 0 {
		e.Cursor.Row = 0
	}
	e.Cursor.Col = clipToRange(e.Cursor.Col, 0, e.buffer.GetRowLength(e.Cursor.Row))
	// never stop inside a grapheme cluster
	e.Cursor.Col = clusterStart(e.rowText(), e.Cursor.Col)
}

func (e *Editor) rowText() []rune {
	return e.buffer.GetRow(e.Cursor.Row).Text
}

// These editor primitives change the document at the cursor.

func (e *Editor) InsertChar(c rune) {
	e.Sync()
	e.insertChar(c)
	e.commit()
}

func (e *Editor) insertChar(c rune) {
	if c == '\n' {
		e.buffer.SplitRow(e.Cursor.Row, e.Cursor.Col)
		e.Cursor.Row++
		e.Cursor.Col = 0
		return
	}
	e.buffer.InsertCharacter(e.Cursor.Row, e.Cursor.Col, c)
	e.Cursor.Col++
}

// InsertText inserts text at the cursor and leaves the cursor after it.
func (e *Editor) InsertText(text string) {
	if text == "" {
		return
	}
	e.Sync()
	for _, c := range text {
		e.insertChar(c)
	}
	e.commit()
}

// BackspaceChar deletes the character before the cursor, joining rows at the start of a row.
func (e *Editor) BackspaceChar() string {
	e.Sync()
	var deleted string
	if e.Cursor.Col > 0 {
		start := previousBoundary(e.rowText(), e.Cursor.Col)
		deleted = e.buffer.DeleteCharacters(e.Cursor.Row, start, e.Cursor.Col)
		e.Cursor.Col = start
	} else if e.Cursor.Row > 0 {
		e.Cursor.Row--
		e.Cursor.Col = e.buffer.GetRowLength(e.Cursor.Row)
		e.buffer.JoinRows(e.Cursor.Row)
		deleted = "\n"
	} else {
		return ""
	}
	e.commit()
	return deleted
}

// DeleteChar deletes the character at the cursor, joining rows at the end of a row.
func (e *Editor) DeleteChar() string {
	e.Sync()
	var deleted string
	if e.Cursor.Col < e.buffer.GetRowLength(e.Cursor.Row) {
		end := nextBoundary(e.rowText(), e.Cursor.Col)
		deleted = e.buffer.DeleteCharacters(e.Cursor.Row, e.Cursor.Col, end)
	} else if e.Cursor.Row < e.buffer.GetRowCount()-1 {
		e.buffer.JoinRows(e.Cursor.Row)
		deleted = "\n"
	} else {
		return ""
	}
	e.commit()
	return deleted
}

func (e *Editor) MoveCursor(direction int, multiplier int) {
	e.Sync()
	for i := 0; i < multiplier; i++ {
		switch direction {
		case pad.MoveLeft:
			if e.Cursor.Col > 0 {
				e.Cursor.Col = previousBoundary(e.rowText(), e.Cursor.Col)
			} else if e.Cursor.Row > 0 {
				e.Cursor.Row--
				e.Cursor.Col = e.buffer.GetRowLength(e.Cursor.Row)
			}
		case pad.MoveRight:
			if e.Cursor.Col < e.buffer.GetRowLength(e.Cursor.Row) {
				e.Cursor.Col = nextBoundary(e.rowText(), e.Cursor.Col)
			} else if e.Cursor.Row < e.buffer.GetRowCount()-1 {
				e.Cursor.Row++
				e.Cursor.Col = 0
			}
		case pad.MoveUp:
			if e.Cursor.Row > 0 {
				e.Cursor.Row--
			}
		case pad.MoveDown:
			if e.Cursor.Row < e.buffer.GetRowCount()-1 {
				e.Cursor.Row++
			}
		}
	}
	// don't go past the end of the current line
	e.KeepCursorInBuffer()
}

func (e *Editor) MoveToBeginningOfLine() {
	e.Sync()
	e.Cursor.Col = 0
}

func (e *Editor) MoveToEndOfLine() {
	e.Sync()
	e.Cursor.Col = e.buffer.GetRowLength(e.Cursor.Row)
}

func (e *Editor) MoveToStart() {
	e.Sync()
	e.Cursor = pad.Point{}
}

func (e *Editor) MoveToEnd() {
	e.Sync()
	e.Cursor.Row = e.buffer.GetRowCount() - 1
	e.Cursor.Col = e.buffer.GetRowLength(e.Cursor.Row)
}

// MoveToLine moves the cursor to the start of a line, counting from 1.
func (e *Editor) MoveToLine(line int) {
	e.Sync()
	e.Cursor.Row = clipToRange(line-1, 0, e.buffer.GetRowCount()-1)
	e.Cursor.Col = 0
}

func (e *Editor) PageUp() {
	e.MoveCursor(pad.MoveUp, max(e.size.Rows-1, 1))
}

func (e *Editor) PageDown() {
	e.MoveCursor(pad.MoveDown, max(e.size.Rows-1, 1))
}

// Scroll moves the display offset to keep the cursor visible.
func (e *Editor) Scroll(lines []VisualLine, wrap bool) {
	i := cursorLine(lines, e.Cursor.Row, e.Cursor.Col)
	if i < e.Offset.Rows {
		e.Offset.Rows = i
	}
	if e.size.Rows > 0 && i-e.Offset.Rows >= e.size.Rows {
		e.Offset.Rows = i - e.size.Rows + 1
	}
	if wrap {
		e.Offset.Cols = 0
		return
	}
	x := TextWidth(e.rowText()[:e.Cursor.Col])
	if x < e.Offset.Cols {
		e.Offset.Cols = x
	}
	if e.size.Cols > 0 && x-e.Offset.Cols >= e.size.Cols {
		e.Offset.Cols = x - e.size.Cols + 1
	}
}

// CursorPosition is the cursor's location relative to the top left of the editing area.
func (e *Editor) CursorPosition(lines []VisualLine) pad.Point {
	i := cursorLine(lines, e.Cursor.Row, e.Cursor.Col)
	start := 0
	if i < len(lines) {
		start = lines[i].Start
	}
	x := TextWidth(e.rowText()[start:e.Cursor.Col]) - e.Offset.Cols
	if e.size.Cols > 0 && x >= e.size.Cols {
		x = e.size.Cols - 1
	}
	return pad.Point{Row: i - e.Offset.Rows, Col: x}
}

// Render draws the visible text in an area defined by origin and the editor's size.
// It returns the position of the cursor on the display.
func (e *Editor) Render(display pad.Display, origin pad.Point, wrap bool) pad.Point {
	e.Sync()
	lines := e.buffer.Layout(e.size.Cols, wrap)
	e.Scroll(lines, wrap)

	for i := 0; i < e.size.Rows; i++ {
		y := origin.Row + i
		index := i + e.Offset.Rows
		if index >= len(lines) {
			display.SetCell(origin.Col, y, '~', pad.ColorBlue, pad.ColorDefault)
			continue
		}
		line := lines[index]
		text := e.buffer.GetRow(line.Row).Text[line.Start:line.End]
		x := -e.Offset.Cols
		for _, c := range text {
			w := CellWidth(c)
			if x >= 0 && x+w <= e.size.Cols {
				if c == '\t' {
					for j := 0; j < w; j++ {
						display.SetCell(origin.Col+x+j, y, ' ', pad.ColorDefault, pad.ColorDefault)
					}
				} else if w > 0 {
					display.SetCell(origin.Col+x, y, c, pad.ColorDefault, pad.ColorDefault)
				}
			}
			x += w
		}
	}
	cursor := e.CursorPosition(lines)
	cursor.Row += origin.Row
	cursor.Col += origin.Col
	return cursor
}

func clipToRange(value, min, max int) int {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
