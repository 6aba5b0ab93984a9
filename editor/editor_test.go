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
	"testing"

	"github.com/timburks/pad/document"
	pad "github.com/timburks/pad/types"
)

const source = "THE GETTYSBURG ADDRESS:\n\nFour score and seven years ago our fathers brought forth on this\ncontinent a new nation."

// memoryFiles keeps files in a map.
type memoryFiles map[string]string

func (m memoryFiles) ReadText(path string) (string, error) {
	return m[path], nil
}

func (m memoryFiles) WriteText(path string, text string) error {
	m[path] = text
	return nil
}

func setup(t *testing.T) *Editor {
	files := memoryFiles{"gettysburg.txt": source}
	d := document.New(files)
	if err := d.Load("gettysburg.txt"); err != nil {
		t.Fatalf("Load failed: %+v", err)
	}
	e := NewEditor(d)
	e.SetSize(pad.Size{Rows: 10, Cols: 40})
	return e
}

func TestRowsMatchDocument(t *testing.T) {
	e := setup(t)
	if rowCount := e.GetBuffer().GetRowCount(); rowCount != 4 {
		t.Errorf("Unexpected row count: %d", rowCount)
	}
	if e.GetBuffer().String() != source {
		t.Errorf("Buffer does not match the document")
	}
}

func TestInsert(t *testing.T) {
	e := setup(t)
	e.Cursor = pad.Point{Row: 0, Col: 4}
	e.InsertText("BIG LEAGUE ")
	expected := "THE BIG LEAGUE GETTYSBURG ADDRESS:"
	if remainder := e.GetBuffer().TextAfter(0, 0); remainder != expected {
		t.Errorf("Unexpected remainder after insertion: '%s'", remainder)
	}
	if e.Cursor.Col != 15 {
		t.Errorf("Unexpected cursor: %+v", e.Cursor)
	}
	d := e.GetDocument()
	if !d.Modified() || d.Content() != e.GetBuffer().String() {
		t.Errorf("Insert was not written to the document")
	}
}

func TestInsertNewline(t *testing.T) {
	e := setup(t)
	e.Cursor = pad.Point{Row: 0, Col: 3}
	e.InsertChar('\n')
	if e.GetBuffer().GetRowCount() != 5 {
		t.Errorf("Unexpected row count: %d", e.GetBuffer().GetRowCount())
	}
	if remainder := e.GetBuffer().TextAfter(1, 0); remainder != " GETTYSBURG ADDRESS:" {
		t.Errorf("Unexpected remainder after split: '%s'", remainder)
	}
	if e.Cursor != (pad.Point{Row: 1, Col: 0}) {
		t.Errorf("Unexpected cursor: %+v", e.Cursor)
	}
	if deleted := e.BackspaceChar(); deleted != "\n" {
		t.Errorf("Unexpected deletion: %q", deleted)
	}
	if e.GetDocument().Content() != source {
		t.Errorf("Backspace did not rejoin the rows")
	}
	if !e.GetDocument().Modified() {
		t.Errorf("Edits did not mark the document modified")
	}
}

func TestBackspaceAndDelete(t *testing.T) {
	e := setup(t)
	e.Cursor = pad.Point{Row: 0, Col: 3}
	if deleted := e.BackspaceChar(); deleted != "E" {
		t.Errorf("Unexpected deletion: %q", deleted)
	}
	if deleted := e.DeleteChar(); deleted != " " {
		t.Errorf("Unexpected deletion: %q", deleted)
	}
	if remainder := e.GetBuffer().TextAfter(0, 0); remainder != "THGETTYSBURG ADDRESS:" {
		t.Errorf("Unexpected remainder after deletion: '%s'", remainder)
	}
	e.Cursor = pad.Point{Row: 0, Col: 0}
	if deleted := e.BackspaceChar(); deleted != "" {
		t.Errorf("Backspace at the start of the buffer deleted %q", deleted)
	}
	e.MoveToEnd()
	if deleted := e.DeleteChar(); deleted != "" {
		t.Errorf("Delete at the end of the buffer deleted %q", deleted)
	}
}

func TestGraphemeEditing(t *testing.T) {
	d := document.New(memoryFiles{})
	d.SetContent("cafe\u0301 ok")
	e := NewEditor(d)
	e.MoveToEndOfLine()
	e.MoveCursor(pad.MoveLeft, 4)
	if e.Cursor.Col != 3 {
		t.Errorf("Cursor did not move over the combined character: %+v", e.Cursor)
	}
	e.MoveCursor(pad.MoveRight, 1)
	if e.Cursor.Col != 5 {
		t.Errorf("Unexpected cursor: %+v", e.Cursor)
	}
	if deleted := e.BackspaceChar(); deleted != "e\u0301" {
		t.Errorf("Unexpected deletion: %q", deleted)
	}
	if d.Content() != "caf ok" {
		t.Errorf("Unexpected content: %q", d.Content())
	}
}

func TestVerticalMoveKeepsClusters(t *testing.T) {
	d := document.New(memoryFiles{})
	d.SetContent("abc\ne\u0301x")
	e := NewEditor(d)
	e.MoveCursor(pad.MoveRight, 1)
	e.MoveCursor(pad.MoveDown, 1)
	if e.Cursor.Row != 1 || e.Cursor.Col != 0 {
		t.Errorf("Cursor stopped inside a cluster: %+v", e.Cursor)
	}
	e.InsertChar('!')
	if content := d.Content(); content != "abc\n!e\u0301x" {
		t.Errorf("Unexpected content: %q", content)
	}
	e.MoveCursor(pad.MoveUp, 1)
	e.MoveToEndOfLine()
	e.MoveCursor(pad.MoveDown, 1)
	if e.Cursor.Row != 1 || e.Cursor.Col != 3 {
		t.Errorf("Unexpected cursor: %+v", e.Cursor)
	}
	e.BackspaceChar()
	if content := d.Content(); content != "abc\n!x" {
		t.Errorf("Unexpected content: %q", content)
	}
}

func TestCursorMovement(t *testing.T) {
	e := setup(t)
	e.MoveCursor(pad.MoveDown, 2)
	e.MoveToEndOfLine()
	if e.Cursor.Col != 64 {
		t.Errorf("Unexpected cursor: %+v", e.Cursor)
	}
	e.MoveCursor(pad.MoveUp, 1)
	if e.Cursor != (pad.Point{Row: 1, Col: 0}) {
		t.Errorf("Cursor was not kept in the row: %+v", e.Cursor)
	}
	e.MoveCursor(pad.MoveLeft, 1)
	if e.Cursor != (pad.Point{Row: 0, Col: 23}) {
		t.Errorf("Cursor did not wrap to the previous row: %+v", e.Cursor)
	}
	e.MoveCursor(pad.MoveRight, 1)
	if e.Cursor != (pad.Point{Row: 1, Col: 0}) {
		t.Errorf("Cursor did not wrap to the next row: %+v", e.Cursor)
	}
	e.PageDown()
	if e.Cursor.Row != 3 {
		t.Errorf("Unexpected cursor after page down: %+v", e.Cursor)
	}
	e.PageUp()
	if e.Cursor.Row != 0 {
		t.Errorf("Unexpected cursor after page up: %+v", e.Cursor)
	}
}

func TestSyncAfterExternalChange(t *testing.T) {
	e := setup(t)
	e.MoveToEnd()
	d := e.GetDocument()
	d.FindAndReplace("nation.", "land")
	e.Sync()
	if e.Cursor != (pad.Point{Row: 3, Col: 20}) {
		t.Errorf("Cursor was not kept in the buffer: %+v", e.Cursor)
	}
	if e.GetBuffer().String() != d.Content() {
		t.Errorf("Buffer was not reloaded")
	}
	d.New()
	e.Sync()
	if e.Cursor != (pad.Point{}) || e.GetBuffer().GetRowCount() != 1 {
		t.Errorf("Unexpected editor state after New: %+v", e.Cursor)
	}
	e.InsertText("fresh")
	if d.Content() != "fresh" || !d.Modified() {
		t.Errorf("Unexpected document after typing: %q", d.Content())
	}
}

func TestGofmt(t *testing.T) {
	out, err := Gofmt("package main\nfunc main(){\nx:=1\n_=x}\n")
	if err != nil {
		t.Fatalf("Gofmt failed: %+v", err)
	}
	expected := "package main\n\nfunc main() {\n\tx := 1\n\t_ = x\n}\n"
	if out != expected {
		t.Errorf("Unexpected output: %q", out)
	}
	if _, err := Gofmt("package"); err == nil {
		t.Errorf("Gofmt accepted invalid source")
	}
}
