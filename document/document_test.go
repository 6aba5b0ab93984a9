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
package document

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/timburks/pad/gateway"
)

var errNoSpace = errors.New("no space left on device")

// memoryFiles stores files in a map.
type memoryFiles struct {
	files     map[string]string
	failWrite bool
}

func newMemoryFiles() *memoryFiles {
	return &memoryFiles{files: make(map[string]string)}
}

func (m *memoryFiles) ReadText(path string) (string, error) {
	text, ok := m.files[path]
	if !ok {
		return "", os.ErrNotExist
	}
	return text, nil
}

func (m *memoryFiles) WriteText(path string, text string) error {
	if m.failWrite {
		return errNoSpace
	}
	m.files[path] = text
	return nil
}

// stubPicker returns fixed locations.
type stubPicker struct {
	open string
	save string
	used int
}

func (p *stubPicker) PickOpenLocation() (string, bool) {
	p.used++
	return p.open, p.open != ""
}

func (p *stubPicker) PickSaveLocation() (string, bool) {
	p.used++
	return p.save, p.save != ""
}

func setup(t *testing.T) (*Document, *memoryFiles) {
	files := newMemoryFiles()
	files.files["gettysburg.txt"] = "Four score and seven years ago\nour fathers brought forth"
	d := New(files)
	if err := d.Load("gettysburg.txt"); err != nil {
		t.Fatalf("Load failed: %+v", err)
	}
	return d, files
}

type state struct {
	content  string
	path     string
	modified bool
}

func stateOf(d *Document) state {
	return state{content: d.Content(), path: d.Path(), modified: d.Modified()}
}

func TestFreshDocument(t *testing.T) {
	d := New(newMemoryFiles())
	if d.Content() != "" || d.HasPath() || d.Modified() {
		t.Errorf("Unexpected fresh state: %+v", stateOf(d))
	}
	status := d.Status()
	if status.Lines != 1 || status.Characters != 0 {
		t.Errorf("Unexpected fresh status: %+v", status)
	}
	if status.Indicator() != "Ready" {
		t.Errorf("Unexpected indicator: %s", status.Indicator())
	}
	if title := d.Title(); title != "Untitled - pad" {
		t.Errorf("Unexpected title: '%s'", title)
	}
	if p := d.Preferences(); p != DefaultPreferences() {
		t.Errorf("Unexpected preferences: %+v", p)
	}
}

func TestLoad(t *testing.T) {
	d, _ := setup(t)
	if d.Path() != "gettysburg.txt" || d.Modified() {
		t.Errorf("Unexpected state after load: %+v", stateOf(d))
	}
	if !strings.HasPrefix(d.Content(), "Four score") {
		t.Errorf("Unexpected content: '%s'", d.Content())
	}
}

func TestLoadMissingFileLeavesDocumentUnchanged(t *testing.T) {
	d, _ := setup(t)
	d.SetContent("edited")
	before := stateOf(d)
	revision := d.Revision()
	err := d.Load("missing.txt")
	if err == nil {
		t.Errorf("Load of a missing file succeeded")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Unexpected error: %+v", err)
	}
	if after := stateOf(d); after != before {
		t.Errorf("Failed load changed the document: %+v != %+v", after, before)
	}
	if d.Revision() != revision {
		t.Errorf("Failed load changed the revision")
	}
}

func TestNewDiscardsEverything(t *testing.T) {
	d, _ := setup(t)
	d.SetContent("unsaved")
	d.New()
	if after := stateOf(d); after != (state{}) {
		t.Errorf("Unexpected state after New: %+v", after)
	}
}

func TestSave(t *testing.T) {
	d, files := setup(t)
	d.SetContent("hello")
	if err := d.Save("copy.txt"); err != nil {
		t.Errorf("Save failed: %+v", err)
	}
	if d.Path() != "copy.txt" || d.Modified() {
		t.Errorf("Unexpected state after save: %+v", stateOf(d))
	}
	if files.files["copy.txt"] != "hello" {
		t.Errorf("Unexpected saved text: '%s'", files.files["copy.txt"])
	}
}

func TestFailedSaveLeavesDocumentUnchanged(t *testing.T) {
	d, files := setup(t)
	d.SetContent("hello")
	before := stateOf(d)
	files.failWrite = true
	err := d.Save("copy.txt")
	if !errors.Is(err, errNoSpace) {
		t.Errorf("Unexpected error: %+v", err)
	}
	if after := stateOf(d); after != before {
		t.Errorf("Failed save changed the document: %+v != %+v", after, before)
	}
}

func TestSaveCurrent(t *testing.T) {
	d, files := setup(t)
	d.SetContent("changed")
	picker := &stubPicker{save: "other.txt"}
	if saved, err := d.SaveCurrent(picker); !saved || err != nil {
		t.Errorf("SaveCurrent failed: %+v", err)
	}
	if picker.used != 0 {
		t.Errorf("SaveCurrent asked for a location although the document has a path")
	}
	if files.files["gettysburg.txt"] != "changed" {
		t.Errorf("SaveCurrent did not write to the document's path")
	}

	d.New()
	d.SetContent("fresh")
	if saved, err := d.SaveCurrent(picker); !saved || err != nil {
		t.Errorf("SaveCurrent failed: %+v", err)
	}
	if picker.used != 1 || d.Path() != "other.txt" || d.Modified() {
		t.Errorf("Unexpected state after SaveCurrent: %+v", stateOf(d))
	}
}

func TestCancelledPicksChangeNothing(t *testing.T) {
	d, _ := setup(t)
	d.SetContent("changed")
	before := stateOf(d)
	picker := &stubPicker{}
	if opened, err := d.Open(picker); opened || err != nil {
		t.Errorf("Cancelled open reported %t: %+v", opened, err)
	}
	if saved, err := d.SaveAs(picker); saved || err != nil {
		t.Errorf("Cancelled save reported %t: %+v", saved, err)
	}
	if after := stateOf(d); after != before {
		t.Errorf("Cancelled picks changed the document: %+v != %+v", after, before)
	}
}

func TestFindAndReplace(t *testing.T) {
	d := New(newMemoryFiles())
	d.Restore(Snapshot{Content: "hello world hello", FontSize: DefaultFontSize})
	count := d.FindAndReplace("hello", "hi")
	if d.Content() != "hi world hi" {
		t.Errorf("Unexpected content after replace: '%s'", d.Content())
	}
	if count != 2 {
		t.Errorf("Unexpected replacement count: %d", count)
	}
	if !d.Modified() {
		t.Errorf("Replace did not mark the document modified")
	}
	if d.FindText() != "hello" || d.ReplaceText() != "hi" {
		t.Errorf("Replace did not record its arguments")
	}
}

func TestFindAndReplaceIsLeftmostNonOverlapping(t *testing.T) {
	cases := []struct {
		content, find, replace, expected string
	}{
		{"aaaa", "aa", "b", "bb"},
		{"aaa", "aa", "b", "ba"},
		{"abab", "ab", "abab", "abababab"},
		{"Hello hello", "hello", "bye", "Hello bye"},
		{"a.b.c", ".", "-", "a-b-c"},
		{"héllo wörld", "ö", "o", "héllo world"},
	}
	for _, c := range cases {
		d := New(newMemoryFiles())
		d.SetContent(c.content)
		d.FindAndReplace(c.find, c.replace)
		if d.Content() != c.expected {
			t.Errorf("replace %q with %q in %q: got %q, expected %q",
				c.find, c.replace, c.content, d.Content(), c.expected)
		}
	}
}

func TestFindAndReplaceNoOps(t *testing.T) {
	d, _ := setup(t)
	before := stateOf(d)
	for _, args := range [][2]string{
		{"", "x"},
		{"score", ""},
		{"", ""},
		{"absent", "present"},
		{"score", "score"},
	} {
		if count := d.FindAndReplace(args[0], args[1]); args[0] != args[1] && count != 0 {
			t.Errorf("FindAndReplace(%q, %q) reported %d replacements", args[0], args[1], count)
		}
		if after := stateOf(d); after != before {
			t.Errorf("FindAndReplace(%q, %q) changed the document: %+v", args[0], args[1], after)
		}
	}
}

func TestSetContent(t *testing.T) {
	d, _ := setup(t)
	revision := d.Revision()
	d.SetContent(d.Content())
	if d.Modified() || d.Revision() != revision {
		t.Errorf("Setting identical content changed the document")
	}
	d.SetContent("different")
	if !d.Modified() || d.Revision() == revision {
		t.Errorf("Setting new content did not mark the document modified")
	}
	if title := d.Title(); title != "*gettysburg.txt - pad" {
		t.Errorf("Unexpected title: '%s'", title)
	}
	if d.Status().Indicator() != "Modified" {
		t.Errorf("Unexpected indicator: %s", d.Status().Indicator())
	}
}

func TestStatus(t *testing.T) {
	cases := []struct {
		content    string
		lines      int
		characters int
	}{
		{"", 1, 0},
		{"one", 1, 3},
		{"one\n", 2, 4},
		{"one\ntwo", 2, 7},
		{"naïve\n日本", 2, 8},
	}
	for _, c := range cases {
		d := New(newMemoryFiles())
		d.SetContent(c.content)
		status := d.Status()
		if status.Lines != c.lines || status.Characters != c.characters {
			t.Errorf("Status of %q: %+v", c.content, status)
		}
	}
	d := New(newMemoryFiles())
	d.SetContent("a\nb")
	if s := d.Status().String(); s != "Lines: 2 | Characters: 3" {
		t.Errorf("Unexpected status text: '%s'", s)
	}
}

func TestPreferences(t *testing.T) {
	d := New(newMemoryFiles())
	d.SetFontSize(100)
	if d.Preferences().FontSize != MaxFontSize {
		t.Errorf("Font size was not clamped: %f", d.Preferences().FontSize)
	}
	d.SetFontSize(1)
	if d.Preferences().FontSize != MinFontSize {
		t.Errorf("Font size was not clamped: %f", d.Preferences().FontSize)
	}
	d.SetFontSize(20)
	if d.Preferences().FontSize != 20 {
		t.Errorf("Unexpected font size: %f", d.Preferences().FontSize)
	}
	d.ToggleWordWrap()
	d.ToggleStatusBar()
	if p := d.Preferences(); p.WordWrap || p.StatusBar {
		t.Errorf("Toggles had no effect: %+v", p)
	}
	if d.Modified() {
		t.Errorf("Preferences marked the document modified")
	}
}

func TestLoadSaveRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "round-trip.txt")
	original := "line one\r\nline two\n\ttabbed ünïcödé\n\n"
	if err := os.WriteFile(path, []byte(original), 0644); err != nil {
		t.Fatalf("%+v", err)
	}
	d := New(gateway.NewFiles())
	if err := d.Load(path); err != nil {
		t.Fatalf("Load failed: %+v", err)
	}
	if err := d.Save(path); err != nil {
		t.Fatalf("Save failed: %+v", err)
	}
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("%+v", err)
	}
	if string(b) != original {
		t.Errorf("Round trip changed the file: %q", string(b))
	}
}
