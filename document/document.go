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
	"fmt"
	"path/filepath"
	"strings"
)

// Files reads and writes whole text files.
type Files interface {
	ReadText(path string) (string, error)
	WriteText(path string, text string) error
}

// A Picker asks the user for a location. The second result is false if the user cancelled.
type Picker interface {
	PickOpenLocation() (string, bool)
	PickSaveLocation() (string, bool)
}

// Font size limits
const (
	MinFontSize     = 8.0
	MaxFontSize     = 32.0
	DefaultFontSize = 14.0
)

// Preferences control presentation only; they never change the meaning of the content.
type Preferences struct {
	FontSize  float64
	WordWrap  bool
	StatusBar bool
}

func DefaultPreferences() Preferences {
	return Preferences{
		FontSize:  DefaultFontSize,
		WordWrap:  true,
		StatusBar: true,
	}
}

// The Document is the single text buffer edited by pad.
type Document struct {
	files       Files
	content     string
	path        string // empty if the document has never been loaded or saved
	modified    bool   // true if content changed since the last load or save
	revision    int    // incremented whenever content is replaced
	preferences Preferences
	findText    string
	replaceText string
}

func New(files Files) *Document {
	return &Document{
		files:       files,
		preferences: DefaultPreferences(),
	}
}

func (d *Document) Content() string {
	return d.content
}

func (d *Document) Path() string {
	return d.path
}

func (d *Document) HasPath() bool {
	return d.path != ""
}

func (d *Document) Modified() bool {
	return d.modified
}

// Revision changes every time the content is replaced.
func (d *Document) Revision() int {
	return d.revision
}

func (d *Document) Preferences() Preferences {
	return d.preferences
}

func (d *Document) FindText() string {
	return d.findText
}

func (d *Document) ReplaceText() string {
	return d.replaceText
}

func (d *Document) SetFindText(text string) {
	d.findText = text
}

func (d *Document) SetReplaceText(text string) {
	d.replaceText = text
}

func (d *Document) setContent(text string) {
	d.content = text
	d.revision++
}

// New discards the content and the path. Unsaved changes are lost.
func (d *Document) New() {
	d.setContent("")
	d.path = ""
	d.modified = false
}

// Load replaces the content with the text of the file at path.
// If the file can't be read, the document is left unchanged.
func (d *Document) Load(path string) error {
	text, err := d.files.ReadText(path)
	if err != nil {
		return fmt.Errorf("failed to open file: %w", err)
	}
	d.setContent(text)
	d.path = path
	d.modified = false
	return nil
}

// Save writes the content to path. The content itself is never changed;
// the path and modified flag are only updated when the write succeeds.
func (d *Document) Save(path string) error {
	err := d.files.WriteText(path, d.content)
	if err != nil {
		return fmt.Errorf("failed to save file: %w", err)
	}
	d.path = path
	d.modified = false
	return nil
}

// Open loads a file chosen with the picker. Cancelling is not an error;
// the boolean result is false when the user cancelled.
func (d *Document) Open(p Picker) (bool, error) {
	path, ok := p.PickOpenLocation()
	if !ok {
		return false, nil
	}
	return true, d.Load(path)
}

// SaveAs saves to a location chosen with the picker. Cancelling is not an error;
// the boolean result is false when the user cancelled.
func (d *Document) SaveAs(p Picker) (bool, error) {
	path, ok := p.PickSaveLocation()
	if !ok {
		return false, nil
	}
	return true, d.Save(path)
}

// SaveCurrent saves to the document's path, or asks the picker for one.
func (d *Document) SaveCurrent(p Picker) (bool, error) {
	if d.HasPath() {
		return true, d.Save(d.path)
	}
	return d.SaveAs(p)
}

// SetContent records a direct edit of the content.
func (d *Document) SetContent(text string) {
	if text == d.content {
		return
	}
	d.setContent(text)
	d.modified = true
}

// FindAndReplace replaces every non-overlapping occurrence of find with replace,
// scanning from the left, and returns the number of replacements.
// Empty find or replace strings do nothing.
func (d *Document) FindAndReplace(find, replace string) int {
	d.findText = find
	d.replaceText = replace
	if find == "" || replace == "" {
		return 0
	}
	count := strings.Count(d.content, find)
	if count == 0 {
		return 0
	}
	text := strings.ReplaceAll(d.content, find, replace)
	if text != d.content {
		d.setContent(text)
		d.modified = true
	}
	return count
}

func clampFontSize(size float64) float64 {
	if size != size { // NaN
		return DefaultFontSize
	}
	if size < MinFontSize {
		return MinFontSize
	}
	if size > MaxFontSize {
		return MaxFontSize
	}
	return size
}

func (d *Document) SetFontSize(size float64) {
	d.preferences.FontSize = clampFontSize(size)
}

func (d *Document) ToggleWordWrap() {
	d.preferences.WordWrap = !d.preferences.WordWrap
}

func (d *Document) ToggleStatusBar() {
	d.preferences.StatusBar = !d.preferences.StatusBar
}

// Name is the base name of the document's path, or Untitled.
func (d *Document) Name() string {
	if d.path == "" {
		return "Untitled"
	}
	return filepath.Base(d.path)
}
