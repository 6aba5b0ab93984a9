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

// A Snapshot is the persisted form of a Document.
// Fields missing from a stored snapshot keep their default values.
type Snapshot struct {
	Content     string  `json:"content"`
	Path        string  `json:"current_file,omitempty"`
	Modified    bool    `json:"is_modified"`
	FontSize    float64 `json:"font_size"`
	WordWrap    bool    `json:"word_wrap"`
	StatusBar   bool    `json:"status_bar"`
	FindText    string  `json:"find_text"`
	ReplaceText string  `json:"replace_text"`
}

func DefaultSnapshot() Snapshot {
	p := DefaultPreferences()
	return Snapshot{
		FontSize:  p.FontSize,
		WordWrap:  p.WordWrap,
		StatusBar: p.StatusBar,
	}
}

func (d *Document) Snapshot() Snapshot {
	return Snapshot{
		Content:     d.content,
		Path:        d.path,
		Modified:    d.modified,
		FontSize:    d.preferences.FontSize,
		WordWrap:    d.preferences.WordWrap,
		StatusBar:   d.preferences.StatusBar,
		FindText:    d.findText,
		ReplaceText: d.replaceText,
	}
}

// Restore replaces the whole state of the document with a snapshot.
func (d *Document) Restore(s Snapshot) {
	d.setContent(s.Content)
	d.path = s.Path
	d.modified = s.Modified
	d.preferences = Preferences{
		FontSize:  clampFontSize(s.FontSize),
		WordWrap:  s.WordWrap,
		StatusBar: s.StatusBar,
	}
	d.findText = s.FindText
	d.replaceText = s.ReplaceText
}
