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
	"strings"
	"unicode/utf8"
)

// AppName appears in document titles.
const AppName = "pad"

// ModifiedMarker prefixes the title of a modified document.
const ModifiedMarker = "*"

// Title names the document for display, e.g. "*notes.txt - pad".
func (d *Document) Title() string {
	marker := ""
	if d.modified {
		marker = ModifiedMarker
	}
	return fmt.Sprintf("%s%s - %s", marker, d.Name(), AppName)
}

// Status summarizes the content for the status bar.
type Status struct {
	Lines      int
	Characters int
	Modified   bool
}

// Status counts newline-delimited segments and Unicode characters.
// An empty document has one (empty) line.
func (d *Document) Status() Status {
	return Status{
		Lines:      strings.Count(d.content, "\n") + 1,
		Characters: utf8.RuneCountInString(d.content),
		Modified:   d.modified,
	}
}

func (s Status) String() string {
	return fmt.Sprintf("Lines: %d | Characters: %d", s.Lines, s.Characters)
}

func (s Status) Indicator() string {
	if s.Modified {
		return "Modified"
	}
	return "Ready"
}
