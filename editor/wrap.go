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
	"github.com/mattn/go-runewidth"
)

// TabWidth is the number of cells used to display a tab.
const TabWidth = 4

// A VisualLine is the part of a row that is displayed on one line of the screen.
type VisualLine struct {
	Row   int
	Start int // first column
	End   int // column after the last
}

// CellWidth is the number of screen cells used to display c.
// Control characters other than tab aren't displayed.
func CellWidth(c rune) int {
	if c == '\t' {
		return TabWidth
	}
	if c < ' ' || c == 0x7f {
		return 0
	}
	return runewidth.RuneWidth(c)
}

func TextWidth(text []rune) int {
	w := 0
	for _, c := range text {
		w += CellWidth(c)
	}
	return w
}

// WrapRow splits text into segments that fit in width cells.
// Segments break after the last space that fits; a word longer than the width
// is broken where it overflows. Spaces at a break stay on the earlier segment.
func WrapRow(text []rune, width int) []VisualLine {
	if width <= 0 || len(text) == 0 {
		return []VisualLine{{Start: 0, End: len(text)}}
	}
	lines := make([]VisualLine, 0)
	start := 0
	for start < len(text) {
		w := 0
		lastSpace := -1
		i := start
		for i < len(text) {
			cw := CellWidth(text[i])
			if w+cw > width && i > start {
				break
			}
			w += cw
			if text[i] == ' ' {
				lastSpace = i
			}
			i++
		}
		if i == len(text) {
			lines = append(lines, VisualLine{Start: start, End: i})
			break
		}
		end := i
		if text[i] == ' ' {
			for end < len(text) && text[end] == ' ' {
				end++
			}
		} else if lastSpace >= start {
			end = lastSpace + 1
		}
		lines = append(lines, VisualLine{Start: start, End: end})
		start = end
	}
	return lines
}

// Layout arranges the rows of a buffer into visual lines.
func (b *Buffer) Layout(width int, wrap bool) []VisualLine {
	lines := make([]VisualLine, 0, len(b.rows))
	for i, row := range b.rows {
		if !wrap {
			lines = append(lines, VisualLine{Row: i, Start: 0, End: row.Length()})
			continue
		}
		for _, line := range WrapRow(row.Text, width) {
			line.Row = i
			lines = append(lines, line)
		}
	}
	return lines
}

// cursorLine finds the visual line that contains the cursor.
func cursorLine(lines []VisualLine, row, col int) int {
	found := 0
	for i, line := range lines {
		if line.Row < row {
			continue
		}
		if line.Row > row {
			break
		}
		if line.Start <= col {
			found = i
		}
	}
	return found
}
