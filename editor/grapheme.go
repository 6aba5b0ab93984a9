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
	"github.com/rivo/uniseg"
)

// nextBoundary returns the column after the grapheme cluster that starts at col.
func nextBoundary(text []rune, col int) int {
	if col >= len(text) {
		return len(text)
	}
	g := uniseg.NewGraphemes(string(text[col:]))
	if g.Next() {
		return col + len(g.Runes())
	}
	return col + 1
}

// clusterStart returns the start of the grapheme cluster that contains col.
// Columns already on a boundary are returned unchanged.
func clusterStart(text []rune, col int) int {
	if col <= 0 {
		return 0
	}
	if col >= len(text) {
		return len(text)
	}
	start := 0
	g := uniseg.NewGraphemes(string(text))
	for g.Next() {
		n := len(g.Runes())
		if start+n > col {
			return start
		}
		start += n
	}
	return col
}

// previousBoundary returns the start of the grapheme cluster that ends at col.
func previousBoundary(text []rune, col int) int {
	if col <= 0 {
		return 0
	}
	if col > len(text) {
		col = len(text)
	}
	start := 0
	g := uniseg.NewGraphemes(string(text[:col]))
	for g.Next() {
		n := len(g.Runes())
		if start+n >= col {
			return start
		}
		start += n
	}
	return col - 1
}
