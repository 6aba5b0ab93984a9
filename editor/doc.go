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

// Package editor implements the text editing widget of pad.
// The editor keeps the document's content as rows of runes so that a cursor
// can move through it, and writes every change back to the document.
// It also lays rows out into visual lines for display, wrapping them
// at word boundaries when word wrap is on.
package editor
