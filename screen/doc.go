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

// Package screen draws pad on a terminal with termbox.
//
// From top to bottom the screen holds the title bar, the text area, the
// find & replace panel when it is open, the status bar when it is enabled
// and the message bar. Drawing goes through the pad.Display interface so
// that frames can be checked without a terminal.
package screen
