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
package types

// Commander modes
const (
	ModeEdit       = 0
	ModeFind       = 1
	ModeReplace    = 2
	ModeCommand    = 3
	ModePromptOpen = 4
	ModePromptSave = 5
	ModeConfirm    = 6
	ModeAbout      = 7
	ModeQuit       = 9999
)

// Move directions
const (
	MoveUp    = 0
	MoveDown  = 1
	MoveRight = 2
	MoveLeft  = 3
)

type Point struct {
	Row int
	Col int
}

type Size struct {
	Rows int
	Cols int
}

type Rect struct {
	Origin Point
	Size   Size
}

type Color uint16

const (
	ColorDefault Color = 0
	ColorBlack   Color = 1
	ColorRed     Color = 2
	ColorGreen   Color = 3
	ColorYellow  Color = 4
	ColorBlue    Color = 5
	ColorMagenta Color = 6
	ColorCyan    Color = 7
	ColorWhite   Color = 8
)

// A Display receives cells from renderers.
type Display interface {
	SetCell(x int, y int, c rune, fg Color, bg Color)
}

// Event types
const (
	EventKey    = 0
	EventResize = 1
)

type Key uint16

type Event struct {
	Type int
	Key  Key
	Ch   rune
	Alt  bool
}

// Keys that the commander understands. Printable characters arrive in Event.Ch.
const (
	KeyUnsupported Key = iota
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight
	KeyArrowUp
	KeyBackspace
	KeyDelete
	KeyCtrlA
	KeyCtrlB
	KeyCtrlD
	KeyCtrlE
	KeyCtrlK
	KeyCtrlN
	KeyCtrlO
	KeyCtrlQ
	KeyCtrlR
	KeyCtrlS
	KeyCtrlT
	KeyCtrlU
	KeyCtrlV
	KeyCtrlW
	KeyEnd
	KeyEnter
	KeyEsc
	KeyHome
	KeyPgdn
	KeyPgup
	KeySpace
	KeyTab
	KeyF1
	KeyF2
	KeyF3
)
