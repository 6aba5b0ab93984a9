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
package screen

import (
	"log"

	"github.com/nsf/termbox-go"

	"github.com/timburks/pad/commander"
	"github.com/timburks/pad/editor"
	pad "github.com/timburks/pad/types"
)

// The Screen draws the state of an Editor and its Commander.
type Screen struct {
	size pad.Size // screen size
}

func NewScreen() (*Screen, error) {
	// Open the terminal.
	err := termbox.Init()
	if err != nil {
		return nil, err
	}
	termbox.SetInputMode(termbox.InputEsc | termbox.InputAlt)
	termbox.SetOutputMode(termbox.Output256)
	return &Screen{}, nil
}

func (s *Screen) Close() {
	termbox.Close()
}

func (s *Screen) Render(e *editor.Editor, c *commander.Commander) {
	termbox.Clear(termbox.ColorDefault, termbox.ColorDefault)
	s.size.Cols, s.size.Rows = termbox.Size()
	cursor := Draw(s, s.size, e, c)
	if cursor.Row < 0 {
		termbox.HideCursor()
	} else {
		termbox.SetCursor(cursor.Col, cursor.Row)
	}
	termbox.Flush()
}

// SetCell makes the Screen a pad.Display.
// The first eight colors have the same values in termbox's 256 color mode.
func (s *Screen) SetCell(x int, y int, c rune, fg pad.Color, bg pad.Color) {
	termbox.SetCell(x, y, c, termbox.Attribute(fg), termbox.Attribute(bg))
}

func (s *Screen) GetNextEvent() *pad.Event {
	event := termbox.PollEvent()
	switch event.Type {
	case termbox.EventResize:
		termbox.Flush()
	case termbox.EventError:
		log.Printf("%+v", event.Err)
	}
	return &pad.Event{
		Type: int(event.Type),
		Key:  keyFor(event.Key),
		Ch:   event.Ch,
		Alt:  event.Mod&termbox.ModAlt != 0,
	}
}

// keys maps termbox keys to pad keys.
// Ctrl-H, Ctrl-I and Ctrl-M share their codes with Backspace, Tab and Enter.
var keys = map[termbox.Key]pad.Key{
	termbox.KeyArrowDown:  pad.KeyArrowDown,
	termbox.KeyArrowLeft:  pad.KeyArrowLeft,
	termbox.KeyArrowRight: pad.KeyArrowRight,
	termbox.KeyArrowUp:    pad.KeyArrowUp,
	termbox.KeyBackspace:  pad.KeyBackspace,
	termbox.KeyBackspace2: pad.KeyBackspace,
	termbox.KeyDelete:     pad.KeyDelete,
	termbox.KeyCtrlA:      pad.KeyCtrlA,
	termbox.KeyCtrlB:      pad.KeyCtrlB,
	termbox.KeyCtrlD:      pad.KeyCtrlD,
	termbox.KeyCtrlE:      pad.KeyCtrlE,
	termbox.KeyCtrlK:      pad.KeyCtrlK,
	termbox.KeyCtrlN:      pad.KeyCtrlN,
	termbox.KeyCtrlO:      pad.KeyCtrlO,
	termbox.KeyCtrlQ:      pad.KeyCtrlQ,
	termbox.KeyCtrlR:      pad.KeyCtrlR,
	termbox.KeyCtrlS:      pad.KeyCtrlS,
	termbox.KeyCtrlT:      pad.KeyCtrlT,
	termbox.KeyCtrlU:      pad.KeyCtrlU,
	termbox.KeyCtrlV:      pad.KeyCtrlV,
	termbox.KeyCtrlW:      pad.KeyCtrlW,
	termbox.KeyEnd:        pad.KeyEnd,
	termbox.KeyEnter:      pad.KeyEnter,
	termbox.KeyEsc:        pad.KeyEsc,
	termbox.KeyHome:       pad.KeyHome,
	termbox.KeyPgdn:       pad.KeyPgdn,
	termbox.KeyPgup:       pad.KeyPgup,
	termbox.KeySpace:      pad.KeySpace,
	termbox.KeyTab:        pad.KeyTab,
	termbox.KeyF1:         pad.KeyF1,
	termbox.KeyF2:         pad.KeyF2,
	termbox.KeyF3:         pad.KeyF3,
}

func keyFor(k termbox.Key) pad.Key {
	if key, ok := keys[k]; ok {
		return key
	}
	return pad.KeyUnsupported
}
