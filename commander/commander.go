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
package commander

import (
	"fmt"
	"log"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/atotto/clipboard"

	"github.com/timburks/pad/document"
	"github.com/timburks/pad/editor"
	pad "github.com/timburks/pad/types"
)

var (
	clipboardRead  = clipboard.ReadAll
	clipboardWrite = clipboard.WriteAll
)

// The Commander converts user input into commands to the editor and document.
type Commander struct {
	editor      *editor.Editor
	document    *document.Document
	picker      document.Picker // when nil, paths are typed in the message bar
	mode        int             // commander mode
	debug       bool            // debug mode displays information about events (key codes, etc)
	findText    string          // find field of the find & replace panel
	replaceText string          // replace field of the find & replace panel
	promptText  string          // path as it is being typed
	commandText string          // command as it is being typed on the command line
	message     string          // status message
	confirmed   func()          // action waiting for confirmation
}

func NewCommander(e *editor.Editor, picker document.Picker) *Commander {
	c := &Commander{
		editor:   e,
		document: e.GetDocument(),
		picker:   picker,
		mode:     pad.ModeEdit,
	}
	active = c
	return c
}

func (c *Commander) GetMode() int {
	return c.mode
}

func (c *Commander) IsRunning() bool {
	return c.mode != pad.ModeQuit
}

func (c *Commander) GetMessage() string {
	return c.message
}

func (c *Commander) GetFindText() string {
	return c.findText
}

func (c *Commander) GetReplaceText() string {
	return c.replaceText
}

// FindPanelVisible is true while the find & replace panel has focus.
func (c *Commander) FindPanelVisible() bool {
	return c.mode == pad.ModeFind || c.mode == pad.ModeReplace
}

func (c *Commander) ProcessEvent(event *pad.Event) error {
	if c.debug {
		c.message = fmt.Sprintf("event=%+v", event)
	}
	switch event.Type {
	case pad.EventKey:
		return c.processKey(event)
	default:
		return nil
	}
}

func (c *Commander) processKey(event *pad.Event) error {
	switch c.mode {
	case pad.ModeEdit:
		c.processKeyEditMode(event)
	case pad.ModeFind, pad.ModeReplace:
		c.processKeyFindMode(event)
	case pad.ModeCommand:
		c.commandText = c.processKeyLineMode(event, c.commandText, c.performCommand)
	case pad.ModePromptOpen:
		c.promptText = c.processKeyLineMode(event, c.promptText, c.performOpenPrompt)
	case pad.ModePromptSave:
		c.promptText = c.processKeyLineMode(event, c.promptText, c.performSavePrompt)
	case pad.ModeConfirm:
		c.processKeyConfirmMode(event)
	case pad.ModeAbout:
		c.mode = pad.ModeEdit
	}
	return nil
}

func (c *Commander) processKeyEditMode(event *pad.Event) {
	e := c.editor

	if event.Key != 0 {
		switch event.Key {
		case pad.KeyEsc:
			c.message = ""
		case pad.KeyCtrlN:
			c.confirmDiscard(c.NewDocument)
		case pad.KeyCtrlO:
			c.confirmDiscard(c.OpenDocument)
		case pad.KeyCtrlS:
			c.SaveDocument()
		case pad.KeyCtrlW:
			c.SaveDocumentAs()
		case pad.KeyCtrlR:
			c.OpenFindPanel()
		case pad.KeyCtrlT:
			c.document.ToggleWordWrap()
		case pad.KeyCtrlB:
			c.document.ToggleStatusBar()
		case pad.KeyF1:
			c.mode = pad.ModeAbout
		case pad.KeyF2:
			c.document.SetFontSize(c.document.Preferences().FontSize - 1)
		case pad.KeyF3:
			c.document.SetFontSize(c.document.Preferences().FontSize + 1)
		case pad.KeyCtrlK:
			c.CopyDocument()
		case pad.KeyCtrlV:
			c.Paste()
		case pad.KeyCtrlE:
			c.mode = pad.ModeCommand
			c.commandText = ""
		case pad.KeyCtrlQ:
			c.mode = pad.ModeQuit
		case pad.KeyPgup:
			e.PageUp()
		case pad.KeyPgdn:
			e.PageDown()
		case pad.KeyCtrlA, pad.KeyHome:
			e.MoveToBeginningOfLine()
		case pad.KeyEnd:
			e.MoveToEndOfLine()
		case pad.KeyCtrlU:
			e.MoveToStart()
		case pad.KeyCtrlD:
			e.MoveToEnd()
		case pad.KeyArrowUp:
			e.MoveCursor(pad.MoveUp, 1)
		case pad.KeyArrowDown:
			e.MoveCursor(pad.MoveDown, 1)
		case pad.KeyArrowLeft:
			e.MoveCursor(pad.MoveLeft, 1)
		case pad.KeyArrowRight:
			e.MoveCursor(pad.MoveRight, 1)
		case pad.KeyBackspace:
			e.BackspaceChar()
		case pad.KeyDelete:
			e.DeleteChar()
		case pad.KeyEnter:
			e.InsertChar('\n')
		case pad.KeyTab:
			e.InsertChar('\t')
		case pad.KeySpace:
			e.InsertChar(' ')
		}
		return
	}
	if event.Ch != 0 {
		e.InsertChar(event.Ch)
	}
}

func (c *Commander) processKeyFindMode(event *pad.Event) {
	field := &c.findText
	if c.mode == pad.ModeReplace {
		field = &c.replaceText
	}
	switch event.Key {
	case pad.KeyEsc:
		c.CloseFindPanel()
	case pad.KeyEnter:
		c.ReplaceAll()
	case pad.KeyTab:
		if c.mode == pad.ModeFind {
			c.mode = pad.ModeReplace
		} else {
			c.mode = pad.ModeFind
		}
	case pad.KeyBackspace:
		*field = trimLastRune(*field)
	case pad.KeySpace:
		*field += " "
	case 0:
		if event.Ch != 0 {
			*field += string(event.Ch)
		}
	}
}

// processKeyLineMode edits a line of text in the message bar and returns the updated text.
func (c *Commander) processKeyLineMode(event *pad.Event, text string, perform func(string)) string {
	switch event.Key {
	case pad.KeyEsc:
		c.mode = pad.ModeEdit
		return ""
	case pad.KeyEnter:
		c.mode = pad.ModeEdit
		perform(strings.TrimSpace(text))
		return ""
	case pad.KeyBackspace:
		return trimLastRune(text)
	case pad.KeySpace:
		return text + " "
	case 0:
		if event.Ch != 0 {
			return text + string(event.Ch)
		}
	}
	return text
}

func (c *Commander) processKeyConfirmMode(event *pad.Event) {
	c.mode = pad.ModeEdit
	action := c.confirmed
	c.confirmed = nil
	if event.Ch == 'y' || event.Ch == 'Y' {
		c.message = ""
		action()
	} else {
		c.message = "Cancelled"
	}
}

// confirmDiscard asks before an action that would lose unsaved changes.
func (c *Commander) confirmDiscard(action func()) {
	if !c.document.Modified() {
		action()
		return
	}
	c.confirmed = action
	c.mode = pad.ModeConfirm
	c.message = "Discard unsaved changes? (y/n)"
}

// report shows and logs failures.
func (c *Commander) report(err error) bool {
	if err != nil {
		log.Printf("%+v", err)
		c.message = err.Error()
		return false
	}
	return true
}

func (c *Commander) NewDocument() {
	c.document.New()
	c.message = ""
}

func (c *Commander) OpenDocument() {
	if c.picker == nil {
		c.mode = pad.ModePromptOpen
		c.promptText = ""
		return
	}
	opened, err := c.document.Open(c.picker)
	if c.report(err) && opened {
		c.message = "Opened " + c.document.Name()
	}
}

func (c *Commander) LoadDocument(path string) bool {
	if !c.report(c.document.Load(path)) {
		return false
	}
	c.message = "Opened " + c.document.Name()
	return true
}

func (c *Commander) SaveDocument() bool {
	if c.picker == nil && !c.document.HasPath() {
		c.mode = pad.ModePromptSave
		c.promptText = ""
		return false
	}
	saved, err := c.document.SaveCurrent(c.picker)
	if !c.report(err) || !saved {
		return false
	}
	c.message = "Saved " + c.document.Name()
	return true
}

func (c *Commander) SaveDocumentAs() {
	if c.picker == nil {
		c.mode = pad.ModePromptSave
		c.promptText = c.document.Path()
		return
	}
	saved, err := c.document.SaveAs(c.picker)
	if c.report(err) && saved {
		c.message = "Saved " + c.document.Name()
	}
}

func (c *Commander) saveTo(path string) bool {
	if !c.report(c.document.Save(path)) {
		return false
	}
	c.message = "Saved " + c.document.Name()
	return true
}

func (c *Commander) performOpenPrompt(path string) {
	if path != "" {
		c.LoadDocument(path)
	}
}

func (c *Commander) performSavePrompt(path string) {
	if path != "" {
		c.saveTo(path)
	}
}

func (c *Commander) OpenFindPanel() {
	c.mode = pad.ModeFind
	c.findText = c.document.FindText()
	c.replaceText = c.document.ReplaceText()
}

func (c *Commander) CloseFindPanel() {
	c.document.SetFindText(c.findText)
	c.document.SetReplaceText(c.replaceText)
	c.mode = pad.ModeEdit
}

// ReplaceAll replaces the find field with the replace field everywhere in the document.
func (c *Commander) ReplaceAll() int {
	count := c.document.FindAndReplace(c.findText, c.replaceText)
	c.message = fmt.Sprintf("%d replaced", count)
	return count
}

// CopyDocument puts the whole document on the system clipboard.
func (c *Commander) CopyDocument() {
	if c.report(clipboardWrite(c.document.Content())) {
		c.message = "Copied to clipboard"
	}
}

// Paste inserts the system clipboard at the cursor.
func (c *Commander) Paste() {
	text, err := clipboardRead()
	if c.report(err) {
		c.editor.InsertText(text)
	}
}

func (c *Commander) performCommand(command string) {
	if strings.HasPrefix(command, "(") {
		c.message = c.parseEval(command)
		return
	}
	parts := strings.Fields(command)
	if len(parts) == 0 {
		return
	}
	i, err := strconv.Atoi(parts[0])
	if err == nil {
		c.editor.MoveToLine(i)
		return
	}
	switch parts[0] {
	case "q", "quit":
		c.mode = pad.ModeQuit
	case "w":
		if len(parts) == 2 {
			c.saveTo(parts[1])
		} else {
			c.SaveDocument()
		}
	case "wq":
		if c.SaveDocument() {
			c.mode = pad.ModeQuit
		}
	case "e", "open":
		if len(parts) == 2 {
			path := parts[1]
			c.confirmDiscard(func() { c.LoadDocument(path) })
		} else {
			c.confirmDiscard(c.OpenDocument)
		}
	case "new":
		c.confirmDiscard(c.NewDocument)
	case "fmt":
		out, err := editor.Gofmt(c.document.Content())
		if c.report(err) {
			c.document.SetContent(out)
		}
	case "font":
		if len(parts) == 2 {
			size, err := strconv.ParseFloat(parts[1], 64)
			if err != nil {
				c.report(fmt.Errorf("invalid font size: %w", err))
				return
			}
			c.document.SetFontSize(size)
		}
		c.message = fmt.Sprintf("Font size %g", c.document.Preferences().FontSize)
	case "wrap":
		c.document.ToggleWordWrap()
	case "status":
		c.document.ToggleStatusBar()
	case "about":
		c.mode = pad.ModeAbout
	case "debug":
		if len(parts) == 2 {
			if parts[1] == "on" {
				c.debug = true
			} else if parts[1] == "off" {
				c.debug = false
				c.message = ""
			}
		}
	default:
		c.message = "Unknown command: " + parts[0]
	}
}

func (c *Commander) GetMessageBarText(length int) string {
	var line string
	switch c.mode {
	case pad.ModeCommand:
		line = ":" + c.commandText
	case pad.ModePromptOpen:
		line = "Open: " + c.promptText
	case pad.ModePromptSave:
		line = "Save as: " + c.promptText
	default:
		line = c.message
	}
	if utf8.RuneCountInString(line) > length {
		line = string([]rune(line)[0:length])
	}
	return line
}

func trimLastRune(s string) string {
	_, size := utf8.DecodeLastRuneInString(s)
	return s[:len(s)-size]
}
