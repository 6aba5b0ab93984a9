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
package main

import (
	"errors"
	"io/fs"
	"log"
	"os"

	"github.com/timburks/pad/commander"
	"github.com/timburks/pad/config"
	"github.com/timburks/pad/document"
	"github.com/timburks/pad/editor"
	"github.com/timburks/pad/gateway"
	"github.com/timburks/pad/screen"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	o, err := config.Parse(args)
	if err != nil {
		log.Output(1, err.Error())
		return 1
	}
	interactive := o.Script == ""
	persist := interactive && !o.NoState

	if interactive {
		// Open a log file.
		f, err := os.OpenFile(o.LogPath, os.O_APPEND|os.O_CREATE|os.O_RDWR, 0666)
		if err != nil {
			log.Output(1, err.Error())
			return 1
		}
		log.SetOutput(f)
		defer f.Close()
	}

	// The document holds the text and the display preferences.
	d := document.New(gateway.NewFiles())
	if persist {
		s, err := config.ReadState(o.StatePath)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			log.Printf("%+v", err)
		}
		d.Restore(s)
	}

	// If a file was specified on the command line, read it.
	if filename := o.Filename(); filename != "" {
		openFile(d, filename)
	}

	// The editor manages cursor-based editing of the document.
	e := editor.NewEditor(d)

	// The commander converts user inputs into commands for the editor and document.
	var picker document.Picker
	if o.Dialogs && gateway.DialogsAvailable {
		picker = gateway.NewDialogs(document.AppName)
	} else if o.Dialogs {
		log.Printf("--dialogs ignored: %+v", gateway.ErrNoDialogs)
	}
	c := commander.NewCommander(e, picker)

	if !interactive {
		// Run a script and exit.
		if err := c.ParseEvalFile(o.Script); err != nil {
			log.Output(1, err.Error())
			return 1
		}
		return 0
	}

	// Create a screen to manage display.
	s, err := screen.NewScreen()
	if err != nil {
		log.Printf("%+v", err)
		os.Stderr.WriteString(err.Error() + "\n")
		return 1
	}
	defer s.Close()

	// Run the main event loop.
	for c.IsRunning() {
		s.Render(e, c)
		err = c.ProcessEvent(s.GetNextEvent())
		if err != nil {
			log.Output(1, err.Error())
		}
	}

	if persist {
		if err := config.WriteState(o.StatePath, d.Snapshot()); err != nil {
			log.Printf("%+v", err)
		}
	}
	return 0
}

// openFile loads a file, creating it first if it doesn't exist.
func openFile(d *document.Document, filename string) {
	fileinfo, err := os.Stat(filename)
	if err != nil {
		// try to create a file that doesn't exist
		file, err := os.Create(filename)
		if err != nil {
			log.Printf("%+v", err)
			return
		}
		file.Close()
	}
	if fileinfo != nil && fileinfo.IsDir() {
		log.Printf("Directory! %+v", fileinfo)
		return
	}
	if err = d.Load(filename); err != nil {
		log.Printf("%+v", err)
	}
}
