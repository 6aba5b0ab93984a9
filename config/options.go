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
package config

import (
	"fmt"
)

// Options are read from the command line.
type Options struct {
	Filenames []string // files to open; only the last one is kept
	Script    string   // golisp script to run instead of the editor
	Dialogs   bool     // use native dialogs to pick files
	NoState   bool     // don't restore or persist state
	StatePath string
	LogPath   string
}

// Parse reads arguments, not including the program name.
func Parse(args []string) (*Options, error) {
	o := &Options{Filenames: make([]string, 0)}
	for i := 0; i < len(args); i++ {
		argi := args[i]
		switch argi {
		case "--eval": // eval program
			i++
			if i < len(args) {
				o.Script = args[i]
			} else {
				return nil, fmt.Errorf("no file specified for %s option", argi)
			}
		case "--state":
			i++
			if i < len(args) {
				o.StatePath = args[i]
			} else {
				return nil, fmt.Errorf("no file specified for %s option", argi)
			}
		case "--log":
			i++
			if i < len(args) {
				o.LogPath = args[i]
			} else {
				return nil, fmt.Errorf("no file specified for %s option", argi)
			}
		case "--dialogs":
			o.Dialogs = true
		case "--no-state":
			o.NoState = true
		default:
			o.Filenames = append(o.Filenames, argi)
		}
	}
	var err error
	if o.StatePath == "" {
		o.StatePath, err = DefaultStatePath()
		if err != nil {
			return nil, err
		}
	}
	if o.LogPath == "" {
		o.LogPath, err = DefaultLogPath()
		if err != nil {
			return nil, err
		}
	}
	return o, nil
}

// Filename is the file to open at startup, if any.
func (o *Options) Filename() string {
	if len(o.Filenames) == 0 {
		return ""
	}
	return o.Filenames[len(o.Filenames)-1]
}
