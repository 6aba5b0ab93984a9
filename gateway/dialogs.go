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
package gateway

import (
	"errors"
	"log"
)

// ErrNoDialogs is returned by pickers in builds without native dialogs.
var ErrNoDialogs = errors.New("pad was built without file dialogs")

// Dialogs picks locations with the platform's native file dialogs.
type Dialogs struct {
	Title string
}

func NewDialogs(title string) *Dialogs {
	return &Dialogs{Title: title}
}

func (d *Dialogs) PickOpenLocation() (string, bool) {
	return picked(openDialog(d.Title))
}

func (d *Dialogs) PickSaveLocation() (string, bool) {
	return picked(saveDialog(d.Title))
}

func picked(path string, err error) (string, bool) {
	if err != nil {
		if !errors.Is(err, errDialogCancelled) {
			log.Printf("file dialog failed: %+v", err)
		}
		return "", false
	}
	if path == "" {
		return "", false
	}
	return path, true
}
