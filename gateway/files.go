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
	"fmt"
	"os"
	"unicode/utf8"
)

// ErrInvalidText is returned when a file is not valid UTF-8.
var ErrInvalidText = errors.New("stream did not contain valid UTF-8")

// Files reads and writes text files on the local file system.
type Files struct {
	Mode os.FileMode // permissions for newly created files
}

func NewFiles() *Files {
	return &Files{Mode: 0644}
}

// ReadText returns the entire contents of a file.
func (f *Files) ReadText(path string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	if !utf8.Valid(b) {
		return "", fmt.Errorf("%s: %w", path, ErrInvalidText)
	}
	return string(b), nil
}

// WriteText replaces the contents of a file with text, byte for byte.
func (f *Files) WriteText(path string, text string) error {
	return os.WriteFile(path, []byte(text), f.Mode)
}
