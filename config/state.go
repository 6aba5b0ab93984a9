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
	"encoding/json"
	"fmt"
	"os"

	"github.com/timburks/pad/document"
)

// ReadState reads a saved document snapshot. If the file is missing or can't
// be parsed, the default snapshot is returned along with the error.
func ReadState(path string) (document.Snapshot, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return document.DefaultSnapshot(), err
	}
	s := document.DefaultSnapshot()
	if err := json.Unmarshal(b, &s); err != nil {
		return document.DefaultSnapshot(), fmt.Errorf("%s: %w", path, err)
	}
	return s, nil
}

// WriteState saves a document snapshot.
func WriteState(path string, s document.Snapshot) error {
	b, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, b, 0600)
}
