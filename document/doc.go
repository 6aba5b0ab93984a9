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

// Package document holds the text being edited by pad along with the
// state that describes its relationship to storage: the path it was last
// read from or written to and whether it has changed since.
// A Document never touches storage directly. Reads and writes go through
// a Files implementation and locations come from a Picker.
package document
