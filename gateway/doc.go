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

// Package gateway connects pad to storage. Files reads and writes whole text
// files; Dialogs asks the user where files are with native dialogs.
//
// Native dialogs need cgo, and GTK on Linux. Build with -tags nodialogs
// for a terminal-only binary; Dialogs then always reports a cancelled pick.
package gateway
