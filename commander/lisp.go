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
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/steelseries/golisp"
)

// active is the commander that golisp primitives act on.
var active *Commander

var errNoCommander = errors.New("no document is open")

func init() {
	golisp.MakePrimitiveFunction("new-document", "0", newDocumentImpl)
	golisp.MakePrimitiveFunction("open-file", "1", openFileImpl)
	golisp.MakePrimitiveFunction("save-file", "0", saveFileImpl)
	golisp.MakePrimitiveFunction("save-file-as", "1", saveFileAsImpl)
	golisp.MakePrimitiveFunction("find-replace", "2", findReplaceImpl)
	golisp.MakePrimitiveFunction("buffer-content", "0", bufferContentImpl)
	golisp.MakePrimitiveFunction("set-buffer-content", "1", setBufferContentImpl)
	golisp.MakePrimitiveFunction("document-title", "0", documentTitleImpl)
	golisp.MakePrimitiveFunction("document-status", "0", documentStatusImpl)
	golisp.MakePrimitiveFunction("document-path", "0", documentPathImpl)
	golisp.MakePrimitiveFunction("document-modified", "0", documentModifiedImpl)
	golisp.MakePrimitiveFunction("font-size", "0", fontSizeImpl)
	golisp.MakePrimitiveFunction("set-font-size", "1", setFontSizeImpl)
	golisp.MakePrimitiveFunction("toggle-word-wrap", "0", toggleWordWrapImpl)
	golisp.MakePrimitiveFunction("toggle-status-bar", "0", toggleStatusBarImpl)
}

func activeCommander() (*Commander, error) {
	if active == nil {
		return nil, errNoCommander
	}
	return active, nil
}

func stringArgument(name string, arg *golisp.Data) (string, error) {
	if !golisp.StringP(arg) {
		return "", fmt.Errorf("%s requires a string argument", name)
	}
	return golisp.StringValue(arg), nil
}

func newDocumentImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	c.NewDocument()
	return golisp.BooleanWithValue(true), nil
}

func openFileImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	path, err := stringArgument("open-file", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	if err = c.document.Load(path); err != nil {
		return nil, err
	}
	return golisp.StringWithValue(c.document.Path()), nil
}

func saveFileImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	if !c.document.HasPath() {
		return nil, errors.New("save-file requires a document with a path; use save-file-as")
	}
	if err = c.document.Save(c.document.Path()); err != nil {
		return nil, err
	}
	return golisp.StringWithValue(c.document.Path()), nil
}

func saveFileAsImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	path, err := stringArgument("save-file-as", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	if err = c.document.Save(path); err != nil {
		return nil, err
	}
	return golisp.StringWithValue(c.document.Path()), nil
}

func findReplaceImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	find, err := stringArgument("find-replace", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	replace, err := stringArgument("find-replace", golisp.Cadr(args))
	if err != nil {
		return nil, err
	}
	count := c.document.FindAndReplace(find, replace)
	return golisp.IntegerWithValue(int64(count)), nil
}

func bufferContentImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(c.document.Content()), nil
}

func setBufferContentImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	text, err := stringArgument("set-buffer-content", golisp.Car(args))
	if err != nil {
		return nil, err
	}
	c.document.SetContent(text)
	return golisp.BooleanWithValue(c.document.Modified()), nil
}

func documentTitleImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(c.document.Title()), nil
}

func documentStatusImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	status := c.document.Status()
	return golisp.StringWithValue(status.String() + " | " + status.Indicator()), nil
}

func documentPathImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	return golisp.StringWithValue(c.document.Path()), nil
}

func documentModifiedImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	return golisp.BooleanWithValue(c.document.Modified()), nil
}

func fontSizeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	return golisp.FloatWithValue(float32(c.document.Preferences().FontSize)), nil
}

func setFontSizeImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	val := golisp.Car(args)
	switch {
	case golisp.IntegerP(val):
		c.document.SetFontSize(float64(golisp.IntegerValue(val)))
	case golisp.FloatP(val):
		c.document.SetFontSize(float64(golisp.FloatValue(val)))
	default:
		return nil, errors.New("set-font-size requires a numeric argument")
	}
	return golisp.FloatWithValue(float32(c.document.Preferences().FontSize)), nil
}

func toggleWordWrapImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	c.document.ToggleWordWrap()
	return golisp.BooleanWithValue(c.document.Preferences().WordWrap), nil
}

func toggleStatusBarImpl(args *golisp.Data, env *golisp.SymbolTableFrame) (*golisp.Data, error) {
	c, err := activeCommander()
	if err != nil {
		return nil, err
	}
	c.document.ToggleStatusBar()
	return golisp.BooleanWithValue(c.document.Preferences().StatusBar), nil
}

// parseEval evaluates an expression and describes the result for the message bar.
func (c *Commander) parseEval(command string) string {
	value, err := golisp.ParseAndEval(command)
	if err != nil {
		log.Printf("ERR %+v", err)
		return err.Error()
	}
	if golisp.StringP(value) {
		return golisp.StringValue(value)
	}
	return golisp.String(value)
}

// ParseEvalFile runs a script of golisp expressions.
func (c *Commander) ParseEvalFile(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	value, err := golisp.ParseAndEval("(begin\n" + string(b) + "\n)")
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("SEXPR %+v", golisp.String(value))
	return nil
}
