/*
File    : green/errctx/templates.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package errctx

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
)

//go:embed templates/default.json
var defaultTemplatesFS embed.FS

// table is the process-wide error-message template table: a mapping
// code -> template string. It is initialized once on first access and is
// read-only thereafter, matching the externalized error-message template
// file the core pipeline treats as an out-of-scope collaborator.
var (
	tableOnce sync.Once
	table     map[string]string
	tableErr  error
)

// global loads the default embedded table the first time it is needed.
// Load may be called before any rendering happens to point at an external
// file instead; once the table has been initialized (by either path) it is
// never reloaded.
func global() (map[string]string, error) {
	tableOnce.Do(func() {
		data, err := defaultTemplatesFS.ReadFile("templates/default.json")
		if err != nil {
			tableErr = fmt.Errorf("errctx: reading embedded template table: %w", err)
			return
		}
		table, tableErr = parseTable(data)
	})
	return table, tableErr
}

// Load replaces the process-wide template table by reading an external
// JSON file, e.g. one named by the GREEN_ERROR_TEMPLATES environment
// variable or a -t flag. It must be called before the first Render (or
// before the first call to global()); calling it afterwards has no effect,
// matching the "initialized once on first access" contract.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("errctx: reading template file %q: %w", path, err)
	}
	parsed, err := parseTable(data)
	if err != nil {
		return err
	}
	tableOnce.Do(func() {
		table = parsed
	})
	return nil
}

func parseTable(data []byte) (map[string]string, error) {
	var m map[string]string
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("errctx: parsing template table: %w", err)
	}
	return m, nil
}

// Render renders a Context against the global template table, substituting
// each {name} placeholder from c.Params in order, plus {row} and {col}
// when the context carries a source position. An unknown code is itself
// reported rather than silently swallowed.
func Render(c *Context) (string, error) {
	tpl, err := global()
	if err != nil {
		return "", err
	}
	template, ok := tpl[string(c.Code)]
	if !ok {
		return "", fmt.Errorf("errctx: unknown error code %q", c.Code)
	}
	msg := template
	for _, p := range c.Params {
		msg = strings.ReplaceAll(msg, "{"+p.Name+"}", p.Value)
	}
	if c.HasPos {
		msg = strings.ReplaceAll(msg, "{row}", strconv.Itoa(c.Row))
		msg = strings.ReplaceAll(msg, "{col}", strconv.Itoa(c.Col))
	}
	return msg, nil
}
