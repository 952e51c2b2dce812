/*
File    : green/errctx/context.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package errctx

import "fmt"

// Param is one ordered name/value binding substituted into an error
// template at render time, e.g. {"name", "foo"} fills a "{name}"
// placeholder.
type Param struct {
	Name  string
	Value string
}

// Context is a single diagnostic: a tagged code, an optional source
// position, and an ordered list of parameter bindings. Detection
// (constructing a Context) is decoupled from rendering (turning it into
// text) so that a CLI, a language server, or a test harness can consume
// either form.
type Context struct {
	Code   Code
	HasPos bool
	Row    int
	Col    int
	Params []Param
}

// New creates a Context with no source position.
func New(code Code, params ...Param) *Context {
	return &Context{Code: code, Params: params}
}

// NewAt creates a Context carrying a (row, col) source position.
func NewAt(code Code, row, col int, params ...Param) *Context {
	return &Context{Code: code, HasPos: true, Row: row, Col: col, Params: params}
}

// P builds a Param inline, e.g. errctx.NewAt(errctx.Lex002, row, col,
// errctx.P("char", string(c))).
func P(name, value string) Param {
	return Param{Name: name, Value: value}
}

// Error implements the standard error interface by rendering against the
// global template table. A Context can therefore be passed anywhere an
// error is expected (errors.As, fmt.Errorf("%w", ctx), ...) while still
// carrying its structured code/position/params for callers that want them.
func (c *Context) Error() string {
	msg, err := Render(c)
	if err != nil {
		return fmt.Sprintf("%s: <unrenderable: %v>", c.Code, err)
	}
	return msg
}
