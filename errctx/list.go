/*
File    : green/errctx/list.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package errctx

import (
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// List accumulates Contexts instead of aborting on the first one, the
// strategy the parser and semantic analyzer both use: emission continues
// for the rest of the input and every diagnostic is reported together.
type List struct {
	errs *multierror.Error
}

// NewList returns an empty List, configured to render each entry through
// the template table rather than multierror's default "%d errors
// occurred:" bullet format.
func NewList() *List {
	l := &List{errs: &multierror.Error{}}
	l.errs.ErrorFormat = formatList
	return l
}

// Add appends a Context to the list.
func (l *List) Add(c *Context) {
	l.errs = multierror.Append(l.errs, c)
}

// Empty reports whether no errors have been added.
func (l *List) Empty() bool {
	return l.errs.Len() == 0
}

// Contexts returns the accumulated Contexts in insertion order.
func (l *List) Contexts() []*Context {
	out := make([]*Context, 0, l.errs.Len())
	for _, e := range l.errs.Errors {
		if c, ok := e.(*Context); ok {
			out = append(out, c)
		}
	}
	return out
}

// ErrorOrNil returns the list as a standard error (nil if empty), so a
// List composes with ordinary Go error handling at package boundaries.
func (l *List) ErrorOrNil() error {
	return l.errs.ErrorOrNil()
}

func formatList(errs []error) string {
	if len(errs) == 0 {
		return ""
	}
	out := fmt.Sprintf("%d error(s):\n", len(errs))
	for _, e := range errs {
		out += fmt.Sprintf("  - %s\n", e.Error())
	}
	return out
}
