/*
File    : green/eval/evaluator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package eval implements Green's tree-walking evaluator: it consumes
// an analyzer.Semantic object and runs the "main" function, dispatching
// statements through flow tags (Normal/Break/Continue/Return/Yield)
// and expressions to typed objects.GreenObject values. Execution
// aborts on the first runtime error, per §7's evaluator regime.
package eval

import (
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/akashmaji946/green/analyzer"
	"github.com/akashmaji946/green/errctx"
	"github.com/akashmaji946/green/objects"
	"github.com/akashmaji946/green/parser"
)

// Evaluator holds the state for running an analyzed Green program:
// the semantic tables it evaluates against, the variable scope
// currently in scope, and the output destination for print. There is
// no builtin registry, since print is special-cased directly, and no
// type registry beyond objects.GreenType, since Green has no
// user-defined aggregate types.
type Evaluator struct {
	Semantic *analyzer.Semantic
	Scope    *Scope
	Writer   io.Writer
	Logger   *logrus.Logger
}

// NewEvaluator creates an Evaluator over an already-analyzed program,
// writing print output to os.Stdout by default.
func NewEvaluator(sem *analyzer.Semantic) *Evaluator {
	return &Evaluator{
		Semantic: sem,
		Writer:   os.Stdout,
		Logger:   logrus.StandardLogger(),
	}
}

// SetWriter redirects print output, e.g. to a buffer under test.
func (ev *Evaluator) SetWriter(w io.Writer) {
	ev.Writer = w
}

// Run looks up "main" and executes it with no arguments. A missing
// "main" is Runtime002, matching an unresolved call of any other
// name.
func (ev *Evaluator) Run() error {
	fn, ok := ev.Semantic.Functions["main"]
	if !ok {
		return errctx.New(errctx.Runtime002, errctx.P("name", "main"))
	}
	_, err := ev.invoke(fn, nil, 0, 0)
	if err != nil {
		return err
	}
	ev.Logger.Debugf("execution complete")
	return nil
}

// RunLine executes a single statement against the Evaluator's
// persistent top-level scope, creating that scope on first use. It
// supports the supplemented REPL feature: each input line is parsed
// and analyzed as the sole statement of a throwaway `main`, then
// executed here instead of through invoke/Run so that declarations
// from one line remain visible to the next.
func (ev *Evaluator) RunLine(stmt parser.Statement) error {
	if ev.Scope == nil {
		ev.Scope = NewScope(nil)
	}
	_, err := ev.execStatement(stmt)
	return err
}

// invoke binds args into a fresh scope, runs fn's body, and unwraps
// its flow tag into a return value. Break/Continue escaping the body
// is Runtime018 (they must have been consumed by an enclosing loop).
func (ev *Evaluator) invoke(fn *analyzer.FunctionInfo, args []objects.GreenObject, row, col int) (objects.GreenObject, error) {
	callScope := NewScope(nil)
	for i, param := range fn.Parameters {
		callScope.Declare(param.Name, param.Type, args[i])
	}

	previous := ev.Scope
	ev.Scope = callScope
	flow, err := ev.execBlock(fn.Body)
	ev.Scope = previous
	if err != nil {
		return nil, err
	}

	switch flow.Kind {
	case FlowReturn:
		return flow.Value, nil
	case FlowBreak, FlowContinue:
		return nil, errctx.NewAt(errctx.Runtime018, row, col, errctx.P("flow", string(flow.Kind)))
	default:
		return &objects.Null{}, nil
	}
}
