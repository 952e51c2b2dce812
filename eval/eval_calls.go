/*
File    : green/eval/eval_calls.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/green/errctx"
	"github.com/akashmaji946/green/objects"
	"github.com/akashmaji946/green/parser"
)

// evalCall evaluates a function call, whether used as a statement
// (n.ReturnsValue == false) or nested inside an expression. print is
// special-cased rather than looked up in the function table; every
// other name is re-checked against the table the analyzer built,
// since arity was already enforced there but argument types are
// re-verified here (Runtime013) per §4.4.
func (ev *Evaluator) evalCall(n *parser.FunctionCall) (objects.GreenObject, error) {
	row, col := n.Pos()

	args := make([]objects.GreenObject, len(n.Arguments))
	for i, argExpr := range n.Arguments {
		val, err := ev.evalExpr(argExpr)
		if err != nil {
			return nil, err
		}
		args[i] = val
	}

	if n.Name == "print" {
		objects.Print(ev.Writer, args...)
		return &objects.Null{}, nil
	}

	fn, ok := ev.Semantic.Functions[n.Name]
	if !ok {
		return nil, errctx.NewAt(errctx.Runtime002, row, col, errctx.P("name", n.Name))
	}

	if !fn.IsVariadic {
		for i, param := range fn.Parameters {
			if args[i].GetType() != greenType(param.Type) {
				return nil, errctx.NewAt(errctx.Runtime013, row, col,
					errctx.P("name", param.Name), errctx.P("expected", string(param.Type)), errctx.P("found", string(args[i].GetType())))
			}
		}
	}

	return ev.invoke(fn, args, row, col)
}
