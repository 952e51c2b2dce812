/*
File    : green/eval/eval_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"strconv"

	"github.com/akashmaji946/green/errctx"
	"github.com/akashmaji946/green/objects"
	"github.com/akashmaji946/green/parser"
)

// evalExpr evaluates an expression node to a runtime value. Every
// error returned here aborts evaluation immediately, per §7's
// evaluator regime.
func (ev *Evaluator) evalExpr(expr parser.Expression) (objects.GreenObject, error) {
	switch e := expr.(type) {
	case *parser.Literal:
		return ev.evalLiteral(e)

	case *parser.Variable:
		val, ok := ev.Scope.Lookup(e.Name)
		if !ok {
			row, col := e.Pos()
			return nil, errctx.NewAt(errctx.Runtime007, row, col, errctx.P("name", e.Name))
		}
		return val, nil

	case *parser.FunctionCall:
		return ev.evalCall(e)

	case *parser.Arithmetic:
		return ev.evalArithmetic(e)

	case *parser.Compare:
		return ev.evalCompare(e)

	case *parser.Logical:
		return ev.evalLogical(e)
	}

	row, col := expr.Pos()
	return nil, errctx.NewAt(errctx.Runtime003, row, col, errctx.P("name", expr.Literal()))
}

// evalLiteral converts a parsed literal's raw text into a runtime
// value of the matching type.
func (ev *Evaluator) evalLiteral(lit *parser.Literal) (objects.GreenObject, error) {
	row, col := lit.Pos()
	switch lit.Type {
	case parser.IntType:
		v, err := strconv.ParseInt(lit.Raw, 10, 32)
		if err != nil {
			return nil, errctx.NewAt(errctx.Runtime005, row, col, errctx.P("name", lit.Raw))
		}
		return &objects.Integer{Value: int32(v)}, nil
	case parser.FloatType:
		v, err := strconv.ParseFloat(lit.Raw, 64)
		if err != nil {
			return nil, errctx.NewAt(errctx.Runtime005, row, col, errctx.P("name", lit.Raw))
		}
		return &objects.Float{Value: v}, nil
	case parser.BoolType:
		return &objects.Boolean{Value: lit.Raw == "true"}, nil
	case parser.StringType:
		return &objects.String{Value: lit.Raw}, nil
	}
	return nil, errctx.NewAt(errctx.Runtime005, row, col, errctx.P("name", lit.Raw))
}

// evalArithmetic evaluates `+ - * /`, unary when Right is nil. Two
// Ints stay Int; any mix with Float promotes to Float; integer
// division truncates toward zero (Go's native int32 division already
// does this).
func (ev *Evaluator) evalArithmetic(n *parser.Arithmetic) (objects.GreenObject, error) {
	row, col := n.Pos()

	left, err := ev.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}

	if n.Right == nil {
		switch v := left.(type) {
		case *objects.Integer:
			if n.Operator == parser.OpMinus {
				return &objects.Integer{Value: -v.Value}, nil
			}
			return v, nil
		case *objects.Float:
			if n.Operator == parser.OpMinus {
				return &objects.Float{Value: -v.Value}, nil
			}
			return v, nil
		}
		return nil, errctx.NewAt(errctx.Runtime008, row, col, errctx.P("operator", string(n.Operator)))
	}

	right, err := ev.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}

	leftInt, leftIsInt := left.(*objects.Integer)
	rightInt, rightIsInt := right.(*objects.Integer)
	leftFloat, leftIsFloat := left.(*objects.Float)
	rightFloat, rightIsFloat := right.(*objects.Float)

	switch {
	case leftIsInt && rightIsInt:
		return evalIntArithmetic(n.Operator, leftInt.Value, rightInt.Value, row, col)
	case (leftIsInt || leftIsFloat) && (rightIsInt || rightIsFloat):
		lf := leftFloat.Value
		if leftIsInt {
			lf = float64(leftInt.Value)
		}
		rf := rightFloat.Value
		if rightIsInt {
			rf = float64(rightInt.Value)
		}
		return evalFloatArithmetic(n.Operator, lf, rf)
	}

	return nil, errctx.NewAt(errctx.Runtime008, row, col, errctx.P("operator", string(n.Operator)))
}

func evalIntArithmetic(op parser.ArithmeticOp, l, r int32, row, col int) (objects.GreenObject, error) {
	switch op {
	case parser.OpPlus:
		return &objects.Integer{Value: l + r}, nil
	case parser.OpMinus:
		return &objects.Integer{Value: l - r}, nil
	case parser.OpMultiply:
		return &objects.Integer{Value: l * r}, nil
	case parser.OpDivide:
		if r == 0 {
			return nil, errctx.NewAt(errctx.Runtime001, row, col, errctx.P("reason", "division by zero"))
		}
		return &objects.Integer{Value: l / r}, nil
	}
	return nil, errctx.NewAt(errctx.Runtime001, row, col, errctx.P("reason", "unknown arithmetic operator"))
}

func evalFloatArithmetic(op parser.ArithmeticOp, l, r float64) (objects.GreenObject, error) {
	switch op {
	case parser.OpPlus:
		return &objects.Float{Value: l + r}, nil
	case parser.OpMinus:
		return &objects.Float{Value: l - r}, nil
	case parser.OpMultiply:
		return &objects.Float{Value: l * r}, nil
	case parser.OpDivide:
		return &objects.Float{Value: l / r}, nil
	}
	return &objects.Float{Value: 0}, nil
}

// evalCompare evaluates the six comparison operators. `==`/`!=` work
// on any pair of equal-typed operands; ordered comparisons reject
// strings (Runtime006) and any non-numeric type (Runtime008);
// mismatched operand types are Runtime016.
func (ev *Evaluator) evalCompare(n *parser.Compare) (objects.GreenObject, error) {
	row, col := n.Pos()
	left, err := ev.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	right, err := ev.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}
	if left.GetType() != right.GetType() {
		return nil, errctx.NewAt(errctx.Runtime016, row, col,
			errctx.P("left", string(left.GetType())), errctx.P("right", string(right.GetType())))
	}

	if n.Operator == parser.OpEqual || n.Operator == parser.OpNotEqual {
		eq := valuesEqual(left, right)
		if n.Operator == parser.OpNotEqual {
			eq = !eq
		}
		return &objects.Boolean{Value: eq}, nil
	}

	if _, isString := left.(*objects.String); isString {
		return nil, errctx.NewAt(errctx.Runtime006, row, col, errctx.P("operator", string(n.Operator)))
	}

	lf, ok := numericValue(left)
	if !ok {
		return nil, errctx.NewAt(errctx.Runtime008, row, col, errctx.P("operator", string(n.Operator)))
	}
	rf, _ := numericValue(right)

	var result bool
	switch n.Operator {
	case parser.OpLess:
		result = lf < rf
	case parser.OpLessEqual:
		result = lf <= rf
	case parser.OpGreater:
		result = lf > rf
	case parser.OpGreaterEqual:
		result = lf >= rf
	}
	return &objects.Boolean{Value: result}, nil
}

func valuesEqual(left, right objects.GreenObject) bool {
	switch l := left.(type) {
	case *objects.Integer:
		return l.Value == right.(*objects.Integer).Value
	case *objects.Float:
		return l.Value == right.(*objects.Float).Value
	case *objects.Boolean:
		return l.Value == right.(*objects.Boolean).Value
	case *objects.String:
		return l.Value == right.(*objects.String).Value
	case *objects.Coroutine:
		return l.TaskName == right.(*objects.Coroutine).TaskName
	}
	_, lNull := left.(*objects.Null)
	_, rNull := right.(*objects.Null)
	return lNull && rNull
}

func numericValue(v objects.GreenObject) (float64, bool) {
	switch n := v.(type) {
	case *objects.Integer:
		return float64(n.Value), true
	case *objects.Float:
		return n.Value, true
	}
	return 0, false
}

// evalLogical evaluates `and`/`or`/`xor` (both operands, no
// short-circuit) and unary `not`; every operand must be Bool, else
// Runtime015.
func (ev *Evaluator) evalLogical(n *parser.Logical) (objects.GreenObject, error) {
	row, col := n.Pos()
	left, err := ev.evalExpr(n.Left)
	if err != nil {
		return nil, err
	}
	leftBool, ok := left.(*objects.Boolean)
	if !ok {
		return nil, errctx.NewAt(errctx.Runtime015, row, col, errctx.P("operator", string(n.Operator)))
	}

	if n.Right == nil {
		return &objects.Boolean{Value: !leftBool.Value}, nil
	}

	right, err := ev.evalExpr(n.Right)
	if err != nil {
		return nil, err
	}
	rightBool, ok := right.(*objects.Boolean)
	if !ok {
		return nil, errctx.NewAt(errctx.Runtime015, row, col, errctx.P("operator", string(n.Operator)))
	}

	var result bool
	switch n.Operator {
	case parser.OpAnd:
		result = leftBool.Value && rightBool.Value
	case parser.OpOr:
		result = leftBool.Value || rightBool.Value
	case parser.OpXor:
		result = leftBool.Value != rightBool.Value
	}
	return &objects.Boolean{Value: result}, nil
}
