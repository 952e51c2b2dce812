/*
File    : green/eval/eval_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package eval

import (
	"github.com/akashmaji946/green/errctx"
	"github.com/akashmaji946/green/objects"
	"github.com/akashmaji946/green/parser"
)

// execBlock runs a block's statements in order, stopping and
// propagating the first non-Normal flow tag it observes.
func (ev *Evaluator) execBlock(block *parser.Block) (Flow, error) {
	if block == nil {
		return normalFlow, nil
	}
	for _, stmt := range block.Statements {
		flow, err := ev.execStatement(stmt)
		if err != nil {
			return Flow{}, err
		}
		if flow.Kind != FlowNormal {
			return flow, nil
		}
	}
	return normalFlow, nil
}

func (ev *Evaluator) execStatement(stmt parser.Statement) (Flow, error) {
	switch s := stmt.(type) {
	case *parser.VariableDeclaration:
		return ev.execVariableDeclaration(s)

	case *parser.VariableAssignment:
		return ev.execVariableAssignment(s)

	case *parser.FunctionCall:
		if _, err := ev.evalCall(s); err != nil {
			return Flow{}, err
		}
		return normalFlow, nil

	case *parser.If:
		return ev.execIf(s)

	case *parser.While:
		return ev.execWhile(s)

	case *parser.Return:
		var val objects.GreenObject = &objects.Null{}
		if s.Value != nil {
			v, err := ev.evalExpr(s.Value)
			if err != nil {
				return Flow{}, err
			}
			val = v
		}
		return Flow{Kind: FlowReturn, Value: val}, nil

	case *parser.Break:
		return Flow{Kind: FlowBreak}, nil

	case *parser.Continue:
		return Flow{Kind: FlowContinue}, nil

	case *parser.Yield:
		return Flow{Kind: FlowYield}, nil

	case *parser.CoroutineInstantiation:
		// Handled entirely by the analyzer's task-table snapshot.
		return normalFlow, nil

	case *parser.CoroutineResume:
		row, col := s.Pos()
		if err := ev.resume(s.TaskName, row, col); err != nil {
			return Flow{}, err
		}
		return normalFlow, nil

	case *parser.ProcessComment:
		return normalFlow, nil
	}

	row, col := stmt.Pos()
	return Flow{}, errctx.NewAt(errctx.Runtime003, row, col, errctx.P("name", stmt.Literal()))
}

// execVariableDeclaration evaluates the optional initializer (absent
// means the variable starts Null) and declares the binding in the
// current scope.
func (ev *Evaluator) execVariableDeclaration(s *parser.VariableDeclaration) (Flow, error) {
	var val objects.GreenObject = &objects.Null{}
	if s.Initializer != nil {
		v, err := ev.evalExpr(s.Initializer)
		if err != nil {
			return Flow{}, err
		}
		val = v
	}
	ev.Scope.Declare(s.Name, s.Type, val)
	return normalFlow, nil
}

// execVariableAssignment re-evaluates the declared type on every
// assignment (Runtime010) and mutates the nearest binding; an unknown
// name is Runtime007.
func (ev *Evaluator) execVariableAssignment(s *parser.VariableAssignment) (Flow, error) {
	row, col := s.Pos()
	declaredType, ok := ev.Scope.DeclaredType(s.Name)
	if !ok {
		return Flow{}, errctx.NewAt(errctx.Runtime007, row, col, errctx.P("name", s.Name))
	}
	val, err := ev.evalExpr(s.Expression)
	if err != nil {
		return Flow{}, err
	}
	if val.GetType() != greenType(declaredType) {
		return Flow{}, errctx.NewAt(errctx.Runtime010, row, col,
			errctx.P("name", s.Name), errctx.P("expected", string(declaredType)), errctx.P("found", string(val.GetType())))
	}
	ev.Scope.Assign(s.Name, val)
	return normalFlow, nil
}

// execIf evaluates the condition (Runtime014 if not Bool) and
// executes whichever branch applies.
func (ev *Evaluator) execIf(s *parser.If) (Flow, error) {
	cond, err := ev.evalExpr(s.Condition)
	if err != nil {
		return Flow{}, err
	}
	condBool, ok := cond.(*objects.Boolean)
	if !ok {
		row, col := s.Pos()
		return Flow{}, errctx.NewAt(errctx.Runtime014, row, col)
	}
	if condBool.Value {
		return ev.execBlock(s.Then)
	}
	if s.Else != nil {
		return ev.execBlock(s.Else)
	}
	return normalFlow, nil
}

// execWhile evaluates the condition before each iteration (Runtime017
// if not Bool); Break stops the loop, Continue restarts it, and any
// other non-Normal flow (Return, Yield) propagates to the caller.
func (ev *Evaluator) execWhile(s *parser.While) (Flow, error) {
	for {
		cond, err := ev.evalExpr(s.Condition)
		if err != nil {
			return Flow{}, err
		}
		condBool, ok := cond.(*objects.Boolean)
		if !ok {
			row, col := s.Pos()
			return Flow{}, errctx.NewAt(errctx.Runtime017, row, col)
		}
		if !condBool.Value {
			return normalFlow, nil
		}

		flow, err := ev.execBlock(s.Body)
		if err != nil {
			return Flow{}, err
		}
		switch flow.Kind {
		case FlowNormal, FlowContinue:
			continue
		case FlowBreak:
			return normalFlow, nil
		default:
			return flow, nil
		}
	}
}
