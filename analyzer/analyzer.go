/*
File    : green/analyzer/analyzer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package analyzer implements Green's two-pass semantic analyzer:
// pass one collects function and coroutine signatures, pass two
// walks every body checking variable and call types and building the
// task table for coroutine instantiations. It never aborts on the
// first problem — like the parser, it accumulates diagnostics into an
// errctx.List, and callers do not run the evaluator when that list is
// non-empty (the evaluator itself does not check it).
package analyzer

import (
	"fmt"

	"github.com/sirupsen/logrus"

	"github.com/akashmaji946/green/errctx"
	"github.com/akashmaji946/green/parser"
)

// Semantic is the result of analysis: the function/coroutine/task
// tables the evaluator runs against, plus whatever diagnostics were
// collected along the way.
type Semantic struct {
	Functions  map[string]*FunctionInfo
	Coroutines map[string]*CoroutineInfo
	Tasks      map[string]*TaskInfo
	Errors     *errctx.List
	Logger     *logrus.Logger
}

// Analyze runs both passes over root and returns the populated
// Semantic object. Callers should check sem.Errors.Empty() before
// handing the result to the evaluator.
func Analyze(root *parser.Root) *Semantic {
	sem := &Semantic{
		Functions:  make(map[string]*FunctionInfo),
		Coroutines: make(map[string]*CoroutineInfo),
		Tasks:      make(map[string]*TaskInfo),
		Errors:     errctx.NewList(),
		Logger:     logrus.StandardLogger(),
	}
	sem.collectSignatures(root)
	sem.checkBodies(root)
	sem.Logger.Debugf("analysis complete: %d functions, %d coroutines, %d errors",
		len(sem.Functions), len(sem.Coroutines), len(sem.Errors.Contexts()))
	return sem
}

// collectSignatures is pass 1: register every function and coroutine
// signature, last definition wins on a repeated name (§9 Open
// Question a).
func (sem *Semantic) collectSignatures(root *parser.Root) {
	sem.Functions[printFunctionName] = &FunctionInfo{IsVariadic: true}
	for _, fn := range root.Functions {
		sem.Functions[fn.Name] = &FunctionInfo{
			Parameters: fn.Parameters,
			ReturnType: fn.ReturnType,
			Body:       fn.Body,
		}
	}
	for _, co := range root.Coroutines {
		sem.Coroutines[co.Name] = &CoroutineInfo{Body: co.Body}
	}
}

// checkBodies is pass 2: walk every function and coroutine body,
// checking variable/call types and snapshotting coroutine
// instantiations into the task table.
func (sem *Semantic) checkBodies(root *parser.Root) {
	for _, fn := range root.Functions {
		scope := NewVariableScope(nil)
		for _, p := range fn.Parameters {
			scope.Declare(p.Name, p.Type)
		}
		sem.checkBlock(fn.Body, scope)
	}
	for _, co := range root.Coroutines {
		sem.checkBlock(co.Body, NewVariableScope(nil))
	}
}

func (sem *Semantic) checkBlock(block *parser.Block, scope *VariableScope) {
	if block == nil {
		return
	}
	for _, stmt := range block.Statements {
		sem.checkStatement(stmt, scope)
	}
}

func (sem *Semantic) checkStatement(stmt parser.Statement, scope *VariableScope) {
	switch s := stmt.(type) {
	case *parser.VariableDeclaration:
		if s.Initializer != nil {
			if typ, ok := sem.exprType(s.Initializer, scope); ok && typ != s.Type {
				row, col := s.Pos()
				sem.Errors.Add(errctx.NewAt(errctx.Semantic006, row, col,
					errctx.P("expected", string(s.Type)), errctx.P("found", string(typ))))
			}
		}
		scope.Declare(s.Name, s.Type)

	case *parser.VariableAssignment:
		declared, ok := scope.Lookup(s.Name)
		row, col := s.Pos()
		if !ok {
			sem.Errors.Add(errctx.NewAt(errctx.Semantic007, row, col, errctx.P("name", s.Name)))
			sem.exprType(s.Expression, scope)
			return
		}
		if typ, ok := sem.exprType(s.Expression, scope); ok && typ != declared {
			sem.Errors.Add(errctx.NewAt(errctx.Semantic006, row, col,
				errctx.P("expected", string(declared)), errctx.P("found", string(typ))))
		}

	case *parser.FunctionCall:
		sem.checkCall(s, scope)

	case *parser.If:
		sem.exprType(s.Condition, scope)
		sem.checkBlock(s.Then, NewVariableScope(scope))
		if s.Else != nil {
			sem.checkBlock(s.Else, NewVariableScope(scope))
		}

	case *parser.While:
		sem.exprType(s.Condition, scope)
		sem.checkBlock(s.Body, NewVariableScope(scope))

	case *parser.Return:
		if s.Value != nil {
			sem.exprType(s.Value, scope)
		}

	case *parser.CoroutineInstantiation:
		co, ok := sem.Coroutines[s.CoroutineName]
		if !ok {
			row, col := s.Pos()
			sem.Errors.Add(errctx.NewAt(errctx.Semantic004, row, col, errctx.P("name", s.CoroutineName)))
			return
		}
		sem.Tasks[s.TaskName] = &TaskInfo{
			CoroutineName:   s.CoroutineName,
			Status:          TaskReady,
			CurrentPosition: 0,
			Statements:      co.Body.Statements,
		}

	case *parser.CoroutineResume, *parser.Break, *parser.Continue, *parser.Yield,
		*parser.ProcessComment, *parser.ErrorStatement:
		// No type obligations.
	}
}

// checkCall validates a function call, whether used as a statement or
// nested inside an expression, and returns the declared return type
// when one exists.
func (sem *Semantic) checkCall(call *parser.FunctionCall, scope *VariableScope) (parser.ValueType, bool) {
	row, col := call.Pos()
	fn, ok := sem.Functions[call.Name]
	if !ok {
		sem.Errors.Add(errctx.NewAt(errctx.Semantic004, row, col, errctx.P("name", call.Name)))
		for _, arg := range call.Arguments {
			sem.exprType(arg, scope)
		}
		return "", false
	}

	if !fn.IsVariadic {
		if len(call.Arguments) != len(fn.Parameters) {
			sem.Errors.Add(errctx.NewAt(errctx.Semantic008, row, col,
				errctx.P("name", call.Name),
				errctx.P("expected", fmt.Sprintf("%d", len(fn.Parameters))),
				errctx.P("found", fmt.Sprintf("%d", len(call.Arguments)))))
		}
		for i, arg := range call.Arguments {
			argType, argOk := sem.exprType(arg, scope)
			if !argOk || i >= len(fn.Parameters) {
				continue
			}
			if argType != fn.Parameters[i].Type {
				argRow, argCol := arg.Pos()
				sem.Errors.Add(errctx.NewAt(errctx.Semantic006, argRow, argCol,
					errctx.P("expected", string(fn.Parameters[i].Type)), errctx.P("found", string(argType))))
			}
		}
	} else {
		for _, arg := range call.Arguments {
			sem.exprType(arg, scope)
		}
	}

	if call.ReturnsValue && fn.ReturnType == nil {
		sem.Errors.Add(errctx.NewAt(errctx.Semantic005, row, col, errctx.P("name", call.Name)))
		return "", false
	}
	if fn.ReturnType == nil {
		return "", false
	}
	return *fn.ReturnType, true
}

// exprType determines an expression's static type, emitting
// Semantic002/003 diagnostics for arithmetic/compare/logical operand
// mismatches along the way. The second return value is false when the
// type could not be determined (already-reported error, or nested
// failure), signaling the caller to skip a would-be cascading check.
func (sem *Semantic) exprType(expr parser.Expression, scope *VariableScope) (parser.ValueType, bool) {
	switch e := expr.(type) {
	case *parser.Literal:
		return e.Type, true

	case *parser.Variable:
		typ, ok := scope.Lookup(e.Name)
		if !ok {
			row, col := e.Pos()
			sem.Errors.Add(errctx.NewAt(errctx.Semantic007, row, col, errctx.P("name", e.Name)))
			return "", false
		}
		return typ, true

	case *parser.FunctionCall:
		return sem.checkCall(e, scope)

	case *parser.Arithmetic:
		if e.Right == nil {
			return sem.exprType(e.Left, scope)
		}
		return sem.checkBinaryOperands(e.Left, e.Right, scope, true)

	case *parser.Compare:
		sem.checkBinaryOperands(e.Left, e.Right, scope, false)
		return parser.BoolType, true

	case *parser.Logical:
		if e.Right == nil {
			sem.exprType(e.Left, scope)
			return parser.BoolType, true
		}
		sem.checkBinaryOperands(e.Left, e.Right, scope, false)
		return parser.BoolType, true

	case *parser.ErrorExpression:
		return "", false
	}
	return "", false
}

// checkBinaryOperands evaluates both operand types and emits
// Semantic002 (mismatched operand types) or Semantic003 (an operand's
// type could not be determined), returning the common operand type
// when the two agree. With promoteNumeric set (arithmetic operands),
// an Int/Float pair is accepted and typed Float, as the evaluator
// promotes it.
func (sem *Semantic) checkBinaryOperands(left, right parser.Expression, scope *VariableScope, promoteNumeric bool) (parser.ValueType, bool) {
	leftType, leftOk := sem.exprType(left, scope)
	rightType, rightOk := sem.exprType(right, scope)
	row, col := left.Pos()
	if !leftOk {
		sem.Errors.Add(errctx.NewAt(errctx.Semantic003, row, col, errctx.P("side", "left")))
		return "", false
	}
	if !rightOk {
		sem.Errors.Add(errctx.NewAt(errctx.Semantic003, row, col, errctx.P("side", "right")))
		return "", false
	}
	if leftType != rightType {
		if promoteNumeric &&
			(leftType == parser.IntType || leftType == parser.FloatType) &&
			(rightType == parser.IntType || rightType == parser.FloatType) {
			return parser.FloatType, true
		}
		sem.Errors.Add(errctx.NewAt(errctx.Semantic002, row, col,
			errctx.P("left", string(leftType)), errctx.P("right", string(rightType))))
		return "", false
	}
	return leftType, true
}
