/*
File    : green/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/green/errctx"
)

func TestParseFunctionDefinition(t *testing.T) {
	src := `
/// adds two ints
function add(a: int, b: int) → int {
	return a + b;
}
`
	root, errs := Parse(src)
	assert.True(t, errs.Empty())
	if assert.Len(t, root.Functions, 1) {
		fn := root.Functions[0]
		assert.Equal(t, "add", fn.Name)
		assert.Equal(t, "adds two ints", fn.Doc)
		if assert.Len(t, fn.Parameters, 2) {
			assert.Equal(t, Parameter{Name: "a", Type: IntType}, fn.Parameters[0])
			assert.Equal(t, Parameter{Name: "b", Type: IntType}, fn.Parameters[1])
		}
		if assert.NotNil(t, fn.ReturnType) {
			assert.Equal(t, IntType, *fn.ReturnType)
		}
		if assert.Len(t, fn.Body.Statements, 1) {
			ret, ok := fn.Body.Statements[0].(*Return)
			if assert.True(t, ok) {
				arith, ok := ret.Value.(*Arithmetic)
				if assert.True(t, ok) {
					assert.Equal(t, OpPlus, arith.Operator)
				}
			}
		}
	}
}

func TestParseCoroutineWithYieldAndResume(t *testing.T) {
	src := `
coroutine counter() {
	let n: int = 0;
	n = n + 1;
	yield;
	n = n + 1;
}

function main() {
	coro c = counter();
	resume c;
	resume c;
}
`
	root, errs := Parse(src)
	assert.True(t, errs.Empty())
	assert.Len(t, root.Coroutines, 1)
	if assert.Len(t, root.Functions, 1) {
		stmts := root.Functions[0].Body.Statements
		if assert.Len(t, stmts, 3) {
			_, isInst := stmts[0].(*CoroutineInstantiation)
			assert.True(t, isInst)
			_, isResume := stmts[1].(*CoroutineResume)
			assert.True(t, isResume)
		}
	}
}

func TestParseIfElseAndWhile(t *testing.T) {
	src := `
function f() {
	let i: int = 0;
	while (i < 10) {
		if (i == 5) {
			break;
		} else {
			i = i + 1;
		}
		continue;
	}
}
`
	root, errs := Parse(src)
	assert.True(t, errs.Empty())
	if assert.Len(t, root.Functions, 1) {
		stmts := root.Functions[0].Body.Statements
		if assert.Len(t, stmts, 2) {
			wh, ok := stmts[1].(*While)
			if assert.True(t, ok) {
				cmp, ok := wh.Condition.(*Compare)
				if assert.True(t, ok) {
					assert.Equal(t, OpLess, cmp.Operator)
				}
				if assert.Len(t, wh.Body.Statements, 2) {
					ifStmt, ok := wh.Body.Statements[0].(*If)
					if assert.True(t, ok) {
						assert.NotNil(t, ifStmt.Else)
					}
				}
			}
		}
	}
}

func TestParsePrecedence(t *testing.T) {
	// "1 + 2 * 3" must parse as 1 + (2 * 3): the outer node is a plus.
	src := `function f() { let x: int = 1 + 2 * 3; }`
	root, errs := Parse(src)
	assert.True(t, errs.Empty())
	decl := root.Functions[0].Body.Statements[0].(*VariableDeclaration)
	plus, ok := decl.Initializer.(*Arithmetic)
	if assert.True(t, ok) {
		assert.Equal(t, OpPlus, plus.Operator)
		_, leftIsLit := plus.Left.(*Literal)
		assert.True(t, leftIsLit)
		mul, ok := plus.Right.(*Arithmetic)
		if assert.True(t, ok) {
			assert.Equal(t, OpMultiply, mul.Operator)
		}
	}
}

func TestParseLogicalPrecedence(t *testing.T) {
	// "a or b and not c" must parse as a or (b and (not c)).
	src := `function f() { let x: bool = a or b and not c; }`
	root, errs := Parse(src)
	assert.True(t, errs.Empty())
	decl := root.Functions[0].Body.Statements[0].(*VariableDeclaration)
	or, ok := decl.Initializer.(*Logical)
	if assert.True(t, ok) {
		assert.Equal(t, OpOr, or.Operator)
		and, ok := or.Right.(*Logical)
		if assert.True(t, ok) {
			assert.Equal(t, OpAnd, and.Operator)
			not, ok := and.Right.(*Logical)
			if assert.True(t, ok) {
				assert.Equal(t, OpNot, not.Operator)
				assert.Nil(t, not.Right)
			}
		}
	}
}

func TestParseFloatLiteral(t *testing.T) {
	src := `function f() { let x: float = 3.14; }`
	root, errs := Parse(src)
	assert.True(t, errs.Empty())
	decl := root.Functions[0].Body.Statements[0].(*VariableDeclaration)
	lit, ok := decl.Initializer.(*Literal)
	if assert.True(t, ok) {
		assert.Equal(t, FloatType, lit.Type)
		assert.Equal(t, "3.14", lit.Raw)
	}
}

func TestParseCallStatementAndCallExpression(t *testing.T) {
	src := `
function square(n: int) → int {
	return n * n;
}
function main() {
	print(square(4));
}
`
	root, errs := Parse(src)
	assert.True(t, errs.Empty())
	main := root.Functions[1]
	call, ok := main.Body.Statements[0].(*FunctionCall)
	if assert.True(t, ok) {
		assert.Equal(t, "print", call.Name)
		assert.False(t, call.ReturnsValue)
		inner, ok := call.Arguments[0].(*FunctionCall)
		if assert.True(t, ok) {
			assert.Equal(t, "square", inner.Name)
			assert.True(t, inner.ReturnsValue)
		}
	}
}

func TestProcessCommentReification(t *testing.T) {
	src := `
function f() {
	/// @process rotate logs
	/// before reload
	let x: int = 1;
}
`
	root, errs := Parse(src)
	assert.True(t, errs.Empty())
	stmts := root.Functions[0].Body.Statements
	if assert.Len(t, stmts, 2) {
		pc, ok := stmts[0].(*ProcessComment)
		if assert.True(t, ok) {
			assert.Equal(t, "rotate logs\nbefore reload", pc.Text)
		}
		decl, ok := stmts[1].(*VariableDeclaration)
		if assert.True(t, ok) {
			assert.Equal(t, "", decl.Doc)
		}
	}
}

func TestReturnOutsideFunctionIsParse006(t *testing.T) {
	src := `
coroutine c() {
	return;
}
`
	_, errs := Parse(src)
	assert.False(t, errs.Empty())
	found := false
	for _, e := range errs.Contexts() {
		if e.Code == errctx.Parse006 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestYieldOutsideCoroutineIsParse006(t *testing.T) {
	src := `
function f() {
	yield;
}
`
	_, errs := Parse(src)
	assert.False(t, errs.Empty())
	found := false
	for _, e := range errs.Contexts() {
		if e.Code == errctx.Parse006 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestBreakOutsideLoopIsParse006(t *testing.T) {
	src := `
function f() {
	break;
}
`
	_, errs := Parse(src)
	assert.False(t, errs.Empty())
	assert.Equal(t, errctx.Parse006, errs.Contexts()[0].Code)
}

func TestUnexpectedTokenRecoveryAccumulatesMultipleErrors(t *testing.T) {
	src := `
function f() {
	@@@;
	!!!;
}
`
	_, errs := Parse(src)
	assert.False(t, errs.Empty())
	assert.GreaterOrEqual(t, len(errs.Contexts()), 2)
}
