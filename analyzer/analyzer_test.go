/*
File    : green/analyzer/analyzer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package analyzer

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/green/errctx"
	"github.com/akashmaji946/green/parser"
)

func mustParse(t *testing.T, src string) *parser.Root {
	t.Helper()
	root, errs := parser.Parse(src)
	assert.True(t, errs.Empty(), "unexpected parse errors: %v", errs.Contexts())
	return root
}

func TestPrintIsPreregisteredVariadic(t *testing.T) {
	root := mustParse(t, `function main() { print(1, "a", true); }`)
	sem := Analyze(root)
	assert.True(t, sem.Errors.Empty())
	fn, ok := sem.Functions["print"]
	if assert.True(t, ok) {
		assert.True(t, fn.IsVariadic)
		assert.Nil(t, fn.ReturnType)
	}
}

func TestValidFunctionAnalyzesClean(t *testing.T) {
	root := mustParse(t, `
function add(a: int, b: int) → int {
	return a + b;
}
function main() {
	let x: int = add(1, 2);
	print(x);
}
`)
	sem := Analyze(root)
	assert.True(t, sem.Errors.Empty())
}

func TestUndeclaredVariableIsSemantic007(t *testing.T) {
	root := mustParse(t, `function main() { print(missing); }`)
	sem := Analyze(root)
	assert.False(t, sem.Errors.Empty())
	assert.Equal(t, errctx.Semantic007, sem.Errors.Contexts()[0].Code)
}

func TestDeclarationTypeMismatchIsSemantic006(t *testing.T) {
	root := mustParse(t, `function main() { let x: int = "oops"; }`)
	sem := Analyze(root)
	assert.False(t, sem.Errors.Empty())
	assert.Equal(t, errctx.Semantic006, sem.Errors.Contexts()[0].Code)
}

func TestUnknownFunctionCallIsSemantic004(t *testing.T) {
	root := mustParse(t, `function main() { nope(); }`)
	sem := Analyze(root)
	assert.False(t, sem.Errors.Empty())
	assert.Equal(t, errctx.Semantic004, sem.Errors.Contexts()[0].Code)
}

func TestArityMismatchIsSemantic008(t *testing.T) {
	root := mustParse(t, `
function add(a: int, b: int) → int { return a + b; }
function main() { let x: int = add(1); }
`)
	sem := Analyze(root)
	assert.False(t, sem.Errors.Empty())
	found := false
	for _, e := range sem.Errors.Contexts() {
		if e.Code == errctx.Semantic008 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCallForValueWithoutReturnTypeIsSemantic005(t *testing.T) {
	root := mustParse(t, `
function log() { print("hi"); }
function main() { let x: int = log(); }
`)
	sem := Analyze(root)
	assert.False(t, sem.Errors.Empty())
	found := false
	for _, e := range sem.Errors.Contexts() {
		if e.Code == errctx.Semantic005 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestOperandTypeMismatchIsSemantic002(t *testing.T) {
	root := mustParse(t, `function main() { let x: int = 1 + true; }`)
	sem := Analyze(root)
	assert.False(t, sem.Errors.Empty())
	found := false
	for _, e := range sem.Errors.Contexts() {
		if e.Code == errctx.Semantic002 {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCoroutineInstantiationBuildsTask(t *testing.T) {
	root := mustParse(t, `
coroutine counter() {
	let n: int = 0;
	n = n + 1;
	yield;
	n = n + 1;
}
function main() {
	coro c = counter();
	resume c;
}
`)
	sem := Analyze(root)
	assert.True(t, sem.Errors.Empty())
	task, ok := sem.Tasks["c"]
	if assert.True(t, ok) {
		assert.Equal(t, "counter", task.CoroutineName)
		assert.Equal(t, TaskReady, task.Status)
		assert.Equal(t, 0, task.CurrentPosition)
		assert.Len(t, task.Statements, 4)
	}
}

func TestInstantiatingUndefinedCoroutineIsSemantic004(t *testing.T) {
	root := mustParse(t, `function main() { coro c = ghost(); }`)
	sem := Analyze(root)
	assert.False(t, sem.Errors.Empty())
	assert.Equal(t, errctx.Semantic004, sem.Errors.Contexts()[0].Code)
}

func TestLastDefinitionWinsOnDuplicateName(t *testing.T) {
	root := mustParse(t, `
function f() → int { return 1; }
function f() → int { return 2; }
function main() { print(f()); }
`)
	sem := Analyze(root)
	assert.True(t, sem.Errors.Empty())
	fn := sem.Functions["f"]
	ret, ok := fn.Body.Statements[0].(*parser.Return)
	if assert.True(t, ok) {
		lit, ok := ret.Value.(*parser.Literal)
		if assert.True(t, ok) {
			assert.Equal(t, "2", lit.Raw)
		}
	}
}
