/*
File    : green/errctx/code.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package errctx implements the tagged error reporting substrate shared by
// every stage of the Green pipeline: lexer, parser, semantic analyzer, and
// evaluator all report failures as an ErrorCode plus an optional source
// position plus an ordered list of parameter bindings, rendered later
// against an externally-loadable template table.
package errctx

// Code identifies the kind of a Green diagnostic. It is a closed set: every
// value a pipeline stage can produce is declared below.
type Code string

const (
	// Io001 marks a source file that could not be read.
	Io001 Code = "IO001"

	// Lex001 is a generic lexical error.
	Lex001 Code = "LEX001"
	// Lex002 is raised for a character that does not begin any token.
	Lex002 Code = "LEX002"
	// Lex003 is raised when a string literal reaches a newline or EOF
	// before its closing quote.
	Lex003 Code = "LEX003"
	// Lex004 is raised when a block comment reaches EOF unterminated.
	Lex004 Code = "LEX004"
	// Lex005 is raised for an unknown operator, e.g. a bare '!' not
	// followed by '='.
	Lex005 Code = "LEX005"

	// Parse001 is a generic syntax error.
	Parse001 Code = "PARSE001"
	// Parse002 is raised for an unexpected token.
	Parse002 Code = "PARSE002"
	// Parse003 is raised when the token stream ends before a construct
	// finishes parsing.
	Parse003 Code = "PARSE003"
	// Parse004 is raised for a malformed numeric literal.
	Parse004 Code = "PARSE004"
	// Parse005 is raised when a specific expected token is missing.
	Parse005 Code = "PARSE005"
	// Parse006 is raised when a statement appears in a block kind that
	// does not permit it (return outside Function, break/continue
	// outside Loop, yield outside Coroutine).
	Parse006 Code = "PARSE006"

	// Semantic002 is raised when two operand types of a binary operator
	// differ.
	Semantic002 Code = "SEMANTIC002"
	// Semantic003 is raised when an operand's type could not be
	// determined.
	Semantic003 Code = "SEMANTIC003"
	// Semantic004 is raised for a call to an undeclared function or an
	// instantiation of an undeclared coroutine.
	Semantic004 Code = "SEMANTIC004"
	// Semantic005 is raised when a function is called for its value but
	// declares no return type.
	Semantic005 Code = "SEMANTIC005"
	// Semantic006 is raised for a type mismatch between a declared type
	// and an assigned or initializing value.
	Semantic006 Code = "SEMANTIC006"
	// Semantic007 is raised for a reference to an undeclared variable.
	Semantic007 Code = "SEMANTIC007"
	// Semantic008 is raised for a call-site arity mismatch against a
	// non-variadic function.
	Semantic008 Code = "SEMANTIC008"

	// Cmd001 is raised for an unrecognized command-line option.
	Cmd001 Code = "CMD001"
	// Cmd002 is raised for a command-line invocation matching none of
	// the accepted forms.
	Cmd002 Code = "CMD002"

	// Runtime001 is a generic runtime error.
	Runtime001 Code = "RUNTIME001"
	// Runtime002 is raised when function "main" is missing at execution
	// start, or a called function name is unresolved.
	Runtime002 Code = "RUNTIME002"
	// Runtime003 is raised for an AST node the evaluator does not expect
	// at the point it is visited.
	Runtime003 Code = "RUNTIME003"
	// Runtime004 is reserved for internal evaluator invariant failures.
	Runtime004 Code = "RUNTIME004"
	// Runtime005 is raised for a literal or value outside its type's
	// domain.
	Runtime005 Code = "RUNTIME005"
	// Runtime006 is raised for an ordered comparison (<, >, <=, >=)
	// attempted on strings.
	Runtime006 Code = "RUNTIME006"
	// Runtime007 is raised for a reference to an undeclared variable at
	// evaluation time.
	Runtime007 Code = "RUNTIME007"
	// Runtime008 is raised for an operator applied to operand types it
	// does not support.
	Runtime008 Code = "RUNTIME008"
	// Runtime009 is reserved for a declaration or return that expects a
	// value that is absent.
	Runtime009 Code = "RUNTIME009"
	// Runtime010 is raised when an assignment's value type does not
	// match the variable's declared type.
	Runtime010 Code = "RUNTIME010"
	// Runtime011 is reserved for an argument value outside its
	// parameter's expected domain.
	Runtime011 Code = "RUNTIME011"
	// Runtime012 is reserved for a call-site argument count mismatch
	// observed at evaluation time.
	Runtime012 Code = "RUNTIME012"
	// Runtime013 is raised when an evaluated argument's type does not
	// match its parameter's declared type.
	Runtime013 Code = "RUNTIME013"
	// Runtime014 is raised when an `if` condition does not evaluate to
	// Bool.
	Runtime014 Code = "RUNTIME014"
	// Runtime015 is raised for a logical operator applied to a
	// non-Bool operand.
	Runtime015 Code = "RUNTIME015"
	// Runtime016 is raised when a comparison's two operand types
	// differ.
	Runtime016 Code = "RUNTIME016"
	// Runtime017 is raised when a `while` condition does not evaluate to
	// Bool.
	Runtime017 Code = "RUNTIME017"
	// Runtime018 is raised when Break or Continue escapes a function
	// body rather than being caught by an enclosing loop.
	Runtime018 Code = "RUNTIME018"
	// Runtime019 is raised by CoroutineResume on a task name that is not
	// in the task table.
	Runtime019 Code = "RUNTIME019"
	// Runtime020 is raised by CoroutineResume on a task that has already
	// completed.
	Runtime020 Code = "RUNTIME020"
)
