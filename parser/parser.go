/*
File    : green/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package parser implements a recursive-descent parser for Green. It
// converts the lexer's token stream into a Root AST, validating
// block-context rules (Return/Break/Continue/Yield placement) via a
// block-kind stack and attaching `///` doc-comment text to the
// definition or `let` declaration that follows it.
//
// The parser never aborts on a single bad token: each recoverable
// failure is recorded in an errctx.List and parsing continues with
// best-effort recovery, so a single source file can surface every
// syntax error it contains in one pass.
package parser

import (
	"strings"

	"github.com/akashmaji946/green/errctx"
	"github.com/akashmaji946/green/lexer"
)

// Parse runs the parser to completion, returning the Root AST and
// the accumulated error list (empty, non-nil Errors, if parsing
// succeeded outright).
func Parse(src string) (*Root, *errctx.List) {
	par := NewParser(src)
	return par.Parse(), par.Errors
}

// Parse repeatedly consumes doc-comments and top-level definitions
// until EOF.
func (par *Parser) Parse() *Root {
	root := &Root{}
	par.pushBlock(GlobalBlock)
	defer par.popBlock()

	for !par.check(lexer.EOF_TYPE) {
		switch {
		case par.check(lexer.DOC_COMMENT):
			par.bufferDocComment()

		case par.check(lexer.FUNCTION_KEY):
			if fn := par.parseFunctionDefinition(); fn != nil {
				root.Functions = append(root.Functions, fn)
			}

		case par.check(lexer.COROUTINE_KEY):
			if co := par.parseCoroutineDefinition(); co != nil {
				root.Coroutines = append(root.Coroutines, co)
			}

		default:
			par.errorHere(errctx.Parse002,
				errctx.P("found", string(par.CurrToken.Type)))
			par.synchronize(lexer.FUNCTION_KEY, lexer.COROUTINE_KEY, lexer.DOC_COMMENT)
		}
	}

	par.Logger.Debugf("parse complete: %d functions, %d coroutines, %d errors",
		len(root.Functions), len(root.Coroutines), len(par.Errors.Contexts()))
	return root
}

// bufferDocComment consumes one DOC_COMMENT token and appends its
// trimmed text to the pending-doc buffer, to be claimed by the next
// definition or `let` declaration.
func (par *Parser) bufferDocComment() {
	par.pendingDoc = append(par.pendingDoc, strings.TrimSpace(par.CurrToken.Literal))
	par.advance()
}
