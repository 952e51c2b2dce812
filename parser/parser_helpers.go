/*
File    : green/parser/parser_helpers.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/akashmaji946/green/errctx"
	"github.com/akashmaji946/green/lexer"
)

// Parser converts a Green token stream into a Root AST, recording
// recoverable errors in an errctx.List instead of panicking. It keeps
// a block-kind stack (for Return/Break/Continue/Yield context
// validation) and a pending doc-comment buffer (for attaching `///`
// text to the next definition or `let`).
type Parser struct {
	Lex       lexer.Lexer
	CurrToken lexer.Token
	NextTok   lexer.Token

	Errors *errctx.List

	blockStack []BlockKind
	pendingDoc []string

	Logger *logrus.Logger
}

// NewParser creates a Parser over src, priming the two-token
// lookahead so CurrToken/NextTok are both valid immediately.
func NewParser(src string) *Parser {
	par := &Parser{
		Lex:    lexer.NewLexer(src),
		Errors: errctx.NewList(),
		Logger: logrus.StandardLogger(),
	}
	par.advance()
	par.advance()
	return par
}

// advance shifts the lookahead window forward by one token. A
// lexical error from the underlying lexer is recorded in the error
// list as the lexer's own Context, EOF takes the place of the next
// token, and lexing stops (matching §7: the lexer itself aborts on
// its first error). Once CurrToken is EOF the lexer is not called
// again.
func (par *Parser) advance() {
	par.CurrToken = par.NextTok
	if par.CurrToken.Type == lexer.EOF_TYPE {
		return
	}
	tok, errCtx := par.Lex.NextToken()
	if errCtx != nil {
		par.Errors.Add(errCtx)
		par.NextTok = lexer.NewToken(lexer.EOF_TYPE, "")
		return
	}
	par.NextTok = tok
}

// check reports whether CurrToken has the given type.
func (par *Parser) check(t lexer.TokenType) bool {
	return par.CurrToken.Type == t
}

// checkNext reports whether NextTok has the given type.
func (par *Parser) checkNext(t lexer.TokenType) bool {
	return par.NextTok.Type == t
}

// expect verifies CurrToken has type t, advancing past it on
// success. On mismatch it records Parse005 (or Parse003 if the
// mismatch is because input ran out) and does not advance.
func (par *Parser) expect(t lexer.TokenType, what string) bool {
	if !par.check(t) {
		if par.check(lexer.EOF_TYPE) {
			par.errorHere(errctx.Parse003, errctx.P("expected", what))
		} else {
			par.errorHere(errctx.Parse005,
				errctx.P("expected", what),
				errctx.P("found", string(par.CurrToken.Type)))
		}
		return false
	}
	par.advance()
	return true
}

// errorHere records a parser error positioned at CurrToken.
func (par *Parser) errorHere(code errctx.Code, params ...errctx.Param) {
	par.Errors.Add(errctx.NewAt(code, par.CurrToken.Row, par.CurrToken.Col, params...))
}

// pushBlock enters a new block kind, clearing the pending
// doc-comment buffer: a doc-comment cannot cross a block boundary to
// attach to something inside or after the block.
func (par *Parser) pushBlock(kind BlockKind) {
	par.blockStack = append(par.blockStack, kind)
	par.pendingDoc = nil
}

// popBlock exits the innermost block kind.
func (par *Parser) popBlock() {
	if len(par.blockStack) > 0 {
		par.blockStack = par.blockStack[:len(par.blockStack)-1]
	}
	par.pendingDoc = nil
}

// inBlockKind reports whether any enclosing block (innermost first)
// has the given kind. A search for a Loop stops at the nearest
// Function or Coroutine boundary, so break/continue only count inside
// a loop of the same body; searches for other kinds walk the whole
// stack.
func (par *Parser) inBlockKind(kind BlockKind) bool {
	for i := len(par.blockStack) - 1; i >= 0; i-- {
		if par.blockStack[i] == kind {
			return true
		}
		if kind == LoopBlock && (par.blockStack[i] == FunctionBlock || par.blockStack[i] == CoroutineBlock) {
			return false
		}
	}
	return false
}

// takeDoc returns and clears the accumulated doc-comment text,
// joined with newlines, or "" if none is pending.
func (par *Parser) takeDoc() string {
	if len(par.pendingDoc) == 0 {
		return ""
	}
	doc := strings.Join(par.pendingDoc, "\n")
	par.pendingDoc = nil
	return doc
}

// synchronize skips tokens until one of the given stop types (or
// EOF) is reached, for best-effort recovery after a bad statement or
// parameter.
func (par *Parser) synchronize(stop ...lexer.TokenType) {
	for !par.check(lexer.EOF_TYPE) {
		for _, s := range stop {
			if par.check(s) {
				return
			}
		}
		par.advance()
	}
}
