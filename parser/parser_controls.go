/*
File    : green/parser/parser_controls.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/green/errctx"
	"github.com/akashmaji946/green/lexer"
)

// parseReturn parses `return assignable ;`. Valid only inside a
// Function block; otherwise Parse006.
func (par *Parser) parseReturn() Statement {
	row, col := par.CurrToken.Row, par.CurrToken.Col
	if !par.inBlockKind(FunctionBlock) {
		par.Errors.Add(errctx.NewAt(errctx.Parse006, row, col,
			errctx.P("statement", "return"), errctx.P("context", "function")))
	}
	par.advance() // 'return'
	value := par.parseExpression()
	par.expect(lexer.SEMICOLON_DELIM, ";")
	return &Return{Value: value, Row: row, Col: col}
}

// parseBreak parses `break ;`. Valid only inside a Loop block.
func (par *Parser) parseBreak() Statement {
	row, col := par.CurrToken.Row, par.CurrToken.Col
	if !par.inBlockKind(LoopBlock) {
		par.Errors.Add(errctx.NewAt(errctx.Parse006, row, col,
			errctx.P("statement", "break"), errctx.P("context", "loop")))
	}
	par.advance()
	par.expect(lexer.SEMICOLON_DELIM, ";")
	return &Break{Row: row, Col: col}
}

// parseContinue parses `continue ;`. Valid only inside a Loop block.
func (par *Parser) parseContinue() Statement {
	row, col := par.CurrToken.Row, par.CurrToken.Col
	if !par.inBlockKind(LoopBlock) {
		par.Errors.Add(errctx.NewAt(errctx.Parse006, row, col,
			errctx.P("statement", "continue"), errctx.P("context", "loop")))
	}
	par.advance()
	par.expect(lexer.SEMICOLON_DELIM, ";")
	return &Continue{Row: row, Col: col}
}

// parseYield parses `yield ;`. Valid only inside a Coroutine block.
func (par *Parser) parseYield() Statement {
	row, col := par.CurrToken.Row, par.CurrToken.Col
	if !par.inBlockKind(CoroutineBlock) {
		par.Errors.Add(errctx.NewAt(errctx.Parse006, row, col,
			errctx.P("statement", "yield"), errctx.P("context", "coroutine")))
	}
	par.advance()
	par.expect(lexer.SEMICOLON_DELIM, ";")
	return &Yield{Row: row, Col: col}
}

// parseResume parses `resume taskName ;`.
func (par *Parser) parseResume() Statement {
	row, col := par.CurrToken.Row, par.CurrToken.Col
	par.advance() // 'resume'

	taskName := par.CurrToken.Literal
	par.expect(lexer.IDENTIFIER_ID, "task name")
	par.expect(lexer.SEMICOLON_DELIM, ";")
	return &CoroutineResume{TaskName: taskName, Row: row, Col: col}
}

// parseCoroInstantiation parses `coro taskName = coroutineName ( ) ;`.
func (par *Parser) parseCoroInstantiation() Statement {
	row, col := par.CurrToken.Row, par.CurrToken.Col
	par.advance() // 'coro'

	taskName := par.CurrToken.Literal
	par.expect(lexer.IDENTIFIER_ID, "task name")
	par.expect(lexer.ASSIGN_OP, "=")

	coroName := par.CurrToken.Literal
	par.expect(lexer.IDENTIFIER_ID, "coroutine name")
	par.expect(lexer.LEFT_PAREN, "(")
	par.expect(lexer.RIGHT_PAREN, ")")
	par.expect(lexer.SEMICOLON_DELIM, ";")

	return &CoroutineInstantiation{TaskName: taskName, CoroutineName: coroName, Row: row, Col: col}
}
