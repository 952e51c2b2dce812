/*
File    : green/parser/parser_assignments.go
Author  : Akash Maji
Contact : akashmaji946(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/green/errctx"
	"github.com/akashmaji946/green/lexer"
)

// parseIdentifierStatement parses a statement that begins with an
// identifier: either a call statement `name ( args ) ;` or an
// assignment `name = expr ;`.
func (par *Parser) parseIdentifierStatement() Statement {
	row, col := par.CurrToken.Row, par.CurrToken.Col
	name := par.CurrToken.Literal

	if par.checkNext(lexer.LEFT_PAREN) {
		par.advance() // name
		call := par.parseCallTail(name, false, row, col)
		par.expect(lexer.SEMICOLON_DELIM, ";")
		return call
	}

	if par.checkNext(lexer.ASSIGN_OP) {
		par.advance() // name
		par.advance() // '='
		value := par.parseExpression()
		par.expect(lexer.SEMICOLON_DELIM, ";")
		return &VariableAssignment{Name: name, Expression: value, Row: row, Col: col}
	}

	par.errorHere(errctx.Parse002, errctx.P("found", string(par.NextTok.Type)))
	par.advance()
	par.synchronize(lexer.SEMICOLON_DELIM, lexer.RIGHT_BRACE)
	if par.check(lexer.SEMICOLON_DELIM) {
		par.advance()
	}
	return &ErrorStatement{Row: row, Col: col}
}
