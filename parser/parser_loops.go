/*
File    : green/parser/parser_loops.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/green/lexer"

// parseWhile parses `while ( cond ) { block }`.
func (par *Parser) parseWhile() Statement {
	row, col := par.CurrToken.Row, par.CurrToken.Col
	par.advance() // 'while'

	par.expect(lexer.LEFT_PAREN, "(")
	cond := par.parseExpression()
	par.expect(lexer.RIGHT_PAREN, ")")

	body := par.parseBlock(LoopBlock)
	return &While{Condition: cond, Body: body, Row: row, Col: col}
}
