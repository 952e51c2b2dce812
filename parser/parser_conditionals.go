/*
File    : green/parser/parser_conditionals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package parser

import "github.com/akashmaji946/green/lexer"

// parseIf parses `if ( cond ) { then } [ else { else } ]`.
func (par *Parser) parseIf() Statement {
	row, col := par.CurrToken.Row, par.CurrToken.Col
	par.advance() // 'if'

	par.expect(lexer.LEFT_PAREN, "(")
	cond := par.parseExpression()
	par.expect(lexer.RIGHT_PAREN, ")")

	then := par.parseBlock(ConditionalBlock)

	var elseBlock *Block
	if par.check(lexer.ELSE_KEY) {
		par.advance()
		elseBlock = par.parseBlock(ConditionalBlock)
	}

	return &If{Condition: cond, Then: then, Else: elseBlock, Row: row, Col: col}
}
