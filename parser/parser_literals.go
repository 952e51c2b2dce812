/*
File    : green/parser/parser_literals.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

package parser

import (
	"strconv"

	"github.com/akashmaji946/green/errctx"
	"github.com/akashmaji946/green/lexer"
)

// parseNumberLiteral parses a NUMBER_LIT token as an Int literal, or,
// if immediately followed by `.` and a second NUMBER_LIT, assembles
// the two into a Float literal (§4.2: the lexer emits raw digit runs
// only, the parser joins the fractional form). An Int literal whose
// digits overflow 32 bits is Parse004.
func (par *Parser) parseNumberLiteral() Expression {
	row, col := par.CurrToken.Row, par.CurrToken.Col
	intPart := par.CurrToken.Literal
	par.advance()

	if par.check(lexer.DOT_OP) && par.checkNext(lexer.NUMBER_LIT) {
		par.advance() // '.'
		fracPart := par.CurrToken.Literal
		par.advance()
		return &Literal{Type: FloatType, Raw: intPart + "." + fracPart, Row: row, Col: col}
	}

	if _, err := strconv.ParseInt(intPart, 10, 32); err != nil {
		par.Errors.Add(errctx.NewAt(errctx.Parse004, row, col, errctx.P("literal", intPart)))
	}
	return &Literal{Type: IntType, Raw: intPart, Row: row, Col: col}
}

// parseStringLiteral parses a STRING_LIT token.
func (par *Parser) parseStringLiteral() Expression {
	row, col := par.CurrToken.Row, par.CurrToken.Col
	raw := par.CurrToken.Literal
	par.advance()
	return &Literal{Type: StringType, Raw: raw, Row: row, Col: col}
}

// parseBoolLiteral parses a TRUE_KEY/FALSE_KEY token.
func (par *Parser) parseBoolLiteral() Expression {
	row, col := par.CurrToken.Row, par.CurrToken.Col
	raw := par.CurrToken.Literal
	par.advance()
	return &Literal{Type: BoolType, Raw: raw, Row: row, Col: col}
}
