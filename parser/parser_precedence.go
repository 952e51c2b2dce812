/*
File    : green/parser/parser_precedence.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/green/errctx"
	"github.com/akashmaji946/green/lexer"
)

// parseExpression is the entry point of expression parsing,
// following the precedence chain low to high:
// or · and/xor · not · comparison · additive · multiplicative · unary · primary.
// Every level is left-associative except unary, which is right-recursive.
func (par *Parser) parseExpression() Expression {
	return par.parseOr()
}

func (par *Parser) parseOr() Expression {
	left := par.parseAndXor()
	for par.check(lexer.OR_KEY) {
		row, col := par.CurrToken.Row, par.CurrToken.Col
		par.advance()
		right := par.parseAndXor()
		left = &Logical{Operator: OpOr, Left: left, Right: right, Row: row, Col: col}
	}
	return left
}

func (par *Parser) parseAndXor() Expression {
	left := par.parseNot()
	for par.check(lexer.AND_KEY) || par.check(lexer.XOR_KEY) {
		op := OpAnd
		if par.check(lexer.XOR_KEY) {
			op = OpXor
		}
		row, col := par.CurrToken.Row, par.CurrToken.Col
		par.advance()
		right := par.parseNot()
		left = &Logical{Operator: op, Left: left, Right: right, Row: row, Col: col}
	}
	return left
}

func (par *Parser) parseNot() Expression {
	if par.check(lexer.NOT_KEY) {
		row, col := par.CurrToken.Row, par.CurrToken.Col
		par.advance()
		operand := par.parseNot()
		return &Logical{Operator: OpNot, Left: operand, Row: row, Col: col}
	}
	return par.parseComparison()
}

func (par *Parser) parseComparison() Expression {
	left := par.parseAdditive()
	for {
		op, ok := compareOpOf(par.CurrToken.Type)
		if !ok {
			return left
		}
		row, col := par.CurrToken.Row, par.CurrToken.Col
		par.advance()
		right := par.parseAdditive()
		left = &Compare{Operator: op, Left: left, Right: right, Row: row, Col: col}
	}
}

func compareOpOf(t lexer.TokenType) (CompareOp, bool) {
	switch t {
	case lexer.EQ_OP:
		return OpEqual, true
	case lexer.NE_OP:
		return OpNotEqual, true
	case lexer.LT_OP:
		return OpLess, true
	case lexer.LE_OP:
		return OpLessEqual, true
	case lexer.GT_OP:
		return OpGreater, true
	case lexer.GE_OP:
		return OpGreaterEqual, true
	}
	return "", false
}

func (par *Parser) parseAdditive() Expression {
	left := par.parseMultiplicative()
	for par.check(lexer.PLUS_OP) || par.check(lexer.MINUS_OP) {
		op := OpPlus
		if par.check(lexer.MINUS_OP) {
			op = OpMinus
		}
		row, col := par.CurrToken.Row, par.CurrToken.Col
		par.advance()
		right := par.parseMultiplicative()
		left = &Arithmetic{Operator: op, Left: left, Right: right, Row: row, Col: col}
	}
	return left
}

func (par *Parser) parseMultiplicative() Expression {
	left := par.parseUnary()
	for par.check(lexer.MUL_OP) || par.check(lexer.DIV_OP) {
		op := OpMultiply
		if par.check(lexer.DIV_OP) {
			op = OpDivide
		}
		row, col := par.CurrToken.Row, par.CurrToken.Col
		par.advance()
		right := par.parseUnary()
		left = &Arithmetic{Operator: op, Left: left, Right: right, Row: row, Col: col}
	}
	return left
}

func (par *Parser) parseUnary() Expression {
	if par.check(lexer.PLUS_OP) || par.check(lexer.MINUS_OP) {
		op := OpPlus
		if par.check(lexer.MINUS_OP) {
			op = OpMinus
		}
		row, col := par.CurrToken.Row, par.CurrToken.Col
		par.advance()
		operand := par.parseUnary()
		return &Arithmetic{Operator: op, Left: operand, Row: row, Col: col}
	}
	return par.parsePrimary()
}

// parsePrimary parses a number/string/bool literal, a variable read,
// a value-producing call, or a parenthesized expression.
func (par *Parser) parsePrimary() Expression {
	switch par.CurrToken.Type {
	case lexer.NUMBER_LIT:
		return par.parseNumberLiteral()
	case lexer.STRING_LIT:
		return par.parseStringLiteral()
	case lexer.TRUE_KEY, lexer.FALSE_KEY:
		return par.parseBoolLiteral()

	case lexer.IDENTIFIER_ID:
		row, col := par.CurrToken.Row, par.CurrToken.Col
		name := par.CurrToken.Literal
		par.advance()
		if par.check(lexer.LEFT_PAREN) {
			return par.parseCallTail(name, true, row, col)
		}
		return &Variable{Name: name, Row: row, Col: col}

	case lexer.LEFT_PAREN:
		par.advance()
		expr := par.parseExpression()
		par.expect(lexer.RIGHT_PAREN, ")")
		return expr

	default:
		row, col := par.CurrToken.Row, par.CurrToken.Col
		par.Errors.Add(errctx.NewAt(errctx.Parse002, row, col,
			errctx.P("found", string(par.CurrToken.Type))))
		if !par.check(lexer.EOF_TYPE) {
			par.advance()
		}
		return &ErrorExpression{Row: row, Col: col}
	}
}
