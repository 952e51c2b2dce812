/*
File    : green/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import "github.com/akashmaji946/green/lexer"

// parseCallTail parses the `( args )` portion of a call, given the
// already-consumed callee name and its position, producing a
// FunctionCall node tagged with whether it is used for its value.
func (par *Parser) parseCallTail(name string, returnsValue bool, row, col int) *FunctionCall {
	par.expect(lexer.LEFT_PAREN, "(")
	args := par.parseArgumentList()
	par.expect(lexer.RIGHT_PAREN, ")")
	return &FunctionCall{Name: name, Arguments: args, ReturnsValue: returnsValue, Row: row, Col: col}
}

// parseArgumentList parses a comma-separated expression list, up to
// (but not consuming) the closing `)`.
func (par *Parser) parseArgumentList() []Expression {
	args := make([]Expression, 0, 2)
	if par.check(lexer.RIGHT_PAREN) {
		return args
	}
	for {
		args = append(args, par.parseExpression())
		if par.check(lexer.COMMA_DELIM) {
			par.advance()
			continue
		}
		break
	}
	return args
}
