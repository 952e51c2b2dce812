/*
File    : green/parser/parser_functions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"github.com/akashmaji946/green/errctx"
	"github.com/akashmaji946/green/lexer"
)

// parseFunctionDefinition parses `function name ( params ) ( → type )? { block }`.
func (par *Parser) parseFunctionDefinition() *FunctionDefinition {
	doc := par.takeDoc()
	row, col := par.CurrToken.Row, par.CurrToken.Col
	par.advance() // 'function'

	name := par.CurrToken.Literal
	if !par.expect(lexer.IDENTIFIER_ID, "function name") {
		par.synchronize(lexer.LEFT_BRACE, lexer.FUNCTION_KEY, lexer.COROUTINE_KEY)
	}

	if !par.expect(lexer.LEFT_PAREN, "(") {
		par.synchronize(lexer.LEFT_BRACE, lexer.FUNCTION_KEY, lexer.COROUTINE_KEY)
	}
	params := par.parseParameters()
	par.expect(lexer.RIGHT_PAREN, ")")

	var returnType *ValueType
	if par.check(lexer.ARROW_OP) {
		par.advance()
		t, ok := ParseTypeName(string(par.CurrToken.Type))
		if !ok {
			par.errorHere(errctx.Parse005, errctx.P("expected", "return type"))
		} else {
			returnType = &t
		}
		par.advance()
	}

	body := par.parseBlock(FunctionBlock)
	return &FunctionDefinition{
		Name: name, Parameters: params, ReturnType: returnType,
		Body: body, Doc: doc, Row: row, Col: col,
	}
}

// parseCoroutineDefinition parses `coroutine name ( ) { block }`.
func (par *Parser) parseCoroutineDefinition() *CoroutineDefinition {
	doc := par.takeDoc()
	row, col := par.CurrToken.Row, par.CurrToken.Col
	par.advance() // 'coroutine'

	name := par.CurrToken.Literal
	if !par.expect(lexer.IDENTIFIER_ID, "coroutine name") {
		par.synchronize(lexer.LEFT_BRACE, lexer.FUNCTION_KEY, lexer.COROUTINE_KEY)
	}
	par.expect(lexer.LEFT_PAREN, "(")
	par.expect(lexer.RIGHT_PAREN, ")")

	body := par.parseBlock(CoroutineBlock)
	return &CoroutineDefinition{Name: name, Body: body, Doc: doc, Row: row, Col: col}
}

// parseParameters parses a comma-separated `name : type` list, up to
// (but not consuming) the closing `)`. On a malformed parameter, it
// records an error and skips ahead to the next `,` or `)`.
func (par *Parser) parseParameters() []Parameter {
	params := make([]Parameter, 0, 2)
	if par.check(lexer.RIGHT_PAREN) {
		return params
	}
	for {
		name := par.CurrToken.Literal
		nameRow, nameCol := par.CurrToken.Row, par.CurrToken.Col
		if !par.expect(lexer.IDENTIFIER_ID, "parameter name") {
			par.synchronize(lexer.COMMA_DELIM, lexer.RIGHT_PAREN)
		} else if !par.expect(lexer.COLON_DELIM, ":") {
			par.synchronize(lexer.COMMA_DELIM, lexer.RIGHT_PAREN)
		} else {
			t, ok := ParseTypeName(string(par.CurrToken.Type))
			if !ok {
				par.Errors.Add(errctx.NewAt(errctx.Parse005, nameRow, nameCol,
					errctx.P("expected", "parameter type")))
				par.synchronize(lexer.COMMA_DELIM, lexer.RIGHT_PAREN)
			} else {
				par.advance()
				params = append(params, Parameter{Name: name, Type: t})
			}
		}

		if par.check(lexer.COMMA_DELIM) {
			par.advance()
			continue
		}
		break
	}
	return params
}
