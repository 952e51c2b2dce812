/*
File    : green/parser/parser_statements.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strings"

	"github.com/akashmaji946/green/errctx"
	"github.com/akashmaji946/green/lexer"
)

// parseBlock parses a brace-delimited statement list tagged with
// kind, pushing/popping the block-kind stack around it.
func (par *Parser) parseBlock(kind BlockKind) *Block {
	par.expect(lexer.LEFT_BRACE, "{")
	par.pushBlock(kind)
	block := &Block{Kind: kind}

	for !par.check(lexer.RIGHT_BRACE) && !par.check(lexer.EOF_TYPE) {
		stmt := par.parseStatement()
		if stmt != nil {
			block.Statements = append(block.Statements, stmt)
		}
	}
	par.popBlock()
	par.expect(lexer.RIGHT_BRACE, "}")
	return block
}

// parseStatement dispatches on CurrToken to parse one statement. A
// doc-comment run either buffers for the next `let` or, when its
// first line starts with "@process", is reified directly as a
// ProcessComment and returned here.
func (par *Parser) parseStatement() Statement {
	switch par.CurrToken.Type {
	case lexer.DOC_COMMENT:
		return par.handleDocCommentRun()
	case lexer.LET_KEY:
		return par.parseLetDeclaration()
	case lexer.IF_KEY:
		return par.parseIf()
	case lexer.WHILE_KEY:
		return par.parseWhile()
	case lexer.RETURN_KEY:
		return par.parseReturn()
	case lexer.BREAK_KEY:
		return par.parseBreak()
	case lexer.CONTINUE_KEY:
		return par.parseContinue()
	case lexer.CORO_KEY:
		return par.parseCoroInstantiation()
	case lexer.RESUME_KEY:
		return par.parseResume()
	case lexer.YIELD_KEY:
		return par.parseYield()
	case lexer.IDENTIFIER_ID:
		return par.parseIdentifierStatement()
	default:
		row, col := par.CurrToken.Row, par.CurrToken.Col
		par.Errors.Add(errctx.NewAt(errctx.Parse002, row, col,
			errctx.P("found", string(par.CurrToken.Type))))
		par.advance()
		par.synchronize(lexer.SEMICOLON_DELIM, lexer.RIGHT_BRACE)
		if par.check(lexer.SEMICOLON_DELIM) {
			par.advance()
		}
		return &ErrorStatement{Row: row, Col: col}
	}
}

// handleDocCommentRun consumes every contiguous DOC_COMMENT token.
// If the run's first line (trimmed) starts with "@process", the
// whole run is reified as a ProcessComment statement; otherwise its
// text is buffered for the next `let` declaration and nil is
// returned (no statement is produced).
func (par *Parser) handleDocCommentRun() Statement {
	row, col := par.CurrToken.Row, par.CurrToken.Col
	var lines []string
	for par.check(lexer.DOC_COMMENT) {
		lines = append(lines, strings.TrimSpace(par.CurrToken.Literal))
		par.advance()
	}
	if len(lines) > 0 && strings.HasPrefix(lines[0], "@process") {
		first := strings.TrimSpace(strings.TrimPrefix(lines[0], "@process"))
		body := append([]string{first}, lines[1:]...)
		return &ProcessComment{Text: strings.Join(body, "\n"), Row: row, Col: col}
	}
	par.pendingDoc = append(par.pendingDoc, lines...)
	return nil
}

// parseLetDeclaration parses `let name : type [= assignable] ;`.
func (par *Parser) parseLetDeclaration() Statement {
	doc := par.takeDoc()
	row, col := par.CurrToken.Row, par.CurrToken.Col
	par.advance() // 'let'

	name := par.CurrToken.Literal
	par.expect(lexer.IDENTIFIER_ID, "variable name")
	par.expect(lexer.COLON_DELIM, ":")

	varType, ok := ParseTypeName(string(par.CurrToken.Type))
	if !ok {
		par.errorHere(errctx.Parse005, errctx.P("expected", "variable type"))
	}
	par.advance()

	var init Expression
	if par.check(lexer.ASSIGN_OP) {
		par.advance()
		init = par.parseExpression()
	}
	par.expect(lexer.SEMICOLON_DELIM, ";")

	return &VariableDeclaration{
		Name: name, Type: varType, Initializer: init, Doc: doc, Row: row, Col: col,
	}
}
