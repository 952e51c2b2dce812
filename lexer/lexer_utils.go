/*
File    : green/lexer/lexer_utils.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"unicode"

	"github.com/akashmaji946/green/errctx"
)

// isWhitespace reports whether r is space, tab, carriage return, or
// newline.
func isWhitespace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r' || r == '\n'
}

// isNumeric reports whether r is a decimal digit (any Unicode digit,
// per unicode.IsDigit).
func isNumeric(r rune) bool {
	return unicode.IsDigit(r)
}

// isAlpha reports whether r is a letter or underscore, i.e. a character
// that may start an identifier or keyword.
func isAlpha(r rune) bool {
	return unicode.IsLetter(r) || r == '_'
}

// isAlphanumeric reports whether r may continue an identifier.
func isAlphanumeric(r rune) bool {
	return isAlpha(r) || unicode.IsDigit(r)
}

// readNumber reads a run of digits into a NUMBER_LIT token bearing the raw
// digit text. A fractional form is not assembled here: the parser sees the
// '.' that follows and, if it is itself followed by digits, combines two
// NUMBER_LIT tokens into a float literal (§4.1, §4.2 primary grammar).
func (lex *Lexer) readNumber() Token {
	row, col := lex.Row, lex.Col
	start := lex.Position
	for isNumeric(lex.Current) {
		lex.Advance()
	}
	literal := string(lex.Src[start:lex.Position])
	return NewTokenWithMetadata(NUMBER_LIT, literal, row, col)
}

// readIdentifier reads a run of alphanumerics/underscores starting with a
// letter or underscore, then classifies it as a bool literal, logical
// operator, type name, keyword, or plain identifier via lookupIdent.
func (lex *Lexer) readIdentifier() Token {
	row, col := lex.Row, lex.Col
	start := lex.Position
	for isAlphanumeric(lex.Current) {
		lex.Advance()
	}
	literal := string(lex.Src[start:lex.Position])
	return NewTokenWithMetadata(lookupIdent(literal), literal, row, col)
}

// readStringLiteral reads a "..." string with no escape processing. A
// newline or EOF before the closing quote is Lex003.
func (lex *Lexer) readStringLiteral() (Token, *errctx.Context) {
	row, col := lex.Row, lex.Col
	lex.Advance() // consume opening quote
	start := lex.Position
	for lex.Current != '"' {
		if lex.Current == 0 || lex.Current == '\n' {
			return Token{}, errctx.NewAt(errctx.Lex003, row, col)
		}
		lex.Advance()
	}
	literal := string(lex.Src[start:lex.Position])
	lex.Advance() // consume closing quote
	return NewTokenWithMetadata(STRING_LIT, literal, row, col), nil
}
