/*
File    : green/lexer/lexer_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package lexer

import (
	"testing"

	"github.com/akashmaji946/green/errctx"
	"github.com/stretchr/testify/assert"
)

// TestConsumeToken represents one table-driven test case.
type TestConsumeToken struct {
	Input          string
	ExpectedTokens []Token
}

func TestTokenize(t *testing.T) {
	tests := []TestConsumeToken{
		{
			Input: ` 123 + 2   31 - 12 `,
			ExpectedTokens: []Token{
				NewToken(NUMBER_LIT, "123"),
				NewToken(PLUS_OP, "+"),
				NewToken(NUMBER_LIT, "2"),
				NewToken(NUMBER_LIT, "31"),
				NewToken(MINUS_OP, "-"),
				NewToken(NUMBER_LIT, "12"),
				NewToken(EOF_TYPE, ""),
			},
		},
		{
			Input: ` { } + (  abc - a12 ) `,
			ExpectedTokens: []Token{
				NewToken(LEFT_BRACE, "{"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(PLUS_OP, "+"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "abc"),
				NewToken(MINUS_OP, "-"),
				NewToken(IDENTIFIER_ID, "a12"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(EOF_TYPE, ""),
			},
		},
		{
			Input: ` <=  + 2   {31} - 12 __a19bcd_aa90`,
			ExpectedTokens: []Token{
				NewToken(LE_OP, "<="),
				NewToken(PLUS_OP, "+"),
				NewToken(NUMBER_LIT, "2"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(NUMBER_LIT, "31"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(MINUS_OP, "-"),
				NewToken(NUMBER_LIT, "12"),
				NewToken(IDENTIFIER_ID, "__a19bcd_aa90"),
				NewToken(EOF_TYPE, ""),
			},
		},
		{
			Input: ` == != < > >= `,
			ExpectedTokens: []Token{
				NewToken(EQ_OP, "=="),
				NewToken(NE_OP, "!="),
				NewToken(LT_OP, "<"),
				NewToken(GT_OP, ">"),
				NewToken(GE_OP, ">="),
				NewToken(EOF_TYPE, ""),
			},
		},
		{
			Input: `"This is a long string  " nowAnIdentifier_234 "12"`,
			ExpectedTokens: []Token{
				NewToken(STRING_LIT, "This is a long string  "),
				NewToken(IDENTIFIER_ID, "nowAnIdentifier_234"),
				NewToken(STRING_LIT, "12"),
				NewToken(EOF_TYPE, ""),
			},
		},
		{
			Input: `true false and or xor not`,
			ExpectedTokens: []Token{
				NewToken(TRUE_KEY, "true"),
				NewToken(FALSE_KEY, "false"),
				NewToken(AND_KEY, "and"),
				NewToken(OR_KEY, "or"),
				NewToken(XOR_KEY, "xor"),
				NewToken(NOT_KEY, "not"),
				NewToken(EOF_TYPE, ""),
			},
		},
		{
			Input: "let x : int = 1; // trailing comment\nprint(x);",
			ExpectedTokens: []Token{
				NewToken(LET_KEY, "let"),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(COLON_DELIM, ":"),
				NewToken(INT_TYPE, "int"),
				NewToken(ASSIGN_OP, "="),
				NewToken(NUMBER_LIT, "1"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(IDENTIFIER_ID, "print"),
				NewToken(LEFT_PAREN, "("),
				NewToken(IDENTIFIER_ID, "x"),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(EOF_TYPE, ""),
			},
		},
		{
			Input: "/// a doc comment\nfunction f() → int { return 1; }",
			ExpectedTokens: []Token{
				NewToken(DOC_COMMENT, " a doc comment"),
				NewToken(FUNCTION_KEY, "function"),
				NewToken(IDENTIFIER_ID, "f"),
				NewToken(LEFT_PAREN, "("),
				NewToken(RIGHT_PAREN, ")"),
				NewToken(ARROW_OP, "→"),
				NewToken(INT_TYPE, "int"),
				NewToken(LEFT_BRACE, "{"),
				NewToken(RETURN_KEY, "return"),
				NewToken(NUMBER_LIT, "1"),
				NewToken(SEMICOLON_DELIM, ";"),
				NewToken(RIGHT_BRACE, "}"),
				NewToken(EOF_TYPE, ""),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.Input, func(t *testing.T) {
			tokens, errCtx := Tokenize(tt.Input)
			assert.Nil(t, errCtx)
			if assert.Len(t, tokens, len(tt.ExpectedTokens)) {
				for i, want := range tt.ExpectedTokens {
					assert.Equal(t, want.Type, tokens[i].Type, "token %d type", i)
					assert.Equal(t, want.Literal, tokens[i].Literal, "token %d literal", i)
				}
			}
		})
	}
}

func TestTokenizePositionTracking(t *testing.T) {
	tokens, errCtx := Tokenize("let x : int = 1;\nlet y : int = 2;")
	assert.Nil(t, errCtx)

	assert.Equal(t, 1, tokens[0].Row)
	assert.Equal(t, 1, tokens[0].Col)

	// "let" on the second line: row advances and col resets after the '\n'.
	secondLet := tokens[7]
	assert.Equal(t, LET_KEY, secondLet.Type)
	assert.Equal(t, 2, secondLet.Row)
	assert.Equal(t, 1, secondLet.Col)
}

func TestUnterminatedStringIsLex003(t *testing.T) {
	_, errCtx := Tokenize(`"unterminated`)
	if assert.NotNil(t, errCtx) {
		assert.Equal(t, errctx.Lex003, errCtx.Code)
	}
}

func TestUnterminatedBlockCommentIsLex004(t *testing.T) {
	_, errCtx := Tokenize("/* never closes")
	if assert.NotNil(t, errCtx) {
		assert.Equal(t, errctx.Lex004, errCtx.Code)
	}
}

func TestBangWithoutEqualsIsLex005(t *testing.T) {
	_, errCtx := Tokenize("!true")
	if assert.NotNil(t, errCtx) {
		assert.Equal(t, errctx.Lex005, errCtx.Code)
	}
}
