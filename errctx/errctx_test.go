/*
File    : green/errctx/errctx_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package errctx

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name     string
		ctx      *Context
		expected string
	}{
		{
			name:     "positioned error with one param",
			ctx:      NewAt(Lex002, 3, 7, P("char", "@")),
			expected: "[3:7] LEX002: unexpected character @",
		},
		{
			name:     "positioned error with no params",
			ctx:      NewAt(Lex003, 1, 1),
			expected: "[1:1] LEX003: unterminated string literal",
		},
		{
			name:     "unpositioned cmd error",
			ctx:      New(Cmd001, P("option", "-foo")),
			expected: "CMD001: unknown option -foo",
		},
		{
			name:     "multiple params substituted in order",
			ctx:      NewAt(Semantic006, 2, 4, P("expected", "int"), P("found", "string")),
			expected: "[2:4] SEMANTIC006: expected type int, found string",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg, err := Render(tt.ctx)
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, msg)
		})
	}
}

func TestRenderUnknownCode(t *testing.T) {
	ctx := New(Code("NOT_A_CODE"))
	_, err := Render(ctx)
	assert.Error(t, err)
}

func TestContextErrorInterface(t *testing.T) {
	var err error = NewAt(Runtime007, 5, 2, P("name", "x"))
	assert.Equal(t, "RUNTIME007: undefined variable x", err.Error())
}

func TestListAccumulates(t *testing.T) {
	l := NewList()
	assert.True(t, l.Empty())

	l.Add(NewAt(Parse002, 1, 1, P("expected", ";"), P("found", "}")))
	l.Add(NewAt(Parse005, 2, 1, P("expected", ")")))

	assert.False(t, l.Empty())
	assert.Len(t, l.Contexts(), 2)
	assert.Error(t, l.ErrorOrNil())
}
