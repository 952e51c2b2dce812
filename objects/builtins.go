/*
File    : green/objects/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package objects

import (
	"fmt"
	"io"
	"strings"
)

// Print is Green's one built-in: it is registered in the function
// table as variadic with no return type, and is special-cased by the
// evaluator rather than dispatched through a user-defined
// FunctionDefinition. It evaluates to each argument's ToString form,
// joined with single spaces, followed by a newline, written to
// writer. Green's builtin surface is deliberately just print; nothing
// else in the language calls for a larger table.
func Print(writer io.Writer, args ...GreenObject) {
	parts := make([]string, len(args))
	for i, arg := range args {
		parts[i] = arg.ToString()
	}
	fmt.Fprintln(writer, strings.Join(parts, " "))
	if flusher, ok := writer.(interface{ Sync() error }); ok {
		flusher.Sync()
	}
}
