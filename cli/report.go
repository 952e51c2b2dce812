/*
File    : green/cli/report.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cli

import (
	"fmt"
	"io"
	"sort"

	"github.com/fatih/color"

	"github.com/akashmaji946/green/analyzer"
)

var (
	headingColor = color.New(color.FgCyan, color.Bold)
	nameColor    = color.New(color.FgGreen)
	typeColor    = color.New(color.FgYellow)
)

// writeAnalysisReport prints one colorized line per registered function
// and coroutine, sourced from the tables a clean -ana run leaves behind,
// per the supplemented §2 "-ana diagnostic report formatting" feature.
func writeAnalysisReport(w io.Writer, sem *analyzer.Semantic) {
	headingColor.Fprintln(w, "functions:")
	for _, name := range sortedKeys(sem.Functions) {
		fn := sem.Functions[name]
		nameColor.Fprintf(w, "  %s", name)
		fmt.Fprint(w, "(")
		for i, p := range fn.Parameters {
			if i > 0 {
				fmt.Fprint(w, ", ")
			}
			fmt.Fprintf(w, "%s: ", p.Name)
			typeColor.Fprint(w, string(p.Type))
		}
		fmt.Fprint(w, ")")
		if fn.ReturnType != nil {
			fmt.Fprint(w, " -> ")
			typeColor.Fprint(w, string(*fn.ReturnType))
		}
		fmt.Fprintln(w)
	}

	headingColor.Fprintln(w, "coroutines:")
	for _, name := range sortedKeys(sem.Coroutines) {
		nameColor.Fprintf(w, "  %s", name)
		fmt.Fprintln(w, "()")
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
