/*
File    : green/cli/pipeline.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/akashmaji946/green/analyzer"
	"github.com/akashmaji946/green/errctx"
	"github.com/akashmaji946/green/eval"
	"github.com/akashmaji946/green/parser"
)

// reported is returned by runPipeline once it has already rendered the
// failure to stderr itself (file I/O, parse errors, semantic errors,
// or a runtime error), so Execute doesn't classify and re-print it as
// a CLI argument error.
type reported struct{}

func (reported) Error() string { return "green: pipeline reported a failure" }

// runPipeline reads file, runs it through parse -> analyze -> (report |
// evaluate) depending on mode, and renders any error it collects along
// the way. A non-nil return means the process should exit non-zero.
func runPipeline(mode Mode, file string, stdout, stderr io.Writer) error {
	source, err := os.ReadFile(file)
	if err != nil {
		ctx := errctx.New(errctx.Io001, errctx.P("path", file))
		fmt.Fprintln(stderr, ctx.Error())
		return reported{}
	}

	root, parseErrs := parser.Parse(string(source))
	if !parseErrs.Empty() {
		printErrors(stderr, parseErrs.Contexts())
		return reported{}
	}

	sem := analyzer.Analyze(root)
	if !sem.Errors.Empty() {
		printErrors(stderr, sem.Errors.Contexts())
		return reported{}
	}

	if mode == ModeAnalysis {
		writeAnalysisReport(stdout, sem)
		return nil
	}

	ev := eval.NewEvaluator(sem)
	ev.SetWriter(stdout)
	if err := ev.Run(); err != nil {
		fmt.Fprintln(stderr, err.Error())
		return reported{}
	}
	return nil
}

func printErrors(w io.Writer, errs []*errctx.Context) {
	for _, e := range errs {
		fmt.Fprintln(w, e.Error())
	}
}
