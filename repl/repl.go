/*
File    : green/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements Green's supplemented interactive mode: a
readline-driven Read-Eval-Print Loop that wraps each input line in a
throwaway "function main() { ... }" and runs it through the full
parse -> analyze -> evaluate pipeline against a persistent evaluator
session. Each line is parsed and analyzed on its own, so a line that
reads or assigns a variable declared on an earlier line fails analysis
(Semantic007) even though the evaluator's scope still holds it; only
the first statement of a line is executed.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/green/analyzer"
	"github.com/akashmaji946/green/eval"
	"github.com/akashmaji946/green/parser"
)

// Version, Author, License, Prompt, Line and Banner are the fixed
// branding strings the repl subcommand passes to NewRepl.
const (
	Version = "v1.0.0"
	Author  = "akashmaji(@iisc.ac.in)"
	License = "MIT"
	Prompt  = "green >>> "
	Line    = "----------------------------------------------------------------"
)

// Banner is the ASCII art logo shown at REPL startup.
var Banner = `
   ▄████  ██▀███  ▓█████ ▓█████  ███▄    █
  ██▒ ▀█▒▓██ ▒ ██▒▓█   ▀ ▓█   ▀  ██ ▀█   █
 ▒██░▄▄▄░▓██ ░▄█ ▒▒███   ▒███   ▓██  ▀█ ██▒
 ░▓█  ██▓▒██▀▀█▄  ▒▓█  ▄ ▒▓█  ▄ ▓██▒  ▐▌██▒
 ░▒▓███▀▒░██▓ ▒██▒░▒████▒░▒████▒▒██░   ▓██░
  ░▒   ▒ ░ ▒▓ ░▒▓░░░ ▒░ ░░░ ▒░ ░░ ▒░   ▒ ▒
`

// Color definitions for REPL output.
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive Green session: a banner plus the branding
// strings shown alongside it.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string
}

// NewRepl creates a new Repl with the given branding strings.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo prints the startup banner and usage hints.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Green!")
	cyanColor.Fprintf(writer, "%s\n", "Each line is run as a single statement of an implicit main.")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the REPL main loop: read a line, wrap it as the sole
// statement of a throwaway `main`, run it through the full pipeline
// against a persistent evaluator. The evaluator's scope persists
// across lines, but each line is analyzed without the earlier lines'
// declarations, so referring to a variable declared on an earlier line
// is rejected with Semantic007.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	ev := eval.NewEvaluator(nil)
	ev.SetWriter(writer)

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}
		rl.SaveHistory(line)

		r.runLine(writer, line, ev)
	}
}

// runLine parses+analyzes `function main() { <line> }` and, if both
// stages succeed, executes the single resulting statement against ev's
// persistent scope.
func (r *Repl) runLine(writer io.Writer, line string, ev *eval.Evaluator) {
	wrapped := "function main() { " + line + " }"

	root, parseErrs := parser.Parse(wrapped)
	if !parseErrs.Empty() {
		for _, c := range parseErrs.Contexts() {
			redColor.Fprintf(writer, "%s\n", c.Error())
		}
		return
	}

	sem := analyzer.Analyze(root)
	if !sem.Errors.Empty() {
		for _, c := range sem.Errors.Contexts() {
			redColor.Fprintf(writer, "%s\n", c.Error())
		}
		return
	}

	ev.Semantic = sem
	fn := sem.Functions["main"]
	if fn == nil || fn.Body == nil || len(fn.Body.Statements) == 0 {
		return
	}

	if err := ev.RunLine(fn.Body.Statements[0]); err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
	}
}
