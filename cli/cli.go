/*
File    : green/cli/cli.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package cli wires Green's external interface (§6) onto
// github.com/spf13/cobra: a root command accepting an optional
// positional file argument or a -exe/-ana flag pair, plus the
// supplemented -v/--verbose tracing flag and a repl subcommand.
// Argument parsing itself is the "external collaborator" the core
// pipeline treats as out of scope; this package is the thin shell
// that turns argv into a Mode/file pair and renders whatever the
// pipeline returns.
package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/akashmaji946/green/errctx"
)

// Mode selects what the pipeline does with the resolved source file.
type Mode int

const (
	ModeExecute Mode = iota
	ModeAnalysis
)

const defaultFile = "main.grn"

// Execute builds the root command, runs it against args (conventionally
// os.Args[1:]), and returns the process exit code. stdout/stderr let
// tests capture output without touching the real streams.
func Execute(args []string, stdout, stderr io.Writer) int {
	root := newRootCommand(stdout, stderr)
	root.SetArgs(normalizeSingleDashFlags(args))
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	if err == nil {
		return 0
	}
	if _, ok := err.(reported); ok {
		return 1
	}

	if ctx, ok := err.(*errctx.Context); ok {
		fmt.Fprintln(stderr, ctx.Error())
		return 1
	}

	ctx := classifyCmdError(err)
	fmt.Fprintln(stderr, ctx.Error())
	return 1
}

// newRootCommand builds the cobra command tree: the root Execute/Analysis
// dispatch plus the repl subcommand, sharing the -v/-t persistent flags.
func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var exeFile, anaFile string
	var verbose bool
	var templatesPath string

	root := &cobra.Command{
		Use:           "green [file]",
		Short:         "Green language interpreter",
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			configureLogging(verbose)
			if err := loadTemplates(templatesPath); err != nil {
				return err
			}

			mode, file, err := resolveModeAndFile(args, exeFile, anaFile)
			if err != nil {
				return err
			}
			return runPipeline(mode, file, stdout, stderr)
		},
	}

	root.Flags().StringVar(&exeFile, "exe", "", "execute the given file (default mode)")
	root.Flags().StringVar(&anaFile, "ana", "", "run semantic analysis on the given file without executing it")
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "raise log level to debug and trace pipeline stages")
	root.PersistentFlags().StringVarP(&templatesPath, "templates", "t", "", "path to an error-message template file overriding the embedded default")

	root.AddCommand(newReplCommand(&verbose, &templatesPath))

	return root
}

// resolveModeAndFile turns the parsed flags/positional args into exactly
// one of the four accepted forms from §6, or Cmd002 for anything else.
func resolveModeAndFile(positional []string, exeFile, anaFile string) (Mode, string, error) {
	switch {
	case exeFile != "" && anaFile != "":
		return 0, "", errctx.New(errctx.Cmd002, errctx.P("argv", "-exe and -ana are mutually exclusive"))

	case anaFile != "":
		if len(positional) > 0 {
			return 0, "", errctx.New(errctx.Cmd002, errctx.P("argv", "-ana does not take a positional file argument"))
		}
		return ModeAnalysis, anaFile, nil

	case exeFile != "":
		if len(positional) > 0 {
			return 0, "", errctx.New(errctx.Cmd002, errctx.P("argv", "-exe does not take a positional file argument"))
		}
		return ModeExecute, exeFile, nil

	case len(positional) == 1:
		return ModeExecute, positional[0], nil

	case len(positional) == 0:
		return ModeExecute, defaultFile, nil

	default:
		return 0, "", errctx.New(errctx.Cmd002, errctx.P("argv", strings.Join(positional, " ")))
	}
}

// classifyCmdError maps a cobra/pflag parse failure (not one of this
// package's own *errctx.Context values) to Cmd001 (unknown option) or
// Cmd002 (any other malformed invocation), matching §6's two-error CLI
// taxonomy.
func classifyCmdError(err error) *errctx.Context {
	msg := err.Error()
	if strings.Contains(msg, "unknown flag") || strings.Contains(msg, "unknown shorthand flag") {
		return errctx.New(errctx.Cmd001, errctx.P("option", msg))
	}
	return errctx.New(errctx.Cmd002, errctx.P("argv", msg))
}

// configureLogging raises the package-level logrus instance to Debug
// when -v/--verbose is set, per the ambient Logging section: one
// package-level logger configured once at startup.
func configureLogging(verbose bool) {
	if verbose {
		logrus.SetLevel(logrus.DebugLevel)
	}
}

// loadTemplates points the error-message template table at an external
// file when -t or GREEN_ERROR_TEMPLATES names one; otherwise the
// embedded default table is used untouched.
func loadTemplates(flagPath string) error {
	viper.SetEnvPrefix("green")
	viper.BindEnv("error_templates", "GREEN_ERROR_TEMPLATES")

	path := flagPath
	if path == "" {
		path = viper.GetString("error_templates")
	}
	if path == "" {
		return nil
	}
	if err := errctx.Load(path); err != nil {
		return err
	}
	return nil
}

// normalizeSingleDashFlags rewrites the single-dash long flags §6
// specifies (-exe, -ana) into pflag's double-dash form, since pflag
// otherwise treats a single dash as introducing single-letter
// shorthand only. Genuine shorthand flags (-v, -t) are left untouched.
func normalizeSingleDashFlags(args []string) []string {
	long := map[string]bool{"exe": true, "ana": true}
	out := make([]string, 0, len(args))
	for _, a := range args {
		if strings.HasPrefix(a, "-") && !strings.HasPrefix(a, "--") {
			name := strings.SplitN(a[1:], "=", 2)[0]
			if long[name] {
				out = append(out, "-"+a)
				continue
			}
		}
		out = append(out, a)
	}
	return out
}
