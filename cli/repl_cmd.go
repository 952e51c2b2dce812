/*
File    : green/cli/repl_cmd.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/akashmaji946/green/repl"
)

// newReplCommand wires up the supplemented interactive mode: a fourth
// subcommand alongside the three §6 invocation forms, reusing the same
// -v/-t persistent flags as the root command.
func newReplCommand(verbose *bool, templatesPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "start an interactive Green session",
		RunE: func(cmd *cobra.Command, args []string) error {
			configureLogging(*verbose)
			if err := loadTemplates(*templatesPath); err != nil {
				return err
			}
			r := repl.NewRepl(repl.Banner, repl.Version, repl.Author, repl.Line, repl.License, repl.Prompt)
			r.Start(os.Stdin, os.Stdout)
			return nil
		},
	}
}
