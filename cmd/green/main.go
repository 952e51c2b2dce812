/*
File    : green/cmd/green/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Command green is the entry point for the Green interpreter: it hands
// os.Args to the cli package and exits with whatever code the pipeline
// reports, per §6's "non-zero exit code on any failure; zero on
// success" contract.
package main

import (
	"os"

	"github.com/akashmaji946/green/cli"
)

func main() {
	os.Exit(cli.Execute(os.Args[1:], os.Stdout, os.Stderr))
}
