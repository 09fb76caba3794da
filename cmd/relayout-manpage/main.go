package main

import (
	"fmt"
	"os"

	"github.com/arthur-debert/relayout/cmd/relayout"
	"github.com/arthur-debert/relayout/internal/version"
	"github.com/spf13/cobra/doc"
)

// Writes relayout(1) to stdout, or one page per command into the directory
// given as first argument.
func main() {
	rootCmd := relayout.NewRootCmd()

	header := &doc.GenManHeader{
		Title:   "RELAYOUT",
		Section: "1",
		Source:  "relayout " + version.Version,
		Manual:  "relayout manual",
	}

	var err error
	if len(os.Args) > 1 {
		err = doc.GenManTree(rootCmd, header, os.Args[1])
	} else {
		err = doc.GenMan(rootCmd, header, os.Stdout)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error generating man page: %v\n", err)
		os.Exit(1)
	}
}
