// optdoc renders documentation for an option registry and prints it or
// splices it into an existing document. Programs using the optdoc library
// embed DocTool next to their own registry; this binary is the reference
// embedding and documents the tool's own option set. An optional trailing
// argument names a Go source file whose struct comments supply option
// descriptions.
package main

import (
	"fmt"
	"os"

	"github.com/optdoc/optdoc"
)

func main() {
	var tool optdoc.DocTool
	r := optdoc.NewRegistry(
		optdoc.SingleDash(),
		optdoc.Program("optdoc"),
		optdoc.Description("Insert generated option documentation into a manual or source comment."),
	)
	if err := tool.RegisterOptions(r); err != nil {
		fmt.Fprintf(os.Stderr, "optdoc: %s\n", err)
		os.Exit(1)
	}
	rest := optdoc.ParseOrExit(r, os.Args[1:])

	var src optdoc.CommentSource = optdoc.CommentMap{}
	if len(rest) > 1 {
		fmt.Fprintf(os.Stderr, "optdoc: expected at most one source file, got %d\n", len(rest))
		os.Exit(2)
	}
	if len(rest) == 1 {
		m, err := optdoc.ParseGoComments(rest[0])
		if err != nil {
			fmt.Fprintf(os.Stderr, "optdoc: %s\n", err)
			os.Exit(1)
		}
		src = m
	}
	if err := tool.Run(r, src, os.Stdout); err != nil {
		fmt.Fprintf(os.Stderr, "optdoc: %s\n", err)
		os.Exit(1)
	}
}
