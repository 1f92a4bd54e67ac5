// Mdkit converts a small Markdown dialect to HTML. It can also print the
// document tree, reformat Markdown and serve as a language server.
package main

import (
	"os"

	"src.mdkit.dev/pkg/buildinfo"
	"src.mdkit.dev/pkg/convert"
	"src.mdkit.dev/pkg/lsp"
	"src.mdkit.dev/pkg/pprof"
	"src.mdkit.dev/pkg/prog"
)

func main() {
	os.Exit(prog.Run(
		[3]*os.File{os.Stdin, os.Stdout, os.Stderr}, os.Args,
		prog.Composite(
			&pprof.Program{}, &buildinfo.Program{}, &lsp.Program{}, &convert.Program{})))
}
