// Command specverify runs the evaluator core's verify(trace) façade
// against a compiled specification and an observed-state trace,
// grounded on the teacher's cmd/dwscript command-line entry point.
package main

import (
	"fmt"
	"os"

	"github.com/webltl/specverify/cmd/specverify/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
