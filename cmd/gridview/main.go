// Command gridview renders, probes and previews grid definitions.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/gridview/cmd/gridview/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
