package commands

import (
	"fmt"
	"io"
)

// Version is set via ldflags at build time.
var Version = "dev"

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "logproc %s\n", Version)
}
