// logproc - log file summary tool
//
// logproc reads a structured log file and reports counts per level, listings
// by level and the uptime between startup and shutdown messages.
package main

import (
	"os"

	"github.com/ccollicutt/logproc/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
