// clf2tab - Apache access log to TSV converter
//
// clf2tab reads Common or Combined Log Format records, one per line,
// validates each field, converts the timestamp to Unix epoch seconds,
// and emits tab-separated records. Malformed lines are reported on
// stderr and skipped without interrupting the stream.
package main

import (
	"os"

	"github.com/streamtools/clf2tab/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
