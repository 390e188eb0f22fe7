// logfilter - Log Level and Date Range Filter
//
// logfilter prints the lines of a log file that match a severity level
// and/or an inclusive date range, and warns about lines it cannot parse.
package main

import (
	"os"

	"github.com/ccollicutt/logfilter/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}
