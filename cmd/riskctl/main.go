// riskctl is the command-line toolkit for offline entity scoring and
// reference-data inspection.
package main

import "github.com/sentineldata/riskintel/internal/interfaces/cli"

func main() {
	cli.Execute()
}
