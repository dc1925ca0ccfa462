// Command teamdraw draws department-balanced teams and answers team lookups.
package main

import (
	"os"

	"github.com/arloliu/teamdraw/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
