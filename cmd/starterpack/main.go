// Command starterpack analyzes a Canadian investment property: capital gains
// on sale, mortgage, cash flow, financing alternatives and rental strategy.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
