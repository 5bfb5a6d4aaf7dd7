// Command setops applies multiset set operations to lists stored in YAML or
// JSON files.
//
//	setops intersection a.yaml b.json
//	setops partial --min 2 --coercive a.yaml b.yaml c.yaml
//	setops stats --format json numbers.yaml
package main

import (
	"os"
)

func main() {
	if err := newRootCmd(os.Stdin, os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}
