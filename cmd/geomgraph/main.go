// Command geomgraph builds topology graphs from WKT geometries and prints
// them, which is useful when debugging noding and labelling. It can also
// generate random test geometries.
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
