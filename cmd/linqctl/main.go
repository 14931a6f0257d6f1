// Command linqctl runs lazy queries over people datasets and numeric ranges.
package main

import (
	"os"
)

func main() {
	if err := newRootCommand().Execute(); err != nil {
		os.Exit(1)
	}
}
