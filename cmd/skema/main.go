// Command skema documents, projects and checks values against the demo
// schema set.
//
//	skema list
//	skema doc -o schema.html
//	skema wire Column --format yaml
//	skema validate Column column.json
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		if !errors.Is(err, errInvalid) {
			fmt.Fprintln(os.Stderr, "skema:", err)
		}
		os.Exit(1)
	}
}
