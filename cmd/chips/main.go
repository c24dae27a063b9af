// Command chips inspects chip pool files and replays chip selections.
package main

import (
	"fmt"
	"os"

	"github.com/go-drift/chips/cmd/chips/cmd"
	"github.com/go-drift/chips/pkg/errors"
)

func main() {
	os.Exit(run())
}

func run() int {
	var err error
	if errors.Guard("chips", func() { err = cmd.Execute(os.Args[1:]) }) {
		return 2
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}
