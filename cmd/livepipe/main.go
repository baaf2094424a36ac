package main

import (
	"context"
	"errors"
	"fmt"
	"os"
)

func main() {
	cmd := newRootCommand()
	if err := cmd.Execute(); err != nil {
		if errors.Is(err, context.Canceled) {
			return
		}
		fmt.Fprintln(os.Stderr, err)
		var uerr *usageError
		if errors.As(err, &uerr) {
			fmt.Fprint(os.Stderr, cmd.UsageString())
		}
		os.Exit(exitCode(err))
	}
}

func exitCode(err error) int {
	var uerr *usageError
	if errors.As(err, &uerr) {
		return 2
	}
	return 1
}
