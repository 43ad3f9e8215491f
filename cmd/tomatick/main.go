package main

import (
	"fmt"
	"os"

	"github.com/andy/tomatick/internal/cli"
)

func main() {
	// The app is built lazily by the command being run, so help and
	// completion never open storage or prompt for a key
	if err := cli.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
