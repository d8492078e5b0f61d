package main

import (
	"fmt"
	"os"

	"github.com/qdispatch/qdispatch/pkgs/cli"
)

var version = "dev"

func main() {
	if err := cli.New(version).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
