package main

import (
	"os"

	"github.com/pubcheck/pubcheck/pkg/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
