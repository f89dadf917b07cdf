package main

import (
	"os"

	"github.com/angelofallars/hyperinvoice/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
