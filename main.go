package main

import (
	"os"

	"github.com/capopt/platform/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
