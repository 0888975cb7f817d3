package main

import (
	"os"

	"github.com/howie/burin-subtitle/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
