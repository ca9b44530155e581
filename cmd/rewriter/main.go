package main

import (
	"os"

	"github.com/Click-Movement/ContentSoftware/internal/cli"
)

func main() {
	if err := cli.Execute(); err != nil {
		os.Exit(1)
	}
}
